package cmd

import (
	"github.com/spf13/cobra"
)

var marketsCmd = &cobra.Command{
	Use:   "markets",
	Short: "list all markets with pool sizes and rates",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		var resp map[string]interface{}
		if err := apiGet(ctx, "/markets", &resp); err != nil {
			panic(err)
		}

		printJSON(cmd, resp)
	},
}

var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "show one market",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		asset := mustStringFlag(cmd, "asset")

		var resp map[string]interface{}
		if err := apiGet(ctx, "/markets/"+asset, &resp); err != nil {
			panic(err)
		}

		printJSON(cmd, resp)
	},
}

func init() {
	rootCmd.AddCommand(marketsCmd)

	rootCmd.AddCommand(marketCmd)
	marketCmd.Flags().StringP("asset", "a", "", "asset id")
}
