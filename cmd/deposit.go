package cmd

import (
	"github.com/spf13/cobra"
)

var depositCmd = &cobra.Command{
	Use:   "deposit",
	Short: "deposit tokens into the pool",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		body := map[string]interface{}{
			"user_id":  mustStringFlag(cmd, "user"),
			"asset_id": mustStringFlag(cmd, "asset"),
			"amount":   mustAmountFlag(cmd, "amount"),
		}

		var resp map[string]interface{}
		if err := apiPost(ctx, "/deposit", body, &resp); err != nil {
			panic(err)
		}

		printJSON(cmd, resp)
	},
}

func init() {
	rootCmd.AddCommand(depositCmd)
	depositCmd.Flags().StringP("user", "u", "", "user id")
	depositCmd.Flags().StringP("asset", "a", "", "asset id")
	depositCmd.Flags().StringP("amount", "q", "", "amount in token units")
}
