package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "show a user's account snapshot",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		user := mustStringFlag(cmd, "user")

		var resp map[string]interface{}
		if err := apiGet(ctx, "/accounts/"+user, &resp); err != nil {
			panic(err)
		}

		printJSON(cmd, resp)
	},
}

var reserveCmd = &cobra.Command{
	Use:   "reserve",
	Short: "show a user's position in one token",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		user := mustStringFlag(cmd, "user")
		asset := mustStringFlag(cmd, "asset")

		var resp map[string]interface{}
		if err := apiGet(ctx, fmt.Sprintf("/accounts/%s/reserves/%s", user, asset), &resp); err != nil {
			panic(err)
		}

		printJSON(cmd, resp)
	},
}

func init() {
	rootCmd.AddCommand(accountCmd)
	accountCmd.Flags().StringP("user", "u", "", "user id")

	rootCmd.AddCommand(reserveCmd)
	reserveCmd.Flags().StringP("user", "u", "", "user id")
	reserveCmd.Flags().StringP("asset", "a", "", "asset id")
}
