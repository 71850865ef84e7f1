package cmd

import (
	"github.com/spf13/cobra"
)

var withdrawCmd = &cobra.Command{
	Use:   "withdraw",
	Short: "withdraw deposited tokens",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		body := map[string]interface{}{
			"user_id":  mustStringFlag(cmd, "user"),
			"asset_id": mustStringFlag(cmd, "asset"),
			"amount":   mustAmountFlag(cmd, "amount"),
		}

		var resp map[string]interface{}
		if err := apiPost(ctx, "/withdraw", body, &resp); err != nil {
			panic(err)
		}

		printJSON(cmd, resp)
	},
}

func init() {
	rootCmd.AddCommand(withdrawCmd)
	withdrawCmd.Flags().StringP("user", "u", "", "user id")
	withdrawCmd.Flags().StringP("asset", "a", "", "asset id")
	withdrawCmd.Flags().StringP("amount", "q", "", "amount in token units")
}
