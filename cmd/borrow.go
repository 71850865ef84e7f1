package cmd

import (
	"github.com/spf13/cobra"
)

var borrowCmd = &cobra.Command{
	Use:   "borrow",
	Short: "borrow tokens against deposited collateral",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		body := map[string]interface{}{
			"user_id":  mustStringFlag(cmd, "user"),
			"asset_id": mustStringFlag(cmd, "asset"),
			"amount":   mustAmountFlag(cmd, "amount"),
		}

		var resp map[string]interface{}
		if err := apiPost(ctx, "/borrow", body, &resp); err != nil {
			panic(err)
		}

		printJSON(cmd, resp)
	},
}

func init() {
	rootCmd.AddCommand(borrowCmd)
	borrowCmd.Flags().StringP("user", "u", "", "user id")
	borrowCmd.Flags().StringP("asset", "a", "", "asset id")
	borrowCmd.Flags().StringP("amount", "q", "", "amount in token units")
}
