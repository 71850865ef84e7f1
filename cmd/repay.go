package cmd

import (
	"github.com/spf13/cobra"
)

var repayCmd = &cobra.Command{
	Use:   "repay",
	Short: "repay borrowed tokens, excess repayment is capped",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		body := map[string]interface{}{
			"user_id":  mustStringFlag(cmd, "user"),
			"asset_id": mustStringFlag(cmd, "asset"),
			"amount":   mustAmountFlag(cmd, "amount"),
		}

		var resp map[string]interface{}
		if err := apiPost(ctx, "/repay", body, &resp); err != nil {
			panic(err)
		}

		printJSON(cmd, resp)
	},
}

func init() {
	rootCmd.AddCommand(repayCmd)
	repayCmd.Flags().StringP("user", "u", "", "user id")
	repayCmd.Flags().StringP("asset", "a", "", "asset id")
	repayCmd.Flags().StringP("amount", "q", "", "amount in token units")
}
