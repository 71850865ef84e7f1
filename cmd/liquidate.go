package cmd

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

var liquidateCmd = &cobra.Command{
	Use:   "liquidate",
	Short: "repay part of an unhealthy borrower's debt and seize collateral",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		body := map[string]interface{}{
			"liquidator":          mustStringFlag(cmd, "liquidator"),
			"borrower":            mustStringFlag(cmd, "borrower"),
			"debt_asset_id":       mustStringFlag(cmd, "debt-asset"),
			"amount":              mustAmountFlag(cmd, "amount"),
			"collateral_asset_id": mustStringFlag(cmd, "collateral-asset"),
		}

		var resp map[string]interface{}
		if err := apiPost(ctx, "/liquidate", body, &resp); err != nil {
			panic(err)
		}

		printJSON(cmd, resp)
	},
}

var liquidationsCmd = &cobra.Command{
	Use:   "liquidations",
	Short: "list recent liquidation events",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		limit := cast.ToInt(cmd.Flag("limit").Value.String())
		var resp map[string]interface{}
		if err := apiGet(ctx, fmt.Sprintf("/liquidations?limit=%d", limit), &resp); err != nil {
			panic(err)
		}

		printJSON(cmd, resp)
	},
}

func init() {
	rootCmd.AddCommand(liquidateCmd)
	liquidateCmd.Flags().StringP("liquidator", "l", "", "liquidator user id")
	liquidateCmd.Flags().StringP("borrower", "b", "", "borrower user id")
	liquidateCmd.Flags().String("debt-asset", "", "asset id of the debt to repay")
	liquidateCmd.Flags().StringP("amount", "q", "", "debt amount to repay in token units")
	liquidateCmd.Flags().String("collateral-asset", "", "asset id of the collateral to seize")

	rootCmd.AddCommand(liquidationsCmd)
	liquidationsCmd.Flags().IntP("limit", "n", 50, "max events to list")
}
