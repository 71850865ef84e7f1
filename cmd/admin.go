package cmd

import (
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

var addTokenCmd = &cobra.Command{
	Use:     "add-token",
	Aliases: []string{"at"},
	Short:   "register a token",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		body := map[string]interface{}{
			"asset_id": mustStringFlag(cmd, "asset"),
			"symbol":   mustStringFlag(cmd, "symbol"),
			"ltv":      cast.ToUint64(cmd.Flag("ltv").Value.String()),
			"decimals": cast.ToInt32(cmd.Flag("decimals").Value.String()),
		}

		var resp map[string]interface{}
		if err := apiPost(ctx, "/admin/tokens", body, &resp); err != nil {
			panic(err)
		}

		printJSON(cmd, resp)
	},
}

var closeTokenCmd = &cobra.Command{
	Use:     "close-token",
	Aliases: []string{"ct"},
	Short:   "close a token for deposits and borrows",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		asset := mustStringFlag(cmd, "asset")

		var resp map[string]interface{}
		if err := apiPost(ctx, "/admin/tokens/"+asset+"/close", nil, &resp); err != nil {
			panic(err)
		}

		printJSON(cmd, resp)
	},
}

var setPriceCmd = &cobra.Command{
	Use:     "set-price",
	Aliases: []string{"sp"},
	Short:   "set a token's usd price through a manual feed",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		body := map[string]interface{}{
			"asset_id": mustStringFlag(cmd, "asset"),
			"price":    mustAmountFlag(cmd, "price"),
		}

		var resp map[string]interface{}
		if err := apiPost(ctx, "/admin/price", body, &resp); err != nil {
			panic(err)
		}

		printJSON(cmd, resp)
	},
}

var faucetCmd = &cobra.Command{
	Use:   "faucet",
	Short: "credit tokens to a user's wallet",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		body := map[string]interface{}{
			"user_id":  mustStringFlag(cmd, "user"),
			"asset_id": mustStringFlag(cmd, "asset"),
			"amount":   mustAmountFlag(cmd, "amount"),
			"decimals": cast.ToInt32(cmd.Flag("decimals").Value.String()),
		}

		var resp map[string]interface{}
		if err := apiPost(ctx, "/admin/faucet", body, &resp); err != nil {
			panic(err)
		}

		printJSON(cmd, resp)
	},
}

func init() {
	rootCmd.AddCommand(addTokenCmd)
	addTokenCmd.Flags().StringP("asset", "a", "", "asset id")
	addTokenCmd.Flags().StringP("symbol", "s", "", "token symbol")
	addTokenCmd.Flags().Uint64("ltv", 0, "loan to value in bps")
	addTokenCmd.Flags().Int32("decimals", 18, "native token decimals")

	rootCmd.AddCommand(closeTokenCmd)
	closeTokenCmd.Flags().StringP("asset", "a", "", "asset id")

	rootCmd.AddCommand(setPriceCmd)
	setPriceCmd.Flags().StringP("asset", "a", "", "asset id")
	setPriceCmd.Flags().StringP("price", "p", "", "usd price per token unit")

	rootCmd.AddCommand(faucetCmd)
	faucetCmd.Flags().StringP("user", "u", "", "user id")
	faucetCmd.Flags().StringP("asset", "a", "", "asset id")
	faucetCmd.Flags().StringP("amount", "q", "", "amount in token units")
	faucetCmd.Flags().Int32("decimals", 18, "native token decimals")
}
