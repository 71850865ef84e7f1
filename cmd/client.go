package cmd

import (
	"context"
	"encoding/json"
	"strings"

	"lever/pkg/resthttp"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func apiURL(p string) string {
	return strings.TrimRight(cfg.Client.Endpoint, "/") + "/api" + p
}

func apiGet(ctx context.Context, p string, resp interface{}) error {
	_, err := resthttp.Execute(resthttp.Request(ctx), "GET", apiURL(p), nil, resp)
	return err
}

func apiPost(ctx context.Context, p string, body, resp interface{}) error {
	_, err := resthttp.Execute(resthttp.Request(ctx), "POST", apiURL(p), body, resp)
	return err
}

func printJSON(cmd *cobra.Command, v interface{}) {
	bts, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		panic(err)
	}

	cmd.Println(string(bts))
}

func mustAmountFlag(cmd *cobra.Command, name string) decimal.Decimal {
	v, e := cmd.Flags().GetString(name)
	if e != nil {
		panic(e)
	}

	amount, e := decimal.NewFromString(v)
	if e != nil || !amount.IsPositive() {
		panic("invalid amount")
	}

	return amount
}

func mustStringFlag(cmd *cobra.Command, name string) string {
	v, e := cmd.Flags().GetString(name)
	if e != nil || v == "" {
		panic("missing flag " + name)
	}

	return v
}
