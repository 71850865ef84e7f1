package rest

import (
	"net/http"
	"time"

	"lever/core"
	"lever/handler/param"
	"lever/handler/render"
	"lever/pkg/number"
	oraclefeed "lever/service/oracle"

	"github.com/asaskevich/govalidator"
	"github.com/shopspring/decimal"
)

func addTokenHandler(tokenz core.ITokenService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			AssetID  string `json:"asset_id"`
			Symbol   string `json:"symbol"`
			LTV      uint64 `json:"ltv"`
			Decimals int32  `json:"decimals"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		token, err := tokenz.AddToken(r.Context(), params.AssetID, params.Symbol, params.LTV, params.Decimals)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, token)
	}
}

func closeTokenHandler(tokenz core.ITokenService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			AssetID string `json:"asset"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := tokenz.CloseToken(r.Context(), params.AssetID); err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, render.H{"asset_id": params.AssetID, "active": false})
	}
}

func setPriceHandler(oraclez core.IPriceOracleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			AssetID string          `json:"asset_id"`
			Price   decimal.Decimal `json:"price"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if !params.Price.IsPositive() {
			render.Error(w, core.ErrInvalidPrice)
			return
		}

		feed := oraclefeed.NewManualFeed(number.ToWad(params.Price), number.WadDecimals, time.Now())
		if err := oraclez.SetPriceFeed(r.Context(), params.AssetID, feed); err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, render.H{"asset_id": params.AssetID, "price": params.Price})
	}
}

func faucetHandler(transferz core.ITransferService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			UserID  string          `json:"user_id"`
			AssetID string          `json:"asset_id"`
			Amount  decimal.Decimal `json:"amount"`
			// native decimals of the asset, the faucet does not look up tokens
			Decimals int32 `json:"decimals"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if params.UserID == "" || !govalidator.IsUUID(params.AssetID) {
			render.BadRequest(w, core.ErrInvalidAddress)
			return
		}

		amount, err := number.ToRaw(params.Amount, params.Decimals)
		if err != nil || !number.IsPositive(amount) {
			render.Error(w, core.ErrInvalidAmount)
			return
		}

		if err := transferz.Push(r.Context(), params.UserID, params.AssetID, amount); err != nil {
			render.Error(w, err)
			return
		}

		balance, err := transferz.Balance(r.Context(), params.UserID, params.AssetID)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, render.H{
			"user_id":  params.UserID,
			"asset_id": params.AssetID,
			"balance":  number.FromRaw(balance, params.Decimals),
		})
	}
}
