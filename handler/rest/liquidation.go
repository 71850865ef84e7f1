package rest

import (
	"net/http"

	"lever/core"
	"lever/handler/param"
	"lever/handler/render"
	"lever/handler/views"
	"lever/pkg/number"

	"github.com/asaskevich/govalidator"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

const defaultLiquidationLimit = 50

func liquidateHandler(tokenz core.ITokenService, liquidationz core.ILiquidationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			Liquidator        string          `json:"liquidator"`
			Borrower          string          `json:"borrower"`
			DebtAssetID       string          `json:"debt_asset_id"`
			Amount            decimal.Decimal `json:"amount"`
			CollateralAssetID string          `json:"collateral_asset_id"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if params.Liquidator == "" || params.Borrower == "" ||
			!govalidator.IsUUID(params.DebtAssetID) || !govalidator.IsUUID(params.CollateralAssetID) {
			render.BadRequest(w, core.ErrInvalidAddress)
			return
		}

		debtToken, err := tokenz.TokenConfig(ctx, params.DebtAssetID)
		if err != nil {
			render.Error(w, err)
			return
		}

		collateralToken, err := tokenz.TokenConfig(ctx, params.CollateralAssetID)
		if err != nil {
			render.Error(w, err)
			return
		}

		amount, err := number.ToRaw(params.Amount, debtToken.Decimals)
		if err != nil {
			render.Error(w, core.ErrInvalidAmount)
			return
		}

		event, err := liquidationz.Liquidate(ctx, params.Liquidator, params.Borrower, params.DebtAssetID, amount, params.CollateralAssetID)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, views.LiquidationView(event, debtToken, collateralToken))
	}
}

func liquidationsHandler(tokenz core.ITokenService, liquidationz core.ILiquidationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		limit := cast.ToInt(r.URL.Query().Get("limit"))
		if limit <= 0 {
			limit = defaultLiquidationLimit
		}

		events, err := liquidationz.Liquidations(ctx, limit)
		if err != nil {
			render.Error(w, err)
			return
		}

		items := make([]*views.Liquidation, 0, len(events))
		for _, event := range events {
			debtToken, err := tokenz.TokenConfig(ctx, event.DebtAssetID)
			if err != nil {
				render.Error(w, err)
				return
			}

			collateralToken, err := tokenz.TokenConfig(ctx, event.CollateralAssetID)
			if err != nil {
				render.Error(w, err)
				return
			}

			items = append(items, views.LiquidationView(event, debtToken, collateralToken))
		}

		render.JSON(w, render.H{"liquidations": items})
	}
}
