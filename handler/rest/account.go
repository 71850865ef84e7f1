package rest

import (
	"net/http"

	"lever/core"
	"lever/handler/param"
	"lever/handler/render"
	"lever/handler/views"

	"github.com/asaskevich/govalidator"
)

func accountHandler(ledgerz core.ILedgerService, rewardz core.IRewardIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			UserID string `json:"user"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if params.UserID == "" {
			render.BadRequest(w, core.ErrInvalidAddress)
			return
		}

		snap, err := ledgerz.GetUserAccountData(ctx, params.UserID)
		if err != nil {
			render.Error(w, err)
			return
		}

		reward, err := rewardz.Balance(ctx, params.UserID)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, views.AccountView(snap, reward))
	}
}

func reserveHandler(tokenz core.ITokenService, ledgerz core.ILedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			UserID  string `json:"user"`
			AssetID string `json:"asset"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if params.UserID == "" || !govalidator.IsUUID(params.AssetID) {
			render.BadRequest(w, core.ErrInvalidAddress)
			return
		}

		token, err := tokenz.TokenConfig(ctx, params.AssetID)
		if err != nil {
			render.Error(w, err)
			return
		}

		deposited, err := ledgerz.GetUserDeposit(ctx, params.UserID, params.AssetID)
		if err != nil {
			render.Error(w, err)
			return
		}

		borrowed, err := ledgerz.GetUserBorrow(ctx, params.UserID, params.AssetID)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, views.ReserveView(token, deposited, borrowed))
	}
}
