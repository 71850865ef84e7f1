package rest

import (
	"math/big"
	"net/http"

	"lever/core"
	"lever/handler/param"
	"lever/handler/render"
	"lever/handler/views"
	"lever/pkg/number"

	"github.com/asaskevich/govalidator"
	"github.com/shopspring/decimal"
)

type transferParams struct {
	UserID  string          `json:"user_id"`
	AssetID string          `json:"asset_id"`
	Amount  decimal.Decimal `json:"amount"`
}

// bindTransfer parses a ledger write request and converts the decimal amount
// into the token's raw units.
func bindTransfer(r *http.Request, tokenz core.ITokenService) (*transferParams, *big.Int, error) {
	var params transferParams
	if err := param.Binding(r, &params); err != nil {
		return nil, nil, err
	}

	if params.UserID == "" || !govalidator.IsUUID(params.AssetID) {
		return nil, nil, core.ErrInvalidAddress
	}

	token, err := tokenz.TokenConfig(r.Context(), params.AssetID)
	if err != nil {
		return nil, nil, err
	}

	amount, err := number.ToRaw(params.Amount, token.Decimals)
	if err != nil {
		return nil, nil, core.ErrInvalidAmount
	}

	return &params, amount, nil
}

func renderAccount(w http.ResponseWriter, r *http.Request, ledgerz core.ILedgerService, rewardz core.IRewardIssuer, userID string) {
	ctx := r.Context()

	snap, err := ledgerz.GetUserAccountData(ctx, userID)
	if err != nil {
		render.Error(w, err)
		return
	}

	reward, err := rewardz.Balance(ctx, userID)
	if err != nil {
		render.Error(w, err)
		return
	}

	render.JSON(w, views.AccountView(snap, reward))
}

func depositHandler(tokenz core.ITokenService, ledgerz core.ILedgerService, rewardz core.IRewardIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, amount, err := bindTransfer(r, tokenz)
		if err != nil {
			render.Error(w, err)
			return
		}

		if err := ledgerz.Deposit(r.Context(), params.UserID, params.AssetID, amount); err != nil {
			render.Error(w, err)
			return
		}

		renderAccount(w, r, ledgerz, rewardz, params.UserID)
	}
}

func withdrawHandler(tokenz core.ITokenService, ledgerz core.ILedgerService, rewardz core.IRewardIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, amount, err := bindTransfer(r, tokenz)
		if err != nil {
			render.Error(w, err)
			return
		}

		if err := ledgerz.Withdraw(r.Context(), params.UserID, params.AssetID, amount); err != nil {
			render.Error(w, err)
			return
		}

		renderAccount(w, r, ledgerz, rewardz, params.UserID)
	}
}

func borrowHandler(tokenz core.ITokenService, ledgerz core.ILedgerService, rewardz core.IRewardIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, amount, err := bindTransfer(r, tokenz)
		if err != nil {
			render.Error(w, err)
			return
		}

		if err := ledgerz.Borrow(r.Context(), params.UserID, params.AssetID, amount); err != nil {
			render.Error(w, err)
			return
		}

		renderAccount(w, r, ledgerz, rewardz, params.UserID)
	}
}

func repayHandler(tokenz core.ITokenService, ledgerz core.ILedgerService, rewardz core.IRewardIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, amount, err := bindTransfer(r, tokenz)
		if err != nil {
			render.Error(w, err)
			return
		}

		if err := ledgerz.Repay(r.Context(), params.UserID, params.AssetID, amount); err != nil {
			render.Error(w, err)
			return
		}

		renderAccount(w, r, ledgerz, rewardz, params.UserID)
	}
}
