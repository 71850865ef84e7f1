package views

import (
	"math/big"

	"lever/core"
	"lever/pkg/number"

	"github.com/shopspring/decimal"
)

// Account account view. HealthFactor is omitted for debt-free accounts
// instead of rendering the infinity sentinel.
type Account struct {
	UserID              string           `json:"user_id"`
	TotalCollateralUSD  decimal.Decimal  `json:"total_collateral_usd"`
	TotalDebtUSD        decimal.Decimal  `json:"total_debt_usd"`
	AvailableBorrowsUSD decimal.Decimal  `json:"available_borrows_usd"`
	HealthFactor        *decimal.Decimal `json:"health_factor,omitempty"`
	RewardBalance       decimal.Decimal  `json:"reward_balance"`
}

// AccountView render an account snapshot
func AccountView(snap *core.AccountSnapshot, rewardBalance *big.Int) *Account {
	view := &Account{
		UserID:              snap.UserID,
		TotalCollateralUSD:  number.FromWad(snap.TotalCollateralUSD),
		TotalDebtUSD:        number.FromWad(snap.TotalDebtUSD),
		AvailableBorrowsUSD: number.FromWad(snap.AvailableBorrowsUSD),
	}
	if !snap.NoDebt() {
		hf := number.FromWad(snap.HealthFactor)
		view.HealthFactor = &hf
	}
	if rewardBalance != nil {
		view.RewardBalance = number.FromWad(rewardBalance)
	}
	return view
}

// Reserve user reserve view
type Reserve struct {
	AssetID   string          `json:"asset_id"`
	Deposited decimal.Decimal `json:"deposited"`
	Borrowed  decimal.Decimal `json:"borrowed"`
}

// ReserveView render one user reserve
func ReserveView(token *core.Token, deposited, borrowed *big.Int) *Reserve {
	return &Reserve{
		AssetID:   token.AssetID,
		Deposited: number.FromRaw(deposited, token.Decimals),
		Borrowed:  number.FromRaw(borrowed, token.Decimals),
	}
}
