package views

import (
	"math/big"

	"lever/core"
	"lever/internal/interest"
	"lever/pkg/number"

	"github.com/shopspring/decimal"
)

// Market market view
type Market struct {
	AssetID        string          `json:"asset_id"`
	Symbol         string          `json:"symbol"`
	LTV            uint64          `json:"ltv"`
	Decimals       int32           `json:"decimals"`
	Active         bool            `json:"active"`
	TotalDeposited decimal.Decimal `json:"total_deposited"`
	TotalBorrowed  decimal.Decimal `json:"total_borrowed"`
	UtilizationBps uint64          `json:"utilization_bps"`
	BorrowRateBps  uint64          `json:"borrow_rate_bps"`
	SupplyRateBps  uint64          `json:"supply_rate_bps"`
	Price          decimal.Decimal `json:"price"`
}

// MarketView render one token's pool. A nil price renders as zero rather
// than failing the whole listing.
func MarketView(token *core.Token, pool *core.Pool, price *big.Int) *Market {
	view := &Market{
		AssetID:        token.AssetID,
		Symbol:         token.Symbol,
		LTV:            token.LTV,
		Decimals:       token.Decimals,
		Active:         token.Active,
		TotalDeposited: number.FromRaw(pool.TotalDeposited, token.Decimals),
		TotalBorrowed:  number.FromRaw(pool.TotalBorrowed, token.Decimals),
		UtilizationBps: interest.UtilizationBps(pool.TotalBorrowed, pool.TotalDeposited),
		BorrowRateBps:  interest.BorrowRateBps(pool.TotalBorrowed, pool.TotalDeposited),
		SupplyRateBps:  interest.SupplyRateBps(pool.TotalBorrowed, pool.TotalDeposited),
	}
	if price != nil {
		view.Price = number.FromWad(price)
	}
	return view
}
