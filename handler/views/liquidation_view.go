package views

import (
	"time"

	"lever/core"
	"lever/pkg/number"

	"github.com/shopspring/decimal"
)

// Liquidation liquidation event view
type Liquidation struct {
	ID                 string          `json:"id"`
	Borrower           string          `json:"borrower"`
	Liquidator         string          `json:"liquidator"`
	DebtAssetID        string          `json:"debt_asset_id"`
	RepaidAmount       decimal.Decimal `json:"repaid_amount"`
	CollateralAssetID  string          `json:"collateral_asset_id"`
	SeizedAmount       decimal.Decimal `json:"seized_amount"`
	HealthFactorBefore decimal.Decimal `json:"health_factor_before"`
	HealthFactorAfter  decimal.Decimal `json:"health_factor_after"`
	CreatedAt          time.Time       `json:"created_at"`
}

// LiquidationView render a liquidation event
func LiquidationView(event *core.LiquidationEvent, debtToken, collateralToken *core.Token) *Liquidation {
	return &Liquidation{
		ID:                 event.ID,
		Borrower:           event.Borrower,
		Liquidator:         event.Liquidator,
		DebtAssetID:        event.DebtAssetID,
		RepaidAmount:       number.FromRaw(event.RepaidAmount, debtToken.Decimals),
		CollateralAssetID:  event.CollateralAssetID,
		SeizedAmount:       number.FromRaw(event.SeizedAmount, collateralToken.Decimals),
		HealthFactorBefore: number.FromWad(event.HealthFactorBefore),
		HealthFactorAfter:  number.FromWad(event.HealthFactorAfter),
		CreatedAt:          event.CreatedAt,
	}
}
