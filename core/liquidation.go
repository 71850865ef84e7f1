package core

import (
	"context"
	"math/big"
	"time"
)

// LiquidationEvent record of one successful liquidation call
type LiquidationEvent struct {
	ID                 string    `json:"id"`
	Borrower           string    `json:"borrower"`
	Liquidator         string    `json:"liquidator"`
	DebtAssetID        string    `json:"debt_asset_id"`
	RepaidAmount       *big.Int  `json:"repaid_amount"`
	CollateralAssetID  string    `json:"collateral_asset_id"`
	SeizedAmount       *big.Int  `json:"seized_amount"`
	HealthFactorBefore *big.Int  `json:"health_factor_before"`
	HealthFactorAfter  *big.Int  `json:"health_factor_after"`
	CreatedAt          time.Time `json:"created_at"`
}

// ILiquidationEventStore keeps recent liquidation events for the read API
type ILiquidationEventStore interface {
	Create(ctx context.Context, event *LiquidationEvent) error
	List(ctx context.Context, limit int) ([]*LiquidationEvent, error)
}

// ILiquidationService liquidates undercollateralized positions. One call
// repays at most the close-factor fraction of the borrower's debt in one
// token and seizes debt-equivalent collateral plus the liquidation bonus,
// applied once: seized = debtValueUSD * (1 + bonus) / collateralPrice.
type ILiquidationService interface {
	Liquidate(ctx context.Context, liquidator, borrower, debtAssetID string, debtAmount *big.Int, collateralAssetID string) (*LiquidationEvent, error)
	Liquidations(ctx context.Context, limit int) ([]*LiquidationEvent, error)
}
