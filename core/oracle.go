package core

import (
	"context"
	"math/big"
	"time"
)

// PriceData one feed reading: a positive price scaled by the feed's own
// decimals (0-18) and the time it was reported.
type PriceData struct {
	Price     *big.Int
	Decimals  int32
	UpdatedAt time.Time
}

// PriceFeed an external price source with a freshness contract
type PriceFeed interface {
	Read(ctx context.Context) (*PriceData, error)
}

// IPriceOracleService maps tokens to usd prices normalized to 1e18 regardless
// of the feed's native decimals. GetPrice fails on missing feeds, non-positive
// prices and readings older than the configured timeout.
type IPriceOracleService interface {
	GetPrice(ctx context.Context, assetID string) (*big.Int, error)
	SetPriceFeed(ctx context.Context, assetID string, feed PriceFeed) error
}
