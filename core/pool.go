package core

import (
	"context"
	"math/big"
)

// Pool per-token pool totals, raw integer amounts in the token's native
// decimals. totalBorrowed <= totalDeposited is enforced at borrow time.
type Pool struct {
	AssetID        string   `json:"asset_id"`
	TotalDeposited *big.Int `json:"total_deposited"`
	TotalBorrowed  *big.Int `json:"total_borrowed"`
}

// Available undrawn pool balance
func (p *Pool) Available() *big.Int {
	return new(big.Int).Sub(p.TotalDeposited, p.TotalBorrowed)
}

// IPoolStore pool store interface. Find creates an empty pool on first use.
type IPoolStore interface {
	Find(ctx context.Context, assetID string) (*Pool, error)
	All(ctx context.Context) ([]*Pool, error)
	Save(ctx context.Context, pool *Pool) error
}
