package core

import (
	"context"
	"math/big"
)

// IRewardIssuer external mintable/burnable reward ledger. Units are pegged
// 1:1 to the usd wad value of the deposit or withdrawal, recomputed at the
// current price on every call, never cached.
type IRewardIssuer interface {
	Mint(ctx context.Context, userID string, usd *big.Int) error
	Burn(ctx context.Context, userID string, usd *big.Int) error
	Balance(ctx context.Context, userID string) (*big.Int, error)
}
