package core

import (
	"context"
	"math/big"
)

// ITransferService token custody. Pull moves tokens from a user into pool
// custody and fails without side effects when the user holds too little;
// Push credits tokens back to a user and cannot fail on balance.
type ITransferService interface {
	Pull(ctx context.Context, userID, assetID string, amount *big.Int) error
	Push(ctx context.Context, userID, assetID string, amount *big.Int) error
	Balance(ctx context.Context, userID, assetID string) (*big.Int, error)
}
