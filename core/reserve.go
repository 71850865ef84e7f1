package core

import (
	"context"
	"math/big"
)

// Reserve per user and token balances, raw integer amounts. Created
// implicitly on first interaction, zeroed out rather than deleted.
type Reserve struct {
	UserID    string   `json:"user_id"`
	AssetID   string   `json:"asset_id"`
	Deposited *big.Int `json:"deposited"`
	Borrowed  *big.Int `json:"borrowed"`
}

// IReserveStore reserve store interface. Find creates an empty reserve on
// first use; Peek never writes, returning zero balances for untouched pairs;
// FindByUser returns only reserves the user has touched.
type IReserveStore interface {
	Find(ctx context.Context, userID, assetID string) (*Reserve, error)
	Peek(ctx context.Context, userID, assetID string) (*Reserve, error)
	FindByUser(ctx context.Context, userID string) ([]*Reserve, error)
	Save(ctx context.Context, reserve *Reserve) error
}
