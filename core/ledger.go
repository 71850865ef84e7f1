package core

import (
	"context"
	"math/big"
)

// ILedgerService the accounting engine: deposit/withdraw/borrow/repay plus
// the read API. Every mutating call reads all prices it needs before touching
// state, validates, then commits pool + reserve + custody + reward effects as
// one unit under the engine's write lock.
type ILedgerService interface {
	Deposit(ctx context.Context, userID, assetID string, amount *big.Int) error
	Withdraw(ctx context.Context, userID, assetID string, amount *big.Int) error
	Borrow(ctx context.Context, userID, assetID string, amount *big.Int) error
	Repay(ctx context.Context, userID, assetID string, amount *big.Int) error

	GetUserAccountData(ctx context.Context, userID string) (*AccountSnapshot, error)
	GetUserDeposit(ctx context.Context, userID, assetID string) (*big.Int, error)
	GetUserBorrow(ctx context.Context, userID, assetID string) (*big.Int, error)
	GetBorrowRate(ctx context.Context, assetID string) (uint64, error)
	GetSupplyRate(ctx context.Context, assetID string) (uint64, error)
}
