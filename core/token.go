package core

import (
	"context"
	"time"
)

// Token a supported asset and its risk configuration. Tokens are registered by
// the admin surface and closed, never deleted; withdraw and repay stay allowed
// on a closed token so users can always exit.
type Token struct {
	ID        uint64    `json:"id"`
	AssetID   string    `json:"asset_id"`
	Symbol    string    `json:"symbol"`
	LTV       uint64    `json:"ltv"`
	Decimals  int32     `json:"decimals"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// ITokenStore token store interface. All returns tokens in registration
// order, which is the iteration order for account aggregation.
type ITokenStore interface {
	Add(ctx context.Context, token *Token) error
	Find(ctx context.Context, assetID string) (*Token, error)
	All(ctx context.Context) ([]*Token, error)
	Update(ctx context.Context, token *Token) error
}

// ITokenService admin surface for token registration
type ITokenService interface {
	AddToken(ctx context.Context, assetID, symbol string, ltv uint64, decimals int32) (*Token, error)
	CloseToken(ctx context.Context, assetID string) error
	TokenConfig(ctx context.Context, assetID string) (*Token, error)
	AllTokens(ctx context.Context) ([]*Token, error)
}
