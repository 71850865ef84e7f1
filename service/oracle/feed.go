package oracle

import (
	"context"
	"math/big"
	"sync"
	"time"

	"lever/core"
)

// ManualFeed a settable price feed, used for genesis prices and the admin
// set-price surface. Each SetPrice refreshes the reading's timestamp.
type ManualFeed struct {
	mu   sync.RWMutex
	data core.PriceData
}

// NewManualFeed new manual feed with an initial reading
func NewManualFeed(price *big.Int, decimals int32, updatedAt time.Time) *ManualFeed {
	return &ManualFeed{
		data: core.PriceData{
			Price:     new(big.Int).Set(price),
			Decimals:  decimals,
			UpdatedAt: updatedAt,
		},
	}
}

func (f *ManualFeed) Read(ctx context.Context) (*core.PriceData, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return &core.PriceData{
		Price:     new(big.Int).Set(f.data.Price),
		Decimals:  f.data.Decimals,
		UpdatedAt: f.data.UpdatedAt,
	}, nil
}

// SetPrice replaces the reading
func (f *ManualFeed) SetPrice(price *big.Int, updatedAt time.Time) {
	f.mu.Lock()
	f.data.Price = new(big.Int).Set(price)
	f.data.UpdatedAt = updatedAt
	f.mu.Unlock()
}
