package pool

import (
	"context"
	"math/big"
	"sync"

	"lever/core"
)

type poolStore struct {
	mu    sync.RWMutex
	pools map[string]*core.Pool
	order []string
}

// New new pool store
func New() core.IPoolStore {
	return &poolStore{
		pools: make(map[string]*core.Pool),
	}
}

func copyPool(p *core.Pool) *core.Pool {
	return &core.Pool{
		AssetID:        p.AssetID,
		TotalDeposited: new(big.Int).Set(p.TotalDeposited),
		TotalBorrowed:  new(big.Int).Set(p.TotalBorrowed),
	}
}

// Find returns the pool for the token, creating an empty one on first use.
func (s *poolStore) Find(ctx context.Context, assetID string) (*core.Pool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pools[assetID]
	if !ok {
		p = &core.Pool{
			AssetID:        assetID,
			TotalDeposited: big.NewInt(0),
			TotalBorrowed:  big.NewInt(0),
		}
		s.pools[assetID] = p
		s.order = append(s.order, assetID)
	}

	return copyPool(p), nil
}

func (s *poolStore) All(ctx context.Context) ([]*core.Pool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*core.Pool, 0, len(s.order))
	for _, assetID := range s.order {
		out = append(out, copyPool(s.pools[assetID]))
	}
	return out, nil
}

func (s *poolStore) Save(ctx context.Context, pool *core.Pool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pools[pool.AssetID]; !ok {
		s.order = append(s.order, pool.AssetID)
	}
	s.pools[pool.AssetID] = copyPool(pool)
	return nil
}
