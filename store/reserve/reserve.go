package reserve

import (
	"context"
	"math/big"
	"sync"

	"lever/core"
)

type reserveStore struct {
	mu       sync.RWMutex
	reserves map[string]*core.Reserve
	byUser   map[string][]string
}

// New new reserve store
func New() core.IReserveStore {
	return &reserveStore{
		reserves: make(map[string]*core.Reserve),
		byUser:   make(map[string][]string),
	}
}

func key(userID, assetID string) string {
	return userID + "/" + assetID
}

func copyReserve(r *core.Reserve) *core.Reserve {
	return &core.Reserve{
		UserID:    r.UserID,
		AssetID:   r.AssetID,
		Deposited: new(big.Int).Set(r.Deposited),
		Borrowed:  new(big.Int).Set(r.Borrowed),
	}
}

// Find returns the user's reserve for the token, creating an empty one on
// first use.
func (s *reserveStore) Find(ctx context.Context, userID, assetID string) (*core.Reserve, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reserves[key(userID, assetID)]
	if !ok {
		r = &core.Reserve{
			UserID:    userID,
			AssetID:   assetID,
			Deposited: big.NewInt(0),
			Borrowed:  big.NewInt(0),
		}
		s.reserves[key(userID, assetID)] = r
		s.byUser[userID] = append(s.byUser[userID], assetID)
	}

	return copyReserve(r), nil
}

// Peek reads without creating, so read-only callers leave no trace.
func (s *reserveStore) Peek(ctx context.Context, userID, assetID string) (*core.Reserve, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if r, ok := s.reserves[key(userID, assetID)]; ok {
		return copyReserve(r), nil
	}

	return &core.Reserve{
		UserID:    userID,
		AssetID:   assetID,
		Deposited: big.NewInt(0),
		Borrowed:  big.NewInt(0),
	}, nil
}

func (s *reserveStore) FindByUser(ctx context.Context, userID string) ([]*core.Reserve, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	assets := s.byUser[userID]
	out := make([]*core.Reserve, 0, len(assets))
	for _, assetID := range assets {
		out = append(out, copyReserve(s.reserves[key(userID, assetID)]))
	}
	return out, nil
}

func (s *reserveStore) Save(ctx context.Context, reserve *core.Reserve) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(reserve.UserID, reserve.AssetID)
	if _, ok := s.reserves[k]; !ok {
		s.byUser[reserve.UserID] = append(s.byUser[reserve.UserID], reserve.AssetID)
	}
	s.reserves[k] = copyReserve(reserve)
	return nil
}
