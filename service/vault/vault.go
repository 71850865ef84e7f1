package vault

import (
	"context"
	"math/big"
	"sync"

	"lever/core"
	"lever/pkg/number"
)

type vaultService struct {
	mu       sync.RWMutex
	balances map[string]*big.Int
}

// New new in-process token custody. Wallet connectivity and on-chain
// settlement are external concerns; the vault only tracks who holds what so
// the engine's pull/push side effects are observable and abortable.
func New() core.ITransferService {
	return &vaultService{
		balances: make(map[string]*big.Int),
	}
}

func key(userID, assetID string) string {
	return userID + "/" + assetID
}

// Pull moves tokens from the user into pool custody. Fails without side
// effects when the user holds too little.
func (s *vaultService) Pull(ctx context.Context, userID, assetID string, amount *big.Int) error {
	if !number.IsPositive(amount) {
		return core.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.balances[key(userID, assetID)]
	if !ok || b.Cmp(amount) < 0 {
		return core.ErrInsufficientBalance
	}
	b.Sub(b, amount)
	return nil
}

// Push credits tokens to the user.
func (s *vaultService) Push(ctx context.Context, userID, assetID string, amount *big.Int) error {
	if !number.IsPositive(amount) {
		return core.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.balances[key(userID, assetID)]
	if !ok {
		b = big.NewInt(0)
		s.balances[key(userID, assetID)] = b
	}
	b.Add(b, amount)
	return nil
}

func (s *vaultService) Balance(ctx context.Context, userID, assetID string) (*big.Int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if b, ok := s.balances[key(userID, assetID)]; ok {
		return new(big.Int).Set(b), nil
	}
	return big.NewInt(0), nil
}
