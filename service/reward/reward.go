package reward

import (
	"context"
	"math/big"
	"sync"

	"lever/core"
	"lever/pkg/number"

	"github.com/fox-one/pkg/logger"
)

type rewardIssuer struct {
	mu       sync.RWMutex
	balances map[string]*big.Int
}

// New new reward issuer. Balances are usd-wad reward units pegged 1:1 to the
// usd value of deposits.
func New() core.IRewardIssuer {
	return &rewardIssuer{
		balances: make(map[string]*big.Int),
	}
}

func (s *rewardIssuer) Mint(ctx context.Context, userID string, usd *big.Int) error {
	if usd == nil || usd.Sign() < 0 {
		return core.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.balances[userID]
	if !ok {
		b = big.NewInt(0)
		s.balances[userID] = b
	}
	b.Add(b, usd)
	return nil
}

// Burn removes up to usd reward units, capped at the user's balance. The
// engine recomputes burn amounts at the current price, so a price move
// between deposit and withdrawal may ask for more than was ever minted.
func (s *rewardIssuer) Burn(ctx context.Context, userID string, usd *big.Int) error {
	if usd == nil || usd.Sign() < 0 {
		return core.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.balances[userID]
	if !ok {
		if usd.Sign() > 0 {
			logger.FromContext(ctx).WithField("user_id", userID).
				Debugln("reward burn capped: asked", usd, "held 0")
		}
		return nil
	}
	if b.Cmp(usd) < 0 {
		logger.FromContext(ctx).WithField("user_id", userID).
			Debugln("reward burn capped: asked", usd, "held", b)
	}
	b.Sub(b, number.Min(b, usd))
	return nil
}

func (s *rewardIssuer) Balance(ctx context.Context, userID string) (*big.Int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if b, ok := s.balances[userID]; ok {
		return new(big.Int).Set(b), nil
	}
	return big.NewInt(0), nil
}
