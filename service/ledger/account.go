package ledger

import (
	"context"
	"math/big"

	"lever/core"
	"lever/internal/interest"
	"lever/pkg/number"
)

type adjustment struct {
	assetID      string
	depositDelta *big.Int
	borrowDelta  *big.Int
}

type adjustments []adjustment

// pricesFor fetches every price one aggregation pass needs before any state
// is touched, so an oracle failure aborts with zero side effects. Only tokens
// the user actually holds or owes need a price, plus any extras the caller is
// about to touch.
func (s *Service) pricesFor(ctx context.Context, reserves []*core.Reserve, extras ...string) (map[string]*big.Int, error) {
	need := make(map[string]bool)
	for _, r := range reserves {
		if r.Deposited.Sign() > 0 || r.Borrowed.Sign() > 0 {
			need[r.AssetID] = true
		}
	}
	for _, assetID := range extras {
		need[assetID] = true
	}

	prices := make(map[string]*big.Int, len(need))
	for assetID := range need {
		price, err := s.oracle.GetPrice(ctx, assetID)
		if err != nil {
			return nil, err
		}
		prices[assetID] = price
	}
	return prices, nil
}

// snapshotAt aggregates the user's position over every registered token
// exactly once, in registration order, optionally with hypothetical deltas
// applied. Sums stay in usd wads the whole way; division happens only at the
// final health factor.
func (s *Service) snapshotAt(ctx context.Context, userID string, prices map[string]*big.Int, adjs adjustments) (*core.AccountSnapshot, error) {
	tokens, err := s.tokens.All(ctx)
	if err != nil {
		return nil, err
	}

	userReserves, err := s.reserves.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	byAsset := make(map[string]*core.Reserve, len(userReserves))
	for _, r := range userReserves {
		byAsset[r.AssetID] = r
	}

	var (
		collateral = big.NewInt(0)
		debt       = big.NewInt(0)
		capacity   = big.NewInt(0)
	)

	for _, token := range tokens {
		deposited := big.NewInt(0)
		borrowed := big.NewInt(0)
		if r, ok := byAsset[token.AssetID]; ok {
			deposited.Set(r.Deposited)
			borrowed.Set(r.Borrowed)
		}
		for _, adj := range adjs {
			if adj.assetID != token.AssetID {
				continue
			}
			if adj.depositDelta != nil {
				deposited.Add(deposited, adj.depositDelta)
			}
			if adj.borrowDelta != nil {
				borrowed.Add(borrowed, adj.borrowDelta)
			}
		}

		if deposited.Sign() == 0 && borrowed.Sign() == 0 {
			continue
		}

		price, ok := prices[token.AssetID]
		if !ok {
			return nil, core.ErrPriceFeedNotConfigured
		}

		value := number.TokenToUSD(deposited, price, token.Decimals)
		collateral.Add(collateral, value)
		capacity.Add(capacity, number.ApplyBps(value, token.LTV))
		debt.Add(debt, number.TokenToUSD(borrowed, price, token.Decimals))
	}

	available := new(big.Int).Sub(capacity, debt)
	if available.Sign() < 0 {
		available = big.NewInt(0)
	}

	health := new(big.Int).Set(number.MaxHealthFactor)
	if debt.Sign() > 0 {
		health = number.WadDiv(capacity, debt)
	}

	return &core.AccountSnapshot{
		UserID:              userID,
		TotalCollateralUSD:  collateral,
		TotalDebtUSD:        debt,
		BorrowCapacityUSD:   capacity,
		AvailableBorrowsUSD: available,
		HealthFactor:        health,
	}, nil
}

// GetUserAccountData computes the account snapshot at current prices. Pure
// read, safe to call speculatively.
func (s *Service) GetUserAccountData(ctx context.Context, userID string) (*core.AccountSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userReserves, err := s.reserves.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	prices, err := s.pricesFor(ctx, userReserves)
	if err != nil {
		return nil, err
	}

	return s.snapshotAt(ctx, userID, prices, nil)
}

// GetUserDeposit recorded deposit balance
func (s *Service) GetUserDeposit(ctx context.Context, userID, assetID string) (*big.Int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reserve, err := s.reserves.Peek(ctx, userID, assetID)
	if err != nil {
		return nil, err
	}
	return reserve.Deposited, nil
}

// GetUserBorrow recorded borrow balance
func (s *Service) GetUserBorrow(ctx context.Context, userID, assetID string) (*big.Int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reserve, err := s.reserves.Peek(ctx, userID, assetID)
	if err != nil {
		return nil, err
	}
	return reserve.Borrowed, nil
}

// GetBorrowRate current borrow rate in bps for the token's pool
func (s *Service) GetBorrowRate(ctx context.Context, assetID string) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, err := s.tokens.Find(ctx, assetID); err != nil {
		return 0, err
	}
	pool, err := s.pools.Find(ctx, assetID)
	if err != nil {
		return 0, err
	}
	return interest.BorrowRateBps(pool.TotalBorrowed, pool.TotalDeposited), nil
}

// GetSupplyRate current supply rate in bps, derived from the borrow rate
func (s *Service) GetSupplyRate(ctx context.Context, assetID string) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, err := s.tokens.Find(ctx, assetID); err != nil {
		return 0, err
	}
	pool, err := s.pools.Find(ctx, assetID)
	if err != nil {
		return 0, err
	}
	return interest.SupplyRateBps(pool.TotalBorrowed, pool.TotalDeposited), nil
}
