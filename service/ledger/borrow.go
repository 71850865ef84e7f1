package ledger

import (
	"context"
	"math/big"

	"lever/core"
	"lever/pkg/number"

	"github.com/fox-one/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Borrow draws amount of the token against the user's weighted collateral.
// The liquidity gate is purely amount based; the collateral gate compares
// weighted capacity against the debt including the new borrow, with equality
// allowed.
func (s *Service) Borrow(ctx context.Context, userID, assetID string, amount *big.Int) error {
	if !number.IsPositive(amount) {
		return core.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.FromContext(ctx).WithFields(logrus.Fields{
		"event":    "borrow",
		"user_id":  userID,
		"asset_id": assetID,
	})

	token, err := s.tokens.Find(ctx, assetID)
	if err != nil {
		return err
	}
	if !token.Active {
		return core.ErrTokenNotActive
	}

	pool, err := s.pools.Find(ctx, assetID)
	if err != nil {
		return err
	}
	if pool.Available().Cmp(amount) < 0 {
		return core.ErrInsufficientLiquidity
	}

	userReserves, err := s.reserves.FindByUser(ctx, userID)
	if err != nil {
		return err
	}
	prices, err := s.pricesFor(ctx, userReserves, assetID)
	if err != nil {
		return err
	}

	snap, err := s.snapshotAt(ctx, userID, prices, adjustments{
		{assetID: assetID, borrowDelta: amount},
	})
	if err != nil {
		return err
	}
	if snap.BorrowCapacityUSD.Cmp(snap.TotalDebtUSD) < 0 {
		return core.ErrInsufficientCollateral
	}

	pool.TotalBorrowed.Add(pool.TotalBorrowed, amount)
	if err := s.pools.Save(ctx, pool); err != nil {
		log.WithError(err).Errorln("pools.Save")
		return err
	}

	reserve, err := s.reserves.Find(ctx, userID, assetID)
	if err != nil {
		return err
	}
	reserve.Borrowed.Add(reserve.Borrowed, amount)
	if err := s.reserves.Save(ctx, reserve); err != nil {
		log.WithError(err).Errorln("reserves.Save")
		return err
	}

	if err := s.transfers.Push(ctx, userID, assetID, amount); err != nil {
		log.WithError(err).Errorln("transfers.Push")
		return err
	}

	log.Infoln("borrowed", amount)
	return nil
}

// Repay pays down the user's debt in the token. Repaying more than owed is
// allowed at the call site; only min(amount, owed) is pulled from the payer.
func (s *Service) Repay(ctx context.Context, userID, assetID string, amount *big.Int) error {
	if !number.IsPositive(amount) {
		return core.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.FromContext(ctx).WithFields(logrus.Fields{
		"event":    "repay",
		"user_id":  userID,
		"asset_id": assetID,
	})

	if _, err := s.tokens.Find(ctx, assetID); err != nil {
		return err
	}

	reserve, err := s.reserves.Find(ctx, userID, assetID)
	if err != nil {
		return err
	}
	if reserve.Borrowed.Sign() == 0 {
		return core.ErrNoDebtToRepay
	}

	capped := number.Min(amount, reserve.Borrowed)
	if err := s.transfers.Pull(ctx, userID, assetID, capped); err != nil {
		return err
	}

	pool, err := s.pools.Find(ctx, assetID)
	if err != nil {
		return err
	}
	pool.TotalBorrowed.Sub(pool.TotalBorrowed, capped)
	if err := s.pools.Save(ctx, pool); err != nil {
		log.WithError(err).Errorln("pools.Save")
		return err
	}

	reserve.Borrowed.Sub(reserve.Borrowed, capped)
	if err := s.reserves.Save(ctx, reserve); err != nil {
		log.WithError(err).Errorln("reserves.Save")
		return err
	}

	log.Infoln("repaid", capped)
	return nil
}
