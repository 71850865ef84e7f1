package ledger

import (
	"context"
	"math/big"
	"time"

	"lever/core"
	"lever/pkg/number"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/uuid"
	"github.com/sirupsen/logrus"
)

// Liquidate repays part of an undercollateralized borrower's debt from the
// liquidator's balance and seizes debt-equivalent collateral plus the bonus,
// applied once: seized = debtValueUSD * (1 + bonus) / collateralPrice. One
// call never clears more than the close-factor fraction of the debt position
// and never seizes more of the collateral token than the borrower holds or
// than the pool has left undrawn.
func (s *Service) Liquidate(ctx context.Context, liquidator, borrower, debtAssetID string, debtAmount *big.Int, collateralAssetID string) (*core.LiquidationEvent, error) {
	if liquidator == borrower {
		return nil, core.ErrCannotLiquidateSelf
	}
	if !number.IsPositive(debtAmount) {
		return nil, core.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.FromContext(ctx).WithFields(logrus.Fields{
		"event":      "liquidation",
		"borrower":   borrower,
		"liquidator": liquidator,
	})

	debtToken, err := s.tokens.Find(ctx, debtAssetID)
	if err != nil {
		return nil, err
	}
	collateralToken, err := s.tokens.Find(ctx, collateralAssetID)
	if err != nil {
		return nil, err
	}

	borrowerReserves, err := s.reserves.FindByUser(ctx, borrower)
	if err != nil {
		return nil, err
	}
	prices, err := s.pricesFor(ctx, borrowerReserves, debtAssetID, collateralAssetID)
	if err != nil {
		return nil, err
	}

	before, err := s.snapshotAt(ctx, borrower, prices, nil)
	if err != nil {
		return nil, err
	}
	if before.Solvent() {
		return nil, core.ErrHealthFactorHealthy
	}

	debtReserve, err := s.reserves.Find(ctx, borrower, debtAssetID)
	if err != nil {
		return nil, err
	}
	if debtReserve.Borrowed.Sign() == 0 {
		return nil, core.ErrNoDebtToLiquidate
	}

	collateralReserve, err := s.reserves.Find(ctx, borrower, collateralAssetID)
	if err != nil {
		return nil, err
	}
	if collateralReserve.Deposited.Sign() == 0 {
		return nil, core.ErrNoCollateralOfThisType
	}

	maxRepay := number.ApplyBps(debtReserve.Borrowed, s.cfg.CloseFactorBps)
	if debtAmount.Cmp(maxRepay) > 0 {
		return nil, core.ErrExceedsMaxLiquidationAmount
	}

	debtValue := number.TokenToUSD(debtAmount, prices[debtAssetID], debtToken.Decimals)
	seizedValue := number.ApplyBps(debtValue, number.BpsScale+s.cfg.LiquidationBonusBps)
	seizedAmount := number.USDToToken(seizedValue, prices[collateralAssetID], collateralToken.Decimals)
	if seizedAmount.Cmp(collateralReserve.Deposited) > 0 {
		return nil, core.ErrInsufficientCollateralToSeize
	}

	// the collateral pool only holds what has not been lent out
	if p, err := s.pools.Find(ctx, collateralAssetID); err != nil {
		return nil, err
	} else if seizedAmount.Cmp(p.Available()) > 0 {
		return nil, core.ErrInsufficientLiquidity
	}

	if err := s.transfers.Pull(ctx, liquidator, debtAssetID, debtAmount); err != nil {
		return nil, err
	}

	debtPool, err := s.pools.Find(ctx, debtAssetID)
	if err != nil {
		return nil, err
	}
	debtPool.TotalBorrowed.Sub(debtPool.TotalBorrowed, debtAmount)
	if err := s.pools.Save(ctx, debtPool); err != nil {
		log.WithError(err).Errorln("pools.Save")
		return nil, err
	}

	debtReserve.Borrowed.Sub(debtReserve.Borrowed, debtAmount)
	if err := s.reserves.Save(ctx, debtReserve); err != nil {
		log.WithError(err).Errorln("reserves.Save")
		return nil, err
	}

	collateralPool, err := s.pools.Find(ctx, collateralAssetID)
	if err != nil {
		return nil, err
	}
	collateralPool.TotalDeposited.Sub(collateralPool.TotalDeposited, seizedAmount)
	if err := s.pools.Save(ctx, collateralPool); err != nil {
		log.WithError(err).Errorln("pools.Save")
		return nil, err
	}

	collateralReserve.Deposited.Sub(collateralReserve.Deposited, seizedAmount)
	if err := s.reserves.Save(ctx, collateralReserve); err != nil {
		log.WithError(err).Errorln("reserves.Save")
		return nil, err
	}

	if err := s.transfers.Push(ctx, liquidator, collateralAssetID, seizedAmount); err != nil {
		log.WithError(err).Errorln("transfers.Push")
		return nil, err
	}

	// same prices, post-mutation balances
	after, err := s.snapshotAt(ctx, borrower, prices, nil)
	if err != nil {
		return nil, err
	}

	event := &core.LiquidationEvent{
		ID:                 uuid.New(),
		Borrower:           borrower,
		Liquidator:         liquidator,
		DebtAssetID:        debtAssetID,
		RepaidAmount:       new(big.Int).Set(debtAmount),
		CollateralAssetID:  collateralAssetID,
		SeizedAmount:       seizedAmount,
		HealthFactorBefore: before.HealthFactor,
		HealthFactorAfter:  after.HealthFactor,
		CreatedAt:          time.Now(),
	}
	if err := s.events.Create(ctx, event); err != nil {
		log.WithError(err).Errorln("events.Create")
		return nil, err
	}

	log.Infoln("repaid", debtAmount, "seized", seizedAmount)
	return event, nil
}

// Liquidations recent liquidation events, newest first
func (s *Service) Liquidations(ctx context.Context, limit int) ([]*core.LiquidationEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.events.List(ctx, limit)
}
