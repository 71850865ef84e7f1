package ledger

import (
	"context"
	"math/big"
	"sync"

	"lever/core"
	"lever/pkg/number"

	"github.com/fox-one/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Config engine risk parameters
type Config struct {
	// CloseFactorBps max fraction of one debt position a single liquidation
	// call may repay
	CloseFactorBps uint64
	// LiquidationBonusBps extra collateral awarded to the liquidator
	LiquidationBonusBps uint64
}

// Service the accounting and risk engine. A single write lock serializes all
// mutating calls so every operation sees and commits a consistent snapshot;
// reads share the lock. Implements core.ILedgerService,
// core.ILiquidationService and core.ITokenService.
type Service struct {
	mu sync.RWMutex

	cfg       Config
	tokens    core.ITokenStore
	pools     core.IPoolStore
	reserves  core.IReserveStore
	events    core.ILiquidationEventStore
	oracle    core.IPriceOracleService
	rewards   core.IRewardIssuer
	transfers core.ITransferService
}

// New new ledger engine
func New(
	cfg Config,
	tokens core.ITokenStore,
	pools core.IPoolStore,
	reserves core.IReserveStore,
	events core.ILiquidationEventStore,
	oracle core.IPriceOracleService,
	rewards core.IRewardIssuer,
	transfers core.ITransferService,
) *Service {
	if cfg.CloseFactorBps == 0 {
		cfg.CloseFactorBps = 5000
	}
	if cfg.LiquidationBonusBps == 0 {
		cfg.LiquidationBonusBps = 500
	}

	return &Service{
		cfg:       cfg,
		tokens:    tokens,
		pools:     pools,
		reserves:  reserves,
		events:    events,
		oracle:    oracle,
		rewards:   rewards,
		transfers: transfers,
	}
}

// Deposit pulls amount of the token from the user into pool custody and
// mints usd-wad reward units at the current price. Deposits only increase
// collateral, so no risk check runs.
func (s *Service) Deposit(ctx context.Context, userID, assetID string, amount *big.Int) error {
	if !number.IsPositive(amount) {
		return core.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.FromContext(ctx).WithFields(logrus.Fields{
		"event":    "deposit",
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

	price, err := s.oracle.GetPrice(ctx, assetID)
	if err != nil {
		return err
	}

	if err := s.transfers.Pull(ctx, userID, assetID, amount); err != nil {
		return err
	}

	pool, err := s.pools.Find(ctx, assetID)
	if err != nil {
		return err
	}
	pool.TotalDeposited.Add(pool.TotalDeposited, amount)
	if err := s.pools.Save(ctx, pool); err != nil {
		log.WithError(err).Errorln("pools.Save")
		return err
	}

	reserve, err := s.reserves.Find(ctx, userID, assetID)
	if err != nil {
		return err
	}
	reserve.Deposited.Add(reserve.Deposited, amount)
	if err := s.reserves.Save(ctx, reserve); err != nil {
		log.WithError(err).Errorln("reserves.Save")
		return err
	}

	usd := number.TokenToUSD(amount, price, token.Decimals)
	if err := s.rewards.Mint(ctx, userID, usd); err != nil {
		log.WithError(err).Errorln("rewards.Mint")
		return err
	}

	log.Infoln("deposited", amount, "minted", usd)
	return nil
}

// Withdraw returns amount of the token to the user and burns reward units
// worth the withdrawn usd value at the current price. When the account owes
// anything, the withdrawal is first applied hypothetically and must leave the
// health factor at or above 1.0; an account with no debt may always withdraw.
func (s *Service) Withdraw(ctx context.Context, userID, assetID string, amount *big.Int) error {
	if !number.IsPositive(amount) {
		return core.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.FromContext(ctx).WithFields(logrus.Fields{
		"event":    "withdraw",
		"user_id":  userID,
		"asset_id": assetID,
	})

	token, err := s.tokens.Find(ctx, assetID)
	if err != nil {
		return err
	}

	reserve, err := s.reserves.Find(ctx, userID, assetID)
	if err != nil {
		return err
	}
	if reserve.Deposited.Cmp(amount) < 0 {
		return core.ErrInsufficientBalance
	}

	pool, err := s.pools.Find(ctx, assetID)
	if err != nil {
		return err
	}
	// the pool only holds what has not been lent out
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
		{assetID: assetID, depositDelta: new(big.Int).Neg(amount)},
	})
	if err != nil {
		return err
	}
	if !snap.NoDebt() && !snap.Solvent() {
		return core.ErrWithdrawalBreaksHealthFactor
	}

	pool.TotalDeposited.Sub(pool.TotalDeposited, amount)
	if err := s.pools.Save(ctx, pool); err != nil {
		log.WithError(err).Errorln("pools.Save")
		return err
	}

	reserve.Deposited.Sub(reserve.Deposited, amount)
	if err := s.reserves.Save(ctx, reserve); err != nil {
		log.WithError(err).Errorln("reserves.Save")
		return err
	}

	if err := s.transfers.Push(ctx, userID, assetID, amount); err != nil {
		log.WithError(err).Errorln("transfers.Push")
		return err
	}

	usd := number.TokenToUSD(amount, prices[assetID], token.Decimals)
	if err := s.rewards.Burn(ctx, userID, usd); err != nil {
		log.WithError(err).Errorln("rewards.Burn")
		return err
	}

	log.Infoln("withdrew", amount, "burned", usd)
	return nil
}
