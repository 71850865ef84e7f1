package cmd

import (
	"context"
	"time"

	"lever/core"
	"lever/pkg/number"
	ledgerservice "lever/service/ledger"
	oracleservice "lever/service/oracle"
	"lever/service/reward"
	"lever/service/vault"
	"lever/store/event"
	"lever/store/pool"
	"lever/store/reserve"
	"lever/store/token"
)

// app holds the singletons for one server run. Stores are in memory, so
// everything has to share one instance of each.
type app struct {
	tokens   core.ITokenStore
	pools    core.IPoolStore
	reserves core.IReserveStore
	events   core.ILiquidationEventStore

	oraclez   core.IPriceOracleService
	rewardz   core.IRewardIssuer
	transferz core.ITransferService

	engine *ledgerservice.Service
}

func provideApp() *app {
	a := &app{
		tokens:    token.New(),
		pools:     pool.New(),
		reserves:  reserve.New(),
		events:    event.New(),
		oraclez:   provideOracleService(),
		rewardz:   reward.New(),
		transferz: vault.New(),
	}

	a.engine = ledgerservice.New(
		ledgerservice.Config{
			CloseFactorBps:      cfg.Risk.CloseFactorBps,
			LiquidationBonusBps: cfg.Risk.LiquidationBonusBps,
		},
		a.tokens,
		a.pools,
		a.reserves,
		a.events,
		a.oraclez,
		a.rewardz,
		a.transferz,
	)

	return a
}

func provideOracleService() core.IPriceOracleService {
	return oracleservice.New(time.Duration(cfg.Risk.PriceTimeoutSeconds) * time.Second)
}

// setupGenesis lists the configured tokens and seeds their manual price
// feeds. Safe to call with an empty token list.
func setupGenesis(ctx context.Context, a *app) error {
	now := time.Now()
	for _, t := range cfg.Tokens {
		if _, err := a.engine.AddToken(ctx, t.AssetID, t.Symbol, t.LTV, t.Decimals); err != nil {
			return err
		}

		price := number.Decimal(t.Price)
		if !price.IsPositive() {
			continue
		}

		feed := oracleservice.NewManualFeed(number.ToWad(price), number.WadDecimals, now)
		if err := a.oraclez.SetPriceFeed(ctx, t.AssetID, feed); err != nil {
			return err
		}
	}

	return nil
}
