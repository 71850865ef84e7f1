package market

import (
	"context"

	"lever/core"
	"lever/internal/interest"
	"lever/pkg/number"
	"lever/worker"

	"github.com/fox-one/pkg/logger"
	"github.com/robfig/cron/v3"
)

// Worker logs one rate snapshot per pool every minute so rate history
// survives in the logs without a metrics stack.
type Worker struct {
	worker.BaseJob
	TokenStore core.ITokenStore
	PoolStore  core.IPoolStore
}

// New new market worker
func New(tokenStore core.ITokenStore, poolStore core.IPoolStore) *Worker {
	job := Worker{
		TokenStore: tokenStore,
		PoolStore:  poolStore,
	}

	job.Cron = cron.New()
	spec := "@every 1m"
	job.Cron.AddFunc(spec, job.Run)
	job.OnWork = func() error {
		return job.onWork(context.Background())
	}

	return &job
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "market")

	tokens, err := w.TokenStore.All(ctx)
	if err != nil {
		log.Errorln("fetch all tokens error:", err)
		return err
	}

	for _, token := range tokens {
		pool, err := w.PoolStore.Find(ctx, token.AssetID)
		if err != nil {
			log.WithError(err).Errorln("pools.Find", token.Symbol)
			continue
		}

		log.WithFields(map[string]interface{}{
			"symbol":          token.Symbol,
			"total_deposited": number.FromRaw(pool.TotalDeposited, token.Decimals),
			"total_borrowed":  number.FromRaw(pool.TotalBorrowed, token.Decimals),
			"utilization_bps": interest.UtilizationBps(pool.TotalBorrowed, pool.TotalDeposited),
			"borrow_rate_bps": interest.BorrowRateBps(pool.TotalBorrowed, pool.TotalDeposited),
			"supply_rate_bps": interest.SupplyRateBps(pool.TotalBorrowed, pool.TotalDeposited),
		}).Infoln("market snapshot")
	}

	return nil
}
