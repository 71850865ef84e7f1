package pricewatch

import (
	"context"

	"lever/core"
	"lever/pkg/number"
	"lever/worker"

	"github.com/fox-one/pkg/logger"
	"github.com/robfig/cron/v3"
)

// Worker polls every listed token's price so a feed going stale or missing
// shows up in the logs before users hit it.
type Worker struct {
	worker.BaseJob
	TokenStore   core.ITokenStore
	PriceService core.IPriceOracleService
}

// New new pricewatch worker
func New(tokenStore core.ITokenStore, priceSrv core.IPriceOracleService) *Worker {
	job := Worker{
		TokenStore:   tokenStore,
		PriceService: priceSrv,
	}

	job.Cron = cron.New()
	spec := "@every 30s"
	job.Cron.AddFunc(spec, job.Run)
	job.OnWork = func() error {
		return job.onWork(context.Background())
	}

	return &job
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "pricewatch")

	tokens, err := w.TokenStore.All(ctx)
	if err != nil {
		log.Errorln("fetch all tokens error:", err)
		return err
	}

	for _, token := range tokens {
		if !token.Active {
			continue
		}

		price, err := w.PriceService.GetPrice(ctx, token.AssetID)
		if err != nil {
			log.WithError(err).Warnln("price unavailable for", token.Symbol)
			continue
		}

		log.Debugln(token.Symbol, "price", number.FromWad(price))
	}

	return nil
}
