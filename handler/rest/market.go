package rest

import (
	"context"
	"net/http"
	"time"

	"lever/core"
	"lever/handler/param"
	"lever/handler/render"
	"lever/handler/views"

	"github.com/asaskevich/govalidator"
	"github.com/bluele/gcache"
	"golang.org/x/sync/singleflight"
)

const marketCacheExpire = 3 * time.Second

// marketCache keeps the all-markets listing hot. Builds are collapsed
// with singleflight so concurrent readers share one oracle pass.
type marketCache struct {
	cache gcache.Cache
	sf    *singleflight.Group
}

func (c *marketCache) get(ctx context.Context, build func(ctx context.Context) ([]*views.Market, error)) ([]*views.Market, error) {
	const key = "markets"

	if v, err := c.cache.Get(key); err == nil {
		return v.([]*views.Market), nil
	}

	v, err, _ := c.sf.Do(key, func() (interface{}, error) {
		markets, err := build(ctx)
		if err != nil {
			return nil, err
		}

		_ = c.cache.SetWithExpire(key, markets, marketCacheExpire)
		return markets, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]*views.Market), nil
}

func buildMarketViews(ctx context.Context, tokenz core.ITokenService, pools core.IPoolStore, oraclez core.IPriceOracleService) ([]*views.Market, error) {
	tokens, err := tokenz.AllTokens(ctx)
	if err != nil {
		return nil, err
	}

	markets := make([]*views.Market, 0, len(tokens))
	for _, token := range tokens {
		pool, err := pools.Find(ctx, token.AssetID)
		if err != nil {
			return nil, err
		}

		// a flaky feed should not hide the market, render without price
		price, _ := oraclez.GetPrice(ctx, token.AssetID)
		markets = append(markets, views.MarketView(token, pool, price))
	}

	return markets, nil
}

func allMarketsHandler(markets *marketCache, tokenz core.ITokenService, pools core.IPoolStore, oraclez core.IPriceOracleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		items, err := markets.get(ctx, func(ctx context.Context) ([]*views.Market, error) {
			return buildMarketViews(ctx, tokenz, pools, oraclez)
		})
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, render.H{"markets": items})
	}
}

func marketHandler(tokenz core.ITokenService, pools core.IPoolStore, oraclez core.IPriceOracleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			AssetID string `json:"asset"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if !govalidator.IsUUID(params.AssetID) {
			render.BadRequest(w, core.ErrInvalidAddress)
			return
		}

		token, err := tokenz.TokenConfig(ctx, params.AssetID)
		if err != nil {
			render.Error(w, err)
			return
		}

		pool, err := pools.Find(ctx, token.AssetID)
		if err != nil {
			render.Error(w, err)
			return
		}

		price, _ := oraclez.GetPrice(ctx, token.AssetID)
		render.JSON(w, views.MarketView(token, pool, price))
	}
}
