package rest

import (
	"errors"
	"net/http"

	"lever/core"
	"lever/handler/render"

	"github.com/bluele/gcache"
	"github.com/go-chi/chi"
	"golang.org/x/sync/singleflight"
)

// Handle handle rest api request
func Handle(
	tokenz core.ITokenService,
	ledgerz core.ILedgerService,
	liquidationz core.ILiquidationService,
	oraclez core.IPriceOracleService,
	pools core.IPoolStore,
	rewardz core.IRewardIssuer,
	transferz core.ITransferService,
) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	markets := &marketCache{
		cache: gcache.New(16).LRU().Build(),
		sf:    &singleflight.Group{},
	}

	router.Get("/markets", allMarketsHandler(markets, tokenz, pools, oraclez))
	router.Get("/markets/{asset}", marketHandler(tokenz, pools, oraclez))
	router.Get("/accounts/{user}", accountHandler(ledgerz, rewardz))
	router.Get("/accounts/{user}/reserves/{asset}", reserveHandler(tokenz, ledgerz))
	router.Get("/liquidations", liquidationsHandler(tokenz, liquidationz))

	router.Post("/deposit", depositHandler(tokenz, ledgerz, rewardz))
	router.Post("/withdraw", withdrawHandler(tokenz, ledgerz, rewardz))
	router.Post("/borrow", borrowHandler(tokenz, ledgerz, rewardz))
	router.Post("/repay", repayHandler(tokenz, ledgerz, rewardz))
	router.Post("/liquidate", liquidateHandler(tokenz, liquidationz))

	router.Route("/admin", func(r chi.Router) {
		r.Post("/tokens", addTokenHandler(tokenz))
		r.Post("/tokens/{asset}/close", closeTokenHandler(tokenz))
		r.Post("/price", setPriceHandler(oraclez))
		r.Post("/faucet", faucetHandler(transferz))
	})

	return router
}
