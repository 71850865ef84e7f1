package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"lever/handler/hc"
	"lever/handler/rest"
	"lever/worker"
	"lever/worker/market"
	"lever/worker/pricewatch"

	"github.com/drone/signal"
	"github.com/fox-one/pkg/logger"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "run lever api server",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		a := provideApp()
		if err := setupGenesis(ctx, a); err != nil {
			logrus.WithError(err).Fatal("setup genesis tokens failed")
		}

		mux := chi.NewMux()
		mux.Use(middleware.Recoverer)
		mux.Use(middleware.StripSlashes)
		mux.Use(cors.AllowAll().Handler)
		mux.Use(logger.WithRequestID)
		mux.Use(middleware.Logger)
		mux.Use(middleware.NewCompressor(5).Handler)

		{
			//hc
			mux.Mount("/hc", hc.Handle(rootCmd.Version))
		}

		{
			//restful api
			mux.Mount("/api", rest.Handle(
				a.engine,
				a.engine,
				a.engine,
				a.oraclez,
				a.pools,
				a.rewardz,
				a.transferz,
			))
		}

		workers := []worker.IJob{
			market.New(a.tokens, a.pools),
			pricewatch.New(a.tokens, a.oraclez),
		}
		for _, w := range workers {
			if err := w.Start(); err != nil {
				logrus.WithError(err).Fatal("start worker failed")
			}
		}

		port, _ := cmd.Flags().GetInt("port")
		if port == 0 {
			port = cfg.API.Port
		}
		addr := fmt.Sprintf(":%d", port)

		server := &http.Server{
			Addr:    addr,
			Handler: mux,
		}

		ctx, quit := context.WithCancel(ctx)
		done := make(chan struct{}, 1)
		signal.WithContextFunc(ctx, func() {
			quit()

			for _, w := range workers {
				_ = w.Stop()
			}

			ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			defer cancel()

			if err := server.Shutdown(ctx); err != nil {
				logrus.WithError(err).Error("graceful shutdown server failed")
			}

			close(done)
		})

		logrus.Infoln("serve at", addr)
		err := server.ListenAndServe()
		if err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("server aborted")
		}

		<-done
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.Flags().IntP("port", "p", 0, "server port, defaults to api.port from config")
}
