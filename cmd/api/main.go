package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rebill/internal/config"
	httpx "rebill/internal/http"
	"rebill/internal/metrics"
	"rebill/internal/rebill"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()
	zerolog.SetGlobalLevel(cfg.App.Level())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metrics.MustRegister(prometheus.DefaultRegisterer)

	// Establish the SOAP session once; it is shared by all handlers
	client, err := rebill.New(ctx, cfg.Eway)
	if err != nil {
		log.Fatal().Err(err).Str("wsdl_url", cfg.Eway.WSDLURL).Msg("rebill session failed")
	}

	if cfg.Sec.AdminToken == "" {
		log.Warn().Msg("ADMIN_TOKEN not set, API routes disabled")
	}

	r := httpx.NewRouter(httpx.RouterDependencies{
		Config: cfg,
		Rebill: client,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Eway.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info().Msgf("rebill gateway listening on :%s", cfg.App.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	cancel()
	ctx2, cancel2 := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	log.Info().Msg("server stopped")
}
