package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gambit/config"
	"gambit/engine"
	"gambit/searcher"
	"gambit/server"
)

const gracefulShutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	variant, err := cfg.PolicyVariant()
	if err != nil {
		log.Fatal().Err(err).Msg("rollout policy")
	}

	options := []searcher.Option{
		searcher.WithIterations(cfg.Iterations),
		searcher.WithPolicy(variant),
	}
	if cfg.Seed != 0 {
		options = append(options, searcher.WithSeed(cfg.Seed))
	}
	selector := engine.NewMoveSelector(engine.WithSearcher(searcher.NewMCTS(options...)))

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: server.New(server.WithSelector(selector), server.WithLogger(log.Logger)).Router(),
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info().Msg("got quit signal...")

		ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Str("addr", cfg.Addr).Int("iterations", cfg.Iterations).Msg("server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server failed")
	}
	log.Info().Msg("server gracefully shutting down")
}
