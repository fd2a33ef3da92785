package main

import (
	"flag"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gambit/config"
	"gambit/engine"
	"gambit/searcher"
)

var (
	games = flag.Int("games", 0, "number of self-play games (overrides config)")
	quiet = flag.Bool("quiet", false, "suppress the move-by-move transcript")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if *games > 0 {
		cfg.Games = *games
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	variant, err := cfg.PolicyVariant()
	if err != nil {
		log.Fatal().Err(err).Msg("rollout policy")
	}

	collector := searcher.NewMetricsCollector()
	options := []searcher.Option{
		searcher.WithIterations(cfg.Iterations),
		searcher.WithPolicy(variant),
		searcher.WithMetrics(collector),
	}
	if cfg.Seed != 0 {
		options = append(options, searcher.WithSeed(cfg.Seed))
	}
	selector := engine.NewMoveSelector(engine.WithSearcher(searcher.NewMCTS(options...)))

	out := io.Writer(os.Stdout)
	if *quiet {
		out = io.Discard
	}
	sp := engine.NewSelfPlay(
		engine.WithSelector(selector),
		engine.WithCollector(collector),
		engine.WithOutput(out),
		engine.WithMaxPlies(cfg.MaxPlies),
	)

	log.Info().
		Int("games", cfg.Games).
		Int("iterations", cfg.Iterations).
		Str("policy", cfg.Policy).
		Msg("starting self-play")

	for i := 1; i <= cfg.Games; i++ {
		record, err := sp.Run()
		if err != nil {
			log.Fatal().Err(err).Int("game", i).Msg("self-play failed")
		}
		log.Info().
			Int("game", i).
			Str("result", record.Result.String()).
			Int("plies", record.Plies).
			Int("book_moves", record.BookMoves).
			Int("search_moves", record.SearchMoves).
			Msg("game finished")
	}

	sp.Summary(os.Stdout)
}
