package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hotdice/config"
	"hotdice/experiments"
	"hotdice/experiments/metrics"
	"hotdice/game"
)

func main() {
	cfg, err := config.Parse()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	flag.StringVar(&cfg.Experiment, "experiment", cfg.Experiment, "Experiment to run: stop_target, selector or search")
	flag.IntVar(&cfg.Games, "games", cfg.Games, "Games per player config")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "Number of goroutines playing games")
	flag.IntVar(&cfg.Target, "target", cfg.Target, "Stop target for the selector and search experiments")
	flag.IntVar(&cfg.Episodes, "episodes", cfg.Episodes, "Rollouts per Monte Carlo decision")
	flag.StringVar(&cfg.OutputDir, "output", cfg.OutputDir, "Directory for experiment results, empty to skip writing")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Dice seed, 0 for a random one")
	flag.BoolVar(&cfg.Fixpoint, "fixpoint", cfg.Fixpoint, "Merge scoring combinations to a fixpoint")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	zerolog.SetGlobalLevel(cfg.Level())
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = log.Logger.WithContext(ctx)

	runner := &experiments.Runner{
		Games:      cfg.Games,
		Workers:    cfg.Workers,
		Seed:       cfg.Seed,
		GameConfig: game.GameConfig{WinningScore: cfg.WinningScore},
		OutputDir:  cfg.OutputDir,
		Fixpoint:   cfg.Fixpoint,
	}

	var summaries []metrics.Summary
	switch cfg.Experiment {
	case config.StopTarget:
		_, summaries, err = experiments.RunStopTargetExperiment(ctx, runner, cfg.Targets)
	case config.Selector:
		_, summaries, err = experiments.RunSelectorExperiment(ctx, runner, cfg.Target)
	case config.Search:
		_, summaries, err = experiments.RunSearchExperiment(ctx, runner, cfg.Goroutines, cfg.Episodes, cfg.Target)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", cfg.Experiment)
	}

	for _, s := range summaries {
		log.Info().Msgf("%-28s games=%d mean_turns=%.1f median_turns=%.1f mean_busts=%.1f mean_rolls=%.1f points_per_turn=%.1f",
			s.Name, s.Games, s.MeanTurns, s.MedianTurns, s.MeanBusts, s.MeanRolls, s.PointsPerTurn)
	}
}
