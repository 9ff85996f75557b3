package experiments

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"hotdice/engine"
	"hotdice/experiments/metrics"
	"hotdice/game"
)

const NumGames = 1000 // Per player config

// Runner plays every player config for a number of single-player games.
type Runner struct {
	Games      int
	Workers    int
	Seed       uint64 // 0 picks a random seed
	GameConfig game.GameConfig
	OutputDir  string // No files are written when empty
	Fixpoint   bool
}

func NewRunner() *Runner {
	return &Runner{
		Games:      NumGames,
		Workers:    1,
		GameConfig: game.DefaultGameConfig(),
	}
}

type job struct {
	config int // Index into the configs
	game   int
}

// Run plays Games games for each config over Workers goroutines. Records
// come back ordered by config then game, and the same seed gives the same
// games whatever the number of workers.
func (r *Runner) Run(ctx context.Context, name string, configs []PlayerConfig) ([]metrics.GameRecord, []metrics.Summary, error) {
	if len(configs) == 0 {
		panic("experiment needs at least one player config")
	}
	if r.Games <= 0 || r.Workers <= 0 {
		panic("experiment needs a positive number of games and workers")
	}
	for _, config := range configs {
		if _, err := newPlayer(config, 0); err != nil {
			return nil, nil, err
		}
	}

	logger := zerolog.Ctx(ctx)
	runID := uuid.New().String()
	seed := r.Seed
	if seed == 0 {
		seed = frand.Uint64n(math.MaxUint64)
	}
	start := time.Now()
	logger.Info().Msgf("starting %s experiment %s with %d configs, %d games each, seed %d...", name, runID, len(configs), r.Games, seed)

	scorer := game.NewScorer()
	if r.Fixpoint {
		scorer = game.NewScorer(game.WithFixpointMerge())
	}

	jobs := make(chan job, len(configs)*r.Games)
	for ci := range configs {
		for g := 0; g < r.Games; g++ {
			jobs <- job{config: ci, game: g}
		}
	}
	close(jobs)

	records := make([]metrics.GameRecord, len(configs)*r.Games)
	completed := make([]atomic.Int64, len(configs))

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < r.Workers; w++ {
		g.Go(func() error {
			for j := range jobs {
				if err := gctx.Err(); err != nil {
					return err
				}
				config := configs[j.config]
				gs := gameSeed(seed, j.config, j.game)

				p, err := newPlayer(config, gs)
				if err != nil {
					return err
				}
				e := engine.New(game.NewSeededSource(gs), engine.WithScorer(scorer), engine.WithMetrics())
				result, err := e.PlayGame(gctx, p, r.GameConfig)
				if err != nil {
					return fmt.Errorf("%s game %d: %w", config.Name, j.game, err)
				}

				records[j.config*r.Games+j.game] = metrics.GameRecord{
					Game:       j.game,
					Config:     config.ID,
					Player:     config.Name,
					TotalScore: result.TotalScore,
					Turns:      result.Turns,
					Busts:      result.Busts,
					Rolls:      result.Rolls,
					Won:        result.Won,
					GameMetric: result.Metric,
				}
				logger.Debug().Msgf("%s game %d over after %d turns", config.Name, j.game, result.Turns)

				if completed[j.config].Add(1) == int64(r.Games) {
					logger.Info().Msgf("completed config %d (%s)", config.ID, config.Name)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	summaries := metrics.Summarize(records)
	duration := time.Since(start)
	logger.Info().Msgf("completed %s experiment in %s", name, duration)

	if r.OutputDir != "" {
		setup := metrics.Setup{
			RunID:        runID,
			Experiment:   name,
			Games:        r.Games,
			Workers:      r.Workers,
			Seed:         seed,
			WinningScore: r.GameConfig.WinningScore,
			Fixpoint:     r.Fixpoint,
			Duration:     duration,
		}
		if err := r.write(ctx, setup, configs, records, summaries); err != nil {
			return nil, nil, err
		}
	}

	return records, summaries, nil
}

func (r *Runner) write(ctx context.Context, setup metrics.Setup, configs []PlayerConfig, records []metrics.GameRecord, summaries []metrics.Summary) error {
	logger := zerolog.Ctx(ctx)

	writer, err := metrics.NewWriter(r.OutputDir, setup.Experiment)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteSetup(setup)
	if err != nil {
		return fmt.Errorf("failed to store setup: %w", err)
	}

	err = writer.WritePlayerConfigs(configs)
	if err != nil {
		return fmt.Errorf("failed to store player configs: %w", err)
	}
	logger.Info().Msg("stored player configs")

	// Store experiment results
	err = writer.WriteGameRecords(records)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	logger.Info().Msg("stored game records")

	err = writer.WriteSummaries(summaries)
	if err != nil {
		return fmt.Errorf("failed to write summaries: %w", err)
	}
	logger.Info().Msgf("stored summaries in %s", writer.Dir())

	return nil
}

// RunStopTargetExperiment compares players that bank at each target unless
// they have hot dice, all taking the best points per die.
func RunStopTargetExperiment(ctx context.Context, runner *Runner, targets []int) ([]metrics.GameRecord, []metrics.Summary, error) {
	configs := make([]PlayerConfig, len(targets))
	for i, target := range targets {
		configs[i] = PlayerConfig{
			ID:            i + 1,
			Name:          fmt.Sprintf("%dhardstop-bestper", target),
			Target:        target,
			RollStrategy:  StopAtUnlessHotDice,
			ScoreStrategy: "best_per_die_hot_dice",
		}
	}
	return runner.Run(ctx, "stop_target", configs)
}

// RunSelectorExperiment compares every score strategy at the same stop target.
func RunSelectorExperiment(ctx context.Context, runner *Runner, target int) ([]metrics.GameRecord, []metrics.Summary, error) {
	configs := []PlayerConfig{}
	for i, selector := range SelectorNames() {
		configs = append(configs, PlayerConfig{
			ID:            i + 1,
			Name:          fmt.Sprintf("%dhardstop-%s", target, selector),
			Target:        target,
			RollStrategy:  StopAtUnlessHotDice,
			ScoreStrategy: selector,
		})
	}
	return runner.Run(ctx, "selector", configs)
}
