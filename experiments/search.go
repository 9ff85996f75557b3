package experiments

import (
	"context"
	"fmt"

	"hotdice/experiments/metrics"
)

// RunSearchExperiment pits Monte Carlo roll-again players, one per
// goroutine count, against the stop target player they fall back on.
func RunSearchExperiment(ctx context.Context, runner *Runner, goroutines []int, episodes, target int) ([]metrics.GameRecord, []metrics.Summary, error) {
	configs := []PlayerConfig{{
		ID:            0,
		Name:          fmt.Sprintf("%dhardstop-bestper", target),
		Target:        target,
		RollStrategy:  StopAtUnlessHotDice,
		ScoreStrategy: "best_per_die_hot_dice",
	}}
	for i, n := range goroutines {
		configs = append(configs, PlayerConfig{
			ID:            i + 1,
			Name:          fmt.Sprintf("montecarlo-%dx%d", n, episodes),
			Target:        target,
			RollStrategy:  MonteCarlo,
			ScoreStrategy: "best_per_die_hot_dice",
			Goroutines:    n,
			Episodes:      episodes,
		})
	}
	return runner.Run(ctx, "search", configs)
}
