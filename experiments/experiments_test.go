package experiments

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"hotdice/experiments/metrics"
	"hotdice/game"
)

func newTestRunner(games, workers int) *Runner {
	r := NewRunner()
	r.Games = games
	r.Workers = workers
	r.Seed = 42
	r.GameConfig = game.GameConfig{WinningScore: 1000}
	return r
}

func TestRun(t *testing.T) {
	configs := []PlayerConfig{
		{ID: 1, Name: "300", Target: 300, RollStrategy: StopAtUnlessHotDice, ScoreStrategy: "best_per_die_hot_dice"},
		{ID: 2, Name: "500", Target: 500, RollStrategy: StopAt, ScoreStrategy: "highest_score"},
	}

	t.Run("plays every game of every config", func(t *testing.T) {
		records, summaries, err := newTestRunner(5, 3).Run(context.Background(), "test", configs)
		require.NoError(t, err)

		require.Len(t, records, 10)
		for i, r := range records {
			require.Equal(t, configs[i/5].ID, r.Config)
			require.Equal(t, configs[i/5].Name, r.Player)
			require.Equal(t, i%5, r.Game)
			require.True(t, r.Won)
			require.GreaterOrEqual(t, r.TotalScore, 1000)
			require.Equal(t, r.TotalScore, r.BankedPoints)
		}

		require.Len(t, summaries, 2)
		require.Equal(t, 5, summaries[0].Games)
		require.Equal(t, 5, summaries[1].Wins)
	})

	t.Run("same seed gives the same games with any number of workers", func(t *testing.T) {
		first, _, err := newTestRunner(4, 1).Run(context.Background(), "test", configs)
		require.NoError(t, err)
		second, _, err := newTestRunner(4, 4).Run(context.Background(), "test", configs)
		require.NoError(t, err)

		ignoreTimes := cmpopts.IgnoreFields(metrics.GameMetric{}, "StartTime", "EndTime", "Duration")
		if diff := cmp.Diff(first, second, ignoreTimes); diff != "" {
			t.Errorf("records differ (-1 worker +4 workers):\n%s", diff)
		}
	})

	t.Run("fixpoint merge", func(t *testing.T) {
		runner := newTestRunner(3, 2)
		runner.Fixpoint = true

		records, _, err := runner.Run(context.Background(), "test", configs)
		require.NoError(t, err)
		require.Len(t, records, 6)
	})

	t.Run("writes results", func(t *testing.T) {
		runner := newTestRunner(2, 2)
		runner.OutputDir = t.TempDir()

		_, _, err := runner.Run(context.Background(), "written", configs)
		require.NoError(t, err)

		for _, file := range []string{"setup.yaml", "player_configs.csv", "game_records.csv", "summaries.csv"} {
			matches, err := filepath.Glob(filepath.Join(runner.OutputDir, "written", "*", file))
			require.NoError(t, err)
			require.Len(t, matches, 1, file)
			info, err := os.Stat(matches[0])
			require.NoError(t, err)
			require.Positive(t, info.Size())
		}
	})

	t.Run("unknown strategies", func(t *testing.T) {
		_, _, err := newTestRunner(1, 1).Run(context.Background(), "test", []PlayerConfig{
			{ID: 1, Name: "x", RollStrategy: "gut_feeling", ScoreStrategy: "highest_score"},
		})
		require.ErrorIs(t, err, ErrUnknownStrategy)

		_, _, err = newTestRunner(1, 1).Run(context.Background(), "test", []PlayerConfig{
			{ID: 1, Name: "x", RollStrategy: StopAt, ScoreStrategy: "lowest_score"},
		})
		require.ErrorIs(t, err, ErrUnknownStrategy)
	})

	t.Run("monte carlo needs episodes", func(t *testing.T) {
		_, _, err := newTestRunner(1, 1).Run(context.Background(), "test", []PlayerConfig{
			{ID: 1, Name: "mc", Target: 300, RollStrategy: MonteCarlo, ScoreStrategy: "highest_score", Goroutines: 1},
		})
		require.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := newTestRunner(5, 2).Run(ctx, "test", configs)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("panics on misconfiguration", func(t *testing.T) {
		require.Panics(t, func() {
			newTestRunner(1, 1).Run(context.Background(), "test", nil)
		})
		require.Panics(t, func() {
			newTestRunner(0, 1).Run(context.Background(), "test", configs)
		})
		require.Panics(t, func() {
			newTestRunner(1, 0).Run(context.Background(), "test", configs)
		})
	})
}

func TestRunStopTargetExperiment(t *testing.T) {
	records, summaries, err := RunStopTargetExperiment(context.Background(), newTestRunner(3, 2), []int{100, 300, 1000})
	require.NoError(t, err)

	require.Len(t, records, 9)
	names := []string{}
	for _, s := range summaries {
		names = append(names, s.Name)
	}
	require.Equal(t, []string{"100hardstop-bestper", "300hardstop-bestper", "1000hardstop-bestper"}, names)
}

func TestRunSelectorExperiment(t *testing.T) {
	_, summaries, err := RunSelectorExperiment(context.Background(), newTestRunner(2, 4), 300)
	require.NoError(t, err)

	require.Len(t, summaries, len(SelectorNames()))
	require.Equal(t, "300hardstop-fewest_dice", summaries[3].Name)
}

func TestRunSearchExperiment(t *testing.T) {
	records, summaries, err := RunSearchExperiment(context.Background(), newTestRunner(2, 2), []int{1, 2}, 20, 300)
	require.NoError(t, err)

	require.Len(t, records, 6)
	require.Len(t, summaries, 3)
	require.Equal(t, "montecarlo-2x20", summaries[2].Name)
	for _, r := range records {
		require.True(t, r.Won)
	}
}
