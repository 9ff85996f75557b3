package searcher

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"hotdice/agent"
	"hotdice/game"
	"hotdice/meta"
)

type Option func(mc *MonteCarlo)

// MonteCarlo is a roll-again policy that estimates the value of rolling
// again by playing out the rest of the turn many times.
type MonteCarlo struct {
	goroutines int
	duration   time.Duration
	episodes   int
	cutoff     int
	selector   game.ScoreSelector
	baseline   game.RollAgainPolicy
	newSource  func() game.Source
	scorer     *game.Scorer
	metrics    *collector
	last       SearchMetric
}

func WithDuration(duration time.Duration) Option {
	return func(mc *MonteCarlo) {
		if duration > 0 {
			mc.duration = duration
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(mc *MonteCarlo) {
		if episodes > 0 {
			mc.episodes = episodes
		}
	}
}

// WithCutoff caps the rolls of a single rollout.
func WithCutoff(depth int) Option {
	return func(mc *MonteCarlo) {
		if depth > 0 {
			mc.cutoff = depth
		}
	}
}

// WithSelector sets the score selector used during rollouts.
func WithSelector(selector game.ScoreSelector) Option {
	return func(mc *MonteCarlo) {
		if selector != nil {
			mc.selector = selector
		}
	}
}

// WithBaseline sets the roll-again policy used after the first rollout roll.
// It also decides when no rollout could be played.
func WithBaseline(baseline game.RollAgainPolicy) Option {
	return func(mc *MonteCarlo) {
		if baseline != nil {
			mc.baseline = baseline
		}
	}
}

// WithSourceFactory sets how each search goroutine gets its dice.
func WithSourceFactory(newSource func() game.Source) Option {
	return func(mc *MonteCarlo) {
		if newSource != nil {
			mc.newSource = newSource
		}
	}
}

func NewMonteCarlo(goroutines int, options ...Option) *MonteCarlo {
	mc := &MonteCarlo{ // Default values
		goroutines: max(goroutines, 1),
		cutoff:     DEFAULT_CUTOFF,
		selector:   agent.BestPerDieHotDice(),
		baseline:   agent.StopAtUnlessHotDice(DEFAULT_BASELINE_TARGET),
		newSource: func() game.Source {
			return game.NewSeededSource(frand.Uint64n(math.MaxUint64))
		},
		scorer:  game.NewScorer(),
		metrics: &collector{},
	}
	for _, option := range options {
		option(mc)
	}
	if mc.episodes <= 0 && mc.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return mc
}

func (mc *MonteCarlo) Name() string {
	if mc.episodes > 0 {
		return fmt.Sprintf("monte_carlo_%d_episodes", mc.episodes)
	}
	return fmt.Sprintf("monte_carlo_%s", mc.duration)
}

// Stats returns the metrics of the last decision.
func (mc *MonteCarlo) Stats() SearchMetric {
	return mc.last
}

// ShouldRollAgain rolls again if the rollouts bank more on average than the
// turn score already at stake. It is not safe for concurrent use.
func (mc *MonteCarlo) ShouldRollAgain(state game.TurnState, cfg game.GameConfig, hotDice bool) bool {
	search := func(source game.Source) error {
		score, busted, full, err := mc.rollout(state, cfg, source)
		if err != nil {
			return err
		}
		mc.metrics.AddEpisode(score, busted, full)
		return nil
	}

	mc.metrics.Start()
	var err error
	if mc.episodes > 0 {
		err = mc.iterate(search)
	} else {
		err = mc.countdown(search)
	}
	mc.last = mc.metrics.Complete()

	if err != nil || mc.last.Episodes == 0 {
		log.Warn().Err(err).Msgf("no rollouts from turn score %d, using baseline", state.TurnScore)
		return mc.baseline.ShouldRollAgain(state, cfg, hotDice)
	}
	return mc.last.MeanScore() > float64(state.TurnScore)
}

func (mc *MonteCarlo) iterate(search func(game.Source) error) error {
	task := make(chan any, mc.episodes)
	for i := 0; i < mc.episodes; i++ {
		task <- nil
	}
	close(task)

	var g errgroup.Group
	for i := 0; i < mc.goroutines; i++ {
		source := mc.newSource()
		g.Go(func() error {
			for range task {
				if err := search(source); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

func (mc *MonteCarlo) countdown(search func(game.Source) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), mc.duration)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < mc.goroutines; i++ {
		source := mc.newSource()
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return nil
				default:
					if err := search(source); err != nil {
						return err
					}
				}
			}
		})
	}
	return g.Wait()
}

// rollout plays the rest of the turn from state, always rolling first. It
// returns the turn score it ended with, whether it busted, and whether the
// turn ended before the cutoff.
func (mc *MonteCarlo) rollout(state game.TurnState, cfg game.GameConfig, source game.Source) (int, bool, bool, error) {
	for depth := 0; depth < mc.cutoff; depth++ {
		dice, err := source.RollDice(state.DiceToRoll(), meta.FACE_COUNT)
		if err != nil {
			return 0, false, false, fmt.Errorf("rollout roll: %w", err)
		}
		roll, err := game.NewRoll(dice...)
		if err != nil {
			return 0, false, false, err
		}
		options, err := mc.scorer.Score(roll)
		if err != nil {
			return 0, false, false, err
		}
		if len(options) == 0 {
			return 0, true, true, nil
		}

		hotDice := state.Apply(mc.selector.SelectScore(state, options, cfg))
		if !mc.baseline.ShouldRollAgain(state, cfg, hotDice) {
			return state.TurnScore, false, true, nil
		}
	}
	return state.TurnScore, false, false, nil
}
