package engine

import (
	"hotdice/experiments/metrics"
	"hotdice/game"
	"hotdice/meta"
)

type Option func(e *Engine)

// Engine plays turns and games for one player at a time. It owns its dice
// source and must not be shared between goroutines unless the source is
// safe for concurrent use.
type Engine struct {
	scorer       *game.Scorer
	source       game.Source
	maxTurns     int
	newCollector func() metrics.Collector
}

// TurnResult is the outcome of a single turn.
type TurnResult struct {
	Banked  int // Points credited, 0 on a bust
	Busted  bool
	Rolls   int
	HotDice int
	State   game.TurnState // State when the turn ended
}

// GameResult is the outcome of a game played to the winning score.
type GameResult struct {
	Player     string
	TotalScore int
	Turns      int
	Busts      int
	Rolls      int  // Decisions to roll again
	Won        bool // Reached the winning score before the turn limit
	Metric     metrics.GameMetric
}

func WithScorer(scorer *game.Scorer) Option {
	return func(e *Engine) {
		if scorer != nil {
			e.scorer = scorer
		}
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithMetrics() Option {
	return func(e *Engine) {
		e.newCollector = metrics.NewCollector
	}
}

func New(source game.Source, options ...Option) *Engine {
	if source == nil {
		panic("engine needs a dice source")
	}
	e := &Engine{ // Default values
		scorer:       game.NewScorer(),
		source:       source,
		maxTurns:     meta.MAX_TURNS,
		newCollector: metrics.NewDummyCollector,
	}
	for _, option := range options {
		option(e)
	}
	return e
}
