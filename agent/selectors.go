package agent

import (
	"hotdice/game"
	"hotdice/meta"
)

// Rate scores a decomposition; the selector takes the highest rated one.
type Rate func(d game.Decomposition, state game.TurnState) float64

type rated struct {
	name string
	rate Rate
}

// Rated returns a selector taking the option with the highest rating, the
// first one in the offered order on ties.
func Rated(name string, rate Rate) Selector {
	if rate == nil {
		panic("rated selector needs a rating function")
	}
	return rated{name: name, rate: rate}
}

func (r rated) Name() string {
	return r.name
}

func (r rated) SelectScore(state game.TurnState, options []game.Decomposition, _ game.GameConfig) game.Decomposition {
	return findMax(options, func(d game.Decomposition) float64 {
		return r.rate(d, state)
	})
}

func findMax(options []game.Decomposition, rate func(game.Decomposition) float64) game.Decomposition {
	var maxOption game.Decomposition
	maxRating := 0.0
	for i, option := range options {
		rating := rate(option)
		if i == 0 || rating > maxRating {
			maxRating = rating
			maxOption = option
		}
	}
	return maxOption
}

// HighestScore takes the most points available.
func HighestScore() Selector {
	return Rated("highest_score", func(d game.Decomposition, _ game.TurnState) float64 {
		return float64(d.Score)
	})
}

// BestPerDie takes the most points per die used.
func BestPerDie() Selector {
	return Rated("best_per_die", perDie)
}

// BestPerDieHotDice rates like BestPerDie, except an option scoring every
// die is rated at its full score.
func BestPerDieHotDice() Selector {
	return Rated("best_per_die_hot_dice", func(d game.Decomposition, state game.TurnState) float64 {
		if d.IsHotDice() {
			return float64(d.Score)
		}
		return perDie(d, state)
	})
}

// FewestDice keeps as many dice live as possible, then takes the most points.
// Hot dice count as a full set of live dice.
func FewestDice() Selector {
	return Rated("fewest_dice", func(d game.Decomposition, _ game.TurnState) float64 {
		live := len(d.Remaining)
		if d.IsHotDice() {
			live = meta.DICE_COUNT
		}
		return float64(live*100_000 + d.Score)
	})
}

func perDie(d game.Decomposition, _ game.TurnState) float64 {
	return float64(d.Score) / float64(len(d.Consumed))
}
