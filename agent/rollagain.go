package agent

import (
	"fmt"

	"hotdice/game"
)

type policy struct {
	name   string
	decide game.RollAgainFunc
}

func (p policy) Name() string {
	return p.name
}

func (p policy) ShouldRollAgain(state game.TurnState, cfg game.GameConfig, hotDice bool) bool {
	return p.decide(state, cfg, hotDice)
}

// StopAt keeps rolling until the turn score reaches target.
func StopAt(target int) Policy {
	return policy{
		name: fmt.Sprintf("stop_at_%d", target),
		decide: func(state game.TurnState, _ game.GameConfig, _ bool) bool {
			return state.TurnScore < target
		},
	}
}

// StopAtUnlessHotDice is StopAt, but always rolls on hot dice.
func StopAtUnlessHotDice(target int) Policy {
	return policy{
		name: fmt.Sprintf("stop_at_%d_unless_hot_dice", target),
		decide: func(state game.TurnState, _ game.GameConfig, hotDice bool) bool {
			return hotDice || state.TurnScore < target
		},
	}
}

// StopAtOrFewDice is StopAtUnlessHotDice that also banks once fewer than
// minDice dice are left to roll.
func StopAtOrFewDice(target, minDice int) Policy {
	return policy{
		name: fmt.Sprintf("stop_at_%d_or_%d_dice", target, minDice),
		decide: func(state game.TurnState, _ game.GameConfig, hotDice bool) bool {
			if hotDice {
				return true
			}
			return state.TurnScore < target && state.RemainingDice >= minDice
		},
	}
}

// Always never banks. A turn played with it ends in a bust.
func Always() Policy {
	return policy{
		name: "always",
		decide: func(game.TurnState, game.GameConfig, bool) bool {
			return true
		},
	}
}
