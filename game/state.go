package game

import "hotdice/meta"

// TurnState is the unbanked progress of the turn in play. It belongs to a
// single turn and is discarded when the turn ends.
type TurnState struct {
	TurnScore     int  // Points at risk this turn
	RemainingDice int  // Dice left to roll, 0 after hot dice
	Busted        bool // The last roll scored nothing
	Rolls         int  // Rolls made this turn
	HotDice       int  // Times every die in play was scored this turn
}

// NewTurnState returns the state at the start of a turn.
func NewTurnState() TurnState {
	return TurnState{RemainingDice: meta.DICE_COUNT}
}

// DiceToRoll is how many dice the next roll draws: the remaining dice, or a
// full set after hot dice.
func (ts TurnState) DiceToRoll() int {
	if ts.RemainingDice <= 0 {
		return meta.DICE_COUNT
	}
	return ts.RemainingDice
}

// Apply banks a decomposition into the turn and reports whether it was hot dice.
func (ts *TurnState) Apply(d Decomposition) bool {
	ts.TurnScore += d.Score
	ts.RemainingDice = len(d.Remaining)
	if ts.RemainingDice == 0 {
		ts.HotDice++
		return true
	}
	return false
}

// Bust forfeits the turn score.
func (ts *TurnState) Bust() {
	ts.TurnScore = 0
	ts.RemainingDice = meta.DICE_COUNT
	ts.Busted = true
}
