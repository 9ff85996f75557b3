package game

import (
	"errors"

	"hotdice/meta"
)

var (
	// ErrInvalidRoll reports a roll with too many dice or a value outside the die's faces.
	ErrInvalidRoll = errors.New("invalid roll")
	// ErrPolicyContract reports a score selection that was not one of the offered decompositions.
	ErrPolicyContract = errors.New("policy contract violation")
	// ErrSourceExhausted reports a scripted source with no rolls left.
	ErrSourceExhausted = errors.New("dice source exhausted")
)

// GameConfig holds the parameters policies and the game loop read.
type GameConfig struct {
	WinningScore int `yaml:"winningScore"`
}

func DefaultGameConfig() GameConfig {
	return GameConfig{WinningScore: meta.WINNING_SCORE}
}

// Source draws dice. Implementations decide whether they are safe for concurrent use.
type Source interface {
	// RollDice returns n values, each uniform in [1, faces].
	RollDice(n, faces int) ([]int, error)
}

type SourceFunc func(n, faces int) ([]int, error)

func (f SourceFunc) RollDice(n, faces int) ([]int, error) {
	return f(n, faces)
}

// ScoreSelector picks which decomposition of a roll to bank. It is only
// called with a non-empty list and must return one of its elements.
type ScoreSelector interface {
	SelectScore(state TurnState, options []Decomposition, cfg GameConfig) Decomposition
}

type ScoreSelectorFunc func(state TurnState, options []Decomposition, cfg GameConfig) Decomposition

func (f ScoreSelectorFunc) SelectScore(state TurnState, options []Decomposition, cfg GameConfig) Decomposition {
	return f(state, options, cfg)
}

// RollAgainPolicy decides, after a decomposition was taken, whether to keep
// rolling (true) or bank the turn score (false).
type RollAgainPolicy interface {
	ShouldRollAgain(state TurnState, cfg GameConfig, hotDice bool) bool
}

type RollAgainFunc func(state TurnState, cfg GameConfig, hotDice bool) bool

func (f RollAgainFunc) ShouldRollAgain(state TurnState, cfg GameConfig, hotDice bool) bool {
	return f(state, cfg, hotDice)
}
