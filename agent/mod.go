package agent

import "hotdice/game"

// Selector is a score selection policy that can be reported by name.
type Selector interface {
	game.ScoreSelector
	Name() string
}

// Policy is a roll-again policy that can be reported by name.
type Policy interface {
	game.RollAgainPolicy
	Name() string
}
