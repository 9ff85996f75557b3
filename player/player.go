package player

import (
	"fmt"

	"hotdice/game"
)

// Player represents a simulated player: the two policies it plays by and
// the totals it has built up across turns.
type Player struct {
	Name       string
	Selector   game.ScoreSelector
	RollAgain  game.RollAgainPolicy
	TotalScore int
	Turns      int
	Busts      int
	Rolls      int // Decisions to roll again
}

// NewPlayer creates a new Player instance.
func NewPlayer(name string, selector game.ScoreSelector, rollAgain game.RollAgainPolicy) *Player {
	if selector == nil || rollAgain == nil {
		panic("player needs a score selector and a roll-again policy")
	}
	return &Player{
		Name:      name,
		Selector:  selector,
		RollAgain: rollAgain,
	}
}

// Bust ends a turn that scored nothing.
func (p *Player) Bust() {
	p.Turns++
	p.Busts++
}

// Bank ends a turn and credits its score.
func (p *Player) Bank(score int) {
	p.TotalScore += score
	p.Turns++
}

func (p *Player) AddRoll() {
	p.Rolls++
}

// Reset clears all stats and scores, keeping the policies.
func (p *Player) Reset() {
	p.TotalScore = 0
	p.Turns = 0
	p.Busts = 0
	p.Rolls = 0
}

func (p *Player) String() string {
	return fmt.Sprintf("%s: score=%d turns=%d busts=%d rolls=%d", p.Name, p.TotalScore, p.Turns, p.Busts, p.Rolls)
}
