package game

import (
	"fmt"
	"strings"

	"hotdice/meta"
)

type Kind int

const (
	KindStraight Kind = 1 << iota
	KindMultiple
	KindIndividual
)

var kindNames = []struct {
	kind Kind
	name string
}{
	{KindStraight, "straight"},
	{KindMultiple, "multiple"},
	{KindIndividual, "individual"},
}

func (k Kind) Has(other Kind) bool {
	return k&other == other
}

func (k Kind) String() string {
	names := []string{}
	for _, kn := range kindNames {
		if k.Has(kn.kind) {
			names = append(names, kn.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "+")
}

// Key is a multiset of dice as a count per face. Index 0 is unused.
type Key [meta.FACE_COUNT + 1]int

func keyOf(dice []int) Key {
	var k Key
	for _, die := range dice {
		k[die]++
	}
	return k
}

func (k Key) add(other Key) Key {
	for face := range k {
		k[face] += other[face]
	}
	return k
}

// within reports whether k is a sub-multiset of other.
func (k Key) within(other Key) bool {
	for face := range k {
		if k[face] > other[face] {
			return false
		}
	}
	return true
}

// Decomposition is one way of scoring a roll.
type Decomposition struct {
	Score     int   `yaml:"score"`
	Consumed  []int `yaml:"consumed"`  // Dice values scored, ascending
	Remaining []int `yaml:"remaining"` // Dice values left to roll, ascending
	Kind      Kind  `yaml:"kind"`
	Parts     int   `yaml:"parts"` // Number of base scores merged into this one
}

// Key identifies the decomposition by the dice it consumes.
func (d Decomposition) Key() Key {
	return keyOf(d.Consumed)
}

// IsHotDice reports whether the decomposition scores every die in play.
func (d Decomposition) IsHotDice() bool {
	return len(d.Remaining) == 0
}

func (d Decomposition) IsCombination() bool {
	return d.Parts > 1
}

func (d Decomposition) String() string {
	return fmt.Sprintf("%d %s %v keep %v", d.Score, d.Kind, d.Consumed, d.Remaining)
}
