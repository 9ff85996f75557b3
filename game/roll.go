package game

import (
	"fmt"
	"strings"

	"hotdice/meta"
)

// Roll represents the dice in play, one slot per die. Slots without a die
// hold 0, so a roll of fewer dice keeps the fixed length.
type Roll [meta.DICE_COUNT]int

// NewRoll builds a roll from up to DICE_COUNT dice, padding the rest with 0.
func NewRoll(dice ...int) (Roll, error) {
	var r Roll
	if len(dice) > meta.DICE_COUNT {
		return r, fmt.Errorf("%w: %d dice exceeds max %d", ErrInvalidRoll, len(dice), meta.DICE_COUNT)
	}
	for i, die := range dice {
		if !validFace(die) {
			return Roll{}, fmt.Errorf("%w: die %d has value %d", ErrInvalidRoll, i, die)
		}
		r[i] = die
	}
	return r, nil
}

// MustRoll is NewRoll for literals known to be valid.
func MustRoll(dice ...int) Roll {
	r, err := NewRoll(dice...)
	if err != nil {
		panic(err)
	}
	return r
}

// Validate checks every slot holds a face or the 0 placeholder.
func (r Roll) Validate() error {
	for i, die := range r {
		if die != 0 && !validFace(die) {
			return fmt.Errorf("%w: slot %d has value %d", ErrInvalidRoll, i, die)
		}
	}
	return nil
}

// Dice returns the values of the dice present, in slot order.
func (r Roll) Dice() []int {
	dice := make([]int, 0, len(r))
	for _, die := range r {
		if die > 0 {
			dice = append(dice, die)
		}
	}
	return dice
}

// The number of dice present, in the range 0 - DICE_COUNT.
func (r Roll) NumDice() int {
	n := 0
	for _, die := range r {
		if die > 0 {
			n++
		}
	}
	return n
}

// Counts tallies the dice present by face.
func (r Roll) Counts() Key {
	return keyOf(r.Dice())
}

func (r Roll) String() string {
	parts := make([]string, len(r))
	for i, die := range r {
		parts[i] = fmt.Sprint(die)
	}
	return "(" + strings.Join(parts, ",") + ")"
}
