package game

import (
	"fmt"

	"golang.org/x/exp/rand"
	"lukechampine.com/frand"
)

type seededSource struct {
	rng *rand.Rand
}

// NewSeededSource returns a reproducible source. It is not safe for
// concurrent use; give each goroutine its own.
func NewSeededSource(seed uint64) Source {
	return &seededSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *seededSource) RollDice(n, faces int) ([]int, error) {
	rolls := make([]int, n)
	for i := range rolls {
		rolls[i] = s.rng.Intn(faces) + 1
	}
	return rolls, nil
}

type cryptoSource struct{}

// NewCryptoSource returns a source backed by a CSPRNG. It is safe for concurrent use.
func NewCryptoSource() Source {
	return cryptoSource{}
}

func (cryptoSource) RollDice(n, faces int) ([]int, error) {
	rolls := make([]int, n)
	for i := range rolls {
		rolls[i] = frand.Intn(faces) + 1
	}
	return rolls, nil
}

type fixedSource struct {
	rolls [][]int
}

// NewFixedSource replays the given rolls in order, then fails with ErrSourceExhausted.
func NewFixedSource(rolls ...[]int) Source {
	return &fixedSource{rolls: rolls}
}

func (s *fixedSource) RollDice(n, faces int) ([]int, error) {
	if len(s.rolls) == 0 {
		return nil, ErrSourceExhausted
	}
	next := s.rolls[0]
	if len(next) != n {
		return nil, fmt.Errorf("scripted roll %v has %d dice, want %d", next, len(next), n)
	}
	s.rolls = s.rolls[1:]
	return next, nil
}
