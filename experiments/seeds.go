package experiments

import (
	"encoding/binary"
	"math"

	"lukechampine.com/frand"
)

// gameSeed seeds the dice of one game of a run.
func gameSeed(seed uint64, config, game int) uint64 {
	return seed + (uint64(config)<<32 | uint64(game))
}

// rolloutSeeds returns the seeds of the searches played during the game
// seeded with gameSeed. They come from a ChaCha stream keyed by the game
// seed, apart from the gameSeed sequence.
func rolloutSeeds(gameSeed uint64) func() uint64 {
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, gameSeed)
	copy(key[8:], "hotdice/rollouts")
	rng := frand.NewCustom(key, 1024, 12)
	return func() uint64 {
		return rng.Uint64n(math.MaxUint64)
	}
}
