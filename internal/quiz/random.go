package quiz

import (
	"math/rand/v2"
	"time"
)

// RandomSource draws uniformly distributed integers. Tests supply scripted
// sources to force particular operands and operators.
type RandomSource interface {
	// Next returns an integer in [min, max] inclusive.
	Next(min, max int) int
}

// RandSource is the default RandomSource, backed by a PCG generator.
type RandSource struct {
	r *rand.Rand
}

// NewRandSource returns a source seeded with seed. A zero seed is replaced
// by the current time so that consecutive runs differ.
func NewRandSource(seed uint64) *RandSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &RandSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Next implements RandomSource. Reversed bounds are swapped.
func (s *RandSource) Next(min, max int) int {
	if min > max {
		min, max = max, min
	}
	return min + s.r.IntN(max-min+1)
}
