package core

import (
	"math/rand/v2"
	"time"
)

// Rand is the randomness the store builder consumes. *rand.Rand from
// math/rand/v2 satisfies it; tests pass one seeded with a fixed PCG.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns a PCG-backed source. A zero seed draws one from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
