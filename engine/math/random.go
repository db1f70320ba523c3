package math

import (
	"golang.org/x/exp/rand"
)

// Random is a source of uniformly distributed values in [0, 1).
// Samplers take one explicitly so that callers control seeding; there is no
// package level random state.
type Random interface {
	Float32() float32
}

// NewRandom returns a PCG backed generator seeded with seed.
func NewRandom(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a base seed with a stream index so that independent
// consumers seeded from the same base do not share a sequence.
func DeriveSeed(base uint64, stream uint64) uint64 {
	// splitmix64 finaliser
	z := base + (stream+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
