package engine

import (
	"math/rand"
	"time"
)

// Rand is the randomness the board draws on when placing tiles.
// Tests substitute a scripted implementation to make placement deterministic.
type Rand interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
	// Choose returns a with probability weightA/(weightA+weightB), otherwise b.
	Choose(a, b, weightA, weightB int) int
}

// MathRand adapts math/rand to Rand.
type MathRand struct {
	rng *rand.Rand
}

// NewRand creates a Rand seeded with seed. A zero seed uses the current time.
func NewRand(seed int64) *MathRand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &MathRand{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform integer in [0, n).
func (r *MathRand) Intn(n int) int {
	return r.rng.Intn(n)
}

// Choose picks between a and b with the given integer weights.
func (r *MathRand) Choose(a, b, weightA, weightB int) int {
	if r.rng.Intn(weightA+weightB) < weightA {
		return a
	}
	return b
}
