package farm

import "math/rand"

// Random is the source of randomness for crow target sampling and flee
// directions. The game injects a seeded source; tests inject scripted ones.
type Random interface {
	// Float64Range returns a uniform value in [lo, hi).
	Float64Range(lo, hi float64) float64
	// Intn returns a uniform index in [0, n).
	Intn(n int) int
}

// SeededRandom is the deterministic Random used by the game.
type SeededRandom struct {
	*rand.Rand
}

// NewRandom creates a SeededRandom for the given seed.
func NewRandom(seed int64) *SeededRandom {
	return &SeededRandom{Rand: rand.New(rand.NewSource(seed))}
}

// Float64Range returns a uniform value in [lo, hi).
func (r *SeededRandom) Float64Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
