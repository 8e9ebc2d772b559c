package generation

import "slices"

// RNG is a simple seeded random number generator (LCG)
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed
func NewRNG(seed uint64) *RNG {
	return &RNG{state: seed}
}

// Uint64 returns a pseudo-random uint64
func (r *RNG) Uint64() uint64 {
	// LCG parameters from Numerical Recipes
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a pseudo-random float64 in [0, 1)
func (r *RNG) Float64() float64 {
	return float64(r.Uint64()>>11) / (1 << 53)
}

// Intn returns a pseudo-random int in [0, n)
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Uint64() % uint64(n))
}

// Choose draws one key from a weighted distribution. Keys are visited in
// sorted order so a seeded RNG yields the same draw every run regardless of
// map iteration order. Weights are assumed validated (non-negative, summing
// to 1); the last key absorbs any floating-point shortfall.
func Choose[T ~string](r *RNG, weights map[T]float64) T {
	keys := make([]T, 0, len(weights))
	for k := range weights {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	roll := r.Float64()
	cumulative := 0.0
	for _, k := range keys {
		cumulative += weights[k]
		if roll < cumulative {
			return k
		}
	}
	return keys[len(keys)-1]
}
