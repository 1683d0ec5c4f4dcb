// Package testutil provides deterministic sample generators and comparison
// helpers shared by tests.
package testutil

import "math/rand"

// SeededInts returns n pseudo-random values in [lo, hi] with a fixed seed
// for reproducibility.
func SeededInts(seed, lo, hi int64, n int) []int64 {
	out := make([]int64, n)
	rng := rand.New(rand.NewSource(seed))
	span := hi - lo + 1
	for i := range out {
		out[i] = lo + rng.Int63n(span)
	}
	return out
}

// SeededFloats returns n pseudo-random values in [lo, hi) with a fixed seed
// for reproducibility.
func SeededFloats(seed int64, lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = lo + rng.Float64()*(hi-lo)
	}
	return out
}
