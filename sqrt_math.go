//go:build !fastmath

package stats

// sqrtf computes sqrt(x) using the Newton iteration, which stays exact
// enough for statistics while avoiding a hardware or library square root.
func sqrtf(x float64) float64 {
	return newtonSqrt(x)
}
