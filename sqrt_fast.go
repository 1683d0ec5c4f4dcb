//go:build fastmath

package stats

import "github.com/meko-christian/algo-approx"

// sqrtf computes sqrt(x) using fast approximation.
func sqrtf(x float64) float64 {
	return approx.FastSqrt(x)
}
