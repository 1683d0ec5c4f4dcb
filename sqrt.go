package stats

import "math"

// newtonSqrt computes sqrt(x) without calling a library square root. The
// initial guess comes from the reciprocal square root bit trick, refined by
// three Newton steps on 1/sqrt(x), then multiplied back by x. Relative error
// is below 1e-10 across the normal range; subnormal inputs lose precision.
func newtonSqrt(x float64) float64 {
	if x < 0 || x != x {
		return math.NaN()
	}
	if x == 0 || math.IsInf(x, 1) {
		return x
	}

	i := math.Float64bits(x)
	i = 0x5fe6eb50c7b537a9 - i>>1
	y := math.Float64frombits(i)

	y *= 1.5 - 0.5*x*y*y
	y *= 1.5 - 0.5*x*y*y
	y *= 1.5 - 0.5*x*y*y

	return x * y
}
