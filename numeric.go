package stats

import "math/bits"

// Scale is the fixed-point factor applied by the integer reducers. A result
// r represents the rational value r/Scale, giving three decimal places
// without floating point. Display as r/Scale and r%Scale.
const Scale = 1000

// Undefined is returned by integer reducers whose result does not exist,
// such as the sample variance of a single-slot window.
const Undefined int64 = -1

// sqrt1000Num/sqrt1000Den approximate sqrt(Scale). Stdev computes
// sqrt(v*Scale) as isqrt(v)*sqrt(Scale) to keep the intermediate product
// within int64 for any variance the reducers can produce.
const (
	sqrt1000Num = 31623
	sqrt1000Den = 1000
)

// scaledDiv divides with symmetric rounding: halves round away from zero.
// Plain integer division truncates toward zero, which would bias scaled
// means and variances low.
func scaledDiv(num, den int64) int64 {
	if num < 0 {
		return (num - den/2) / den
	}
	return (num + den/2) / den
}

// isqrt returns the integer square root floor(sqrt(x)) by Newton's method,
// or -1 for negative x. The initial guess is the power of two just above
// sqrt(x), from which the iteration descends monotonically, so the first
// non-decreasing step terminates at the floor.
func isqrt(x int64) int64 {
	if x < 0 {
		return -1
	}
	if x < 2 {
		return x
	}

	g := int64(1) << ((bits.Len64(uint64(x)) + 1) / 2)
	for {
		n := (g + x/g) / 2
		if n >= g {
			return g
		}
		g = n
	}
}
