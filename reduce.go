package stats

// Max returns the largest sample across all capacity slots. The scan is
// seeded with slot 0, so slots never written count as zero like everywhere
// else. Returns the zero value of T when the store is invalid or T's width
// does not match the item size.
func Max[T Sample](s *Store) T {
	var zero T
	if !s.IsValid() || SizeOf[T]() != s.itemSize {
		return zero
	}

	load := loader[T]()
	m := load(s.slot(0))
	for i := 1; i < s.capacity; i++ {
		if v := load(s.slot(i)); v > m {
			m = v
		}
	}
	return m
}

// Min returns the smallest sample across all capacity slots, seeded with
// slot 0. Returns the zero value of T when the store is invalid or T's
// width does not match the item size.
func Min[T Sample](s *Store) T {
	var zero T
	if !s.IsValid() || SizeOf[T]() != s.itemSize {
		return zero
	}

	load := loader[T]()
	m := load(s.slot(0))
	for i := 1; i < s.capacity; i++ {
		if v := load(s.slot(i)); v < m {
			m = v
		}
	}
	return m
}

// Sum returns the unscaled sum of all capacity slots widened to int64.
// Returns 0 when the store is invalid or T's width does not match the item
// size.
func Sum[T Integer](s *Store) int64 {
	if !s.IsValid() || SizeOf[T]() != s.itemSize {
		return 0
	}

	load := loader[T]()
	var sum int64
	for i := 0; i < s.capacity; i++ {
		sum += int64(load(s.slot(i)))
	}
	return sum
}

// Mean returns the arithmetic mean of all capacity slots in fixed point,
// the true mean times Scale with symmetric rounding. Returns 0 when the
// store is invalid or T's width does not match the item size.
func Mean[T Integer](s *Store) int64 {
	if !s.IsValid() || SizeOf[T]() != s.itemSize {
		return 0
	}
	return scaledDiv(Sum[T](s)*Scale, int64(s.capacity))
}

// Variance returns the sample variance (Bessel corrected, divisor n-1) of
// all capacity slots in fixed point, the true variance times Scale. It uses
// the single-pass identity
//
//	var = (n*sumsq - sum*sum) / (n*(n-1))
//
// with 64-bit accumulators, which is exact in integers, so the numerator is
// never negative. Returns Undefined when the store is invalid, T's width
// does not match the item size, or capacity is 1, since a lone sample has
// no sample variance. Callers must keep the scaled numerator within int64,
// which holds while capacity times the sample magnitude stays below roughly
// 1e8; full-range 32-bit windows exceed this.
func Variance[T Integer](s *Store) int64 {
	if !s.IsValid() || SizeOf[T]() != s.itemSize || s.capacity < 2 {
		return Undefined
	}

	load := loader[T]()
	var sum, sumSq int64
	for i := 0; i < s.capacity; i++ {
		v := int64(load(s.slot(i)))
		sum += v
		sumSq += v * v
	}

	n := int64(s.capacity)
	return scaledDiv((n*sumSq-sum*sum)*Scale, n*(n-1))
}

// Stdev returns the sample standard deviation in the same fixed-point scale
// as Mean. Variance carries an extra factor of Scale under the root, so the
// integer square root is corrected by sqrt(Scale) as the rational
// sqrt1000Num/sqrt1000Den. A negative variance sentinel is propagated
// unchanged.
func Stdev[T Integer](s *Store) int64 {
	v := Variance[T](s)
	if v < 0 {
		return v
	}
	return scaledDiv(isqrt(v)*sqrt1000Num, sqrt1000Den)
}
