package stats

import (
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for window decoding.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (w, sq []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// SumFloat returns the sum of all capacity slots in float64. Returns 0 when
// the store is invalid or T's width does not match the item size.
func SumFloat[T Float](s *Store) float64 {
	if !s.IsValid() || SizeOf[T]() != s.itemSize {
		return 0
	}

	load := loader[T]()
	var sum float64
	for i := 0; i < s.capacity; i++ {
		sum += float64(load(s.slot(i)))
	}
	return sum
}

// MeanFloat returns the arithmetic mean of all capacity slots in float64,
// unscaled. Returns 0 when the store is invalid or T's width does not match
// the item size.
func MeanFloat[T Float](s *Store) float64 {
	if !s.IsValid() || SizeOf[T]() != s.itemSize {
		return 0
	}
	return SumFloat[T](s) / float64(s.capacity)
}

// VarianceFloat returns the sample variance (Bessel corrected, divisor n-1)
// of all capacity slots in float64, unscaled, via the single-pass identity
// over the decoded window. Squaring uses SIMD-optimized block multiplies
// when available; scratch buffers are pooled internally, so in steady state
// this allocates nothing. Returns NaN when the store is invalid, T's width
// does not match the item size, or capacity is 1. Near-zero true variance
// can round to a tiny negative; callers compare against a tolerance rather
// than exact zero.
func VarianceFloat[T Float](s *Store) float64 {
	if !s.IsValid() || SizeOf[T]() != s.itemSize || s.capacity < 2 {
		return math.NaN()
	}

	load := loader[T]()
	w, sq, buf := getScratch(s.capacity)
	defer putScratch(buf)

	for i := range w {
		w[i] = float64(load(s.slot(i)))
	}
	vecmath.MulBlock(sq, w, w)

	var sum, sumSq float64
	for i := range w {
		sum += w[i]
		sumSq += sq[i]
	}

	n := float64(s.capacity)
	return (n*sumSq - sum*sum) / (n * (n - 1))
}

// StdevFloat returns the sample standard deviation of all capacity slots in
// float64, unscaled. NaN and negative variances yield NaN and zero variance
// yields zero, under every build mode.
func StdevFloat[T Float](s *Store) float64 {
	v := VarianceFloat[T](s)
	if math.IsNaN(v) || v < 0 {
		return math.NaN()
	}
	if v == 0 {
		return 0
	}
	return sqrtf(v)
}
