// Package webdemo hosts the rolling-statistics engine behind the wasm
// bindings in web/wasm.
package webdemo

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-stats"
)

type kind int

const (
	kindU8 kind = iota
	kindI8
	kindU16
	kindI16
	kindU32
	kindI32
	kindF32
	kindF64
)

var kinds = map[string]kind{
	"u8":  kindU8,
	"i8":  kindI8,
	"u16": kindU16,
	"i16": kindI16,
	"u32": kindU32,
	"i32": kindI32,
	"f32": kindF32,
	"f64": kindF64,
}

var sizes = map[kind]int{
	kindU8:  1,
	kindI8:  1,
	kindU16: 2,
	kindI16: 2,
	kindU32: 4,
	kindI32: 4,
	kindF32: 4,
	kindF64: 8,
}

// Snapshot carries one set of window statistics for display. Fixed-point
// integer results are already divided down to plain numbers. Defined is
// false when the window is too small for variance and stdev.
type Snapshot struct {
	Capacity int
	Full     bool
	Max      float64
	Min      float64
	Mean     float64
	Variance float64
	Stdev    float64
	Defined  bool
}

// Engine owns one rolling sample window for the browser demo.
type Engine struct {
	kind  kind
	store *stats.Store
}

// NewEngine creates an engine for the named sample type with the given
// window capacity.
func NewEngine(typeName string, capacity int) (*Engine, error) {
	k, ok := kinds[typeName]
	if !ok {
		return nil, fmt.Errorf("unsupported sample type %q", typeName)
	}
	st, err := stats.NewStore(sizes[k], capacity)
	if err != nil {
		return nil, err
	}
	return &Engine{kind: k, store: st}, nil
}

// Push appends one sample, clamping the incoming number to the range of the
// engine's sample type. NaN is rejected for integer types, where it has no
// representation.
func (e *Engine) Push(v float64) error {
	if math.IsNaN(v) && e.kind != kindF32 && e.kind != kindF64 {
		return fmt.Errorf("integer sample types cannot store NaN")
	}
	switch e.kind {
	case kindU8:
		return stats.Append(e.store, uint8(clamp(v, 0, math.MaxUint8)))
	case kindI8:
		return stats.Append(e.store, int8(clamp(v, math.MinInt8, math.MaxInt8)))
	case kindU16:
		return stats.Append(e.store, uint16(clamp(v, 0, math.MaxUint16)))
	case kindI16:
		return stats.Append(e.store, int16(clamp(v, math.MinInt16, math.MaxInt16)))
	case kindU32:
		return stats.Append(e.store, uint32(clamp(v, 0, math.MaxUint32)))
	case kindI32:
		return stats.Append(e.store, int32(clamp(v, math.MinInt32, math.MaxInt32)))
	case kindF32:
		return stats.Append(e.store, float32(v))
	case kindF64:
		return stats.Append(e.store, v)
	}
	return fmt.Errorf("unsupported sample kind %d", e.kind)
}

// Stats returns the current window statistics.
func (e *Engine) Stats() Snapshot {
	s := Snapshot{
		Capacity: e.store.Capacity(),
		Full:     e.store.HasFullWindow(),
	}
	switch e.kind {
	case kindU8:
		fillInt[uint8](&s, e.store)
	case kindI8:
		fillInt[int8](&s, e.store)
	case kindU16:
		fillInt[uint16](&s, e.store)
	case kindI16:
		fillInt[int16](&s, e.store)
	case kindU32:
		fillInt[uint32](&s, e.store)
	case kindI32:
		fillInt[int32](&s, e.store)
	case kindF32:
		fillFloat[float32](&s, e.store)
	case kindF64:
		fillFloat[float64](&s, e.store)
	}
	return s
}

// Window returns the decoded slots for charting.
func (e *Engine) Window() []float64 {
	switch e.kind {
	case kindU8:
		return windowFloats[uint8](e.store)
	case kindI8:
		return windowFloats[int8](e.store)
	case kindU16:
		return windowFloats[uint16](e.store)
	case kindI16:
		return windowFloats[int16](e.store)
	case kindU32:
		return windowFloats[uint32](e.store)
	case kindI32:
		return windowFloats[int32](e.store)
	case kindF32:
		return windowFloats[float32](e.store)
	case kindF64:
		return windowFloats[float64](e.store)
	}
	return nil
}

// Reset clears the window without releasing it.
func (e *Engine) Reset() {
	e.store.Reset()
}

// Close releases the window. The engine must not be used afterwards.
func (e *Engine) Close() {
	e.store.Free()
}

func fillInt[T stats.Integer](s *Snapshot, st *stats.Store) {
	s.Max = float64(stats.Max[T](st))
	s.Min = float64(stats.Min[T](st))
	s.Mean = float64(stats.Mean[T](st)) / stats.Scale
	v := stats.Variance[T](st)
	if v < 0 {
		return
	}
	s.Defined = true
	s.Variance = float64(v) / stats.Scale
	s.Stdev = float64(stats.Stdev[T](st)) / stats.Scale
}

func fillFloat[T stats.Float](s *Snapshot, st *stats.Store) {
	s.Max = float64(stats.Max[T](st))
	s.Min = float64(stats.Min[T](st))
	s.Mean = stats.MeanFloat[T](st)
	v := stats.VarianceFloat[T](st)
	if math.IsNaN(v) {
		return
	}
	s.Defined = true
	s.Variance = v
	s.Stdev = stats.StdevFloat[T](st)
}

func windowFloats[T stats.Sample](st *stats.Store) []float64 {
	w := stats.Window[T](st)
	out := make([]float64, len(w))
	for i, v := range w {
		out[i] = float64(v)
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
