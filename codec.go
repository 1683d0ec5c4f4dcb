package stats

import (
	"encoding/binary"
	"math"
)

// Integer is the set of sample types aggregated in 64-bit signed integer
// arithmetic with fixed-point scaling. The set is closed: every member must
// widen to int64 without loss, which excludes 64-bit integers.
type Integer interface {
	uint8 | int8 | uint16 | int16 | uint32 | int32
}

// Float is the set of sample types aggregated in floating point without
// scaling.
type Float interface {
	float32 | float64
}

// Sample is the set of all supported sample types.
type Sample interface {
	Integer | Float
}

// SizeOf returns the byte width of one sample of type T, matching the value
// expected by [NewStore] for stores used with T.
func SizeOf[T Sample]() int {
	var zero T
	switch any(zero).(type) {
	case uint8, int8:
		return 1
	case uint16, int16:
		return 2
	case uint32, int32, float32:
		return 4
	case float64:
		return 8
	}
	panic("stats: unsupported sample type")
}

// loader returns the decode function for T. Multi-byte samples are stored
// little-endian; the returned function reads exactly SizeOf[T]() bytes.
func loader[T Sample]() func(b []byte) T {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return func(b []byte) T { return T(b[0]) }
	case int8:
		return func(b []byte) T { return T(int8(b[0])) }
	case uint16:
		return func(b []byte) T { return T(binary.LittleEndian.Uint16(b)) }
	case int16:
		return func(b []byte) T { return T(int16(binary.LittleEndian.Uint16(b))) }
	case uint32:
		return func(b []byte) T { return T(binary.LittleEndian.Uint32(b)) }
	case int32:
		return func(b []byte) T { return T(int32(binary.LittleEndian.Uint32(b))) }
	case float32:
		return func(b []byte) T { return T(math.Float32frombits(binary.LittleEndian.Uint32(b))) }
	case float64:
		return func(b []byte) T { return T(math.Float64frombits(binary.LittleEndian.Uint64(b))) }
	}
	panic("stats: unsupported sample type")
}

// storer returns the encode function for T, the inverse of loader.
func storer[T Sample]() func(b []byte, v T) {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return func(b []byte, v T) { b[0] = byte(v) }
	case int8:
		return func(b []byte, v T) { b[0] = byte(int8(v)) }
	case uint16:
		return func(b []byte, v T) { binary.LittleEndian.PutUint16(b, uint16(v)) }
	case int16:
		return func(b []byte, v T) { binary.LittleEndian.PutUint16(b, uint16(int16(v))) }
	case uint32:
		return func(b []byte, v T) { binary.LittleEndian.PutUint32(b, uint32(v)) }
	case int32:
		return func(b []byte, v T) { binary.LittleEndian.PutUint32(b, uint32(int32(v))) }
	case float32:
		return func(b []byte, v T) { binary.LittleEndian.PutUint32(b, math.Float32bits(float32(v))) }
	case float64:
		return func(b []byte, v T) { binary.LittleEndian.PutUint64(b, math.Float64bits(float64(v))) }
	}
	panic("stats: unsupported sample type")
}
