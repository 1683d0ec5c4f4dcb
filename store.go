package stats

import (
	"errors"
	"math"
)

// Errors reported by store construction and mutation.
var (
	ErrItemSize     = errors.New("stats: item size must be between 1 and 255 bytes")
	ErrCapacity     = errors.New("stats: capacity must be at least one sample")
	ErrStoreSize    = errors.New("stats: capacity times item size exceeds the buffer limit")
	ErrInvalidStore = errors.New("stats: store is invalid or freed")
	ErrSampleSize   = errors.New("stats: sample length does not match item size")
	ErrTypeSize     = errors.New("stats: sample type width does not match item size")
)

// maxWindowBytes bounds the backing buffer so requested sizes stay within
// 32-bit addressable range on every target.
const maxWindowBytes = math.MaxInt32

// Store is a fixed-capacity ring of raw fixed-size samples. The zero Store
// is invalid; use [NewStore]. A Store must not be copied after first use and
// is not safe for concurrent access.
type Store struct {
	buf      []byte
	capacity int
	itemSize int
	writeIdx int
	full     bool
}

// NewStore returns a Store holding capacity samples of itemSize bytes each.
// The buffer is zero-filled, so reducers on a fresh store see a window of
// zero-valued samples.
func NewStore(itemSize, capacity int) (*Store, error) {
	if itemSize < 1 || itemSize > 255 {
		return nil, ErrItemSize
	}
	if capacity < 1 {
		return nil, ErrCapacity
	}
	if capacity > maxWindowBytes/itemSize {
		return nil, ErrStoreSize
	}

	return &Store{
		buf:      make([]byte, capacity*itemSize),
		capacity: capacity,
		itemSize: itemSize,
	}, nil
}

// IsValid reports whether the store owns a buffer. Freed stores, zero-value
// stores and nil stores are invalid; every other operation degrades to a
// defined no-op or sentinel on an invalid store.
func (s *Store) IsValid() bool {
	return s != nil && s.buf != nil
}

// HasFullWindow reports whether the write index has wrapped at least once,
// i.e. whether every slot has been populated by a real sample. Statistics
// taken before the window is full include the remaining zero-valued slots.
func (s *Store) HasFullWindow() bool {
	return s.IsValid() && s.full
}

// Capacity returns the number of sample slots, or 0 for an invalid store.
func (s *Store) Capacity() int {
	if s == nil {
		return 0
	}
	return s.capacity
}

// ItemSize returns the byte width of one sample, or 0 for an invalid store.
func (s *Store) ItemSize() int {
	if s == nil {
		return 0
	}
	return s.itemSize
}

// AddSample copies one raw sample into the current slot and advances the
// write index, wrapping to slot 0 at capacity. Once the ring has wrapped,
// each call overwrites the oldest remaining sample. Multi-byte samples must
// be little-endian to be read back by the typed reducers.
func (s *Store) AddSample(data []byte) error {
	if !s.IsValid() {
		return ErrInvalidStore
	}
	if len(data) != s.itemSize {
		return ErrSampleSize
	}

	copy(s.slot(s.writeIdx), data)
	s.advance()
	return nil
}

// Append encodes v into the current slot and advances the write index. The
// width of T must match the store's item size.
func Append[T Sample](s *Store, v T) error {
	if !s.IsValid() {
		return ErrInvalidStore
	}
	if SizeOf[T]() != s.itemSize {
		return ErrTypeSize
	}

	storer[T]()(s.slot(s.writeIdx), v)
	s.advance()
	return nil
}

// Window returns a decoded copy of all capacity slots in slot order. Slot
// order is not insertion order: the ring exposes no oldest-first view, and
// reducers treat the window as an unordered multiset. Returns nil when the
// store is invalid or T's width does not match the item size.
func Window[T Sample](s *Store) []T {
	if !s.IsValid() || SizeOf[T]() != s.itemSize {
		return nil
	}

	load := loader[T]()
	out := make([]T, s.capacity)
	for i := range out {
		out[i] = load(s.slot(i))
	}
	return out
}

// Reset zeroes the window and rewinds the write index without releasing the
// buffer. No-op on an invalid store.
func (s *Store) Reset() {
	if !s.IsValid() {
		return
	}

	for i := range s.buf {
		s.buf[i] = 0
	}
	s.writeIdx = 0
	s.full = false
}

// Free releases the buffer and marks the store invalid. All counters read as
// zero afterwards. Free is idempotent and safe on nil and zero-value stores.
func (s *Store) Free() {
	if s == nil {
		return
	}

	s.buf = nil
	s.capacity = 0
	s.itemSize = 0
	s.writeIdx = 0
	s.full = false
}

// slot returns the backing bytes of slot i.
func (s *Store) slot(i int) []byte {
	off := i * s.itemSize
	return s.buf[off : off+s.itemSize]
}

// advance moves the write index forward, wrapping at capacity and latching
// the full flag on the first wrap.
func (s *Store) advance() {
	s.writeIdx++
	if s.writeIdx == s.capacity {
		s.writeIdx = 0
		s.full = true
	}
}
