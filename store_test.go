package stats

import (
	"errors"
	"math"
	"testing"
)

// mustStore builds a store and registers its teardown.
func mustStore(t *testing.T, itemSize, capacity int) *Store {
	t.Helper()
	st, err := NewStore(itemSize, capacity)
	if err != nil {
		t.Fatalf("NewStore(%d, %d): %v", itemSize, capacity, err)
	}
	t.Cleanup(st.Free)
	return st
}

// fill appends vals in order, failing the test on any error.
func fill[T Sample](t *testing.T, st *Store, vals []T) {
	t.Helper()
	for _, v := range vals {
		if err := Append(st, v); err != nil {
			t.Fatalf("Append(%v): %v", v, err)
		}
	}
}

func TestNewStore_Validation(t *testing.T) {
	tests := []struct {
		name     string
		itemSize int
		capacity int
		wantErr  error
	}{
		{"u8_small", 1, 4, nil},
		{"f64_large", 8, 1024, nil},
		{"max_item_size", 255, 16, nil},
		{"zero_item_size", 0, 4, ErrItemSize},
		{"negative_item_size", -1, 4, ErrItemSize},
		{"oversized_item", 256, 4, ErrItemSize},
		{"zero_capacity", 4, 0, ErrCapacity},
		{"negative_capacity", 4, -3, ErrCapacity},
		{"window_too_large", 255, math.MaxInt32, ErrStoreSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := NewStore(tt.itemSize, tt.capacity)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewStore: err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if st != nil {
					t.Fatalf("NewStore: store = %v on error, want nil", st)
				}
				return
			}
			defer st.Free()
			if !st.IsValid() {
				t.Fatal("IsValid = false after NewStore")
			}
			if st.Capacity() != tt.capacity {
				t.Errorf("Capacity = %d, want %d", st.Capacity(), tt.capacity)
			}
			if st.ItemSize() != tt.itemSize {
				t.Errorf("ItemSize = %d, want %d", st.ItemSize(), tt.itemSize)
			}
			if st.HasFullWindow() {
				t.Error("HasFullWindow = true on fresh store")
			}
		})
	}
}

func TestStore_WriteIndexWrap(t *testing.T) {
	for _, c := range []int{1, 2, 3, 4, 7, 16} {
		t.Run("cap_"+itoa(c), func(t *testing.T) {
			st := mustStore(t, 1, c)
			for n := 1; n <= 3*c+1; n++ {
				if err := Append(st, uint8(n)); err != nil {
					t.Fatalf("Append #%d: %v", n, err)
				}
				if st.writeIdx != n%c {
					t.Fatalf("after %d samples: writeIdx = %d, want %d", n, st.writeIdx, n%c)
				}
				if got, want := st.HasFullWindow(), n >= c; got != want {
					t.Fatalf("after %d samples: HasFullWindow = %v, want %v", n, got, want)
				}
			}
		})
	}
}

func TestStore_Rotation(t *testing.T) {
	st := mustStore(t, 1, 4)
	fill(t, st, []uint8{1, 21, 79, 100, 31, 85})

	want := []uint8{31, 85, 79, 100}
	got := Window[uint8](st)
	if len(got) != len(want) {
		t.Fatalf("Window length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestStore_AddSample(t *testing.T) {
	st := mustStore(t, 2, 2)

	// 1000 and 2000 little-endian.
	if err := st.AddSample([]byte{0xE8, 0x03}); err != nil {
		t.Fatalf("AddSample: %v", err)
	}
	if err := st.AddSample([]byte{0xD0, 0x07}); err != nil {
		t.Fatalf("AddSample: %v", err)
	}

	w := Window[uint16](st)
	if w[0] != 1000 || w[1] != 2000 {
		t.Errorf("Window = %v, want [1000 2000]", w)
	}
	if !st.HasFullWindow() {
		t.Error("HasFullWindow = false after capacity samples")
	}
}

func TestStore_AddSample_Errors(t *testing.T) {
	st := mustStore(t, 2, 4)

	if err := st.AddSample([]byte{1}); !errors.Is(err, ErrSampleSize) {
		t.Errorf("short sample: err = %v, want ErrSampleSize", err)
	}
	if err := st.AddSample([]byte{1, 2, 3}); !errors.Is(err, ErrSampleSize) {
		t.Errorf("long sample: err = %v, want ErrSampleSize", err)
	}

	st.Free()
	if err := st.AddSample([]byte{1, 2}); !errors.Is(err, ErrInvalidStore) {
		t.Errorf("freed store: err = %v, want ErrInvalidStore", err)
	}
}

func TestAppend_TypeWidthMismatch(t *testing.T) {
	st := mustStore(t, 1, 4)

	if err := Append(st, uint16(1000)); !errors.Is(err, ErrTypeSize) {
		t.Errorf("u16 into 1-byte store: err = %v, want ErrTypeSize", err)
	}
	if err := Append(st, float64(1.5)); !errors.Is(err, ErrTypeSize) {
		t.Errorf("f64 into 1-byte store: err = %v, want ErrTypeSize", err)
	}
	if err := Append(st, uint8(7)); err != nil {
		t.Errorf("u8 into 1-byte store: err = %v, want nil", err)
	}
}

func TestStore_Reset(t *testing.T) {
	st := mustStore(t, 1, 4)
	fill(t, st, []uint8{10, 20, 30, 40, 50})

	st.Reset()

	if !st.IsValid() {
		t.Fatal("IsValid = false after Reset")
	}
	if st.HasFullWindow() {
		t.Error("HasFullWindow = true after Reset")
	}
	if st.writeIdx != 0 {
		t.Errorf("writeIdx = %d after Reset, want 0", st.writeIdx)
	}
	for i, v := range Window[uint8](st) {
		if v != 0 {
			t.Errorf("slot %d = %d after Reset, want 0", i, v)
		}
	}
	if got := Mean[uint8](st); got != 0 {
		t.Errorf("Mean after Reset = %d, want 0", got)
	}
	if got := Max[uint8](st); got != 0 {
		t.Errorf("Max after Reset = %d, want 0", got)
	}
	if got := Min[uint8](st); got != 0 {
		t.Errorf("Min after Reset = %d, want 0", got)
	}

	// Store remains usable after Reset.
	fill(t, st, []uint8{5})
	if got := Window[uint8](st)[0]; got != 5 {
		t.Errorf("slot 0 after Reset+Append = %d, want 5", got)
	}
}

func TestStore_Free_Idempotent(t *testing.T) {
	st := mustStore(t, 1, 4)
	fill(t, st, []uint8{1, 2, 3})

	st.Free()
	st.Free()

	if st.IsValid() {
		t.Error("IsValid = true after Free")
	}
	if st.HasFullWindow() {
		t.Error("HasFullWindow = true after Free")
	}
	if st.Capacity() != 0 || st.ItemSize() != 0 {
		t.Errorf("Capacity/ItemSize = %d/%d after Free, want 0/0", st.Capacity(), st.ItemSize())
	}
	if w := Window[uint8](st); w != nil {
		t.Errorf("Window after Free = %v, want nil", w)
	}
	st.Reset() // must not panic

	var nilStore *Store
	nilStore.Free() // must not panic
	if nilStore.IsValid() {
		t.Error("nil store reports valid")
	}
}

func TestStore_ZeroValue(t *testing.T) {
	var st Store

	if st.IsValid() {
		t.Error("zero store reports valid")
	}
	if err := st.AddSample([]byte{1}); !errors.Is(err, ErrInvalidStore) {
		t.Errorf("AddSample on zero store: err = %v, want ErrInvalidStore", err)
	}
	if err := Append(&st, uint8(1)); !errors.Is(err, ErrInvalidStore) {
		t.Errorf("Append on zero store: err = %v, want ErrInvalidStore", err)
	}
	st.Reset()
	st.Free()
}

func TestWindow_ReturnsCopy(t *testing.T) {
	st := mustStore(t, 1, 3)
	fill(t, st, []uint8{1, 2, 3})

	w := Window[uint8](st)
	w[0] = 99

	if got := Window[uint8](st)[0]; got != 1 {
		t.Errorf("slot 0 = %d after mutating copy, want 1", got)
	}
}

func TestWindow_WidthMismatch(t *testing.T) {
	st := mustStore(t, 2, 4)
	if w := Window[uint8](st); w != nil {
		t.Errorf("Window[uint8] on 2-byte store = %v, want nil", w)
	}
	if w := Window[float64](st); w != nil {
		t.Errorf("Window[float64] on 2-byte store = %v, want nil", w)
	}
}

func TestStore_FreshWindowReadsZero(t *testing.T) {
	st := mustStore(t, 4, 8)

	if got := Max[int32](st); got != 0 {
		t.Errorf("Max on fresh store = %d, want 0", got)
	}
	if got := Min[int32](st); got != 0 {
		t.Errorf("Min on fresh store = %d, want 0", got)
	}
	if got := Mean[int32](st); got != 0 {
		t.Errorf("Mean on fresh store = %d, want 0", got)
	}
	// All slots equal, so the variance of a fresh window is zero, not an
	// error.
	if got := Variance[int32](st); got != 0 {
		t.Errorf("Variance on fresh store = %d, want 0", got)
	}
}

// itoa converts an int to a string without importing strconv.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	buf := [20]byte{}
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
