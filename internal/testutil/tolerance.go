package testutil

import (
	"math"
	"testing"
)

// RequireNear fails t unless got is within eps (absolute) of want. NaN
// matches NaN and like-signed infinities match each other.
func RequireNear(t *testing.T, name string, got, want, eps float64) {
	t.Helper()
	if math.IsNaN(want) && math.IsNaN(got) {
		return
	}
	if math.IsInf(want, 1) && math.IsInf(got, 1) {
		return
	}
	if math.IsInf(want, -1) && math.IsInf(got, -1) {
		return
	}
	if math.Abs(got-want) > eps {
		t.Fatalf("%s: got %v, want %v (eps %v)", name, got, want, eps)
	}
}

// RequireRelNear fails t unless got is within rel (relative) of want. For
// want == 0 the comparison degrades to absolute.
func RequireRelNear(t *testing.T, name string, got, want, rel float64) {
	t.Helper()
	if want == 0 {
		if math.Abs(got) > rel {
			t.Fatalf("%s: got %v, want 0 (rel %v)", name, got, rel)
		}
		return
	}
	if math.Abs(got-want) > rel*math.Abs(want) {
		t.Fatalf("%s: got %v, want %v (rel %v)", name, got, want, rel)
	}
}

// RequireScaledNear fails t unless two fixed-point values differ by at most
// tol scaled units.
func RequireScaledNear(t *testing.T, name string, got, want, tol int64) {
	t.Helper()
	d := got - want
	if d < 0 {
		d = -d
	}
	if d > tol {
		t.Fatalf("%s: got %d, want %d (tol %d)", name, got, want, tol)
	}
}
