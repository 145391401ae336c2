package testutil

import (
	"math"
	"testing"
)

// RequireNear fails t unless got lies within eps of want (absolute
// tolerance).
func RequireNear(t *testing.T, name string, got, want, eps float64) {
	t.Helper()

	if math.Abs(got-want) > eps {
		t.Fatalf("%s = %v, want %v (±%v)", name, got, want, eps)
	}
}

// RequireNearRel fails t unless got lies within rel*|want| of want.
// This mirrors the relative-tolerance checks used against closed-form
// references.
func RequireNearRel(t *testing.T, name string, got, want, rel float64) {
	t.Helper()

	if math.Abs(got-want) > math.Abs(want*rel) {
		t.Fatalf("%s = %v, want %v (±%v%%)", name, got, want, rel*100)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}
