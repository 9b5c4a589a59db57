package testutil

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

// RequireSliceNearlyEqual fails t when got and want differ in length or any
// element pair differs by more than eps. The failure names the worst sample
// and how many samples were out of tolerance.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	worst, bad := -1, 0
	worstDiff := 0.0
	for i := range got {
		d := math.Abs(got[i] - want[i])
		if d > eps || math.IsNaN(d) {
			bad++
			if worst < 0 || d > worstDiff {
				worst, worstDiff = i, d
			}
		}
	}

	if bad > 0 {
		t.Fatalf("%d of %d samples outside eps %g; worst at %d: got %v, want %v",
			bad, len(got), eps, worst, got[worst], want[worst])
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("sample %d is %v", i, v)
		}
	}
}

// RequireIndexNear fails t if got is further than tol samples from want.
func RequireIndexNear(t *testing.T, got, want, tol int) {
	t.Helper()
	if d := got - want; d < -tol || d > tol {
		t.Fatalf("index %d not within %d of %d", got, tol, want)
	}
}

// MaxAbsDiff returns the largest absolute element difference, the L-inf
// distance between a and b.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, nil
	}
	return floats.Distance(a, b, math.Inf(1)), nil
}
