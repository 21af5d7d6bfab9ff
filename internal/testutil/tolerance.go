package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-resize/imaging/pixel"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	if i, d := maxDiff(got, want); d > eps {
		t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], d, eps)
	}
}

// RequirePixelsNear fails t if any component of got is further than eps
// from the matching component of want.
func RequirePixelsNear[P pixel.Pixel](t *testing.T, got, want []P, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d pixels, want %d", len(got), len(want))
	}
	g, w := Components(got), Components(want)
	if i, d := maxDiff(g, w); d > eps {
		n := pixel.CountOf[P]()
		t.Fatalf("pixel %d: got %v, want %v (diff %v > eps %v)", i/n, got[i/n], want[i/n], d, eps)
	}
}

// MaxPixelDiff returns the largest component difference between two
// equally long pixel slices.
func MaxPixelDiff[P pixel.Pixel](a, b []P) float64 {
	_, d := maxDiff(Components(a), Components(b))
	return d
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

func maxDiff(a, b []float64) (idx int, d float64) {
	for i := range min(len(a), len(b)) {
		diff := math.Abs(a[i] - b[i])
		if math.IsNaN(diff) {
			return i, math.Inf(1)
		}
		if diff > d {
			idx, d = i, diff
		}
	}
	return idx, d
}
