package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// RequireSliceNearlyEqual fails t unless got and want have the same length
// and agree element-wise within the absolute tolerance eps.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range got {
		if math.Abs(got[i]-want[i]) > eps {
			require.InDeltaf(t, want[i], got[i], eps, "index %d", i)
		}
	}
}

// RequireGridNearlyEqual checks a row-major grid of the given width like
// RequireSliceNearlyEqual and names the offending cell as (x, y).
func RequireGridNearlyEqual(t *testing.T, got, want []float64, width int, eps float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range got {
		if math.Abs(got[i]-want[i]) > eps {
			require.InDeltaf(t, want[i], got[i], eps, "cell (%d,%d)", i%width, i/width)
		}
	}
}

// RequireFinite fails t on the first NaN or infinity in data.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		require.Falsef(t, math.IsNaN(v) || math.IsInf(v, 0), "index %d: non-finite value %v", i, v)
	}
}

// MaxAbsDiff returns the L∞ distance between a and b, which must have equal
// lengths.
func MaxAbsDiff(a, b []float64) float64 {
	return floats.Distance(a, b, math.Inf(1))
}
