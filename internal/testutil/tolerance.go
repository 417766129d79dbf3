package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	require.Len(t, got, len(want), "length mismatch")
	for i := range got {
		require.InDelta(t, want[i], got[i], eps, "index %d", i)
	}
}

// RequireRecordingNearlyEqual compares two recordings row by row.
func RequireRecordingNearlyEqual(t testing.TB, got, want [][]float64, eps float64) {
	t.Helper()
	require.Len(t, got, len(want), "channel count mismatch")
	for ch := range got {
		require.Len(t, got[ch], len(want[ch]), "channel %d: length mismatch", ch)
		for i := range got[ch] {
			require.InDelta(t, want[ch][i], got[ch][i], eps, "channel %d index %d", ch, i)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t testing.TB, data []float64) {
	t.Helper()
	for i, v := range data {
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "index %d: non-finite value %v", i, v)
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	return floats.Distance(a, b, math.Inf(1)), nil
}
