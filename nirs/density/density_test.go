package density

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-fnirs/internal/testutil"
	"github.com/cwbudde/algo-fnirs/nirs/core"
)

func rawRecording() [][]float64 {
	return [][]float64{
		testutil.Intensity(0.1, 10, 20, 1000, 100),
		testutil.Intensity(0.2, 10, 35, 800, 100),
		testutil.Intensity(0.05, 10, 5, 1200, 100),
	}
}

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	c, obs := observer.New(zapcore.DebugLevel)
	return zap.New(c), obs
}

func TestIntensitiesToDensityChanges_ReconstructsMean(t *testing.T) {
	raw := rawRecording()
	delta, err := IntensitiesToDensityChanges(raw, nil)
	require.NoError(t, err)

	for ch, row := range raw {
		abs := make([]float64, len(row))
		for i, x := range row {
			abs[i] = math.Abs(x)
		}
		base := stat.Mean(abs, nil)

		back := make([]float64, len(row))
		for i, d := range delta[ch] {
			back[i] = base * math.Pow(10, -d)
		}
		testutil.RequireSliceNearlyEqual(t, back, abs, 1e-9)
		assert.InDelta(t, base, stat.Mean(back, nil), 1e-9)
	}
}

func TestIntensitiesToDensityChanges_WithRefs(t *testing.T) {
	raw := [][]float64{{100, 10, 1000}, {50, 500, 5}}
	delta, err := IntensitiesToDensityChanges(raw, []float64{100, 50})
	require.NoError(t, err)

	testutil.RequireRecordingNearlyEqual(t, delta, [][]float64{{0, 1, -1}, {0, -1, 1}}, 1e-12)
}

func TestDensityToDensityChanges(t *testing.T) {
	od := [][]float64{{1, 2, 3}, {-2, 2, 5}}

	delta, err := DensityToDensityChanges(od, nil)
	require.NoError(t, err)
	testutil.RequireRecordingNearlyEqual(t, delta, [][]float64{{-1, 0, 1}, {-1, -1, 2}}, 1e-12)

	delta, err = DensityToDensityChanges(od, []float64{1, 0.5})
	require.NoError(t, err)
	testutil.RequireRecordingNearlyEqual(t, delta, [][]float64{{0, 1, 2}, {1.5, 1.5, 4.5}}, 1e-12)
}

func TestShapePreserved(t *testing.T) {
	for _, shape := range [][2]int{{1, 1}, {1, 7}, {4, 1}, {6, 33}} {
		in := core.NewRecording(shape[0], shape[1])
		for ch := range in {
			copy(in[ch], testutil.Intensity(0.1, 10, 1, 10, shape[1]))
		}
		for name, fn := range map[string]func([][]float64, []float64, ...core.Option) ([][]float64, error){
			"intensities": IntensitiesToDensityChanges,
			"densities":   DensityToDensityChanges,
		} {
			out, err := fn(in, nil)
			require.NoError(t, err, name)
			ch, n, err := core.Shape(out)
			require.NoError(t, err, name)
			assert.Equal(t, shape, [2]int{ch, n}, name)
		}
	}
}

func TestInputNotMutated(t *testing.T) {
	raw := rawRecording()
	want := testutil.Clone(raw)
	_, err := IntensitiesToDensityChanges(raw, nil)
	require.NoError(t, err)
	assert.Equal(t, want, raw)
}

func TestInvalidInput(t *testing.T) {
	_, err := IntensitiesToDensityChanges(rawRecording(), []float64{1, 2})
	require.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = DensityToDensityChanges([][]float64{{1, 2}, {3}}, nil)
	require.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = DensityToDensityChanges(nil, nil)
	require.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestNonPositiveValuesWarnAndPropagate(t *testing.T) {
	logger, logs := observedLogger()
	raw := [][]float64{{0, 10, 20}, {5, 5, 5}}

	delta, err := IntensitiesToDensityChanges(raw, nil, core.WithLogger(logger))
	require.NoError(t, err)
	assert.True(t, math.IsInf(delta[0][0], 1), "log of zero should propagate as +Inf, got %v", delta[0][0])

	entries := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "intensities", fields["op"])
}

func TestNonPositiveRefsWarn(t *testing.T) {
	logger, logs := observedLogger()
	_, err := DensityToDensityChanges([][]float64{{1, 2}, {3, 4}}, []float64{1, -1}, core.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestPositiveInputDoesNotWarn(t *testing.T) {
	logger, logs := observedLogger()
	_, err := IntensitiesToDensityChanges(rawRecording(), nil, core.WithLogger(logger))
	require.NoError(t, err)
	assert.Zero(t, logs.Len())
}
