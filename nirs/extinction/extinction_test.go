package extinction

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-fnirs/nirs/core"
)

func TestBuiltinTablesAreWellFormed(t *testing.T) {
	tbl, err := Default().Table(Gratzer)
	require.NoError(t, err)
	lo, hi := tbl.Range()
	assert.Equal(t, 650.0, lo)
	assert.Equal(t, 1000.0, hi)
}

func TestDefaultRegistryServesOnlyBundledDatasets(t *testing.T) {
	for _, d := range Datasets() {
		t.Run(d.String(), func(t *testing.T) {
			_, err := Default().Coefficients([]int{760, 850}, d)
			if d == Gratzer {
				assert.True(t, Bundled(d))
				require.NoError(t, err)
				return
			}
			assert.False(t, Bundled(d))
			require.ErrorIs(t, err, ErrNotBundled)
			require.ErrorIs(t, err, core.ErrInvalidInput)
		})
	}
	assert.False(t, Bundled(Dataset(42)))
}

func TestRegistryServesCallerSuppliedDataset(t *testing.T) {
	r := NewRegistry(func(d Dataset) ([]Sample, error) {
		if d != Wray {
			return nil, ErrNotBundled
		}
		return []Sample{{700, 100, 300}, {900, 500, 100}}, nil
	})

	m, err := r.Coefficients([]int{750, 850}, Wray)
	require.NoError(t, err)
	assert.InDelta(t, 200, m.At(0, 0), 1e-12)
	assert.InDelta(t, 250, m.At(0, 1), 1e-12)
	assert.InDelta(t, 400, m.At(1, 0), 1e-12)
	assert.InDelta(t, 150, m.At(1, 1), 1e-12)

	_, err = r.Coefficients([]int{750, 850}, Cope)
	require.ErrorIs(t, err, ErrNotBundled)
}

func TestCoefficientsAtTabulatedWavelengths(t *testing.T) {
	m, err := Coefficients([]int{760, 850}, Gratzer)
	require.NoError(t, err)

	r, c := m.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	assert.InDelta(t, 586, m.At(0, 0), 1e-9)
	assert.InDelta(t, 1548.52, m.At(0, 1), 1e-9)
	assert.InDelta(t, 1058, m.At(1, 0), 1e-9)
	assert.InDelta(t, 691.32, m.At(1, 1), 1e-9)
}

func TestCoefficientsInterpolateLinearly(t *testing.T) {
	m, err := Coefficients([]int{765, 845}, Gratzer)
	require.NoError(t, err)

	assert.InDelta(t, (586.0+652.0)/2, m.At(0, 0), 1e-9)
	assert.InDelta(t, (1548.52+1311.88)/2, m.At(0, 1), 1e-9)
	assert.InDelta(t, (1022.0+1058.0)/2, m.At(1, 0), 1e-9)
	assert.InDelta(t, (692.36+691.32)/2, m.At(1, 1), 1e-9)
}

func TestCoefficientsRowOrderFollowsInput(t *testing.T) {
	a, err := Coefficients([]int{760, 850}, Gratzer)
	require.NoError(t, err)
	b, err := Coefficients([]int{850, 760}, Gratzer)
	require.NoError(t, err)

	assert.Equal(t, mat.Row(nil, 0, a), mat.Row(nil, 1, b))
	assert.Equal(t, mat.Row(nil, 1, a), mat.Row(nil, 0, b))
}

func TestCoefficientsRejectInvalidPairs(t *testing.T) {
	for _, tc := range []struct {
		name string
		wls  []int
		d    Dataset
		want error
	}{
		{name: "equal", wls: []int{760, 760}, d: Wray, want: core.ErrInvalidInput},
		{name: "one", wls: []int{760}, d: Wray, want: core.ErrInvalidInput},
		{name: "three", wls: []int{690, 760, 850}, d: Wray, want: core.ErrInvalidInput},
		{name: "unknown dataset", wls: []int{760, 850}, d: Dataset(42), want: core.ErrInvalidInput},
		{name: "not bundled", wls: []int{760, 850}, d: Takatani, want: ErrNotBundled},
		{name: "below range", wls: []int{600, 850}, d: Gratzer, want: core.ErrOutOfRange},
		{name: "above range", wls: []int{760, 1100}, d: Gratzer, want: core.ErrOutOfRange},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Coefficients(tc.wls, tc.d)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestEqualWavelengthsCheckedBeforeLoading(t *testing.T) {
	var calls atomic.Int32
	r := NewRegistry(func(Dataset) ([]Sample, error) {
		calls.Add(1)
		return gratzerTable, nil
	})
	_, err := r.Coefficients([]int{760, 760}, Gratzer)
	require.ErrorIs(t, err, core.ErrInvalidInput)
	assert.Zero(t, calls.Load())
}

func TestRegistryLoadsOncePerDataset(t *testing.T) {
	var calls [numDatasets]atomic.Int32
	r := NewRegistry(func(d Dataset) ([]Sample, error) {
		calls[d].Add(1)
		return []Sample{{650, 100, 200}, {1000, 300, 400}}, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Coefficients([]int{700, 900}, Moaveni)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, calls[Moaveni].Load())
	assert.Zero(t, calls[Wray].Load())
}

func TestRegistryCachesLoadFailure(t *testing.T) {
	boom := errors.New("boom")
	var calls atomic.Int32
	r := NewRegistry(func(Dataset) ([]Sample, error) {
		calls.Add(1)
		return nil, boom
	})

	for i := 0; i < 3; i++ {
		_, err := r.Coefficients([]int{700, 900}, Cope)
		require.ErrorIs(t, err, boom)
	}
	assert.EqualValues(t, 1, calls.Load())
}

func TestNewTableValidation(t *testing.T) {
	_, err := NewTable([]Sample{{700, 1, 1}})
	require.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = NewTable([]Sample{{700, 1, 1}, {700, 2, 2}})
	require.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = NewTable([]Sample{{700, 1, 1}, {math.NaN(), 2, 2}})
	require.ErrorIs(t, err, core.ErrInvalidInput)

	tbl, err := NewTable([]Sample{{700, 0, 10}, {800, 10, 0}})
	require.NoError(t, err)
	hbo, hbr, err := tbl.At(725)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, hbo, 1e-12)
	assert.InDelta(t, 7.5, hbr, 1e-12)
}

func TestParseDataset(t *testing.T) {
	for _, d := range Datasets() {
		got, err := ParseDataset(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	_, err := ParseDataset("prahl")
	require.ErrorIs(t, err, core.ErrInvalidInput)
}

func ExampleCoefficients() {
	m, err := Coefficients([]int{760, 850}, Gratzer)
	if err != nil {
		panic(err)
	}
	fmt.Printf("760nm hbo=%.0f hbr=%.2f\n", m.At(0, 0), m.At(0, 1))

	// Output:
	// 760nm hbo=586 hbr=1548.52
}
