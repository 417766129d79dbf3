package extinction

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"

	"github.com/cwbudde/algo-fnirs/nirs/core"
)

// Sample is one row of a reference table.
type Sample struct {
	Wavelength float64 // nm
	HbO        float64 // 1/(cm·M)
	HbR        float64 // 1/(cm·M)
}

// Table is an immutable reference dataset that interpolates coefficients
// linearly between tabulated wavelengths.
type Table struct {
	lo, hi float64
	hbo    interp.PiecewiseLinear
	hbr    interp.PiecewiseLinear
}

// NewTable builds a Table from samples sorted by strictly increasing
// wavelength. At least two finite samples are required.
func NewTable(samples []Sample) (*Table, error) {
	n := len(samples)
	if n < 2 {
		return nil, fmt.Errorf("extinction: table needs at least 2 samples, got %d: %w", n, core.ErrInvalidInput)
	}

	xs := make([]float64, n)
	hbo := make([]float64, n)
	hbr := make([]float64, n)
	for i, s := range samples {
		if !isFinite(s.Wavelength) || !isFinite(s.HbO) || !isFinite(s.HbR) {
			return nil, fmt.Errorf("extinction: sample %d is not finite: %w", i, core.ErrInvalidInput)
		}
		if i > 0 && s.Wavelength <= xs[i-1] {
			return nil, fmt.Errorf("extinction: wavelength %g at sample %d is not increasing: %w",
				s.Wavelength, i, core.ErrInvalidInput)
		}
		xs[i] = s.Wavelength
		hbo[i] = s.HbO
		hbr[i] = s.HbR
	}

	t := &Table{lo: xs[0], hi: xs[n-1]}
	if err := t.hbo.Fit(xs, hbo); err != nil {
		return nil, fmt.Errorf("extinction: fitting hbo: %w", err)
	}
	if err := t.hbr.Fit(xs, hbr); err != nil {
		return nil, fmt.Errorf("extinction: fitting hbr: %w", err)
	}
	return t, nil
}

// Range returns the inclusive wavelength interval covered by the table.
func (t *Table) Range() (lo, hi float64) {
	return t.lo, t.hi
}

// At returns the interpolated HbO and HbR coefficients at wavelength (nm).
func (t *Table) At(wavelength float64) (hbo, hbr float64, err error) {
	if math.IsNaN(wavelength) || wavelength < t.lo || wavelength > t.hi {
		return 0, 0, fmt.Errorf("extinction: %g nm outside [%g, %g] nm: %w",
			wavelength, t.lo, t.hi, core.ErrOutOfRange)
	}
	return t.hbo.Predict(wavelength), t.hbr.Predict(wavelength), nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
