package extinction

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-fnirs/nirs/core"
)

// Provider returns the 2x2 extinction matrix for a wavelength pair.
// Row i belongs to wavelengths[i]; column 0 holds the HbO coefficient and
// column 1 the HbR coefficient.
type Provider interface {
	Coefficients(wavelengths []int, d Dataset) (*mat.Dense, error)
}

// Loader supplies the samples of a dataset. A Registry calls it at most
// once per dataset.
type Loader func(Dataset) ([]Sample, error)

type slot struct {
	once  sync.Once
	table *Table
	err   error
}

// Registry lazily loads and caches one immutable Table per dataset.
// It is safe for concurrent use.
type Registry struct {
	loader Loader
	slots  [numDatasets]slot
}

// ErrNotBundled reports a dataset without a compiled-in table. It wraps
// core.ErrInvalidInput.
var ErrNotBundled = fmt.Errorf("extinction: dataset not bundled, supply its samples through NewRegistry: %w",
	core.ErrInvalidInput)

var (
	defaultRegistry = NewRegistry(nil)

	_ Provider = (*Registry)(nil)
)

// NewRegistry returns a Registry backed by loader. A nil loader serves the
// compiled-in tables and fails with ErrNotBundled for the others.
func NewRegistry(loader Loader) *Registry {
	if loader == nil {
		loader = builtinSamples
	}
	return &Registry{loader: loader}
}

// Default returns the process-wide registry of compiled-in tables.
// Only [Gratzer] is available from it.
func Default() *Registry {
	return defaultRegistry
}

// Coefficients queries the default registry.
func Coefficients(wavelengths []int, d Dataset) (*mat.Dense, error) {
	return defaultRegistry.Coefficients(wavelengths, d)
}

// Table returns the loaded table for d, loading it on first use. A failed
// load is cached and returned to every later caller.
func (r *Registry) Table(d Dataset) (*Table, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("extinction: unknown dataset %v: %w", d, core.ErrInvalidInput)
	}
	s := &r.slots[d]
	s.once.Do(func() {
		samples, err := r.loader(d)
		if err != nil {
			s.err = fmt.Errorf("extinction: loading %v: %w", d, err)
			return
		}
		s.table, s.err = NewTable(samples)
		if s.err != nil {
			s.err = fmt.Errorf("extinction: loading %v: %w", d, s.err)
		}
	})
	return s.table, s.err
}

// Coefficients implements Provider. The pair is validated before the table
// is touched: exactly two distinct wavelengths and a defined dataset.
func (r *Registry) Coefficients(wavelengths []int, d Dataset) (*mat.Dense, error) {
	if len(wavelengths) != 2 {
		return nil, fmt.Errorf("extinction: need exactly 2 wavelengths, got %d: %w",
			len(wavelengths), core.ErrInvalidInput)
	}
	if wavelengths[0] == wavelengths[1] {
		return nil, fmt.Errorf("extinction: wavelengths must differ, got %d twice: %w",
			wavelengths[0], core.ErrInvalidInput)
	}

	t, err := r.Table(d)
	if err != nil {
		return nil, err
	}

	data := make([]float64, 0, 4)
	for _, wl := range wavelengths {
		hbo, hbr, err := t.At(float64(wl))
		if err != nil {
			return nil, fmt.Errorf("extinction: %v: %w", d, err)
		}
		data = append(data, hbo, hbr)
	}
	return mat.NewDense(2, 2, data), nil
}

// Bundled reports whether d has a compiled-in table.
func Bundled(d Dataset) bool {
	return d.Valid() && len(builtinTables[d]) > 0
}

func builtinSamples(d Dataset) ([]Sample, error) {
	if !Bundled(d) {
		return nil, ErrNotBundled
	}
	return append([]Sample(nil), builtinTables[d]...), nil
}
