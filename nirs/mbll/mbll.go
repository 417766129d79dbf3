package mbll

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-fnirs/nirs/core"
	"github.com/cwbudde/algo-fnirs/nirs/extinction"
)

// Params describes the channels of a density-change recording. Names,
// Wavelengths, DPFs and Distances are parallel to the recording rows.
type Params struct {
	Names       []string
	Wavelengths []int     // nm
	DPFs        []float64 // differential pathlength factors
	Distances   []float64 // source-detector distances in Unit
	Unit        Unit
	Table       extinction.Dataset
}

type config struct {
	provider extinction.Provider
}

// Option configures Transform.
type Option func(*config)

// WithProvider replaces the default extinction coefficient provider.
func WithProvider(p extinction.Provider) Option {
	return func(cfg *config) {
		if p != nil {
			cfg.provider = p
		}
	}
}

// Transform converts density changes of shape (channels, samples) into
// hemoglobin concentration changes of shape (2·locations, samples).
//
// Every location name must label exactly two rows with distinct
// wavelengths. The result is always two-dimensional, including for a single
// sample or a single location. See the package documentation for the row
// ordering.
func Transform(deltaOD [][]float64, p Params, opts ...Option) (core.HbRecording, error) {
	cfg := config{provider: extinction.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	pairs, pathlengths, err := validate(deltaOD, p)
	if err != nil {
		return core.HbRecording{}, err
	}
	samples := len(deltaOD[0])

	out := core.HbRecording{
		Data:  core.NewRecording(2*len(pairs), samples),
		Names: make([]string, 0, 2*len(pairs)),
		Types: make([]core.HbType, 0, 2*len(pairs)),
	}

	od := mat.NewDense(2, samples, nil)
	var inv, conc mat.Dense
	for k, pr := range pairs {
		wls := []int{p.Wavelengths[pr.first], p.Wavelengths[pr.second]}
		e, err := cfg.provider.Coefficients(wls, p.Table)
		if err != nil {
			return core.HbRecording{}, fmt.Errorf("mbll: location %q: %w", pr.name, err)
		}
		if err := inv.Inverse(e); err != nil {
			var cond mat.Condition
			if errors.As(err, &cond) {
				return core.HbRecording{}, fmt.Errorf("mbll: location %q at %v nm (condition %g): %w",
					pr.name, wls, float64(cond), core.ErrSingularMatrix)
			}
			return core.HbRecording{}, fmt.Errorf("mbll: location %q: %w", pr.name, err)
		}

		vecmath.ScaleBlock(od.RawRowView(0), deltaOD[pr.first], 1/pathlengths[pr.first])
		vecmath.ScaleBlock(od.RawRowView(1), deltaOD[pr.second], 1/pathlengths[pr.second])

		// Column j of conc is E⁻¹ applied to sample j.
		conc.Mul(&inv, od)

		copy(out.Data[2*k], conc.RawRowView(0))
		copy(out.Data[2*k+1], conc.RawRowView(1))
		out.Names = append(out.Names, pr.name, pr.name)
		out.Types = append(out.Types, core.HbO, core.HbR)
	}
	return out, nil
}

// validate checks shapes, labels and enums before any computation and
// returns the location pairs and per-channel pathlengths in cm.
func validate(deltaOD [][]float64, p Params) ([]pair, []float64, error) {
	channels, _, err := core.Shape(deltaOD)
	if err != nil {
		return nil, nil, fmt.Errorf("mbll: %w", err)
	}
	if len(p.Names) != channels || len(p.Wavelengths) != channels ||
		len(p.DPFs) != channels || len(p.Distances) != channels {
		return nil, nil, fmt.Errorf("mbll: %d channels but %d names, %d wavelengths, %d dpfs, %d distances: %w",
			channels, len(p.Names), len(p.Wavelengths), len(p.DPFs), len(p.Distances), core.ErrInvalidInput)
	}

	scale, err := p.Unit.toCentimeters()
	if err != nil {
		return nil, nil, err
	}
	if !p.Table.Valid() {
		return nil, nil, fmt.Errorf("mbll: unknown dataset %v: %w", p.Table, core.ErrInvalidInput)
	}

	pathlengths := make([]float64, channels)
	for i := range pathlengths {
		l := p.DPFs[i] * p.Distances[i] * scale
		if !(l > 0) || math.IsInf(l, 0) {
			return nil, nil, fmt.Errorf("mbll: channel %d has pathlength %g (dpf %g, distance %g %v): %w",
				i, l, p.DPFs[i], p.Distances[i], p.Unit, core.ErrInvalidInput)
		}
		pathlengths[i] = l
	}

	pairs, err := pairChannels(p.Names)
	if err != nil {
		return nil, nil, err
	}
	for _, pr := range pairs {
		if wl := p.Wavelengths[pr.first]; wl == p.Wavelengths[pr.second] {
			return nil, nil, fmt.Errorf("mbll: location %q has both channels at %d nm: %w",
				pr.name, wl, core.ErrInvalidInput)
		}
	}
	return pairs, pathlengths, nil
}
