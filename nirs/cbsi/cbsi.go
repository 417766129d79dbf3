package cbsi

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-fnirs/nirs/core"
)

// location holds the HbO and HbR row indices of one name.
type location struct {
	name     string
	hbo, hbr int
}

// Alpha returns std(hbo) / std(hbr). It fails with core.ErrDegenerateSignal
// when either standard deviation is zero, since both appear as divisors.
func Alpha(hbo, hbr []float64) (float64, error) {
	if len(hbo) == 0 || len(hbo) != len(hbr) {
		return 0, fmt.Errorf("cbsi: signal lengths %d and %d: %w", len(hbo), len(hbr), core.ErrInvalidInput)
	}
	sdHbr := stat.PopStdDev(hbr, nil)
	if sdHbr == 0 {
		return 0, fmt.Errorf("cbsi: hbr signal has zero variance: %w", core.ErrDegenerateSignal)
	}
	alpha := stat.PopStdDev(hbo, nil) / sdHbr
	if alpha == 0 {
		return 0, fmt.Errorf("cbsi: hbo signal has zero variance: %w", core.ErrDegenerateSignal)
	}
	return alpha, nil
}

// Correct applies CBSI to every location of rec. Each name must label
// exactly one HbO and one HbR row. The output holds two rows per name in
// ascending name order, HbO first, like the mbll package.
func Correct(rec core.HbRecording) (core.HbRecording, error) {
	if err := rec.Validate(); err != nil {
		return core.HbRecording{}, fmt.Errorf("cbsi: %w", err)
	}
	locs, err := locate(rec.Names, rec.Types)
	if err != nil {
		return core.HbRecording{}, err
	}

	samples := len(rec.Data[0])
	out := core.HbRecording{
		Data:  core.NewRecording(2*len(locs), samples),
		Names: make([]string, 0, 2*len(locs)),
		Types: make([]core.HbType, 0, 2*len(locs)),
	}

	scaled := make([]float64, samples)
	for k, loc := range locs {
		hbo, hbr := rec.Data[loc.hbo], rec.Data[loc.hbr]
		alpha, err := Alpha(hbo, hbr)
		if err != nil {
			return core.HbRecording{}, fmt.Errorf("cbsi: location %q: %w", loc.name, err)
		}

		dstHbO, dstHbR := out.Data[2*k], out.Data[2*k+1]
		vecmath.ScaleBlock(scaled, hbr, -alpha)
		vecmath.AddMulBlock(dstHbO, hbo, scaled, 0.5)
		vecmath.ScaleBlock(dstHbR, dstHbO, -1/alpha)

		out.Names = append(out.Names, loc.name, loc.name)
		out.Types = append(out.Types, core.HbO, core.HbR)
	}
	return out, nil
}

func locate(names []string, types []core.HbType) ([]location, error) {
	type slots struct{ hbo, hbr []int }
	byName := make(map[string]*slots, len(names)/2)
	for i, n := range names {
		s, ok := byName[n]
		if !ok {
			s = &slots{}
			byName[n] = s
		}
		if types[i] == core.HbO {
			s.hbo = append(s.hbo, i)
		} else {
			s.hbr = append(s.hbr, i)
		}
	}

	keys := make([]string, 0, len(byName))
	for n := range byName {
		keys = append(keys, n)
	}
	sort.Strings(keys)

	out := make([]location, 0, len(keys))
	for _, n := range keys {
		s := byName[n]
		if len(s.hbo) != 1 || len(s.hbr) != 1 {
			return nil, fmt.Errorf("cbsi: location %q has %d hbo and %d hbr channels, want 1 each: %w",
				n, len(s.hbo), len(s.hbr), core.ErrInvalidInput)
		}
		out = append(out, location{name: n, hbo: s.hbo[0], hbr: s.hbr[0]})
	}
	return out, nil
}
