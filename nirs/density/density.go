package density

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-fnirs/nirs/core"
	"github.com/cwbudde/algo-fnirs/stats/quality"
)

// IntensitiesToDensityChanges converts raw intensities of shape
// (channels, samples) into optical density changes of the same shape.
func IntensitiesToDensityChanges(intensities [][]float64, refs []float64, opts ...core.Option) ([][]float64, error) {
	return convert("intensities", intensities, refs, opts, func(x, base float64) float64 {
		return -math.Log10(math.Abs(x) / base)
	})
}

// DensityToDensityChanges converts optical densities of shape
// (channels, samples) into optical density changes of the same shape.
func DensityToDensityChanges(densities [][]float64, refs []float64, opts ...core.Option) ([][]float64, error) {
	return convert("densities", densities, refs, opts, func(x, base float64) float64 {
		return math.Abs(x) - base
	})
}

func convert(op string, in [][]float64, refs []float64, opts []core.Option, fn func(x, base float64) float64) ([][]float64, error) {
	channels, samples, err := core.Shape(in)
	if err != nil {
		return nil, fmt.Errorf("density: %s: %w", op, err)
	}
	if refs != nil && len(refs) != channels {
		return nil, fmt.Errorf("density: %s: %d references for %d channels: %w",
			op, len(refs), channels, core.ErrInvalidInput)
	}

	cfg := core.ApplyOptions(opts...)
	warnNonPositive(cfg.Logger, op, in, refs)

	out := core.NewRecording(channels, samples)
	abs := make([]float64, samples)
	for ch, row := range in {
		var base float64
		if refs == nil {
			for i, x := range row {
				abs[i] = math.Abs(x)
			}
			base = stat.Mean(abs, nil)
		} else {
			base = refs[ch]
		}
		dst := out[ch]
		for i, x := range row {
			dst[i] = fn(x, base)
		}
	}
	return out, nil
}

func warnNonPositive(logger *zap.Logger, op string, in [][]float64, refs []float64) {
	chans := quality.NonPositiveChannels(in)
	var badRefs []int
	for i, r := range refs {
		if r <= 0 {
			badRefs = append(badRefs, i)
		}
	}
	if len(chans) == 0 && len(badRefs) == 0 {
		return
	}
	logger.Warn("some values are negative or equal to zero",
		zap.String("op", op),
		zap.Ints("channels", chans),
		zap.Ints("refs", badRefs),
	)
}
