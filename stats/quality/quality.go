package quality

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-fnirs/nirs/core"
)

// Stats holds the statistics of a single channel.
type Stats struct {
	Length      int
	Mean        float64
	StdDev      float64 // population (ddof=0)
	Min         float64
	MinPos      int
	Max         float64
	MaxPos      int
	Peak        float64 // max(|x|)
	CV          float64 // 100 * StdDev / |Mean|, NaN for zero mean
	NonPositive int     // samples <= 0
}

// Calculate computes the statistics of signal. Mean and standard deviation
// come from gonum's population estimators.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{CV: math.NaN()}
	}

	mean, std := stat.PopMeanStdDev(signal, nil)
	minPos := floats.MinIdx(signal)
	maxPos := floats.MaxIdx(signal)

	return Stats{
		Length:      n,
		Mean:        mean,
		StdDev:      std,
		Min:         signal[minPos],
		MinPos:      minPos,
		Max:         signal[maxPos],
		MaxPos:      maxPos,
		Peak:        vecmath.MaxAbs(signal),
		CV:          cv(std, mean),
		NonPositive: floats.Count(nonPositive, signal),
	}
}

// Summarize computes Stats for every channel of rec.
func Summarize(rec [][]float64) ([]Stats, error) {
	if _, _, err := core.Shape(rec); err != nil {
		return nil, err
	}
	out := make([]Stats, len(rec))
	for i, row := range rec {
		out[i] = Calculate(row)
	}
	return out, nil
}

// CoefficientOfVariation returns 100 * std / |mean| of signal.
// Returns NaN for an empty or zero-mean signal.
func CoefficientOfVariation(signal []float64) float64 {
	s := Calculate(signal)
	return s.CV
}

// NonPositiveChannels returns the indices of rows holding at least one
// sample <= 0.
func NonPositiveChannels(rec [][]float64) []int {
	var out []int
	for i, row := range rec {
		if floats.Count(nonPositive, row) > 0 {
			out = append(out, i)
		}
	}
	return out
}

func nonPositive(x float64) bool { return x <= 0 }

func cv(std, mean float64) float64 {
	if mean == 0 {
		return math.NaN()
	}
	return 100 * std / math.Abs(mean)
}
