// Package filter removes slow drift and physiological noise from fNIRS
// recordings before or after the Beer-Lambert conversion.
//
// [BandPass] keeps only spectral content between two cutoff frequencies
// using a zero-phase FFT mask. Typical hemodynamic bands are 0.01-0.1 Hz
// for resting-state and 0.01-0.5 Hz for task designs.
package filter

import (
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-fnirs/nirs/core"
)

// BandPass returns a copy of rec, shape (channels, samples), with every
// channel restricted to the band [low, high] Hz. sampleRate is in Hz.
// A low cutoff of 0 keeps the channel mean.
func BandPass(rec [][]float64, sampleRate, low, high float64) ([][]float64, error) {
	channels, samples, err := core.Shape(rec)
	if err != nil {
		return nil, fmt.Errorf("filter: %w", err)
	}
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("filter: sample rate must be positive, got %g: %w", sampleRate, core.ErrInvalidInput)
	}
	if !(low >= 0) || !(high > low) || high > sampleRate/2 {
		return nil, fmt.Errorf("filter: band [%g, %g] Hz invalid for sample rate %g Hz: %w",
			low, high, sampleRate, core.ErrInvalidInput)
	}

	fftSize := nextPowerOf2(samples)
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("filter: failed to create FFT plan: %w", err)
	}

	mask := bandMask(fftSize, sampleRate, low, high)
	buf := make([]complex128, fftSize)
	out := core.NewRecording(channels, samples)

	for ch, row := range rec {
		// Removing the mean before zero-padding avoids a step at the pad edge.
		mean := stat.Mean(row, nil)
		for i := range buf {
			buf[i] = 0
		}
		for i, x := range row {
			buf[i] = complex(x-mean, 0)
		}

		if err := plan.Forward(buf, buf); err != nil {
			return nil, fmt.Errorf("filter: forward FFT failed: %w", err)
		}
		for k, keep := range mask {
			if !keep {
				buf[k] = 0
			}
		}
		if err := plan.Inverse(buf, buf); err != nil {
			return nil, fmt.Errorf("filter: inverse FFT failed: %w", err)
		}

		if low > 0 {
			mean = 0
		}
		dst := out[ch]
		for i := range dst {
			dst[i] = real(buf[i]) + mean
		}
	}
	return out, nil
}

// bandMask marks the FFT bins, including their negative-frequency mirrors,
// whose frequency lies in [low, high].
func bandMask(n int, sampleRate, low, high float64) []bool {
	mask := make([]bool, n)
	df := sampleRate / float64(n)
	for k := range mask {
		bin := k
		if k > n/2 {
			bin = n - k
		}
		f := float64(bin) * df
		mask[k] = f >= low && f <= high
	}
	return mask
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
