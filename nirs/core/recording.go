package core

import "fmt"

// Shape returns the (channels, samples) dimensions of rec.
// It fails with ErrInvalidInput for an empty or ragged recording.
func Shape(rec [][]float64) (channels, samples int, err error) {
	if len(rec) == 0 {
		return 0, 0, fmt.Errorf("core: recording has no channels: %w", ErrInvalidInput)
	}
	samples = len(rec[0])
	if samples == 0 {
		return 0, 0, fmt.Errorf("core: recording has no samples: %w", ErrInvalidInput)
	}
	for i, row := range rec {
		if len(row) != samples {
			return 0, 0, fmt.Errorf("core: channel %d has %d samples, want %d: %w",
				i, len(row), samples, ErrInvalidInput)
		}
	}
	return len(rec), samples, nil
}

// NewRecording allocates a zeroed recording backed by one contiguous buffer.
func NewRecording(channels, samples int) [][]float64 {
	buf := make([]float64, channels*samples)
	out := make([][]float64, channels)
	for i := range out {
		out[i] = buf[i*samples : (i+1)*samples : (i+1)*samples]
	}
	return out
}
