package core

import "errors"

// Error kinds returned by the processing packages. Package errors wrap one
// of these, so errors.Is identifies the kind regardless of context.
var (
	ErrInvalidInput     = errors.New("nirs: invalid input")
	ErrOutOfRange       = errors.New("nirs: wavelength out of range")
	ErrSingularMatrix   = errors.New("nirs: singular matrix")
	ErrDegenerateSignal = errors.New("nirs: degenerate signal")
)
