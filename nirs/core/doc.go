// Package core holds the types, errors, and options shared by the fNIRS
// processing packages.
//
// A recording is a row-major [][]float64 of shape (channels, samples). Each
// row is the time series of one measurement channel; sample order is
// preserved by every operation, and no operation mutates caller-owned rows.
//
// Errors fall into four kinds, each a sentinel that callers match with
// [errors.Is]:
//
//   - [ErrInvalidInput]:     malformed shapes, counts, enum values, or pairing
//   - [ErrOutOfRange]:       wavelength outside a reference table
//   - [ErrSingularMatrix]:   non-invertible extinction matrix
//   - [ErrDegenerateSignal]: zero-variance denominator
package core
