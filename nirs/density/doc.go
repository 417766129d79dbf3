// Package density converts raw light intensities or optical densities into
// optical density changes relative to a per-channel baseline.
//
// For intensities the change is
//
//	ΔOD = -log10(|I| / baseline)
//
// and for optical densities it is
//
//	ΔOD = |OD| - baseline
//
// The baseline is the temporal mean of the absolute values of each channel
// when refs is nil, or refs[ch] otherwise. Non-positive inputs or
// references are reported as a warning on the configured logger and are
// otherwise propagated: the output may contain NaN or Inf.
package density
