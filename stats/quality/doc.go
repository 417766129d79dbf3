// Package quality computes per-channel signal statistics used to judge raw
// fNIRS channel quality.
//
// The coefficient of variation (CV) of raw intensity is the usual screening
// metric: channels whose CV exceeds a few percent are dominated by noise or
// poor optode coupling. Non-positive raw samples are counted separately
// because they break the logarithm in optical density conversion.
package quality
