// Package cbsi implements correlation-based signal improvement (Cui et al.,
// 2010) for hemoglobin concentration changes.
//
// CBSI assumes that functional HbO and HbR responses are negatively
// correlated while motion and systemic artifacts move both species in the
// same direction. For each location with signals x (HbO) and y (HbR):
//
//	α  = std(x) / std(y)
//	x₀ = (x − α·y) / 2
//	y₀ = −x₀ / α
//
// The corrected pair is perfectly anti-correlated by construction. Standard
// deviations are population standard deviations.
package cbsi
