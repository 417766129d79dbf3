// Package mbll applies the modified Beer-Lambert law to convert optical
// density changes at two wavelengths into concentration changes of
// oxygenated (HbO) and deoxygenated (HbR) hemoglobin.
//
// For every location the two density changes, each divided by its
// pathlength (DPF times source-detector distance in cm), are related to the
// concentration changes by the 2x2 extinction matrix E:
//
//	[ΔOD₁/L₁]   [ε_HbO(λ₁) ε_HbR(λ₁)] [ΔHbO]
//	[ΔOD₂/L₂] = [ε_HbO(λ₂) ε_HbR(λ₂)] [ΔHbR]
//
// [Transform] inverts E once per location and applies E⁻¹ to every sample.
// Concentrations are in mol/L when E is in 1/(cm·M).
//
// # Channel ordering
//
// Output rows are grouped by location name in ascending lexical order, two
// rows per name, HbO first then HbR. The input row order does not matter.
package mbll
