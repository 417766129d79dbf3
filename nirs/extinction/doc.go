// Package extinction provides molar extinction coefficients of oxygenated
// and deoxygenated hemoglobin for the modified Beer-Lambert law.
//
// A [Dataset] names one of five historical reference sources:
//
//   - [Wray]:     Wray et al. (1988)
//   - [Cope]:     Cope (1991)
//   - [Gratzer]:  Gratzer and Kollias, compiled by Prahl
//   - [Moaveni]:  Moaveni (1970), compiled by Prahl
//   - [Takatani]: Takatani and Graham (1987)
//
// Only [Gratzer] is compiled in: Prahl's compilation sampled every 10 nm
// from 650 to 1000 nm. Querying any other dataset through [Default] fails
// with [ErrNotBundled]. Callers that need those datasets load the published
// tables themselves and hand them to [NewRegistry] as a [Loader].
//
// Each dataset is a [Table] sampled over wavelength and queried by
// piecewise-linear interpolation. Queries outside the tabulated range fail
// with [core.ErrOutOfRange]; there is no extrapolation.
//
// Tables are loaded lazily, once per dataset, by a [Registry]. The package
// level [Coefficients] function uses the registry returned by [Default].
// Units are 1/(cm·M), decadic.
package extinction
