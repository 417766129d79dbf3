package mbll

import "math"

// DPF returns the differential pathlength factor for a wavelength (nm) and
// subject age (years), using the general equation of Scholkmann and Wolf
// (2013):
//
//	DPF = 223.3 + 0.05624·age^0.8493 − 5.723e-7·λ³ + 0.001245·λ² − 0.9025·λ
//
// Non-finite results are returned as is.
func DPF(wavelength, age float64) float64 {
	return 223.3 +
		0.05624*math.Pow(age, 0.8493) -
		5.723e-7*math.Pow(wavelength, 3) +
		0.001245*math.Pow(wavelength, 2) -
		0.9025*wavelength
}
