// Package eos fits the third-order Birch-Murnaghan equation of state to
// pressure-volume data and solves for the volume at a target pressure.
package eos

import "math"

// BirchMurnaghan evaluates the third-order Birch-Murnaghan isothermal
// equation of state P(V) for reference volume v0, bulk modulus b0 and its
// pressure derivative b0p.
func BirchMurnaghan(v, v0, b0, b0p float64) float64 {
	eta := v0 / v
	return 1.5 * b0 * (math.Pow(eta, 7.0/3.0) - math.Pow(eta, 5.0/3.0)) *
		(1 + 0.75*(b0p-4)*(math.Pow(eta, 2.0/3.0)-1))
}

// BulkModulus evaluates -V dP/dV at volume v.
//
// The expression is the derivative of a truncated form of the EOS and ignores
// the B0' term, so it is not the exact bulk modulus of the curve fitted by
// BirchMurnaghan. Kept as-is to match the established analysis; see DESIGN.md.
func BulkModulus(v, v0, b0, b0p float64) float64 {
	return -v * (-(math.Pow(v0, 5.0/3.0) * b0 * (5*math.Pow(v, 2.0/3.0) - 7*math.Pow(v0, 2.0/3.0))) /
		(2 * math.Pow(v, 10.0/3.0)))
}
