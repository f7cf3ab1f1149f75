// SPDX-License-Identifier: MIT

package matrix

import "math"

// Round rounds x half away from zero to the given number of decimal places.
// Negative zero is normalized to 0 so rounded output never prints "-0".
func Round(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	p := math.Pow(10, float64(places))
	r := math.Round(x*p) / p
	if r == 0 {
		return 0
	}

	return r
}

// RoundComplex rounds the real and imaginary parts independently.
func RoundComplex(z complex128, places int) complex128 {
	return complex(Round(real(z), places), Round(imag(z), places))
}

// RoundDense returns a rounded copy of m; m itself is left untouched.
// Complexity: O(r*c).
func RoundDense(m *Dense, places int) *Dense {
	out := m.CloneDense()
	out.Apply(func(_, _ int, v float64) float64 { return Round(v, places) })

	return out
}
