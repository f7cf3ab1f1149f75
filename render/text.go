// SPDX-License-Identifier: MIT

package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/matcalc/matrix"
)

// Text formats m as bracketed rows with exactly places decimals,
// one row per line: "[1.0000, 2.0000]\n[3.0000, 4.0000]\n".
// A nil matrix renders as the empty string.
// Complexity: O(r*c).
func Text(m *matrix.Dense, places int) string {
	if m == nil {
		return ""
	}
	var b strings.Builder
	for _, row := range m.Rows2D() {
		b.WriteByte('[')
		for j, v := range row {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.FormatFloat(matrix.Round(v, places), 'f', places, 64))
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// Scalar formats v rounded to places decimals without trailing zeros:
// 6 → "6", -2.00004 → "-2", 1/3 → "0.3333" (places=4).
func Scalar(v float64, places int) string {
	return strconv.FormatFloat(matrix.Round(v, places), 'f', -1, 64)
}

// Complex formats z rounded to places decimals. A zero imaginary part is
// dropped ("2"), otherwise the value reads "a+bi" or "a-bi".
func Complex(z complex128, places int) string {
	z = matrix.RoundComplex(z, places)
	re, im := real(z), imag(z)
	if im == 0 {
		return Scalar(re, places)
	}
	sign := "+"
	if im < 0 || math.Signbit(im) {
		sign = "-"
		im = -im
	}

	return Scalar(re, places) + sign + Scalar(im, places) + "i"
}

// ComplexRow formats a vector of complex values as "[a, b, c]".
func ComplexRow(zs []complex128, places int) string {
	parts := make([]string, len(zs))
	for i, z := range zs {
		parts[i] = Complex(z, places)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
