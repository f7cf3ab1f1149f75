// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by kernels and callers.
package matrix

// Matrix represents a two-dimensional array of float64 values.
// Kernels accept any implementation; *Dense unlocks the no-copy bridge to
// the numeric backend, anything else is materialized once per call.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// EigenDecomposition holds an eigen-decomposition in solver order.
// Vectors[k] is the right eigenvector paired with Values[k] (column k of the
// solver output), normalized to unit Euclidean length by the backend.
type EigenDecomposition struct {
	Values  []complex128
	Vectors [][]complex128
}

// Len returns the number of eigenpairs.
func (e *EigenDecomposition) Len() int { return len(e.Values) }

// Real2D returns the real part of the k-th eigenvector of a 2×2 decomposition.
// ok is false when the decomposition is not 2-dimensional or k is out of range.
func (e *EigenDecomposition) Real2D(k int) (v [2]float64, ok bool) {
	if len(e.Values) != 2 || k < 0 || k >= len(e.Vectors) || len(e.Vectors[k]) != 2 {
		return v, false
	}

	return [2]float64{real(e.Vectors[k][0]), real(e.Vectors[k][1])}, true
}
