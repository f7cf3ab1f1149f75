// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels wrapped with an operation tag and
// tests check them via errors.Is. No kernel panics on user-triggered error
// conditions; panics raised by the numeric backend are the dispatcher's concern.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf(op, ErrX) so the
// surface reads "Inverse: matrix: singular matrix" and errors.Is still matches.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> dimension mismatch / non-square -> numeric failure.

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<=0 or cols<=0),
	// or when a row-slice literal is ragged.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when the LU factorization reports an exactly
	// singular matrix (infinite condition number).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrEigenFailed indicates that the eigen solver did not converge.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrSVDFailed indicates that the singular value decomposition did not converge.
	ErrSVDFailed = errors.New("matrix: singular value decomposition failed")

	// ErrNonFinite is returned by the iterative kernels (Rank, Eigen) when an
	// element is NaN or ±Inf; the solvers cannot converge on such input.
	ErrNonFinite = errors.New("matrix: non-finite element")
)
