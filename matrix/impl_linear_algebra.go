// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, matrix multiplication, transpose,
// inverse, determinant, numerical rank and eigen-decomposition. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches; the arithmetic itself is delegated to gonum.org/v1/gonum/mat.
//
// Notes:
//   - All kernels use the central validators and wrap sentinels via matrixErrorf.
//   - Results are freshly allocated; operands are never mutated or aliased.

package matrix

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opInverse   = "Inverse"
	opDet       = "Det"
	opRank      = "Rank"
	opEigen     = "Eigen"
)

// machEps is the float64 machine epsilon (2^-52), the unit used by the
// default rank threshold.
var machEps = math.Nextafter(1, 2) - 1

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// binaryOperands validates a, b with check and converts both to *Dense.
func binaryOperands(a, b Matrix, tag string, check func(a, b Matrix) error) (*Dense, *Dense, error) {
	if err := check(a, b); err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}

	return da, db, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) {
	da, db, err := binaryOperands(a, b, opAdd, ValidateSameShape)
	if err != nil {
		return nil, err
	}
	var out mat.Dense
	out.Add(da.view(), db.view())

	return fromMat(&out), nil
}

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) {
	da, db, err := binaryOperands(a, b, opSub, ValidateSameShape)
	if err != nil {
		return nil, err
	}
	var out mat.Dense
	out.Sub(da.view(), db.view())

	return fromMat(&out), nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	da, db, err := binaryOperands(a, b, opMul, ValidateMulCompatible)
	if err != nil {
		return nil, err
	}
	var out mat.Dense
	out.Mul(da.view(), db.view())

	return fromMat(&out), nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated. Applying Transpose twice yields a
// matrix Equal to the input: values are moved, never recomputed.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return fromMat(dm.view().T()), nil
}

// Inverse computes A^{-1} via LU factorization with partial pivoting.
//
// Behavior highlights:
//   - Exact singularity (a zero pivot, reported by gonum as an infinite
//     condition number) returns ErrSingular.
//   - An ill-conditioned but non-singular input still returns its inverse,
//     matching the common numeric-library default of only failing on
//     exact singularity.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var inv mat.Dense
	if err = inv.Inverse(dm.view()); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, matrixErrorf(opInverse, err)
		}
		if math.IsInf(float64(cond), 1) || math.IsNaN(float64(cond)) {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		// Finite condition: the inverse was computed and is returned as is.
	}

	return fromMat(&inv), nil
}

// Det returns the determinant of a square matrix (LU-based).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Det(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return mat.Det(dm.view()), nil
}

// Rank returns the numerical rank of m: the number of singular values
// strictly greater than σmax · max(rows, cols) · ε, the customary default
// threshold of SVD-based rank estimators.
//
// Entries near the float64 limit (|v| ≈ 1e308) can overflow inside the SVD
// and report rank 0; no rescaling is attempted.
//
// Errors:
//   - ErrNilMatrix, ErrNonFinite, ErrSVDFailed.
//
// Complexity:
//   - Time O(min(r,c)·r·c), Space O(min(r,c)).
func Rank(m Matrix) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	if !dm.IsFinite() {
		return 0, matrixErrorf(opRank, ErrNonFinite)
	}

	var svd mat.SVD
	if ok := svd.Factorize(dm.view(), mat.SVDNone); !ok {
		return 0, matrixErrorf(opRank, ErrSVDFailed)
	}
	values := svd.Values(nil) // descending order
	if len(values) == 0 {
		return 0, nil
	}
	tol := values[0] * float64(max(dm.r, dm.c)) * machEps

	rank := 0
	for _, s := range values {
		if s > tol {
			rank++
		}
	}

	return rank, nil
}

// Eigen computes eigenvalues and right eigenvectors of a general square matrix.
// Eigenvalues are complex in general; Vectors[k] pairs with Values[k].
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNonFinite (NaN or ±Inf element; the
//     solver would never terminate on NaN), ErrEigenFailed (no convergence).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Eigen(m Matrix) (*EigenDecomposition, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	if !dm.IsFinite() {
		return nil, matrixErrorf(opEigen, ErrNonFinite)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(dm.view(), mat.EigenRight); !ok {
		return nil, matrixErrorf(opEigen, ErrEigenFailed)
	}
	var vecs mat.CDense
	eig.VectorsTo(&vecs)

	return &EigenDecomposition{
		Values:  eig.Values(nil),
		Vectors: columnsOf(&vecs),
	}, nil
}
