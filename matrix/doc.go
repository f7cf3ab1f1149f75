// SPDX-License-Identifier: MIT

// Package matrix provides the dense matrix type and the linear-algebra kernels
// used by the calculator.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors.
//   - Element-wise Add/Sub, Mul, Transpose.
//   - Inverse (LU with partial pivoting), Det, Rank (SVD) and Eigen (general,
//     complex-valued) delegated to gonum.org/v1/gonum/mat.
//   - Central validators (ValidateSameShape, ValidateSquare, ValidateMulCompatible)
//     shared by kernels and by callers that need to check preconditions
//     before invoking a kernel.
//   - Round / RoundDense / RoundComplex helpers for fixed-place display.
//
// Operands are never mutated: every kernel allocates a fresh result.
// Tolerances (rank threshold, singularity) follow the backend defaults.
package matrix
