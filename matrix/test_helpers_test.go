// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic test fixtures and utilities for kernels.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/stretchr/testify/require"
)

// Tolerance used for round-trip properties (Add/Sub, Inverse∘Inverse).
const tol = 1e-9

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the materializing (non-*Dense) path.
type hide struct{ matrix.Matrix }

// MustRows builds a *Dense from a row literal or fails the test.
func MustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// RandFilledDense ALLOCATES an r×c *Dense with deterministic U(-1,1) values.
// Values stay finite; sweep seeds in table-driven tests for coverage.
func RandFilledDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, rng.Float64()*2-1))
		}
	}

	return m
}

// CompareClose ASSERTS |a[i,j]-b[i,j]| ≤ atol for every cell and equal shapes.
func CompareClose(t *testing.T, want, got matrix.Matrix, atol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	var i, j int
	for i = 0; i < want.Rows(); i++ {
		for j = 0; j < want.Cols(); j++ {
			w, err := want.At(i, j)
			require.NoError(t, err)
			g, err := got.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, w, g, atol, "cell [%d,%d]", i, j)
		}
	}
}
