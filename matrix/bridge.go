// SPDX-License-Identifier: MIT

// Package matrix - bridge to gonum.org/v1/gonum/mat.
//
// Purpose:
//   - Hand *Dense buffers to gonum without copying (mat.NewDense shares the slice).
//   - Materialize foreign Matrix implementations once per kernel call.
//   - Copy gonum results back into freshly allocated *Dense values.
//
// Invariant: gonum never writes into a shared operand buffer, because every
// kernel writes into an empty receiver that gonum allocates itself.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// asDense returns m as *Dense, copying through At when m is a foreign implementation.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// view exposes the backing buffer as a read-only gonum matrix (no copy).
func (m *Dense) view() *mat.Dense { return mat.NewDense(m.r, m.c, m.data) }

// fromMat copies a gonum matrix into a fresh *Dense.
// Complexity: O(r*c).
func fromMat(src mat.Matrix) *Dense {
	r, c := src.Dims()
	out := &Dense{r: r, c: c, data: make([]float64, r*c)}
	mat.NewDense(r, c, out.data).Copy(src)

	return out
}

// columnsOf splits a complex gonum matrix into its columns.
// Column k of the eigen solver output pairs with eigenvalue k.
func columnsOf(src *mat.CDense) [][]complex128 {
	r, c := src.Dims()
	cols := make([][]complex128, c)
	var i, k int
	for k = 0; k < c; k++ {
		col := make([]complex128, r)
		for i = 0; i < r; i++ {
			col[i] = src.At(i, k)
		}
		cols[k] = col
	}

	return cols
}
