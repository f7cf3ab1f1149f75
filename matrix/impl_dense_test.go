// Package matrix_test contains unit tests for Dense storage and accessors.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 10},
	} {
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			m, err := matrix.NewDense(tc.rows, tc.cols)
			require.NoError(t, err)
			r, c := m.Shape()
			require.Equal(t, tc.rows, r)
			require.Equal(t, tc.cols, c)
			for _, row := range m.Rows2D() {
				for _, v := range row {
					require.Zero(t, v)
				}
			}
		})
	}
}

func TestNewDense_BadShape(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{{0, 1}, {1, 0}, {-1, 2}} {
		_, err := matrix.NewDense(tc.rows, tc.cols)
		require.ErrorIs(t, err, matrix.ErrBadShape)
	}
}

func TestFromRows(t *testing.T) {
	src := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m, err := matrix.FromRows(src)
	require.NoError(t, err)
	require.Equal(t, src, m.Rows2D())

	// The literal is copied, not retained.
	src[0][0] = 99
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	_, err = matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDense_AtSet_OutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)

	// Any float is accepted per cell.
	require.NoError(t, m.Set(1, 1, math.Inf(-1)))
	require.NoError(t, m.Set(0, 0, math.NaN()))
}

func TestDense_CloneIsIndependent(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	cp := m.CloneDense()
	require.True(t, m.Equal(cp))

	require.NoError(t, cp.Set(0, 0, -1))
	require.False(t, m.Equal(cp))
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)
}

func TestDense_MinMax(t *testing.T) {
	m := MustRows(t, [][]float64{{3, math.NaN()}, {-2, 7}, {math.Inf(1), math.Inf(-1)}})
	lo, hi := m.MinMax()
	require.Equal(t, -2.0, lo)
	require.Equal(t, 7.0, hi)

	allNaN := MustRows(t, [][]float64{{math.NaN()}})
	lo, hi = allNaN.MinMax()
	require.True(t, math.IsNaN(lo))
	require.True(t, math.IsNaN(hi))
}

func TestDense_String(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2.5}, {-3, 0}})
	require.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}

func TestRound(t *testing.T) {
	require.Equal(t, 6.0, matrix.Round(5.99999999, 4))
	require.Equal(t, 0.1235, matrix.Round(0.12346, 4))
	require.Equal(t, -1.5, matrix.Round(-1.49996, 4))
	require.False(t, math.Signbit(matrix.Round(-0.00001, 4)), "negative zero must normalize")
	require.True(t, math.IsInf(matrix.Round(math.Inf(1), 4), 1))

	z := matrix.RoundComplex(complex(1.000049, -0.33333), 4)
	require.Equal(t, complex(1.0, -0.3333), z)

	m := MustRows(t, [][]float64{{1.23456, 2}})
	r := matrix.RoundDense(m, 2)
	require.Equal(t, [][]float64{{1.23, 2}}, r.Rows2D())
	require.Equal(t, [][]float64{{1.23456, 2}}, m.Rows2D(), "input untouched")
}
