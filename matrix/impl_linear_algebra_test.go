// Package matrix_test contains unit tests for the linear-algebra kernels.
package matrix_test

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/stretchr/testify/require"
)

// ---------- Add / Sub ----------

func TestAdd_Succeeds(t *testing.T) {
	t.Parallel()
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustRows(t, [][]float64{{5, 6}, {7, 8}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{6, 8}, {10, 12}}, sum.Rows2D())

	// Operands are never mutated.
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, a.Rows2D())
	require.Equal(t, [][]float64{{5, 6}, {7, 8}}, b.Rows2D())
}

func TestAdd_DimensionMismatch(t *testing.T) {
	t.Parallel()
	a := RandFilledDense(t, 2, 2, 1)
	b := RandFilledDense(t, 3, 2, 2)
	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAdd_NilOperand(t *testing.T) {
	t.Parallel()
	var nilDense *matrix.Dense
	_, err := matrix.Add(RandFilledDense(t, 2, 2, 1), nilDense)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestAddSub_RoundTrip verifies (A + B) - B == A within tolerance.
func TestAddSub_RoundTrip(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		r, c int
		seed int64
	}{{1, 1, 1}, {2, 3, 2}, {5, 5, 3}, {10, 10, 4}} {
		t.Run(fmt.Sprintf("%dx%d", tc.r, tc.c), func(t *testing.T) {
			a := RandFilledDense(t, tc.r, tc.c, tc.seed)
			b := RandFilledDense(t, tc.r, tc.c, tc.seed+100)
			sum, err := matrix.Add(a, b)
			require.NoError(t, err)
			back, err := matrix.Sub(sum, b)
			require.NoError(t, err)
			CompareClose(t, a, back, tol)
		})
	}
}

// TestAdd_WrappedInput_MatchesDense forces the materializing path.
func TestAdd_WrappedInput_MatchesDense(t *testing.T) {
	t.Parallel()
	a := RandFilledDense(t, 3, 4, 7)
	b := RandFilledDense(t, 3, 4, 8)
	want, err := matrix.Add(a, b)
	require.NoError(t, err)
	got, err := matrix.Add(hide{a}, hide{b})
	require.NoError(t, err)
	require.True(t, want.Equal(got))
}

// ---------- Mul ----------

func TestMul_Succeeds(t *testing.T) {
	t.Parallel()
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustRows(t, [][]float64{{5, 6}, {7, 8}})
	prod, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{19, 22}, {43, 50}}, prod.Rows2D())
}

func TestMul_Rectangular(t *testing.T) {
	t.Parallel()
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustRows(t, [][]float64{{1, 0}, {0, 1}, {1, 1}})
	prod, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{4, 5}, {10, 11}}, prod.Rows2D())
}

func TestMul_DimensionMismatch(t *testing.T) {
	t.Parallel()
	a := RandFilledDense(t, 2, 3, 1)
	b := RandFilledDense(t, 2, 2, 2)
	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// ---------- Transpose ----------

func TestTranspose_Rectangular(t *testing.T) {
	t.Parallel()
	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, tr.Rows2D())
}

// TestTranspose_Involution_NoMutation verifies (mᵀ)ᵀ == m exactly.
func TestTranspose_Involution_NoMutation(t *testing.T) {
	t.Parallel()
	for seed := int64(1); seed <= 4; seed++ {
		m := RandFilledDense(t, int(seed)+1, 7-int(seed), seed)
		snapshot := m.CloneDense()
		once, err := matrix.Transpose(m)
		require.NoError(t, err)
		twice, err := matrix.Transpose(once)
		require.NoError(t, err)
		require.True(t, m.Equal(twice), "seed %d", seed)
		require.True(t, m.Equal(snapshot), "input mutated")
	}
}

// ---------- Inverse ----------

func TestInverse_Known2x2(t *testing.T) {
	t.Parallel()
	m := MustRows(t, [][]float64{{4, 7}, {2, 6}})
	inv, err := matrix.Inverse(m)
	require.NoError(t, err)
	want := MustRows(t, [][]float64{{0.6, -0.7}, {-0.2, 0.4}})
	CompareClose(t, want, inv, tol)
}

// TestInverse_Involution verifies Inverse(Inverse(M)) ≈ M.
func TestInverse_Involution(t *testing.T) {
	t.Parallel()
	for _, n := range []int{1, 2, 3, 6, 10} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			m := RandFilledDense(t, n, n, int64(n))
			// Diagonal dominance keeps the fixture well-conditioned.
			for i := 0; i < n; i++ {
				v, _ := m.At(i, i)
				require.NoError(t, m.Set(i, i, v+float64(n)+1))
			}
			inv, err := matrix.Inverse(m)
			require.NoError(t, err)
			back, err := matrix.Inverse(inv)
			require.NoError(t, err)
			CompareClose(t, m, back, 1e-8)
		})
	}
}

func TestInverse_Errors(t *testing.T) {
	t.Parallel()
	_, err := matrix.Inverse(MustRows(t, [][]float64{{1, 2}, {0, 0}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Inverse(MustRows(t, [][]float64{{1, 2}, {2, 4}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Inverse(RandFilledDense(t, 2, 3, 1))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// ---------- Det ----------

func TestDet(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"diag", [][]float64{{2, 0}, {0, 3}}, 6},
		{"2x2", [][]float64{{1, 2}, {3, 4}}, -2},
		{"singular", [][]float64{{1, 2}, {2, 4}}, 0},
		{"1x1", [][]float64{{-5}}, -5},
		{"3x3", [][]float64{{2, 0, 1}, {1, 3, 2}, {1, 1, 2}}, 6},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.Det(MustRows(t, tc.rows))
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, tol)
		})
	}

	_, err := matrix.Det(RandFilledDense(t, 3, 2, 1))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// ---------- Rank ----------

func TestRank(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		name string
		rows [][]float64
		want int
	}{
		{"zero row", [][]float64{{1, 2}, {0, 0}}, 1},
		{"full", [][]float64{{1, 2}, {3, 4}}, 2},
		{"all zero", [][]float64{{0, 0}, {0, 0}}, 0},
		{"dependent rows", [][]float64{{1, 2, 3}, {2, 4, 6}, {1, 1, 1}}, 2},
		{"wide", [][]float64{{1, 0, 0}, {0, 1, 0}}, 2},
		{"tall", [][]float64{{1}, {2}, {3}}, 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.Rank(MustRows(t, tc.rows))
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestRank_NonFinite(t *testing.T) {
	t.Parallel()
	for _, rows := range [][][]float64{
		{{math.NaN(), 1}, {2, 3}},
		{{math.Inf(1), 0}, {0, 1}},
		{{1, math.Inf(-1)}, {0, 1}},
	} {
		_, err := matrix.Rank(MustRows(t, rows))
		require.ErrorIs(t, err, matrix.ErrNonFinite)
	}
}

// ---------- Eigen ----------

func TestEigen_NonFinite(t *testing.T) {
	t.Parallel()
	for _, rows := range [][][]float64{
		{{math.NaN(), 1}, {2, 3}},
		{{math.Inf(1), 0}, {0, 1}},
		{{1, 0, 0}, {0, math.NaN(), 0}, {0, 0, 1}},
	} {
		e, err := matrix.Eigen(MustRows(t, rows))
		require.ErrorIs(t, err, matrix.ErrNonFinite)
		require.Nil(t, e)
	}
}

func TestEigen_Diagonal(t *testing.T) {
	t.Parallel()
	e, err := matrix.Eigen(MustRows(t, [][]float64{{2, 0}, {0, 3}}))
	require.NoError(t, err)
	require.Equal(t, 2, e.Len())

	want := map[float64][2]float64{2: {1, 0}, 3: {0, 1}}
	for k, lambda := range e.Values {
		require.InDelta(t, 0, imag(lambda), tol)
		axis, ok := want[matrix.Round(real(lambda), 4)]
		require.True(t, ok, "unexpected eigenvalue %v", lambda)
		v, ok := e.Real2D(k)
		require.True(t, ok)
		require.InDelta(t, axis[0], math.Abs(v[0]), tol)
		require.InDelta(t, axis[1], math.Abs(v[1]), tol)
	}
}

// TestEigen_Residual checks A·v ≈ λ·v for a non-symmetric 3×3 input.
func TestEigen_Residual(t *testing.T) {
	t.Parallel()
	rows := [][]float64{{4, 1, 2}, {0, 3, 1}, {1, 0, 2}}
	e, err := matrix.Eigen(MustRows(t, rows))
	require.NoError(t, err)
	require.Equal(t, 3, e.Len())

	_, ok := e.Real2D(0)
	require.False(t, ok, "Real2D is defined for 2×2 decompositions only")

	for k, lambda := range e.Values {
		v := e.Vectors[k]
		for i := range rows {
			var av complex128
			for j := range rows[i] {
				av += complex(rows[i][j], 0) * v[j]
			}
			require.InDelta(t, 0, cmplx.Abs(av-lambda*v[i]), 1e-8, "pair %d row %d", k, i)
		}
	}
}

// TestEigen_Rotation yields a complex-conjugate pair ±i.
func TestEigen_Rotation(t *testing.T) {
	t.Parallel()
	e, err := matrix.Eigen(MustRows(t, [][]float64{{0, -1}, {1, 0}}))
	require.NoError(t, err)
	for _, lambda := range e.Values {
		require.InDelta(t, 0, real(lambda), tol)
		require.InDelta(t, 1, math.Abs(imag(lambda)), tol)
	}
}

func TestEigen_NonSquare(t *testing.T) {
	t.Parallel()
	_, err := matrix.Eigen(RandFilledDense(t, 2, 3, 1))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
