package dispatch_test

import (
	"testing"

	"github.com/katalvlaran/matcalc/dispatch"
	"github.com/stretchr/testify/require"
)

func TestOp(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		op    dispatch.Op
		name  string
		arity int
	}{
		{dispatch.OpAdd, "Add", 2},
		{dispatch.OpSubtract, "Subtract", 2},
		{dispatch.OpMultiply, "Multiply", 2},
		{dispatch.OpTranspose, "Transpose", 1},
		{dispatch.OpInverse, "Inverse", 1},
		{dispatch.OpRank, "Rank", 1},
		{dispatch.OpDeterminant, "Determinant", 1},
		{dispatch.OpEigenvalues, "Eigenvalues", 1},
	} {
		require.True(t, tc.op.Valid())
		require.Equal(t, tc.name, tc.op.String())
		require.Equal(t, tc.arity, tc.op.Arity())

		parsed, err := dispatch.ParseOp(" " + tc.name + " ")
		require.NoError(t, err)
		require.Equal(t, tc.op, parsed)
	}
	require.Len(t, dispatch.Ops(), 8)

	var zero dispatch.Op
	require.False(t, zero.Valid())
	require.Equal(t, 0, zero.Arity())
	require.Equal(t, "Op(0)", zero.String())

	parsed, err := dispatch.ParseOp("eigenvalues")
	require.NoError(t, err)
	require.Equal(t, dispatch.OpEigenvalues, parsed)

	_, err = dispatch.ParseOp("Divide")
	require.ErrorIs(t, err, dispatch.ErrUnknownOp)
}
