package form_test

import (
	"net/url"
	"testing"

	"github.com/katalvlaran/matcalc/builder"
	"github.com/katalvlaran/matcalc/dispatch"
	"github.com/katalvlaran/matcalc/form"
	"github.com/stretchr/testify/require"
)

func TestParseValues_Defaults(t *testing.T) {
	t.Parallel()
	in := form.ParseValues(url.Values{}, builder.MaxDim)
	require.Equal(t, []string{"A", "B"}, in.IDs)
	require.Equal(t, []builder.Shape{{Rows: 2, Cols: 2}, {Rows: 2, Cols: 2}}, in.Shapes)
	require.Empty(t, in.Cells)
	require.Equal(t, dispatch.Op(0), in.Op)
	require.Equal(t, "A", in.Left)
	require.Equal(t, "A", in.Right)
	require.False(t, in.Resize)
}

func TestParseValues_Clamping(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		name      string
		v         url.Values
		maxDim    int
		wantCount int
		wantShape builder.Shape
	}{
		{"count above max", url.Values{"count": {"9"}}, 10, builder.MaxMatrices, builder.Shape{Rows: 2, Cols: 2}},
		{"count below min", url.Values{"count": {"0"}}, 10, 1, builder.Shape{Rows: 2, Cols: 2}},
		{"count garbage", url.Values{"count": {"x"}}, 10, 2, builder.Shape{Rows: 2, Cols: 2}},
		{"rows above max", url.Values{"r_A": {"42"}, "c_A": {"-3"}}, 10, 2, builder.Shape{Rows: 10, Cols: 1}},
		{"custom max dim", url.Values{"r_A": {"5"}, "c_A": {"5"}}, 3, 2, builder.Shape{Rows: 3, Cols: 3}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			in := form.ParseValues(tc.v, tc.maxDim)
			require.Len(t, in.IDs, tc.wantCount)
			require.Equal(t, tc.wantShape, in.Shapes[0])
		})
	}
}

func TestParseValues_CellsAndOperands(t *testing.T) {
	t.Parallel()
	in := form.ParseValues(url.Values{
		"A_0_0":  {" 1.5 "},
		"A_0_1":  {"abc"},
		"A_1_1":  {"-2e3"},
		"A_5_5":  {"7"}, // outside the 2×2 shape
		"op":     {"multiply"},
		"m1":     {"B"},
		"m2":     {"Z"},
		"action": {"resize"},
	}, builder.MaxDim)

	require.Equal(t, builder.MapSource{
		{ID: "A", Row: 0, Col: 0}: 1.5,
		{ID: "A", Row: 1, Col: 1}: -2000,
	}, in.Cells)
	require.Equal(t, dispatch.OpMultiply, in.Op)
	require.Equal(t, dispatch.Request{Op: dispatch.OpMultiply, Left: "B", Right: "A"}, in.Request())
	require.True(t, in.Resize)
}
