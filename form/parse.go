// SPDX-License-Identifier: MIT

package form

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/katalvlaran/matcalc/builder"
	"github.com/katalvlaran/matcalc/dispatch"
)

// matrixID names the i-th matrix. The same scheme is handed to
// builder.BuildSet, so posted field keys and Set IDs agree.
var matrixID builder.IDFn = builder.SymbolIDFn

// Field names shared by the parser and the template.
const (
	fieldCount  = "count"
	fieldOp     = "op"
	fieldLeft   = "m1"
	fieldRight  = "m2"
	fieldAction = "action"

	actionResize = "resize"

	defaultCount = 2
)

// Input is the decoded form: everything needed to build and dispatch.
type Input struct {
	IDs    []string
	Shapes []builder.Shape
	Cells  builder.MapSource
	Op     dispatch.Op // zero when missing or unknown
	Left   string
	Right  string
	Resize bool
}

// Request returns the dispatch request described by in.
func (in Input) Request() dispatch.Request {
	return dispatch.Request{Op: in.Op, Left: in.Left, Right: in.Right}
}

// ParseValues decodes form values. It never fails: counts and shapes are
// clamped into range, missing or malformed numbers fall back to defaults,
// and non-numeric cells are left unset so the builder stores 0.
// Operand IDs that do not name a matrix fall back to the first one.
func ParseValues(v url.Values, maxDim int) Input {
	count := clamp(intField(v, fieldCount, defaultCount), builder.MinMatrices, builder.MaxMatrices)
	in := Input{
		IDs:    make([]string, count),
		Shapes: make([]builder.Shape, count),
		Cells:  builder.MapSource{},
		Resize: v.Get(fieldAction) == actionResize,
	}

	var i, r, c int
	for i = 0; i < count; i++ {
		id := matrixID(i)
		rows := clamp(intField(v, rowsKey(id), builder.DefaultRows), builder.MinDim, maxDim)
		cols := clamp(intField(v, colsKey(id), builder.DefaultCols), builder.MinDim, maxDim)
		in.IDs[i] = id
		in.Shapes[i] = builder.Shape{Rows: rows, Cols: cols}
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				raw := strings.TrimSpace(v.Get(cellKey(id, r, c)))
				if f, err := strconv.ParseFloat(raw, 64); err == nil {
					in.Cells[builder.CellKey{ID: id, Row: r, Col: c}] = f
				}
			}
		}
	}

	if op, err := dispatch.ParseOp(v.Get(fieldOp)); err == nil {
		in.Op = op
	}
	in.Left = pickID(in.IDs, v.Get(fieldLeft))
	in.Right = pickID(in.IDs, v.Get(fieldRight))

	return in
}

func rowsKey(id string) string { return "r_" + id }

func colsKey(id string) string { return "c_" + id }

func cellKey(id string, r, c int) string {
	return id + "_" + strconv.Itoa(r) + "_" + strconv.Itoa(c)
}

func intField(v url.Values, key string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(v.Get(key)))
	if err != nil {
		return def
	}

	return n
}

func clamp(n, lo, hi int) int {
	return max(lo, min(n, hi))
}

func pickID(ids []string, want string) string {
	for _, id := range ids {
		if id == want {
			return id
		}
	}

	return ids[0]
}
