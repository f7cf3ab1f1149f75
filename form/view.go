// SPDX-License-Identifier: MIT

package form

import (
	"bytes"
	"encoding/base64"
	"html/template"
	"net/url"
	"strconv"

	"github.com/katalvlaran/matcalc/builder"
	"github.com/katalvlaran/matcalc/dispatch"
)

type cellView struct {
	Name  string
	Value string
}

type matrixView struct {
	ID         string
	RowsName   string
	ColsName   string
	Rows, Cols int
	Cells      [][]cellView
}

type opView struct {
	Name     string
	Selected bool
}

// pageView is everything the page template reads.
type pageView struct {
	Count       int
	MaxMatrices int
	MaxDim      int
	Matrices    []matrixView
	IDs         []string
	Ops         []opView
	Left, Right string

	Submitted   bool
	Error       string
	Report      string
	Title       string
	HeatmapPNG  template.URL
	ArrowsPNG   template.URL
	Notice      string
	HeatmapLink template.URL
}

// newPageView mirrors in back into the form so entered values survive a post.
func newPageView(in Input, maxDim int) *pageView {
	view := &pageView{
		Count:       len(in.IDs),
		MaxMatrices: builder.MaxMatrices,
		MaxDim:      maxDim,
		IDs:         in.IDs,
		Left:        in.Left,
		Right:       in.Right,
	}
	for i, id := range in.IDs {
		shape := in.Shapes[i]
		mv := matrixView{
			ID:       id,
			RowsName: rowsKey(id),
			ColsName: colsKey(id),
			Rows:     shape.Rows,
			Cols:     shape.Cols,
			Cells:    make([][]cellView, shape.Rows),
		}
		for r := range mv.Cells {
			mv.Cells[r] = make([]cellView, shape.Cols)
			for c := range mv.Cells[r] {
				val := "0"
				if f, ok := in.Cells.Cell(id, r, c); ok {
					val = strconv.FormatFloat(f, 'g', -1, 64)
				}
				mv.Cells[r][c] = cellView{Name: cellKey(id, r, c), Value: val}
			}
		}
		view.Matrices = append(view.Matrices, mv)
	}
	for _, op := range dispatch.Ops() {
		view.Ops = append(view.Ops, opView{Name: op.String(), Selected: op == in.Op})
	}

	return view
}

// heatmapLink points /heatmap at the same input.
func heatmapLink(in Input) template.URL {
	return template.URL(pathHeatmap + "?" + encodeInput(in))
}

// encodeInput re-encodes in as query values.
func encodeInput(in Input) string {
	v := url.Values{}
	v.Set(fieldCount, strconv.Itoa(len(in.IDs)))
	for i, id := range in.IDs {
		v.Set(rowsKey(id), strconv.Itoa(in.Shapes[i].Rows))
		v.Set(colsKey(id), strconv.Itoa(in.Shapes[i].Cols))
	}
	for k, f := range in.Cells {
		v.Set(cellKey(k.ID, k.Row, k.Col), strconv.FormatFloat(f, 'g', -1, 64))
	}
	v.Set(fieldOp, in.Op.String())
	v.Set(fieldLeft, in.Left)
	v.Set(fieldRight, in.Right)

	return v.Encode()
}

// pngDataURL wraps encoded PNG bytes for an <img src>.
func pngDataURL(buf *bytes.Buffer) template.URL {
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()))
}
