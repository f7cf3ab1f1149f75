// SPDX-License-Identifier: MIT
// Package: matcalc/render
//
// heatmap.go — color-coded matrix image.
//
// Implementation:
//   - denseGrid adapts a row snapshot to plotter.GridXYZ with the Y axis
//     flipped, so matrix row 0 is drawn at the top like a printed matrix.
//   - The color range spans the finite values only; ±Inf cells take the
//     palette ends, NaN cells a neutral gray.
//   - Each cell is annotated with its value to 2 decimals.

package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/matcalc/matrix"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

const (
	tagHeatmap = "Heatmap"

	heatColors    = 12  // palette resolution
	cellPlaces    = 2   // annotation decimals
	flatHalfRange = 0.5 // color range widening for constant matrices
)

// nanColor fills cells holding NaN.
var nanColor = color.Gray{Y: 0xcc}

// denseGrid is a plotter.GridXYZ over a row-major snapshot.
type denseGrid struct {
	rows [][]float64
}

var _ plotter.GridXYZ = denseGrid{}

func (g denseGrid) Dims() (c, r int) { return len(g.rows[0]), len(g.rows) }

// Z maps grid row r (bottom-up) to matrix row len-1-r (top-down).
func (g denseGrid) Z(c, r int) float64 { return g.rows[len(g.rows)-1-r][c] }

func (g denseGrid) X(c int) float64 { return float64(c) }

func (g denseGrid) Y(r int) float64 { return float64(r) }

// Heatmap writes a heatmap of m titled title to w.
//
// Errors:
//   - ErrNilMatrix; encoder and writer errors wrapped with "Heatmap".
//
// Complexity:
//   - Time O(r*c) plus encoding, Space O(r*c).
func Heatmap(w io.Writer, m *matrix.Dense, title string, opts ...Option) error {
	if m == nil {
		return renderErrorf(tagHeatmap, ErrNilMatrix)
	}
	cfg := gatherOptions(opts...)
	grid := denseGrid{rows: m.Rows2D()}

	pal := palette.Heat(heatColors, 1)
	colors := pal.Colors()
	hm := plotter.NewHeatMap(grid, pal)
	hm.Min, hm.Max = colorRange(m)
	hm.Underflow, hm.Overflow = colors[0], colors[len(colors)-1]
	hm.NaN = nanColor

	labels, err := cellLabels(grid)
	if err != nil {
		return renderErrorf(tagHeatmap, err)
	}

	p := plot.New()
	p.Title.Text = title
	p.Add(hm, labels)
	cols, rows := grid.Dims()
	p.X.Label.Text = "col"
	p.Y.Label.Text = "row"
	p.X.Tick.Marker = indexTicks(cols, false)
	p.Y.Tick.Marker = indexTicks(rows, true)

	if err = writePlot(w, p, cfg); err != nil {
		return renderErrorf(tagHeatmap, err)
	}

	return nil
}

// colorRange returns the finite [lo, hi] of m, widened when flat.
func colorRange(m *matrix.Dense) (lo, hi float64) {
	lo, hi = m.MinMax()
	if math.IsNaN(lo) {
		lo, hi = 0, 0
	}
	if lo == hi {
		lo, hi = lo-flatHalfRange, hi+flatHalfRange
	}

	return lo, hi
}

// cellLabels places one centered "%.2f" label on every cell.
func cellLabels(g denseGrid) (*plotter.Labels, error) {
	cols, rows := g.Dims()
	xyl := plotter.XYLabels{
		XYs:    make(plotter.XYs, 0, cols*rows),
		Labels: make([]string, 0, cols*rows),
	}
	var c, r int
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			xyl.XYs = append(xyl.XYs, plotter.XY{X: g.X(c), Y: g.Y(r)})
			xyl.Labels = append(xyl.Labels, fmt.Sprintf("%.*f", cellPlaces, g.Z(c, r)))
		}
	}
	labels, err := plotter.NewLabels(xyl)
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YCenter
	}

	return labels, nil
}

// indexTicks labels integer positions 0..n-1; flipped counts down so the
// Y axis reads like matrix row indices.
func indexTicks(n int, flipped bool) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, n)
	for i := range ticks {
		label := i
		if flipped {
			label = n - 1 - i
		}
		ticks[i] = plot.Tick{Value: float64(i), Label: strconv.Itoa(label)}
	}

	return ticks
}

// writePlot encodes p per cfg and copies it to w.
func writePlot(w io.Writer, p *plot.Plot, cfg config) error {
	wt, err := p.WriterTo(cfg.width, cfg.height, cfg.format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)

	return err
}
