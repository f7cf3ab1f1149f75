// SPDX-License-Identifier: MIT
// Package: matcalc/render
//
// arrows.go — eigenvector diagram for 2×2 matrices.
//
// Layout:
//   - Axes fixed to [-2, 2] on both sides with gray lines through the origin.
//   - One red arrow per vector from (0,0) to its tip, head drawn as two strokes.
//   - Labels "v1", "v2" placed at 1.1× the tip.

package render

import (
	"image/color"
	"io"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	tagArrows = "Arrows"

	// DefaultArrowsTitle is the heading used when Arrows gets an empty title.
	DefaultArrowsTitle = "Eigenvector Visualization"

	arrowLimit      = 2.0
	arrowHeadLength = 0.1
	arrowHeadWidth  = 0.1
	labelScale      = 1.1
)

var (
	axisColor  = color.Gray{Y: 0x80}
	arrowColor = color.RGBA{R: 0xff, A: 0xff}
)

// Arrows writes a diagram of vecs drawn as arrows from the origin to w.
// Zero-length vectors get a label but no arrow head.
//
// Errors:
//   - encoder and writer errors wrapped with "Arrows".
//
// Complexity:
//   - O(1) plus encoding.
func Arrows(w io.Writer, vecs [2][2]float64, title string, opts ...Option) error {
	cfg := gatherOptions(opts...)
	if title == "" {
		title = DefaultArrowsTitle
	}

	p := plot.New()
	p.Title.Text = title
	p.Add(plotter.NewGrid())

	for _, axis := range []plotter.XYs{
		{{X: -arrowLimit, Y: 0}, {X: arrowLimit, Y: 0}},
		{{X: 0, Y: -arrowLimit}, {X: 0, Y: arrowLimit}},
	} {
		l, err := plotter.NewLine(axis)
		if err != nil {
			return renderErrorf(tagArrows, err)
		}
		l.Color = axisColor
		p.Add(l)
	}

	xyl := plotter.XYLabels{}
	for k, v := range vecs {
		for _, stroke := range arrowStrokes(v) {
			l, err := plotter.NewLine(stroke)
			if err != nil {
				return renderErrorf(tagArrows, err)
			}
			l.Color = arrowColor
			l.Width = vg.Points(2)
			p.Add(l)
		}
		if !finite(v) {
			continue
		}
		xyl.XYs = append(xyl.XYs, plotter.XY{X: v[0] * labelScale, Y: v[1] * labelScale})
		xyl.Labels = append(xyl.Labels, "v"+strconv.Itoa(k+1))
	}
	labels, err := plotter.NewLabels(xyl)
	if err != nil {
		return renderErrorf(tagArrows, err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YCenter
	}
	p.Add(labels)

	// Fixed viewport; set after Add so data ranges cannot widen it.
	p.X.Min, p.X.Max = -arrowLimit, arrowLimit
	p.Y.Min, p.Y.Max = -arrowLimit, arrowLimit

	if err = writePlot(w, p, cfg); err != nil {
		return renderErrorf(tagArrows, err)
	}

	return nil
}

// arrowStrokes returns the shaft and, for non-zero vectors, the head.
// Non-finite components produce no strokes at all.
func arrowStrokes(v [2]float64) []plotter.XYs {
	if !finite(v) {
		return nil
	}
	x, y := v[0], v[1]
	shaft := plotter.XYs{{X: 0, Y: 0}, {X: x, Y: y}}
	n := math.Hypot(x, y)
	if n == 0 {
		return []plotter.XYs{shaft}
	}
	ux, uy := x/n, y/n // unit direction
	px, py := -uy, ux  // unit normal
	bx, by := x-arrowHeadLength*ux, y-arrowHeadLength*uy
	hw := arrowHeadWidth / 2
	head := plotter.XYs{
		{X: bx + hw*px, Y: by + hw*py},
		{X: x, Y: y},
		{X: bx - hw*px, Y: by - hw*py},
	}

	return []plotter.XYs{shaft, head}
}

func finite(v [2]float64) bool {
	return !math.IsNaN(v[0]) && !math.IsNaN(v[1]) && !math.IsInf(v[0], 0) && !math.IsInf(v[1], 0)
}
