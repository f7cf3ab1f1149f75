// SPDX-License-Identifier: MIT

package render

import (
	"io"
	"math"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/katalvlaran/matcalc/matrix"
)

const tagHeatmapPage = "HeatmapPage"

// emptyCell is the echarts placeholder for a missing value; NaN and ±Inf
// cannot be encoded as JSON numbers.
const emptyCell = "-"

// pageColors is the fixed visual-map gradient, cold to hot.
var pageColors = []string{"#313695", "#4575b4", "#abd9e9", "#fee090", "#f46d43", "#a50026"}

// HeatmapPage writes a self-contained HTML page with an interactive heatmap of m.
// Cell values are rounded to 2 decimals; row 0 is at the top.
//
// Errors:
//   - ErrNilMatrix; template and writer errors wrapped with "HeatmapPage".
func HeatmapPage(w io.Writer, m *matrix.Dense, title string) error {
	if m == nil {
		return renderErrorf(tagHeatmapPage, ErrNilMatrix)
	}
	rows := m.Rows2D()
	lo, hi := colorRange(m)

	xs := make([]string, m.Cols())
	for j := range xs {
		xs[j] = strconv.Itoa(j)
	}
	ys := make([]string, m.Rows())
	for i := range ys {
		ys[i] = strconv.Itoa(i)
	}
	data := make([]opts.HeatMapData, 0, m.Rows()*m.Cols())
	for i, row := range rows {
		for j, v := range row {
			var cell interface{} = matrix.Round(v, cellPlaces)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				cell = emptyCell
			}
			data = append(data, opts.HeatMapData{Value: [3]interface{}{j, i, cell}})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "category",
			Name:      "col",
			Data:      xs,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "category",
			Name:      "row",
			Data:      ys,
			Inverse:   opts.Bool(true),
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        float32(lo),
			Max:        float32(hi),
			InRange:    &opts.VisualMapInRange{Color: pageColors},
		}),
	)
	hm.AddSeries(title, data, charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}))

	page := components.NewPage()
	page.SetPageTitle(title)
	page.AddCharts(hm)
	if err := page.Render(w); err != nil {
		return renderErrorf(tagHeatmapPage, err)
	}

	return nil
}
