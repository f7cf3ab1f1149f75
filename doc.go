// Package matcalc is an interactive matrix calculator: enter up to five
// small matrices, pick an operation, and get the result back as text, a
// heatmap and (for 2×2 eigenproblems) an eigenvector plot.
//
// 🚀 What is matcalc?
//
//	A small web tool built from a few focused packages:
//		• Matrix building: shapes in [1,10]×[1,10], unset cells default to 0
//		• Operations: Add, Subtract, Multiply, Transpose, Inverse, Rank,
//		  Determinant, Eigenvalues
//		• Uniform failures: ShapeMismatch, Singular, ComputationError
//		• Rendering: static PNG/SVG heatmaps, eigenvector arrows, and an
//		  interactive ECharts heatmap page
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/   — Dense storage + linear-algebra kernels backed by gonum/mat
//	builder/  — shape validation, ID schemes and BuildSet over a CellSource
//	dispatch/ — Op catalog, preconditions, classification into Result
//	render/   — text formatting, gonum/plot heatmap & arrows, go-echarts page
//	form/     — net/http handler: form parsing, template, wiring
//	cmd/      — the matcalc binary
//
// Quick example:
//
//	set, _ := builder.BuildSet([]builder.Shape{{Rows: 2, Cols: 2}, {Rows: 2, Cols: 2}}, cells)
//	res := dispatch.New().Dispatch(dispatch.Request{Op: dispatch.OpMultiply, Left: "A", Right: "B"}, set)
//	fmt.Print(res.Report())
//	_ = render.Heatmap(w, res.Heatmap, res.Title)
//
// See each subpackage's doc.go for guarantees and complexity notes.
package matcalc
