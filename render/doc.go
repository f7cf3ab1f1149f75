// SPDX-License-Identifier: MIT
// Package render turns numeric results into something a person can look at.
//
// What:
//   - Text:        bracketed rows with fixed decimals, plus scalar and complex formatters.
//   - Heatmap:     PNG/SVG heatmap of a matrix (gonum.org/v1/plot), every cell
//     annotated to 2 decimals, row 0 drawn at the top.
//   - Arrows:      PNG/SVG diagram of two 2-D vectors drawn from the origin,
//     axes fixed to [-2, 2] and labelled "v1", "v2".
//   - HeatmapPage: interactive HTML heatmap (go-echarts) of the same matrix.
//
// Why:
//   - The numeric layers stay free of plotting dependencies; everything that
//     draws lives here and consumes *matrix.Dense only.
//
// Options:
//   - WithSize(w, h) and WithFormat("png"|"svg") apply to the gonum/plot
//     renderers. Option constructors panic on nonsense values.
//
// Errors:
//   - ErrNilMatrix for a nil input; encoder errors are returned wrapped with
//     the renderer tag.
package render
