// SPDX-License-Identifier: MIT
// Package form hosts the matrix calculator as an HTML form over net/http.
//
// Routes:
//
//	GET  /          empty form (two 2×2 matrices)
//	POST /          build matrices from the posted fields, dispatch, show
//	                the text report, heatmap and, for 2×2 eigen results,
//	                the eigenvector diagram
//	GET  /heatmap   interactive heatmap page for the same fields (query string)
//
// Field keys:
//
//	count           number of matrices, clamped to [1,5]
//	r_<id>, c_<id>  rows and cols of matrix <id>, clamped to [1,max-dim]
//	<id>_<r>_<c>    cell value; missing or non-numeric means 0
//	op              operation name (Add, Subtract, ..., Eigenvalues)
//	m1, m2          operand IDs
//	action          "resize" redraws the form without computing
//
// The handler keeps no state between requests.
package form
