// SPDX-License-Identifier: MIT

package dispatch

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/render"
)

// Kind tags the populated branch of a Result.
type Kind int

// Result kinds.
const (
	KindMatrix Kind = iota + 1
	KindScalar
	KindEigen
	KindFailure
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindMatrix:
		return "Matrix"
	case KindScalar:
		return "Scalar"
	case KindEigen:
		return "Eigen"
	case KindFailure:
		return "Failure"
	}

	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// NoticeVisualizationUnsupported accompanies eigen results that have no arrow diagram.
const NoticeVisualizationUnsupported = "Eigenvector visualization is supported for 2×2 matrices only."

// Heatmap titles.
const (
	TitleResult          = "Result Heatmap"
	titleTransposePrefix = "Transpose of "
	titleInversePrefix   = "Inverse of "
	titleMatrixPrefix    = "Matrix "
)

// EigenResult holds an eigen-decomposition in backend order.
// Vectors[k] pairs with Values[k]. Exactly one of Arrows and Notice is set:
// Arrows holds the real parts of both eigenvectors of a 2×2 source,
// Notice explains why any other size has no diagram.
type EigenResult struct {
	Values  []complex128
	Vectors [][]complex128
	Arrows  *[2][2]float64
	Notice  string
}

// Result is the tagged outcome of Dispatch. Kind selects the populated field:
//
//	KindMatrix   Matrix
//	KindScalar   Scalar (Rank holds an integer count)
//	KindEigen    Eigen
//	KindFailure  Failure
//
// Non-failure results also carry the matrix to draw as a heatmap and its title.
type Result struct {
	Kind    Kind
	Op      Op
	Matrix  *matrix.Dense
	Scalar  float64
	Eigen   *EigenResult
	Failure *Failure
	Heatmap *matrix.Dense
	Title   string

	places int
}

// Err returns the Failure as an error, or nil for a successful result.
func (r Result) Err() error {
	if r.Failure == nil {
		return nil
	}

	return r.Failure
}

// Report renders the result as text, rounded to the dispatcher's display places.
//
//	Add/Subtract/Multiply  "Result:" + rows
//	Transpose, Inverse     "Transpose:" / "Inverse:" + rows
//	Rank                   "Rank: 2"
//	Determinant            "Determinant: 6"
//	Eigenvalues            values, eigenvector matrix (columns), optional notice
//	failure                the failure reason
func (r Result) Report() string {
	var b strings.Builder
	switch r.Kind {
	case KindFailure:
		return r.Failure.Reason
	case KindMatrix:
		b.WriteString(matrixHeading(r.Op))
		b.WriteString(":\n")
		b.WriteString(render.Text(r.Matrix, r.places))
	case KindScalar:
		b.WriteString(r.Op.String())
		b.WriteString(": ")
		if r.Op == OpRank {
			b.WriteString(strconv.Itoa(int(r.Scalar)))
		} else {
			b.WriteString(render.Scalar(r.Scalar, r.places))
		}
		b.WriteByte('\n')
	case KindEigen:
		b.WriteString("Eigenvalues:\n")
		b.WriteString(render.ComplexRow(r.Eigen.Values, r.places))
		b.WriteString("\nEigenvectors:\n")
		for _, row := range vectorRows(r.Eigen.Vectors) {
			b.WriteString(render.ComplexRow(row, r.places))
			b.WriteByte('\n')
		}
		if r.Eigen.Notice != "" {
			b.WriteString(r.Eigen.Notice)
			b.WriteByte('\n')
		}
	}

	return b.String()
}

func matrixHeading(op Op) string {
	switch op {
	case OpTranspose, OpInverse:
		return op.String()
	}

	return "Result"
}

// vectorRows lays eigenvectors out as matrix rows with one vector per column.
func vectorRows(vectors [][]complex128) [][]complex128 {
	if len(vectors) == 0 {
		return nil
	}
	n := len(vectors[0])
	rows := make([][]complex128, n)
	for i := range rows {
		rows[i] = make([]complex128, len(vectors))
		for k, v := range vectors {
			rows[i][k] = v[i]
		}
	}

	return rows
}
