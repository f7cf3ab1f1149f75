// SPDX-License-Identifier: MIT

package builder

// CellSource supplies scalar cell inputs addressable by (matrix id, row, col).
// ok=false means the cell is unset; Build then stores DefaultCellValue.
type CellSource interface {
	Cell(id string, row, col int) (v float64, ok bool)
}

// CellFunc adapts an ordinary function to CellSource.
type CellFunc func(id string, row, col int) (float64, bool)

// Cell calls f(id, row, col).
func (f CellFunc) Cell(id string, row, col int) (float64, bool) { return f(id, row, col) }

// CellKey addresses one cell of one named matrix.
type CellKey struct {
	ID       string
	Row, Col int
}

// MapSource is an in-memory CellSource; absent keys are unset cells.
type MapSource map[CellKey]float64

// Cell looks up (id, row, col).
func (s MapSource) Cell(id string, row, col int) (float64, bool) {
	v, ok := s[CellKey{ID: id, Row: row, Col: col}]
	return v, ok
}
