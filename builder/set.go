// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/matcalc/matrix"

// Shape is a declared (rows, cols) pair. The zero value means
// "use the configured default shape" in BuildSet.
type Shape struct {
	Rows, Cols int
}

// NamedMatrix is an identifier bound to an immutable dense array.
// Accessors hand out copies, so no caller can alias the stored values.
type NamedMatrix struct {
	ID   string
	data *matrix.Dense
}

// Rows returns the row count.
func (n NamedMatrix) Rows() int { return n.data.Rows() }

// Cols returns the column count.
func (n NamedMatrix) Cols() int { return n.data.Cols() }

// Dense returns a fresh copy of the stored array.
// Complexity: O(r*c).
func (n NamedMatrix) Dense() *matrix.Dense { return n.data.CloneDense() }

// Values returns the stored array as a fresh [][]float64.
func (n NamedMatrix) Values() [][]float64 { return n.data.Rows2D() }

// Set is an ordered, read-only collection of NamedMatrix values.
type Set struct {
	order []string
	byID  map[string]NamedMatrix
}

// IDs returns the identifiers in build order (a copy).
func (s *Set) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)

	return out
}

// Len returns the number of matrices.
func (s *Set) Len() int { return len(s.order) }

// Get returns the matrix named id.
func (s *Set) Get(id string) (NamedMatrix, bool) {
	n, ok := s.byID[id]
	return n, ok
}

// Lookup returns a fresh copy of the array named id.
// It makes *Set usable wherever an operand lookup is expected.
func (s *Set) Lookup(id string) (*matrix.Dense, bool) {
	n, ok := s.byID[id]
	if !ok {
		return nil, false
	}

	return n.Dense(), true
}
