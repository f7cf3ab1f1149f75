// SPDX-License-Identifier: MIT
// Package: matcalc/builder
//
// build.go — turning declared shapes plus per-cell inputs into named arrays.
//
// Contract:
//   • Only the shape bounds are validated; any float64 is accepted per cell.
//   • Cells the source leaves unset hold DefaultCellValue.
//   • Every call allocates fresh arrays; nothing from an earlier call is reused.

package builder

import "github.com/katalvlaran/matcalc/matrix"

// Build produces the matrix id of shape rows×cols whose element [r][c]
// equals src.Cell(id, r, c), or DefaultCellValue when the cell is unset.
// A nil src yields an all-default matrix.
//
// Errors:
//   - ErrEmptyID, ErrBadShape (rows or cols outside [MinDim, MaxDim]).
//
// Complexity:
//   - Time O(rows*cols) source lookups, Space O(rows*cols).
func Build(id string, rows, cols int, src CellSource) (NamedMatrix, error) {
	return build(MethodBuild, id, rows, cols, MaxDim, src)
}

// BuildSet builds len(specs) matrices named by the configured ID scheme,
// in order: specs[0] gets idFn(0), specs[1] gets idFn(1), and so on.
// Zero-valued specs take the default shape (2×2 unless WithDefaultShape).
//
// Errors:
//   - ErrBadCount (len(specs) outside [MinMatrices, MaxMatrices]),
//     ErrBadShape, ErrEmptyID, ErrDuplicateID.
//
// Complexity:
//   - Time O(Σ rows*cols), Space O(Σ rows*cols).
func BuildSet(specs []Shape, src CellSource, opts ...Option) (*Set, error) {
	if err := validateCount(MethodBuildSet, len(specs)); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)

	set := &Set{
		order: make([]string, 0, len(specs)),
		byID:  make(map[string]NamedMatrix, len(specs)),
	}
	var (
		i   int
		id  string
		nm  NamedMatrix
		err error
	)
	for i = range specs {
		id = cfg.idFn(i)
		if _, dup := set.byID[id]; dup {
			return nil, builderErrorf(MethodBuildSet, "%q at position %d: %w", id, i, ErrDuplicateID)
		}
		shape := cfg.resolve(specs[i])
		if nm, err = build(MethodBuildSet, id, shape.Rows, shape.Cols, cfg.maxDim, src); err != nil {
			return nil, err
		}
		set.order = append(set.order, id)
		set.byID[id] = nm
	}

	return set, nil
}

// build is the shared core of Build and BuildSet.
func build(method, id string, rows, cols, maxDim int, src CellSource) (NamedMatrix, error) {
	if err := validateID(method, id); err != nil {
		return NamedMatrix{}, err
	}
	if err := validateShape(method, id, rows, cols, maxDim); err != nil {
		return NamedMatrix{}, err
	}
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return NamedMatrix{}, builderErrorf(method, "%s: %w", id, err)
	}
	if src != nil {
		m.Apply(func(r, c int, _ float64) float64 {
			if v, ok := src.Cell(id, r, c); ok {
				return v
			}
			return DefaultCellValue
		})
	}

	return NamedMatrix{ID: id, data: m}, nil
}
