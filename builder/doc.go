// SPDX-License-Identifier: MIT
// Package builder turns a declared number of matrices, each with a declared
// shape and per-cell scalar inputs, into named dense arrays.
//
// The package offers the following key components:
//
//   - Constructors:
//     – Build:     one NamedMatrix from (id, rows, cols, CellSource).
//     – BuildSet:  an ordered Set of 1..5 matrices named by an ID scheme.
//   - Cell sources:
//     – CellSource: (id, row, col) → (value, set?).
//     – CellFunc:   function adapter.
//     – MapSource:  in-memory map keyed by CellKey.
//   - Configuration primitives:
//     – Option:        a function that mutates builderConfig before use.
//     – builderConfig: ID scheme, max dimension, default shape.
//   - Matrix-ID schemes (IDFn implementations):
//     – SymbolIDFn:        single letters ("A","B",…), the default.
//     – ExcelColumnIDFn:   Excel‐style columns ("A","Z","AA",…).
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolNumberIDFn:  prefix + decimal ("M0","M1",…).
//   - Shared constants:
//     – MinDim, MaxDim, MinMatrices, MaxMatrices, DefaultRows, DefaultCols.
//
// Guarantees:
//
//   - Unset cells hold 0; no validation beyond the shape bounds.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Structured runtime errors wrapping ErrBadShape, ErrBadCount,
//     ErrEmptyID and ErrDuplicateID for errors.Is.
//   - Fresh arrays on every call; a Set never hands out an alias of its storage.
package builder
