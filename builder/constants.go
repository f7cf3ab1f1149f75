// SPDX-License-Identifier: MIT
// Package builder defines shared constants used by the matrix builder, ensuring
// consistent defaults and validation across Build and BuildSet.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuild is the canonical name for the Build constructor.
	MethodBuild = "Build"
	// MethodBuildSet is the canonical name for the BuildSet constructor.
	MethodBuildSet = "BuildSet"
)

//-----------------------------------------------------------------------------
// Shape Bounds
//-----------------------------------------------------------------------------

// MinDim is the smallest allowed row or column count of a matrix.
const MinDim = 1

// MaxDim is the largest allowed row or column count of a matrix.
// WithMaxDim may lower it per builder, never raise it.
const MaxDim = 10

//-----------------------------------------------------------------------------
// Matrix Count Bounds
//-----------------------------------------------------------------------------

// MinMatrices is the smallest number of matrices a Set may hold.
const MinMatrices = 1

// MaxMatrices is the largest number of matrices a Set may hold.
const MaxMatrices = 5

//-----------------------------------------------------------------------------
// Defaults
//-----------------------------------------------------------------------------

// DefaultRows and DefaultCols form the shape used for a zero-valued Shape.
const (
	DefaultRows = 2
	DefaultCols = 2
)

// DefaultCellValue is stored in every cell the CellSource leaves unset.
const DefaultCellValue = 0.0
