// SPDX-License-Identifier: MIT
// Package builder provides validation helpers to enforce
// parameter contracts in Build and BuildSet.
//
// Each function returns a wrapped sentinel via builderErrorf
// when its precondition is violated.
package builder

// validateShape ensures rows and cols are each in [MinDim, maxDim].
// Returns "<Method>: <id>: shape RxC outside [1,max]: builder: matrix: ..." otherwise.
//
// Complexity: O(1) time and space.
func validateShape(method, id string, rows, cols, maxDim int) error {
	if rows < MinDim || rows > maxDim || cols < MinDim || cols > maxDim {
		return builderErrorf(method, "%s: shape %dx%d outside [%d,%d]: %w", id, rows, cols, MinDim, maxDim, ErrBadShape)
	}

	return nil
}

// validateCount enforces n ∈ [MinMatrices, MaxMatrices].
func validateCount(method string, n int) error {
	if n < MinMatrices || n > MaxMatrices {
		return builderErrorf(method, "%d matrices outside [%d,%d]: %w", n, MinMatrices, MaxMatrices, ErrBadCount)
	}

	return nil
}

// validateID rejects empty identifiers.
func validateID(method, id string) error {
	if id == "" {
		return builderErrorf(method, "%w", ErrEmptyID)
	}

	return nil
}
