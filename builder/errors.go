// SPDX-License-Identifier: MIT
// Package: matcalc/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w` through builderErrorf.
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).
//
// AI-Hints:
//   • ErrBadShape also matches matrix.ErrBadShape, so callers that only know
//     the matrix package can still branch on it.
//   • Check with errors.Is in tests and production code; avoid string comparisons.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matcalc/matrix"
)

// ErrBadShape indicates a row or column count outside [MinDim, MaxDim]
// (or outside the lowered bound set by WithMaxDim).
// Usage: if errors.Is(err, ErrBadShape) { /* ask for a smaller matrix */ }.
var ErrBadShape = fmt.Errorf("builder: %w", matrix.ErrBadShape)

// ErrBadCount indicates a number of matrices outside [MinMatrices, MaxMatrices].
var ErrBadCount = errors.New("builder: matrix count out of range")

// ErrEmptyID indicates that a matrix identifier is the empty string.
var ErrEmptyID = errors.New("builder: empty matrix id")

// ErrDuplicateID indicates that the configured ID scheme produced the same
// identifier twice within one Set.
var ErrDuplicateID = errors.New("builder: duplicate matrix id")

// builderErrorf prefixes a formatted message with the given method context.
// The format may carry %w verbs; wrapped sentinels stay visible to errors.Is.
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
