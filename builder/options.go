// SPDX-License-Identifier: MIT
// Package: matcalc/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Build and BuildSet themselves MUST NOT panic.
//   • No hidden globals; everything flows through builderConfig.
//
// AI-Hints:
//   • Use WithIDScheme to align matrix labels with an external form or file.
//   • WithMaxDim only lowers the bound; values above MaxDim panic.

package builder

import "fmt"

// Option customizes BuildSet by mutating a builderConfig instance before
// any matrix is built.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*builderConfig)

// WithIDScheme sets the deterministic matrix ID generator: idx -> string.
// Panics on nil to surface programmer error early.
// Complexity: O(1) time, O(1) space.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithSymbolIDs sets the ID scheme to SymbolIDFn ("A","B",...).
func WithSymbolIDs() Option {
	return WithIDScheme(SymbolIDFn)
}

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() Option {
	return WithIDScheme(ExcelColumnIDFn)
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix).
// Example: WithSymbNumb("M") → "M0","M1",...
// Panics on an empty prefix, which would collide with DefaultIDFn output.
func WithSymbNumb(prefix string) Option {
	if prefix == "" {
		panic("builder: WithSymbNumb(\"\")")
	}
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithMaxDim lowers the largest accepted row/column count to n.
// Panics if n is outside [MinDim, MaxDim].
// Complexity: O(1) time, O(1) space.
func WithMaxDim(n int) Option {
	if n < MinDim || n > MaxDim {
		panic(fmt.Sprintf("builder: WithMaxDim(%d) outside [%d,%d]", n, MinDim, MaxDim))
	}
	return func(c *builderConfig) {
		c.maxDim = n
	}
}

// WithDefaultShape sets the shape substituted for a zero-valued Shape.
// Panics if rows or cols is outside [MinDim, MaxDim].
func WithDefaultShape(rows, cols int) Option {
	if rows < MinDim || rows > MaxDim || cols < MinDim || cols > MaxDim {
		panic(fmt.Sprintf("builder: WithDefaultShape(%d,%d) outside [%d,%d]", rows, cols, MinDim, MaxDim))
	}
	return func(c *builderConfig) {
		c.defaultShape = Shape{Rows: rows, Cols: cols}
	}
}
