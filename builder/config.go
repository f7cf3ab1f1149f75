// SPDX-License-Identifier: MIT
// Package: matcalc/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • idFn         = SymbolIDFn ("A","B","C",...)
//   • maxDim       = MaxDim     (10)
//   • defaultShape = DefaultRows × DefaultCols (2×2)

package builder

// builderConfig aggregates all knobs used by BuildSet.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	// Matrix ID strategy: position -> ID (deterministic).
	idFn IDFn
	// Upper bound for rows and cols, within [MinDim, MaxDim].
	maxDim int
	// Shape used for zero-valued Shape entries.
	defaultShape Shape
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order. A default shape larger than a lowered maxDim is
// clamped so that zero-valued specs always build.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		idFn:         SymbolIDFn,
		maxDim:       MaxDim,
		defaultShape: Shape{Rows: DefaultRows, Cols: DefaultCols},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.defaultShape.Rows = min(cfg.defaultShape.Rows, cfg.maxDim)
	cfg.defaultShape.Cols = min(cfg.defaultShape.Cols, cfg.maxDim)

	return cfg
}

// resolve substitutes the default shape for a zero-valued Shape.
func (c builderConfig) resolve(s Shape) Shape {
	if s == (Shape{}) {
		return c.defaultShape
	}

	return s
}
