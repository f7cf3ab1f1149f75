// SPDX-License-Identifier: MIT
// Package: matcalc/render
//
// options.go — functional options for the gonum/plot renderers.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Renderers themselves never panic on user data.

package render

import (
	"fmt"

	"gonum.org/v1/plot/vg"
	_ "gonum.org/v1/plot/vg/vgimg" // registers png
	_ "gonum.org/v1/plot/vg/vgsvg" // registers svg
)

// Default canvas size and encoding.
const (
	DefaultWidth  = 4 * vg.Inch
	DefaultHeight = 4 * vg.Inch
	DefaultFormat = FormatPNG
)

// Supported output encodings.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// Option customizes a renderer call.
type Option func(*config)

type config struct {
	width, height vg.Length
	format        string
}

// WithSize sets the canvas size. Panics unless both sides are positive.
func WithSize(w, h vg.Length) Option {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("render: WithSize(%v, %v) requires positive lengths", w, h))
	}
	return func(c *config) {
		c.width, c.height = w, h
	}
}

// WithFormat selects the encoding: FormatPNG or FormatSVG.
// Panics on anything else.
func WithFormat(format string) Option {
	if format != FormatPNG && format != FormatSVG {
		panic(fmt.Sprintf("render: WithFormat(%q) unsupported", format))
	}
	return func(c *config) {
		c.format = format
	}
}

// gatherOptions applies opts over the defaults, last wins.
func gatherOptions(opts ...Option) config {
	cfg := config{width: DefaultWidth, height: DefaultHeight, format: DefaultFormat}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
