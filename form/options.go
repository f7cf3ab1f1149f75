// SPDX-License-Identifier: MIT

package form

import (
	"fmt"
	"io"
	"log"

	"github.com/katalvlaran/matcalc/builder"
	"github.com/katalvlaran/matcalc/dispatch"
)

// Option customizes a Handler.
type Option func(*config)

type config struct {
	logger *log.Logger
	maxDim int
	places int
}

// WithLogger routes request and failure logging to l. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("form: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithMaxDim lowers the largest accepted row/column count.
// Panics outside [builder.MinDim, builder.MaxDim].
func WithMaxDim(n int) Option {
	if n < builder.MinDim || n > builder.MaxDim {
		panic(fmt.Sprintf("form: WithMaxDim(%d) outside [%d,%d]", n, builder.MinDim, builder.MaxDim))
	}
	return func(c *config) {
		c.maxDim = n
	}
}

// WithDisplayPlaces sets the decimals of the text report.
// Panics outside [0, dispatch.MaxDisplayPlaces].
func WithDisplayPlaces(n int) Option {
	if n < 0 || n > dispatch.MaxDisplayPlaces {
		panic(fmt.Sprintf("form: WithDisplayPlaces(%d) outside [0,%d]", n, dispatch.MaxDisplayPlaces))
	}
	return func(c *config) {
		c.places = n
	}
}

func gatherOptions(opts ...Option) config {
	cfg := config{
		logger: log.New(io.Discard, "", 0),
		maxDim: builder.MaxDim,
		places: dispatch.DefaultDisplayPlaces,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
