// SPDX-License-Identifier: MIT
// Package: matcalc/dispatch
//
// options.go — functional options for New.
//
// Contract:
//   • Option constructors panic on meaningless values.
//   • Defaults: silent logger, DefaultDisplayPlaces decimals in reports.

package dispatch

import (
	"fmt"
	"io"
	"log"
)

// DefaultDisplayPlaces is the number of decimals used by Result.Report.
const DefaultDisplayPlaces = 4

// MaxDisplayPlaces bounds WithDisplayPlaces; float64 carries ~15–17 digits.
const MaxDisplayPlaces = 15

// Option customizes a Dispatcher.
type Option func(*config)

type config struct {
	logger *log.Logger
	places int
}

// WithLogger routes failure logging to l. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("dispatch: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithDisplayPlaces sets the report rounding. Panics outside [0, MaxDisplayPlaces].
func WithDisplayPlaces(n int) Option {
	if n < 0 || n > MaxDisplayPlaces {
		panic(fmt.Sprintf("dispatch: WithDisplayPlaces(%d) outside [0,%d]", n, MaxDisplayPlaces))
	}
	return func(c *config) {
		c.places = n
	}
}

// gatherOptions applies opts over the defaults, last wins.
func gatherOptions(opts ...Option) config {
	cfg := config{
		logger: log.New(io.Discard, "", 0),
		places: DefaultDisplayPlaces,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
