// SPDX-License-Identifier: MIT

// Package pivot defines types and options for the row/column rearrangement
// that tries to make a linear system strictly diagonally dominant.
package pivot

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

// SwapKind tells whether a recorded swap exchanged rows or columns.
type SwapKind int

const (
	RowSwap    SwapKind = iota // RowSwap: two equations (rows and constants) exchanged.
	ColumnSwap                 // ColumnSwap: two unknowns (columns and column order) exchanged.
)

// String returns "row" or "column".
func (k SwapKind) String() string {
	if k == ColumnSwap {
		return "column"
	}

	return "row"
}

var (
	// ErrNilSystem is returned when Rearrange is given a nil *linsys.System.
	ErrNilSystem = errors.New("pivot: system is nil")
)

// Swap is one exchange applied during rearrangement, in application order.
// Step is the diagonal position i being processed when the swap happened.
type Swap struct {
	Kind SwapKind
	I, J int
	Step int
}

// Report describes the outcome of Rearrange.
//
//   - Dominant : true when every row passed and the final whole-matrix
//     check confirmed strict dominance.
//   - Swaps    : every row/column exchange, in order. Empty when the input
//     was already dominant.
//   - FailedRow: the diagonal position where the procedure gave up, or -1.
type Report struct {
	Dominant  bool
	Swaps     []Swap
	FailedRow int
}

// Count returns the number of recorded swaps of the given kind.
func (r Report) Count(kind SwapKind) int {
	n := 0
	for _, s := range r.Swaps {
		if s.Kind == kind {
			n++
		}
	}

	return n
}

// Option configures optional behavior of Rearrange.
// Use with Rearrange(sys, opts...).
type Option func(*Options)

// Options holds configurable parameters for Rearrange.
type Options struct {
	// Logger receives one debug entry per swap and one per failed row.
	// Defaults to a logger that discards everything.
	Logger logrus.FieldLogger
}

// DefaultOptions returns Options with a discarding logger.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{Logger: l}
}

// WithLogger returns an Option that routes swap tracing to l.
// Passing nil has no effect.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
