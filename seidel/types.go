// SPDX-License-Identifier: MIT

package seidel

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultMaxIterations is the sweep cap used by callers that do not choose one.
const DefaultMaxIterations = 1000

var (
	// ErrNilSystem is returned when Solve is given a nil *linsys.System.
	ErrNilSystem = errors.New("seidel: system is nil")

	// ErrBadEpsilon is returned for epsilon <= 0, NaN or Inf.
	ErrBadEpsilon = errors.New("seidel: epsilon must be finite and > 0")

	// ErrBadMaxIterations is returned for maxIterations <= 0.
	ErrBadMaxIterations = errors.New("seidel: maxIterations must be > 0")

	// ErrZeroPivot is reported by CheckPivots for a diagonal entry whose
	// magnitude is at or below the tolerance. Solve itself never returns it.
	ErrZeroPivot = errors.New("seidel: zero or near-zero pivot")
)

// Result is the outcome of Solve.
//
//   - Solution   : x in ORIGINAL variable order (column order undone).
//   - Iterations : number of sweeps performed, 1..maxIterations.
//   - LastErrors : |x_i − xPrev_i| from the final sweep, in working
//     (column) order, matching the variable positions that were iterated.
//   - Converged  : true when max(LastErrors) < epsilon held on the final
//     sweep. Iterations == maxIterations with Converged == false is the
//     non-convergence signal.
//   - History    : every sweep's error vector; nil unless KeepHistory.
type Result struct {
	Solution   []float64
	Iterations int
	LastErrors []float64
	Converged  bool
	History    [][]float64
}

// Option configures optional behavior of Solve.
type Option func(*Options)

// Options holds configurable parameters for Solve.
type Options struct {
	// KeepHistory stores the error vector of every sweep in Result.History.
	KeepHistory bool

	// Observer, if non-nil, is called after each sweep with the 1-based
	// sweep number and a copy of that sweep's error vector.
	Observer func(iteration int, errs []float64)

	// Logger receives a debug entry per sweep and an info entry at the end.
	// Defaults to a logger that discards everything.
	Logger logrus.FieldLogger
}

// DefaultOptions returns Options with no history, no observer and a
// discarding logger.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{Logger: l}
}

// WithHistory returns an Option that keeps every sweep's error vector.
func WithHistory() Option {
	return func(o *Options) { o.KeepHistory = true }
}

// WithObserver returns an Option that installs fn as a per-sweep hook.
func WithObserver(fn func(iteration int, errs []float64)) Option {
	return func(o *Options) { o.Observer = fn }
}

// WithLogger returns an Option that routes iteration tracing to l.
// Passing nil has no effect.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
