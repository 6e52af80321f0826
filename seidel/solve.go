// SPDX-License-Identifier: MIT

package seidel

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/seidel/linsys"
	"github.com/katalvlaran/seidel/matrix"
)

// Solve runs Gauss-Seidel sweeps on sys until every per-variable change is
// below epsilon or maxIterations sweeps have been made.
//
// sys is read, never written. The solver works on its own copy of the
// coefficients and constants and owns its working vector and error history.
//
// Errors (contract violations only):
//   - ErrNilSystem, ErrBadEpsilon, ErrBadMaxIterations.
func Solve(sys *linsys.System, epsilon float64, maxIterations int, opts ...Option) (Result, error) {
	if sys == nil {
		return Result{}, ErrNilSystem
	}
	if !(epsilon > 0) || math.IsInf(epsilon, 0) {
		return Result{}, fmt.Errorf("%w: got %g", ErrBadEpsilon, epsilon)
	}
	if maxIterations <= 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrBadMaxIterations, maxIterations)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	a, b := sys.CoefficientRows(), sys.Constants()
	n := len(b)
	x := make([]float64, n)
	prev := make([]float64, n)
	errs := make([]float64, n)

	var res Result
	if o.KeepHistory {
		res.History = make([][]float64, 0, min(maxIterations, 64))
	}
	for res.Iterations < maxIterations {
		copy(prev, x)
		sweep(a, b, x)
		res.Converged = changes(x, prev, errs, epsilon)
		res.Iterations++

		if o.KeepHistory {
			res.History = append(res.History, append([]float64(nil), errs...))
		}
		if o.Observer != nil {
			o.Observer(res.Iterations, append([]float64(nil), errs...))
		}
		o.Logger.WithFields(logrus.Fields{
			"iteration": res.Iterations,
			"maxError":  matrix.VecInfNorm(errs),
		}).Debug("sweep")

		if res.Converged {
			break
		}
	}

	order := sys.ColumnOrder()
	solution, err := order.Unpermute(x)
	if err != nil {
		// order is a valid permutation of length n by construction
		return Result{}, err
	}
	res.Solution = solution
	res.LastErrors = append([]float64(nil), errs...)

	o.Logger.WithFields(logrus.Fields{
		"iterations": res.Iterations,
		"converged":  res.Converged,
	}).Info("gauss-seidel finished")

	return res, nil
}

// sweep performs one in-place Gauss-Seidel pass over x. Entries j < i were
// already overwritten in this pass; entries j > i still hold the previous
// pass's values. There is no zero-pivot guard.
func sweep(a [][]float64, b, x []float64) {
	var sigma float64
	for i, row := range a {
		sigma = matrix.ZeroSum
		for j, aij := range row {
			if j != i {
				sigma += aij * x[j]
			}
		}
		x[i] = (b[i] - sigma) / row[i]
	}
}

// changes fills errs with |x_i − prev_i| and reports whether every entry is
// below epsilon. A NaN entry never passes the comparison, so a degenerate
// sweep can never be reported as converged.
func changes(x, prev, errs []float64, epsilon float64) bool {
	ok := true
	for i := range x {
		errs[i] = math.Abs(x[i] - prev[i])
		if !(errs[i] < epsilon) {
			ok = false
		}
	}

	return ok
}
