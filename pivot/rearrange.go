// SPDX-License-Identifier: MIT

package pivot

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/seidel/linsys"
)

// Rearrange mutates sys in place with row and column swaps, trying to make
// it strictly diagonally dominant.
//
// For each diagonal position i = 0..n-1:
//  1. Row pivot: pick the first row j in [i,n) with the largest |a_ji| and
//     swap it into row i.
//  2. If row i is now dominant, move on.
//  3. Column pivot: pick the first column j in [i,n) with the largest |a_ij|
//     and swap it into column i (column order follows).
//  4. If row i is still not dominant, stop and report failure. The swaps
//     already made stay in place.
//
// When every row passes, Dominant is the result of a final
// sys.IsDiagonallyDominant() check. The per-row and final checks use the
// same strict test (linsys.System.RowDominant).
//
// This is a greedy heuristic: a false Dominant does not prove that no
// dominant arrangement exists. Callers proceed with the partially improved
// system either way.
//
// Errors:
//   - ErrNilSystem. Non-dominance is never an error.
//
// Complexity:
//   - Time O(n²) comparisons plus O(n) per swap; Space O(1) besides the report.
func Rearrange(sys *linsys.System, opts ...Option) (Report, error) {
	if sys == nil {
		return Report{FailedRow: -1}, ErrNilSystem
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := rearranger{sys: sys, log: o.Logger, rep: Report{FailedRow: -1}}
	n := sys.Size()
	for i := 0; i < n; i++ {
		if !r.step(i) {
			r.rep.FailedRow = i
			r.log.WithField("step", i).Debug("row not dominant after pivoting, giving up")
			return r.rep, nil
		}
	}
	r.rep.Dominant = sys.IsDiagonallyDominant()

	return r.rep, nil
}

type rearranger struct {
	sys *linsys.System
	log logrus.FieldLogger
	rep Report
}

// step processes diagonal position i and reports whether row i ends up
// dominant.
func (r *rearranger) step(i int) bool {
	best, err := r.sys.PivotRow(i)
	if err != nil {
		return false
	}
	if best != i {
		r.swap(RowSwap, i, best, i)
	}
	if r.sys.RowDominant(i) {
		return true
	}

	if best, err = r.sys.PivotColumn(i); err != nil {
		return false
	}
	if best != i {
		r.swap(ColumnSwap, i, best, i)
	}

	return r.sys.RowDominant(i)
}

func (r *rearranger) swap(kind SwapKind, a, b, step int) {
	// indices come from scans over [0,n); the swap cannot fail
	if kind == RowSwap {
		_ = r.sys.SwapRows(a, b)
	} else {
		_ = r.sys.SwapColumns(a, b)
	}
	r.rep.Swaps = append(r.rep.Swaps, Swap{Kind: kind, I: a, J: b, Step: step})
	r.log.WithFields(logrus.Fields{
		"kind": kind.String(),
		"i":    a,
		"j":    b,
		"step": step,
	}).Debug("swap")
}
