// SPDX-License-Identifier: MIT

// Package matrix provides the dense storage and small linear-algebra kernels
// behind the linear-system solver.
//
// What & Why:
//
//	Dense is a row-major float64 matrix stored in one flat slice. The solver
//	needs three things from it: safe element access, in-place row/column
//	exchanges for pivoting, and row sums of absolute values for the
//	diagonal-dominance test. Everything else here (MatVec, InfNorm) serves
//	residual checks and reporting.
//
// Safety:
//
//	Public indexers never panic on bad indices; they return ErrOutOfRange
//	wrapped with the method name and coordinates. Validators return plain
//	sentinels so callers can wrap them uniformly and match with errors.Is.
//
// Complexity:
//
//	At/Set/Swap bookkeeping is O(1); SwapRows is O(c); SwapCols is O(r);
//	RowAbsSum is O(c); MatVec and InfNorm are O(r*c).
package matrix
