// SPDX-License-Identifier: MIT

// Package linsys holds a square linear system A·x = b together with the
// column permutation produced by pivoting.
//
// 🚀 What is a System?
//
//	A System owns three things and nothing else:
//	  • the n×n coefficient matrix (row-major matrix.Dense),
//	  • the constants vector b, where b[i] belongs to row i,
//	  • the column order, a Permutation mapping matrix columns back to the
//	    original variables.
//
// ✨ Invariants kept by every mutator:
//   - the matrix is square and len(b) == n;
//   - SwapRows moves a row and its constant together, or neither;
//   - SwapColumns moves a column in every row and updates the column order
//     the same way, so ColumnOrder() is always a permutation of 0..n-1.
//
// ⚙️ Usage:
//
//	sys, err := linsys.New(
//	    [][]float64{{4, 1, 1}, {1, 5, 2}, {0, 1, 3}},
//	    []float64{6, 8, 4},
//	)
//	if err != nil {
//	    // ErrShape or matrix.ErrNaNInf: input was structurally invalid
//	}
//	fmt.Println(sys.IsDiagonallyDominant(), sys.InfinityNorm())
//
// Dominance convention: strict everywhere, |a_ii| > Σ_{j≠i} |a_ij|. A row
// whose diagonal exactly equals the off-diagonal sum is NOT dominant.
//
// Concurrency: a System has no internal locking. Mutate it from one
// goroutine at a time.
package linsys
