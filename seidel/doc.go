// SPDX-License-Identifier: MIT

// Package seidel solves a square linear system by Gauss-Seidel iteration.
//
// 🚀 What is Gauss-Seidel?
//
//	Each sweep updates x_0..x_{n-1} in order with
//	    x_i = (b_i − Σ_{j≠i} a_ij·x_j) / a_ii
//	reading the values already updated in the same sweep for j < i and the
//	previous sweep's values for j > i. (Jacobi would read only the previous
//	sweep.) Strict diagonal dominance guarantees convergence; see package
//	pivot for the rearrangement that tries to reach it.
//
// ✨ Contract:
//   - x starts at zero; iteration stops when every |x_i − xPrev_i| < epsilon
//     or after maxIterations sweeps, whichever comes first.
//   - The answer is returned in ORIGINAL variable order: the column order
//     recorded by pivoting is undone with linsys.Permutation.Unpermute.
//   - Data-driven failures are never errors. Non-convergence shows up as
//     Converged == false with Iterations == maxIterations. A zero pivot is
//     not guarded: the division yields ±Inf/NaN, the stopping test can no
//     longer pass, and the loop runs to the cap. Use CheckPivots to detect
//     that case up front.
//
// ⚙️ Usage:
//
//	rep, _ := pivot.Rearrange(sys)
//	if !rep.Dominant {
//	    // proceed anyway; convergence is not guaranteed
//	}
//	res, err := seidel.Solve(sys, 1e-6, seidel.DefaultMaxIterations)
//	if err != nil {
//	    // bad epsilon / maxIterations / nil system
//	}
//	if !res.Converged {
//	    // res.Iterations == maxIterations
//	}
//
// Performance:
//
//   - Time:   O(k·n²) for k sweeps
//   - Memory: O(n²) for a private copy of the coefficients, O(k·n) with history
package seidel
