// Package seidel is a small toolkit for solving square linear systems
// A·x = b by Gauss-Seidel iteration, with a pivoting pass that tries to
// make the system strictly diagonally dominant first.
//
// 🚀 What's inside?
//
//	A dependency-light numeric core plus a command-line front end:
//		• Dense float64 storage with row/column swaps and pivot scans
//		• A mutable linear system that tracks its column order
//		• Greedy row and column pivoting towards diagonal dominance
//		• The Gauss-Seidel solver with per-sweep error reporting
//		• Text and console input, plain-text reports, Prometheus textfile metrics
//
// ✨ Why this layout?
//
//   - Pure Go numeric core with no cgo
//   - Contract violations are errors; data problems (non-dominance,
//     non-convergence, zero pivots) are reported in result values
//   - Solutions always come back in the caller's variable order
//
// Subpackages:
//
//	matrix/  : Dense storage, swaps, norms, validators
//	linsys/  : System (A, b, column order) and Permutation
//	pivot/   : Rearrange: row/column pivoting towards dominance
//	seidel/  : Solve and CheckPivots
//	matrixio/: file parsing, console prompts, report printing
//	config/  : YAML settings
//	metrics/ : Prometheus metrics for one solve
//	cmd/seidel: the seidel CLI (solve, check, config)
//
// Quick example:
//
//	sys, _ := linsys.New([][]float64{{3, 5}, {2, 1}}, []float64{13, 4})
//	rep, _ := pivot.Rearrange(sys)       // column swap, rep.Dominant == true
//	res, _ := seidel.Solve(sys, 1e-6, seidel.DefaultMaxIterations)
//	fmt.Println(res.Solution)           // ≈ [1 2]
//
//	go install github.com/katalvlaran/seidel/cmd/seidel@latest
package seidel
