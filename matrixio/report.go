// SPDX-License-Identifier: MIT

package matrixio

import (
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/seidel/linsys"
	"github.com/katalvlaran/seidel/matrix"
	"github.com/katalvlaran/seidel/pivot"
	"github.com/katalvlaran/seidel/seidel"
)

// WriteSystem prints the coefficients, constants and current column order
// of sys. Matrices are laid out by gonum's mat.Formatted.
func WriteSystem(w io.Writer, sys *linsys.System) error {
	n := sys.Size()
	flat := make([]float64, 0, n*n)
	for _, row := range sys.CoefficientRows() {
		flat = append(flat, row...)
	}
	a := mat.NewDense(n, n, flat)
	b := mat.NewVecDense(n, sys.Constants())

	var sb strings.Builder
	fmt.Fprintf(&sb, "A = %v\n", mat.Formatted(a, mat.Prefix("    "), mat.Squeeze()))
	fmt.Fprintf(&sb, "b = %v\n", mat.Formatted(b, mat.Prefix("    "), mat.Squeeze()))
	fmt.Fprintf(&sb, "column order: %v\n", sys.ColumnOrder())

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteRearrangement prints the outcome of pivot.Rearrange.
func WriteRearrangement(w io.Writer, rep pivot.Report) error {
	var sb strings.Builder
	if rep.Dominant {
		sb.WriteString("Successfully rearranged matrix to make it diagonally dominant.\n")
	} else {
		sb.WriteString("Failed to rearrange matrix to make it diagonally dominant.\n")
	}
	fmt.Fprintf(&sb, "Row swaps: %d, column swaps: %d\n", rep.Count(pivot.RowSwap), rep.Count(pivot.ColumnSwap))

	_, err := io.WriteString(w, sb.String())
	return err
}

// ResultView is everything WriteResult prints.
type ResultView struct {
	InfNorm       float64
	MaxIterations int
	Result        seidel.Result
}

// WriteResult prints the results block: matrix infinity norm, iteration
// count, the solution in original variable order and the last sweep's
// per-variable changes. A warning line follows when the cap was reached
// without meeting the tolerance.
func WriteResult(w io.Writer, v ResultView) error {
	var sb strings.Builder
	sb.WriteString("\nResults:\n")
	fmt.Fprintf(&sb, "Matrix infinity norm: %.4f\n", v.InfNorm)
	fmt.Fprintf(&sb, "Iterations required: %d\n", v.Result.Iterations)

	sb.WriteString("\nSolution vector:\n")
	for i, x := range v.Result.Solution {
		fmt.Fprintf(&sb, "x%d = %.6f\n", i+1, x)
	}
	sb.WriteString("\nFinal iteration errors:\n")
	for i, e := range v.Result.LastErrors {
		fmt.Fprintf(&sb, "Δx%d = %.6f\n", i+1, e)
	}
	if !v.Result.Converged {
		fmt.Fprintf(&sb, "\nWarning: tolerance not reached within %d iterations; the solution may be inaccurate.\n", v.MaxIterations)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteHistory prints the largest per-variable change of every sweep.
func WriteHistory(w io.Writer, history [][]float64) error {
	var sb strings.Builder
	sb.WriteString("\nConvergence history:\n")
	for k, errs := range history {
		fmt.Fprintf(&sb, "sweep %d: max Δx = %.6e\n", k+1, matrix.VecInfNorm(errs))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
