// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seidel/linsys"
	"github.com/katalvlaran/seidel/matrixio"
	"github.com/katalvlaran/seidel/pivot"
	"github.com/katalvlaran/seidel/seidel"
)

func newCheckCmd(a *app) *cobra.Command {
	o := inputOptions{}

	cmd := &cobra.Command{
		Use:   "check file",
		Short: "Report dominance and norms before and after rearrangement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := a.readSystem(args[0], o)
			if err != nil {
				return err
			}
			return a.check(sys)
		},
	}
	bindInputFlags(cmd.Flags(), &o)

	return cmd
}

func (a *app) check(sys *linsys.System) error {
	if err := writeDiagnostics(a.out, "Input", sys, a.cfg.PivotTolerance); err != nil {
		return err
	}
	rep, err := pivot.Rearrange(sys, pivot.WithLogger(a.log))
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out)
	if err = matrixio.WriteRearrangement(a.out, rep); err != nil {
		return err
	}
	if !rep.Dominant {
		fmt.Fprintf(a.out, "Stopped at row %d\n", rep.FailedRow+1)
	}
	for _, s := range rep.Swaps {
		fmt.Fprintf(a.out, "  step %d: %s swap %d <-> %d\n", s.Step+1, s.Kind, s.I+1, s.J+1)
	}
	fmt.Fprintln(a.out)

	return writeDiagnostics(a.out, "Rearranged", sys, a.cfg.PivotTolerance)
}

// writeDiagnostics prints sys with its dominance, norms and pivot check.
func writeDiagnostics(w io.Writer, title string, sys *linsys.System, pivotTol float64) error {
	fmt.Fprintf(w, "%s system:\n", title)
	if err := matrixio.WriteSystem(w, sys); err != nil {
		return err
	}
	fmt.Fprintf(w, "Diagonally dominant: %t\n", sys.IsDiagonallyDominant())
	fmt.Fprintf(w, "Matrix infinity norm: %.4f\n", sys.InfinityNorm())
	fmt.Fprintf(w, "Convergence norm: %.4f\n", sys.ConvergenceNorm())
	if err := seidel.CheckPivots(sys, pivotTol); err != nil {
		fmt.Fprintf(w, "Pivot check: %v\n", err)
	} else {
		fmt.Fprintln(w, "Pivot check: ok")
	}

	return nil
}
