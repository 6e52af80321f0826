// SPDX-License-Identifier: MIT
package matrixio_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seidel/linsys"
	"github.com/katalvlaran/seidel/matrixio"
	"github.com/katalvlaran/seidel/pivot"
	"github.com/katalvlaran/seidel/seidel"
)

func TestWriteSystem(t *testing.T) {
	sys, err := linsys.New([][]float64{{3, 5}, {2, 1}}, []float64{13, 4})
	require.NoError(t, err)
	_, err = pivot.Rearrange(sys)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, matrixio.WriteSystem(&buf, sys))
	s := buf.String()
	require.Contains(t, s, "A = ")
	require.Contains(t, s, "b = ")
	require.Contains(t, s, "13")
	require.Contains(t, s, "column order: [1 0]")
}

func TestWriteRearrangement(t *testing.T) {
	var buf bytes.Buffer
	rep := pivot.Report{Dominant: true, FailedRow: -1, Swaps: []pivot.Swap{{Kind: pivot.ColumnSwap, I: 0, J: 1}}}
	require.NoError(t, matrixio.WriteRearrangement(&buf, rep))
	require.Equal(t, "Successfully rearranged matrix to make it diagonally dominant.\nRow swaps: 0, column swaps: 1\n", buf.String())

	buf.Reset()
	require.NoError(t, matrixio.WriteRearrangement(&buf, pivot.Report{FailedRow: 0}))
	require.Contains(t, buf.String(), "Failed to rearrange matrix")
}

func TestWriteResult(t *testing.T) {
	var buf bytes.Buffer
	err := matrixio.WriteResult(&buf, matrixio.ResultView{
		InfNorm:       6,
		MaxIterations: 1000,
		Result: seidel.Result{
			Solution:   []float64{1, 2},
			Iterations: 10,
			LastErrors: []float64{3.3e-7, 1.6e-7},
			Converged:  true,
		},
	})
	require.NoError(t, err)
	want := "\nResults:\n" +
		"Matrix infinity norm: 6.0000\n" +
		"Iterations required: 10\n" +
		"\nSolution vector:\n" +
		"x1 = 1.000000\n" +
		"x2 = 2.000000\n" +
		"\nFinal iteration errors:\n" +
		"Δx1 = 0.000000\n" +
		"Δx2 = 0.000000\n"
	require.Equal(t, want, buf.String())
}

func TestWriteResult_NotConverged(t *testing.T) {
	var buf bytes.Buffer
	err := matrixio.WriteResult(&buf, matrixio.ResultView{
		MaxIterations: 500,
		Result:        seidel.Result{Solution: []float64{0.5}, Iterations: 500, LastErrors: []float64{0.25}},
	})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "Δx1 = 0.250000\n")
	require.Contains(t, buf.String(), "tolerance not reached within 500 iterations")
}

func TestWriteHistory(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, matrixio.WriteHistory(&buf, [][]float64{{1.25, 0.9375}, {0.01, -0.5}}))
	require.Equal(t, "\nConvergence history:\n"+
		"sweep 1: max Δx = 1.250000e+00\n"+
		"sweep 2: max Δx = 5.000000e-01\n", buf.String())
}
