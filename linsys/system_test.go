// SPDX-License-Identifier: MIT
package linsys_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/seidel/linsys"
	"github.com/katalvlaran/seidel/matrix"
)

// SystemSuite exercises construction, structural queries and swaps.
type SystemSuite struct {
	suite.Suite
}

func TestSystemSuite(t *testing.T) {
	suite.Run(t, new(SystemSuite))
}

func (s *SystemSuite) mustNew(a [][]float64, b []float64) *linsys.System {
	sys, err := linsys.New(a, b)
	require.NoError(s.T(), err)

	return sys
}

// TestNewCopiesInput verifies the system does not alias caller slices.
func (s *SystemSuite) TestNewCopiesInput() {
	a := [][]float64{{4, 1}, {1, 3}}
	b := []float64{5, 4}
	sys := s.mustNew(a, b)
	a[0][0], b[0] = 100, 100

	v, err := sys.At(0, 0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4.0, v)
	require.Equal(s.T(), []float64{5, 4}, sys.Constants())
	require.Equal(s.T(), linsys.Permutation{0, 1}, sys.ColumnOrder())
	require.Equal(s.T(), 2, sys.Size())
}

// TestNewShapeErrors checks every structural rejection path.
func (s *SystemSuite) TestNewShapeErrors() {
	cases := []struct {
		name string
		a    [][]float64
		b    []float64
		want error
	}{
		{"empty", nil, nil, linsys.ErrShape},
		{"ragged", [][]float64{{1, 2}, {3}}, []float64{1, 2}, linsys.ErrShape},
		{"non-square", [][]float64{{1, 2, 3}, {4, 5, 6}}, []float64{1, 2}, matrix.ErrNonSquare},
		{"short constants", [][]float64{{1, 2}, {3, 4}}, []float64{1}, linsys.ErrShape},
		{"nan coefficient", [][]float64{{math.NaN(), 2}, {3, 4}}, []float64{1, 2}, matrix.ErrNaNInf},
		{"inf constant", [][]float64{{1, 2}, {3, 4}}, []float64{1, math.Inf(1)}, matrix.ErrNaNInf},
	}
	for _, tc := range cases {
		_, err := linsys.New(tc.a, tc.b)
		require.ErrorIsf(s.T(), err, tc.want, "case %s", tc.name)
	}
}

// TestNewAugmentedSplitsLastColumn verifies the augmented constructor.
func (s *SystemSuite) TestNewAugmentedSplitsLastColumn() {
	sys, err := linsys.NewAugmented([][]float64{
		{4, 1, 1, 6},
		{1, 5, 2, 8},
		{0, 1, 3, 4},
	})
	require.NoError(s.T(), err)
	require.Equal(s.T(), [][]float64{{4, 1, 1}, {1, 5, 2}, {0, 1, 3}}, sys.CoefficientRows())
	require.Equal(s.T(), []float64{6, 8, 4}, sys.Constants())

	_, err = linsys.NewAugmented([][]float64{{1, 2, 3}, {1, 2}})
	require.ErrorIs(s.T(), err, linsys.ErrShape)
	_, err = linsys.NewAugmented(nil)
	require.ErrorIs(s.T(), err, linsys.ErrShape)
}

// TestInfinityNorm checks the max absolute row sum.
func (s *SystemSuite) TestInfinityNorm() {
	sys := s.mustNew([][]float64{{1, -2, 3}, {-4, 5, -6}, {7, 8, 9}}, []float64{0, 0, 0})
	require.Equal(s.T(), 24.0, sys.InfinityNorm())
}

// TestDominanceIsStrict pins the boundary: equality is not dominance.
func (s *SystemSuite) TestDominanceIsStrict() {
	strict := s.mustNew([][]float64{{4, 1, 1}, {1, 5, 2}, {0, 1, 3}}, []float64{6, 8, 4})
	require.True(s.T(), strict.IsDiagonallyDominant())

	boundary := s.mustNew([][]float64{{2, 1, 1}, {1, 5, 2}, {0, 1, 3}}, []float64{0, 0, 0})
	require.False(s.T(), boundary.RowDominant(0))
	require.True(s.T(), boundary.RowDominant(1))
	require.False(s.T(), boundary.IsDiagonallyDominant())

	require.False(s.T(), boundary.RowDominant(3))
}

// TestSwapRowsMovesConstants verifies rows and constants travel together.
func (s *SystemSuite) TestSwapRowsMovesConstants() {
	sys := s.mustNew([][]float64{{1, 2}, {3, 4}}, []float64{10, 20})
	require.NoError(s.T(), sys.SwapRows(0, 1))
	require.Equal(s.T(), [][]float64{{3, 4}, {1, 2}}, sys.CoefficientRows())
	require.Equal(s.T(), []float64{20, 10}, sys.Constants())
	require.Equal(s.T(), linsys.Permutation{0, 1}, sys.ColumnOrder())

	// bad index: nothing moves
	require.ErrorIs(s.T(), sys.SwapRows(0, 2), linsys.ErrIndex)
	require.Equal(s.T(), []float64{20, 10}, sys.Constants())
}

// TestSwapColumnsTracksOrder verifies column swaps update the permutation.
func (s *SystemSuite) TestSwapColumnsTracksOrder() {
	sys := s.mustNew([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, []float64{1, 2, 3})
	require.NoError(s.T(), sys.SwapColumns(0, 2))
	require.NoError(s.T(), sys.SwapColumns(1, 2))
	require.Equal(s.T(), [][]float64{{3, 1, 2}, {6, 4, 5}, {9, 7, 8}}, sys.CoefficientRows())
	require.Equal(s.T(), linsys.Permutation{2, 0, 1}, sys.ColumnOrder())
	require.True(s.T(), sys.ColumnOrder().Valid())
	require.Equal(s.T(), []float64{1, 2, 3}, sys.Constants())

	require.ErrorIs(s.T(), sys.SwapColumns(-1, 0), linsys.ErrIndex)
	require.Equal(s.T(), linsys.Permutation{2, 0, 1}, sys.ColumnOrder())
}

// TestResidualIgnoresPivoting checks that the residual is computed in
// original variable order whatever swaps were applied.
func (s *SystemSuite) TestResidualIgnoresPivoting() {
	sys := s.mustNew([][]float64{{3, 5}, {2, 1}}, []float64{13, 4})
	x := []float64{1, 2}

	r, err := sys.Residual(x)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{0, 0}, r)

	require.NoError(s.T(), sys.SwapColumns(0, 1))
	require.NoError(s.T(), sys.SwapRows(0, 1))
	r, err = sys.Residual(x)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{0, 0}, r)

	_, err = sys.Residual([]float64{1})
	require.ErrorIs(s.T(), err, linsys.ErrPermutation)
}

// TestConvergenceNorm checks the column-ratio coefficient.
func (s *SystemSuite) TestConvergenceNorm() {
	sys := s.mustNew([][]float64{{4, 1, 1}, {1, 5, 2}, {0, 1, 3}}, []float64{6, 8, 4})
	// columns: (1+0)/4, (1+1)/5, (1+2)/3
	require.InDelta(s.T(), 1.0, sys.ConvergenceNorm(), 1e-15)

	zero := s.mustNew([][]float64{{0, 1}, {1, 0}}, []float64{1, 1})
	require.True(s.T(), math.IsInf(zero.ConvergenceNorm(), 1))
}

// TestCloneIsIndependent verifies Clone deep-copies all three parts.
func (s *SystemSuite) TestCloneIsIndependent() {
	sys := s.mustNew([][]float64{{1, 2}, {3, 4}}, []float64{10, 20})
	cl := sys.Clone()
	require.NoError(s.T(), cl.SwapRows(0, 1))
	require.NoError(s.T(), cl.SwapColumns(0, 1))

	require.Equal(s.T(), [][]float64{{1, 2}, {3, 4}}, sys.CoefficientRows())
	require.Equal(s.T(), []float64{10, 20}, sys.Constants())
	require.Equal(s.T(), linsys.Permutation{0, 1}, sys.ColumnOrder())
}

// TestString checks the fixed-width rendering.
func (s *SystemSuite) TestString() {
	sys := s.mustNew([][]float64{{1, 2.5}, {-3, 4}}, []float64{1, 2})
	require.Equal(s.T(), "    1.00     2.50\n   -3.00     4.00\n[1 2]", sys.String())
}
