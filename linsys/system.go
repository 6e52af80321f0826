// SPDX-License-Identifier: MIT

package linsys

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/seidel/matrix"
)

// System is a square linear system A·x = b plus its column order.
// The zero value is not usable; build one with New or NewAugmented.
type System struct {
	a     *matrix.Dense // n×n coefficients, row-major
	b     []float64     // constants, b[i] pairs with row i
	order Permutation   // order[k] = original variable at column k
}

// New builds a System from a square matrix and a constants vector.
// Both inputs are copied.
//
// Errors:
//   - ErrShape for empty, ragged or non-square a, or len(b) != len(a);
//     the matrix sentinel (ErrDimensionMismatch, ErrNonSquare, ...) is
//     wrapped alongside.
//   - matrix.ErrNaNInf when any coefficient or constant is not finite.
func New(a [][]float64, b []float64) (*System, error) {
	dense, err := matrix.NewDenseFromRows(a)
	if err != nil {
		if errors.Is(err, matrix.ErrNaNInf) {
			return nil, fmt.Errorf("linsys.New: %w", err)
		}
		return nil, fmt.Errorf("linsys.New: %w: %w", ErrShape, err)
	}
	if err = matrix.ValidateSquare(dense); err != nil {
		return nil, fmt.Errorf("linsys.New: %w: %w", ErrShape, err)
	}
	n := dense.Rows()
	if len(b) != n {
		return nil, fmt.Errorf("linsys.New: %w: %d constants for %d equations", ErrShape, len(b), n)
	}
	if err = matrix.ValidateFiniteVec(b); err != nil {
		return nil, fmt.Errorf("linsys.New: %w", err)
	}

	constants := make([]float64, n)
	copy(constants, b)

	return &System{a: dense, b: constants, order: Identity(n)}, nil
}

// NewAugmented builds a System from n rows of n+1 values, the last column
// of each row being that equation's constant.
//
// Errors: same as New; a row whose length is not n+1 yields ErrShape.
func NewAugmented(rows [][]float64) (*System, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("linsys.NewAugmented: %w: no rows", ErrShape)
	}
	a := make([][]float64, n)
	b := make([]float64, n)
	for i, row := range rows {
		if len(row) != n+1 {
			return nil, fmt.Errorf("linsys.NewAugmented: %w: row %d has %d values, want %d", ErrShape, i, len(row), n+1)
		}
		a[i] = row[:n]
		b[i] = row[n]
	}

	return New(a, b)
}

// Size returns n, the number of equations and unknowns.
func (s *System) Size() int { return s.a.Rows() }

// At returns the coefficient currently stored at (i, j).
func (s *System) At(i, j int) (float64, error) { return s.a.At(i, j) }

// CoefficientRows returns a copy of the current (possibly permuted)
// coefficient matrix.
func (s *System) CoefficientRows() [][]float64 { return s.a.ToRows() }

// Constants returns a copy of the current (possibly row-swapped) constants.
func (s *System) Constants() []float64 {
	out := make([]float64, len(s.b))
	copy(out, s.b)

	return out
}

// ColumnOrder returns a copy of the column permutation.
func (s *System) ColumnOrder() Permutation { return s.order.Clone() }

// Clone returns an independent deep copy of the system.
func (s *System) Clone() *System {
	return &System{
		a:     s.a.Clone().(*matrix.Dense),
		b:     s.Constants(),
		order: s.order.Clone(),
	}
}

// InfinityNorm returns the maximum over rows of Σ_j |a_ij|.
func (s *System) InfinityNorm() float64 {
	n, _ := matrix.InfNorm(s.a) // s.a is never nil after construction

	return n
}

// RowDominant reports whether row i satisfies |a_ii| > Σ_{j≠i} |a_ij|.
// Out-of-range rows are reported as not dominant.
func (s *System) RowDominant(i int) bool {
	diag, err := s.a.At(i, i)
	if err != nil {
		return false
	}
	off, err := s.a.RowAbsSum(i, i)
	if err != nil {
		return false
	}

	return math.Abs(diag) > off
}

// IsDiagonallyDominant reports whether every row is strictly dominant.
// It stops at the first violating row.
func (s *System) IsDiagonallyDominant() bool {
	for i := 0; i < s.Size(); i++ {
		if !s.RowDominant(i) {
			return false
		}
	}

	return true
}

// PivotRow returns the first row j in [i,n) holding the largest |a_ji|.
// Ties keep the lower row index.
func (s *System) PivotRow(i int) (int, error) { return s.a.ArgMaxAbsInCol(i, i) }

// PivotColumn returns the first column j in [i,n) holding the largest
// |a_ij|. Ties keep the lower column index.
func (s *System) PivotColumn(i int) (int, error) { return s.a.ArgMaxAbsInRow(i, i) }

// SwapRows exchanges equations r1 and r2: matrix rows and constants move
// together. Indices are checked before anything is mutated.
func (s *System) SwapRows(r1, r2 int) error {
	if !s.inRange(r1) || !s.inRange(r2) {
		return fmt.Errorf("SwapRows(%d,%d): %w", r1, r2, ErrIndex)
	}
	if err := s.a.SwapRows(r1, r2); err != nil {
		return err
	}
	s.b[r1], s.b[r2] = s.b[r2], s.b[r1]

	return nil
}

// SwapColumns exchanges columns c1 and c2 in every row and mirrors the
// exchange in the column order. Indices are checked before anything is
// mutated.
func (s *System) SwapColumns(c1, c2 int) error {
	if !s.inRange(c1) || !s.inRange(c2) {
		return fmt.Errorf("SwapColumns(%d,%d): %w", c1, c2, ErrIndex)
	}
	if err := s.a.SwapCols(c1, c2); err != nil {
		return err
	}
	s.order.Swap(c1, c2)

	return nil
}

// Residual returns A·x − b for a candidate x given in ORIGINAL variable
// order. The current column order is applied internally, so the result
// does not depend on how the system was pivoted. Residual entries follow
// the current row order.
func (s *System) Residual(x []float64) ([]float64, error) {
	xw, err := s.order.Permute(x)
	if err != nil {
		return nil, fmt.Errorf("Residual: %w", err)
	}
	r, err := matrix.MatVec(s.a, xw)
	if err != nil {
		return nil, fmt.Errorf("Residual: %w", err)
	}
	for i := range r {
		r[i] -= s.b[i]
	}

	return r, nil
}

// ConvergenceNorm returns max_i Σ_{j≠i} |a_ji| / |a_ii| on the current
// arrangement: the column-ratio coefficient whose value below 1 is a
// sufficient condition for convergence. It does not rearrange the system.
// A zero diagonal yields +Inf.
func (s *System) ConvergenceNorm() float64 {
	n := s.Size()
	best := matrix.NormZero
	var i, j int
	var diag, sum, v float64
	for i = 0; i < n; i++ {
		diag, _ = s.a.At(i, i)
		diag = math.Abs(diag)
		sum = matrix.ZeroSum
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			v, _ = s.a.At(j, i)
			sum += math.Abs(v)
		}
		if diag == 0 {
			return math.Inf(1)
		}
		best = math.Max(best, sum/diag)
	}

	return best
}

// String renders each row with fixed-width "%8.2f" cells followed by the
// constants vector.
func (s *System) String() string {
	var sb strings.Builder
	rows := s.a.ToRows()
	for _, row := range rows {
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%8.2f", v)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "%v", s.b)

	return sb.String()
}

func (s *System) inRange(i int) bool { return i >= 0 && i < s.Size() }
