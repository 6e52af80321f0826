// SPDX-License-Identifier: MIT

// Package matrix - in-place row/column exchanges and row magnitude sums.
//
// Purpose:
//   - Support partial pivoting without rebuilding the matrix: rows and
//     columns are exchanged inside the flat buffer.
//   - Provide the absolute row sums that the diagonal-dominance test reads.
//
// Determinism:
//   - Fixed j-ascending loops; a swap of an index with itself is a no-op.

package matrix

import "math"

const (
	ctxSwapRows = "SwapRows"
	ctxSwapCols = "SwapCols"
	ctxRowSum   = "RowAbsSum"
	ctxArgMaxC  = "ArgMaxAbsInCol"
	ctxArgMaxR  = "ArgMaxAbsInRow"
)

// SwapRows exchanges rows r1 and r2 in place.
//
// Implementation:
//   - Stage 1: bounds-check both indices (ErrOutOfRange).
//   - Stage 2: exchange the two row segments element by element.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) SwapRows(r1, r2 int) error {
	if r1 < 0 || r1 >= m.r || r2 < 0 || r2 >= m.r {
		return denseErrorf(ctxSwapRows, r1, r2, ErrOutOfRange)
	}
	if r1 == r2 {
		return nil
	}
	a, b := r1*m.c, r2*m.c
	for j := 0; j < m.c; j++ {
		m.data[a+j], m.data[b+j] = m.data[b+j], m.data[a+j]
	}

	return nil
}

// SwapCols exchanges columns c1 and c2 in every row, in place.
//
// Implementation:
//   - Stage 1: bounds-check both indices (ErrOutOfRange).
//   - Stage 2: for each row i, exchange data[i*c+c1] and data[i*c+c2].
//
// Complexity:
//   - Time O(r), Space O(1).
func (m *Dense) SwapCols(c1, c2 int) error {
	if c1 < 0 || c1 >= m.c || c2 < 0 || c2 >= m.c {
		return denseErrorf(ctxSwapCols, c1, c2, ErrOutOfRange)
	}
	if c1 == c2 {
		return nil
	}
	var base int
	for i := 0; i < m.r; i++ {
		base = i * m.c
		m.data[base+c1], m.data[base+c2] = m.data[base+c2], m.data[base+c1]
	}

	return nil
}

// RowAbsSum returns Σ_j |a[row][j]| over all j != skip.
// Pass skip < 0 (or >= Cols) to sum the whole row.
//
// Errors:
//   - ErrOutOfRange when row is invalid.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) RowAbsSum(row, skip int) (float64, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf(ctxRowSum, row, skip, ErrOutOfRange)
	}
	sum := ZeroSum
	base := row * m.c
	for j := 0; j < m.c; j++ {
		if j == skip {
			continue
		}
		sum += math.Abs(m.data[base+j])
	}

	return sum, nil
}

// ArgMaxAbsInCol returns the first row index in [from, Rows) holding the
// largest |a[i][col]|. The scan starts from row `from` and only a strictly
// larger magnitude replaces the current best, so ties keep the lower index.
//
// Errors:
//   - ErrOutOfRange when col or from is invalid.
//
// Complexity:
//   - Time O(r), Space O(1).
func (m *Dense) ArgMaxAbsInCol(col, from int) (int, error) {
	if col < 0 || col >= m.c || from < 0 || from >= m.r {
		return 0, denseErrorf(ctxArgMaxC, from, col, ErrOutOfRange)
	}
	best, bestVal := from, math.Abs(m.data[from*m.c+col])
	var v float64
	for i := from + 1; i < m.r; i++ {
		v = math.Abs(m.data[i*m.c+col])
		if v > bestVal {
			best, bestVal = i, v
		}
	}

	return best, nil
}

// ArgMaxAbsInRow returns the first column index in [from, Cols) holding the
// largest |a[row][j]|, with the same first-occurrence tie rule as
// ArgMaxAbsInCol.
//
// Errors:
//   - ErrOutOfRange when row or from is invalid.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) ArgMaxAbsInRow(row, from int) (int, error) {
	if row < 0 || row >= m.r || from < 0 || from >= m.c {
		return 0, denseErrorf(ctxArgMaxR, row, from, ErrOutOfRange)
	}
	base := row * m.c
	best, bestVal := from, math.Abs(m.data[base+from])
	var v float64
	for j := from + 1; j < m.c; j++ {
		v = math.Abs(m.data[base+j])
		if v > bestVal {
			best, bestVal = j, v
		}
	}

	return best, nil
}
