// SPDX-License-Identifier: MIT
// Package matrix provides the few kernels the solver reads on top of Dense:
// matrix-vector product, the matrix infinity norm and the vector infinity norm.
//
// Purpose:
//   - Declare operation tags and shared constants for determinism and error reporting.
//   - Keep *Dense fast paths next to a bounds-checked interface fallback.
//
// Notes:
//   - All kernels validate through validators.go and wrap via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for dot products and row sums.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMatVec  = "MatVec"
	opInfNorm = "InfNorm"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// InfNorm returns the matrix infinity norm: max over rows of Σ_j |a[i][j]|.
//
// Implementation:
//   - Stage 1: validate non-nil.
//   - Stage 2: fast path over the flat *Dense buffer, otherwise At-based scan.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func InfNorm(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return NormZero, matrixErrorf(opInfNorm, err)
	}

	best := NormZero
	if d, ok := m.(*Dense); ok {
		var s float64
		for i := 0; i < d.r; i++ {
			s, _ = d.RowAbsSum(i, -1) // i is in range by construction
			if s > best {
				best = s
			}
		}

		return best, nil
	}

	var i, j int
	var v, s float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		s = ZeroSum
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return NormZero, matrixErrorf(opInfNorm, err)
			}
			s += math.Abs(v)
		}
		if s > best {
			best = s
		}
	}

	return best, nil
}

// VecInfNorm returns max_i |x[i]|, or 0 for an empty vector.
// NaN entries propagate: the result is NaN if any entry is NaN.
func VecInfNorm(x []float64) float64 {
	best := NormZero
	for _, v := range x {
		best = math.Max(best, math.Abs(v))
	}

	return best
}
