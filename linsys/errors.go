// SPDX-License-Identifier: MIT

package linsys

import "errors"

var (
	// ErrShape is returned by the constructors when the input is not an n×n
	// matrix with n constants (or n rows of n+1 values in augmented form).
	ErrShape = errors.New("linsys: invalid system shape")

	// ErrPermutation indicates a vector/permutation length mismatch or a
	// column order that is not a permutation of 0..n-1.
	ErrPermutation = errors.New("linsys: invalid permutation")

	// ErrIndex is returned by SwapRows/SwapColumns for indices outside 0..n-1.
	ErrIndex = errors.New("linsys: index out of range")
)
