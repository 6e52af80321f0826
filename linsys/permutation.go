// SPDX-License-Identifier: MIT

package linsys

import "fmt"

// Permutation records which original variable occupies each matrix column:
// p[k] is the original index of the variable stored at column k.
//
// A fresh system starts from Identity(n); every column swap applied to the
// matrix is mirrored by Swap on the permutation, so p is always a
// permutation of 0..n-1.
type Permutation []int

// Identity returns the identity permutation of length n.
func Identity(n int) Permutation {
	p := make(Permutation, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// Swap exchanges positions i and j. Bounds are the caller's responsibility.
func (p Permutation) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

// Clone returns an independent copy.
func (p Permutation) Clone() Permutation {
	out := make(Permutation, len(p))
	copy(out, p)

	return out
}

// Valid reports whether p holds every index 0..len(p)-1 exactly once.
func (p Permutation) Valid() bool {
	seen := make([]bool, len(p))
	for _, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}

// Unpermute maps a vector from working (column) order back to original
// variable order: out[p[k]] = x[k]. It is the exact inverse of the column
// swaps that produced p. x is not modified.
//
// Errors:
//   - ErrPermutation when len(x) != len(p) or p is not a valid permutation.
func (p Permutation) Unpermute(x []float64) ([]float64, error) {
	if err := p.check(len(x)); err != nil {
		return nil, err
	}
	out := make([]float64, len(x))
	for k, orig := range p {
		out[orig] = x[k]
	}

	return out, nil
}

// Permute maps a vector from original variable order into working order:
// out[k] = x[p[k]]. Permute and Unpermute are inverses of each other.
func (p Permutation) Permute(x []float64) ([]float64, error) {
	if err := p.check(len(x)); err != nil {
		return nil, err
	}
	out := make([]float64, len(x))
	for k, orig := range p {
		out[k] = x[orig]
	}

	return out, nil
}

func (p Permutation) check(n int) error {
	if n != len(p) {
		return fmt.Errorf("%w: vector length %d, permutation length %d", ErrPermutation, n, len(p))
	}
	if !p.Valid() {
		return fmt.Errorf("%w: %v", ErrPermutation, []int(p))
	}

	return nil
}
