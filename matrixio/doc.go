// SPDX-License-Identifier: MIT

// Package matrixio reads linear systems from text and console input and
// prints systems and solver results.
//
// Text format (augmented):
//
//	n
//	a11 a12 ... a1n b1
//	...
//	an1 an2 ... ann bn
//
// Blank lines are ignored. Read failures are *FormatError values carrying a
// Reason, so callers can tell a missing file from a malformed one with
// ReasonOf or errors.As.
package matrixio
