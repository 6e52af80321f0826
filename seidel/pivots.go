// SPDX-License-Identifier: MIT

package seidel

import (
	"fmt"
	"math"

	"github.com/katalvlaran/seidel/linsys"
)

// CheckPivots reports the first diagonal entry with |a_ii| <= tol as an
// error wrapping ErrZeroPivot. It is advisory: Solve does not call it and
// still runs on such a system (producing Inf/NaN and hitting its cap).
// A negative tol is treated as zero.
func CheckPivots(sys *linsys.System, tol float64) error {
	if sys == nil {
		return ErrNilSystem
	}
	tol = math.Max(tol, 0)
	for i := 0; i < sys.Size(); i++ {
		v, err := sys.At(i, i)
		if err != nil {
			return err
		}
		if math.Abs(v) <= tol {
			return fmt.Errorf("%w: row %d has |a_ii| = %g <= %g", ErrZeroPivot, i, math.Abs(v), tol)
		}
	}

	return nil
}
