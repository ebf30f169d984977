// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the element-wise comparison micro-kernels (ew*) behind the value
//     semantics of matrices and vectors: Equal, EqualApprox, AllClose and their
//     vector counterparts.
//
// Design:
//   - ew* kernels are unexported; public API wraps them thinly.
//   - Shape (or dimension) is compared first; values only when shapes agree.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j), early exit on the first violation.
//   - No allocations.
//
// AI-Hints:
//   - EqualApprox(a, b, δ) is AllClose(a, b, 0, δ) without the error channel.
//   - Equal is exact IEEE comparison: NaN never equals NaN, −0 equals +0.

package matrix

import (
	"math"
)

// normalizeTolerances rejects non-finite tolerances and takes absolute values.
func normalizeTolerances(rtol, atol float64) (float64, float64, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return 0, 0, ErrNaNInf
	}

	return math.Abs(rtol), math.Abs(atol), nil
}

// withinTolerance reports |a-b| ≤ atol + rtol*|b|. Identical values (±Inf included) always pass.
func withinTolerance(a, b, rtol, atol float64) bool {
	return a == b || math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	rtol, atol, err := normalizeTolerances(rtol, atol)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if err = ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	r, c := a.Rows(), a.Cols()

	// Dense fast-path: operate over row slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i := 0; i < r; i++ {
				ar, br := da.data[i], db.data[i]
				for j := 0; j < c; j++ {
					if !withinTolerance(ar[j], br[j], rtol, atol) {
						return false, nil // early-exit on first violation
					}
				}
			}

			return true, nil
		}
	}

	// Generic fallback via At (bounds-safe; still deterministic).
	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if !withinTolerance(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// ewAllCloseVec is ewAllClose for vectors.
func ewAllCloseVec(a, b Vector, rtol, atol float64) (bool, error) {
	rtol, atol, err := normalizeTolerances(rtol, atol)
	if err != nil {
		return false, matrixErrorf("AllCloseVec", err)
	}
	if err = ValidateBinarySameDim(a, b); err != nil {
		return false, matrixErrorf("AllCloseVec", err)
	}
	var av, bv float64
	for i := 0; i < a.Dim(); i++ {
		if av, err = a.At(i); err != nil {
			return false, matrixErrorf("AllCloseVec", err)
		}
		if bv, err = b.At(i); err != nil {
			return false, matrixErrorf("AllCloseVec", err)
		}
		if !withinTolerance(av, bv, rtol, atol) {
			return false, nil
		}
	}

	return true, nil
}

// AllClose reports whether a and b have the same shape and every element
// satisfies |a-b| ≤ atol + rtol*|b|.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (non-finite tolerance).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// AllCloseVec is AllClose for vectors.
func AllCloseVec(a, b Vector, rtol, atol float64) (bool, error) {
	return ewAllCloseVec(a, b, rtol, atol)
}

// EqualApprox reports whether a and b have the same shape and every pair of
// elements differs by at most delta. Any validation failure (nil operand,
// shape mismatch, non-finite delta) yields false.
func EqualApprox(a, b Matrix, delta float64) bool {
	ok, err := ewAllClose(a, b, 0, delta)

	return err == nil && ok
}

// Equal reports exact equality: same shape and a[i,j] == b[i,j] everywhere.
func Equal(a, b Matrix) bool { return EqualApprox(a, b, 0) }

// EqualVecApprox reports whether a and b have the same dimension and every
// pair of components differs by at most delta.
func EqualVecApprox(a, b Vector, delta float64) bool {
	ok, err := ewAllCloseVec(a, b, 0, delta)

	return err == nil && ok
}

// EqualVec reports exact equality of dimension and components.
func EqualVec(a, b Vector) bool { return EqualVecApprox(a, b, 0) }
