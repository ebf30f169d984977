// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/writability checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing (except the error on failure).
//  - Every check runs before the first write of an in-place kernel (fail fast, no partial mutation).
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateVecNotNil ensures the vector reference is non-nil.
// Complexity: O(1).
func ValidateVecNotNil(v Vector) error {
	if v == nil {
		return validatorErrorf("ValidateVecNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Nil operands yield ErrNilMatrix.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Errors: ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateMulCompatible – Ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameDim – Composite: NotNil(a) → NotNil(b) → a.Dim == b.Dim.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameDim(a, b Vector) error {
	if err := ValidateVecNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameDim", err)
	}
	if err := ValidateVecNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameDim", err)
	}
	if a.Dim() != b.Dim() {
		return validatorErrorf("ValidateBinarySameDim", ErrDimensionMismatch)
	}

	return nil
}

// ValidateDim ensures v has exactly n elements.
// Used for structural preconditions (Cross requires 3), hence ErrBadShape
// rather than ErrDimensionMismatch.
// Complexity: O(1).
func ValidateDim(v Vector, n int) error {
	if v == nil {
		return validatorErrorf("ValidateDim", ErrNilMatrix)
	}
	if v.Dim() != n {
		return validatorErrorf("ValidateDim", ErrBadShape)
	}

	return nil
}

// ValidateWritable ensures x (a Matrix or a Vector, possibly a view chain) is
// not backed by read-only storage.
// Errors: ErrReadOnly.
// Complexity: O(depth of the view chain).
func ValidateWritable(x any) error {
	if isReadOnly(x) {
		return validatorErrorf("ValidateWritable", ErrReadOnly)
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf.
// Complexity: O(1).
func ValidateFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return validatorErrorf("ValidateFinite", ErrNaNInf)
	}

	return nil
}

// IsZero reports whether |x| ≤ eps. This is the single scalar comparison
// used for pivots, determinants and norms.
// Complexity: O(1).
func IsZero(x, eps float64) bool {
	return math.Abs(x) <= eps
}

// isNullVector reports whether every component of v is within eps of zero.
func isNullVector(v Vector, eps float64) bool {
	var x float64
	for i := 0; i < v.Dim(); i++ {
		x, _ = v.At(i) // i < Dim(); At cannot fail
		if !IsZero(x, eps) {
			return false
		}
	}

	return true
}
