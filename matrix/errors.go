// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Sentinels are returned wrapped with an operation
// tag (matrixErrorf / denseErrorf / viewErrorf); callers match them with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/dimension -> structural precondition -> read-only -> numeric
// (singular, degenerate, homogeneous) -> element policy (NaN/Inf).

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row, column or vector index) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, Mul where a.Cols != b.Rows, Dot of unequal lengths.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't
	// (Determinant, Inverse, MakeIdentity).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrBadShape signals that an operand does not have the specific shape an
	// operation needs (Cross requires dimension 3, FromHomogeneous requires dimension > 1).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrSingular is returned when the determinant of a matrix is within
	// DefaultEpsilon of zero and the matrix cannot be inverted.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrDegenerateVector signals a (near) zero-norm vector where a direction is
	// required (Normalize, Cosine).
	ErrDegenerateVector = errors.New("matrix: degenerate (zero-norm) vector")

	// ErrReadOnly signals a mutation attempt on a vector constructed as read-only.
	ErrReadOnly = errors.New("matrix: read-only vector")

	// ErrStorageTooSmall signals that caller-provided storage is smaller than the
	// declared shape in shallow (aliasing) construction mode.
	ErrStorageTooSmall = errors.New("matrix: storage smaller than declared shape")

	// ErrNotVectorShape signals that a matrix-shaped object was required to have
	// exactly one row or exactly one column (matrix-as-vector views, NewInstance
	// of vector-as-matrix views).
	ErrNotVectorShape = errors.New("matrix: shape is neither 1xN nor Nx1")

	// ErrHomogeneousCoordinate signals a homogeneous coordinate that is either
	// (near) zero or implausibly large for a safe division.
	ErrHomogeneousCoordinate = errors.New("matrix: unusable homogeneous coordinate")

	// ErrParse signals malformed text notation (bad literal, empty row, empty input).
	ErrParse = errors.New("matrix: parse error")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set, etc.).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix or Vector (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
// Keep it as an alias so errors.Is(err, ErrIndexOutOfBounds) remains true.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
