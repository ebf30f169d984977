// SPDX-License-Identifier: MIT

// Package matrix: the two abstract contracts every owning instance and every
// view satisfies. The algorithm layer is written once against these
// interfaces and never needs to know whether it faces owning storage or a
// chain of views.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Implementations in this package:
//   - *Dense              (owning, row storage)
//   - *TransposeView      (swaps row/col addressing)
//   - *SubmatrixView      (skips one row and one column of its base)
//   - *VectorAsMatrixView (a Vector seen as a 1×N or N×1 matrix)
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1) for owning storage, O(depth) for a view chain.
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid, ErrNaNInf or ErrReadOnly
	// if the owning storage behind the matrix refuses the write.
	Set(i, j int, v float64) error

	// Clone returns an independent owning copy (*Dense), even for views.
	// Complexity: O(rows*cols).
	Clone() Matrix

	// NewInstance returns a zero-filled matrix of the same kind:
	// owning matrices produce owning matrices, views produce compatible views
	// over fresh owning storage.
	NewInstance(rows, cols int) (Matrix, error)
}

// Vector represents a one-dimensional mutable array of float64 values.
//
// Implementations in this package:
//   - *VecDense           (owning, optionally read-only)
//   - *MatrixAsVectorView (one row or one column of a Matrix)
type Vector interface {
	// Dim returns the number of elements.
	Dim() int

	// At retrieves element i or returns ErrOutOfRange.
	At(i int) (float64, error)

	// Set assigns element i. Returns ErrOutOfRange, ErrReadOnly or ErrNaNInf.
	Set(i int, v float64) error

	// Clone returns an independent, writable owning copy (*VecDense).
	Clone() Vector

	// NewInstance returns a zero-filled vector of the same kind.
	NewInstance(dim int) (Vector, error)
}

// readOnlyReporter is the optional capability used by in-place kernels to
// fail before the first write. *VecDense reports its own flag; every view
// forwards the question to the object it wraps.
type readOnlyReporter interface {
	ReadOnly() bool
}

// isReadOnly reports whether x (a Matrix or a Vector) is backed by read-only storage.
func isReadOnly(x any) bool {
	if r, ok := x.(readOnlyReporter); ok {
		return r.ReadOnly()
	}

	return false
}

// storer is the write path of the arithmetic kernels. Bounds and read-only
// storage are enforced, the finite-value policy is not: kernels store IEEE
// results as computed (an overflow stays ±Inf). Every type in this package
// implements it; foreign implementations are written through Set.
type storer interface {
	store(i, j int, v float64) error
}

// vecStorer is storer for vectors.
type vecStorer interface {
	store(i int, v float64) error
}

// storeAt writes v at (i, j) of m through the kernel write path.
func storeAt(m Matrix, i, j int, v float64) error {
	if s, ok := m.(storer); ok {
		return s.store(i, j, v)
	}

	return m.Set(i, j, v)
}

// storeVecAt writes x at i of v through the kernel write path.
func storeVecAt(v Vector, i int, x float64) error {
	if s, ok := v.(vecStorer); ok {
		return s.store(i, x)
	}

	return v.Set(i, x)
}

// policyReporter exposes the finite-value policy of the storage behind a
// matrix or vector. Views forward it, so snapshots of a view keep the policy
// of the owning storage.
type policyReporter interface {
	validatesNaNInf() bool
}

// policyOf reports the finite-value policy of x, DefaultValidateNaNInf when unknown.
func policyOf(x any) bool {
	if p, ok := x.(policyReporter); ok {
		return p.validatesNaNInf()
	}

	return DefaultValidateNaNInf
}
