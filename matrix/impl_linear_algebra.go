// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, scaling, multiplication, transpose,
// submatrix extraction, determinant and inversion. Every kernel is written once
// against the Matrix contract and behaves identically over owning storage and
// over arbitrarily composed chains of views.
//
// Purpose:
//   - Define operation tags and shared constants for determinism and error reporting.
//   - Pair every in-place primitive with a copy-producing form (clone, then apply).
//
// Notes:
//   - All kernels use central validators and wrap sentinels via matrixErrorf.
//   - In-place kernels validate everything (shape, writability) before the first write.

package matrix

import (
	"fmt"
)

// ZeroSum is the initial sum value for dot products and accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opAddInPlace  = "AddInPlace"
	opSubInPlace  = "SubInPlace"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opSubMatrix   = "SubMatrix"
	opToVector    = "ToVector"
	opScale       = "Scale"
	opScaleInPl   = "ScaleInPlace"
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
	opIdentity    = "MakeIdentity"
	opHadamard    = "Hadamard"
	opMatVec      = "MatVec"
	opToSlices    = "ToSlices"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Implementation:
//   - Stage 1: Wrap using fmt.Errorf("%s: %w", tag, err) to enable errors.Is/As.
//
// Inputs:
//   - tag: operation name/label (use package-level op* constants; no magic strings).
//   - err: underlying non-nil error to wrap.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSubInPlace computes dst = dst + sign*b in place.
// Internal helper for AddInPlace/SubInPlace/Add/Sub to share validation and fast-path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(dst, b), ValidateWritable(dst).
//   - Stage 2: Fast-path if both are *Dense (row slices, same-cell aliasing only).
//   - Stage 3: Otherwise read every dst and b value into a buffer first, then
//     store. dst may be a view over b (or b a view over dst): no cell is read
//     after it was overwritten.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrReadOnly; nothing is written on these.
//
// Notes:
//   - Results are stored as computed; a sum that overflows is ±Inf, not an error.
//
// Complexity:
//   - Time O(r*c), Space O(1) on the fast path, O(r*c) otherwise.
func addSubInPlace(dst, b Matrix, sign float64, opTag string) error {
	if err := ValidateBinarySameShape(dst, b); err != nil {
		return matrixErrorf(opTag, err)
	}
	if err := ValidateWritable(dst); err != nil {
		return matrixErrorf(opTag, err)
	}

	rows, cols := dst.Rows(), dst.Cols()
	var i, j int

	// Fast path: *Dense with *Dense → direct row walks.
	if dd, okA := dst.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i = 0; i < rows; i++ {
				dr, br := dd.data[i], db.data[i]
				for j = 0; j < cols; j++ {
					dr[j] += sign * br[j]
				}
			}

			return nil
		}
	}

	buf := make([]float64, rows*cols)
	var av, bv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = dst.At(i, j); err != nil {
				return matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			buf[i*cols+j] = av + sign*bv
		}
	}

	return storeAll(dst, buf, opTag)
}

// storeAll writes the row-major buffer into dst through the kernel write path.
func storeAll(dst Matrix, buf []float64, opTag string) error {
	rows, cols := dst.Rows(), dst.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if err := storeAt(dst, i, j, buf[i*cols+j]); err != nil {
				return matrixErrorf(opTag, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return nil
}

// AddInPlace overwrites dst with dst + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrReadOnly (nothing is written on these).
// Complexity: O(r*c).
func AddInPlace(dst, b Matrix) error { return addSubInPlace(dst, b, +1, opAddInPlace) }

// SubInPlace overwrites dst with dst − b.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrReadOnly (nothing is written on these).
// Complexity: O(r*c).
func SubInPlace(dst, b Matrix) error { return addSubInPlace(dst, b, -1, opSubInPlace) }

// addSub clones a and applies the in-place primitive to the clone.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := a.Clone()
	if err := addSubInPlace(res, b, sign, opTag); err != nil {
		return nil, err
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh owning result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: Clone A (always an owning *Dense) and run AddInPlace(clone, B).
//
// Behavior highlights:
//   - Deterministic loop order; inputs are never mutated, views included.
//
// Inputs:
//   - A: left matrix operand (any Matrix, including views).
//   - B: right matrix operand (any Matrix) with the same shape as A.
//
// Returns:
//   - Matrix: a new *Dense with C[i,j] = A[i,j] + B[i,j].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Use AddInPlace to avoid the allocation when A may be overwritten.
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A − B and returns a fresh owning result.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// ScaleInPlace multiplies every element of m by alpha.
// Products are stored as computed (an overflow becomes ±Inf), so the call
// never fails once the checks pass.
// Errors: ErrNilMatrix, ErrReadOnly (nothing is written on these).
// Complexity: O(r*c).
func ScaleInPlace(m Matrix, alpha float64) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opScaleInPl, err)
	}
	if err := ValidateWritable(m); err != nil {
		return matrixErrorf(opScaleInPl, err)
	}

	rows, cols := m.Rows(), m.Cols()
	var i, j int

	// Fast path: walk the rows directly.
	if d, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			row := d.data[i]
			for j = 0; j < cols; j++ {
				row[j] *= alpha
			}
		}

		return nil
	}

	buf := make([]float64, rows*cols)
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return matrixErrorf(opScaleInPl, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			buf[i*cols+j] = v * alpha
		}
	}

	return storeAll(m, buf, opScaleInPl)
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Input is validated non-nil; the original matrix is never mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Clone m into an owning *Dense.
//   - Stage 2: ScaleInPlace on the clone.
//
// Notes:
//   - alpha = 0 yields an explicit zero matrix with the same shape.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := m.Clone()
	if err := ScaleInPlace(res, alpha); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j over row slices;
//     otherwise use the i→j→k triple loop through At.
//
// Behavior highlights:
//   - Deterministic triple loops; one allocation for C.
//   - The result is always an owning Dense(A.Rows, B.Cols), whatever the operand kinds.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new *Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// AI-Hints:
//   - Operands may be views of each other (Mul(A, Transpose(A, true))): nothing is written
//     until the product is complete.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)

	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i = 0; i < aRows; i++ {
				ar, rr := da.data[i], res.data[i]
				for k = 0; k < aCols; k++ {
					av = ar[k]
					if av == 0 {
						continue
					}
					br := db.data[k]
					for j = 0; j < bCols; j++ {
						rr[j] += av * br[j]
					}
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[i][j] = current
		}
	}
	return res, nil
}

// Transpose returns mᵀ. With live=true the result is a TransposeView that reads
// and writes through to m; with live=false it is an independent *Dense snapshot.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m) and build the view.
//   - Stage 2: live → return the view; snapshot → view.Clone().
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Live O(1); snapshot Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Transpose(Transpose(m, true), true) addresses exactly the elements of m.
func Transpose(m Matrix, live bool) (Matrix, error) {
	v, err := NewTransposeView(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if live {
		return v, nil
	}

	return v.Clone(), nil
}

// SubMatrix returns m without row `row` and column `col`, live (SubmatrixView)
// or as a *Dense snapshot.
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: live O(r+c); snapshot O(r*c).
func SubMatrix(m Matrix, row, col int, live bool) (Matrix, error) {
	v, err := NewSubmatrixView(m, row, col)
	if err != nil {
		return nil, matrixErrorf(opSubMatrix, err)
	}
	if live {
		return v, nil
	}

	return v.Clone(), nil
}

// ToVector exposes a single-row or single-column matrix as a Vector, live
// (MatrixAsVectorView) or as a *VecDense snapshot.
// Errors: ErrNilMatrix, ErrNotVectorShape.
func ToVector(m Matrix, live bool) (Vector, error) {
	v, err := NewMatrixAsVectorView(m)
	if err != nil {
		return nil, matrixErrorf(opToVector, err)
	}
	if live {
		return v, nil
	}

	return v.Clone(), nil
}

// copyRows reads m into a fresh [][]float64 through At.
func copyRows(m Matrix) ([][]float64, error) {
	d, err := materialize(m)
	if err != nil {
		return nil, err
	}

	return d.data, nil
}

// Determinant computes det(m) by Gaussian elimination with partial pivoting.
// MAIN DESCRIPTION:
//   - Works on an independent copy of the elements: m (or the chain of views it
//     is) is never written.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m). A 1×1 matrix returns its element.
//   - Stage 2: For each column k, when |a[k][k]| ≤ DefaultEpsilon search the rows
//     below for |a[p][k]| > DefaultEpsilon; swap and flip the sign, or return exactly 0.
//   - Stage 3: Eliminate below the pivot; det = sign · Π a[k][k].
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Determinism:
//   - First qualifying row below the pivot is chosen; fixed loop orders.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - Pass a SubmatrixView to get a minor without copying the base.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	n := m.Rows()
	if n == 1 {
		v, err := m.At(0, 0)
		if err != nil {
			return 0, matrixErrorf(opDeterminant, err)
		}

		return v, nil
	}

	a, err := copyRows(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	sign := 1.0
	var i, j, k, p int
	var f float64
	for k = 0; k < n; k++ {
		if IsZero(a[k][k], DefaultEpsilon) {
			for p = k + 1; p < n; p++ {
				if !IsZero(a[p][k], DefaultEpsilon) {
					break
				}
			}
			if p == n {
				return 0, nil
			}
			a[k], a[p] = a[p], a[k]
			sign = -sign
		}
		for i = k + 1; i < n; i++ {
			f = a[i][k] / a[k][k]
			if f == 0 {
				continue
			}
			for j = k; j < n; j++ {
				a[i][j] -= f * a[k][j]
			}
		}
	}

	det := sign
	for k = 0; k < n; k++ {
		det *= a[k][k]
	}

	return det, nil
}

// Inverse computes m⁻¹ with the adjugate method.
// MAIN DESCRIPTION:
//   - inv = (1/det) · adj(m), where adj is the transposed cofactor matrix.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); det := Determinant(m); |det| ≤ DefaultEpsilon → ErrSingular.
//   - Stage 2: 1×1 → reciprocal.
//   - Stage 3: cofactor(i,j) = (−1)^(i+j) · Determinant(live SubmatrixView(m, i, j)), scaled by 1/det.
//   - Stage 4: transpose the cofactor matrix (snapshot).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n⁵) (n² minors, O(n³) each), Space O(n²). Suitable for small n only.
//
// Notes:
//   - No minor is ever copied up front: every cofactor reads m through a view.
func Inverse(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	det, err := Determinant(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if IsZero(det, DefaultEpsilon) {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	n := m.Rows()
	cof, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if n == 1 {
		cof.data[0][0] = 1 / det

		return cof, nil
	}

	var i, j int
	var minor float64
	var sv *SubmatrixView
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if sv, err = NewSubmatrixView(m, i, j); err != nil {
				return nil, matrixErrorf(opInverse, err)
			}
			if minor, err = Determinant(sv); err != nil {
				return nil, matrixErrorf(opInverse, err)
			}
			if (i+j)%2 == 1 {
				minor = -minor
			}
			cof.data[i][j] = minor / det
		}
	}

	inv, err := Transpose(cof, false)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}

// MakeIdentity overwrites the square matrix m with the identity.
// Errors: ErrNilMatrix, ErrNonSquare, ErrReadOnly.
// Complexity: O(n²).
func MakeIdentity(m Matrix) error {
	if err := ValidateSquareNonNil(m); err != nil {
		return matrixErrorf(opIdentity, err)
	}
	if err := ValidateWritable(m); err != nil {
		return matrixErrorf(opIdentity, err)
	}
	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v = 0
			if i == j {
				v = 1
			}
			if err := m.Set(i, j, v); err != nil {
				return matrixErrorf(opIdentity, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return nil
}

// Hadamard computes the elementwise product (a ⊙ b) with a fresh owning result.
// Both inputs must be non-nil and have identical shapes; operands are not mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Hadamard ≠ matrix multiplication; it is elementwise. Use Mul for A×B.
func Hadamard(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	res, err := materialize(a)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	// Fast-path: b is *Dense → row slices directly.
	if db, ok := b.(*Dense); ok {
		for i := 0; i < res.r; i++ {
			rr, br := res.data[i], db.data[i]
			for j := range rr {
				rr[j] *= br[j]
			}
		}

		return res, nil
	}

	var bv float64
	for i := 0; i < res.r; i++ {
		for j := 0; j < res.c; j++ {
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opHadamard, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i][j] *= bv
		}
	}

	return res, nil
}

// MatVec computes y = m · x for a column vector x and returns y as a fresh *VecDense.
//
// Contract: m non-nil; x non-nil; x.Dim() == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
//
// AI-Hints:
//   - Equivalent to ToVector(Mul(m, ToColumnMatrix(x, true)), false) without the intermediate matrix.
func MatVec(m Matrix, x Vector) (*VecDense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecNotNil(x); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if x.Dim() != m.Cols() {
		return nil, matrixErrorf(opMatVec, ErrDimensionMismatch)
	}

	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)
	var i, j int
	var mv, xv float64
	var err error
	for i = 0; i < rows; i++ {
		acc := ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if xv, err = x.At(j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("x.At(%d): %w", j, err))
			}
			acc += mv * xv
		}
		y[i] = acc
	}

	return &VecDense{data: y, validateNaNInf: DefaultValidateNaNInf}, nil
}

// ToSlices exports m as a fresh [][]float64 (row-major, independent of m).
// Errors: ErrNilMatrix.
func ToSlices(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToSlices, err)
	}
	rows, err := copyRows(m)
	if err != nil {
		return nil, matrixErrorf(opToSlices, err)
	}

	return rows, nil
}
