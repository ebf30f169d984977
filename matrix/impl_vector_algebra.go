// SPDX-License-Identifier: MIT

// Package matrix - vector kernels written once against the Vector contract:
// add/sub/scale (in place and copy-producing), dot product, norm, cosine,
// normalization, cross product, homogeneous → Cartesian conversion, prefix
// copy and the vector → matrix bridges.
//
// Notes:
//   - In-place kernels check dimensions and writability before the first write.
//   - Copy-producing kernels clone the receiver (always a writable *VecDense)
//     and apply the in-place primitive.

package matrix

import (
	"fmt"
	"math"
)

const (
	opAddVec          = "AddVec"
	opSubVec          = "SubVec"
	opScaleVec        = "ScaleVec"
	opDot             = "Dot"
	opNorm            = "Norm"
	opCosine          = "Cosine"
	opNormalize       = "Normalize"
	opCross           = "Cross"
	opFromHomogeneous = "FromHomogeneous"
	opCopyPart        = "CopyPart"
	opToRowMatrix     = "ToRowMatrix"
	opToColumnMatrix  = "ToColumnMatrix"
	opVecToSlice      = "VecToSlice"
)

// addSubVecInPlace computes dst = dst + sign*b. All values are read before
// the first store, so dst and b may share storage (a row and a column of the
// same matrix, say).
func addSubVecInPlace(dst, b Vector, sign float64, opTag string) error {
	if err := ValidateBinarySameDim(dst, b); err != nil {
		return matrixErrorf(opTag, err)
	}
	if err := ValidateWritable(dst); err != nil {
		return matrixErrorf(opTag, err)
	}
	buf := make([]float64, dst.Dim())
	var av, bv float64
	var err error
	for i := range buf {
		if av, err = dst.At(i); err != nil {
			return matrixErrorf(opTag, err)
		}
		if bv, err = b.At(i); err != nil {
			return matrixErrorf(opTag, err)
		}
		buf[i] = av + sign*bv
	}

	return storeVecAll(dst, buf, opTag)
}

// storeVecAll writes buf into dst through the kernel write path.
func storeVecAll(dst Vector, buf []float64, opTag string) error {
	for i, x := range buf {
		if err := storeVecAt(dst, i, x); err != nil {
			return matrixErrorf(opTag, err)
		}
	}

	return nil
}

// AddVecInPlace overwrites dst with dst + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrReadOnly.
func AddVecInPlace(dst, b Vector) error { return addSubVecInPlace(dst, b, +1, opAddVec) }

// SubVecInPlace overwrites dst with dst − b.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrReadOnly.
func SubVecInPlace(dst, b Vector) error { return addSubVecInPlace(dst, b, -1, opSubVec) }

// AddVec returns a + b as a fresh *VecDense. Read-only operands are fine.
func AddVec(a, b Vector) (Vector, error) {
	if err := ValidateBinarySameDim(a, b); err != nil {
		return nil, matrixErrorf(opAddVec, err)
	}
	res := a.Clone()
	if err := AddVecInPlace(res, b); err != nil {
		return nil, err
	}

	return res, nil
}

// SubVec returns a − b as a fresh *VecDense.
func SubVec(a, b Vector) (Vector, error) {
	if err := ValidateBinarySameDim(a, b); err != nil {
		return nil, matrixErrorf(opSubVec, err)
	}
	res := a.Clone()
	if err := SubVecInPlace(res, b); err != nil {
		return nil, err
	}

	return res, nil
}

// ScaleVecInPlace multiplies every component of v by alpha. Products are
// stored as computed (an overflow becomes ±Inf).
// Errors: ErrNilMatrix, ErrReadOnly.
func ScaleVecInPlace(v Vector, alpha float64) error {
	if err := ValidateVecNotNil(v); err != nil {
		return matrixErrorf(opScaleVec, err)
	}
	if err := ValidateWritable(v); err != nil {
		return matrixErrorf(opScaleVec, err)
	}
	buf := make([]float64, v.Dim())
	var x float64
	var err error
	for i := range buf {
		if x, err = v.At(i); err != nil {
			return matrixErrorf(opScaleVec, err)
		}
		buf[i] = x * alpha
	}

	return storeVecAll(v, buf, opScaleVec)
}

// ScaleVec returns alpha·v as a fresh *VecDense.
func ScaleVec(v Vector, alpha float64) (Vector, error) {
	if err := ValidateVecNotNil(v); err != nil {
		return nil, matrixErrorf(opScaleVec, err)
	}
	res := v.Clone()
	if err := ScaleVecInPlace(res, alpha); err != nil {
		return nil, err
	}

	return res, nil
}

// Dot returns the scalar product Σ a[i]·b[i].
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n).
func Dot(a, b Vector) (float64, error) {
	if err := ValidateBinarySameDim(a, b); err != nil {
		return 0, matrixErrorf(opDot, err)
	}
	sum := ZeroSum
	var av, bv float64
	var err error
	for i := 0; i < a.Dim(); i++ {
		if av, err = a.At(i); err != nil {
			return 0, matrixErrorf(opDot, err)
		}
		if bv, err = b.At(i); err != nil {
			return 0, matrixErrorf(opDot, err)
		}
		sum += av * bv
	}

	return sum, nil
}

// Norm returns the Euclidean length sqrt(Dot(v, v)).
// Errors: ErrNilMatrix.
func Norm(v Vector) (float64, error) {
	d, err := Dot(v, v)
	if err != nil {
		return 0, matrixErrorf(opNorm, err)
	}

	return math.Sqrt(d), nil
}

// Cosine returns Dot(a,b) / (|a|·|b|), the cosine of the angle between a and b.
// Errors: ErrNilMatrix, ErrDimensionMismatch; ErrDegenerateVector when either
// vector is null within NormEpsilon.
func Cosine(a, b Vector) (float64, error) {
	if err := ValidateBinarySameDim(a, b); err != nil {
		return 0, matrixErrorf(opCosine, err)
	}
	if isNullVector(a, NormEpsilon) || isNullVector(b, NormEpsilon) {
		return 0, matrixErrorf(opCosine, ErrDegenerateVector)
	}
	d, err := Dot(a, b)
	if err != nil {
		return 0, matrixErrorf(opCosine, err)
	}
	na, _ := Norm(a)
	nb, _ := Norm(b)

	return d / (na * nb), nil
}

// NormalizeInPlace scales v to unit length.
// Errors: ErrNilMatrix, ErrReadOnly, ErrDegenerateVector (v null within NormEpsilon).
// Nothing is written when an error is returned.
func NormalizeInPlace(v Vector) error {
	if err := ValidateVecNotNil(v); err != nil {
		return matrixErrorf(opNormalize, err)
	}
	if err := ValidateWritable(v); err != nil {
		return matrixErrorf(opNormalize, err)
	}
	if isNullVector(v, NormEpsilon) {
		return matrixErrorf(opNormalize, ErrDegenerateVector)
	}
	n, err := Norm(v)
	if err != nil {
		return matrixErrorf(opNormalize, err)
	}
	if err = ScaleVecInPlace(v, 1/n); err != nil {
		return matrixErrorf(opNormalize, err)
	}

	return nil
}

// Normalize returns v / |v| as a fresh *VecDense.
// Errors: ErrNilMatrix, ErrDegenerateVector.
func Normalize(v Vector) (Vector, error) {
	if err := ValidateVecNotNil(v); err != nil {
		return nil, matrixErrorf(opNormalize, err)
	}
	res := v.Clone()
	if err := NormalizeInPlace(res); err != nil {
		return nil, err
	}

	return res, nil
}

// Cross returns the cross product a × b of two 3-dimensional vectors.
// MAIN DESCRIPTION:
//   - [y1·z2 − z1·y2, −(x1·z2 − z1·x2), x1·y2 − y1·x2].
//
// Implementation:
//   - Stage 1: validate both operands have dimension 3.
//   - Stage 2: read all six components, allocate the result via a.NewInstance(3)
//     (same kind as a) and write the three components.
//
// Errors:
//   - ErrNilMatrix; ErrBadShape when either dimension is not 3.
//
// Complexity:
//   - O(1).
func Cross(a, b Vector) (Vector, error) {
	if err := ValidateVecNotNil(a); err != nil {
		return nil, matrixErrorf(opCross, err)
	}
	if err := ValidateVecNotNil(b); err != nil {
		return nil, matrixErrorf(opCross, err)
	}
	if err := ValidateDim(a, 3); err != nil {
		return nil, matrixErrorf(opCross, err)
	}
	if err := ValidateDim(b, 3); err != nil {
		return nil, matrixErrorf(opCross, err)
	}

	var p, q [3]float64
	var err error
	for i := 0; i < 3; i++ {
		if p[i], err = a.At(i); err != nil {
			return nil, matrixErrorf(opCross, err)
		}
		if q[i], err = b.At(i); err != nil {
			return nil, matrixErrorf(opCross, err)
		}
	}

	res, err := a.NewInstance(3)
	if err != nil {
		return nil, matrixErrorf(opCross, err)
	}
	out := [3]float64{
		p[1]*q[2] - p[2]*q[1],
		-(p[0]*q[2] - p[2]*q[0]),
		p[0]*q[1] - p[1]*q[0],
	}
	for i, x := range out {
		if err = storeVecAt(res, i, x); err != nil {
			return nil, matrixErrorf(opCross, err)
		}
	}

	return res, nil
}

// FromHomogeneous converts homogeneous coordinates to Cartesian ones: the last
// component w is dropped after dividing the others by it.
// Errors:
//   - ErrNilMatrix; ErrBadShape when v has a single component;
//   - ErrHomogeneousCoordinate when |w| ≤ DefaultEpsilon or |w| > HomogeneousLimit.
//
// Complexity: O(n).
func FromHomogeneous(v Vector) (Vector, error) {
	if err := ValidateVecNotNil(v); err != nil {
		return nil, matrixErrorf(opFromHomogeneous, err)
	}
	n := v.Dim()
	if n < 2 {
		return nil, matrixErrorf(opFromHomogeneous, ErrBadShape)
	}
	w, err := v.At(n - 1)
	if err != nil {
		return nil, matrixErrorf(opFromHomogeneous, err)
	}
	if IsZero(w, DefaultEpsilon) || math.Abs(w) > HomogeneousLimit {
		return nil, matrixErrorf(opFromHomogeneous, fmt.Errorf("w=%g: %w", w, ErrHomogeneousCoordinate))
	}

	res, err := v.NewInstance(n - 1)
	if err != nil {
		return nil, matrixErrorf(opFromHomogeneous, err)
	}
	var x float64
	for i := 0; i < n-1; i++ {
		if x, err = v.At(i); err != nil {
			return nil, matrixErrorf(opFromHomogeneous, err)
		}
		if err = storeVecAt(res, i, x/w); err != nil {
			return nil, matrixErrorf(opFromHomogeneous, err)
		}
	}

	return res, nil
}

// CopyPart returns the first n components of v in a fresh vector of v's kind
// (v.NewInstance(n)). When n exceeds v.Dim() the tail is zero.
// Errors: ErrNilMatrix, ErrInvalidDimensions (n ≤ 0).
func CopyPart(v Vector, n int) (Vector, error) {
	if err := ValidateVecNotNil(v); err != nil {
		return nil, matrixErrorf(opCopyPart, err)
	}
	if n <= 0 {
		return nil, matrixErrorf(opCopyPart, ErrInvalidDimensions)
	}
	res, err := v.NewInstance(n)
	if err != nil {
		return nil, matrixErrorf(opCopyPart, err)
	}
	var x float64
	for i := 0; i < n && i < v.Dim(); i++ {
		if x, err = v.At(i); err != nil {
			return nil, matrixErrorf(opCopyPart, err)
		}
		if err = storeVecAt(res, i, x); err != nil {
			return nil, matrixErrorf(opCopyPart, err)
		}
	}

	return res, nil
}

// ToRowMatrix presents v as a 1×N matrix, live (VectorAsMatrixView) or as a *Dense snapshot.
// Errors: ErrNilMatrix.
func ToRowMatrix(v Vector, live bool) (Matrix, error) {
	w, err := NewVectorAsMatrixView(v, true)
	if err != nil {
		return nil, matrixErrorf(opToRowMatrix, err)
	}
	if live {
		return w, nil
	}

	return w.Clone(), nil
}

// ToColumnMatrix presents v as an N×1 matrix, live or as a *Dense snapshot.
// Errors: ErrNilMatrix.
func ToColumnMatrix(v Vector, live bool) (Matrix, error) {
	w, err := NewVectorAsMatrixView(v, false)
	if err != nil {
		return nil, matrixErrorf(opToColumnMatrix, err)
	}
	if live {
		return w, nil
	}

	return w.Clone(), nil
}

// VecToSlice exports v as a fresh []float64.
// Errors: ErrNilMatrix.
func VecToSlice(v Vector) ([]float64, error) {
	if err := ValidateVecNotNil(v); err != nil {
		return nil, matrixErrorf(opVecToSlice, err)
	}
	d, err := materializeVec(v)
	if err != nil {
		return nil, matrixErrorf(opVecToSlice, err)
	}

	return d.data, nil
}
