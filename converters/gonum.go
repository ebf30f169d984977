// SPDX-License-Identifier: MIT

package converters

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/matrix"
)

// Operation tags.
const (
	opToGonum      = "ToGonum"
	opFromGonum    = "FromGonum"
	opAsGonum      = "AsGonum"
	opToVecDense   = "ToVecDense"
	opFromVecDense = "FromVecDense"
	opMutableView  = "MutableView"
)

// converterErrorf wraps err with the "converters.<op>" tag.
func converterErrorf(op string, err error) error {
	return fmt.Errorf("converters.%s: %w", op, err)
}

// ToGonum copies m into a new *mat.Dense.
// Errors: ErrNilMatrix, ErrInvalidDimensions (a 0×N view has no gonum form).
// Complexity: O(r*c).
func ToGonum(m matrix.Matrix) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, converterErrorf(opToGonum, err)
	}
	r, c := m.Rows(), m.Cols()
	if r == 0 || c == 0 {
		return nil, converterErrorf(opToGonum, matrix.ErrInvalidDimensions)
	}
	rows, err := matrix.ToSlices(m)
	if err != nil {
		return nil, converterErrorf(opToGonum, err)
	}

	// flatten to row order
	data := make([]float64, 0, r*c)
	for _, row := range rows {
		data = append(data, row...)
	}

	return mat.NewDense(r, c, data), nil
}

// FromGonum copies any mat.Matrix (including transposes and views) into a new
// *matrix.Dense. Options are forwarded to matrix.NewDenseFrom; the default
// numeric policy rejects NaN/±Inf.
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrNaNInf.
// Complexity: O(r*c).
func FromGonum(g mat.Matrix, opts ...matrix.Option) (*matrix.Dense, error) {
	if g == nil {
		return nil, converterErrorf(opFromGonum, matrix.ErrNilMatrix)
	}
	r, c := g.Dims()
	if r <= 0 || c <= 0 {
		return nil, converterErrorf(opFromGonum, matrix.ErrInvalidDimensions)
	}
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		if rv, ok := g.(mat.RawRowViewer); ok {
			copy(rows[i], rv.RawRowView(i))
			continue
		}
		for j := range rows[i] {
			rows[i][j] = g.At(i, j)
		}
	}
	// rows is private to this call, so the result can own it.
	all := append(append(make([]matrix.Option, 0, len(opts)+1), opts...), matrix.WithShallowCopy())
	out, err := matrix.NewDenseFrom(r, c, rows, all...)
	if err != nil {
		return nil, converterErrorf(opFromGonum, err)
	}

	return out, nil
}

// ToVecDense copies v into a new *mat.VecDense.
// Errors: ErrNilMatrix.
func ToVecDense(v matrix.Vector) (*mat.VecDense, error) {
	data, err := matrix.VecToSlice(v)
	if err != nil {
		return nil, converterErrorf(opToVecDense, err)
	}

	return mat.NewVecDense(len(data), data), nil
}

// FromVecDense copies any mat.Vector into a new *matrix.VecDense.
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrNaNInf.
func FromVecDense(g mat.Vector, opts ...matrix.Option) (*matrix.VecDense, error) {
	if g == nil {
		return nil, converterErrorf(opFromVecDense, matrix.ErrNilMatrix)
	}
	n := g.Len()
	if n <= 0 {
		return nil, converterErrorf(opFromVecDense, matrix.ErrInvalidDimensions)
	}
	data := make([]float64, n)
	for i := range data {
		data[i] = g.AtVec(i)
	}
	v, err := matrix.NewVectorFrom(data, opts...)
	if err != nil {
		return nil, converterErrorf(opFromVecDense, err)
	}

	return v, nil
}

// gonumAdapter presents a matrix.Matrix as a mat.Matrix without copying.
type gonumAdapter struct {
	m matrix.Matrix
}

// AsGonum returns a live, read-only mat.Matrix over m. Reads go through m.At,
// so changes to m (or to whatever m views) are visible immediately.
// Errors: ErrNilMatrix, ErrInvalidDimensions (gonum has no empty matrices).
//
// AI-Hints:
//   - gonum functions taking mat.Matrix (mat.Det, (*mat.Dense).Mul, mat.Formatted)
//     accept the adapter directly.
//   - Out-of-range At panics with mat.ErrRowAccess / mat.ErrColAccess, as gonum does.
func AsGonum(m matrix.Matrix) (mat.Matrix, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, converterErrorf(opAsGonum, err)
	}
	if m.Rows() == 0 || m.Cols() == 0 {
		return nil, converterErrorf(opAsGonum, matrix.ErrInvalidDimensions)
	}

	return gonumAdapter{m: m}, nil
}

// Dims implements mat.Matrix.
func (a gonumAdapter) Dims() (r, c int) { return a.m.Rows(), a.m.Cols() }

// At implements mat.Matrix.
func (a gonumAdapter) At(i, j int) float64 {
	if i < 0 || i >= a.m.Rows() {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= a.m.Cols() {
		panic(mat.ErrColAccess)
	}
	v, _ := a.m.At(i, j) // in bounds

	return v
}

// T implements mat.Matrix.
func (a gonumAdapter) T() mat.Matrix { return mat.Transpose{Matrix: a} }

// MutableView presents a gonum mat.Mutable as a matrix.Matrix. It owns no
// elements: At and Set go straight to the gonum value, so the full matrix
// algorithm layer (views, in-place kernels, Determinant, Inverse) runs over
// gonum-owned storage.
type MutableView struct {
	g              mat.Mutable
	validateNaNInf bool
}

// NewMutableView wraps g. Only the numeric policy options apply
// (WithValidateNaNInf / WithNoValidateNaNInf).
// Errors: ErrNilMatrix, ErrInvalidDimensions (empty gonum value).
func NewMutableView(g mat.Mutable, opts ...matrix.Option) (*MutableView, error) {
	if g == nil {
		return nil, converterErrorf(opMutableView, matrix.ErrNilMatrix)
	}
	if r, c := g.Dims(); r <= 0 || c <= 0 {
		return nil, converterErrorf(opMutableView, matrix.ErrInvalidDimensions)
	}
	o := matrix.NewMatrixOptions(opts...)

	return &MutableView{g: g, validateNaNInf: o.ValidateNaNInf()}, nil
}

// Base returns the wrapped gonum value.
func (v *MutableView) Base() mat.Mutable { return v.g }

// Rows implements matrix.Matrix.
func (v *MutableView) Rows() int {
	r, _ := v.g.Dims()

	return r
}

// Cols implements matrix.Matrix.
func (v *MutableView) Cols() int {
	_, c := v.g.Dims()

	return c
}

func (v *MutableView) inBounds(i, j int) bool {
	r, c := v.g.Dims()

	return i >= 0 && i < r && j >= 0 && j < c
}

// At implements matrix.Matrix.
func (v *MutableView) At(i, j int) (float64, error) {
	if !v.inBounds(i, j) {
		return 0, fmt.Errorf("MutableView.At(%d,%d): %w", i, j, matrix.ErrOutOfRange)
	}

	return v.g.At(i, j), nil
}

// Set implements matrix.Matrix.
func (v *MutableView) Set(i, j int, x float64) error {
	if !v.inBounds(i, j) {
		return fmt.Errorf("MutableView.Set(%d,%d): %w", i, j, matrix.ErrOutOfRange)
	}
	if v.validateNaNInf {
		if err := matrix.ValidateFinite(x); err != nil {
			return fmt.Errorf("MutableView.Set(%d,%d): %w", i, j, err)
		}
	}
	v.g.Set(i, j, x)

	return nil
}

// Clone returns an independent *matrix.Dense copy carrying the view's numeric
// policy. Non-finite values written on the gonum side are copied as they are,
// in which case the copy does not validate.
func (v *MutableView) Clone() matrix.Matrix {
	opt := matrix.WithValidateNaNInf()
	if !v.validateNaNInf {
		opt = matrix.WithNoValidateNaNInf()
	}
	out, err := FromGonum(v.g, opt)
	if err != nil {
		out, _ = FromGonum(v.g, matrix.WithNoValidateNaNInf())
	}

	return out
}

// NewInstance returns a MutableView over a fresh zero-filled *mat.Dense.
// Errors: ErrInvalidDimensions.
func (v *MutableView) NewInstance(rows, cols int) (matrix.Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, converterErrorf(opMutableView, matrix.ErrInvalidDimensions)
	}

	return &MutableView{g: mat.NewDense(rows, cols, nil), validateNaNInf: v.validateNaNInf}, nil
}

// String renders the view in the matrix text notation.
func (v *MutableView) String() string { return matrix.Format(v, matrix.DefaultPrecision) }
