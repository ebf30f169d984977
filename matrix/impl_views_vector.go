// SPDX-License-Identifier: MIT

// Package matrix - live views bridging the two contracts:
// VectorAsMatrixView (a Vector seen as a 1×N or N×1 Matrix) and
// MatrixAsVectorView (a single-row or single-column Matrix seen as a Vector).
//
// Both views delegate every read and write to the wrapped object and own no
// element storage. Orientation (and, for MatrixAsVectorView, the dimension) is
// fixed at construction.

package matrix

import "fmt"

const (
	viewVecAsMatrix = "VectorAsMatrixView"
	viewMatAsVector = "MatrixAsVectorView"
)

// materializeVec copies any Vector into a fresh owning *VecDense with the
// numeric policy of the storage behind v.
func materializeVec(v Vector) (*VecDense, error) {
	out := make([]float64, v.Dim())
	var err error
	for i := range out {
		if out[i], err = v.At(i); err != nil {
			return nil, fmt.Errorf("At(%d): %w", i, err)
		}
	}

	return &VecDense{data: out, validateNaNInf: policyOf(v)}, nil
}

// ---------- VectorAsMatrixView ----------

// VectorAsMatrixView presents a Vector as a one-row (asRow) or one-column matrix.
type VectorAsMatrixView struct {
	base  Vector
	asRow bool
}

var _ Matrix = (*VectorAsMatrixView)(nil)

// NewVectorAsMatrixView wraps v as a 1×N matrix when asRow is true, else as N×1.
// Errors: ErrNilMatrix.
func NewVectorAsMatrixView(v Vector, asRow bool) (*VectorAsMatrixView, error) {
	if err := ValidateVecNotNil(v); err != nil {
		return nil, fmt.Errorf("New%s: %w", viewVecAsMatrix, err)
	}

	return &VectorAsMatrixView{base: v, asRow: asRow}, nil
}

// Base returns the wrapped vector.
func (w *VectorAsMatrixView) Base() Vector { return w.base }

// IsRow reports the orientation.
func (w *VectorAsMatrixView) IsRow() bool { return w.asRow }

// Rows is 1 for a row view, Dim for a column view.
func (w *VectorAsMatrixView) Rows() int {
	if w.asRow {
		return 1
	}

	return w.base.Dim()
}

// Cols is Dim for a row view, 1 for a column view.
func (w *VectorAsMatrixView) Cols() int {
	if w.asRow {
		return w.base.Dim()
	}

	return 1
}

// index maps (i, j) to the vector index, reporting false when out of range.
func (w *VectorAsMatrixView) index(i, j int) (int, bool) {
	if i < 0 || i >= w.Rows() || j < 0 || j >= w.Cols() {
		return 0, false
	}
	if w.asRow {
		return j, true
	}

	return i, true
}

// At returns base(j) for a row view and base(i) for a column view.
func (w *VectorAsMatrixView) At(i, j int) (float64, error) {
	k, ok := w.index(i, j)
	if !ok {
		return 0, viewErrorf(viewVecAsMatrix, ctxAt, i, j, ErrOutOfRange)
	}
	v, err := w.base.At(k)
	if err != nil {
		return 0, viewErrorf(viewVecAsMatrix, ctxAt, i, j, err)
	}

	return v, nil
}

// Set writes through to the vector.
func (w *VectorAsMatrixView) Set(i, j int, v float64) error {
	k, ok := w.index(i, j)
	if !ok {
		return viewErrorf(viewVecAsMatrix, ctxSet, i, j, ErrOutOfRange)
	}
	if err := w.base.Set(k, v); err != nil {
		return viewErrorf(viewVecAsMatrix, ctxSet, i, j, err)
	}

	return nil
}

func (w *VectorAsMatrixView) store(i, j int, v float64) error {
	k, ok := w.index(i, j)
	if !ok {
		return viewErrorf(viewVecAsMatrix, ctxSet, i, j, ErrOutOfRange)
	}
	if err := storeVecAt(w.base, k, v); err != nil {
		return viewErrorf(viewVecAsMatrix, ctxSet, i, j, err)
	}

	return nil
}

func (w *VectorAsMatrixView) validatesNaNInf() bool { return policyOf(w.base) }

// Clone returns an owning *Dense of the view's shape.
func (w *VectorAsMatrixView) Clone() Matrix { return mustMaterialize(w) }

// NewInstance returns a view over a fresh zero vector. The requested shape
// selects the orientation (1×N → row, N×1 → column; 1×1 keeps the receiver's).
// Errors: ErrInvalidDimensions, ErrNotVectorShape.
func (w *VectorAsMatrixView) NewInstance(rows, cols int) (Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s.%s(%d,%d): %w", viewVecAsMatrix, ctxInstance, rows, cols, ErrInvalidDimensions)
	}
	var asRow bool
	switch {
	case rows == 1 && cols == 1:
		asRow = w.asRow
	case rows == 1:
		asRow = true
	case cols == 1:
		asRow = false
	default:
		return nil, fmt.Errorf("%s.%s(%d,%d): %w", viewVecAsMatrix, ctxInstance, rows, cols, ErrNotVectorShape)
	}
	v, _ := NewVecDense(rows * cols) // rows*cols ≥ 1

	return &VectorAsMatrixView{base: v, asRow: asRow}, nil
}

// ReadOnly forwards to the base vector.
func (w *VectorAsMatrixView) ReadOnly() bool { return isReadOnly(w.base) }

// String renders the view in the text notation.
func (w *VectorAsMatrixView) String() string { return Format(w, DefaultPrecision) }

// ---------- MatrixAsVectorView ----------

// MatrixAsVectorView presents the single row (or single column) of a Matrix as a Vector.
type MatrixAsVectorView struct {
	base  Matrix
	asRow bool
	dim   int
}

var _ Vector = (*MatrixAsVectorView)(nil)

// NewMatrixAsVectorView wraps m, which must have exactly one row or one column.
// A 1×1 matrix is treated as a row. The dimension is fixed here.
// Errors: ErrNilMatrix, ErrNotVectorShape.
func NewMatrixAsVectorView(m Matrix) (*MatrixAsVectorView, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("New%s: %w", viewMatAsVector, err)
	}
	switch {
	case m.Rows() == 1:
		return &MatrixAsVectorView{base: m, asRow: true, dim: m.Cols()}, nil
	case m.Cols() == 1:
		return &MatrixAsVectorView{base: m, asRow: false, dim: m.Rows()}, nil
	default:
		return nil, fmt.Errorf("New%s(%dx%d): %w", viewMatAsVector, m.Rows(), m.Cols(), ErrNotVectorShape)
	}
}

// Base returns the wrapped matrix.
func (v *MatrixAsVectorView) Base() Matrix { return v.base }

// IsRow reports the orientation.
func (v *MatrixAsVectorView) IsRow() bool { return v.asRow }

// Dim returns the dimension fixed at construction.
func (v *MatrixAsVectorView) Dim() int { return v.dim }

// cell maps vector index i to matrix coordinates.
func (v *MatrixAsVectorView) cell(i int) (int, int) {
	if v.asRow {
		return 0, i
	}

	return i, 0
}

// At returns base(0, i) for a row and base(i, 0) for a column.
func (v *MatrixAsVectorView) At(i int) (float64, error) {
	if i < 0 || i >= v.dim {
		return 0, fmt.Errorf("%s.%s(%d): %w", viewMatAsVector, ctxAt, i, ErrOutOfRange)
	}
	r, c := v.cell(i)
	x, err := v.base.At(r, c)
	if err != nil {
		return 0, fmt.Errorf("%s.%s(%d): %w", viewMatAsVector, ctxAt, i, err)
	}

	return x, nil
}

// Set writes through to the matrix.
func (v *MatrixAsVectorView) Set(i int, x float64) error {
	if i < 0 || i >= v.dim {
		return fmt.Errorf("%s.%s(%d): %w", viewMatAsVector, ctxSet, i, ErrOutOfRange)
	}
	r, c := v.cell(i)
	if err := v.base.Set(r, c, x); err != nil {
		return fmt.Errorf("%s.%s(%d): %w", viewMatAsVector, ctxSet, i, err)
	}

	return nil
}

func (v *MatrixAsVectorView) store(i int, x float64) error {
	if i < 0 || i >= v.dim {
		return fmt.Errorf("%s.%s(%d): %w", viewMatAsVector, ctxSet, i, ErrOutOfRange)
	}
	r, c := v.cell(i)
	if err := storeAt(v.base, r, c, x); err != nil {
		return fmt.Errorf("%s.%s(%d): %w", viewMatAsVector, ctxSet, i, err)
	}

	return nil
}

func (v *MatrixAsVectorView) validatesNaNInf() bool { return policyOf(v.base) }

// Clone returns an owning *VecDense holding the visible values.
func (v *MatrixAsVectorView) Clone() Vector {
	out, err := materializeVec(v)
	if err != nil {
		panic(fmt.Sprintf("matrix: view base changed shape during Clone: %v", err))
	}

	return out
}

// NewInstance returns a view of the same orientation over a fresh Dense.
// Errors: ErrInvalidDimensions.
func (v *MatrixAsVectorView) NewInstance(dim int) (Vector, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("%s.%s(%d): %w", viewMatAsVector, ctxInstance, dim, ErrInvalidDimensions)
	}
	var d *Dense
	if v.asRow {
		d, _ = NewDense(1, dim)
	} else {
		d, _ = NewDense(dim, 1)
	}

	return &MatrixAsVectorView{base: d, asRow: v.asRow, dim: dim}, nil
}

// ReadOnly forwards to the base matrix.
func (v *MatrixAsVectorView) ReadOnly() bool { return isReadOnly(v.base) }

// String renders the view as space-separated values.
func (v *MatrixAsVectorView) String() string { return FormatVec(v, DefaultPrecision) }
