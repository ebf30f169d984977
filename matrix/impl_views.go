// SPDX-License-Identifier: MIT

// Package matrix - live views over another Matrix: TransposeView and SubmatrixView.
//
// Purpose:
//   - Expose a transformed projection of a base Matrix without allocating element storage.
//   - Read and write through to the base: a Set on the view is a Set on the base.
//   - Compose arbitrarily (a transpose of a submatrix of a transpose ...); each
//     layer only remaps indices and delegates.
//
// Lifetime contract:
//   - The base must outlive the view and must not change shape while the view is in use.
//     Views cache nothing but their index maps; they do not re-check the base shape.
//
// Complexity quicksheet:
//   - At/Set: O(1) per layer; Clone: O(r*c) reads through the chain; constructors: O(r+c).

package matrix

import "fmt"

// View names used in error wrappers.
const (
	viewTranspose = "TransposeView"
	viewSubmatrix = "SubmatrixView"
)

// viewErrorf wraps err with the view name, the method and the callsite indices.
func viewErrorf(view, method string, i, j int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", view, method, i, j, err)
}

// materialize copies any Matrix into a fresh owning *Dense by reading through At.
// The copy keeps the numeric policy of the storage behind m. Zero-sized shapes
// (degenerate submatrix views) are allowed.
// Complexity: O(r*c).
func materialize(m Matrix) (*Dense, error) {
	rows, cols := m.Rows(), m.Cols()
	out, err := newDenseZeroOK(rows, cols, policyOf(m))
	if err != nil {
		return nil, err
	}
	if src, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			copy(out.data[i], src.data[i])
		}

		return out, nil
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i][j] = v
		}
	}

	return out, nil
}

// mustMaterialize is materialize for Clone: views read only in-bounds cells,
// so an error here means the base broke the lifetime contract.
func mustMaterialize(m Matrix) *Dense {
	out, err := materialize(m)
	if err != nil {
		panic(fmt.Sprintf("matrix: view base changed shape during Clone: %v", err))
	}

	return out
}

// ---------- TransposeView ----------

// TransposeView presents its base with rows and columns swapped.
// Element (i, j) of the view is element (j, i) of the base.
type TransposeView struct {
	base Matrix
}

var _ Matrix = (*TransposeView)(nil)

// NewTransposeView wraps m in a live transpose.
// Errors: ErrNilMatrix.
// Complexity: O(1).
func NewTransposeView(m Matrix) (*TransposeView, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("New%s: %w", viewTranspose, err)
	}

	return &TransposeView{base: m}, nil
}

// Base returns the wrapped matrix.
func (t *TransposeView) Base() Matrix { return t.base }

// Rows returns base.Cols().
func (t *TransposeView) Rows() int { return t.base.Cols() }

// Cols returns base.Rows().
func (t *TransposeView) Cols() int { return t.base.Rows() }

// At returns base(j, i).
func (t *TransposeView) At(i, j int) (float64, error) {
	if i < 0 || i >= t.Rows() || j < 0 || j >= t.Cols() {
		return 0, viewErrorf(viewTranspose, ctxAt, i, j, ErrOutOfRange)
	}
	v, err := t.base.At(j, i)
	if err != nil {
		return 0, viewErrorf(viewTranspose, ctxAt, i, j, err)
	}

	return v, nil
}

// Set writes base(j, i).
func (t *TransposeView) Set(i, j int, v float64) error {
	if i < 0 || i >= t.Rows() || j < 0 || j >= t.Cols() {
		return viewErrorf(viewTranspose, ctxSet, i, j, ErrOutOfRange)
	}
	if err := t.base.Set(j, i, v); err != nil {
		return viewErrorf(viewTranspose, ctxSet, i, j, err)
	}

	return nil
}

func (t *TransposeView) store(i, j int, v float64) error {
	if i < 0 || i >= t.Rows() || j < 0 || j >= t.Cols() {
		return viewErrorf(viewTranspose, ctxSet, i, j, ErrOutOfRange)
	}
	if err := storeAt(t.base, j, i, v); err != nil {
		return viewErrorf(viewTranspose, ctxSet, i, j, err)
	}

	return nil
}

func (t *TransposeView) validatesNaNInf() bool { return policyOf(t.base) }

// Clone returns an owning *Dense holding the transposed values, with the base's policy.
func (t *TransposeView) Clone() Matrix { return mustMaterialize(t) }

// NewInstance returns a TransposeView over a fresh Dense(cols, rows), so the
// returned view itself has the requested rows×cols shape.
func (t *TransposeView) NewInstance(rows, cols int) (Matrix, error) {
	d, err := NewDense(cols, rows)
	if err != nil {
		return nil, fmt.Errorf("%s.%s(%d,%d): %w", viewTranspose, ctxInstance, rows, cols, err)
	}

	return &TransposeView{base: d}, nil
}

// ReadOnly forwards to the base.
func (t *TransposeView) ReadOnly() bool { return isReadOnly(t.base) }

// String renders the view in the text notation.
func (t *TransposeView) String() string { return Format(t, DefaultPrecision) }

// ---------- SubmatrixView ----------

// SubmatrixView presents its base with one row and one column removed.
// Element (i, j) of the view is element (rowMap[i], colMap[j]) of the base.
// The maps are computed once at construction and never change.
type SubmatrixView struct {
	base   Matrix
	rowMap []int
	colMap []int
}

var _ Matrix = (*SubmatrixView)(nil)

// NewSubmatrixView wraps m so that row `row` and column `col` are skipped.
// MAIN DESCRIPTION:
//   - Builds the index maps [0..row-1, row+1..R-1] and [0..col-1, col+1..C-1].
//
// Errors:
//   - ErrNilMatrix; ErrOutOfRange when row ∉ [0,R) or col ∉ [0,C).
//
// Complexity:
//   - Time O(R+C), Space O(R+C).
//
// Notes:
//   - The view of a 1×N (or N×1) base has zero rows (or zero columns); At on it
//     always fails and Clone yields an empty *Dense.
func NewSubmatrixView(m Matrix, row, col int) (*SubmatrixView, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("New%s: %w", viewSubmatrix, err)
	}
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Cols() {
		return nil, viewErrorf("New"+viewSubmatrix, "skip", row, col, ErrOutOfRange)
	}

	return &SubmatrixView{
		base:   m,
		rowMap: skipIndex(m.Rows(), row),
		colMap: skipIndex(m.Cols(), col),
	}, nil
}

// skipIndex returns 0..n-1 without skip.
func skipIndex(n, skip int) []int {
	out := make([]int, 0, n-1)
	for k := 0; k < n; k++ {
		if k != skip {
			out = append(out, k)
		}
	}

	return out
}

// identityIndex returns 0..n-1.
func identityIndex(n int) []int {
	out := make([]int, n)
	for k := range out {
		out[k] = k
	}

	return out
}

// Base returns the wrapped matrix.
func (s *SubmatrixView) Base() Matrix { return s.base }

// Rows returns the number of mapped rows.
func (s *SubmatrixView) Rows() int { return len(s.rowMap) }

// Cols returns the number of mapped columns.
func (s *SubmatrixView) Cols() int { return len(s.colMap) }

// At returns base(rowMap[i], colMap[j]).
func (s *SubmatrixView) At(i, j int) (float64, error) {
	if i < 0 || i >= len(s.rowMap) || j < 0 || j >= len(s.colMap) {
		return 0, viewErrorf(viewSubmatrix, ctxAt, i, j, ErrOutOfRange)
	}
	v, err := s.base.At(s.rowMap[i], s.colMap[j])
	if err != nil {
		return 0, viewErrorf(viewSubmatrix, ctxAt, i, j, err)
	}

	return v, nil
}

// Set writes base(rowMap[i], colMap[j]).
func (s *SubmatrixView) Set(i, j int, v float64) error {
	if i < 0 || i >= len(s.rowMap) || j < 0 || j >= len(s.colMap) {
		return viewErrorf(viewSubmatrix, ctxSet, i, j, ErrOutOfRange)
	}
	if err := s.base.Set(s.rowMap[i], s.colMap[j], v); err != nil {
		return viewErrorf(viewSubmatrix, ctxSet, i, j, err)
	}

	return nil
}

func (s *SubmatrixView) store(i, j int, v float64) error {
	if i < 0 || i >= len(s.rowMap) || j < 0 || j >= len(s.colMap) {
		return viewErrorf(viewSubmatrix, ctxSet, i, j, ErrOutOfRange)
	}
	if err := storeAt(s.base, s.rowMap[i], s.colMap[j], v); err != nil {
		return viewErrorf(viewSubmatrix, ctxSet, i, j, err)
	}

	return nil
}

func (s *SubmatrixView) validatesNaNInf() bool { return policyOf(s.base) }

// Clone returns an owning *Dense holding the visible values.
func (s *SubmatrixView) Clone() Matrix { return mustMaterialize(s) }

// NewInstance returns a SubmatrixView with identity maps over a fresh
// Dense(rows, cols); it behaves exactly like that Dense.
func (s *SubmatrixView) NewInstance(rows, cols int) (Matrix, error) {
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s.%s(%d,%d): %w", viewSubmatrix, ctxInstance, rows, cols, err)
	}

	return &SubmatrixView{base: d, rowMap: identityIndex(rows), colMap: identityIndex(cols)}, nil
}

// ReadOnly forwards to the base.
func (s *SubmatrixView) ReadOnly() bool { return isReadOnly(s.base) }

// String renders the view in the text notation.
func (s *SubmatrixView) String() string { return Format(s, DefaultPrecision) }
