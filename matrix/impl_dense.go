// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row slices over one buffer) & safe accessors.
//
// Purpose:
//   - Provide the owning matrix: a rectangular block of float64 exclusively held by the instance,
//     or, in shallow mode, an alias of caller-provided rows.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support no-copy windows (MatrixView) for row/column exposure.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Algorithms take fast-paths on *Dense (direct row slices); everything else goes through At/Set.
//   - Use RowVector/ColVector to expose one row/column as a live Vector without copying.
//   - DefaultValidateNaNInf is on; insert only finite values unless you explicitly disable it.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); View: O(1); Hash: O(r*c).

package matrix

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"          // method tag used in error wrappers
	ctxSet      = "Set"         // method tag used in error wrappers
	ctxApply    = "Apply"       // method tag used in error wrappers
	ctxView     = "View"        // ctor tag for Dense.View
	ctxNewFrom  = "NewDenseFrom" // ctor tag for NewDenseFrom
	ctxRowVec   = "RowVector"   // ctor tag for Dense.RowVector
	ctxColVec   = "ColVector"   // ctor tag for Dense.ColVector
	ctxInstance = "NewInstance" // tag for NewInstance on every kind
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is the owning matrix.
//   - r,c hold dimensions (rows, cols).
//   - data holds r row slices of length ≥ c. Owned storage slices one flat
//     buffer; shallow storage aliases the caller's rows.
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
type Dense struct {
	r, c           int         // row and column counts (zero only for internal zero-OK constructors)
	data           [][]float64 // row storage (len == r; len(data[i]) == c)
	validateNaNInf bool        // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// allocRows returns r row slices of length c carved out of one zero-filled buffer.
// Complexity: Time O(r*c), Space O(r*c).
func allocRows(r, c int) [][]float64 {
	buf := make([]float64, r*c)
	rows := make([][]float64, r)
	for i := 0; i < r; i++ {
		rows[i] = buf[i*c : (i+1)*c : (i+1)*c] // cap-limited so append can never bleed into the next row
	}

	return rows
}

// NewDense creates an r×c zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and default numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate one zero-filled buffer sliced into rows.
//   - Stage 3: resolve numeric policy from options.
//
// Inputs:
//   - rows, cols: positive dimensions.
//   - opts: WithValidateNaNInf / WithNoValidateNaNInf (storage flags are ignored).
//
// Returns:
//   - *Dense: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Prefer this ctor for public creation. For windows, use View().
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           allocRows(rows, cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// newDenseZeroOK is an internal constructor that allows rows==0 or cols==0.
// Used by Clone of degenerate views (e.g. the submatrix of a 1×N matrix).
func newDenseZeroOK(rows, cols int, validateNaNInf bool) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           allocRows(rows, cols),
		validateNaNInf: validateNaNInf,
	}, nil
}

// NewDenseFrom builds an r×c matrix from a two-level row sequence.
// MAIN DESCRIPTION:
//   - Deep mode (default): copy data; rows or elements missing from data are zero.
//   - Shallow mode (WithShallowCopy): alias the caller's rows; writes propagate both ways.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0.
//   - Stage 2 (shallow): require len(data) ≥ rows and len(data[i]) ≥ cols for i<rows, then alias.
//   - Stage 2 (deep): allocate and copy the overlapping region.
//   - Stage 3: enforce the numeric policy over the ingested values.
//
// Errors:
//   - ErrInvalidDimensions, ErrStorageTooSmall (shallow only), ErrNaNInf (policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) deep / O(r) shallow.
//
// Notes:
//   - In shallow mode each row is resliced to exactly cols elements; extra
//     trailing elements of the caller's rows stay untouched and unreachable.
func NewDenseFrom(rows, cols int, data [][]float64, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	var storage [][]float64
	if o.shallowCopy {
		if len(data) < rows {
			return nil, fmt.Errorf("%s: %d rows < %d: %w", ctxNewFrom, len(data), rows, ErrStorageTooSmall)
		}
		storage = make([][]float64, rows)
		for i := 0; i < rows; i++ {
			if len(data[i]) < cols {
				return nil, fmt.Errorf("%s: row %d has %d elements < %d: %w", ctxNewFrom, i, len(data[i]), cols, ErrStorageTooSmall)
			}
			storage[i] = data[i][:cols]
		}
	} else {
		storage = allocRows(rows, cols)
		for i := 0; i < rows && i < len(data); i++ {
			copy(storage[i], data[i]) // copies min(cols, len(data[i])); the rest stays zero
		}
	}

	if o.validateNaNInf {
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				if err := ValidateFinite(storage[i][j]); err != nil {
					return nil, denseErrorf(ctxNewFrom, i, j, err)
				}
			}
		}
	}

	return &Dense{r: rows, c: cols, data: storage, validateNaNInf: o.validateNaNInf}, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// inBounds reports whether (row, col) addresses an element.
func (m *Dense) inBounds(row, col int) bool {
	return row >= 0 && row < m.r && col >= 0 && col < m.c
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns the sentinel wrapped with coordinates.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	if !m.inBounds(row, col) {
		return 0, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[row][col], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers (policy ON).
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - In shallow mode the write lands in the caller's row slice.
func (m *Dense) Set(row, col int, v float64) error {
	if !m.inBounds(row, col) {
		return denseErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	if m.validateNaNInf {
		if err := ValidateFinite(v); err != nil {
			return denseErrorf(ctxSet, row, col, err)
		}
	}
	m.data[row][col] = v

	return nil
}

// store writes v at (row, col) without the numeric policy (kernel write path).
func (m *Dense) store(row, col int, v float64) error {
	if !m.inBounds(row, col) {
		return denseErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	m.data[row][col] = v

	return nil
}

func (m *Dense) validatesNaNInf() bool { return m.validateNaNInf }

// Clone returns a deep copy (new owned buffer, same numeric policy), even
// when m aliases caller storage.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Clone() Matrix {
	return m.cloneDense()
}

// cloneDense is Clone with the concrete return type.
func (m *Dense) cloneDense() *Dense {
	rows := allocRows(m.r, m.c)
	for i := 0; i < m.r; i++ {
		copy(rows[i], m.data[i])
	}

	return &Dense{r: m.r, c: m.c, data: rows, validateNaNInf: m.validateNaNInf}
}

// NewInstance returns a zero-filled *Dense of the requested shape with the same numeric policy.
// Errors: ErrInvalidDimensions.
// Complexity: O(rows*cols).
func (m *Dense) NewInstance(rows, cols int) (Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("Dense.%s(%d,%d): %w", ctxInstance, rows, cols, ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: allocRows(rows, cols), validateNaNInf: m.validateNaNInf}, nil
}

// String renders the matrix in the text notation with DefaultPrecision digits.
// Complexity: O(r*c).
func (m *Dense) String() string {
	return Format(m, DefaultPrecision)
}

// Hash returns a value-based hash consistent with Equal: matrices that are
// Equal hash identically. −0 is folded into +0 because the two compare equal.
// Complexity: O(r*c).
func (m *Dense) Hash() uint64 {
	h := fnv.New64a()
	var word [8]byte
	binary.LittleEndian.PutUint64(word[:], uint64(m.r))
	_, _ = h.Write(word[:])
	binary.LittleEndian.PutUint64(word[:], uint64(m.c))
	_, _ = h.Write(word[:])
	m.Do(func(_, _ int, v float64) bool {
		if v == 0 {
			v = 0 // fold −0
		}
		binary.LittleEndian.PutUint64(word[:], math.Float64bits(v))
		_, _ = h.Write(word[:])

		return true
	})

	return h.Sum64()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j int
	for i = 0; i < m.r; i++ {
		row := m.data[i]
		for j = 0; j < m.c; j++ {
			if !f(i, j, row[j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
// MAIN DESCRIPTION:
//   - In-place map with policy enforcement and deterministic order.
//
// Behavior highlights:
//   - Deterministic row-major order; no extra allocations.
//   - Respects validateNaNInf (rejects NaN/±Inf when enabled).
//   - Early error aborts; elements written before the error remain updated.
//
// Errors:
//   - ErrNaNInf when the transformer produced a non-finite value (policy ON).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j int
	var nv float64
	for i = 0; i < m.r; i++ {
		row := m.data[i]
		for j = 0; j < m.c; j++ {
			nv = f(i, j, row[j])
			if m.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			row[j] = nv
		}
	}

	return nil
}

// View creates a no-copy window [r0:r0+rows, c0:c0+cols) over the same storage.
// MAIN DESCRIPTION:
//   - Lightweight rectangular window referencing the base rows (shared storage).
//
// Behavior highlights:
//   - Writes via the window reflect in the base; numeric policy is inherited.
//
// Errors:
//   - ErrBadShape when the window is empty or does not fit the base.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Combine with ToVector(view, true) to obtain a live row/column vector (see RowVector).
func (m *Dense) View(r0, c0, rows, cols int) (*MatrixView, error) {
	if r0 < 0 || c0 < 0 || rows <= 0 || cols <= 0 || r0+rows > m.r || c0+cols > m.c {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, rows, cols, ErrBadShape)
	}

	return &MatrixView{base: m, r0: r0, c0: c0, r: rows, c: cols}, nil
}

// RowVector exposes row i as a live Vector (no copy): writes through the
// vector land in m, and writes to m are visible through the vector.
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) RowVector(i int) (Vector, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRowVec, i, 0, ErrOutOfRange)
	}
	w, _ := m.View(i, 0, 1, m.c) // in bounds by the check above

	return NewMatrixAsVectorView(w)
}

// ColVector exposes column j as a live Vector (no copy).
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) ColVector(j int) (Vector, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxColVec, 0, j, ErrOutOfRange)
	}
	w, _ := m.View(0, j, m.r, 1)

	return NewMatrixAsVectorView(w)
}

// MatrixView is a non-owning rectangular window into a Dense (shared storage).
// It satisfies Matrix, so every kernel accepts it.
type MatrixView struct {
	base *Dense // underlying storage owner
	r0   int    // top-left row offset in base
	c0   int    // top-left col offset in base
	r    int    // view height
	c    int    // view width
}

var _ Matrix = (*MatrixView)(nil)

// Rows returns the number of rows in the view.
func (v *MatrixView) Rows() int { return v.r }

// Cols returns the number of columns in the view.
func (v *MatrixView) Cols() int { return v.c }

// At reads element (i,j) in the view or returns ErrOutOfRange.
func (v *MatrixView) At(i, j int) (float64, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return 0, fmt.Errorf("MatrixView.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return v.base.data[v.r0+i][v.c0+j], nil
}

// Set writes element (i,j) in the view, honoring the base numeric policy.
func (v *MatrixView) Set(i, j int, val float64) error {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if v.base.validateNaNInf && (math.IsNaN(val) || math.IsInf(val, 0)) {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrNaNInf)
	}
	v.base.data[v.r0+i][v.c0+j] = val

	return nil
}

func (v *MatrixView) store(i, j int, val float64) error {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	v.base.data[v.r0+i][v.c0+j] = val

	return nil
}

func (v *MatrixView) validatesNaNInf() bool { return v.base.validateNaNInf }

// Clone materializes the window into an owning *Dense.
func (v *MatrixView) Clone() Matrix {
	out := &Dense{r: v.r, c: v.c, data: allocRows(v.r, v.c), validateNaNInf: v.base.validateNaNInf}
	for i := 0; i < v.r; i++ {
		copy(out.data[i], v.base.data[v.r0+i][v.c0:v.c0+v.c])
	}

	return out
}

// NewInstance returns a zero-filled *Dense (a window has no meaning without a base).
func (v *MatrixView) NewInstance(rows, cols int) (Matrix, error) {
	return v.base.NewInstance(rows, cols)
}

// String renders the window in the text notation.
func (v *MatrixView) String() string { return Format(v, DefaultPrecision) }
