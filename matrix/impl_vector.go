// SPDX-License-Identifier: MIT

// Package matrix - VecDense: the owning vector.
//
// Purpose:
//   - Hold a contiguous []float64, either owned (copied) or aliased (shallow mode).
//   - Optionally refuse every mutation (read-only), which in-place kernels detect up front.
//
// AI-Hints:
//   - NewVector(1, 2, 3) for literals; NewVectorFrom(buf, WithShallowCopy()) to wrap an existing buffer.
//   - Read-only vectors stay readable through every view; only writes fail.

package matrix

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
)

// vecErrorf wraps an error with a uniform VecDense context and the index.
func vecErrorf(method string, i int, err error) error {
	return fmt.Errorf("VecDense.%s(%d): %w", method, i, err)
}

// VecDense is the owning vector.
type VecDense struct {
	data           []float64 // len(data) == Dim()
	readOnly       bool      // every Set fails with ErrReadOnly
	validateNaNInf bool      // numeric guard for Set
}

var (
	_ Vector       = (*VecDense)(nil)
	_ fmt.Stringer = (*VecDense)(nil)
)

// NewVecDense returns a zero vector of the given dimension.
// Errors: ErrInvalidDimensions when dim ≤ 0.
// Complexity: O(dim).
func NewVecDense(dim int, opts ...Option) (*VecDense, error) {
	if dim <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &VecDense{data: make([]float64, dim), readOnly: o.readOnly, validateNaNInf: o.validateNaNInf}, nil
}

// NewVector copies values into a fresh writable vector.
// Errors: ErrInvalidDimensions (no values), ErrNaNInf (default numeric policy).
func NewVector(values ...float64) (*VecDense, error) {
	return NewVectorFrom(values)
}

// NewVectorFrom builds a vector over data.
// MAIN DESCRIPTION:
//   - Deep mode (default) copies data; WithShallowCopy aliases it so writes
//     propagate both ways; WithReadOnly makes every Set fail.
//
// Errors:
//   - ErrInvalidDimensions (empty data), ErrNaNInf (policy ON and a non-finite value present).
//
// Complexity:
//   - Time O(n); Space O(n) deep, O(1) shallow.
func NewVectorFrom(data []float64, opts ...Option) (*VecDense, error) {
	if len(data) == 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		for i, x := range data {
			if err := ValidateFinite(x); err != nil {
				return nil, vecErrorf("NewVectorFrom", i, err)
			}
		}
	}

	storage := data
	if !o.shallowCopy {
		storage = make([]float64, len(data))
		copy(storage, data)
	}

	return &VecDense{data: storage, readOnly: o.readOnly, validateNaNInf: o.validateNaNInf}, nil
}

// Dim returns the number of elements.
func (v *VecDense) Dim() int { return len(v.data) }

// At returns element i or ErrOutOfRange.
func (v *VecDense) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, vecErrorf(ctxAt, i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set writes element i.
// Errors: ErrOutOfRange, ErrReadOnly, ErrNaNInf (policy ON).
func (v *VecDense) Set(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return vecErrorf(ctxSet, i, ErrOutOfRange)
	}
	if v.readOnly {
		return vecErrorf(ctxSet, i, ErrReadOnly)
	}
	if v.validateNaNInf {
		if err := ValidateFinite(x); err != nil {
			return vecErrorf(ctxSet, i, err)
		}
	}
	v.data[i] = x

	return nil
}

// store writes x at i without the numeric policy; read-only storage still refuses.
func (v *VecDense) store(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return vecErrorf(ctxSet, i, ErrOutOfRange)
	}
	if v.readOnly {
		return vecErrorf(ctxSet, i, ErrReadOnly)
	}
	v.data[i] = x

	return nil
}

func (v *VecDense) validatesNaNInf() bool { return v.validateNaNInf }

// Clone returns an independent writable copy, even when v is read-only or aliased.
func (v *VecDense) Clone() Vector {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return &VecDense{data: out, validateNaNInf: v.validateNaNInf}
}

// NewInstance returns a zero writable vector of dimension dim.
// Errors: ErrInvalidDimensions.
func (v *VecDense) NewInstance(dim int) (Vector, error) {
	if dim <= 0 {
		return nil, vecErrorf(ctxInstance, dim, ErrInvalidDimensions)
	}

	return &VecDense{data: make([]float64, dim), validateNaNInf: v.validateNaNInf}, nil
}

// ReadOnly reports whether v refuses writes.
func (v *VecDense) ReadOnly() bool { return v.readOnly }

// String renders v as space-separated values with DefaultPrecision digits.
func (v *VecDense) String() string { return FormatVec(v, DefaultPrecision) }

// Hash returns a value-based hash consistent with EqualVec (−0 folded into +0).
// Complexity: O(n).
func (v *VecDense) Hash() uint64 {
	h := fnv.New64a()
	var word [8]byte
	binary.LittleEndian.PutUint64(word[:], uint64(len(v.data)))
	_, _ = h.Write(word[:])
	for _, x := range v.data {
		if x == 0 {
			x = 0
		}
		binary.LittleEndian.PutUint64(word[:], math.Float64bits(x))
		_, _ = h.Write(word[:])
	}

	return h.Sum64()
}
