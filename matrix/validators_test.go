// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	// helper matrix implementation
	zeros := func(r, c int) matrix.Matrix {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(2, 2), matrix.ErrNilMatrix},
		{"second nil", zeros(2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", zeros(2, 3), zeros(2, 3), nil},
		{"row mismatch", zeros(2, 3), zeros(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(2, 3), zeros(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
			// The composite form agrees on every case.
			err = matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

// TestValidateSquare covers square, rectangular and nil inputs.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateSquare(MustDense(t, 3, 3)))
	require.ErrorIs(t, matrix.ValidateSquare(MustDense(t, 2, 3)), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquareNonNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquareNonNil(MustDense(t, 1, 2)), matrix.ErrNonSquare)
}

// TestValidateMulCompatible covers inner-dimension agreement.
func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 5)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, MustDense(t, 2, 3)), matrix.ErrNilMatrix)
}

// TestValidateVectorShapes covers the vector validators.
func TestValidateVectorShapes(t *testing.T) {
	t.Parallel()

	a, b := MustVec(t, 1, 2, 3), MustVec(t, 1, 2)
	require.NoError(t, matrix.ValidateBinarySameDim(a, a))
	require.ErrorIs(t, matrix.ValidateBinarySameDim(a, b), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateBinarySameDim(nil, b), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecNotNil(nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateDim(a, 3))
	require.ErrorIs(t, matrix.ValidateDim(b, 3), matrix.ErrBadShape)
	require.ErrorIs(t, matrix.ValidateDim(nil, 3), matrix.ErrNilMatrix)
}

// TestValidateWritable follows read-only storage through a view chain.
func TestValidateWritable(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateWritable(MustDense(t, 1, 1)))
	require.NoError(t, matrix.ValidateWritable(MustVec(t, 1)))

	ro, err := matrix.NewVectorFrom([]float64{1, 2}, matrix.WithReadOnly())
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateWritable(ro), matrix.ErrReadOnly)

	col, err := matrix.ToColumnMatrix(ro, true)
	require.NoError(t, err)
	tv, err := matrix.Transpose(col, true)
	require.NoError(t, err)
	back, err := matrix.ToVector(tv, true)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateWritable(tv), matrix.ErrReadOnly)
	require.ErrorIs(t, matrix.ValidateWritable(back), matrix.ErrReadOnly)

	// A snapshot of a read-only vector is writable again.
	snap, err := matrix.ToColumnMatrix(ro, false)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateWritable(snap))
}

// TestValidateFiniteAndIsZero covers the scalar checks.
func TestValidateFiniteAndIsZero(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateFinite(1e308))
	require.ErrorIs(t, matrix.ValidateFinite(math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateFinite(math.Inf(1)), matrix.ErrNaNInf)

	require.True(t, matrix.IsZero(0, 0))
	require.True(t, matrix.IsZero(-1e-31, matrix.DefaultEpsilon))
	require.True(t, matrix.IsZero(1e-30, matrix.DefaultEpsilon), "the bound is inclusive")
	require.False(t, matrix.IsZero(2e-30, matrix.DefaultEpsilon))
}
