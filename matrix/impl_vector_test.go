// Package matrix_test contains unit tests for VecDense.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestNewVecDense(t *testing.T) {
	v, err := matrix.NewVecDense(3)
	require.NoError(t, err)
	require.Equal(t, 3, v.Dim())
	CompareVec(t, []float64{0, 0, 0}, v, 0)

	_, err = matrix.NewVecDense(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewVector()
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestVecDenseAtSet(t *testing.T) {
	v := MustVec(t, 1, 2, 3)
	require.NoError(t, v.Set(1, 20))
	require.Equal(t, 20.0, MustVecAt(t, v, 1))

	_, err := v.At(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, v.Set(-1, 0), matrix.ErrOutOfRange)
	require.ErrorIs(t, v.Set(0, math.NaN()), matrix.ErrNaNInf)
}

func TestNewVectorFrom_CopyVersusShallow(t *testing.T) {
	buf := []float64{1, 2, 3}

	deep, err := matrix.NewVectorFrom(buf)
	require.NoError(t, err)
	buf[0] = 10
	assert.Equal(t, 1.0, MustVecAt(t, deep, 0), "deep copy ignores later writes to the buffer")

	shallow, err := matrix.NewVectorFrom(buf, matrix.WithShallowCopy())
	require.NoError(t, err)
	buf[1] = 20
	assert.Equal(t, 20.0, MustVecAt(t, shallow, 1))
	require.NoError(t, shallow.Set(2, 30))
	assert.Equal(t, 30.0, buf[2])
}

func TestVecDenseReadOnly(t *testing.T) {
	buf := []float64{1, 2, 3}
	ro, err := matrix.NewVectorFrom(buf, matrix.WithShallowCopy(), matrix.WithReadOnly())
	require.NoError(t, err)
	require.True(t, ro.ReadOnly())

	require.ErrorIs(t, ro.Set(0, 5), matrix.ErrReadOnly)
	require.Equal(t, 1.0, buf[0])

	// The owner of the buffer can still change it; the vector reflects that.
	buf[0] = 7
	require.Equal(t, 7.0, MustVecAt(t, ro, 0))

	c := ro.Clone()
	require.NoError(t, c.Set(0, 9), "clones are writable")
	require.Equal(t, 7.0, buf[0])

	n, err := ro.NewInstance(2)
	require.NoError(t, err)
	require.NoError(t, n.Set(1, 1), "fresh instances are writable")
}

func TestVecDenseNewInstance(t *testing.T) {
	v := MustVec(t, 1, 2)
	n, err := v.NewInstance(4)
	require.NoError(t, err)
	_, ok := n.(*matrix.VecDense)
	require.True(t, ok)
	CompareVec(t, []float64{0, 0, 0, 0}, n, 0)

	_, err = v.NewInstance(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestVecDenseHashAndString(t *testing.T) {
	a := MustVec(t, 1, 0, 2.5)
	b := MustVec(t, 1, math.Copysign(0, -1), 2.5)
	require.True(t, matrix.EqualVec(a, b))
	require.Equal(t, a.Hash(), b.Hash())
	require.NotEqual(t, a.Hash(), MustVec(t, 1, 0).Hash())

	require.Equal(t, "1.000 0.000 2.500", a.String())
}
