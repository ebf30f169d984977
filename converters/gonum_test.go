// SPDX-License-Identifier: MIT
package converters_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/converters"
	"github.com/katalvlaran/linalg/matrix"
)

func mustParse(t *testing.T, s string) *matrix.Dense {
	t.Helper()
	m, err := matrix.ParseMatrix(s)
	require.NoError(t, err)

	return m
}

func TestToGonumFromGonum_RoundTrip(t *testing.T) {
	m := mustParse(t, "1 2 3 | 4 5 6")
	g, err := converters.ToGonum(m)
	require.NoError(t, err)
	r, c := g.Dims()
	require.Equal(t, [2]int{2, 3}, [2]int{r, c})
	assert.Equal(t, 6.0, g.At(1, 2))

	// Snapshots are detached.
	require.NoError(t, m.Set(0, 0, 100))
	assert.Equal(t, 1.0, g.At(0, 0))

	back, err := converters.FromGonum(g)
	require.NoError(t, err)
	assert.True(t, matrix.Equal(back, mustParse(t, "1 2 3 | 4 5 6")))
	g.Set(0, 1, -2)
	assert.Equal(t, 2.0, mustAt(t, back, 0, 1))

	// A gonum transpose has no raw rows and goes through At.
	tb, err := converters.FromGonum(g.T())
	require.NoError(t, err)
	assert.True(t, matrix.Equal(tb, mustParse(t, "1 4 | -2 5 | 3 6")))
}

func TestToGonum_FromView(t *testing.T) {
	m := mustParse(t, "1 2 3 | 4 5 6 | 7 8 10")
	sub, err := matrix.SubMatrix(m, 1, 1, true)
	require.NoError(t, err)
	g, err := converters.ToGonum(sub)
	require.NoError(t, err)
	assert.True(t, mat.Equal(g, mat.NewDense(2, 2, []float64{1, 3, 7, 10})))

	empty, err := matrix.SubMatrix(mustParse(t, "1 2"), 0, 0, true)
	require.NoError(t, err)
	_, err = converters.ToGonum(empty)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = converters.ToGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFromGonum_Policy(t *testing.T) {
	g := mat.NewDense(1, 2, []float64{1, math.NaN()})
	_, err := converters.FromGonum(g)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err := converters.FromGonum(g, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	assert.True(t, math.IsNaN(mustAt(t, m, 0, 1)))

	_, err = converters.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// gonum's determinant and inverse agree with the adjugate implementation.
func TestOracle_DetAndInverse(t *testing.T) {
	fixtures := []string{
		"2 3 5 | 7 11 13 | 17 19 23",
		"4 -2 1 | 3 6 -4 | 2 1 8",
		"0 1 | 1 0",
		"3 5 | 2 10",
	}
	for _, s := range fixtures {
		m := mustParse(t, s)
		g, err := converters.ToGonum(m)
		require.NoError(t, err)

		det, err := matrix.Determinant(m)
		require.NoError(t, err)
		assert.InDeltaf(t, mat.Det(g), det, 1e-9, "det of %q", s)

		inv, err := matrix.Inverse(m)
		require.NoError(t, err)
		var gi mat.Dense
		require.NoError(t, gi.Inverse(g))
		want, err := converters.FromGonum(&gi)
		require.NoError(t, err)
		ok, err := matrix.AllClose(want, inv, 0, 1e-9)
		require.NoError(t, err)
		assert.Truef(t, ok, "inverse of %q", s)
	}
}

func TestAsGonum_Live(t *testing.T) {
	m := mustParse(t, "1 2 | 3 4")
	tv, err := matrix.Transpose(m, true)
	require.NoError(t, err)
	a, err := converters.AsGonum(tv)
	require.NoError(t, err)

	assert.Equal(t, 3.0, a.At(0, 1))
	require.NoError(t, m.Set(1, 0, 30))
	assert.Equal(t, 30.0, a.At(0, 1), "reads go through to the base")
	assert.Equal(t, 30.0, a.T().At(1, 0))

	assert.InDelta(t, 1*4-2*30.0, mat.Det(a), 1e-9)

	var prod mat.Dense
	prod.Mul(a, mat.NewDense(2, 1, []float64{1, 1}))
	assert.Equal(t, 31.0, prod.At(0, 0))

	assert.Panics(t, func() { a.At(2, 0) })
	assert.Panics(t, func() { a.At(0, -1) })

	_, err = converters.AsGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMutableView(t *testing.T) {
	g := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	v, err := converters.NewMutableView(g)
	require.NoError(t, err)
	require.Same(t, g, v.Base())
	require.Equal(t, 2, v.Rows())
	require.Equal(t, 2, v.Cols())

	// The algorithm layer runs over gonum storage.
	det, err := matrix.Determinant(v)
	require.NoError(t, err)
	assert.InDelta(t, -2.0, det, 1e-12)

	tv, err := matrix.Transpose(v, true)
	require.NoError(t, err)
	require.NoError(t, tv.Set(0, 1, 30))
	assert.Equal(t, 30.0, g.At(1, 0))

	require.NoError(t, matrix.ScaleInPlace(v, 2))
	assert.Equal(t, 60.0, g.At(1, 0))

	_, err = v.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, v.Set(0, 2, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, v.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)

	c := v.Clone()
	_, ok := c.(*matrix.Dense)
	require.True(t, ok)
	require.NoError(t, c.Set(0, 0, -1))
	assert.Equal(t, 2.0, g.At(0, 0))

	n, err := v.NewInstance(3, 1)
	require.NoError(t, err)
	_, ok = n.(*converters.MutableView)
	require.True(t, ok)
	require.Equal(t, 3, n.Rows())
	_, err = v.NewInstance(0, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = converters.NewMutableView(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = converters.NewMutableView(&mat.Dense{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestMutableView_NoValidate(t *testing.T) {
	g := mat.NewDense(1, 1, nil)
	v, err := converters.NewMutableView(g, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, v.Set(0, 0, math.Inf(-1)))
	assert.True(t, math.IsInf(g.At(0, 0), -1))

	// Clone copies non-finite values even under the strict policy.
	strict, err := converters.NewMutableView(g)
	require.NoError(t, err)
	c := strict.Clone()
	assert.True(t, math.IsInf(mustAt(t, c, 0, 0), -1))
}

func TestVecDenseConversions(t *testing.T) {
	v, err := matrix.NewVector(1, 2, 3)
	require.NoError(t, err)
	g, err := converters.ToVecDense(v)
	require.NoError(t, err)
	require.Equal(t, 3, g.Len())
	assert.Equal(t, 2.0, g.AtVec(1))

	back, err := converters.FromVecDense(g, matrix.WithReadOnly())
	require.NoError(t, err)
	assert.True(t, matrix.EqualVec(v, back))
	require.ErrorIs(t, back.Set(0, 1), matrix.ErrReadOnly)

	// A gonum column view of a matrix converts too.
	col := mat.NewDense(2, 2, []float64{1, 2, 3, 4}).ColView(1)
	cv, err := converters.FromVecDense(col)
	require.NoError(t, err)
	assert.Equal(t, 4.0, mustVecAt(t, cv, 1))

	_, err = converters.ToVecDense(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = converters.FromVecDense(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func mustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

func mustVecAt(t *testing.T, v matrix.Vector, i int) float64 {
	t.Helper()
	x, err := v.At(i)
	require.NoError(t, err)

	return x
}
