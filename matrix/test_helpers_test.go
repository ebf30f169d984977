// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels and views.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

// Tolerance used by property tests ((A+B)−B ≈ A, A·A⁻¹ ≈ I).
const propTol = 1e-6

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed matrix.Matrix to forward all methods.
//   - Stage 2: Use hide{X} in tests to force non-*Dense (fallback) paths.
//
// Notes:
//   - Useful to assert fast-path == fallback bitwise (or via AllClose).
//
// AI-Hints:
//   - Prefer wrapping ONLY the operand you want to de-opt; keep the other one *Dense to isolate path differences.
type hide struct{ matrix.Matrix }

// hideVec is hide for vectors.
type hideVec struct{ matrix.Vector }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
// Complexity: Time O(r*c) zeroing by runtime, Space O(r*c).
//
// AI-Hints:
//   - When you need non-zero data, pair with RandomFill or MustParse.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustParse BUILDS a *Dense from the text notation ("1 2 | 3 4") or fails the test.
func MustParse(t testing.TB, s string) *matrix.Dense {
	t.Helper()
	m, err := matrix.ParseMatrix(s)
	if err != nil {
		t.Fatalf("ParseMatrix(%q): %v", s, err)
	}

	return m
}

// MustVec BUILDS a *VecDense from literal values or fails the test.
func MustVec(t testing.TB, values ...float64) *matrix.VecDense {
	t.Helper()
	v, err := matrix.NewVector(values...)
	if err != nil {
		t.Fatalf("NewVector(%v): %v", values, err)
	}

	return v
}

// IdentityDense RETURNS an n×n identity Matrix (main diagonal = 1, else 0).
func IdentityDense(t testing.TB, n int) matrix.Matrix {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// RandomFill FILLS a Matrix with deterministic U(-1,1) values by seed.
// Determinism: deterministic for a fixed seed.
// Complexity: Time O(r*c), Space O(1) extra.
func RandomFill(t testing.TB, m matrix.Matrix, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	r, c := m.Rows(), m.Cols()
	var (
		i, j int     // loop iterators
		v    float64 // random value
		err  error
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = rng.Float64()*2 - 1 // 0*2-1=-1 || 1*2-1=1
			if err = m.Set(i, j, v); err != nil {
				t.Fatalf("Set RandomFill(%d,%d): %v", i, j, err)
			}
		}
	}
}

// RandFilledDense ALLOCATES an r×c *Dense filled by RandomFill.
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	RandomFill(t, m, seed)

	return m
}

// DiagDominant RETURNS a random n×n matrix with a dominant diagonal (never singular).
func DiagDominant(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	m := RandFilledDense(t, n, n, seed)
	for i := 0; i < n; i++ {
		MustSet(t, m, i, i, MustAt(t, m, i, i)+float64(n)+1)
	}

	return m
}

// MustSet writes m[i,j] or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustVecAt reads v[i] or fails the test.
func MustVecAt(t testing.TB, v matrix.Vector, i int) float64 {
	t.Helper()
	x, err := v.At(i)
	if err != nil {
		t.Fatalf("At(%d): %v", i, err)
	}

	return x
}

// CompareExact asserts m holds exactly want (shape and values).
func CompareExact(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	if len(want) != r {
		t.Fatalf("CompareExact: Rows = %d; want %d", r, len(want))
	}
	var i, j int // loop iterators
	var v float64
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			if v = MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// CompareClose asserts AllClose(a, b, rtol, atol).
func CompareClose(t testing.TB, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ beyond rtol=%g atol=%g:\n%s\nvs\n%s",
		rtol, atol, matrix.Format(a, 6), matrix.Format(b, 6))
}

// CompareVec asserts v holds want within atol.
func CompareVec(t testing.TB, want []float64, v matrix.Vector, atol float64) {
	t.Helper()
	require.Equal(t, len(want), v.Dim(), "dimension")
	for i := range want {
		require.InDeltaf(t, want[i], MustVecAt(t, v, i), atol, "component %d", i)
	}
}

// MustDims asserts the shape of m.
func MustDims(t testing.TB, m matrix.Matrix, r, c int) {
	t.Helper()
	require.Equal(t, r, m.Rows(), "rows")
	require.Equal(t, c, m.Cols(), "cols")
}
