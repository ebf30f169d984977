package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
)

// ExampleTranspose shows that a live transpose writes through to its base.
func ExampleTranspose() {
	m1, _ := matrix.ParseMatrix("1 2 3 | 4 5 6")
	m2, _ := matrix.Transpose(m1, true)

	fmt.Println(m2)
	_ = m2.Set(2, 1, 9)
	fmt.Println(m1)

	// Output:
	// [ 1.000 4.000 ]
	// [ 2.000 5.000 ]
	// [ 3.000 6.000 ]
	// [ 1.000 2.000 3.000 ]
	// [ 4.000 5.000 9.000 ]
}

// ExampleInverse solves 3x + 5y = 2, 2x + 10y = 8.
func ExampleInverse() {
	a, _ := matrix.ParseMatrix("3 5 | 2 10")
	r, _ := matrix.ParseMatrix("2 | 8")

	inv, _ := matrix.Inverse(a)
	v, _ := matrix.Mul(inv, r)
	fmt.Println(matrix.Format(v, 3))

	// Output:
	// [ -1.000 ]
	// [ 1.000 ]
}

// ExampleCross computes the barycentric coordinates of t in triangle abc
// from the areas of the sub-triangles.
func ExampleCross() {
	a, _ := matrix.ParseVector("1 0 0")
	b, _ := matrix.ParseVector("5 0 0")
	c, _ := matrix.ParseVector("3 8 0")
	t, _ := matrix.ParseVector("3 4 0")

	area := func(p, q, o matrix.Vector) float64 {
		u, _ := matrix.SubVec(p, o)
		w, _ := matrix.SubVec(q, o)
		x, _ := matrix.Cross(u, w)
		n, _ := matrix.Norm(x)
		return n / 2
	}

	total := area(b, c, a)
	fmt.Printf("(%.3f, %.3f, %.3f)\n", area(b, c, t)/total, area(a, c, t)/total, area(a, b, t)/total)

	// Output:
	// (0.250, 0.250, 0.500)
}

// ExampleMatVec computes the same barycentric coordinates by inverting the
// matrix whose columns are the vertices lifted to z = 1.
func ExampleMatVec() {
	m, _ := matrix.ParseMatrix("1 5 3 | 0 0 8 | 1 1 1")
	t, _ := matrix.ParseVector("3 4 1")

	inv, _ := matrix.Inverse(m)
	l, _ := matrix.MatVec(inv, t)
	fmt.Println(matrix.FormatVec(l, 3))

	// Output:
	// 0.250 0.250 0.500
}

// ExampleNormalize reflects m about n: r = 2(m·n̂)n̂ − m.
func ExampleNormalize() {
	n, _ := matrix.ParseVector("0 2")
	m, _ := matrix.ParseVector("1 1")

	nh, _ := matrix.Normalize(n)
	d, _ := matrix.Dot(m, nh)
	s, _ := matrix.ScaleVec(nh, 2*d)
	r, _ := matrix.SubVec(s, m)
	fmt.Println(matrix.FormatVec(r, 3))

	// Output:
	// -1.000 1.000
}

// ExampleDense_RowVector normalizes one row of a matrix in place.
func ExampleDense_RowVector() {
	m, _ := matrix.ParseMatrix("3 4 | 1 0")
	row, _ := m.RowVector(0)
	_ = matrix.NormalizeInPlace(row)
	fmt.Println(m)

	// Output:
	// [ 0.600 0.800 ]
	// [ 1.000 0.000 ]
}
