// Package linalg is a dense linear-algebra library built around live views:
// matrices and vectors that are projections of other matrices and vectors and
// read and write straight through to them.
//
// What is in the box?
//
//   - Owning storage: matrix.Dense and matrix.VecDense
//   - Four views: transpose, submatrix (one row and one column removed),
//     vector-as-matrix (1×N or N×1) and matrix-as-vector
//   - One algorithm layer over all of them: add, subtract, scale, multiply,
//     determinant (pivoted elimination), inverse (adjugate), dot and cross
//     products, norm, normalize, homogeneous conversion, tolerant equality
//   - A text notation: "1 2 3 | 4 5 6" parses into a 2×3 matrix
//
// Under the hood, everything is organized under two packages:
//
//	matrix/      contracts, storage, views, algorithms, notation
//	converters/  snapshot and live adapters to gonum's mat package
//
// Quick example:
//
//	m, _ := matrix.ParseMatrix("1 2 3 | 4 5 6")
//	t, _ := matrix.Transpose(m, true) // 3×2, no copy
//	_ = t.Set(2, 1, 9)                // m is now [1 2 3; 4 5 9]
//
// Runnable programs live under examples/.
package linalg
