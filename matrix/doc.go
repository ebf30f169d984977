// Package matrix is a dense linear-algebra library built around live views.
//
// The matrix package provides:
//
//   - Two contracts, Matrix and Vector, that every type below satisfies.
//   - Owning storage: Dense (row slices, optionally aliasing caller rows) and
//     VecDense (optionally aliased and/or read-only).
//   - Views that own no elements and read and write through to what they wrap:
//     TransposeView, SubmatrixView, VectorAsMatrixView and MatrixAsVectorView.
//     Views compose, so a transpose of a submatrix of a transposed matrix is
//     still a Matrix addressing the original elements.
//   - One algorithm layer written against the contracts: Add/Sub/Scale (in place
//     and copy-producing), Mul, Transpose, SubMatrix, Determinant (pivoted
//     elimination), Inverse (adjugate over live minors), Dot, Norm, Cosine,
//     Normalize, Cross, FromHomogeneous, CopyPart.
//   - A small text notation: ParseMatrix("1 2 | 3 4"), ParseVector("1 2 3"),
//     Format and FormatVec.
//
// Every failure is returned as an error wrapping one of the sentinels in
// errors.go; match them with errors.Is. Nothing logs.
//
// A view must not outlive what it wraps, and the wrapped object must not
// change shape while the view is in use.
//
// See the examples in this package and the programs under examples/.
package matrix
