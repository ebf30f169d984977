// Package converters provides two-way adapters between the matrix package and
// gonum's mat package:
//   - snapshots: ToGonum / FromGonum and ToVecDense / FromVecDense copy elements;
//   - live adapters: AsGonum presents a matrix.Matrix (views included) as a
//     read-only mat.Matrix, and MutableView presents any mat.Mutable as a
//     matrix.Matrix whose writes land in the gonum storage.
//
// Use converters to hand lin-alg data to gonum's factorizations or to run the
// matrix algorithm layer over buffers gonum already owns.
package converters
