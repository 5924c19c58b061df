// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Row-level kernels shared by Mat2/Mat3/Mat4. Each applies one vector
//     operation (passed as a method expression such as vector.Vec3[T].Add)
//     to every row, so the elementwise rule lives only in package vector.
//
// Determinism:
//   - Fixed row order 0..n-1; dst is updated in place, no allocations.

package matrix

// ewRows computes dst[i] = op(dst[i], rhs[i]) for every row.
func ewRows[R any](dst, rhs []R, op func(R, R) R) {
	for i := range dst {
		dst[i] = op(dst[i], rhs[i])
	}
}

// ewRowsScalar computes dst[i] = op(dst[i], s) for every row.
func ewRowsScalar[R, S any](dst []R, s S, op func(R, S) R) {
	for i := range dst {
		dst[i] = op(dst[i], s)
	}
}
