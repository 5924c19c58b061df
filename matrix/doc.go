// SPDX-License-Identifier: MIT

// Package matrix provides fixed-size square matrices (Mat2, Mat3, Mat4)
// built as row-major arrays of vector rows.
//
// What & Why:
//
//	A MatN[T] is [N]vector.VecN[T]. m[i] is a row, m[i][j] an element, and
//	every arithmetic method delegates row by row to the matching vector
//	operation, so matrices share one elementwise rule with vectors.
//
// Scope:
//
//   - Mul and Div are elementwise (Hadamard), not the linear-algebra
//     product. There is no transpose, determinant or inverse.
//   - Pairwise operations accept only a matrix of the same dimension.
//   - The zero value is the all-zero matrix; there is no identity helper.
//
// Complexity: O(N²) per operation, allocation-free.
package matrix
