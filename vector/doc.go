// SPDX-License-Identifier: MIT

// Package vector provides fixed-size generic vectors (Vec2, Vec3, Vec4)
// with elementwise arithmetic and a small set of geometric operations.
//
// What & Why:
//
//	A VecN[T] is a plain array [N]T. Values are copied on every call, so a
//	vector can be shared freely between goroutines as long as nobody is
//	mutating it through Set or one of the *Assign methods.
//
// Arithmetic:
//
//   - Pairwise:  Add, Sub, Mul, Div (same dimension, same element type).
//   - Broadcast: AddScalar, SubScalar, MulScalar, DivScalar.
//   - In place:  AddAssign, ..., DivScalarAssign (pointer receiver).
//
// Every operation is a thin wrapper over two private kernels (ewZip and
// ewBroadcast) driven by a binary operator, so the per-dimension types never
// carry their own loops.
//
// Geometry:
//
//	Dot and Cross work for any Number. Length, Normalize and the 90°
//	rotations are package functions constrained to Float: calling them on
//	an integer vector does not compile.
//
// Degenerate input:
//
//	Normalize of a zero-length vector divides by zero and returns NaN
//	components. Check Length first if that matters to you.
//
// Complexity: every operation is O(N) with N ≤ 4 and allocation-free.
package vector
