// SPDX-License-Identifier: MIT
// Package: vector
//
// Float-only geometry. These are package functions rather than methods
// because a method cannot narrow the element constraint of its receiver;
// the Float constraint makes integer callers a compile-time error.
//
// Zero-length input to NormalizeN follows IEEE-754: 0/0 yields NaN in
// every component. No error is reported.

package vector

import "math"

// sqrt computes √x in float64 and converts back to T.
func sqrt[T Float](x T) T {
	return T(math.Sqrt(float64(x)))
}

// SquareLength2 returns v⋅v.
func SquareLength2[T Float](v Vec2[T]) T { return v.Dot(v) }

// SquareLength3 returns v⋅v.
func SquareLength3[T Float](v Vec3[T]) T { return v.Dot(v) }

// SquareLength4 returns v⋅v.
func SquareLength4[T Float](v Vec4[T]) T { return v.Dot(v) }

// Length2 returns the Euclidean length of v.
func Length2[T Float](v Vec2[T]) T { return sqrt(SquareLength2(v)) }

// Length3 returns the Euclidean length of v.
func Length3[T Float](v Vec3[T]) T { return sqrt(SquareLength3(v)) }

// Length4 returns the Euclidean length of v.
func Length4[T Float](v Vec4[T]) T { return sqrt(SquareLength4(v)) }

// Normalize2 returns v divided by its length.
func Normalize2[T Float](v Vec2[T]) Vec2[T] { return v.DivScalar(Length2(v)) }

// Normalize3 returns v divided by its length.
func Normalize3[T Float](v Vec3[T]) Vec3[T] { return v.DivScalar(Length3(v)) }

// Normalize4 returns v divided by its length.
func Normalize4[T Float](v Vec4[T]) Vec4[T] { return v.DivScalar(Length4(v)) }

// RotateLeft90 rotates v by +90° (counter-clockwise): (x, y) → (-y, x).
func RotateLeft90[T Float](v Vec2[T]) Vec2[T] {
	return Vec2[T]{-v[1], v[0]}
}

// RotateRight90 rotates v by -90° (clockwise): (x, y) → (y, -x).
func RotateRight90[T Float](v Vec2[T]) Vec2[T] {
	return Vec2[T]{v[1], -v[0]}
}
