// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/lvgeom/vector"

// Mat2 is a 2×2 row-major matrix.
type Mat2[T vector.Number] [2]vector.Vec2[T]

// Mat3 is a 3×3 row-major matrix.
type Mat3[T vector.Number] [3]vector.Vec3[T]

// Mat4 is a 4×4 row-major matrix.
type Mat4[T vector.Number] [4]vector.Vec4[T]

// New2 builds a Mat2 from its elements in row-major order.
func New2[T vector.Number](
	m00, m01,
	m10, m11 T,
) Mat2[T] {
	return Mat2[T]{
		{m00, m01},
		{m10, m11},
	}
}

// New3 builds a Mat3 from its elements in row-major order.
func New3[T vector.Number](
	m00, m01, m02,
	m10, m11, m12,
	m20, m21, m22 T,
) Mat3[T] {
	return Mat3[T]{
		{m00, m01, m02},
		{m10, m11, m12},
		{m20, m21, m22},
	}
}

// New4 builds a Mat4 from its elements in row-major order.
func New4[T vector.Number](
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 T,
) Mat4[T] {
	return Mat4[T]{
		{m00, m01, m02, m03},
		{m10, m11, m12, m13},
		{m20, m21, m22, m23},
		{m30, m31, m32, m33},
	}
}

// FromRows2 stacks two row vectors.
func FromRows2[T vector.Number](r0, r1 vector.Vec2[T]) Mat2[T] {
	return Mat2[T]{r0, r1}
}

// FromRows3 stacks three row vectors.
func FromRows3[T vector.Number](r0, r1, r2 vector.Vec3[T]) Mat3[T] {
	return Mat3[T]{r0, r1, r2}
}

// FromRows4 stacks four row vectors.
func FromRows4[T vector.Number](r0, r1, r2, r3 vector.Vec4[T]) Mat4[T] {
	return Mat4[T]{r0, r1, r2, r3}
}

// All2 returns a Mat2 with every element set to v.
func All2[T vector.Number](v T) Mat2[T] {
	r := vector.All2(v)
	return Mat2[T]{r, r}
}

// All3 returns a Mat3 with every element set to v.
func All3[T vector.Number](v T) Mat3[T] {
	r := vector.All3(v)
	return Mat3[T]{r, r, r}
}

// All4 returns a Mat4 with every element set to v.
func All4[T vector.Number](v T) Mat4[T] {
	r := vector.All4(v)
	return Mat4[T]{r, r, r, r}
}
