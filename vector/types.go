// SPDX-License-Identifier: MIT

package vector

import "golang.org/x/exp/constraints"

// Number is the element constraint for every vector type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float restricts geometric operations (Length, Normalize, rotations)
// to floating-point vectors.
type Float interface {
	constraints.Float
}

// Vec2 is a 2-component vector (x, y).
type Vec2[T Number] [2]T

// Vec3 is a 3-component vector (x, y, z).
type Vec3[T Number] [3]T

// Vec4 is a 4-component vector (x, y, z, w).
type Vec4[T Number] [4]T

// New2 builds a Vec2 from its components.
func New2[T Number](x, y T) Vec2[T] {
	return Vec2[T]{x, y}
}

// New3 builds a Vec3 from its components.
func New3[T Number](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

// New4 builds a Vec4 from its components.
func New4[T Number](x, y, z, w T) Vec4[T] {
	return Vec4[T]{x, y, z, w}
}

// All2 returns a Vec2 with every component set to v.
func All2[T Number](v T) Vec2[T] {
	return Vec2[T]{v, v}
}

// All3 returns a Vec3 with every component set to v.
func All3[T Number](v T) Vec3[T] {
	return Vec3[T]{v, v, v}
}

// All4 returns a Vec4 with every component set to v.
func All4[T Number](v T) Vec4[T] {
	return Vec4[T]{v, v, v, v}
}
