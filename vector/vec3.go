// SPDX-License-Identifier: MIT

package vector

import "fmt"

// At returns the component at index i. It panics with ErrOutOfRange
// unless 0 ≤ i < 3.
func (v Vec3[T]) At(i int) T {
	checkIndex("Vec3.At", i, len(v))
	return v[i]
}

// Set assigns the component at index i.
func (v *Vec3[T]) Set(i int, x T) {
	checkIndex("Vec3.Set", i, len(v))
	v[i] = x
}

func (v Vec3[T]) X() T { return v[0] }
func (v Vec3[T]) Y() T { return v[1] }
func (v Vec3[T]) Z() T { return v[2] }

func (v *Vec3[T]) SetX(x T) { v[0] = x }
func (v *Vec3[T]) SetY(y T) { v[1] = y }
func (v *Vec3[T]) SetZ(z T) { v[2] = z }

// XY projects the leading two components.
func (v Vec3[T]) XY() Vec2[T] { return Vec2[T]{v[0], v[1]} }

// YZ projects the trailing two components.
func (v Vec3[T]) YZ() Vec2[T] { return Vec2[T]{v[1], v[2]} }

// Equal reports exact componentwise equality.
func (v Vec3[T]) Equal(o Vec3[T]) bool { return v == o }

// Add returns v + o componentwise.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	ewZip(v[:], o[:], opAdd[T])
	return v
}

// Sub returns v - o componentwise.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	ewZip(v[:], o[:], opSub[T])
	return v
}

// Mul returns the componentwise product.
func (v Vec3[T]) Mul(o Vec3[T]) Vec3[T] {
	ewZip(v[:], o[:], opMul[T])
	return v
}

// Div returns the componentwise quotient.
func (v Vec3[T]) Div(o Vec3[T]) Vec3[T] {
	ewZip(v[:], o[:], opDiv[T])
	return v
}

func (v Vec3[T]) AddScalar(s T) Vec3[T] {
	ewBroadcast(v[:], s, opAdd[T])
	return v
}

func (v Vec3[T]) SubScalar(s T) Vec3[T] {
	ewBroadcast(v[:], s, opSub[T])
	return v
}

func (v Vec3[T]) MulScalar(s T) Vec3[T] {
	ewBroadcast(v[:], s, opMul[T])
	return v
}

func (v Vec3[T]) DivScalar(s T) Vec3[T] {
	ewBroadcast(v[:], s, opDiv[T])
	return v
}

func (v *Vec3[T]) AddAssign(o Vec3[T]) { ewZip(v[:], o[:], opAdd[T]) }
func (v *Vec3[T]) SubAssign(o Vec3[T]) { ewZip(v[:], o[:], opSub[T]) }
func (v *Vec3[T]) MulAssign(o Vec3[T]) { ewZip(v[:], o[:], opMul[T]) }
func (v *Vec3[T]) DivAssign(o Vec3[T]) { ewZip(v[:], o[:], opDiv[T]) }

func (v *Vec3[T]) AddScalarAssign(s T) { ewBroadcast(v[:], s, opAdd[T]) }
func (v *Vec3[T]) SubScalarAssign(s T) { ewBroadcast(v[:], s, opSub[T]) }
func (v *Vec3[T]) MulScalarAssign(s T) { ewBroadcast(v[:], s, opMul[T]) }
func (v *Vec3[T]) DivScalarAssign(s T) { ewBroadcast(v[:], s, opDiv[T]) }

// Neg returns -v.
func (v Vec3[T]) Neg() Vec3[T] {
	ewNeg(v[:])
	return v
}

// Dot returns v⋅o.
func (v Vec3[T]) Dot(o Vec3[T]) T { return ewDot(v[:], o[:]) }

// Cross returns the right-handed cross product v×o. It is
// anti-commutative: v.Cross(o) == o.Cross(v).Neg().
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

func (v Vec3[T]) String() string {
	return fmt.Sprint([3]T(v))
}
