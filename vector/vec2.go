// SPDX-License-Identifier: MIT

package vector

import "fmt"

// At returns the component at index i. It panics with ErrOutOfRange
// unless 0 ≤ i < 2.
func (v Vec2[T]) At(i int) T {
	checkIndex("Vec2.At", i, len(v))
	return v[i]
}

// Set assigns the component at index i.
func (v *Vec2[T]) Set(i int, x T) {
	checkIndex("Vec2.Set", i, len(v))
	v[i] = x
}

// X returns the first component.
func (v Vec2[T]) X() T { return v[0] }

// Y returns the second component.
func (v Vec2[T]) Y() T { return v[1] }

// SetX assigns the first component.
func (v *Vec2[T]) SetX(x T) { v[0] = x }

// SetY assigns the second component.
func (v *Vec2[T]) SetY(y T) { v[1] = y }

// Equal reports whether every component of v equals the one in o.
// No tolerance is applied.
func (v Vec2[T]) Equal(o Vec2[T]) bool { return v == o }

// Add returns v + o componentwise.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	ewZip(v[:], o[:], opAdd[T])
	return v
}

// Sub returns v - o componentwise.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	ewZip(v[:], o[:], opSub[T])
	return v
}

// Mul returns v * o componentwise.
func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] {
	ewZip(v[:], o[:], opMul[T])
	return v
}

// Div returns v / o componentwise. Integer division by a zero component
// panics like any Go integer division.
func (v Vec2[T]) Div(o Vec2[T]) Vec2[T] {
	ewZip(v[:], o[:], opDiv[T])
	return v
}

// AddScalar returns v with s added to every component.
func (v Vec2[T]) AddScalar(s T) Vec2[T] {
	ewBroadcast(v[:], s, opAdd[T])
	return v
}

// SubScalar returns v with s subtracted from every component.
func (v Vec2[T]) SubScalar(s T) Vec2[T] {
	ewBroadcast(v[:], s, opSub[T])
	return v
}

// MulScalar returns v scaled by s.
func (v Vec2[T]) MulScalar(s T) Vec2[T] {
	ewBroadcast(v[:], s, opMul[T])
	return v
}

// DivScalar returns v with every component divided by s.
func (v Vec2[T]) DivScalar(s T) Vec2[T] {
	ewBroadcast(v[:], s, opDiv[T])
	return v
}

// AddAssign performs v += o.
func (v *Vec2[T]) AddAssign(o Vec2[T]) { ewZip(v[:], o[:], opAdd[T]) }

// SubAssign performs v -= o.
func (v *Vec2[T]) SubAssign(o Vec2[T]) { ewZip(v[:], o[:], opSub[T]) }

// MulAssign performs v *= o.
func (v *Vec2[T]) MulAssign(o Vec2[T]) { ewZip(v[:], o[:], opMul[T]) }

// DivAssign performs v /= o.
func (v *Vec2[T]) DivAssign(o Vec2[T]) { ewZip(v[:], o[:], opDiv[T]) }

// AddScalarAssign adds s to every component in place.
func (v *Vec2[T]) AddScalarAssign(s T) { ewBroadcast(v[:], s, opAdd[T]) }

// SubScalarAssign subtracts s from every component in place.
func (v *Vec2[T]) SubScalarAssign(s T) { ewBroadcast(v[:], s, opSub[T]) }

// MulScalarAssign scales v in place.
func (v *Vec2[T]) MulScalarAssign(s T) { ewBroadcast(v[:], s, opMul[T]) }

// DivScalarAssign divides every component by s in place.
func (v *Vec2[T]) DivScalarAssign(s T) { ewBroadcast(v[:], s, opDiv[T]) }

// Neg returns -v.
func (v Vec2[T]) Neg() Vec2[T] {
	ewNeg(v[:])
	return v
}

// Dot returns v⋅o.
func (v Vec2[T]) Dot(o Vec2[T]) T { return ewDot(v[:], o[:]) }

// Cross returns the planar cross product lifted into 3D: the x and y
// components are zero and z holds v.x*o.y - v.y*o.x, i.e. the z component
// of the 3D cross product of v and o placed in the xy-plane.
func (v Vec2[T]) Cross(o Vec2[T]) Vec3[T] {
	return Vec3[T]{0, 0, v[0]*o[1] - v[1]*o[0]}
}

func (v Vec2[T]) String() string {
	return fmt.Sprint([2]T(v))
}
