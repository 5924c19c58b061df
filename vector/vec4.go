// SPDX-License-Identifier: MIT

package vector

import "fmt"

// At returns the component at index i. It panics with ErrOutOfRange
// unless 0 ≤ i < 4.
func (v Vec4[T]) At(i int) T {
	checkIndex("Vec4.At", i, len(v))
	return v[i]
}

// Set assigns the component at index i.
func (v *Vec4[T]) Set(i int, x T) {
	checkIndex("Vec4.Set", i, len(v))
	v[i] = x
}

func (v Vec4[T]) X() T { return v[0] }
func (v Vec4[T]) Y() T { return v[1] }
func (v Vec4[T]) Z() T { return v[2] }
func (v Vec4[T]) W() T { return v[3] }

func (v *Vec4[T]) SetX(x T) { v[0] = x }
func (v *Vec4[T]) SetY(y T) { v[1] = y }
func (v *Vec4[T]) SetZ(z T) { v[2] = z }
func (v *Vec4[T]) SetW(w T) { v[3] = w }

// Contiguous projections. Arbitrary permutations are not offered.

func (v Vec4[T]) XY() Vec2[T]  { return Vec2[T]{v[0], v[1]} }
func (v Vec4[T]) YZ() Vec2[T]  { return Vec2[T]{v[1], v[2]} }
func (v Vec4[T]) ZW() Vec2[T]  { return Vec2[T]{v[2], v[3]} }
func (v Vec4[T]) XYZ() Vec3[T] { return Vec3[T]{v[0], v[1], v[2]} }
func (v Vec4[T]) YZW() Vec3[T] { return Vec3[T]{v[1], v[2], v[3]} }

// Equal reports exact componentwise equality.
func (v Vec4[T]) Equal(o Vec4[T]) bool { return v == o }

func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] {
	ewZip(v[:], o[:], opAdd[T])
	return v
}

func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] {
	ewZip(v[:], o[:], opSub[T])
	return v
}

func (v Vec4[T]) Mul(o Vec4[T]) Vec4[T] {
	ewZip(v[:], o[:], opMul[T])
	return v
}

func (v Vec4[T]) Div(o Vec4[T]) Vec4[T] {
	ewZip(v[:], o[:], opDiv[T])
	return v
}

func (v Vec4[T]) AddScalar(s T) Vec4[T] {
	ewBroadcast(v[:], s, opAdd[T])
	return v
}

func (v Vec4[T]) SubScalar(s T) Vec4[T] {
	ewBroadcast(v[:], s, opSub[T])
	return v
}

func (v Vec4[T]) MulScalar(s T) Vec4[T] {
	ewBroadcast(v[:], s, opMul[T])
	return v
}

func (v Vec4[T]) DivScalar(s T) Vec4[T] {
	ewBroadcast(v[:], s, opDiv[T])
	return v
}

func (v *Vec4[T]) AddAssign(o Vec4[T]) { ewZip(v[:], o[:], opAdd[T]) }
func (v *Vec4[T]) SubAssign(o Vec4[T]) { ewZip(v[:], o[:], opSub[T]) }
func (v *Vec4[T]) MulAssign(o Vec4[T]) { ewZip(v[:], o[:], opMul[T]) }
func (v *Vec4[T]) DivAssign(o Vec4[T]) { ewZip(v[:], o[:], opDiv[T]) }

func (v *Vec4[T]) AddScalarAssign(s T) { ewBroadcast(v[:], s, opAdd[T]) }
func (v *Vec4[T]) SubScalarAssign(s T) { ewBroadcast(v[:], s, opSub[T]) }
func (v *Vec4[T]) MulScalarAssign(s T) { ewBroadcast(v[:], s, opMul[T]) }
func (v *Vec4[T]) DivScalarAssign(s T) { ewBroadcast(v[:], s, opDiv[T]) }

// Neg returns -v.
func (v Vec4[T]) Neg() Vec4[T] {
	ewNeg(v[:])
	return v
}

// Dot returns v⋅o. There is no 4D cross product.
func (v Vec4[T]) Dot(o Vec4[T]) T { return ewDot(v[:], o[:]) }

func (v Vec4[T]) String() string {
	return fmt.Sprint([4]T(v))
}
