// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/vector"
)

// Row returns row i. It panics with ErrOutOfRange unless 0 ≤ i < 2.
func (m Mat2[T]) Row(i int) vector.Vec2[T] {
	checkRow("Mat2.Row", i, len(m))
	return m[i]
}

// SetRow replaces row i.
func (m *Mat2[T]) SetRow(i int, r vector.Vec2[T]) {
	checkRow("Mat2.SetRow", i, len(m))
	m[i] = r
}

// At returns the element at row i, column j.
func (m Mat2[T]) At(i, j int) T {
	checkCell("Mat2.At", i, j, len(m))
	return m[i][j]
}

// Set assigns the element at row i, column j.
func (m *Mat2[T]) Set(i, j int, v T) {
	checkCell("Mat2.Set", i, j, len(m))
	m[i][j] = v
}

// Equal reports exact elementwise equality.
func (m Mat2[T]) Equal(o Mat2[T]) bool { return m == o }

// Add returns m + o elementwise.
func (m Mat2[T]) Add(o Mat2[T]) Mat2[T] {
	ewRows(m[:], o[:], vector.Vec2[T].Add)
	return m
}

// Sub returns m - o elementwise.
func (m Mat2[T]) Sub(o Mat2[T]) Mat2[T] {
	ewRows(m[:], o[:], vector.Vec2[T].Sub)
	return m
}

// Mul returns m * o elementwise (Hadamard, not the matrix product).
func (m Mat2[T]) Mul(o Mat2[T]) Mat2[T] {
	ewRows(m[:], o[:], vector.Vec2[T].Mul)
	return m
}

// Div returns m / o elementwise (Hadamard, not the matrix product).
func (m Mat2[T]) Div(o Mat2[T]) Mat2[T] {
	ewRows(m[:], o[:], vector.Vec2[T].Div)
	return m
}

// AddScalar returns m with s added to every element.
func (m Mat2[T]) AddScalar(s T) Mat2[T] {
	ewRowsScalar(m[:], s, vector.Vec2[T].AddScalar)
	return m
}

// SubScalar returns m with s subtracted from every element.
func (m Mat2[T]) SubScalar(s T) Mat2[T] {
	ewRowsScalar(m[:], s, vector.Vec2[T].SubScalar)
	return m
}

// MulScalar returns m scaled by s.
func (m Mat2[T]) MulScalar(s T) Mat2[T] {
	ewRowsScalar(m[:], s, vector.Vec2[T].MulScalar)
	return m
}

// DivScalar returns m with every element divided by s.
func (m Mat2[T]) DivScalar(s T) Mat2[T] {
	ewRowsScalar(m[:], s, vector.Vec2[T].DivScalar)
	return m
}

// AddAssign performs m += o elementwise.
func (m *Mat2[T]) AddAssign(o Mat2[T]) { ewRows(m[:], o[:], vector.Vec2[T].Add) }

// SubAssign performs m -= o elementwise.
func (m *Mat2[T]) SubAssign(o Mat2[T]) { ewRows(m[:], o[:], vector.Vec2[T].Sub) }

// MulAssign performs m *= o elementwise.
func (m *Mat2[T]) MulAssign(o Mat2[T]) { ewRows(m[:], o[:], vector.Vec2[T].Mul) }

// DivAssign performs m /= o elementwise.
func (m *Mat2[T]) DivAssign(o Mat2[T]) { ewRows(m[:], o[:], vector.Vec2[T].Div) }

// AddScalarAssign adds s to every element in place.
func (m *Mat2[T]) AddScalarAssign(s T) { ewRowsScalar(m[:], s, vector.Vec2[T].AddScalar) }

// SubScalarAssign subtracts s from every element in place.
func (m *Mat2[T]) SubScalarAssign(s T) { ewRowsScalar(m[:], s, vector.Vec2[T].SubScalar) }

// MulScalarAssign scales m in place.
func (m *Mat2[T]) MulScalarAssign(s T) { ewRowsScalar(m[:], s, vector.Vec2[T].MulScalar) }

// DivScalarAssign divides every element by s in place.
func (m *Mat2[T]) DivScalarAssign(s T) { ewRowsScalar(m[:], s, vector.Vec2[T].DivScalar) }

func (m Mat2[T]) String() string {
	return fmt.Sprint([2]vector.Vec2[T](m))
}
