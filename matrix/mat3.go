// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/vector"
)

// Row returns row i. It panics with ErrOutOfRange unless 0 ≤ i < 3.
func (m Mat3[T]) Row(i int) vector.Vec3[T] {
	checkRow("Mat3.Row", i, len(m))
	return m[i]
}

// SetRow replaces row i.
func (m *Mat3[T]) SetRow(i int, r vector.Vec3[T]) {
	checkRow("Mat3.SetRow", i, len(m))
	m[i] = r
}

// At returns the element at row i, column j.
func (m Mat3[T]) At(i, j int) T {
	checkCell("Mat3.At", i, j, len(m))
	return m[i][j]
}

// Set assigns the element at row i, column j.
func (m *Mat3[T]) Set(i, j int, v T) {
	checkCell("Mat3.Set", i, j, len(m))
	m[i][j] = v
}

// Equal reports exact elementwise equality.
func (m Mat3[T]) Equal(o Mat3[T]) bool { return m == o }

func (m Mat3[T]) Add(o Mat3[T]) Mat3[T] {
	ewRows(m[:], o[:], vector.Vec3[T].Add)
	return m
}

func (m Mat3[T]) Sub(o Mat3[T]) Mat3[T] {
	ewRows(m[:], o[:], vector.Vec3[T].Sub)
	return m
}

func (m Mat3[T]) Mul(o Mat3[T]) Mat3[T] {
	ewRows(m[:], o[:], vector.Vec3[T].Mul)
	return m
}

func (m Mat3[T]) Div(o Mat3[T]) Mat3[T] {
	ewRows(m[:], o[:], vector.Vec3[T].Div)
	return m
}

func (m Mat3[T]) AddScalar(s T) Mat3[T] {
	ewRowsScalar(m[:], s, vector.Vec3[T].AddScalar)
	return m
}

func (m Mat3[T]) SubScalar(s T) Mat3[T] {
	ewRowsScalar(m[:], s, vector.Vec3[T].SubScalar)
	return m
}

func (m Mat3[T]) MulScalar(s T) Mat3[T] {
	ewRowsScalar(m[:], s, vector.Vec3[T].MulScalar)
	return m
}

func (m Mat3[T]) DivScalar(s T) Mat3[T] {
	ewRowsScalar(m[:], s, vector.Vec3[T].DivScalar)
	return m
}

// In-place forms.

func (m *Mat3[T]) AddAssign(o Mat3[T]) { ewRows(m[:], o[:], vector.Vec3[T].Add) }
func (m *Mat3[T]) SubAssign(o Mat3[T]) { ewRows(m[:], o[:], vector.Vec3[T].Sub) }
func (m *Mat3[T]) MulAssign(o Mat3[T]) { ewRows(m[:], o[:], vector.Vec3[T].Mul) }
func (m *Mat3[T]) DivAssign(o Mat3[T]) { ewRows(m[:], o[:], vector.Vec3[T].Div) }

func (m *Mat3[T]) AddScalarAssign(s T) { ewRowsScalar(m[:], s, vector.Vec3[T].AddScalar) }
func (m *Mat3[T]) SubScalarAssign(s T) { ewRowsScalar(m[:], s, vector.Vec3[T].SubScalar) }
func (m *Mat3[T]) MulScalarAssign(s T) { ewRowsScalar(m[:], s, vector.Vec3[T].MulScalar) }
func (m *Mat3[T]) DivScalarAssign(s T) { ewRowsScalar(m[:], s, vector.Vec3[T].DivScalar) }

func (m Mat3[T]) String() string {
	return fmt.Sprint([3]vector.Vec3[T](m))
}
