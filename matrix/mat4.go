// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/vector"
)

// Row returns row i. It panics with ErrOutOfRange unless 0 ≤ i < 4.
func (m Mat4[T]) Row(i int) vector.Vec4[T] {
	checkRow("Mat4.Row", i, len(m))
	return m[i]
}

// SetRow replaces row i.
func (m *Mat4[T]) SetRow(i int, r vector.Vec4[T]) {
	checkRow("Mat4.SetRow", i, len(m))
	m[i] = r
}

// At returns the element at row i, column j.
func (m Mat4[T]) At(i, j int) T {
	checkCell("Mat4.At", i, j, len(m))
	return m[i][j]
}

// Set assigns the element at row i, column j.
func (m *Mat4[T]) Set(i, j int, v T) {
	checkCell("Mat4.Set", i, j, len(m))
	m[i][j] = v
}

// Equal reports exact elementwise equality.
func (m Mat4[T]) Equal(o Mat4[T]) bool { return m == o }

func (m Mat4[T]) Add(o Mat4[T]) Mat4[T] {
	ewRows(m[:], o[:], vector.Vec4[T].Add)
	return m
}

func (m Mat4[T]) Sub(o Mat4[T]) Mat4[T] {
	ewRows(m[:], o[:], vector.Vec4[T].Sub)
	return m
}

func (m Mat4[T]) Mul(o Mat4[T]) Mat4[T] {
	ewRows(m[:], o[:], vector.Vec4[T].Mul)
	return m
}

func (m Mat4[T]) Div(o Mat4[T]) Mat4[T] {
	ewRows(m[:], o[:], vector.Vec4[T].Div)
	return m
}

func (m Mat4[T]) AddScalar(s T) Mat4[T] {
	ewRowsScalar(m[:], s, vector.Vec4[T].AddScalar)
	return m
}

func (m Mat4[T]) SubScalar(s T) Mat4[T] {
	ewRowsScalar(m[:], s, vector.Vec4[T].SubScalar)
	return m
}

func (m Mat4[T]) MulScalar(s T) Mat4[T] {
	ewRowsScalar(m[:], s, vector.Vec4[T].MulScalar)
	return m
}

func (m Mat4[T]) DivScalar(s T) Mat4[T] {
	ewRowsScalar(m[:], s, vector.Vec4[T].DivScalar)
	return m
}

// In-place forms.

func (m *Mat4[T]) AddAssign(o Mat4[T]) { ewRows(m[:], o[:], vector.Vec4[T].Add) }
func (m *Mat4[T]) SubAssign(o Mat4[T]) { ewRows(m[:], o[:], vector.Vec4[T].Sub) }
func (m *Mat4[T]) MulAssign(o Mat4[T]) { ewRows(m[:], o[:], vector.Vec4[T].Mul) }
func (m *Mat4[T]) DivAssign(o Mat4[T]) { ewRows(m[:], o[:], vector.Vec4[T].Div) }

func (m *Mat4[T]) AddScalarAssign(s T) { ewRowsScalar(m[:], s, vector.Vec4[T].AddScalar) }
func (m *Mat4[T]) SubScalarAssign(s T) { ewRowsScalar(m[:], s, vector.Vec4[T].SubScalar) }
func (m *Mat4[T]) MulScalarAssign(s T) { ewRowsScalar(m[:], s, vector.Vec4[T].MulScalar) }
func (m *Mat4[T]) DivScalarAssign(s T) { ewRowsScalar(m[:], s, vector.Vec4[T].DivScalar) }

func (m Mat4[T]) String() string {
	return fmt.Sprint([4]vector.Vec4[T](m))
}
