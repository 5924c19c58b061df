// SPDX-License-Identifier: MIT

package matrix

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeom/vector"
)

func TestEwRows_DelegatesPerRow(t *testing.T) {
	t.Parallel()

	dst := []vector.Vec2[int]{{1, 2}, {3, 4}}
	ewRows(dst, []vector.Vec2[int]{{10, 20}, {30, 40}}, vector.Vec2[int].Add)
	require.Equal(t, []vector.Vec2[int]{{11, 22}, {33, 44}}, dst)
}

func TestEwRowsScalar_DelegatesPerRow(t *testing.T) {
	t.Parallel()

	dst := []vector.Vec3[float64]{{1, 2, 3}, {4, 5, 6}}
	ewRowsScalar(dst, 0.5, vector.Vec3[float64].MulScalar)
	require.Equal(t, []vector.Vec3[float64]{{0.5, 1, 1.5}, {2, 2.5, 3}}, dst)
}

func TestCheckCell(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() { checkCell("Mat2.At", 1, 1, 2) })
	require.PanicsWithError(t, "Mat2.At(1,2): dimension 2: matrix: index out of range", func() {
		checkCell("Mat2.At", 1, 2, 2)
	})
	require.PanicsWithError(t, "Mat3.Row(3): rows 3: matrix: index out of range", func() {
		checkRow("Mat3.Row", 3, 3)
	})
}
