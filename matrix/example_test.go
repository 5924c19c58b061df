// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/matrix"
)

// Example_hadamard shows that Mul is elementwise, not the matrix product.
func Example_hadamard() {
	a := matrix.New2(
		1, 2,
		3, 4,
	)
	b := matrix.New2(
		5, 6,
		7, 8,
	)
	fmt.Println(a.Mul(b))
	fmt.Println(a.AddScalar(10))
	// Output:
	// [[5 12] [21 32]]
	// [[11 12] [13 14]]
}

// Example_zeroValue shows that the zero Mat2 is all zeros, not the identity.
func Example_zeroValue() {
	var m matrix.Mat2[float64]
	fmt.Println(m[0][0], m[1][1])
	m.Set(0, 0, 1)
	fmt.Println(m.Row(0), m)
	// Output:
	// 0 0
	// [1 0] [[1 0] [0 0]]
}
