// SPDX-License-Identifier: MIT

package vector_test

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/vector"
)

// Example_broadcast broadcasts a scalar to every component.
func Example_broadcast() {
	fmt.Println(vector.New2(1, 2).AddScalar(3))
	fmt.Println(vector.New2(1, 2).Add(vector.New2(3, 4)))
	// Output:
	// [4 5]
	// [4 6]
}

// Example_cross shows the right-handed 3D cross product.
func Example_cross() {
	a := vector.New3(1, 2, 3)
	b := vector.New3(4, 5, 6)
	fmt.Println(a.Cross(b))
	fmt.Println(b.Cross(a))
	// Output:
	// [-3 6 -3]
	// [3 -6 3]
}

// ExampleNormalize3 normalizes a float vector and reads back its length.
func ExampleNormalize3() {
	v := vector.New3(0.0, 3, 4)
	n := vector.Normalize3(v)
	fmt.Printf("%v %v %.3f\n", vector.Length3(v), n, vector.Length3(n))
	// Output:
	// 5 [0 0.6 0.8] 1.000
}

// ExampleRotateLeft90 turns a planar direction by a quarter turn each way.
func ExampleRotateLeft90() {
	east := vector.New2(1.0, 0)
	fmt.Println(vector.RotateLeft90(east), vector.RotateRight90(east))
	// Output:
	// [-0 1] [0 -1]
}

// Example_swizzle projects contiguous runs of components.
func Example_swizzle() {
	v := vector.New4(1, 2, 3, 4)
	fmt.Println(v.XYZ(), v.YZW(), v.ZW())
	// Output:
	// [1 2 3] [2 3 4] [3 4]
}
