// SPDX-License-Identifier: MIT

package point_test

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/point"
	"github.com/katalvlaran/lvgeom/vector"
)

// Example_displacement moves a point by a vector, then measures the
// distance travelled through the displacement itself.
func Example_displacement() {
	start := point.New2(1, 1)
	step := vector.New2(2.0, 3)

	end := start.Add(step)
	fmt.Println(end)

	back := vector.New2(start.X()-end.X(), start.Y()-end.Y())
	fmt.Println(vector.SquareLength2(back))
	// Output:
	// (3, 4)
	// 13
}
