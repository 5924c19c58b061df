// SPDX-License-Identifier: MIT

package point

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/vector"
)

// Point3 is a location in space. The zero value is the origin.
type Point3 [3]float64

// New3 returns the point (x, y, z).
func New3(x, y, z float64) Point3 {
	return Point3{x, y, z}
}

// At returns coordinate i, panicking with ErrOutOfRange unless 0 ≤ i < 3.
func (p Point3) At(i int) float64 {
	checkIndex("Point3.At", i, len(p))
	return p[i]
}

func (p Point3) X() float64 { return p[0] }
func (p Point3) Y() float64 { return p[1] }
func (p Point3) Z() float64 { return p[2] }

func (p *Point3) SetX(x float64) { p[0] = x }
func (p *Point3) SetY(y float64) { p[1] = y }
func (p *Point3) SetZ(z float64) { p[2] = z }

// Set moves p to (x, y, z).
func (p *Point3) Set(x, y, z float64) {
	p[0], p[1], p[2] = x, y, z
}

// Add returns p displaced by v.
func (p Point3) Add(v vector.Vec3[float64]) Point3 {
	p.AddAssign(v)
	return p
}

// AddAssign displaces p by v in place.
func (p *Point3) AddAssign(v vector.Vec3[float64]) {
	p[0] += v[0]
	p[1] += v[1]
	p[2] += v[2]
}

func (p Point3) String() string {
	return fmt.Sprintf("(%v, %v, %v)", p[0], p[1], p[2])
}
