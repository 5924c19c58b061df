// SPDX-License-Identifier: MIT

package point

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/vector"
)

// Point2 is a location in the plane. The zero value is the origin.
type Point2 [2]float64

// New2 returns the point (x, y).
func New2(x, y float64) Point2 {
	return Point2{x, y}
}

// At returns coordinate i, panicking with ErrOutOfRange unless 0 ≤ i < 2.
func (p Point2) At(i int) float64 {
	checkIndex("Point2.At", i, len(p))
	return p[i]
}

func (p Point2) X() float64 { return p[0] }
func (p Point2) Y() float64 { return p[1] }

func (p *Point2) SetX(x float64) { p[0] = x }
func (p *Point2) SetY(y float64) { p[1] = y }

// Set moves p to (x, y).
func (p *Point2) Set(x, y float64) {
	p[0], p[1] = x, y
}

// Add returns p displaced by v.
func (p Point2) Add(v vector.Vec2[float64]) Point2 {
	p.AddAssign(v)
	return p
}

// AddAssign displaces p by v in place.
func (p *Point2) AddAssign(v vector.Vec2[float64]) {
	p[0] += v[0]
	p[1] += v[1]
}

func (p Point2) String() string {
	return fmt.Sprintf("(%v, %v)", p[0], p[1])
}
