// SPDX-License-Identifier: MIT

// Package point provides 2D and 3D locations.
//
// A Point denotes where something is; a vector.Vec denotes a displacement
// or direction. The only operation mixing the two is displacement,
// p.Add(v) → point (and its in-place form AddAssign). Points have no scalar
// arithmetic, no point-point arithmetic and no length or dot product. To
// measure the distance between two points, build the displacement vector
// from their coordinates and use vector.Length2/Length3.
package point
