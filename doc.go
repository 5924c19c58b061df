// Package lvgeom is a small foundation of fixed-size numeric value types
// for geometry, graphics and physics code.
//
// What is inside?
//
//	vector/ — Vec2, Vec3, Vec4 generic over any integer or float element:
//	          elementwise arithmetic (pairwise, scalar broadcast, in place),
//	          Dot, Cross, swizzles, and float-only Length/Normalize/rotations.
//	matrix/ — Mat2, Mat3, Mat4 as row-major arrays of vector rows, with the
//	          same elementwise operator set applied row by row.
//	point/  — Point2, Point3 locations; the only mixed operation is
//	          point + vector → point.
//
// Why?
//
//   - Plain arrays: comparable with ==, copied by value, zero value is zero.
//   - One elementwise rule: every operator funnels through the same kernel.
//   - Compile-time capability checks: geometry needs a Float element.
//   - Pure Go, no cgo, no SIMD tricks.
//
// Quick example:
//
//	v := vector.New3(1.0, 2, 3).Cross(vector.New3(4.0, 5, 6)) // [-3 6 -3]
//	p := point.New2(1, 1).Add(vector.New2(2.0, 3))            // (3, 4)
//
//	go get github.com/katalvlaran/lvgeom
package lvgeom
