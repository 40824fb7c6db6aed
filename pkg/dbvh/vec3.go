// Package dbvh implements a dynamic bounding volume hierarchy over
// three-dimensional axis-aligned bounding boxes: a pooled, index-addressed
// binary tree that indexes a changing population of client AABBs so that
// spatial queries are accelerated from linear to logarithmic-expected cost.
//
// The package does not depend on any vector/matrix math library: no such
// library is exercised anywhere in the retrieved reference corpus, so Vec3
// and AABB are plain value types built directly from the arithmetic spec
// gives for them.
package dbvh

import "math"

// Vec3 is an immutable 3-component float64 vector.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// MulScalar returns v scaled by s.
func (v Vec3) MulScalar(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Min returns the component-wise minimum of v and w.
func (v Vec3) Min(w Vec3) Vec3 {
	return Vec3{math.Min(v.X, w.X), math.Min(v.Y, w.Y), math.Min(v.Z, w.Z)}
}

// Max returns the component-wise maximum of v and w.
func (v Vec3) Max(w Vec3) Vec3 {
	return Vec3{math.Max(v.X, w.X), math.Max(v.Y, w.Y), math.Max(v.Z, w.Z)}
}

// Dot returns the dot product of v and w.
func (v Vec3) Dot(w Vec3) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// L1Dist returns the Manhattan (L1) distance between v and w.
func (v Vec3) L1Dist(w Vec3) float64 {
	return math.Abs(v.X-w.X) + math.Abs(v.Y-w.Y) + math.Abs(v.Z-w.Z)
}

// DistSquared returns the squared Euclidean distance between v and w.
func (v Vec3) DistSquared(w Vec3) float64 {
	d := v.Sub(w)
	return d.Dot(d)
}
