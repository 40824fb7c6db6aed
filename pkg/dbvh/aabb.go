package dbvh

// AABB is an axis-aligned bounding box defined by its lower and upper
// corners. A 4th SIMD lane is not carried: it is irrelevant to the
// invariants this package checks.
type AABB struct {
	Lower, Upper Vec3
}

// NewAABB builds an AABB from two corners, regardless of their relative
// order.
func NewAABB(a, b Vec3) AABB {
	return AABB{Lower: a.Min(b), Upper: a.Max(b)}
}

// Extents returns the half-widths of the box along each axis.
func (b AABB) Extents() Vec3 {
	return b.Upper.Sub(b.Lower).MulScalar(0.5)
}

// Center returns the midpoint of the box.
func (b AABB) Center() Vec3 {
	return b.Lower.Add(b.Upper).MulScalar(0.5)
}

// Widths returns the full width of the box along each axis.
func (b AABB) Widths() Vec3 {
	return b.Upper.Sub(b.Lower)
}

// Area returns the box's surface area, 2(wx*wy + wy*wz + wz*wx).
func (b AABB) Area() float64 {
	w := b.Widths()
	return 2 * (w.X*w.Y + w.Y*w.Z + w.Z*w.X)
}

// Union returns the smallest AABB containing both b and o.
func (b AABB) Union(o AABB) AABB {
	return AABB{
		Lower: b.Lower.Min(o.Lower),
		Upper: b.Upper.Max(o.Upper),
	}
}

// Contains reports whether b fully contains o.
func (b AABB) Contains(o AABB) bool {
	return b.Lower.X <= o.Lower.X && b.Lower.Y <= o.Lower.Y && b.Lower.Z <= o.Lower.Z &&
		b.Upper.X >= o.Upper.X && b.Upper.Y >= o.Upper.Y && b.Upper.Z >= o.Upper.Z
}

// Overlaps reports whether b and o share any volume.
func (b AABB) Overlaps(o AABB) bool {
	return b.Lower.X <= o.Upper.X && b.Upper.X >= o.Lower.X &&
		b.Lower.Y <= o.Upper.Y && b.Upper.Y >= o.Lower.Y &&
		b.Lower.Z <= o.Upper.Z && b.Upper.Z >= o.Lower.Z
}

// Scale multiplies both corners of b by the positive scalar s. Used to
// verify that AreaRatio is scale-invariant (spec P12).
func (b AABB) Scale(s float64) AABB {
	return AABB{Lower: b.Lower.MulScalar(s), Upper: b.Upper.MulScalar(s)}
}

// Equal reports component-wise bitwise equality, as required by invariant 3
// ("N.aabb == union(child1.aabb, child2.aabb) bitwise").
func (b AABB) Equal(o AABB) bool {
	return b.Lower == o.Lower && b.Upper == o.Upper
}
