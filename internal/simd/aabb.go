package simd

// AABBx4 holds four axis-aligned bounding boxes in structure-of-arrays
// form, stored as min/max corner batches. Invariant: max >= min per
// axis per slot. Degenerate zero-volume boxes are permitted; inverted
// boxes are a caller error.
type AABBx4 struct {
	Min, Max Vec3x4
}

// AABBx4FromMinMax builds a batch from min/max corner batches.
func AABBx4FromMinMax(min, max Vec3x4) AABBx4 {
	return AABBx4{Min: min, Max: max}
}

// AABBx4FromCentersExtents builds a batch from center and half-extent
// batches: min = center - extent, max = center + extent.
func AABBx4FromCentersExtents(centers, extents Vec3x4) AABBx4 {
	return AABBx4{
		Min: centers.Sub(extents),
		Max: centers.Add(extents),
	}
}

// Centers returns the per-slot box centers, (min + max) / 2.
func (b AABBx4) Centers() Vec3x4 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// HalfExtents returns the per-slot half extents, (max - min) / 2.
func (b AABBx4) HalfExtents() Vec3x4 {
	return b.Max.Sub(b.Min).Scale(0.5)
}

// PlaneTest tests all four boxes against a single frustum plane given
// as a broadcast inward-facing unit normal and a broadcast offset
// lane. The result is a 4-bit mask: bit i is set iff box i is inside
// or intersecting, i.e. signed_distance + projected_radius >= 0. The
// >= is intentional - a box exactly touching the plane is visible.
func (b AABBx4) PlaneTest(normal Vec3x4, offset Float32x4) uint8 {
	return active.planeTest(b, normal, offset)
}
