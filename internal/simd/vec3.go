package simd

// Vec3x4 holds four independent 3D vectors in structure-of-arrays
// form: X, Y and Z each pack the respective component of all four
// logical items. Slot i across X/Y/Z always belongs to logical item i.
type Vec3x4 struct {
	X, Y, Z Float32x4
}

// Vec3x4FromSlots builds a batch from four discrete (x, y, z) triples.
func Vec3x4FromSlots(s0, s1, s2, s3 [3]float32) Vec3x4 {
	return Vec3x4{
		X: Float32x4{s0[0], s1[0], s2[0], s3[0]},
		Y: Float32x4{s0[1], s1[1], s2[1], s3[1]},
		Z: Float32x4{s0[2], s1[2], s2[2], s3[2]},
	}
}

// SplatVec3x4 broadcasts one 3D vector across all four slots.
func SplatVec3x4(x, y, z float32) Vec3x4 {
	return Vec3x4{
		X: SplatFloat32x4(x),
		Y: SplatFloat32x4(y),
		Z: SplatFloat32x4(z),
	}
}

// Add returns the slot-wise vector sum of v and o.
func (v Vec3x4) Add(o Vec3x4) Vec3x4 {
	return Vec3x4{
		X: v.X.Add(o.X),
		Y: v.Y.Add(o.Y),
		Z: v.Z.Add(o.Z),
	}
}

// Sub returns the slot-wise vector difference of v and o.
func (v Vec3x4) Sub(o Vec3x4) Vec3x4 {
	return Vec3x4{
		X: v.X.Sub(o.X),
		Y: v.Y.Sub(o.Y),
		Z: v.Z.Sub(o.Z),
	}
}

// Scale multiplies every component of every slot by s.
func (v Vec3x4) Scale(s float32) Vec3x4 {
	f := SplatFloat32x4(s)
	return Vec3x4{
		X: v.X.Mul(f),
		Y: v.Y.Mul(f),
		Z: v.Z.Mul(f),
	}
}

// Dot returns a lane of four dot products, one per logical item:
// x1*x2 + y1*y2 + z1*z2 per slot.
func (v Vec3x4) Dot(o Vec3x4) Float32x4 {
	return v.X.Mul(o.X).Add(v.Y.Mul(o.Y)).Add(v.Z.Mul(o.Z))
}
