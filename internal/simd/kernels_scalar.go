package simd

// scalarOps is the portable reference strategy. It is always correct
// on every architecture and serves as the oracle the accelerated
// strategies are verified against.
type scalarOps struct{}

func (scalarOps) name() string { return "scalar" }

func (scalarOps) add(a, b Float32x4) Float32x4 {
	return Float32x4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func (scalarOps) sub(a, b Float32x4) Float32x4 {
	return Float32x4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func (scalarOps) mul(a, b Float32x4) Float32x4 {
	return Float32x4{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

func (scalarOps) div(a, b Float32x4) Float32x4 {
	return Float32x4{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]}
}

func (scalarOps) min(a, b Float32x4) Float32x4 {
	return Float32x4{min32(a[0], b[0]), min32(a[1], b[1]), min32(a[2], b[2]), min32(a[3], b[3])}
}

func (scalarOps) max(a, b Float32x4) Float32x4 {
	return Float32x4{max32(a[0], b[0]), max32(a[1], b[1]), max32(a[2], b[2]), max32(a[3], b[3])}
}

func (scalarOps) planeTest(b AABBx4, normal Vec3x4, offset Float32x4) uint8 {
	return scalarPlaneTest(b, normal, offset)
}

func (scalarOps) cullBatch(batches []AABBx4, planes []CullPlane, out []uint8) {
	for i := range batches {
		m := uint8(0xF)
		for p := range planes {
			m &= scalarPlaneTest(batches[i], planes[p].Normal, planes[p].Offset)
			if m == 0 {
				break
			}
		}
		out[i] = m
	}
}

// scalarPlaneTest is the canonical plane test, slot by slot:
//
//	center        = (min + max) * 0.5
//	half_extent   = (max - min) * 0.5
//	signed_dist   = dot(center, normal) + offset
//	proj_radius   = |hx*nx| + |hy*ny| + |hz*nz|
//	visible       = signed_dist + proj_radius >= 0
//
// The operation order here is the contract: accelerated strategies
// must evaluate the same expressions in the same order so results stay
// bit-identical across paths.
func scalarPlaneTest(b AABBx4, n Vec3x4, off Float32x4) uint8 {
	var mask uint8
	for i := 0; i < 4; i++ {
		cx := (b.Min.X[i] + b.Max.X[i]) * 0.5
		cy := (b.Min.Y[i] + b.Max.Y[i]) * 0.5
		cz := (b.Min.Z[i] + b.Max.Z[i]) * 0.5

		hx := (b.Max.X[i] - b.Min.X[i]) * 0.5
		hy := (b.Max.Y[i] - b.Min.Y[i]) * 0.5
		hz := (b.Max.Z[i] - b.Min.Z[i]) * 0.5

		dist := cx*n.X[i] + cy*n.Y[i] + cz*n.Z[i] + off[i]

		// abs via max(v, -v)
		rx := max32(hx*n.X[i], -(hx * n.X[i]))
		ry := max32(hy*n.Y[i], -(hy * n.Y[i]))
		rz := max32(hz*n.Z[i], -(hz * n.Z[i]))

		if dist+rx+ry+rz >= 0 {
			mask |= 1 << i
		}
	}
	return mask
}

func min32(a, b float32) float32 {
	if b < a {
		return b
	}
	return a
}

func max32(a, b float32) float32 {
	if b > a {
		return b
	}
	return a
}
