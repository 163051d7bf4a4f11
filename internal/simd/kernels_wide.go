package simd

// wideOps is the 128-bit strategy used for the SSE4.2, NEON and WASM
// SIMD128 paths, which share a register width: one four-slot batch per
// iteration, whole-lane operations throughout. The three paths differ
// only in how they are detected.
type wideOps struct {
	label string
}

func (o wideOps) name() string { return o.label }

func (wideOps) add(a, b Float32x4) Float32x4 { return laneAdd(a, b) }
func (wideOps) sub(a, b Float32x4) Float32x4 { return laneSub(a, b) }
func (wideOps) mul(a, b Float32x4) Float32x4 { return laneMul(a, b) }
func (wideOps) div(a, b Float32x4) Float32x4 { return laneDiv(a, b) }
func (wideOps) min(a, b Float32x4) Float32x4 { return laneMin(a, b) }
func (wideOps) max(a, b Float32x4) Float32x4 { return laneMax(a, b) }

func (wideOps) planeTest(b AABBx4, normal Vec3x4, offset Float32x4) uint8 {
	return widePlaneTest(b, normal, offset)
}

func (wideOps) cullBatch(batches []AABBx4, planes []CullPlane, out []uint8) {
	for i := range batches {
		m := uint8(0xF)
		for p := range planes {
			m &= widePlaneTest(batches[i], planes[p].Normal, planes[p].Offset)
			if m == 0 {
				break
			}
		}
		out[i] = m
	}
}

var halfLane = Float32x4{0.5, 0.5, 0.5, 0.5}

// widePlaneTest is the whole-lane form of scalarPlaneTest. It
// evaluates the same expressions in the same order, so results are
// bit-identical to the scalar oracle.
func widePlaneTest(b AABBx4, n Vec3x4, off Float32x4) uint8 {
	cx := laneMul(laneAdd(b.Min.X, b.Max.X), halfLane)
	cy := laneMul(laneAdd(b.Min.Y, b.Max.Y), halfLane)
	cz := laneMul(laneAdd(b.Min.Z, b.Max.Z), halfLane)

	hx := laneMul(laneSub(b.Max.X, b.Min.X), halfLane)
	hy := laneMul(laneSub(b.Max.Y, b.Min.Y), halfLane)
	hz := laneMul(laneSub(b.Max.Z, b.Min.Z), halfLane)

	dist := laneAdd(laneAdd(laneAdd(laneMul(cx, n.X), laneMul(cy, n.Y)), laneMul(cz, n.Z)), off)

	rx := laneAbs(laneMul(hx, n.X))
	ry := laneAbs(laneMul(hy, n.Y))
	rz := laneAbs(laneMul(hz, n.Z))

	sum := laneAdd(laneAdd(laneAdd(dist, rx), ry), rz)

	var mask uint8
	for i := 0; i < 4; i++ {
		if sum[i] >= 0 {
			mask |= 1 << i
		}
	}
	return mask
}

func laneNeg(v Float32x4) Float32x4 {
	var r Float32x4
	for i := range r {
		r[i] = -v[i]
	}
	return r
}

// laneAbs uses the max(v, -v) idiom, matching the scalar oracle.
func laneAbs(v Float32x4) Float32x4 {
	return laneMax(v, laneNeg(v))
}
