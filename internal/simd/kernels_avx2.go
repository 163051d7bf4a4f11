package simd

// avx2Ops is the 256-bit strategy: two four-slot batches per
// iteration, giving the compiler eight independent float32 streams per
// step to fill YMM registers. Per-slot math is identical to the scalar
// oracle.
type avx2Ops struct{}

func (avx2Ops) name() string { return "avx2" }

func (avx2Ops) add(a, b Float32x4) Float32x4 { return laneAdd(a, b) }
func (avx2Ops) sub(a, b Float32x4) Float32x4 { return laneSub(a, b) }
func (avx2Ops) mul(a, b Float32x4) Float32x4 { return laneMul(a, b) }
func (avx2Ops) div(a, b Float32x4) Float32x4 { return laneDiv(a, b) }
func (avx2Ops) min(a, b Float32x4) Float32x4 { return laneMin(a, b) }
func (avx2Ops) max(a, b Float32x4) Float32x4 { return laneMax(a, b) }

func (avx2Ops) planeTest(b AABBx4, normal Vec3x4, offset Float32x4) uint8 {
	return widePlaneTest(b, normal, offset)
}

func (avx2Ops) cullBatch(batches []AABBx4, planes []CullPlane, out []uint8) {
	n := len(batches)
	i := 0
	for ; i+1 < n; i += 2 {
		m0 := uint8(0xF)
		m1 := uint8(0xF)
		for p := range planes {
			m0 &= widePlaneTest(batches[i], planes[p].Normal, planes[p].Offset)
			m1 &= widePlaneTest(batches[i+1], planes[p].Normal, planes[p].Offset)
			if m0|m1 == 0 {
				break
			}
		}
		out[i] = m0
		out[i+1] = m1
	}
	for ; i < n; i++ {
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
