package simd

// avx512Ops is the 512-bit strategy: four four-slot batches per
// iteration, sixteen independent float32 streams per step to fill ZMM
// registers. Per-slot math is identical to the scalar oracle.
type avx512Ops struct{}

func (avx512Ops) name() string { return "avx512" }

func (avx512Ops) add(a, b Float32x4) Float32x4 { return laneAdd(a, b) }
func (avx512Ops) sub(a, b Float32x4) Float32x4 { return laneSub(a, b) }
func (avx512Ops) mul(a, b Float32x4) Float32x4 { return laneMul(a, b) }
func (avx512Ops) div(a, b Float32x4) Float32x4 { return laneDiv(a, b) }
func (avx512Ops) min(a, b Float32x4) Float32x4 { return laneMin(a, b) }
func (avx512Ops) max(a, b Float32x4) Float32x4 { return laneMax(a, b) }

func (avx512Ops) planeTest(b AABBx4, normal Vec3x4, offset Float32x4) uint8 {
	return widePlaneTest(b, normal, offset)
}

func (avx512Ops) cullBatch(batches []AABBx4, planes []CullPlane, out []uint8) {
	n := len(batches)
	i := 0
	for ; i+3 < n; i += 4 {
		m0 := uint8(0xF)
		m1 := uint8(0xF)
		m2 := uint8(0xF)
		m3 := uint8(0xF)
		for p := range planes {
			m0 &= widePlaneTest(batches[i], planes[p].Normal, planes[p].Offset)
			m1 &= widePlaneTest(batches[i+1], planes[p].Normal, planes[p].Offset)
			m2 &= widePlaneTest(batches[i+2], planes[p].Normal, planes[p].Offset)
			m3 &= widePlaneTest(batches[i+3], planes[p].Normal, planes[p].Offset)
			if m0|m1|m2|m3 == 0 {
				break
			}
		}
		out[i] = m0
		out[i+1] = m1
		out[i+2] = m2
		out[i+3] = m3
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
