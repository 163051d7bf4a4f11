package simd

// CullPlane is a frustum plane prepared for batched testing: the
// inward-facing unit normal and the signed offset, each broadcast
// across all four slots. Broadcasting happens once per plane per
// frame, not per batch.
type CullPlane struct {
	Normal Vec3x4
	Offset Float32x4
}

// ops is the kernel strategy behind every lane and batch operation.
// One implementation exists per Path; the strategy is chosen once at
// init and consulted per call. scalarOps is the semantic reference:
// every other strategy must produce identical results for identical
// inputs.
type ops interface {
	name() string

	add(a, b Float32x4) Float32x4
	sub(a, b Float32x4) Float32x4
	mul(a, b Float32x4) Float32x4
	div(a, b Float32x4) Float32x4
	min(a, b Float32x4) Float32x4
	max(a, b Float32x4) Float32x4

	// planeTest computes the 4-bit inside-or-intersecting mask for one
	// batch against one plane.
	planeTest(b AABBx4, normal Vec3x4, offset Float32x4) uint8

	// cullBatch ANDs planeTest across all planes for every batch,
	// writing one mask per batch into out. len(out) >= len(batches).
	cullBatch(batches []AABBx4, planes []CullPlane, out []uint8)
}

// kernelFor returns the strategy implementing a Path. Callers must
// only pass paths that are available on this CPU; the mapping itself
// is total, with Scalar as the universal fallback.
func kernelFor(p Path) ops {
	switch p {
	case AVX512:
		return avx512Ops{}
	case AVX2:
		return avx2Ops{}
	case SSE42:
		return wideOps{label: "sse4.2"}
	case NEON:
		return wideOps{label: "neon"}
	case Wasm128:
		return wideOps{label: "wasm128"}
	default:
		return scalarOps{}
	}
}

// CullAABBs tests every batch against every plane through the active
// strategy and writes one 4-bit visibility mask per batch into out.
// Bit i of out[j] is set iff slot i of batch j survives all planes.
//
// SAFETY: Assumes len(out) >= len(batches). Callers MUST ensure the
// output buffer is large enough.
func CullAABBs(batches []AABBx4, planes []CullPlane, out []uint8) {
	active.cullBatch(batches, planes, out)
}

// KernelName returns the name of the active kernel strategy.
func KernelName() string {
	return active.name()
}

// Fixed-width lane helpers shared by the accelerated strategies. The
// loops are over [4]float32 values with no bounds checks, the shape
// the compiler vectorizes to full-width register ops on each target.

func laneAdd(a, b Float32x4) Float32x4 {
	var r Float32x4
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return r
}

func laneSub(a, b Float32x4) Float32x4 {
	var r Float32x4
	for i := range r {
		r[i] = a[i] - b[i]
	}
	return r
}

func laneMul(a, b Float32x4) Float32x4 {
	var r Float32x4
	for i := range r {
		r[i] = a[i] * b[i]
	}
	return r
}

func laneDiv(a, b Float32x4) Float32x4 {
	var r Float32x4
	for i := range r {
		r[i] = a[i] / b[i]
	}
	return r
}

func laneMin(a, b Float32x4) Float32x4 {
	var r Float32x4
	for i := range r {
		if b[i] < a[i] {
			r[i] = b[i]
		} else {
			r[i] = a[i]
		}
	}
	return r
}

func laneMax(a, b Float32x4) Float32x4 {
	var r Float32x4
	for i := range r {
		if b[i] > a[i] {
			r[i] = b[i]
		} else {
			r[i] = a[i]
		}
	}
	return r
}
