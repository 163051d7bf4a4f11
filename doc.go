// Package cullgo provides SIMD-batched view-frustum culling for Go.
//
// Cullgo tests axis-aligned bounding boxes four at a time against the
// six planes of a camera frustum, in structure-of-arrays form, with
// runtime dispatch across instruction-set back ends (AVX-512, AVX2,
// SSE4.2, NEON, WASM SIMD128, Scalar). The scalar path is always
// available and all paths produce identical results.
//
// # Quick Start
//
//	c := cullgo.New()
//	frustum := c.ExtractPlanes(viewProjection, cullgo.DepthZeroToOne)
//
//	boxes := []cullgo.AABB{
//	    {Center: cullgo.Vec3{X: 0, Y: 0, Z: -5}, HalfExtent: cullgo.Vec3{X: 1, Y: 1, Z: 1}},
//	    // ...
//	}
//	visible := c.Cull(frustum, boxes, nil)
//	for i, v := range visible {
//	    if v {
//	        // boxes[i] is inside or intersecting the frustum
//	    }
//	}
//
// # Depth Convention
//
// ExtractPlanes must be told which depth convention the projection
// matrix uses: DepthZeroToOne for [0,1] clip depth (D3D, Vulkan, wgpu,
// reversed-z) or DepthNegOneToOne for [-1,1] (classic OpenGL). Verify
// against the projection math of the renderer supplying the matrix;
// the wrong convention silently miscomputes the near and far planes.
//
// # Back-End Selection
//
// The fastest available path is detected once at process start and
// never changes; cullgo.Detect reports the selection and the CPU
// feature flags for diagnostics. Set CULLGO_SIMD (e.g. "scalar",
// "avx2") to force a path - useful for A/B benchmarking and for
// verifying cross-path equivalence on your own data.
//
// # Concurrency
//
// The engine holds no mutable shared state beyond the once-detected
// path. A Culler reuses staging buffers and is therefore single-
// goroutine; create one per goroutine, or use CullParallel to shard
// one large input across workers.
package cullgo
