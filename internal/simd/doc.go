// Package simd implements the batched frustum-culling kernels.
//
// # Layout
//
// Four axis-aligned bounding boxes are processed at a time in
// structure-of-arrays form: Float32x4 is the 4-wide lane, Vec3x4 packs
// four 3D points as three lanes, AABBx4 packs four boxes as min/max
// Vec3x4 pairs.
//
// # Dispatch
//
// Runtime CPU feature detection selects one of six back ends at
// startup (AVX-512, AVX2, SSE4.2, NEON, WASM SIMD128, Scalar); every
// lane and batch operation routes through the selected kernel
// strategy. The scalar strategy is the semantic reference - all
// strategies produce bit-identical masks for identical inputs.
//
// Set CULLGO_SIMD to force a specific path (e.g. "scalar", "avx2");
// an unavailable override falls back to auto-detection.
package simd
