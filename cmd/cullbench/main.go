// Command cullbench measures frustum-culling throughput on the local
// machine. Run it under different CULLGO_SIMD settings to compare back
// ends:
//
//	cullbench -objects 100000 -iters 200
//	CULLGO_SIMD=scalar cullbench -objects 100000 -iters 200
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/codeyousef/cullgo"
)

func main() {
	var (
		objects = flag.Int("objects", 100000, "number of AABBs per culling call")
		iters   = flag.Int("iters", 100, "number of culling calls to time")
		workers = flag.Int("workers", 0, "if > 0, also benchmark CullParallel with this worker count")
		seed    = flag.Int64("seed", 1, "RNG seed for box placement")
	)
	flag.Parse()

	caps := cullgo.Detect()
	fmt.Printf("path: %s", caps.Path)
	if caps.Overridden {
		fmt.Print(" (forced via CULLGO_SIMD)")
	}
	fmt.Println()
	if caps.Brand != "" {
		fmt.Printf("cpu: %s\n", caps.Brand)
	}
	fmt.Printf("features: avx512=%v avx2=%v sse4.2=%v neon=%v wasm128=%v\n",
		caps.HasAVX512, caps.HasAVX2, caps.HasSSE42, caps.HasNEON, caps.HasWasmSIMD)

	frustum, boxes := scene(*seed, *objects)
	c := cullgo.New()
	visible := make([]bool, *objects)

	// Warm up staging buffers before timing.
	visible = c.Cull(frustum, boxes, visible)

	start := time.Now()
	for i := 0; i < *iters; i++ {
		visible = c.Cull(frustum, boxes, visible)
	}
	report("Cull", *objects, *iters, time.Since(start))

	stats := c.LastStats()
	fmt.Printf("  visible: %d/%d (%.1f%%)\n",
		stats.Visible, stats.Checked, 100*float64(stats.Visible)/float64(stats.Checked))

	if *workers > 0 {
		pc := cullgo.New(cullgo.WithWorkers(*workers))
		ctx := context.Background()

		visible, _ = pc.CullParallel(ctx, frustum, boxes, visible)

		start = time.Now()
		for i := 0; i < *iters; i++ {
			visible, _ = pc.CullParallel(ctx, frustum, boxes, visible)
		}
		report(fmt.Sprintf("CullParallel(%d)", *workers), *objects, *iters, time.Since(start))
	}
	_ = visible
}

func scene(seed int64, n int) (*cullgo.Frustum, []cullgo.AABB) {
	m := perspectiveReversedZ(math.Pi/3, 16.0/9.0, 0.1, 500)
	frustum := cullgo.ExtractPlanes(m, cullgo.DepthZeroToOne)

	rng := rand.New(rand.NewSource(seed))
	boxes := make([]cullgo.AABB, n)
	for i := range boxes {
		boxes[i] = cullgo.AABB{
			Center: cullgo.Vec3{
				X: rng.Float32()*400 - 200,
				Y: rng.Float32()*400 - 200,
				Z: -rng.Float32() * 400,
			},
			HalfExtent: cullgo.Vec3{
				X: rng.Float32()*4 + 0.5,
				Y: rng.Float32()*4 + 0.5,
				Z: rng.Float32()*4 + 0.5,
			},
		}
	}
	return frustum, boxes
}

func perspectiveReversedZ(fovY, aspect, near, far float32) cullgo.Mat4 {
	f := float32(1.0 / math.Tan(float64(fovY)/2))
	return cullgo.Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, near / (far - near), near * far / (far - near),
		0, 0, -1, 0,
	}
}

func report(name string, objects, iters int, elapsed time.Duration) {
	avg := elapsed / time.Duration(iters)
	perSec := float64(objects) * float64(iters) / elapsed.Seconds()
	fmt.Printf("%s: %d iters, total %s, avg %s/call, %.2fM boxes/sec\n",
		name, iters, elapsed.Round(time.Microsecond), avg.Round(time.Nanosecond), perSec/1e6)
}
