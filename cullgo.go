package cullgo

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/codeyousef/cullgo/internal/simd"
)

// AABB is one culling candidate: an axis-aligned bounding box given as
// a world-space center and half-extent. Both must be in the same space
// as the view-projection matrix the frustum was extracted from.
type AABB struct {
	Center     Vec3
	HalfExtent Vec3
}

// CullStats is a snapshot of the most recent culling call.
type CullStats struct {
	// Checked is the number of input boxes.
	Checked int
	// Visible is the number that survived all planes.
	Visible int
	// Batches is the number of 4-wide groups processed, including the
	// padded remainder group.
	Batches int
	// Path is the back end the call executed on.
	Path Path
	// Duration is the wall time of the call.
	Duration time.Duration
}

// Culler drives batched frustum culling. It owns reusable staging
// buffers for batch packing, so a long-lived Culler performs
// allocation-free per-frame culls.
//
// A Culler is not safe for concurrent use; create one per goroutine
// (construction is cheap) or use CullParallel, which shards work
// internally over goroutine-local staging.
type Culler struct {
	logger  *Logger
	metrics MetricsCollector
	workers int

	// staging reused across calls, never exposed to the caller
	batches []simd.AABBx4
	masks   []uint8
	scratch []bool

	lastStats atomic.Pointer[CullStats]
}

// New creates a Culler.
func New(optFns ...Option) *Culler {
	o := applyOptions(optFns)
	c := &Culler{
		logger:  o.logger,
		metrics: o.metrics,
		workers: o.workers,
	}

	caps := Detect()
	c.logger.Debug("culling back end selected",
		"path", caps.Path.String(),
		"overridden", caps.Overridden,
		"vendor", caps.Vendor,
	)
	return c
}

// Cull tests every box against every valid frustum plane and returns
// one boolean per box, in input order: true means the box survives all
// planes (inside or intersecting). If visible has sufficient capacity
// it is reused as the output, otherwise a new slice is allocated.
//
// Input items are packed into 4-wide groups in arrival order; a final
// short group is padded with zero boxes whose results are discarded,
// so output length always equals input length.
func (c *Culler) Cull(f *Frustum, boxes []AABB, visible []bool) []bool {
	start := time.Now()

	n := len(boxes)
	if cap(visible) >= n {
		visible = visible[:n]
	} else {
		visible = make([]bool, n)
	}
	if n == 0 {
		c.finish(0, 0, 0, time.Since(start))
		return visible
	}

	nBatches := (n + 3) / 4
	c.ensureStaging(nBatches)

	batches := c.batches[:nBatches]
	masks := c.masks[:nBatches]
	packBatches(boxes, batches)
	simd.CullAABBs(batches, f.broadcast, masks)

	count := unpackMasks(masks, visible)

	c.finish(n, count, nBatches, time.Since(start))
	return visible
}

// CullParallel is Cull with the input sharded across the configured
// worker count (WithWorkers, default GOMAXPROCS). Shard boundaries are
// 4-aligned and each worker writes a disjoint region of the output, so
// results are identical to Cull for any worker count. The only error
// returned is ctx's, if it is cancelled before all shards run.
func (c *Culler) CullParallel(ctx context.Context, f *Frustum, boxes []AABB, visible []bool) ([]bool, error) {
	start := time.Now()

	n := len(boxes)
	if cap(visible) >= n {
		visible = visible[:n]
	} else {
		visible = make([]bool, n)
	}

	workers := c.workers
	if workers < 1 {
		workers = 1
	}

	// Shard size, rounded up to whole batches.
	shard := (n + workers - 1) / workers
	shard = (shard + 3) &^ 3
	if shard >= n || workers == 1 {
		return c.Cull(f, boxes, visible), ctx.Err()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += shard {
		hi := lo + shard
		if hi > n {
			hi = n
		}
		lo, hi := lo, hi
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cullRange(f, boxes[lo:hi], visible[lo:hi])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return visible, err
	}

	count := 0
	for _, v := range visible {
		if v {
			count++
		}
	}
	c.finish(n, count, (n+3)/4, time.Since(start))
	return visible, nil
}

// CullBitmap is Cull with the result returned as the set of visible
// indices in a roaring bitmap, the compact form hosts typically feed
// to their draw-submission pass.
func (c *Culler) CullBitmap(f *Frustum, boxes []AABB) *roaring.Bitmap {
	c.scratch = c.Cull(f, boxes, c.scratch)

	bm := roaring.New()
	for i, v := range c.scratch {
		if v {
			bm.Add(uint32(i))
		}
	}
	return bm
}

// ExtractPlanes derives a frustum through this Culler, recording
// extraction metrics and logging degenerate planes.
func (c *Culler) ExtractPlanes(m Mat4, depth DepthRange) *Frustum {
	start := time.Now()
	f, err := ExtractPlanesStrict(m, depth)

	degenerate := 0
	var degenErr *ErrDegeneratePlane
	if errors.As(err, &degenErr) {
		degenerate = len(degenErr.Planes)
		c.logger.Warn("skipping degenerate frustum planes", "planes", degenErr.Planes)
	}
	c.metrics.RecordExtract(degenerate, time.Since(start))
	return f
}

// LastStats returns a snapshot of the most recent culling call.
func (c *Culler) LastStats() CullStats {
	if s := c.lastStats.Load(); s != nil {
		return *s
	}
	return CullStats{Path: ActivePath()}
}

// Cull culls boxes with a throwaway default Culler. For per-frame
// workloads create a Culler once and reuse its staging buffers.
func Cull(f *Frustum, boxes []AABB) []bool {
	return New().Cull(f, boxes, nil)
}

func (c *Culler) finish(checked, count, batches int, d time.Duration) {
	stats := &CullStats{
		Checked:  checked,
		Visible:  count,
		Batches:  batches,
		Path:     ActivePath(),
		Duration: d,
	}
	c.lastStats.Store(stats)
	c.metrics.RecordCull(checked, count, d)
	c.logger.Debug("culled",
		"checked", checked,
		"visible", count,
		"batches", batches,
		"duration", d,
	)
}

func (c *Culler) ensureStaging(nBatches int) {
	if cap(c.batches) < nBatches {
		c.batches = make([]simd.AABBx4, nBatches)
		c.masks = make([]uint8, nBatches)
	}
}

// cullRange culls one shard with goroutine-local staging.
func cullRange(f *Frustum, boxes []AABB, visible []bool) {
	nBatches := (len(boxes) + 3) / 4
	batches := make([]simd.AABBx4, nBatches)
	masks := make([]uint8, nBatches)

	packBatches(boxes, batches)
	simd.CullAABBs(batches, f.broadcast, masks)
	unpackMasks(masks, visible)
}

// packBatches fills out with 4-wide SoA groups in arrival order. Slots
// past the end of boxes stay zero boxes; their masks are never read.
func packBatches(boxes []AABB, out []simd.AABBx4) {
	for bi := range out {
		var centers, extents [4][3]float32

		base := bi * 4
		slots := len(boxes) - base
		if slots > 4 {
			slots = 4
		}
		for s := 0; s < slots; s++ {
			b := boxes[base+s]
			centers[s] = [3]float32{b.Center.X, b.Center.Y, b.Center.Z}
			extents[s] = [3]float32{b.HalfExtent.X, b.HalfExtent.Y, b.HalfExtent.Z}
		}

		out[bi] = simd.AABBx4FromCentersExtents(
			simd.Vec3x4FromSlots(centers[0], centers[1], centers[2], centers[3]),
			simd.Vec3x4FromSlots(extents[0], extents[1], extents[2], extents[3]),
		)
	}
}

// unpackMasks expands 4-bit batch masks into per-object booleans,
// truncating padding, and returns the visible count.
func unpackMasks(masks []uint8, visible []bool) int {
	count := 0
	for i := range visible {
		v := masks[i/4]&(1<<(i%4)) != 0
		visible[i] = v
		if v {
			count++
		}
	}
	return count
}
