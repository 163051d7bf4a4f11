package cullgo

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cubeFrustum builds six axis-aligned planes at distance d from the
// origin in every direction, normals pointing inward: the interior is
// the cube |x|,|y|,|z| < d.
func cubeFrustum(d float32) *Frustum {
	return FrustumFromPlanes([6]Plane{
		{Normal: Vec3{X: 1}, D: d},
		{Normal: Vec3{X: -1}, D: d},
		{Normal: Vec3{Y: 1}, D: d},
		{Normal: Vec3{Y: -1}, D: d},
		{Normal: Vec3{Z: 1}, D: d},
		{Normal: Vec3{Z: -1}, D: d},
	})
}

func randomBoxes(rng *rand.Rand, n int) []AABB {
	boxes := make([]AABB, n)
	for i := range boxes {
		boxes[i] = AABB{
			Center: Vec3{
				X: rng.Float32()*60 - 30,
				Y: rng.Float32()*60 - 30,
				Z: rng.Float32()*60 - 30,
			},
			HalfExtent: Vec3{
				X: rng.Float32() * 3,
				Y: rng.Float32() * 3,
				Z: rng.Float32() * 3,
			},
		}
	}
	return boxes
}

func TestCullCubeScenario(t *testing.T) {
	f := cubeFrustum(10)

	boxes := []AABB{
		{Center: Vec3{0, 0, 0}, HalfExtent: Vec3{1, 1, 1}},  // inside
		{Center: Vec3{20, 0, 0}, HalfExtent: Vec3{1, 1, 1}}, // past the right plane
		{Center: Vec3{0, 20, 0}, HalfExtent: Vec3{1, 1, 1}}, // past the top plane
		{Center: Vec3{9, 9, 9}, HalfExtent: Vec3{1, 1, 1}},  // corner, intersecting
	}

	visible := Cull(f, boxes)
	require.Len(t, visible, 4)
	assert.True(t, visible[0])
	assert.False(t, visible[1])
	assert.False(t, visible[2])
	assert.True(t, visible[3])
}

func TestCullBoundaryInclusive(t *testing.T) {
	f := cubeFrustum(10)

	// dist(-1) + radius(1) == 0 against the x = 10 plane: exactly
	// touching must classify visible.
	touching := AABB{Center: Vec3{X: 11}, HalfExtent: Vec3{1, 1, 1}}
	// One ulp-ish further is out.
	beyond := AABB{Center: Vec3{X: 11.5}, HalfExtent: Vec3{1, 1, 1}}

	visible := Cull(f, []AABB{touching, beyond})
	assert.True(t, visible[0])
	assert.False(t, visible[1])
}

func TestCullRemainderHandling(t *testing.T) {
	f := cubeFrustum(10)

	// 5 objects (not a multiple of 4): exactly 5 outputs, and the 5th
	// is not corrupted by padding.
	boxes := []AABB{
		{Center: Vec3{0, 0, 0}, HalfExtent: Vec3{1, 1, 1}},
		{Center: Vec3{50, 0, 0}, HalfExtent: Vec3{1, 1, 1}},
		{Center: Vec3{0, 50, 0}, HalfExtent: Vec3{1, 1, 1}},
		{Center: Vec3{0, 0, 50}, HalfExtent: Vec3{1, 1, 1}},
		{Center: Vec3{-5, -5, -5}, HalfExtent: Vec3{1, 1, 1}},
	}

	visible := Cull(f, boxes)
	require.Len(t, visible, 5)
	assert.Equal(t, []bool{true, false, false, false, true}, visible)
}

func TestCullLengthAndOrderPreserving(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	f := cubeFrustum(15)
	c := New()

	for _, n := range []int{0, 1, 2, 3, 4, 5, 7, 8, 9, 100, 1001} {
		boxes := randomBoxes(rng, n)
		visible := c.Cull(f, boxes, nil)
		require.Len(t, visible, n)

		// output[i] corresponds to input[i] regardless of batching.
		for i, b := range boxes {
			assert.Equal(t, f.ContainsAABB(b), visible[i], "n=%d i=%d", n, i)
		}
	}
}

func TestCullIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(33))
	f := cubeFrustum(12)
	boxes := randomBoxes(rng, 57)
	c := New()

	first := append([]bool(nil), c.Cull(f, boxes, nil)...)
	second := c.Cull(f, boxes, nil)
	assert.Equal(t, first, second)
}

func TestCullReusesProvidedBuffer(t *testing.T) {
	f := cubeFrustum(10)
	boxes := randomBoxes(rand.New(rand.NewSource(1)), 8)

	buf := make([]bool, 0, 16)
	out := New().Cull(f, boxes, buf)
	assert.Len(t, out, 8)
	assert.Equal(t, 16, cap(out))
}

func TestCullParallelMatchesCull(t *testing.T) {
	rng := rand.New(rand.NewSource(44))
	f := cubeFrustum(20)

	for _, workers := range []int{1, 2, 3, 8} {
		for _, n := range []int{0, 5, 64, 1000, 4096} {
			boxes := randomBoxes(rng, n)

			want := New().Cull(f, boxes, nil)

			c := New(WithWorkers(workers))
			got, err := c.CullParallel(context.Background(), f, boxes, nil)
			require.NoError(t, err)
			assert.Equal(t, want, got, "workers=%d n=%d", workers, n)
		}
	}
}

func TestCullParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := cubeFrustum(10)
	boxes := randomBoxes(rand.New(rand.NewSource(9)), 10000)

	c := New(WithWorkers(4))
	_, err := c.CullParallel(ctx, f, boxes, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCullBitmap(t *testing.T) {
	rng := rand.New(rand.NewSource(55))
	f := cubeFrustum(18)
	boxes := randomBoxes(rng, 333)
	c := New()

	visible := append([]bool(nil), c.Cull(f, boxes, nil)...)
	bm := c.CullBitmap(f, boxes)

	for i, v := range visible {
		assert.Equal(t, v, bm.Contains(uint32(i)), "index %d", i)
	}
	count := 0
	for _, v := range visible {
		if v {
			count++
		}
	}
	assert.Equal(t, uint64(count), bm.GetCardinality())
}

func TestCullStats(t *testing.T) {
	f := cubeFrustum(10)
	c := New()

	boxes := []AABB{
		{Center: Vec3{0, 0, 0}, HalfExtent: Vec3{1, 1, 1}},
		{Center: Vec3{50, 0, 0}, HalfExtent: Vec3{1, 1, 1}},
		{Center: Vec3{1, 1, 1}, HalfExtent: Vec3{1, 1, 1}},
		{Center: Vec3{0, 0, -50}, HalfExtent: Vec3{1, 1, 1}},
		{Center: Vec3{2, 2, 2}, HalfExtent: Vec3{1, 1, 1}},
	}
	c.Cull(f, boxes, nil)

	stats := c.LastStats()
	assert.Equal(t, 5, stats.Checked)
	assert.Equal(t, 3, stats.Visible)
	assert.Equal(t, 2, stats.Batches)
	assert.Equal(t, ActivePath(), stats.Path)
}

func TestMetricsCollector(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	c := New(WithMetricsCollector(metrics))
	f := cubeFrustum(10)

	c.Cull(f, randomBoxes(rand.New(rand.NewSource(2)), 10), nil)
	c.Cull(f, randomBoxes(rand.New(rand.NewSource(3)), 6), nil)

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.CullCount)
	assert.Equal(t, int64(16), stats.CullObjects)
}

func TestMetricsRecordExtract(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	c := New(WithMetricsCollector(metrics))

	c.ExtractPlanes(identity(), DepthNegOneToOne)
	c.ExtractPlanes(Mat4{}, DepthZeroToOne) // all planes degenerate

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.ExtractCount)
	assert.Equal(t, int64(6), stats.ExtractDegenerate)
}

func TestBasicMetricsCollectorAverages(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	metrics.RecordCull(10, 4, 100*time.Millisecond)
	metrics.RecordCull(10, 2, 200*time.Millisecond)

	stats := metrics.GetStats()
	assert.Equal(t, int64(6), stats.CullVisible)
	assert.Equal(t, (150 * time.Millisecond).Nanoseconds(), stats.CullAvgNanos)
}

func TestCullEmptyInput(t *testing.T) {
	f := cubeFrustum(10)
	visible := Cull(f, nil)
	assert.Empty(t, visible)
}

func TestWithWorkersClamped(t *testing.T) {
	c := New(WithWorkers(-3))
	f := cubeFrustum(10)
	got, err := c.CullParallel(context.Background(), f, randomBoxes(rand.New(rand.NewSource(6)), 20), nil)
	require.NoError(t, err)
	assert.Len(t, got, 20)
}
