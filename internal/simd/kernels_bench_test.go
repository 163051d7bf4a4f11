package simd

import (
	"fmt"
	"math/rand"
	"testing"
)

func benchInputs(n int) ([]AABBx4, []CullPlane, []uint8) {
	rng := rand.New(rand.NewSource(99))
	batches := randomBatches(rng, n)
	planes := randomPlanes(rng, 6)
	out := make([]uint8, n)
	return batches, planes, out
}

func BenchmarkCullBatchStrategies(b *testing.B) {
	const nBatches = 2048 // 8192 boxes

	batches, planes, out := benchInputs(nBatches)

	for _, strat := range allStrategies {
		b.Run(strat.name(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				strat.cullBatch(batches, planes, out)
			}
			b.SetBytes(int64(nBatches * 4 * 6 * 4)) // floats touched per pass
		})
	}
}

func BenchmarkCullAABBs(b *testing.B) {
	for _, n := range []int{64, 1024, 16384} {
		batches, planes, out := benchInputs(n)
		b.Run(fmt.Sprintf("batches_%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				CullAABBs(batches, planes, out)
			}
		})
	}
}

func BenchmarkPlaneTest(b *testing.B) {
	rng := rand.New(rand.NewSource(5))
	batches := randomBatches(rng, 1)
	planes := randomPlanes(rng, 1)

	var sink uint8
	for i := 0; i < b.N; i++ {
		sink = batches[0].PlaneTest(planes[0].Normal, planes[0].Offset)
	}
	_ = sink
}
