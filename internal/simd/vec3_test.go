package simd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3x4FromSlots(t *testing.T) {
	v := Vec3x4FromSlots(
		[3]float32{1, 2, 3},
		[3]float32{4, 5, 6},
		[3]float32{7, 8, 9},
		[3]float32{10, 11, 12},
	)

	// Slot i across X/Y/Z belongs to logical item i.
	assert.Equal(t, Float32x4{1, 4, 7, 10}, v.X)
	assert.Equal(t, Float32x4{2, 5, 8, 11}, v.Y)
	assert.Equal(t, Float32x4{3, 6, 9, 12}, v.Z)
}

func TestSplatVec3x4(t *testing.T) {
	v := SplatVec3x4(1, 2, 3)
	assert.Equal(t, SplatFloat32x4(1), v.X)
	assert.Equal(t, SplatFloat32x4(2), v.Y)
	assert.Equal(t, SplatFloat32x4(3), v.Z)
}

func TestVec3x4Add(t *testing.T) {
	a := SplatVec3x4(1, 2, 3)
	b := SplatVec3x4(10, 20, 30)
	sum := a.Add(b)
	assert.Equal(t, SplatVec3x4(11, 22, 33), sum)
}

func TestVec3x4Dot(t *testing.T) {
	a := Vec3x4FromSlots(
		[3]float32{1, 0, 0},
		[3]float32{0, 1, 0},
		[3]float32{1, 2, 3},
		[3]float32{-1, -1, -1},
	)
	b := SplatVec3x4(2, 4, 6)

	dots := a.Dot(b)
	assert.Equal(t, Float32x4{2, 4, 28, -12}, dots)
}

func TestVec3x4Scale(t *testing.T) {
	v := SplatVec3x4(2, 4, 6).Scale(0.5)
	assert.Equal(t, SplatVec3x4(1, 2, 3), v)
}
