package simd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFloat32x4(t *testing.T) {
	v := NewFloat32x4(1, 2, 3, 4)
	assert.Equal(t, Float32x4{1, 2, 3, 4}, v)
}

func TestSplatFloat32x4(t *testing.T) {
	v := SplatFloat32x4(5)
	assert.Equal(t, Float32x4{5, 5, 5, 5}, v)
}

func TestLaneArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		op       func(a, b Float32x4) Float32x4
		a, b     Float32x4
		expected Float32x4
	}{
		{"Add", Float32x4.Add, Float32x4{1, 2, 3, 4}, Float32x4{5, 6, 7, 8}, Float32x4{6, 8, 10, 12}},
		{"Sub", Float32x4.Sub, Float32x4{5, 6, 7, 8}, Float32x4{1, 2, 3, 4}, Float32x4{4, 4, 4, 4}},
		{"Mul", Float32x4.Mul, Float32x4{2, 3, 4, 5}, Float32x4{2, 2, 2, 2}, Float32x4{4, 6, 8, 10}},
		{"Div", Float32x4.Div, Float32x4{4, 6, 8, 10}, Float32x4{2, 2, 2, 2}, Float32x4{2, 3, 4, 5}},
		{"Min", Float32x4.Min, Float32x4{1, 5, 3, 8}, Float32x4{2, 3, 4, 7}, Float32x4{1, 3, 3, 7}},
		{"Max", Float32x4.Max, Float32x4{1, 5, 3, 8}, Float32x4{2, 3, 4, 7}, Float32x4{2, 5, 4, 8}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.op(tc.a, tc.b))
		})
	}
}

func TestLaneDivByZero(t *testing.T) {
	// IEEE-754: division by zero is an infinity or NaN, never a panic.
	v := Float32x4{1, -1, 0, 2}.Div(Float32x4{0, 0, 0, 1})
	assert.True(t, math.IsInf(float64(v[0]), 1))
	assert.True(t, math.IsInf(float64(v[1]), -1))
	assert.True(t, math.IsNaN(float64(v[2])))
	assert.Equal(t, float32(2), v[3])
}

func TestLaneNaNPropagation(t *testing.T) {
	nan := float32(math.NaN())
	v := Float32x4{nan, 1, 2, 3}.Add(Float32x4{1, 1, 1, 1})
	assert.True(t, math.IsNaN(float64(v[0])))
	assert.Equal(t, float32(2), v[1])
}

func TestLaneAbs(t *testing.T) {
	v := Float32x4{-1, 2, -3.5, 0}.Abs()
	assert.Equal(t, Float32x4{1, 2, 3.5, 0}, v)
}

func TestLaneNeg(t *testing.T) {
	v := Float32x4{-1, 2, 0, -4}.Neg()
	assert.Equal(t, float32(1), v[0])
	assert.Equal(t, float32(-2), v[1])
	assert.Equal(t, float32(4), v[3])
}
