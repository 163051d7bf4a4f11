package simd

// Float32x4 is a lane of four packed float32 values, the fundamental
// 4-wide unit of the culling kernels. It is an immutable value type:
// every operation is pure and returns a new lane. Arithmetic follows
// ordinary IEEE-754 semantics - NaN propagates and division by zero
// yields an infinity or NaN in that slot, never a panic.
//
// All arithmetic routes through the kernel strategy selected at
// startup; the scalar strategy is the semantic reference.
type Float32x4 [4]float32

// NewFloat32x4 builds a lane from four discrete values.
func NewFloat32x4(a, b, c, d float32) Float32x4 {
	return Float32x4{a, b, c, d}
}

// SplatFloat32x4 broadcasts a single value across all four slots.
func SplatFloat32x4(v float32) Float32x4 {
	return Float32x4{v, v, v, v}
}

// Add returns the element-wise sum of v and o.
func (v Float32x4) Add(o Float32x4) Float32x4 {
	return active.add(v, o)
}

// Sub returns the element-wise difference of v and o.
func (v Float32x4) Sub(o Float32x4) Float32x4 {
	return active.sub(v, o)
}

// Mul returns the element-wise product of v and o.
func (v Float32x4) Mul(o Float32x4) Float32x4 {
	return active.mul(v, o)
}

// Div returns the element-wise quotient of v and o.
func (v Float32x4) Div(o Float32x4) Float32x4 {
	return active.div(v, o)
}

// Min returns the element-wise minimum of v and o.
func (v Float32x4) Min(o Float32x4) Float32x4 {
	return active.min(v, o)
}

// Max returns the element-wise maximum of v and o.
func (v Float32x4) Max(o Float32x4) Float32x4 {
	return active.max(v, o)
}

// Neg returns the element-wise negation of v.
func (v Float32x4) Neg() Float32x4 {
	return active.sub(Float32x4{}, v)
}

// Abs returns the element-wise absolute value of v, computed as
// max(v, -v) so no dedicated abs kernel is required.
func (v Float32x4) Abs() Float32x4 {
	return active.max(v, v.Neg())
}
