package simd

import "strings"

// Path identifies the instruction-set back end used to execute batched
// culling kernels.
type Path uint8

const (
	// Scalar is the portable pure Go implementation (always available).
	Scalar Path = iota
	// Wasm128 is WebAssembly 128-bit SIMD.
	Wasm128
	// NEON is ARM64 NEON (128-bit, ASIMD).
	NEON
	// SSE42 is x86-64 SSE4.2 (128-bit).
	SSE42
	// AVX2 is x86-64 AVX2 with FMA (256-bit).
	AVX2
	// AVX512 is x86-64 AVX-512 (512-bit, F+BW).
	AVX512
)

// String returns the string representation of a Path.
func (p Path) String() string {
	switch p {
	case Scalar:
		return "scalar"
	case Wasm128:
		return "wasm128"
	case NEON:
		return "neon"
	case SSE42:
		return "sse4.2"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

// ParsePath parses a string into a Path value.
func ParsePath(s string) (Path, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scalar":
		return Scalar, true
	case "wasm128":
		return Wasm128, true
	case "neon":
		return NEON, true
	case "sse4.2", "sse42":
		return SSE42, true
	case "avx2":
		return AVX2, true
	case "avx512":
		return AVX512, true
	default:
		return Scalar, false
	}
}
