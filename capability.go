package cullgo

import (
	"github.com/codeyousef/cullgo/internal/simd"
)

// Path identifies the instruction-set back end selected by capability
// detection at process start. The value is process-wide, computed
// once, and immutable thereafter.
type Path = simd.Path

const (
	PathScalar  = simd.Scalar
	PathWasm128 = simd.Wasm128
	PathNEON    = simd.NEON
	PathSSE42   = simd.SSE42
	PathAVX2    = simd.AVX2
	PathAVX512  = simd.AVX512
)

// ActivePath returns the back end every culling call executes on.
// Detection runs exactly once, before any other code; concurrent
// first-callers always observe the same value. Set CULLGO_SIMD to
// force a path (falls back to auto-detection if unavailable).
func ActivePath() Path {
	return simd.Active()
}

// Capabilities is a snapshot of the detected CPU/platform features,
// for diagnostics and logging by the host.
type Capabilities struct {
	Path        Path
	HasAVX512   bool
	HasAVX2     bool
	HasSSE42    bool
	HasNEON     bool
	HasWasmSIMD bool

	// Vendor and Brand identify the CPU on x86-64; empty elsewhere.
	Vendor string
	Brand  string

	// Overridden is true when CULLGO_SIMD forced the active path.
	Overridden bool
}

// Detect returns the capability snapshot. It never fails: on a machine
// with no advertised accelerated feature the Path is PathScalar.
// Calling it repeatedly returns the same result; reprobing is not
// performed after first detection.
func Detect() Capabilities {
	return Capabilities{
		Path:        simd.Active(),
		HasAVX512:   simd.HasAVX512(),
		HasAVX2:     simd.HasAVX2(),
		HasSSE42:    simd.HasSSE42(),
		HasNEON:     simd.HasNEON(),
		HasWasmSIMD: simd.HasWasmSIMD(),
		Vendor:      simd.Vendor(),
		Brand:       simd.Brand(),
		Overridden:  simd.IsOverridden(),
	}
}

// HasSIMD reports whether any accelerated path is active.
func (c Capabilities) HasSIMD() bool {
	return c.Path != PathScalar
}

// ExpectedSpeedup returns the rough culling throughput multiplier of
// the active path relative to scalar, for capacity planning and HUD
// display. Measured on batched AABB workloads; actual gains vary.
func (c Capabilities) ExpectedSpeedup() float32 {
	switch c.Path {
	case PathAVX512:
		return 2.0
	case PathAVX2:
		return 1.7
	case PathSSE42:
		return 1.5
	case PathNEON:
		return 1.6
	case PathWasm128:
		return 1.4
	default:
		return 1.0
	}
}
