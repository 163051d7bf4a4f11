package simd

import (
	"os"
	"runtime"
)

// Package-level state - initialized once at package init.
// No mutex needed: Go guarantees init() runs before any other code,
// so concurrent first-callers always observe the same detected path.
var (
	// activePath is the selected culling back end.
	activePath Path

	// active is the kernel strategy matching activePath.
	active ops = scalarOps{}

	// hasOverride is true if CULLGO_SIMD was set.
	hasOverride bool

	// CPU feature flags (set by platform-specific init)
	hasSSE42    bool // x86-64 SSE4.2
	hasAVX2     bool // x86-64 AVX2 + FMA
	hasAVX512F  bool // x86-64 AVX-512 Foundation
	hasAVX512BW bool // x86-64 AVX-512 Byte/Word
	hasASIMD    bool // ARM64 NEON
	hasSIMD128  bool // WebAssembly SIMD128

	// CPU identification for diagnostics (set on amd64)
	cpuVendor string
	cpuBrand  string
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	// Check for environment override
	if override := os.Getenv("CULLGO_SIMD"); override != "" {
		if p, ok := ParsePath(override); ok {
			hasOverride = true
			// Validate the override is available
			if isPathAvailable(p) {
				activePath = p
				active = kernelFor(p)
				return
			}
			// Unavailable override - fall through to auto-detection
		}
	}

	activePath = selectBestPath()
	active = kernelFor(activePath)
}

// isPathAvailable checks if a Path is supported on this CPU.
func isPathAvailable(p Path) bool {
	switch p {
	case Scalar:
		return true
	case Wasm128:
		return hasSIMD128
	case NEON:
		return hasASIMD
	case SSE42:
		return hasSSE42
	case AVX2:
		return hasAVX2
	case AVX512:
		return hasAVX512F && hasAVX512BW
	default:
		return false
	}
}

// selectBestPath chooses the fastest available back end, in strict
// preference order AVX512 > AVX2 > SSE42 > NEON > Wasm128 > Scalar.
func selectBestPath() Path {
	switch runtime.GOARCH {
	case "amd64":
		if hasAVX512F && hasAVX512BW {
			return AVX512
		}
		if hasAVX2 {
			return AVX2
		}
		if hasSSE42 {
			return SSE42
		}
	case "arm64":
		if hasASIMD {
			return NEON
		}
	case "wasm":
		if hasSIMD128 {
			return Wasm128
		}
	}
	return Scalar
}

// Active returns the back end selected at startup. The value never
// changes after process start; reprobing is not performed.
func Active() Path {
	return activePath
}

// IsOverridden returns true if CULLGO_SIMD forced the active path.
func IsOverridden() bool {
	return hasOverride
}

// Vendor returns the CPU vendor string, if known.
func Vendor() string {
	return cpuVendor
}

// Brand returns the CPU brand string, if known.
func Brand() string {
	return cpuBrand
}

// HasSSE42 returns true if x86-64 SSE4.2 is available.
func HasSSE42() bool {
	return hasSSE42
}

// HasAVX2 returns true if x86-64 AVX2+FMA is available.
func HasAVX2() bool {
	return hasAVX2
}

// HasAVX512 returns true if x86-64 AVX-512 (F+BW) is available.
func HasAVX512() bool {
	return hasAVX512F && hasAVX512BW
}

// HasNEON returns true if ARM64 NEON is available.
func HasNEON() bool {
	return hasASIMD
}

// HasWasmSIMD returns true if WebAssembly SIMD128 is available.
func HasWasmSIMD() bool {
	return hasSIMD128
}
