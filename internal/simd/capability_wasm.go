//go:build wasm

package simd

func init() {
	// The Go wasm port has no runtime feature probe. SIMD128 is part of
	// the WebAssembly 2.0 baseline shipped by every current engine, so
	// the 128-bit kernel strategy is assumed available.
	hasSIMD128 = true
	initCapabilities()
}
