//go:build !amd64 && !arm64 && !wasm

package simd

func init() {
	// No accelerated back end on this architecture; Scalar is the floor.
	initCapabilities()
}
