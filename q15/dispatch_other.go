//go:build !amd64 && !arm64

package q15

func init() {
	// Other architectures fall back to scalar mode for now.
	// Future implementations will add:
	// - riscv64: Vector extension support (the natural home of this
	//   kernel's vsetvl/vnclip shape)
	// - wasm: SIMD128 support
	setScalarMode()
}
