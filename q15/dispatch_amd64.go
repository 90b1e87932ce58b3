//go:build amd64

package q15

import "golang.org/x/sys/cpu"

func init() {
	// Check for Q15_NO_SIMD environment variable first
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// SSE2 is part of the x86-64 baseline, so it is always available.
	// Prefer the widest extension the CPU reports.
	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW:
		// AVX512BW is required for 16-bit lane operations.
		currentLevel = DispatchAVX512
		currentWidth = 64
		currentName = "avx512"
	case cpu.X86.HasAVX2:
		currentLevel = DispatchAVX2
		currentWidth = 32
		currentName = "avx2"
	default:
		currentLevel = DispatchSSE2
		currentWidth = 16
		currentName = "sse2"
	}
}
