//go:build arm64

package q15

import "golang.org/x/sys/cpu"

func init() {
	// Check for Q15_NO_SIMD environment variable first
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available.
	// It's part of the ARMv8-A base architecture.
	// We still check the cpu package for future SVE support.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 16 // NEON is 128-bit (16 bytes)
		currentName = "neon"
	} else {
		// Fallback to scalar (should never happen on ARMv8+)
		setScalarMode()
	}

	// Future: SVE support (scalable vector length)
	// if cpu.ARM64.HasSVE {
	//     currentWidth = ... // SVE width is variable
	// }
}
