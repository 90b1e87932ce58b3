package q15

import (
	"os"
	"strconv"
)

// DispatchLevel represents the SIMD instruction set detected at startup.
// The kernels in this package are scalar-emulated per lane; the level
// determines the native chunk width they strip-mine with.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, one lane per step.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the register width in bytes for the current level.
// Set by init() in dispatch_*.go files.
var currentWidth int

// currentName is the human-readable name of the current level.
// Set by init() in dispatch_*.go files.
var currentName string

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentName
}

// NoSimdEnv checks if the Q15_NO_SIMD environment variable is set.
// When set, the native target falls back to one lane per step
// regardless of CPU capabilities. This is useful for testing and
// debugging.
func NoSimdEnv() bool {
	val := os.Getenv("Q15_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns the maximum number of int16 lanes processed per
// step at the current dispatch width.
//
// For example, with AVX2 (256 bits / 32 bytes): 32/2 = 16 lanes.
func MaxLanes() int {
	lanes := currentWidth / 2
	if lanes < 1 {
		return 1
	}
	return lanes
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 2 // one int16 lane
	currentName = "scalar"
}
