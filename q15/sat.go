// Copyright 2025 go-q15 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package q15

// This file provides the saturation primitive and the fixed-point
// rounding modes used by the narrowing step. Saturation clamps to the
// Q15 range instead of wrapping.

// SatQ15 clamps a 32-bit value to the 16-bit signed range.
// Values above 32767 become 32767, values below -32768 become -32768,
// everything else truncates to int16 exactly. Total over all of int32.
func SatQ15(v int32) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}

// RoundingMode selects how bits shifted out by a narrowing right
// shift are folded back into the result. With shift 0 no bits are
// discarded and every mode produces the same value, so the AXPY
// kernels (which never shift) are mode-independent. The modes match
// the fixed-point rounding of the RISC-V vector narrowing clip.
type RoundingMode int

const (
	// RoundNearestUp rounds to nearest, ties away from zero
	// (adds the most significant discarded bit).
	RoundNearestUp RoundingMode = iota

	// RoundNearestEven rounds to nearest, ties to even.
	RoundNearestEven

	// RoundDown truncates toward negative infinity.
	RoundDown

	// RoundOdd sets the low result bit if any bit was discarded
	// (jamming; preserves inexactness for later rounding).
	RoundOdd
)

// String returns a human-readable name for the rounding mode.
func (m RoundingMode) String() string {
	switch m {
	case RoundNearestUp:
		return "rnu"
	case RoundNearestEven:
		return "rne"
	case RoundDown:
		return "rdn"
	case RoundOdd:
		return "rod"
	default:
		return "unknown"
	}
}

// roundShift computes v >> shift with the discarded bits folded in
// according to mode. shift must be in [0, 31]. The shift is
// arithmetic, so the rounding works on the two's complement bit
// pattern exactly as the hardware operation does.
func roundShift(v int32, shift uint, mode RoundingMode) int32 {
	if shift == 0 {
		return v
	}
	r := v >> shift
	lost := v & ((1 << shift) - 1)
	switch mode {
	case RoundNearestUp:
		r += (v >> (shift - 1)) & 1
	case RoundNearestEven:
		half := int32(1) << (shift - 1)
		if lost > half || (lost == half && r&1 == 1) {
			r++
		}
	case RoundDown:
		// truncation: nothing to fold in
	case RoundOdd:
		if lost != 0 {
			r |= 1
		}
	}
	return r
}

// NarrowClip applies a rounding right shift to each int32 lane and
// saturates the result to the int16 range, in one fused step. It is
// the lane-wise composition of roundShift and SatQ15, equivalent to
// the hardware's narrowing clip instruction.
//
// The kernels in this package always call it with shift 0, where the
// rounding mode is inert: no bits are discarded, so the step reduces
// to saturate-and-truncate. Nonzero shifts are headroom for a future
// fractional (Q-format) variant.
func NarrowClip(v Vec32, shift uint, mode RoundingMode) Vec16 {
	result := make([]int16, len(v.data))
	for i := range v.data {
		result[i] = SatQ15(roundShift(v.data[i], shift, mode))
	}
	return Vec16{data: result}
}
