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

// AxpyRef computes y[i] = clamp(a[i] + alpha*b[i], -32768, 32767)
// serially, one element at a time. It is the golden model: for every
// input, the output of every other implementation in this package must
// equal this one's, element for element.
//
// The accumulation is exact: a 16x16-bit signed product fits in int32
// and adding a sign-extended int16 cannot overflow it, so the only
// range reduction is the final saturation. No rounding occurs in this
// path since there is no right shift.
//
// The element count is the minimum of the three slice lengths. y must
// not overlap a or b.
func AxpyRef(a, b, y []int16, alpha int16) {
	n := min(len(y), min(len(a), len(b)))
	wa := int32(alpha)
	for i := 0; i < n; i++ {
		y[i] = SatQ15(int32(a[i]) + wa*int32(b[i]))
	}
}

// Axpy computes the same saturating multiply-accumulate as AxpyRef
// using the native data-parallel width detected at startup. Output is
// bit-identical to AxpyRef for all inputs.
func Axpy(a, b, y []int16, alpha int16) {
	AxpyOn(Native(), a, b, y, alpha)
}

// AxpyOn runs the strip-mining kernel under an explicit target. Each
// iteration re-queries the target for the chunk width, loads that many
// elements from a and b, widens, multiplies b by alpha, adds a, and
// narrows back to int16 with saturation. The chunks are disjoint
// slices of the arrays, so the result does not depend on the target's
// width: AxpyOn(t, ...) equals AxpyRef(...) bit for bit for every t.
//
// The kernel allocates nothing visible to the caller and retains no
// state between calls. A zero-length input is a zero-iteration no-op.
func AxpyOn(t Target, a, b, y []int16, alpha int16) {
	remaining := min(len(y), min(len(a), len(b)))
	offset := 0

	for remaining > 0 {
		vl := t.VL(remaining)

		va := Load16(a[offset:], vl)
		vb := Load16(b[offset:], vl)

		// Widen to 32-bit lanes, multiply, then add
		prod := WidenMul(vb, alpha)
		sum := WidenAdd(prod, va)

		// Saturate and narrow in one step. Shift 0 means just
		// saturate to the int16 range; the rounding mode is inert.
		vy := NarrowClip(sum, 0, RoundNearestUp)
		Store16(vy, y[offset:offset+vl])

		offset += vl
		remaining -= vl
	}
}
