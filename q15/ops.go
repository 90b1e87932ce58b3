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

// This file provides the chunk-level operations the strip-mining
// kernel is built from. They are pure Go, scalar-emulated per lane;
// each corresponds to one step of the hardware sequence
// (load, widening multiply, widening add, store).

// Load16 loads up to vl elements from src into a chunk.
// If src is shorter than vl, the chunk holds len(src) lanes.
func Load16(src []int16, vl int) Vec16 {
	n := min(len(src), vl)
	if n < 0 {
		n = 0
	}
	data := make([]int16, n)
	copy(data, src[:n])
	return Vec16{data: data}
}

// Store16 writes a chunk's lanes to dst.
func Store16(v Vec16, dst []int16) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// WidenMul multiplies each lane of b by the scalar alpha, widening to
// int32 lanes. Both operands are sign-extended before the multiply,
// so the worst case (-32768 * -32768 = 1<<30) fits without overflow.
func WidenMul(b Vec16, alpha int16) Vec32 {
	result := make([]int32, len(b.data))
	wa := int32(alpha)
	for i := range b.data {
		result[i] = wa * int32(b.data[i])
	}
	return Vec32{data: result}
}

// WidenAdd adds each lane of a, sign-extended to int32, to the
// corresponding wide lane of p. A 16x16-bit product plus a 16-bit
// addend cannot overflow int32, so the sum is exact.
func WidenAdd(p Vec32, a Vec16) Vec32 {
	n := min(len(p.data), len(a.data))
	result := make([]int32, n)
	for i := 0; i < n; i++ {
		result[i] = p.data[i] + int32(a.data[i])
	}
	return Vec32{data: result}
}
