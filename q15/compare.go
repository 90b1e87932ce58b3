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

// Match reports whether ref and got agree elementwise, along with the
// maximum absolute difference observed. The difference is computed in
// int32 so that even the extreme case (-32768 vs 32767, difference
// 65535) cannot overflow. Both inputs are read-only.
//
// Comparison runs over the minimum of the two lengths. Comparing a
// slice against itself always reports a match with difference 0.
//
// Match is a verification utility for tests and harnesses; the
// kernels never call it.
func Match(ref, got []int16) (bool, int32) {
	n := min(len(ref), len(got))
	match := true
	var maxDiff int32

	for i := 0; i < n; i++ {
		diff := int32(ref[i]) - int32(got[i])
		if diff < 0 {
			diff = -diff
		}
		if diff > maxDiff {
			maxDiff = diff
		}
		if diff != 0 {
			match = false
		}
	}
	return match, maxDiff
}
