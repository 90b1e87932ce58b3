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

// Target describes a data-parallel execution width. It is the
// capability provider the strip-mining kernels query each iteration,
// so the same loop runs unchanged under the native hardware width,
// a scalar fallback, or any simulated width in tests.
type Target struct {
	name  string
	lanes int
}

// Scalar is the one-lane-per-step fallback target.
var Scalar = Target{name: "scalar", lanes: 1}

// Native returns the target for the hardware width detected at
// startup. The width may differ across machines; callers must not
// assume a particular lane count.
func Native() Target {
	return Target{name: currentName, lanes: MaxLanes()}
}

// Fixed returns a target with the given lane count, clamped to a
// minimum of 1. It simulates a hardware width, which is how the
// chunk-width-independence tests drive the kernel.
func Fixed(lanes int) Target {
	if lanes < 1 {
		lanes = 1
	}
	return Target{name: "fixed", lanes: lanes}
}

// Name returns a human-readable name for the target.
func (t Target) Name() string {
	if t.name == "" {
		return "scalar"
	}
	return t.name
}

// Lanes returns the maximum number of int16 elements this target
// processes per step.
func (t Target) Lanes() int {
	if t.lanes < 1 {
		return 1
	}
	return t.lanes
}

// VL returns the number of elements to process in the next step:
// min(remaining, Lanes). This is the per-iteration capability query
// (the vsetvl analog); it is positive whenever remaining is, which is
// what guarantees the strip-mining loop terminates.
func (t Target) VL(remaining int) int {
	if remaining <= 0 {
		return 0
	}
	return min(remaining, t.Lanes())
}
