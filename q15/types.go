// Package q15 provides saturating Q15 (16-bit signed fixed-point)
// kernels with a width-agnostic data-parallel execution model.
//
// The core operation is a saturating AXPY over int16 slices:
//
//	y[i] = clamp(a[i] + alpha*b[i], -32768, 32767)
//
// Two implementations are provided: AxpyRef, the serial golden model
// that defines the exact result for every input, and Axpy, a
// strip-mining kernel that processes the arrays in chunks whose width
// is queried from a Target each iteration. Both produce bit-identical
// output for all inputs.
//
// Basic usage:
//
//	y := make([]int16, len(a))
//	q15.Axpy(a, b, y, alpha)
//
//	ok, maxDiff := q15.Match(expected, y)
package q15

// Vec16 is a chunk of int16 lanes loaded from a sample array.
// It is the narrow (element-width) operand type of the kernel ops.
//
// Vec16 instances should not be created directly; use Load16.
type Vec16 struct {
	data []int16
}

// NumLanes returns the number of lanes (elements) in this chunk.
func (v Vec16) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the chunk.
// This is primarily for testing and should not be used in
// performance-critical code.
func (v Vec16) Data() []int16 {
	return v.data
}

// Store writes the chunk's lanes to dst.
// This is the method form of the Store16 function.
func (v Vec16) Store(dst []int16) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Vec32 is a chunk of int32 lanes holding widened intermediate values.
// A 16x16-bit product plus a 16-bit addend always fits in an int32
// lane, so no Vec32 value ever wraps.
//
// Vec32 instances are produced by WidenMul and WidenAdd.
type Vec32 struct {
	data []int32
}

// NumLanes returns the number of lanes in this chunk.
func (v Vec32) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the chunk.
func (v Vec32) Data() []int32 {
	return v.data
}
