package q15

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func randomInputs(n int, seed int64) ([]int16, []int16) {
	rng := rand.New(rand.NewSource(seed))
	a := make([]int16, n)
	b := make([]int16, n)
	for i := range a {
		a[i] = int16(rng.Intn(65536) - 32768)
		b[i] = int16(rng.Intn(65536) - 32768)
	}
	return a, b
}

func TestAxpyEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		a, b  []int16
		alpha int16
		want  []int16
	}{
		{"overflow clamps high", []int16{32767}, []int16{1}, 1, []int16{32767}},
		{"underflow clamps low", []int16{-32768}, []int16{1}, -1, []int16{-32768}},
		{"product alone saturates", []int16{0}, []int16{32767}, 32767, []int16{32767}},
		{"normal case no clamp", []int16{100}, []int16{200}, 5, []int16{1100}},
		{"negative product saturates", []int16{0}, []int16{-32768}, 32767, []int16{-32768}},
		{"alpha zero passes through", []int16{-5, 7, 32767}, []int16{999, -999, 1}, 0, []int16{-5, 7, 32767}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yRef := make([]int16, len(tt.a))
			AxpyRef(tt.a, tt.b, yRef, tt.alpha)
			if diff := cmp.Diff(tt.want, yRef); diff != "" {
				t.Errorf("AxpyRef mismatch (-want +got):\n%s", diff)
			}

			y := make([]int16, len(tt.a))
			Axpy(tt.a, tt.b, y, tt.alpha)
			if diff := cmp.Diff(tt.want, y); diff != "" {
				t.Errorf("Axpy mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAxpyZeroLength(t *testing.T) {
	// n=0 must be a zero-iteration no-op for both kernels.
	AxpyRef(nil, nil, nil, 3)
	Axpy(nil, nil, nil, 3)
	AxpyOn(Fixed(8), []int16{}, []int16{}, []int16{}, 3)

	// A shorter input bounds the element count; lanes past it stay put.
	y := []int16{42, 43}
	AxpyOn(Fixed(4), []int16{1}, []int16{1}, y, 1)
	if y[0] != 2 || y[1] != 43 {
		t.Errorf("short input: got %v, want [2 43]", y)
	}
}

func TestAxpyMatchesRef(t *testing.T) {
	const n = 1000
	a, b := randomInputs(n, 1234)

	for _, alpha := range []int16{-32768, -3, -1, 0, 1, 3, 127, 32767} {
		yRef := make([]int16, n)
		y := make([]int16, n)
		AxpyRef(a, b, yRef, alpha)
		Axpy(a, b, y, alpha)

		if ok, maxDiff := Match(yRef, y); !ok {
			t.Errorf("alpha=%d: Axpy diverges from AxpyRef (max diff %d)", alpha, maxDiff)
		}
	}
}

func TestAxpyWidthIndependence(t *testing.T) {
	const n = 257 // deliberately not a multiple of any tested width
	a, b := randomInputs(n, 99)
	const alpha = int16(-7)

	yRef := make([]int16, n)
	AxpyRef(a, b, yRef, alpha)

	targets := []Target{Scalar, Fixed(1), Fixed(4), Fixed(8), Fixed(32), Native()}
	for _, tgt := range targets {
		t.Run(fmt.Sprintf("%s-%d", tgt.Name(), tgt.Lanes()), func(t *testing.T) {
			y := make([]int16, n)
			AxpyOn(tgt, a, b, y, alpha)
			if ok, maxDiff := Match(yRef, y); !ok {
				t.Errorf("width %d: output differs from reference (max diff %d)",
					tgt.Lanes(), maxDiff)
			}
		})
	}
}

func TestAxpyOddLengthsTail(t *testing.T) {
	// Lengths that exercise a partial final chunk at width 8.
	for _, n := range []int{1, 3, 7, 8, 9, 33} {
		a, b := randomInputs(n, int64(n))
		yRef := make([]int16, n)
		y := make([]int16, n)
		AxpyRef(a, b, yRef, 5)
		AxpyOn(Fixed(8), a, b, y, 5)
		if ok, _ := Match(yRef, y); !ok {
			t.Errorf("n=%d: tail handling diverges from reference", n)
		}
	}
}

func BenchmarkAxpyRef(b *testing.B) {
	const n = 4096
	xa, xb := randomInputs(n, 1234)
	y := make([]int16, n)

	b.SetBytes(int64(n * 2))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		AxpyRef(xa, xb, y, 3)
	}
}

func BenchmarkAxpy(b *testing.B) {
	const n = 4096
	xa, xb := randomInputs(n, 1234)
	y := make([]int16, n)

	b.SetBytes(int64(n * 2))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Axpy(xa, xb, y, 3)
	}
}
