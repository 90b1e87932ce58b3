package q15

import "testing"

func TestLoad16(t *testing.T) {
	src := []int16{1, 2, 3, 4, 5}

	v := Load16(src, 3)
	if v.NumLanes() != 3 {
		t.Fatalf("Load16 lanes: got %d, want 3", v.NumLanes())
	}
	for i, want := range []int16{1, 2, 3} {
		if v.data[i] != want {
			t.Errorf("Load16 lane %d: got %d, want %d", i, v.data[i], want)
		}
	}

	// vl larger than the source clamps to the source length
	v = Load16(src[3:], 8)
	if v.NumLanes() != 2 {
		t.Errorf("Load16 clamp: got %d lanes, want 2", v.NumLanes())
	}
}

func TestStore16(t *testing.T) {
	v := Load16([]int16{7, 8, 9}, 3)
	dst := []int16{0, 0, 0, 42}
	Store16(v, dst)
	want := []int16{7, 8, 9, 42}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("Store16: dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestWidenMulExtremes(t *testing.T) {
	b := Load16([]int16{-32768, 32767, -1, 0, 1}, 5)
	result := WidenMul(b, -32768)

	want := []int32{1073741824, -1073709056, 32768, 0, -32768}
	for i := range want {
		if result.data[i] != want[i] {
			t.Errorf("WidenMul lane %d: got %d, want %d", i, result.data[i], want[i])
		}
	}
}

func TestWidenAdd(t *testing.T) {
	p := Vec32{data: []int32{1073741824, -1073741824, 0}}
	a := Load16([]int16{32767, -32768, 5}, 3)
	result := WidenAdd(p, a)

	want := []int32{1073774591, -1073774592, 5}
	for i := range want {
		if result.data[i] != want[i] {
			t.Errorf("WidenAdd lane %d: got %d, want %d", i, result.data[i], want[i])
		}
	}
}

func TestVec16StoreMethod(t *testing.T) {
	v := Load16([]int16{1, 2, 3}, 3)
	dst := make([]int16, 2)
	v.Store(dst) // shorter destination truncates
	if dst[0] != 1 || dst[1] != 2 {
		t.Errorf("Vec16.Store: got %v, want [1 2]", dst)
	}
	if len(v.Data()) != 3 {
		t.Errorf("Vec16.Data: got %d lanes, want 3", len(v.Data()))
	}
}
