package gcurve

import "testing"

func TestBoxFromPoints(t *testing.T) {
	b := NewBoxFromPoints(Vec(1, 5), Vec(-2, 3), Vec(0, 7))
	diff(t, Box{Vec(-2, 3), Vec(1, 7)}, b)
	diff(t, Vec(3, 4), b.Size())

	if !b.Contains(Vec(0, 4), 0) {
		t.Error("expected point to be contained")
	}
	if b.Contains(Vec(2, 4), 0) {
		t.Error("expected point not to be contained")
	}
	if !b.Contains(Vec(1.05, 4), 0.1) {
		t.Error("expected point to be contained within slack")
	}
	if b.Contains(Vec(0, 4, 0), 1) {
		t.Error("point of different dimension is never contained")
	}
}

func TestBoxUnion(t *testing.T) {
	var empty Box
	if !empty.IsEmpty() {
		t.Error("zero box should be empty")
	}
	a := NewBoxFromPoints(Vec(0, 0), Vec(1, 1))
	b := NewBoxFromPoints(Vec(2, -1), Vec(3, 0))
	diff(t, Box{Vec(0, -1), Vec(3, 1)}, a.Union(b))
	diff(t, a, empty.Union(a))
	diff(t, a, a.Union(empty))
}
