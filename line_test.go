package gcurve

import (
	"math"
	"testing"
)

func TestLineLength(t *testing.T) {
	l := Line{Vec(0.0, 0.0), Vec(1.0, 1.0)}
	want := math.Sqrt(2.0)
	if d := math.Abs(l.Length() - want); d > 1e-15 {
		t.Errorf("got length %v, want %v", l.Length(), want)
	}

	l = Line{Vec(1, 2, 3), Vec(1, 2, 3)}
	if l.Length() != 0 {
		t.Errorf("got length %v for degenerate line", l.Length())
	}
}

func TestLineEval(t *testing.T) {
	l := Line{Vec(1, -1), Vec(3, 3)}
	vectorClose(t, l.Start(), l.Eval(0), 0)
	vectorClose(t, l.End(), l.Eval(1), 0)
	vectorClose(t, Vec(2, 1), l.Eval(0.5), 1e-15)
	vectorClose(t, Vec(4, 5), l.Eval(1.5), 1e-15)
}
