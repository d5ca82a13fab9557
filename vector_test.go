package gcurve

import (
	"math"
	"testing"
)

func TestVectorArithmetic(t *testing.T) {
	a := Vec(1, 2, 3)
	b := Vec(4, -2, 0.5)
	diff(t, Vec(5, 0, 3.5), a.Add(b))
	diff(t, Vec(-3, 4, 2.5), a.Sub(b))
	diff(t, Vec(2, 4, 6), a.Mul(2))
	diff(t, Vec(0.5, 1, 1.5), a.Div(2))
	diff(t, Vec(-1, -2, -3), a.Negate())
	diff(t, Vec(2.5, 0, 1.75), a.Midpoint(b))
	diff(t, Vec(1.75, 1, 2.375), a.Lerp(b, 0.25))
	if d := a.Dot(b); d != 1.5 {
		t.Errorf("got dot product %v, want 1.5", d)
	}

	// the operands are not modified
	diff(t, Vec(1, 2, 3), a)
}

func TestVectorDistance(t *testing.T) {
	p1 := Vec(0, 10, 1)
	p2 := Vec(0, 5, 1)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	p3 := Vec(-11, 1)
	p4 := Vec(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := Vec(1e300, 1e300).Hypot(); math.IsInf(d, 0) {
		t.Errorf("Hypot overflowed")
	}
	if d := Zeros(4).Hypot(); d != 0 {
		t.Errorf("got %v, want 0", d)
	}
}

func TestVectorEmpty(t *testing.T) {
	var v Vector
	if !v.IsEmpty() {
		t.Error("nil vector should be empty")
	}
	if Zeros(3).IsEmpty() {
		t.Error("zero vector should not be empty")
	}
	if c := v.Clone(); c != nil {
		t.Errorf("clone of empty vector is %v, want nil", c)
	}
}

func TestVectorClone(t *testing.T) {
	a := Vec(1, 2)
	b := a.Clone()
	b[0] = 5
	if a[0] != 1 {
		t.Error("clone shares storage")
	}
}

func TestVectorDimensionMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Vec(1, 2).Add(Vec(1, 2, 3))
}

func TestVectorString(t *testing.T) {
	diff(t, "⟨1, -2.5⟩", Vec(1, -2.5).String())
	diff(t, "⟨⟩", Vector(nil).String())
}

func TestVectorNaNInf(t *testing.T) {
	if !Vec(1, math.NaN()).IsNaN() {
		t.Error("expected NaN")
	}
	if !Vec(math.Inf(-1), 0).IsInf() {
		t.Error("expected Inf")
	}
	if Vec(1, 2).IsNaN() || Vec(1, 2).IsInf() {
		t.Error("finite vector reported as NaN or Inf")
	}
}
