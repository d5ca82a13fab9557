package gcurve

var _ ParametricCurve = QuadBez{}

// QuadBez is a quadratic Bézier curve in flat space. It is the hodograph
// (velocity curve) of a flat [Curve].
type QuadBez struct {
	P0 Vector
	P1 Vector
	P2 Vector
}

func (q QuadBez) Eval(t float64) Vector {
	out := make(Vector, len(q.P0))
	for i := range out {
		out[i] = q.evalComponent(i, t)
	}
	return out
}

// evalComponent evaluates the i-th component using the quadratic Bernstein
// basis.
func (q QuadBez) evalComponent(i int, t float64) float64 {
	mt := 1.0 - t
	return mt*mt*q.P0[i] + 2.0*mt*t*q.P1[i] + t*t*q.P2[i]
}

// Differentiate returns the derivative of the quadratic, which is linear.
func (q QuadBez) Differentiate() Line {
	return Line{
		P0: q.P1.Sub(q.P0).Mul(2),
		P1: q.P2.Sub(q.P1).Mul(2),
	}
}

func (q QuadBez) Start() Vector { return q.P0 }
func (q QuadBez) End() Vector   { return q.P2 }
