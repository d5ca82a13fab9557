package gcurve

var _ ParametricCurve = Line{}

// Line represents a line segment in flat space.
type Line struct {
	// The line's start point.
	P0 Vector
	// The line's end point.
	P1 Vector
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P0.Distance(l.P1)
}

func (l Line) Eval(t float64) Vector {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Start() Vector { return l.P0 }
func (l Line) End() Vector   { return l.P1 }
