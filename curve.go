package gcurve

import "iter"

// ParametricCurve describes a curve parametrized by a scalar.
type ParametricCurve interface {
	// Eval evaluates the curve at parameter t.
	Eval(t float64) Vector
	// Start returns the point at the start of the curve.
	Start() Vector
	// End returns the point at the end of the curve.
	End() Vector
}

// Trajectory is a parametric curve with first and second derivatives.
type Trajectory interface {
	ParametricCurve
	// Deriv returns the first derivative at t.
	Deriv(t float64) Vector
	// Accel returns the second derivative at t.
	Accel(t float64) Vector
}

// Samples returns an iterator over n+1 evenly spaced parameters in [t0, t1]
// and the curve's value at each. n < 1 is treated as 1.
func Samples(c ParametricCurve, t0, t1 float64, n int) iter.Seq2[float64, Vector] {
	n = max(n, 1)
	return func(yield func(float64, Vector) bool) {
		for i := range n + 1 {
			t := t0 + (t1-t0)*float64(i)/float64(n)
			if i == n {
				// Avoid rounding past the end.
				t = t1
			}
			if !yield(t, c.Eval(t)) {
				return
			}
		}
	}
}
