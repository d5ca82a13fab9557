package gcurve

import "math"

var (
	_ Space    = Torus{}
	_ Manifold = Torus{}
)

// Torus is the product of circles: every component is an angle in radians.
// Interpolation follows the shorter arc in each component and results are
// normalized to [−π, π].
//
// Distances and differences are only meaningful modulo 2π; compare points on
// the torus with [Torus.Distance], not component-wise.
type Torus struct{}

// angleDiff returns b − a wrapped to [−π, π].
func angleDiff(a, b float64) float64 {
	return math.Remainder(b-a, 2*math.Pi)
}

func normalizeAngle(x float64) float64 {
	return math.Remainder(x, 2*math.Pi)
}

func (Torus) Interpolate(a, b Vector, u float64) Vector {
	mustMatch(a, b)
	out := make(Vector, len(a))
	for i := range a {
		out[i] = normalizeAngle(a[i] + u*angleDiff(a[i], b[i]))
	}
	return out
}

func (Torus) Distance(a, b Vector) float64 {
	return Torus{}.InterpolateDeriv(a, b, 0).Hypot()
}

func (Torus) Integrate(x, dx Vector) Vector {
	mustMatch(x, dx)
	out := make(Vector, len(x))
	for i := range x {
		out[i] = normalizeAngle(x[i] + dx[i])
	}
	return out
}

// InterpolateDeriv is the shortest signed angle from a to b; it does not
// depend on u.
func (Torus) InterpolateDeriv(a, b Vector, u float64) Vector {
	mustMatch(a, b)
	out := make(Vector, len(a))
	for i := range a {
		out[i] = angleDiff(a[i], b[i])
	}
	return out
}

// Away from the cut locus the torus is locally flat, so the partial
// derivatives are those of the affine blend.

func (Torus) InterpolateDerivA(a, b Vector, u float64, da Vector) Vector {
	return da.Mul(1 - u)
}

func (Torus) InterpolateDerivB(a, b Vector, u float64, db Vector) Vector {
	return db.Mul(u)
}
