package gcurve

// Space is the interpolation operator of a configuration space.
type Space interface {
	// Interpolate returns the point at parameter u on the path from a to b.
	// Interpolate(a, b, 0) is a and Interpolate(a, b, 1) is b.
	Interpolate(a, b Vector, u float64) Vector
	// Distance returns the distance between a and b.
	Distance(a, b Vector) float64
}

// Manifold describes a geodesic space through its exponential map and the
// derivatives of its interpolation operator.
//
// A curve with a manifold always also has a [Space], which must describe the
// same space.
type Manifold interface {
	// Integrate moves from x along the tangent dx.
	Integrate(x, dx Vector) Vector
	// InterpolateDeriv returns the derivative of Interpolate(a, b, u) with
	// respect to u.
	InterpolateDeriv(a, b Vector, u float64) Vector
	// InterpolateDerivA returns the derivative of Interpolate(a, b, u) with
	// respect to a, applied to the tangent da at a.
	InterpolateDerivA(a, b Vector, u float64, da Vector) Vector
	// InterpolateDerivB returns the derivative of Interpolate(a, b, u) with
	// respect to b, applied to the tangent db at b.
	InterpolateDerivB(a, b Vector, u float64, db Vector) Vector
}

var (
	_ Space    = Cartesian{}
	_ Manifold = Cartesian{}
)

// Cartesian is flat Euclidean space, in which interpolation is the affine
// blend (1−u)·a + u·b.
//
// A curve without a space uses Cartesian. Cartesian also implements
// [Manifold], which makes curves take the general manifold code paths on
// flat data.
type Cartesian struct{}

func (Cartesian) Interpolate(a, b Vector, u float64) Vector { return a.Lerp(b, u) }
func (Cartesian) Distance(a, b Vector) float64              { return a.Distance(b) }
func (Cartesian) Integrate(x, dx Vector) Vector             { return x.Add(dx) }
func (Cartesian) InterpolateDeriv(a, b Vector, u float64) Vector {
	return b.Sub(a)
}
func (Cartesian) InterpolateDerivA(a, b Vector, u float64, da Vector) Vector {
	return da.Mul(1 - u)
}
func (Cartesian) InterpolateDerivB(a, b Vector, u float64, db Vector) Vector {
	return db.Mul(u)
}
