package gcurve

import "fmt"

var _ Trajectory = Curve{}

const (
	third = 1.0 / 3.0
	sixth = 1.0 / 6.0
)

// Curve is a cubic Bézier segment in a configuration space that may be curved.
//
// Evaluation uses de Casteljau's algorithm with the affine blends replaced by
// the space's interpolation operator. When a [Manifold] is present,
// derivatives are computed by the chain rule over the manifold's derivative
// primitives; otherwise the flat closed forms are used.
//
// Space and Manifold are shared references: a Curve never copies or owns
// them, and the caller must keep them valid for as long as the curve is used.
// A nil Space means [Cartesian]; a nil Manifold means flat space.
type Curve struct {
	X0, X1, X2, X3 Vector

	Space    Space
	Manifold Manifold
}

// NewCurve returns a curve without control points that uses the given
// operators.
//
// If manifold is non-nil, an interpolation operator for the same space is
// required. When space is nil and manifold also implements [Space], the
// manifold is used as the space; otherwise NewCurve panics.
func NewCurve(space Space, manifold Manifold) Curve {
	if manifold != nil && space == nil {
		s, ok := manifold.(Space)
		if !ok {
			panic("gcurve: curve with a manifold requires a space")
		}
		space = s
	}
	return Curve{Space: space, Manifold: manifold}
}

// space returns the interpolation operator in effect.
func (c Curve) space() Space {
	if c.Space != nil {
		return c.Space
	}
	if c.Manifold != nil {
		if s, ok := c.Manifold.(Space); ok {
			return s
		}
		panic("gcurve: curve with a manifold requires a space")
	}
	return Cartesian{}
}

func (c Curve) Start() Vector { return c.X0 }
func (c Curve) End() Vector   { return c.X3 }

func (c Curve) IsInf() bool {
	return c.X0.IsInf() || c.X1.IsInf() || c.X2.IsInf() || c.X3.IsInf()
}

func (c Curve) IsNaN() bool {
	return c.X0.IsNaN() || c.X1.IsNaN() || c.X2.IsNaN() || c.X3.IsNaN()
}

func (c Curve) String() string {
	return fmt.Sprintf("Curve{%s, %s, %s, %s}", c.X0, c.X1, c.X2, c.X3)
}

// SetNaturalTangents computes X1 and X2 so that the derivative at u=0 is dx0
// and the derivative at u=1 is dx1. X0 and X3 must already be set.
//
// Either tangent may be empty. If both are, X1 and X2 divide the path from
// X0 to X3 in thirds. If only one is, the missing interior point keeps the
// chord split in thirds relative to the known one.
func (c *Curve) SetNaturalTangents(dx0, dx1 Vector) {
	if dx0.IsEmpty() && dx1.IsEmpty() {
		space := c.space()
		c.X1 = space.Interpolate(c.X0, c.X3, third)
		c.X2 = space.Interpolate(c.X3, c.X0, third)
		return
	}

	if c.Manifold == nil {
		if !dx1.IsEmpty() {
			c.X2 = c.X3.Sub(dx1.Mul(third))
		}
		if !dx0.IsEmpty() {
			c.X1 = c.X0.Add(dx0.Mul(third))
		}
		if dx1.IsEmpty() {
			c.X2 = c.X1.Add(c.X3.Sub(c.X0).Mul(third))
		}
		if dx0.IsEmpty() {
			c.X1 = c.X2.Sub(c.X3.Sub(c.X0).Mul(third))
		}
		return
	}

	m := c.Manifold
	if !dx1.IsEmpty() {
		c.X2 = m.Integrate(c.X3, dx1.Mul(-third))
	}
	if !dx0.IsEmpty() {
		c.X1 = m.Integrate(c.X0, dx0.Mul(third))
	}
	// The order matters: a missing X2 is derived from the X1 computed above,
	// and a missing X1 from the X2 computed above.
	if dx1.IsEmpty() {
		dxp := m.InterpolateDeriv(c.X1, c.X0, 0)
		dxn := m.InterpolateDeriv(c.X1, c.X3, 0)
		c.X2 = m.Integrate(c.X1, dxn.Sub(dxp).Mul(third))
	}
	if dx0.IsEmpty() {
		dxp := m.InterpolateDeriv(c.X2, c.X0, 0)
		dxn := m.InterpolateDeriv(c.X2, c.X3, 0)
		c.X1 = m.Integrate(c.X2, dxp.Sub(dxn).Mul(third))
	}
}

// SetSmoothTangents estimates the endpoint tangents from the neighboring
// waypoints prev (before X0) and next (after X3) using centered differences
// over unit spacing, then calls [Curve.SetNaturalTangents]. An empty
// neighbor leaves that side's tangent unset.
func (c *Curve) SetSmoothTangents(prev, next Vector) {
	var dxp, dxn Vector
	if c.Manifold == nil {
		if !next.IsEmpty() {
			dxn = next.Sub(c.X0).Mul(0.5)
		}
		if !prev.IsEmpty() {
			dxp = c.X3.Sub(prev).Mul(0.5)
		}
	} else {
		m := c.Manifold
		if !next.IsEmpty() {
			dxn = m.InterpolateDeriv(c.X3, next, 0).
				Sub(m.InterpolateDeriv(c.X3, c.X0, 0)).
				Mul(0.5)
		}
		if !prev.IsEmpty() {
			dxp = m.InterpolateDeriv(c.X0, c.X3, 0).
				Sub(m.InterpolateDeriv(c.X0, prev, 0)).
				Mul(0.5)
		}
	}
	c.SetNaturalTangents(dxp, dxn)
}

// SetSmoothTangentsTimed is like [Curve.SetSmoothTangents] for non-uniform
// spacing: prev lies dtPrev before X0 and next lies dtNext after X3, in units
// of this segment's duration.
//
// Each tangent is the derivative of the quadratic through the neighbor and
// the two endpoints. With y(0) = X0, y(1) = X3 and y(−dtPrev) = prev, the
// quadratic y(u) = a·u² + b·u + c has
//
//	y'(0) = b = [(X3−X0)·dtPrev − (prev−X0)/dtPrev] / (1+dtPrev)
//
// and symmetrically at X3.
func (c *Curve) SetSmoothTangentsTimed(prev, next Vector, dtPrev, dtNext float64) {
	var dxp, dxn Vector
	if !next.IsEmpty() {
		var toNext, toStart Vector
		if c.Manifold == nil {
			toNext = next.Sub(c.X3)
			toStart = c.X0.Sub(c.X3)
		} else {
			toNext = c.Manifold.InterpolateDeriv(c.X3, next, 0)
			toStart = c.Manifold.InterpolateDeriv(c.X3, c.X0, 0)
		}
		dxn = toNext.Mul(1.0 / dtNext).
			Sub(toStart.Mul(dtNext)).
			Mul(1.0 / (1.0 + dtNext))
	}
	if !prev.IsEmpty() {
		var toEnd, toPrev Vector
		if c.Manifold == nil {
			toEnd = c.X3.Sub(c.X0)
			toPrev = prev.Sub(c.X0)
		} else {
			toEnd = c.Manifold.InterpolateDeriv(c.X0, c.X3, 0)
			toPrev = c.Manifold.InterpolateDeriv(c.X0, prev, 0)
		}
		dxp = toEnd.Mul(dtPrev).
			Sub(toPrev.Mul(1.0 / dtPrev)).
			Mul(1.0 / (1.0 + dtPrev))
	}
	c.SetNaturalTangents(dxp, dxn)
}

// Eval evaluates the curve at parameter u using generalized de Casteljau.
//
//	x01 = I(x0, x1, u), x12 = I(x1, x2, u), x23 = I(x2, x3, u)
//	x012 = I(x01, x12, u), x123 = I(x12, x23, u)
//	x(u) = I(x012, x123, u)
func (c Curve) Eval(u float64) Vector {
	space := c.space()
	x01 := space.Interpolate(c.X0, c.X1, u)
	x12 := space.Interpolate(c.X1, c.X2, u)
	x23 := space.Interpolate(c.X2, c.X3, u)
	x012 := space.Interpolate(x01, x12, u)
	x123 := space.Interpolate(x12, x23, u)
	return space.Interpolate(x012, x123, u)
}

// Deriv returns the derivative of the curve with respect to u.
//
// In flat space this is 3·(x123 − x012). On a manifold, the derivative of
// each blend I(a(u), b(u), u) is expanded by the chain rule:
//
//	d/du I = ∂I/∂u + ∂I/∂a·a'(u) + ∂I/∂b·b'(u)
//
// applied bottom-up from the first-level blends, whose endpoints are
// constant.
func (c Curve) Deriv(u float64) Vector {
	space := c.space()
	x01 := space.Interpolate(c.X0, c.X1, u)
	x12 := space.Interpolate(c.X1, c.X2, u)
	x23 := space.Interpolate(c.X2, c.X3, u)
	if c.Manifold == nil {
		x012 := space.Interpolate(x01, x12, u)
		x123 := space.Interpolate(x12, x23, u)
		return x123.Sub(x012).Mul(3)
	}

	m := c.Manifold
	dx01 := m.InterpolateDeriv(c.X0, c.X1, u)
	dx12 := m.InterpolateDeriv(c.X1, c.X2, u)
	dx23 := m.InterpolateDeriv(c.X2, c.X3, u)

	dx012 := m.InterpolateDeriv(x01, x12, u).
		Add(m.InterpolateDerivA(x01, x12, u, dx01)).
		Add(m.InterpolateDerivB(x01, x12, u, dx12))
	dx123 := m.InterpolateDeriv(x12, x23, u).
		Add(m.InterpolateDerivA(x12, x23, u, dx12)).
		Add(m.InterpolateDerivB(x12, x23, u, dx23))

	x012 := space.Interpolate(x01, x12, u)
	x123 := space.Interpolate(x12, x23, u)
	return m.InterpolateDeriv(x012, x123, u).
		Add(m.InterpolateDerivA(x012, x123, u, dx012)).
		Add(m.InterpolateDerivB(x012, x123, u, dx123))
}

// Accel returns the second derivative of the curve with respect to u.
//
// In flat space this is 6·(x01 − 2·x12 + x23), the second derivative of the
// quadratic formed by the first-level de Casteljau points. On a manifold the
// same expression is approximated with the manifold's differences taken at
// x12. This is not exact on curved spaces, and the first use logs a warning.
func (c Curve) Accel(u float64) Vector {
	space := c.space()
	x01 := space.Interpolate(c.X0, c.X1, u)
	x12 := space.Interpolate(c.X1, c.X2, u)
	x23 := space.Interpolate(c.X2, c.X3, u)
	if c.Manifold == nil {
		return x01.Add(x23).Sub(x12.Mul(2)).Mul(6)
	}

	warnManifoldAccel()
	m := c.Manifold
	return m.InterpolateDeriv(x12, x23, 0).
		Add(m.InterpolateDeriv(x12, x01, 0)).
		Mul(6)
}

// BoundingBox returns the box around the control points. By the convex hull
// property of Bézier curves it contains the whole curve in flat space.
func (c Curve) BoundingBox() Box {
	return NewBoxFromPoints(c.X0, c.X1, c.X2, c.X3)
}

// Differentiate returns the hodograph of the curve, the quadratic Bézier
// whose value at u is the flat-space derivative. It ignores Space and
// Manifold.
func (c Curve) Differentiate() QuadBez {
	return QuadBez{
		P0: c.X1.Sub(c.X0).Mul(3),
		P1: c.X2.Sub(c.X1).Mul(3),
		P2: c.X3.Sub(c.X2).Mul(3),
	}
}

// DerivBounds returns bounds on the velocity and the acceleration of the
// curve over u ∈ [0, 1].
//
// Acceleration is linear in u, so it is bounded by its endpoint values.
// Velocity is quadratic; per component its extremum is either at an endpoint
// or where the acceleration crosses zero.
func (c Curve) DerivBounds() (vel, acc Box) {
	if c.Manifold != nil {
		return c.derivBounds(0, 1, c.Deriv(0), c.Deriv(1), c.Accel(0), c.Accel(1))
	}
	hodo := c.Differentiate()
	a := hodo.Differentiate()
	return c.derivBounds(0, 1, hodo.P0, hodo.P2, a.P0, a.P1)
}

// DerivBoundsRange is like [Curve.DerivBounds] over u ∈ [u1, u2].
func (c Curve) DerivBoundsRange(u1, u2 float64) (vel, acc Box) {
	return c.derivBounds(u1, u2, c.Deriv(u1), c.Deriv(u2), c.Accel(u1), c.Accel(u2))
}

func (c Curve) derivBounds(u1, u2 float64, v1, v2, a1, a2 Vector) (vel, acc Box) {
	vmin, vmax := v1.Clone(), v2.Clone()
	amin, amax := a1.Clone(), a2.Clone()

	var hodo QuadBez
	if c.Manifold == nil {
		hodo = c.Differentiate()
	}
	for i := range vmin {
		if vmin[i] > vmax[i] {
			vmin[i], vmax[i] = vmax[i], vmin[i]
		}
		if sign(amin[i]) != sign(amax[i]) {
			crit := amin[i] / (amin[i] - amax[i])
			if !(crit >= 0 && crit <= 1) {
				panic(fmt.Sprintf("gcurve: critical point %g outside [0, 1]", crit))
			}
			u := u1 + crit*(u2-u1)
			var v float64
			if c.Manifold == nil {
				v = hodo.evalComponent(i, u)
			} else {
				v = c.Deriv(u)[i]
			}
			vmin[i] = min(vmin[i], v)
			vmax[i] = max(vmax[i], v)
		}
		if amin[i] > amax[i] {
			amin[i], amax[i] = amax[i], amin[i]
		}
	}
	return Box{vmin, vmax}, Box{amin, amax}
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// OuterLength returns the length of the control polygon, an upper bound on
// the arc length.
func (c Curve) OuterLength() float64 {
	space := c.space()
	return space.Distance(c.X0, c.X1) + space.Distance(c.X1, c.X2) + space.Distance(c.X2, c.X3)
}

// Midpoint returns the point at u = 0.5.
func (c Curve) Midpoint() Vector {
	if c.Manifold != nil {
		return c.Eval(0.5)
	}
	const a1 = 1.0 / 8.0
	const a2 = 3.0 / 8.0
	out := make(Vector, len(c.X0))
	for i := range out {
		out[i] = a1*c.X0[i] + a2*c.X1[i] + a2*c.X2[i] + a1*c.X3[i]
	}
	return out
}

// MidpointDeriv returns the derivative at u = 0.5.
func (c Curve) MidpointDeriv() Vector {
	if c.Manifold != nil {
		return c.Deriv(0.5)
	}
	return c.X2.Add(c.X3).Sub(c.X1).Sub(c.X0).Mul(3.0 / 4.0)
}

// Bisect subdivides the curve at u = 0.5. Both halves keep the curve's Space
// and Manifold, share the midpoint, and have half the derivative of the
// original at corresponding points.
func (c Curve) Bisect() (Curve, Curve) {
	left := Curve{Space: c.Space, Manifold: c.Manifold}
	right := Curve{Space: c.Space, Manifold: c.Manifold}

	mid := c.Midpoint()
	left.X0 = c.X0
	left.X3 = mid
	right.X0 = mid
	right.X3 = c.X3

	vmid := c.MidpointDeriv()
	if c.Manifold != nil {
		space := c.space()
		left.X1 = space.Interpolate(c.X0, c.X1, 0.5)
		right.X2 = space.Interpolate(c.X2, c.X3, 0.5)
		left.X2 = c.Manifold.Integrate(mid, vmid.Mul(-sixth))
		right.X1 = c.Manifold.Integrate(mid, vmid.Mul(sixth))
	} else {
		left.X1 = c.X0.Midpoint(c.X1)
		right.X2 = c.X3.Midpoint(c.X2)
		left.X2 = mid.Sub(vmid.Mul(sixth))
		right.X1 = mid.Add(vmid.Mul(sixth))
	}
	return left, right
}

