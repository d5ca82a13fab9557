package gcurve

import (
	"math"
	"math/rand/v2"
	"testing"
)

// checkManifold verifies the derivative primitives of a manifold against
// finite differences of its interpolation operator.
func checkManifold(t *testing.T, s interface {
	Space
	Manifold
}, a, b, da, db Vector) {
	t.Helper()
	const h = 1e-6
	const eps = 1e-5
	for _, u := range []float64{0, 0.3, 0.5, 0.9} {
		// Differences are taken with the manifold itself so that they are
		// correct across the seams of the torus.
		dir := func(f func(float64) Vector) Vector {
			return s.InterpolateDeriv(f(-h), f(h), 0).Div(2 * h)
		}

		wantU := dir(func(e float64) Vector { return s.Interpolate(a, b, u+e) })
		vectorClose(t, wantU, s.InterpolateDeriv(a, b, u), eps)

		wantA := dir(func(e float64) Vector { return s.Interpolate(s.Integrate(a, da.Mul(e)), b, u) })
		vectorClose(t, wantA, s.InterpolateDerivA(a, b, u, da), eps)

		wantB := dir(func(e float64) Vector { return s.Interpolate(a, s.Integrate(b, db.Mul(e)), u) })
		vectorClose(t, wantB, s.InterpolateDerivB(a, b, u, db), eps)
	}
}

func TestCartesianDerivatives(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 10 {
		checkManifold(t, Cartesian{},
			randomVector(rng, 3, 5), randomVector(rng, 3, 5),
			randomVector(rng, 3, 1), randomVector(rng, 3, 1))
	}
}

func TestTorusDerivatives(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for range 10 {
		checkManifold(t, Torus{},
			randomVector(rng, 3, 3), randomVector(rng, 3, 3),
			randomVector(rng, 3, 1), randomVector(rng, 3, 1))
	}
}

func TestCartesianInterpolate(t *testing.T) {
	a, b := Vec(0, 2), Vec(4, -2)
	diff(t, a, Cartesian{}.Interpolate(a, b, 0))
	diff(t, b, Cartesian{}.Interpolate(a, b, 1))
	diff(t, Vec(1, 1), Cartesian{}.Interpolate(a, b, 0.25))
	if d := (Cartesian{}).Distance(Vec(0, 0), Vec(3, 4)); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestTorusShortArc(t *testing.T) {
	a := Vec(3)
	b := Vec(-3)
	// The short way from 3 to -3 crosses π.
	gap := 2*math.Pi - 6
	diff(t, Vec(gap), Torus{}.InterpolateDeriv(a, b, 0.5), approx(1e-12))
	if d := (Torus{}).Distance(a, b); math.Abs(d-gap) > 1e-12 {
		t.Errorf("got distance %v, want %v", d, gap)
	}
	mid := Torus{}.Interpolate(a, b, 0.5)
	if math.Abs(math.Abs(mid[0])-math.Pi) > 1e-12 {
		t.Errorf("midpoint %v is not at ±π", mid)
	}
	torusClose(t, a, Torus{}.Interpolate(a, b, 0), 1e-12)
	torusClose(t, b, Torus{}.Interpolate(a, b, 1), 1e-12)
	torusClose(t, Vec(-3+gap), Torus{}.Integrate(a, Vec(2*gap)), 1e-12)
}
