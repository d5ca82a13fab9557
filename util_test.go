package gcurve

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, including the components of vectors, with an
// absolute tolerance.
func approx(eps float64) cmp.Option {
	return cmpopts.EquateApprox(0, eps)
}

func vectorClose(t *testing.T, want, got Vector, eps float64) {
	t.Helper()
	if !want.ApproxEqual(got, eps) {
		t.Errorf("got %v, want %v (tolerance %g)", got, want, eps)
	}
}

// torusClose compares points on the torus, where components are equal
// modulo 2π.
func torusClose(t *testing.T, want, got Vector, eps float64) {
	t.Helper()
	if d := (Torus{}).Distance(want, got); d > eps || math.IsNaN(d) {
		t.Errorf("got %v, want %v on the torus (distance %g)", got, want, d)
	}
}

func randomVector(rng *rand.Rand, n int, scale float64) Vector {
	v := make(Vector, n)
	for i := range v {
		v[i] = (rng.Float64()*2 - 1) * scale
	}
	return v
}

func randomCurve(rng *rand.Rand, n int) Curve {
	return Curve{
		X0: randomVector(rng, n, 10),
		X1: randomVector(rng, n, 10),
		X2: randomVector(rng, n, 10),
		X3: randomVector(rng, n, 10),
	}
}

// numericDeriv differentiates f at u with central differences.
func numericDeriv(f func(float64) Vector, u float64) Vector {
	const h = 1e-6
	return f(u + h).Sub(f(u - h)).Div(2 * h)
}
