package gcurve

import (
	"fmt"
	"math"
	"strings"
)

// Vector is a point or tangent in an n-dimensional configuration space.
//
// The empty vector (nil or zero length) is a sentinel meaning "unset". It is
// distinct from the zero vector, which has a non-zero dimension.
type Vector []float64

// Vec returns the vector ⟨xs...⟩.
func Vec(xs ...float64) Vector {
	return Vector(xs)
}

// Zeros returns the zero vector of dimension n.
func Zeros(n int) Vector {
	return make(Vector, n)
}

// IsEmpty reports whether v is the unset sentinel.
func (v Vector) IsEmpty() bool {
	return len(v) == 0
}

// Len returns the dimension of v.
func (v Vector) Len() int {
	return len(v)
}

// Clone returns a copy of v that does not share storage with it. The clone
// of an empty vector is nil.
func (v Vector) Clone() Vector {
	if len(v) == 0 {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

func (v Vector) String() string {
	if len(v) == 0 {
		return "⟨⟩"
	}
	var sb strings.Builder
	sb.WriteString("⟨")
	for i, x := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", x)
	}
	sb.WriteString("⟩")
	return sb.String()
}

func mustMatch(v, o Vector) {
	if len(v) != len(o) {
		panic(fmt.Sprintf("gcurve: dimension mismatch: %d != %d", len(v), len(o)))
	}
}

// Add adds two vectors and returns the resulting vector.
func (v Vector) Add(o Vector) Vector {
	mustMatch(v, o)
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] + o[i]
	}
	return out
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vector) Sub(o Vector) Vector {
	mustMatch(v, o)
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] - o[i]
	}
	return out
}

func (v Vector) Mul(f float64) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] * f
	}
	return out
}

func (v Vector) Div(f float64) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] / f
	}
	return out
}

// Negate returns a new vector with the signs of all components flipped.
func (v Vector) Negate() Vector {
	return v.Mul(-1)
}

// Lerp linearly interpolates between two vectors.
func (v Vector) Lerp(o Vector, t float64) Vector {
	mustMatch(v, o)
	out := make(Vector, len(v))
	for i := range v {
		out[i] = (1-t)*v[i] + t*o[i]
	}
	return out
}

// Midpoint returns the midpoint of two points.
func (v Vector) Midpoint(o Vector) Vector {
	mustMatch(v, o)
	out := make(Vector, len(v))
	for i := range v {
		out[i] = 0.5 * (v[i] + o[i])
	}
	return out
}

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Vector) float64 {
	mustMatch(v, o)
	var sum float64
	for i := range v {
		sum += v[i] * o[i]
	}
	return sum
}

// Hypot returns the magnitude of the vector.
func (v Vector) Hypot() float64 {
	// Scale to avoid overflow, the same way math.Hypot does for two values.
	var scale float64
	for _, x := range v {
		scale = max(scale, math.Abs(x))
	}
	if scale == 0 || math.IsInf(scale, 0) {
		return scale
	}
	var sum float64
	for _, x := range v {
		x /= scale
		sum += x * x
	}
	return scale * math.Sqrt(sum)
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vector.Hypot].
func (v Vector) Hypot2() float64 {
	return v.Dot(v)
}

// Distance returns the euclidean distance between two points.
func (v Vector) Distance(o Vector) float64 {
	return v.Sub(o).Hypot()
}

// DistanceSquared returns the squared euclidean distance between two points.
func (v Vector) DistanceSquared(o Vector) float64 {
	return v.Sub(o).Hypot2()
}

// ApproxEqual reports whether v and o have the same dimension and differ by
// at most eps in every component.
func (v Vector) ApproxEqual(o Vector, eps float64) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if math.Abs(v[i]-o[i]) > eps {
			return false
		}
	}
	return true
}

// IsInf reports whether at least one component is infinite.
func (v Vector) IsInf() bool {
	for _, x := range v {
		if math.IsInf(x, 0) {
			return true
		}
	}
	return false
}

// IsNaN reports whether at least one component is NaN.
func (v Vector) IsNaN() bool {
	for _, x := range v {
		if math.IsNaN(x) {
			return true
		}
	}
	return false
}
