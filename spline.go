package gcurve

import (
	"fmt"
	"iter"
	"math"
)

var _ Trajectory = Spline{}

// Spline is a sequence of curves, each traversed in its own duration.
//
// If Durations is empty, the parameter range [0, 1] is divided evenly among
// the segments. Otherwise len(Durations) must equal len(Segments) and the
// parameter is time, starting at 0.
//
// Consecutive segments are expected to share endpoints (the X3 of one
// segment is the X0 of the next), but Spline does not enforce geometric
// continuity; it only keeps track of time.
type Spline struct {
	Segments  []Curve
	Durations []float64
}

func (s Spline) checkDurations() {
	if len(s.Durations) != 0 && len(s.Durations) != len(s.Segments) {
		panic(fmt.Sprintf("gcurve: spline has %d segments but %d durations", len(s.Segments), len(s.Durations)))
	}
}

func (s Spline) mustSegment(u float64) (int, float64) {
	seg, local := s.ParamToSegment(u)
	if seg < 0 {
		panic("gcurve: empty spline")
	}
	return seg, local
}

// Append adds a segment with the given duration.
func (s *Spline) Append(c Curve, duration float64) {
	s.Segments = append(s.Segments, c)
	s.Durations = append(s.Durations, duration)
}

// Concat appends all segments and durations of o.
func (s *Spline) Concat(o Spline) {
	s.Segments = append(s.Segments, o.Segments...)
	s.Durations = append(s.Durations, o.Durations...)
}

// TotalTime returns the sum of the durations.
func (s Spline) TotalTime() float64 {
	var t float64
	for _, d := range s.Durations {
		t += d
	}
	return t
}

// TimeScale multiplies every duration by scale.
func (s *Spline) TimeScale(scale float64) {
	for i := range s.Durations {
		s.Durations[i] *= scale
	}
}

// Domain returns the parameter range of the spline: [0, 1] without
// durations and [0, TotalTime] with them.
func (s Spline) Domain() (float64, float64) {
	if len(s.Durations) == 0 {
		return 0, 1
	}
	return 0, s.TotalTime()
}

// Bind makes every segment use the given operators, as [NewCurve] would.
func (s *Spline) Bind(space Space, manifold Manifold) {
	tmpl := NewCurve(space, manifold)
	for i := range s.Segments {
		s.Segments[i].Space = tmpl.Space
		s.Segments[i].Manifold = tmpl.Manifold
	}
}

func (s Spline) Start() Vector {
	if len(s.Segments) == 0 {
		return nil
	}
	return s.Segments[0].X0
}

func (s Spline) End() Vector {
	if len(s.Segments) == 0 {
		return nil
	}
	return s.Segments[len(s.Segments)-1].X3
}

// ParamToSegment maps the spline parameter u to a segment index and the
// parameter within that segment, in [0, 1]. It returns -1 if the spline has
// no segments.
//
// Parameters past the end map to the last segment at local parameter 1;
// parameters before the start map to the first segment at local parameter 0.
// It panics if u is NaN.
func (s Spline) ParamToSegment(u float64) (seg int, local float64) {
	if len(s.Segments) == 0 {
		return -1, 0
	}
	if math.IsNaN(u) {
		panic("gcurve: spline parameter is NaN")
	}
	n := len(s.Segments)
	if len(s.Durations) == 0 {
		scaled := u * float64(n)
		k := math.Floor(scaled)
		switch {
		case k >= float64(n):
			return n - 1, 1
		case k < 0:
			return 0, 0
		}
		return int(k), scaled - k
	}
	s.checkDurations()

	k := 0
	for k < n && u > s.Durations[k] {
		u -= s.Durations[k]
		k++
	}
	if k >= n {
		return n - 1, 1
	}
	if s.Durations[k] <= 0 {
		return k, 0
	}
	return k, max(u/s.Durations[k], 0)
}

// segmentScale returns the factor converting a segment-local derivative into
// a derivative with respect to the spline parameter. Derivatives of a segment
// without positive duration are undefined; asking for them panics.
func (s Spline) segmentScale(seg int) float64 {
	if len(s.Durations) == 0 {
		return float64(len(s.Segments))
	}
	d := s.Durations[seg]
	if !(d > 0) {
		panic(fmt.Sprintf("gcurve: derivative of segment %d with duration %g", seg, d))
	}
	return 1.0 / d
}

// Eval evaluates the spline at u. It panics if the spline is empty.
func (s Spline) Eval(u float64) Vector {
	seg, local := s.mustSegment(u)
	return s.Segments[seg].Eval(local)
}

// Deriv returns the derivative of the spline at u with respect to u. It
// panics if the spline is empty or u falls on a segment whose duration is not
// positive.
func (s Spline) Deriv(u float64) Vector {
	seg, local := s.mustSegment(u)
	return s.Segments[seg].Deriv(local).Mul(s.segmentScale(seg))
}

// Accel returns the second derivative of the spline at u with respect to u.
func (s Spline) Accel(u float64) Vector {
	seg, local := s.mustSegment(u)
	k := s.segmentScale(seg)
	return s.Segments[seg].Accel(local).Mul(k * k)
}

// BoundingBox returns the union of the segments' bounding boxes.
func (s Spline) BoundingBox() Box {
	var b Box
	for _, c := range s.Segments {
		b = b.Union(c.BoundingBox())
	}
	return b
}

// Samples returns an iterator over n+1 evenly spaced parameters spanning the
// spline's domain and the spline's value at each.
func (s Spline) Samples(n int) iter.Seq2[float64, Vector] {
	t0, t1 := s.Domain()
	return Samples(s, t0, t1, n)
}

// PiecewiseLinear returns the breakpoint times of the spline and the
// waypoints at those times: the X0 of every segment followed by the X3 of
// the last one. It ignores the shape of the segments.
func (s Spline) PiecewiseLinear() (times []float64, milestones []Vector) {
	if len(s.Segments) == 0 {
		return nil, nil
	}
	s.checkDurations()
	n := len(s.Segments)
	times = make([]float64, n+1)
	milestones = make([]Vector, n+1)
	for i, c := range s.Segments {
		milestones[i] = c.X0
		if len(s.Durations) == 0 {
			times[i+1] = float64(i+1) / float64(n)
		} else {
			times[i+1] = times[i] + s.Durations[i]
		}
	}
	milestones[n] = s.Segments[n-1].X3
	return times, milestones
}

// Bisect replaces every segment by two segments of half the duration that
// follow the same path. The new interior tangents are the original tangents
// at the segment's start, midpoint and end, halved to account for the
// shorter parameter range.
func (s *Spline) Bisect() {
	if len(s.Segments) == 0 {
		return
	}
	s.checkDurations()

	curves := make([]Curve, 0, 2*len(s.Segments))
	var durations []float64
	if len(s.Durations) != 0 {
		durations = make([]float64, 0, 2*len(s.Durations))
	}
	last := s.Segments[0].X0
	for i, c := range s.Segments {
		if durations != nil {
			durations = append(durations, s.Durations[i]*0.5, s.Durations[i]*0.5)
		}
		startTangent := c.Deriv(0).Mul(0.5)
		mid := c.Eval(0.5)
		midTangent := c.Deriv(0.5).Mul(0.5)

		left := Curve{X0: last, X3: mid, Space: c.Space, Manifold: c.Manifold}
		left.SetNaturalTangents(startTangent, midTangent)

		last = c.X3
		endTangent := c.Deriv(1).Mul(0.5)
		right := Curve{X0: mid, X3: last, Space: c.Space, Manifold: c.Manifold}
		right.SetNaturalTangents(midTangent, endTangent)

		curves = append(curves, left, right)
	}
	s.Segments = curves
	s.Durations = durations
}

// BisectSegment would split segment seg at parameter u in place. It is not
// implemented and always panics with an error wrapping [ErrNotImplemented];
// use [Spline.Bisect] or [Curve.Bisect] instead.
func (s *Spline) BisectSegment(seg int, u float64) {
	if u != 0.5 {
		panic(fmt.Errorf("gcurve: bisecting segment %d at %g, not at its midpoint: %w", seg, u, ErrNotImplemented))
	}
	panic(fmt.Errorf("gcurve: bisecting single segment %d in place: %w", seg, ErrNotImplemented))
}

// FromMilestones returns a smooth spline through the given waypoints.
//
// If durations is empty, tangents are estimated with
// [Curve.SetSmoothTangents] and the spline uses the uniform parameter range.
// Otherwise len(durations) must be len(milestones)−1 and tangents are
// estimated with [Curve.SetSmoothTangentsTimed], using each neighbor's
// duration relative to the segment's own; every duration must then be
// positive. Fewer than two milestones yield an empty spline.
func FromMilestones(milestones []Vector, durations []float64, space Space, manifold Manifold) Spline {
	if len(milestones) < 2 {
		return Spline{}
	}
	n := len(milestones) - 1
	if len(durations) != 0 && len(durations) != n {
		panic(fmt.Sprintf("gcurve: %d milestones need %d durations, got %d", len(milestones), n, len(durations)))
	}
	for i, d := range durations {
		if !(d > 0) {
			panic(fmt.Sprintf("gcurve: milestone duration %d is %g, want a positive duration", i, d))
		}
	}

	var s Spline
	for i := range n {
		c := NewCurve(space, manifold)
		c.X0 = milestones[i]
		c.X3 = milestones[i+1]
		var prev, next Vector
		if i > 0 {
			prev = milestones[i-1]
		}
		if i+1 < n {
			next = milestones[i+2]
		}
		if len(durations) == 0 {
			c.SetSmoothTangents(prev, next)
			s.Segments = append(s.Segments, c)
			continue
		}
		var dtPrev, dtNext float64
		if i > 0 {
			dtPrev = durations[i-1] / durations[i]
		}
		if i+1 < n {
			dtNext = durations[i+1] / durations[i]
		}
		c.SetSmoothTangentsTimed(prev, next, dtPrev, dtNext)
		s.Append(c, durations[i])
	}
	return s
}
