// Package gcurve provides cubic Bézier curves and splines over configuration
// spaces that may be flat or curved. It was designed as the geometric core of
// motion planners: curves interpolate between waypoints with controllable
// boundary tangents, and splines chain curves with per-segment durations to
// form continuous, differentiable trajectories.
//
// # Spaces
//
// Points and tangents are n-dimensional [Vector] values. How points are
// blended is decided by a [Space], and curved spaces additionally provide a
// [Manifold]: an exponential map ([Manifold.Integrate]) and the derivatives
// of the space's interpolation operator. Every algorithm in this package,
// from evaluation over differentiation to subdivision, is expressed in terms
// of these operators, so the same code works in Euclidean space and, for
// example, on rotation groups.
//
// Two spaces are provided. [Cartesian] is flat Euclidean space and is used
// whenever a curve has no space. [Torus] treats every component as an angle.
//
// # Curves
//
// A [Curve] has four control points. X0 and X3 are the endpoints; X1 and X2
// determine the tangents at the endpoints. They are usually not set directly
// but synthesized from tangents with [Curve.SetNaturalTangents] or from
// neighboring waypoints with [Curve.SetSmoothTangents] and
// [Curve.SetSmoothTangentsTimed].
//
// Curves are evaluated with a generalized form of de Casteljau's algorithm
// ([Curve.Eval]), differentiated analytically ([Curve.Deriv], [Curve.Accel])
// and bounded ([Curve.BoundingBox], [Curve.DerivBounds]). The acceleration
// of a curve with a manifold is an approximation; the first time it is
// computed, a warning is logged.
//
// # Splines
//
// A [Spline] is a sequence of curves with durations. It maps a global time
// to a segment and a local parameter ([Spline.ParamToSegment]) and rescales
// derivatives accordingly. Splines can be bisected globally
// ([Spline.Bisect]), built from waypoints ([FromMilestones]) and persisted in
// a text format ([Spline.Save], [Spline.Load]) or as YAML.
//
// # Errors
//
// Violated preconditions, such as querying an empty spline, panic. So does
// [Spline.BisectSegment], which is not implemented. Decoding malformed data
// returns an error wrapping [ErrMalformed].
//
// # Concurrency
//
// Curves and splines are plain values and need external synchronization
// when mutated concurrently. Their operators are shared, not copied; callers
// must not mutate an operator with internal state while curves using it are
// being evaluated.
//
// # Logging
//
// The package logs through [go.uber.org/zap]. See [SetLogger].
package gcurve
