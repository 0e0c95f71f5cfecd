package arcform

import "math"

// CubicBezier is a cubic Bézier segment with control points P0..P3.
// P0 and P3 are the segment's anchors; P1 and P2 are its handles.
//
// Evaluation, derivatives, and splitting are grounded on the teacher
// library's CubicBez type but generalized to fitting/splitting math
// rather than render-time path flattening.
type CubicBezier struct {
	P0, P1, P2, P3 Vector
}

// Eval evaluates the curve at parameter t using the closed-form
// Bernstein basis (spec.md §4.A).
func (c CubicBezier) Eval(t float64) Vector {
	mt := 1 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t
	return Vector{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// Deriv1 evaluates the first derivative B'(t) (standard analytic form).
func (c CubicBezier) Deriv1(t float64) Vector {
	mt := 1 - t
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	return Vector{
		X: 3 * (d0.X*mt*mt + 2*d1.X*mt*t + d2.X*t*t),
		Y: 3 * (d0.Y*mt*mt + 2*d1.Y*mt*t + d2.Y*t*t),
	}
}

// Deriv2 evaluates the second derivative B''(t) (standard analytic form).
func (c CubicBezier) Deriv2(t float64) Vector {
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	a := d1.Sub(d0)
	b := d2.Sub(d1)
	return Vector{
		X: 6 * (a.X*(1-t) + b.X*t),
		Y: 6 * (a.Y*(1-t) + b.Y*t),
	}
}

// ChordLength estimates the curve's arc length as the average of the
// chord (P0->P3) and the control-polygon length, per spec.md §4.A. This
// is a cheap estimate used for arc-length weighting; it does not
// subdivide.
func (c CubicBezier) ChordLength() float64 {
	chord := c.P0.Dist(c.P3)
	poly := c.P0.Dist(c.P1) + c.P1.Dist(c.P2) + c.P2.Dist(c.P3)
	return (chord + poly) / 2
}

// Split performs an exact de Casteljau split at parameter t, returning
// the left and right sub-curves' four control points and the shared
// midpoint.
func (c CubicBezier) Split(t float64) (left [4]Vector, right [4]Vector, mid Vector) {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	m := p012.Lerp(p123, t)

	left = [4]Vector{c.P0, p01, p012, m}
	right = [4]Vector{m, p123, p23, c.P3}
	return left, right, m
}

// NewtonRefineParam performs one Newton-Raphson refinement step on the
// parameter u for a curve with control points (p0, p1, p2, p3) being fit
// to a target point q, per spec.md §4.A:
//
//	u' = u - (B(u)-Q)·B'(u) / (B'(u)·B'(u) + (B(u)-Q)·B''(u))
//
// If the denominator's magnitude is below 1e-6 or the result is
// non-finite, u is returned unchanged. The caller is responsible for
// clamping the result into [0, 1].
func NewtonRefineParam(curve CubicBezier, q Vector, u float64) float64 {
	bu := curve.Eval(u)
	d1 := curve.Deriv1(u)
	d2 := curve.Deriv2(u)

	diff := bu.Sub(q)
	denom := d1.Dot(d1) + diff.Dot(d2)
	if math.Abs(denom) < chordFloor {
		return u
	}

	uPrime := u - diff.Dot(d1)/denom
	if !isFinite(uPrime) {
		return u
	}
	return uPrime
}

// SplitTangent computes the unit vector at interior sample index i that
// points "back" from points[i+1] toward points[i-1], used as the shared
// boundary tangent at a fitter split point (spec.md §4.A). It returns
// (zero, false) when i is an endpoint of points or when the neighbors
// coincide within 1e-6.
func SplitTangent(points []Vector, i int) (Vector, bool) {
	if i <= 0 || i >= len(points)-1 {
		return Vector{}, false
	}
	d := points[i-1].Sub(points[i+1])
	if d.Mag() < chordFloor {
		return Vector{}, false
	}
	return d.Normalize(), true
}
