package arcform

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// chordLengthParams computes the chord-length parameterization of
// points[rng.Start..rng.End] into u values in [0, 1], per spec.md §4.B
// step 1. A degenerate (zero total length) range yields all zeros.
func chordLengthParams(points []Vector, rng Range) []float64 {
	n := rng.Len()
	us := make([]float64, n)
	if n < 2 {
		return us
	}
	cum := make([]float64, n)
	total := 0.0
	for k := 1; k < n; k++ {
		total += points[rng.Start+k].Dist(points[rng.Start+k-1])
		cum[k] = total
	}
	if total < chordFloor {
		return us
	}
	for k := 0; k < n; k++ {
		us[k] = cum[k] / total
	}
	return us
}

// endTangents computes the unit tangents at the start and end of rng
// using the standard formulas from spec.md §4.B step 2, unless an
// override is supplied (used when a boundary is shared with a fitter
// split point, spec.md §4.B step 6: "using the split tangent ... as the
// shared boundary tangent").
func endTangents(points []Vector, rng Range, startOverride, endOverride *Vector) (t1, t2 Vector) {
	if startOverride != nil {
		t1 = *startOverride
	} else {
		t1 = points[rng.Start+1].Sub(points[rng.Start]).Normalize()
	}
	if endOverride != nil {
		t2 = *endOverride
	} else {
		t2 = points[rng.End].Sub(points[rng.End-1]).Normalize().MulScalar(-1)
	}
	return t1, t2
}

// solveHandleMagnitudes solves the 2x2 least-squares normal equations
// for handle magnitudes alpha1, alpha2 (spec.md §4.B step 3), given
// fixed end tangents t1 (at p0) and t2 (at p3, pointing inward). It
// falls back to the chord/3 rule whenever the chord is degenerate or
// the normal-equation matrix is singular/non-finite.
func solveHandleMagnitudes(points []Vector, rng Range, us []float64, p0, p3, t1, t2 Vector) (alpha1, alpha2 float64) {
	chord := p0.Dist(p3)
	if chord < chordFloor {
		return 0, 0
	}
	fallback := chord / 3

	var c00, c01, c11, x0, x1 float64
	for k, u := range us {
		p := points[rng.Start+k]
		b0 := (1 - u) * (1 - u) * (1 - u)
		b1 := 3 * u * (1 - u) * (1 - u)
		b2 := 3 * u * u * (1 - u)
		b3 := u * u * u

		a1 := t1.MulScalar(b1)
		a2 := t2.MulScalar(b2)
		rest := p0.MulScalar(b0).Add(p3.MulScalar(b3))
		diff := p.Sub(rest)

		c00 += a1.Dot(a1)
		c01 += a1.Dot(a2)
		c11 += a2.Dot(a2)
		x0 += a1.Dot(diff)
		x1 += a2.Dot(diff)
	}

	det := c00*c11 - c01*c01
	if math.Abs(det) < chordFloor {
		return fallback, fallback
	}

	a := mat.NewDense(2, 2, []float64{c00, c01, c01, c11})
	b := mat.NewVecDense(2, []float64{x0, x1})
	var dst mat.VecDense
	if err := dst.SolveVec(a, b); err != nil {
		return fallback, fallback
	}
	alpha1, alpha2 = dst.AtVec(0), dst.AtVec(1)
	if !isFinite(alpha1) || !isFinite(alpha2) {
		return fallback, fallback
	}
	return alpha1, alpha2
}

// buildCubic fits a cubic to points[rng.Start..rng.End] given end
// tangents t1, t2 and a parameterization us. Falls back to the chord/3
// handle rule if either resulting control point is non-finite (a
// degenerate or non-finite tangent surviving from an upstream caller).
func buildCubic(points []Vector, rng Range, us []float64, t1, t2 Vector) CubicBezier {
	p0 := points[rng.Start]
	p3 := points[rng.End]
	a1, a2 := solveHandleMagnitudes(points, rng, us, p0, p3, t1, t2)
	p1 := p0.Add(t1.MulScalar(a1))
	p2 := p3.Add(t2.MulScalar(a2))
	if !vecIsFinite(p1) || !vecIsFinite(p2) {
		fallback := p0.Dist(p3) / 3
		p1 = p0.Add(t1.MulScalar(fallback))
		p2 = p3.Add(t2.MulScalar(fallback))
	}
	return CubicBezier{P0: p0, P1: p1, P2: p2, P3: p3}
}

// measureError returns the maximum Euclidean deviation between curve
// and points at the interior sample parameters of rng, per spec.md
// §4.B step 4. Ranges with fewer than 3 samples report zero error and
// a negative index ("no interior point").
func measureError(points []Vector, rng Range, us []float64, curve CubicBezier) FitErrorResult {
	n := rng.Len()
	if n < 3 {
		return FitErrorResult{MaxError: 0, Index: -1}
	}
	maxErr := 0.0
	maxIdx := -1
	for k := 1; k < n-1; k++ {
		d := curve.Eval(us[k]).Dist(points[rng.Start+k])
		if d > maxErr {
			maxErr = d
			maxIdx = rng.Start + k
		}
	}
	return FitErrorResult{MaxError: maxErr, Index: maxIdx}
}

// newtonRefineInterior runs one Newton-Raphson refinement pass over the
// interior parameters of us against curve, clamping each result into
// [0, 1] as the caller of NewtonRefineParam is required to do.
func newtonRefineInterior(points []Vector, rng Range, us []float64, curve CubicBezier) []float64 {
	refined := make([]float64, len(us))
	copy(refined, us)
	for k := 1; k < len(us)-1; k++ {
		u := NewtonRefineParam(curve, points[rng.Start+k], us[k])
		refined[k] = clamp01(u)
	}
	return refined
}
