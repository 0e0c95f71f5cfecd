package arcform

import (
	"math"
	"testing"
)

func linearPath(startSec, durationSec float64) *Path {
	out := V(20, 0)
	in := V(-20, 0)
	keyframes := []Keyframe{
		{Time: 0, Position: V(0, 0), SketchOut: &out},
		{Time: 1, Position: V(60, 0), SketchIn: &in},
	}
	return NewPath(keyframes, startSec, durationSec)
}

// TestEvaluate_MotionBoundary is scenario S6.
func TestEvaluate_MotionBoundary(t *testing.T) {
	p := linearPath(0.5, 2.0)
	want := V(0, 0)
	end := V(60, 0)

	cases := []struct {
		elapsedMs float64
		want      Vector
	}{
		{499, want},
		{500, want},
		{2500, end},
		{2501, end},
	}
	for _, c := range cases {
		if got := p.Evaluate(c.elapsedMs); got.Dist(c.want) > 1e-6 {
			t.Errorf("Evaluate(%v) = %v, want %v", c.elapsedMs, got, c.want)
		}
	}
}

// TestEvaluate_Endpoints is invariant 7, generalized across a
// multi-segment path.
func TestEvaluate_Endpoints(t *testing.T) {
	keyframes := twoSegmentPath()
	p := NewPath(keyframes, 0, 1.5)

	sketchCurves := BuildSketchCurves(keyframes)
	if got := p.Evaluate(0); got.Dist(sketchCurves[0].P0) > 1e-9 {
		t.Errorf("Evaluate(start) = %v, want %v", got, sketchCurves[0].P0)
	}
	if got := p.Evaluate(1500); got.Dist(sketchCurves[len(sketchCurves)-1].P3) > 1e-9 {
		t.Errorf("Evaluate(start+duration) = %v, want %v", got, sketchCurves[len(sketchCurves)-1].P3)
	}
}

// TestSolveBezierX_MonotoneResidual is invariant 8.
func TestSolveBezierX_MonotoneResidual(t *testing.T) {
	curve := CubicBezier{P0: V(0, 0), P1: V(0.2, 0.1), P2: V(0.6, 0.4), P3: V(1, 1)}
	xRange := curve.P3.X - curve.P0.X

	for _, tau := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		u := solveBezierX(curve, tau)
		residual := math.Abs(curve.Eval(u).X - tau)
		bound := xRange * math.Pow(2, -10)
		if residual > bound {
			t.Errorf("solveBezierX(tau=%v): residual %v exceeds bound %v", tau, residual, bound)
		}
	}
}

func TestEvaluate_NotEditable(t *testing.T) {
	p := &Path{Keyframes: []Keyframe{{Position: V(1, 1)}}}
	if got := p.Evaluate(0); got != (Vector{}) {
		t.Errorf("Evaluate() on a non-editable path = %v, want zero vector", got)
	}
}

func TestEvaluateAll_LoopsModuloTotal(t *testing.T) {
	p1 := linearPath(0, 1.0)
	p2 := linearPath(0, 2.0)
	paths := []*Path{p1, p2}

	a := EvaluateAll(paths, 500, nil)
	b := EvaluateAll(paths, 500+2000, nil)
	for i := range a {
		if d := a[i].Dist(b[i]); d > 1e-9 {
			t.Errorf("path %d: EvaluateAll did not loop modulo total duration: %v vs %v", i, a[i], b[i])
		}
	}
}
