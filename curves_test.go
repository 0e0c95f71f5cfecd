package arcform

import "testing"

func straightLineKeyframes() []Keyframe {
	out := V(10, 0)
	in := V(-10, 0)
	return []Keyframe{
		{Time: 0, Position: V(0, 0), SketchOut: &out},
		{Time: 0.5, Position: V(30, 0), SketchIn: &in, SketchOut: &out},
		{Time: 1, Position: V(60, 0), SketchIn: &in},
	}
}

func TestBuildSketchCurves(t *testing.T) {
	keyframes := straightLineKeyframes()
	curves := BuildSketchCurves(keyframes)
	if len(curves) != 2 {
		t.Fatalf("len(curves) = %d, want 2", len(curves))
	}
	if curves[0].P0 != V(0, 0) || curves[0].P3 != V(30, 0) {
		t.Errorf("segment 0 anchors = %v/%v", curves[0].P0, curves[0].P3)
	}
	if curves[0].P1 != V(10, 0) {
		t.Errorf("segment 0 P1 = %v, want (10, 0) (absent-as-zero + SketchOut)", curves[0].P1)
	}
	if curves[1].P2 != V(50, 0) {
		t.Errorf("segment 1 P2 = %v, want (50, 0)", curves[1].P2)
	}
}

func TestBuildSketchCurves_TooFewKeyframes(t *testing.T) {
	if got := BuildSketchCurves([]Keyframe{{}}); got != nil {
		t.Errorf("BuildSketchCurves(1 keyframe) = %v, want nil", got)
	}
}

func TestComputeKeyframeProgress(t *testing.T) {
	keyframes := straightLineKeyframes()
	curves := BuildSketchCurves(keyframes)
	progress := ComputeKeyframeProgress(keyframes, curves)
	if progress[0] != 0 {
		t.Errorf("progress[0] = %v, want 0", progress[0])
	}
	if progress[len(progress)-1] != 1 {
		t.Errorf("progress[last] = %v, want 1", progress[len(progress)-1])
	}
	for i := 1; i < len(progress); i++ {
		if progress[i] < progress[i-1] {
			t.Fatalf("progress not monotone at %d: %v < %v", i, progress[i], progress[i-1])
		}
	}
}

func TestComputeKeyframeProgress_DegenerateChain(t *testing.T) {
	keyframes := []Keyframe{{Position: V(5, 5)}, {Position: V(5, 5)}}
	curves := BuildSketchCurves(keyframes)
	progress := ComputeKeyframeProgress(keyframes, curves)
	for i, p := range progress {
		if p != 0 {
			t.Errorf("progress[%d] = %v, want 0 for a zero-length chain", i, p)
		}
	}
}

func TestBuildGraphCurves_NaturalDefaults(t *testing.T) {
	keyframes := []Keyframe{{Time: 0}, {Time: 1}}
	progress := []float64{0, 1}
	curves := BuildGraphCurves(keyframes, progress)
	if len(curves) != 1 {
		t.Fatalf("len(curves) = %d, want 1", len(curves))
	}
	want := CubicBezier{
		P0: V(0, 0),
		P1: V(1.0/3, 1.0/3),
		P2: V(1-1.0/3, 1-1.0/3),
		P3: V(1, 1),
	}
	if curves[0] != want {
		t.Errorf("BuildGraphCurves with absent handles = %v, want natural one-third defaults %v", curves[0], want)
	}
}
