package arcform

import "testing"

func TestGenerateKeyframes_Linear(t *testing.T) {
	points := make([]Vector, 10)
	timestamps := make([]float64, 10)
	for i := range points {
		points[i] = V(float64(i)*10, 0)
		timestamps[i] = float64(i) * 10
	}

	keyframes, err := GenerateKeyframes(points, timestamps, 2, 6)
	if err != nil {
		t.Fatalf("GenerateKeyframes() error = %v", err)
	}
	if len(keyframes) != 2 {
		t.Fatalf("len(keyframes) = %d, want 2 for a single fitted segment", len(keyframes))
	}
	if keyframes[0].Time != 0 || keyframes[len(keyframes)-1].Time != 1 {
		t.Errorf("endpoint times = %v/%v, want 0/1", keyframes[0].Time, keyframes[len(keyframes)-1].Time)
	}
}

// TestGenerateKeyframes_NonUniformTiming is scenario S3: timestamps
// clustered early along a straight-line stroke produce a graph chain
// whose B_y(0.5) exceeds 0.5 (progress runs ahead of linear time).
func TestGenerateKeyframes_NonUniformTiming(t *testing.T) {
	const n = 20
	points := make([]Vector, n)
	timestamps := make([]float64, n)
	for i := 0; i < n; i++ {
		points[i] = V(float64(i)*5, 0)
		if i < 10 {
			timestamps[i] = float64(i)
		} else {
			timestamps[i] = 9 + float64(i-9)*10
		}
	}

	keyframes, err := GenerateKeyframes(points, timestamps, 2, 6)
	if err != nil {
		t.Fatalf("GenerateKeyframes() error = %v", err)
	}

	sketchCurves := BuildSketchCurves(keyframes)
	progress := ComputeKeyframeProgress(keyframes, sketchCurves)
	graphCurves := BuildGraphCurves(keyframes, progress)

	i := locateKeyframeInterval(keyframes, 0.5)
	u := solveBezierX(graphCurves[i], 0.5)
	byAtHalf := graphCurves[i].Eval(u).Y

	if byAtHalf <= 0.5 {
		t.Errorf("B_y(0.5) = %v, want > 0.5 (faster early progress)", byAtHalf)
	}
}

func TestNormalizeTimestamps_DegenerateSpan(t *testing.T) {
	got := normalizeTimestamps([]float64{5, 5, 5})
	for i, v := range got {
		if v != 0 {
			t.Errorf("normalizeTimestamps[%d] = %v, want 0 for a zero-span input", i, v)
		}
	}
}

func TestGenerateKeyframes_MismatchedLengths(t *testing.T) {
	if _, err := GenerateKeyframes([]Vector{V(0, 0), V(1, 1)}, []float64{0}, 1, 2); err == nil {
		t.Error("GenerateKeyframes with mismatched lengths should error")
	}
}
