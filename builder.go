package arcform

import "fmt"

// GenerateKeyframes fuses the sketch fitter (§4.B) and graph fitter
// (§4.C) outputs into a single Keyframe list (spec.md §4.D): one
// keyframe per sketch-segment boundary, with both sketch and graph
// handles attached.
//
// points and timestamps must have the same length >= 2; timestamps must
// be monotonically non-decreasing (spec.md §6 "Input gesture").
func GenerateKeyframes(points []Vector, timestamps []float64, epsFine, epsCoarse float64) ([]Keyframe, error) {
	if len(points) != len(timestamps) {
		return nil, fmt.Errorf("%w: points (%d) and timestamps (%d) must have equal length", ErrInvalidArgument, len(points), len(timestamps))
	}
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: GenerateKeyframes requires at least 2 points, got %d", ErrInvalidArgument, len(points))
	}

	sketchCurves, ranges, _, err := FitSketch(points, epsFine, epsCoarse)
	if err != nil {
		return nil, err
	}

	timeNorm := normalizeTimestamps(timestamps)
	progressNorm := normalizeProgress(points)

	n := len(points)
	splitIndices := make([]int, 0, len(ranges)+1)
	splitIndices = append(splitIndices, ranges[0].Start)
	for _, r := range ranges {
		splitIndices = append(splitIndices, r.End)
	}

	timingPoints := make([]Vector, n)
	for i := 0; i < n; i++ {
		timingPoints[i] = Vector{X: timeNorm[i], Y: progressNorm[i]}
	}
	graphCurves, graphErr := FitGraph(timingPoints, splitIndices)
	hasGraph := graphErr == nil

	keyframes := make([]Keyframe, len(ranges)+1)
	kfProgress := make([]float64, len(ranges)+1)
	keyframes[0] = Keyframe{
		Time:     clamp01(timeNorm[ranges[0].Start]),
		Position: sketchCurves[0].P0,
	}
	kfProgress[0] = clamp01(progressNorm[ranges[0].Start])
	for i, curve := range sketchCurves {
		endKf := i + 1
		keyframes[endKf].Time = clamp01(timeNorm[ranges[i].End])
		keyframes[endKf].Position = curve.P3
		keyframes[endKf].SketchIn = normalizeDelta(curve.P2.Sub(curve.P3))
		keyframes[i].SketchOut = normalizeDelta(curve.P1.Sub(curve.P0))
		kfProgress[endKf] = clamp01(progressNorm[ranges[i].End])
	}

	for i := range keyframes {
		var graphOut, graphIn *Vector
		if hasGraph && i < len(graphCurves) {
			gc := graphCurves[i]
			graphOut = normalizeDelta(gc.P1.Sub(gc.P0))
		}
		if hasGraph && i > 0 && i-1 < len(graphCurves) {
			gc := graphCurves[i-1]
			graphIn = normalizeDelta(gc.P2.Sub(gc.P3))
		}
		if graphOut == nil && i+1 < len(keyframes) {
			graphOut = naturalGraphOut(keyframes, kfProgress, i)
		}
		if graphIn == nil && i > 0 {
			graphIn = naturalGraphIn(keyframes, kfProgress, i)
		}
		keyframes[i].GraphOut = graphOut
		keyframes[i].GraphIn = graphIn
	}

	return keyframes, nil
}

// normalizeTimestamps maps raw timestamps into [0, 1] by subtracting t0
// and dividing by the total span; a degenerate (zero-span) input yields
// all zeros.
func normalizeTimestamps(timestamps []float64) []float64 {
	out := make([]float64, len(timestamps))
	span := timestamps[len(timestamps)-1] - timestamps[0]
	if span < chordFloor {
		return out
	}
	t0 := timestamps[0]
	for i, t := range timestamps {
		out[i] = (t - t0) / span
	}
	return out
}

// normalizeProgress computes cumulative chord length along points,
// normalized into [0, 1]; a degenerate (zero-length) input yields all
// zeros.
func normalizeProgress(points []Vector) []float64 {
	out := make([]float64, len(points))
	total := 0.0
	cum := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		total += points[i].Dist(points[i-1])
		cum[i] = total
	}
	if total < chordFloor {
		return out
	}
	for i, c := range cum {
		out[i] = c / total
	}
	return out
}

// naturalGraphOut returns the natural one-third default outgoing graph
// handle for keyframe i, (Δt/3, Δv/3) where Δv is the progress delta to
// keyframe i+1, per spec.md §4.D step 5.
func naturalGraphOut(keyframes []Keyframe, progress []float64, i int) *Vector {
	dt := keyframes[i+1].Time - keyframes[i].Time
	dv := progress[i+1] - progress[i]
	return &Vector{X: dt / 3, Y: dv / 3}
}

// naturalGraphIn returns the natural one-third default incoming graph
// handle for keyframe i, (-Δt/3, -Δv/3) where Δv is the progress delta
// from keyframe i-1, per spec.md §4.D step 5.
func naturalGraphIn(keyframes []Keyframe, progress []float64, i int) *Vector {
	dt := keyframes[i].Time - keyframes[i-1].Time
	dv := progress[i] - progress[i-1]
	return &Vector{X: -dt / 3, Y: -dv / 3}
}
