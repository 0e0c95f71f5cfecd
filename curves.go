package arcform

// BuildSketchCurves emits n-1 cubics reconstructing the spatial path
// from a keyframe list, per spec.md §4.E: segment i runs from
// keyframes[i].Position to keyframes[i+1].Position, with handles taken
// from keyframes[i].SketchOut and keyframes[i+1].SketchIn. An absent
// handle is treated as the zero vector.
func BuildSketchCurves(keyframes []Keyframe) []CubicBezier {
	if len(keyframes) < 2 {
		return nil
	}
	curves := make([]CubicBezier, len(keyframes)-1)
	for i := 0; i < len(keyframes)-1; i++ {
		k0, k1 := keyframes[i], keyframes[i+1]
		curves[i] = CubicBezier{
			P0: k0.Position,
			P1: k0.Position.Add(effectiveVector(k0.SketchOut)),
			P2: k1.Position.Add(effectiveVector(k1.SketchIn)),
			P3: k1.Position,
		}
	}
	return curves
}

// ComputeKeyframeProgress computes each keyframe's cumulative arc-length
// progress along curves, normalized into [0, 1], per spec.md §4.E.
// Keyframe 0 is always 0; a degenerate (zero total length) chain yields
// all zeros.
func ComputeKeyframeProgress(keyframes []Keyframe, curves []CubicBezier) []float64 {
	progress := make([]float64, len(keyframes))
	if len(curves) == 0 {
		return progress
	}
	lengths := make([]float64, len(curves))
	total := 0.0
	for i, c := range curves {
		lengths[i] = c.ChordLength()
		total += lengths[i]
	}
	if total < chordFloor {
		return progress
	}
	cum := 0.0
	for i, l := range lengths {
		progress[i+1] = clamp01((cum + l) / total)
		cum += l
	}
	return progress
}

// BuildGraphCurves reconstructs the timing (time, progress) cubic chain
// from a keyframe list and its precomputed per-keyframe progress, per
// spec.md §4.E. It shares BuildSketchCurves' structure over the (time,
// progress) plane, substituting the natural one-third default for any
// absent graph handle rather than treating it as zero.
func BuildGraphCurves(keyframes []Keyframe, progress []float64) []CubicBezier {
	if len(keyframes) < 2 {
		return nil
	}
	curves := make([]CubicBezier, len(keyframes)-1)
	for i := 0; i < len(keyframes)-1; i++ {
		k0, k1 := keyframes[i], keyframes[i+1]
		p0 := Vector{X: k0.Time, Y: progress[i]}
		p3 := Vector{X: k1.Time, Y: progress[i+1]}

		out := k0.GraphOut
		if out == nil {
			out = naturalGraphOut(keyframes, progress, i)
		}
		in := k1.GraphIn
		if in == nil {
			in = naturalGraphIn(keyframes, progress, i+1)
		}

		curves[i] = CubicBezier{
			P0: p0,
			P1: p0.Add(*out),
			P2: p3.Add(*in),
			P3: p3,
		}
	}
	return curves
}
