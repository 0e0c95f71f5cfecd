package arcform

import "fmt"

// SplitSegment inserts a new keyframe at parameter t along segment
// segmentIndex, preserving the visible sketch and graph shape exactly
// via de Casteljau splitting (spec.md §4.H). The returned list has one
// more keyframe than keyframes; the original is left untouched.
func SplitSegment(keyframes []Keyframe, segmentIndex int, t float64) ([]Keyframe, error) {
	if len(keyframes) < 2 {
		return nil, fmt.Errorf("%w: SplitSegment requires at least 2 keyframes, got %d", ErrInvalidArgument, len(keyframes))
	}
	if segmentIndex < 0 || segmentIndex >= len(keyframes)-1 {
		return nil, fmt.Errorf("%w: segment index %d out of range [0, %d)", ErrInvalidArgument, segmentIndex, len(keyframes)-1)
	}
	if !isFinite(t) || t <= 0 || t >= 1 {
		return nil, fmt.Errorf("%w: split parameter %v must be finite and in (0, 1)", ErrInvalidArgument, t)
	}

	out := CloneKeyframes(keyframes)
	s := segmentIndex

	sketchCurves := BuildSketchCurves(out)
	progress := ComputeKeyframeProgress(out, sketchCurves)
	graphCurves := BuildGraphCurves(out, progress)

	sLeft, sRight, sMid := sketchCurves[s].Split(t)
	gLeft, gRight, _ := graphCurves[s].Split(t)

	out[s].SketchOut = normalizeDelta(sLeft[1].Sub(sLeft[0]))
	out[s].GraphOut = normalizeDelta(gLeft[1].Sub(gLeft[0]))
	out[s+1].SketchIn = normalizeDelta(sRight[2].Sub(sRight[3]))
	out[s+1].GraphIn = normalizeDelta(gRight[2].Sub(gRight[3]))

	inserted := Keyframe{
		Time:      out[s].Time + (out[s+1].Time-out[s].Time)*t,
		Position:  sMid,
		SketchIn:  normalizeDelta(sLeft[2].Sub(sLeft[3])),
		SketchOut: normalizeDelta(sRight[1].Sub(sRight[0])),
		GraphIn:   normalizeDelta(gLeft[2].Sub(gLeft[3])),
		GraphOut:  normalizeDelta(gRight[1].Sub(gRight[0])),
	}

	result := make([]Keyframe, 0, len(out)+1)
	result = append(result, out[:s+1]...)
	result = append(result, inserted)
	result = append(result, out[s+1:]...)
	return result, nil
}

// SplitPath splits p at segmentIndex/t and carries every attached
// modifier through the split (spec.md §4.F "Split propagation"),
// returning a new Path that leaves p unmodified.
func SplitPath(p *Path, segmentIndex int, t float64) (*Path, error) {
	baseSplit, err := SplitSegment(p.Keyframes, segmentIndex, t)
	if err != nil {
		return nil, err
	}

	sketchMods := make([]*SketchModifier, len(p.SketchModifiers))
	for i, m := range p.SketchModifiers {
		sketchMods[i] = splitSketchModifier(p.Keyframes, baseSplit, m, segmentIndex, t)
	}
	graphMods := make([]*GraphModifier, len(p.GraphModifiers))
	for i, m := range p.GraphModifiers {
		graphMods[i] = splitGraphModifier(p.Keyframes, baseSplit, m, segmentIndex, t)
	}

	return &Path{
		ID:              NewID(),
		Keyframes:       baseSplit,
		StartTimeSec:    p.StartTimeSec,
		DurationSec:     p.DurationSec,
		SketchModifiers: sketchMods,
		GraphModifiers:  graphMods,
	}, nil
}

// addDeltaOptional applies delta (scaled by strength) onto base,
// re-normalizing the result to absent under the 1e-6 floor.
func addDeltaOptional(base, delta *Vector, strength float64) *Vector {
	if delta == nil {
		return base
	}
	return normalizeDelta(effectiveVector(base).Add(delta.MulScalar(strength)))
}

// applySketchDeltaToKeyframes materializes a modified keyframe list by
// applying m's deltas directly onto keyframe fields at the given
// strength, per spec.md §4.F "Split propagation" step "applying the
// modifier at strength 1 and splitting that copy".
func applySketchDeltaToKeyframes(keyframes []Keyframe, m *SketchModifier, strength float64) []Keyframe {
	out := CloneKeyframes(keyframes)
	for i, d := range m.Deltas {
		if i >= len(out) {
			break
		}
		out[i].Position = out[i].Position.Add(effectiveVector(d.PosDelta).MulScalar(strength))
		out[i].SketchIn = addDeltaOptional(out[i].SketchIn, d.InDelta, strength)
		out[i].SketchOut = addDeltaOptional(out[i].SketchOut, d.OutDelta, strength)
	}
	return out
}

// applyGraphDeltaToKeyframes is the timing-curve analogue of
// applySketchDeltaToKeyframes.
func applyGraphDeltaToKeyframes(keyframes []Keyframe, m *GraphModifier, strength float64) []Keyframe {
	out := CloneKeyframes(keyframes)
	for i, d := range m.Deltas {
		if i >= len(out) {
			break
		}
		out[i].GraphIn = addDeltaOptional(out[i].GraphIn, d.InDelta, strength)
		out[i].GraphOut = addDeltaOptional(out[i].GraphOut, d.OutDelta, strength)
	}
	return out
}

// splitSketchModifier rewrites m's deltas so the path's visible shape
// under m is preserved across a split at segmentIndex/t, per spec.md
// §4.F "Split propagation". baseSplit is the already-computed split of
// the unmodified keyframes.
func splitSketchModifier(original, baseSplit []Keyframe, m *SketchModifier, segmentIndex int, t float64) *SketchModifier {
	s := segmentIndex
	modifiedOriginal := applySketchDeltaToKeyframes(original, m, 1.0)
	modifiedSplit, err := SplitSegment(modifiedOriginal, s, t)
	if err != nil {
		modifiedSplit = baseSplit
	}

	newDeltas := make([]SketchKeyframeDelta, len(baseSplit))
	for i := 0; i < s && i < len(m.Deltas); i++ {
		newDeltas[i] = m.Deltas[i]
	}
	var oldStart, oldEnd SketchKeyframeDelta
	if s < len(m.Deltas) {
		oldStart = m.Deltas[s]
	}
	if s+1 < len(m.Deltas) {
		oldEnd = m.Deltas[s+1]
	}
	newDeltas[s] = SketchKeyframeDelta{
		PosDelta: oldStart.PosDelta,
		InDelta:  oldStart.InDelta,
		OutDelta: diffVector(modifiedSplit[s].SketchOut, baseSplit[s].SketchOut),
	}
	newDeltas[s+1] = SketchKeyframeDelta{
		PosDelta: diffPosition(modifiedSplit[s+1].Position, baseSplit[s+1].Position),
		InDelta:  diffVector(modifiedSplit[s+1].SketchIn, baseSplit[s+1].SketchIn),
		OutDelta: diffVector(modifiedSplit[s+1].SketchOut, baseSplit[s+1].SketchOut),
	}
	newDeltas[s+2] = SketchKeyframeDelta{
		PosDelta: oldEnd.PosDelta,
		InDelta:  diffVector(modifiedSplit[s+2].SketchIn, baseSplit[s+2].SketchIn),
		OutDelta: oldEnd.OutDelta,
	}
	for j := s + 2; j < len(m.Deltas); j++ {
		newDeltas[j+1] = m.Deltas[j]
	}

	return &SketchModifier{ID: m.ID, Deltas: newDeltas, Strength: m.Strength}
}

// splitGraphModifier is the timing-curve analogue of
// splitSketchModifier.
func splitGraphModifier(original, baseSplit []Keyframe, m *GraphModifier, segmentIndex int, t float64) *GraphModifier {
	s := segmentIndex
	modifiedOriginal := applyGraphDeltaToKeyframes(original, m, 1.0)
	modifiedSplit, err := SplitSegment(modifiedOriginal, s, t)
	if err != nil {
		modifiedSplit = baseSplit
	}

	newDeltas := make([]GraphKeyframeDelta, len(baseSplit))
	for i := 0; i < s && i < len(m.Deltas); i++ {
		newDeltas[i] = m.Deltas[i]
	}
	var oldStart, oldEnd GraphKeyframeDelta
	if s < len(m.Deltas) {
		oldStart = m.Deltas[s]
	}
	if s+1 < len(m.Deltas) {
		oldEnd = m.Deltas[s+1]
	}
	newDeltas[s] = GraphKeyframeDelta{
		InDelta:  oldStart.InDelta,
		OutDelta: diffVector(modifiedSplit[s].GraphOut, baseSplit[s].GraphOut),
	}
	newDeltas[s+1] = GraphKeyframeDelta{
		InDelta:  diffVector(modifiedSplit[s+1].GraphIn, baseSplit[s+1].GraphIn),
		OutDelta: diffVector(modifiedSplit[s+1].GraphOut, baseSplit[s+1].GraphOut),
	}
	newDeltas[s+2] = GraphKeyframeDelta{
		InDelta:  diffVector(modifiedSplit[s+2].GraphIn, baseSplit[s+2].GraphIn),
		OutDelta: oldEnd.OutDelta,
	}
	for j := s + 2; j < len(m.Deltas); j++ {
		newDeltas[j+1] = m.Deltas[j]
	}

	return &GraphModifier{ID: m.ID, Deltas: newDeltas, Strength: m.Strength}
}
