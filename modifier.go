package arcform

import "fmt"

// SketchKeyframeDelta is one keyframe's contribution to a sketch
// modifier's additive layer (spec.md §4.F). A nil field means "no
// change at this keyframe" rather than an explicit zero offset.
type SketchKeyframeDelta struct {
	PosDelta, InDelta, OutDelta *Vector
}

// GraphKeyframeDelta is one keyframe's contribution to a graph
// modifier's additive layer. Graph modifiers only ever touch handles,
// never the (time, progress) anchor itself (spec.md §4.F).
type GraphKeyframeDelta struct {
	InDelta, OutDelta *Vector
}

// SketchModifier is a strength-scaled additive delta layer over a
// path's spatial keyframes. Deltas has the same length as the owning
// path's keyframe list.
type SketchModifier struct {
	ID       ID
	Deltas   []SketchKeyframeDelta
	Strength float64
}

// GraphModifier is the timing-curve analogue of SketchModifier.
type GraphModifier struct {
	ID       ID
	Deltas   []GraphKeyframeDelta
	Strength float64
}

// ApplySketchModifiers accumulates strength-scaled deltas from
// modifiers onto keyframes and returns the resulting offset sketch
// cubic chain, per spec.md §4.F "Apply".
func ApplySketchModifiers(keyframes []Keyframe, modifiers []*SketchModifier) []CubicBezier {
	base := BuildSketchCurves(keyframes)
	if len(base) == 0 {
		return base
	}

	pos := make([]Vector, len(keyframes))
	in := make([]Vector, len(keyframes))
	out := make([]Vector, len(keyframes))
	for _, m := range modifiers {
		if m == nil {
			continue
		}
		for i, d := range m.Deltas {
			if i >= len(keyframes) {
				continue
			}
			pos[i] = pos[i].Add(effectiveVector(d.PosDelta).MulScalar(m.Strength))
			in[i] = in[i].Add(effectiveVector(d.InDelta).MulScalar(m.Strength))
			out[i] = out[i].Add(effectiveVector(d.OutDelta).MulScalar(m.Strength))
		}
	}

	curves := make([]CubicBezier, len(base))
	for i, c := range base {
		curves[i] = CubicBezier{
			P0: c.P0.Add(pos[i]),
			P1: c.P1.Add(pos[i]).Add(out[i]),
			P2: c.P2.Add(pos[i+1]).Add(in[i+1]),
			P3: c.P3.Add(pos[i+1]),
		}
	}
	return curves
}

// ApplyGraphModifiers is the timing-curve analogue of
// ApplySketchModifiers: it offsets only the handles (P1/P2) of the
// base graph chain, never the anchors.
func ApplyGraphModifiers(keyframes []Keyframe, progress []float64, modifiers []*GraphModifier) []CubicBezier {
	base := BuildGraphCurves(keyframes, progress)
	if len(base) == 0 {
		return base
	}

	in := make([]Vector, len(keyframes))
	out := make([]Vector, len(keyframes))
	for _, m := range modifiers {
		if m == nil {
			continue
		}
		for i, d := range m.Deltas {
			if i >= len(keyframes) {
				continue
			}
			in[i] = in[i].Add(effectiveVector(d.InDelta).MulScalar(m.Strength))
			out[i] = out[i].Add(effectiveVector(d.OutDelta).MulScalar(m.Strength))
		}
	}

	curves := make([]CubicBezier, len(base))
	for i, c := range base {
		curves[i] = CubicBezier{
			P0: c.P0,
			P1: c.P1.Add(out[i]),
			P2: c.P2.Add(in[i+1]),
			P3: c.P3,
		}
	}
	return curves
}

// diffPosition computes a per-component difference collapsed to absent
// below the 1e-9 delta floor (spec.md §4.F "Normalization").
func diffPosition(modified, original Vector) *Vector {
	return diffVector(&modified, &original)
}

// CreateSketchModifier derives a SketchModifier at strength 1.0 from a
// modified-keyframe sample produced externally (e.g. by a suggestion
// pipeline) against the original keyframes, per spec.md §4.F "Create".
// selection, if non-nil, names the inclusive curve-index range
// [Start, End] the edit was confined to; the keyframe range touched is
// [Start, End+1]. When selection is nil the whole path is considered.
func CreateSketchModifier(original, modified []Keyframe, selection *Range) (*SketchModifier, error) {
	if len(original) != len(modified) {
		return nil, fmt.Errorf("%w: original (%d) and modified (%d) keyframe lists must have equal length", ErrInvalidArgument, len(original), len(modified))
	}
	if len(original) < 2 {
		return nil, fmt.Errorf("%w: CreateSketchModifier requires at least 2 keyframes, got %d", ErrInvalidArgument, len(original))
	}

	start, end := 0, len(original)-1
	if selection != nil {
		start, end = selection.Start, selection.End+1
		if start < 0 || end > len(original)-1 || start > end {
			return nil, fmt.Errorf("%w: selection %v out of range for %d keyframes", ErrInvalidArgument, *selection, len(original))
		}
	}

	deltas := make([]SketchKeyframeDelta, len(original))
	for i := start; i <= end; i++ {
		deltas[i] = SketchKeyframeDelta{
			PosDelta: diffPosition(modified[i].Position, original[i].Position),
			InDelta:  diffVector(modified[i].SketchIn, original[i].SketchIn),
			OutDelta: diffVector(modified[i].SketchOut, original[i].SketchOut),
		}
	}

	if selection != nil {
		if start > 0 {
			deltas[start].PosDelta = nil
		}
		if end < len(original)-1 {
			deltas[end].PosDelta = nil
		}
	}

	return &SketchModifier{ID: NewID(), Deltas: deltas, Strength: 1.0}, nil
}

// CreateGraphModifier is the timing-curve analogue of
// CreateSketchModifier. Graph modifiers carry no PosDelta: the anchor
// (time, progress) pair is never touched by a modifier, only its
// handles.
func CreateGraphModifier(original, modified []Keyframe, selection *Range) (*GraphModifier, error) {
	if len(original) != len(modified) {
		return nil, fmt.Errorf("%w: original (%d) and modified (%d) keyframe lists must have equal length", ErrInvalidArgument, len(original), len(modified))
	}
	if len(original) < 2 {
		return nil, fmt.Errorf("%w: CreateGraphModifier requires at least 2 keyframes, got %d", ErrInvalidArgument, len(original))
	}

	start, end := 0, len(original)-1
	if selection != nil {
		start, end = selection.Start, selection.End+1
		if start < 0 || end > len(original)-1 || start > end {
			return nil, fmt.Errorf("%w: selection %v out of range for %d keyframes", ErrInvalidArgument, *selection, len(original))
		}
	}

	deltas := make([]GraphKeyframeDelta, len(original))
	for i := start; i <= end; i++ {
		deltas[i] = GraphKeyframeDelta{
			InDelta:  diffVector(modified[i].GraphIn, original[i].GraphIn),
			OutDelta: diffVector(modified[i].GraphOut, original[i].GraphOut),
		}
	}

	return &GraphModifier{ID: NewID(), Deltas: deltas, Strength: 1.0}, nil
}

// UpdateStrength clamps and sets m's strength into [0, 2] (spec.md
// §4.F "Strength update").
func (m *SketchModifier) UpdateStrength(x float64) {
	m.Strength = clamp(x, 0, 2)
}

// UpdateStrength clamps and sets m's strength into [0, 2].
func (m *GraphModifier) UpdateStrength(x float64) {
	m.Strength = clamp(x, 0, 2)
}

// RemoveSketchModifier returns modifiers with the entry matching id
// filtered out.
func RemoveSketchModifier(modifiers []*SketchModifier, id ID) []*SketchModifier {
	out := modifiers[:0:0]
	for _, m := range modifiers {
		if m.ID != id {
			out = append(out, m)
		}
	}
	return out
}

// RemoveGraphModifier returns modifiers with the entry matching id
// filtered out.
func RemoveGraphModifier(modifiers []*GraphModifier, id ID) []*GraphModifier {
	out := modifiers[:0:0]
	for _, m := range modifiers {
		if m.ID != id {
			out = append(out, m)
		}
	}
	return out
}
