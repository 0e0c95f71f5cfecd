package arcform

import "github.com/google/uuid"

// Range is a closed [Start, End] inclusive sample-index interval used by
// the sketch and graph fitters.
type Range struct {
	Start, End int
}

// Len returns the number of samples covered by r, inclusive.
func (r Range) Len() int {
	return r.End - r.Start + 1
}

// FitErrorResult captures the last error measurement taken during a
// fitter pass: the largest deviation found and the sample index at
// which it occurred. Index < 0 means "no interior point" (e.g. fewer
// than 3 samples in the range).
type FitErrorResult struct {
	MaxError float64
	Index    int
}

// Keyframe is the central entity of the data model: an anchor plus its
// incoming/outgoing handles for both the spatial (sketch) curve and the
// timing (graph) curve, at a normalized time in [0, 1].
//
// SketchIn/SketchOut/GraphIn/GraphOut are handle offsets relative to
// Position (sketch) or the keyframe's (Time, progress) point (graph).
// A nil handle is semantically the zero vector for sketch handles, or
// the natural one-third default for graph handles (spec.md §3, §9).
type Keyframe struct {
	Time               float64
	Position           Vector
	SketchIn, SketchOut *Vector
	GraphIn, GraphOut   *Vector
}

// Clone returns a deep copy of k (handle pointers are not aliased).
func (k Keyframe) Clone() Keyframe {
	out := k
	out.SketchIn = clonePtr(k.SketchIn)
	out.SketchOut = clonePtr(k.SketchOut)
	out.GraphIn = clonePtr(k.GraphIn)
	out.GraphOut = clonePtr(k.GraphOut)
	return out
}

func clonePtr(v *Vector) *Vector {
	if v == nil {
		return nil
	}
	cp := *v
	return &cp
}

// CloneKeyframes returns a deep copy of a keyframe slice.
func CloneKeyframes(keyframes []Keyframe) []Keyframe {
	out := make([]Keyframe, len(keyframes))
	for i, k := range keyframes {
		out[i] = k.Clone()
	}
	return out
}

// ID is an opaque unique token identifying a Path or Modifier.
type ID string

// NewID mints a fresh opaque ID.
func NewID() ID {
	return ID(uuid.New().String())
}

// Path is an editable, keyframed motion path: a base keyframe list plus
// the additive modifier stacks layered on top of it (spec.md §3). A
// Path with fewer than 2 keyframes is not "editable" (not playable or
// selectable) but may still exist transiently during construction.
type Path struct {
	ID              ID
	Keyframes       []Keyframe
	StartTimeSec    float64
	DurationSec     float64
	SketchModifiers []*SketchModifier
	GraphModifiers  []*GraphModifier
}

// NewPath creates a Path from a keyframe list with a freshly minted ID.
// DurationSec is floored to 0.01 per spec.md §3.
func NewPath(keyframes []Keyframe, startTimeSec, durationSec float64) *Path {
	if durationSec < 0.01 {
		durationSec = 0.01
	}
	return &Path{
		ID:           NewID(),
		Keyframes:    keyframes,
		StartTimeSec: startTimeSec,
		DurationSec:  durationSec,
	}
}

// Editable reports whether the path has enough keyframes to be played
// back or selected (spec.md §3 invariant: size >= 2).
func (p *Path) Editable() bool {
	return len(p.Keyframes) >= 2
}
