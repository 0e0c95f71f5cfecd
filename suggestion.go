package arcform

import "math"

// PolarHandle is a suggestion-ingest handle encoded as an angle and a
// normalized distance, per spec.md §6 "Suggestion ingest".
type PolarHandle struct {
	AngleDeg float64
	DistNorm float64
}

// SuggestionKeyframe is one keyframe in the normalized bounding-box
// coordinate system a suggestion pipeline (e.g. LLM-backed) produces:
// position in [0,1]^2 and polar-encoded handles, per spec.md §6.
type SuggestionKeyframe struct {
	Time               float64
	Position           Vector
	SketchIn, SketchOut *PolarHandle
	GraphIn, GraphOut   *PolarHandle
}

// NormalizedBox is the explicit placement box a suggestion's
// coordinates are relative to, per spec.md §6.
type NormalizedBox struct {
	X, Y, Width, Height float64
}

// Diagonal returns hypot(width, height), the magnitude unit used to
// denormalize sketch handle distances.
func (b NormalizedBox) Diagonal() float64 {
	return math.Hypot(b.Width, b.Height)
}

// DenormalizeSuggestion converts a suggestion pipeline's normalized
// keyframes into user-space Keyframes, per spec.md §6: positions are
// placed within box, sketch handles are denormalized by box's diagonal,
// and graph handles are denormalized by each segment's own
// (Δtime, Δprogress) diagonal instead.
func DenormalizeSuggestion(keyframes []SuggestionKeyframe, box NormalizedBox) ([]Keyframe, error) {
	if len(keyframes) < 2 {
		return nil, invalidArgf("DenormalizeSuggestion requires at least 2 keyframes, got %d", len(keyframes))
	}

	diag := box.Diagonal()
	out := make([]Keyframe, len(keyframes))
	for i, sk := range keyframes {
		out[i] = Keyframe{
			Time:      sk.Time,
			Position:  Vector{X: box.X + sk.Position.X*box.Width, Y: box.Y + sk.Position.Y*box.Height},
			SketchIn:  denormalizePolar(sk.SketchIn, diag),
			SketchOut: denormalizePolar(sk.SketchOut, diag),
		}
	}

	sketchCurves := BuildSketchCurves(out)
	progress := ComputeKeyframeProgress(out, sketchCurves)

	for i, sk := range keyframes {
		if sk.GraphOut != nil && i < len(out)-1 {
			segDiag := math.Hypot(out[i+1].Time-out[i].Time, progress[i+1]-progress[i])
			out[i].GraphOut = denormalizePolar(sk.GraphOut, segDiag)
		}
		if sk.GraphIn != nil && i > 0 {
			segDiag := math.Hypot(out[i].Time-out[i-1].Time, progress[i]-progress[i-1])
			out[i].GraphIn = denormalizePolar(sk.GraphIn, segDiag)
		}
	}

	return out, nil
}

// denormalizePolar converts a polar handle into a Cartesian offset
// vector scaled by diag, per spec.md §6's
// handle = anchor + (cos θ, sin θ)·D·dist formula (the anchor term
// cancels since handles are stored as offsets, not absolute points).
func denormalizePolar(h *PolarHandle, diag float64) *Vector {
	if h == nil {
		return nil
	}
	rad := h.AngleDeg * math.Pi / 180
	mag := diag * h.DistNorm
	return normalizeDelta(Vector{X: math.Cos(rad) * mag, Y: math.Sin(rad) * mag})
}
