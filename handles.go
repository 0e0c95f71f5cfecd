package arcform

// Selection identifies one control point in a path: a curve index plus
// a point index in {0, 1, 2, 3} (0 = start anchor, 1 = start control,
// 2 = end control, 3 = end anchor), per spec.md §4.I.
type Selection struct {
	PathIndex  int
	CurveIndex int
	PointIndex int
}

// DragState is the handle editor's state machine: Idle -> Dragging ->
// Idle (spec.md §4.I).
type DragState int

const (
	DragIdle DragState = iota
	DragActive
)

// Editor tracks the handle editor's current drag gesture.
type Editor struct {
	State      DragState
	Selections []Selection
}

// BeginDrag enters the Dragging state over sel.
func (e *Editor) BeginDrag(sel []Selection) {
	e.State = DragActive
	e.Selections = sel
}

// EndDrag returns to Idle.
func (e *Editor) EndDrag() {
	e.State = DragIdle
	e.Selections = nil
}

// DragAnchor translates the anchor at curveIndex/pointIndex (0 or 3) by
// delta. Because handles are stored as offsets relative to their
// anchor, translating the anchor's Position alone already carries its
// adjacent controls by the same delta, and a shared anchor is a single
// Keyframe, so no separate propagation step is needed (spec.md §4.I).
func DragAnchor(keyframes []Keyframe, curveIndex, pointIndex int, delta Vector) error {
	if curveIndex < 0 || curveIndex >= len(keyframes)-1 {
		return invalidArgf("curve index %d out of range [0, %d)", curveIndex, len(keyframes)-1)
	}
	var kfIndex int
	switch pointIndex {
	case 0:
		kfIndex = curveIndex
	case 3:
		kfIndex = curveIndex + 1
	default:
		return invalidArgf("DragAnchor requires point index 0 or 3, got %d", pointIndex)
	}
	keyframes[kfIndex].Position = keyframes[kfIndex].Position.Add(delta)
	return nil
}

// DragControl translates the sketch control at curveIndex/pointIndex (1
// or 2) by delta. In mirror mode the opposite control sharing the same
// anchor is rotated to stay collinear through the anchor, preserving
// its own length; a zero-magnitude opposite control is left untouched
// (spec.md §4.I).
func DragControl(keyframes []Keyframe, curveIndex, pointIndex int, delta Vector, mirror bool) error {
	if curveIndex < 0 || curveIndex >= len(keyframes)-1 {
		return invalidArgf("curve index %d out of range [0, %d)", curveIndex, len(keyframes)-1)
	}
	switch pointIndex {
	case 1:
		kfIndex := curveIndex
		newVec := effectiveVector(keyframes[kfIndex].SketchOut).Add(delta)
		keyframes[kfIndex].SketchOut = normalizeDelta(newVec)
		if mirror {
			mirrorOpposite(&keyframes[kfIndex].SketchIn, newVec)
		}
	case 2:
		kfIndex := curveIndex + 1
		newVec := effectiveVector(keyframes[kfIndex].SketchIn).Add(delta)
		keyframes[kfIndex].SketchIn = normalizeDelta(newVec)
		if mirror {
			mirrorOpposite(&keyframes[kfIndex].SketchOut, newVec)
		}
	default:
		return invalidArgf("DragControl requires point index 1 or 2, got %d", pointIndex)
	}
	return nil
}

// mirrorOpposite retargets *opposite to lie collinear with, and
// opposite in direction from, newPrimary through the shared anchor,
// preserving the opposite control's prior length. A near-zero prior
// opposite is left untouched since there is no length to preserve.
func mirrorOpposite(opposite **Vector, newPrimary Vector) {
	mag := effectiveVector(*opposite).Mag()
	if mag < chordFloor {
		return
	}
	dir := newPrimary.Normalize()
	if dir.IsZero() {
		return
	}
	*opposite = normalizeDelta(dir.MulScalar(-mag))
}

// DragGraphControl is the timing-curve analogue of DragControl for
// interior graph handles: it additionally clamps the handle's absolute
// time into the owning segment's time range before writing the
// relative vector back to graph_out/graph_in (spec.md §4.I).
func DragGraphControl(keyframes []Keyframe, curveIndex, pointIndex int, delta Vector) error {
	if curveIndex < 0 || curveIndex >= len(keyframes)-1 {
		return invalidArgf("curve index %d out of range [0, %d)", curveIndex, len(keyframes)-1)
	}
	switch pointIndex {
	case 1:
		kfIndex := curveIndex
		base := keyframes[kfIndex].Time
		segEnd := keyframes[kfIndex+1].Time
		cur := keyframes[kfIndex].GraphOut
		var effective Vector
		if cur != nil {
			effective = *cur
		} else {
			effective = *naturalGraphOut(keyframes, keyframeProgress(keyframes), kfIndex)
		}
		newVec := effective.Add(delta)
		newVec.X = clamp(base+newVec.X, base, segEnd) - base
		keyframes[kfIndex].GraphOut = normalizeDelta(newVec)
	case 2:
		kfIndex := curveIndex + 1
		base := keyframes[kfIndex].Time
		segStart := keyframes[kfIndex-1].Time
		cur := keyframes[kfIndex].GraphIn
		var effective Vector
		if cur != nil {
			effective = *cur
		} else {
			effective = *naturalGraphIn(keyframes, keyframeProgress(keyframes), kfIndex)
		}
		newVec := effective.Add(delta)
		newVec.X = clamp(base+newVec.X, segStart, base) - base
		keyframes[kfIndex].GraphIn = normalizeDelta(newVec)
	default:
		return invalidArgf("DragGraphControl requires point index 1 or 2, got %d", pointIndex)
	}
	return nil
}

// keyframeProgress recomputes each keyframe's cumulative sketch-arc-length
// progress, the same Δv used as the natural graph-handle default's slope.
func keyframeProgress(keyframes []Keyframe) []float64 {
	return ComputeKeyframeProgress(keyframes, BuildSketchCurves(keyframes))
}

// BoundingBox is an axis-aligned closed rectangle in pixel space, used
// by rectangle selection (spec.md §4.I). Suggestion denormalization uses
// its own NormalizedBox instead.
type BoundingBox struct {
	Min, Max Vector
}

// contains reports whether p lies within box, inclusive of its edges.
func (box BoundingBox) contains(p Vector) bool {
	return p.X >= box.Min.X && p.X <= box.Max.X && p.Y >= box.Min.Y && p.Y <= box.Max.Y
}

// RectangleSelect intersects box against every anchor/control of every
// curve, returning the matched points as a multi-selection (spec.md
// §4.I). pathIndex is stamped onto every returned Selection so results
// from multiple paths can be merged by the caller.
func RectangleSelect(pathIndex int, curves []CubicBezier, box BoundingBox) []Selection {
	var sel []Selection
	for ci, c := range curves {
		pts := [4]Vector{c.P0, c.P1, c.P2, c.P3}
		for pi, p := range pts {
			if box.contains(p) {
				sel = append(sel, Selection{PathIndex: pathIndex, CurveIndex: ci, PointIndex: pi})
			}
		}
	}
	return sel
}

// SelectionRange derives [min_curve_index, max_curve_index] from a
// multi-selection, trimming each endpoint inward while its outer anchor
// (the start anchor of the first curve, the end anchor of the last
// curve, as selected on either curve that shares it) is not itself
// represented in the selection (spec.md §4.I).
func SelectionRange(selections []Selection) Range {
	if len(selections) == 0 {
		return Range{Start: 0, End: -1}
	}

	minC, maxC := selections[0].CurveIndex, selections[0].CurveIndex
	for _, s := range selections[1:] {
		if s.CurveIndex < minC {
			minC = s.CurveIndex
		}
		if s.CurveIndex > maxC {
			maxC = s.CurveIndex
		}
	}

	hasPoint := func(curveIdx, pointIdx int) bool {
		for _, s := range selections {
			if s.CurveIndex == curveIdx && s.PointIndex == pointIdx {
				return true
			}
		}
		return false
	}

	for minC < maxC && !hasPoint(minC, 0) && !hasPoint(minC-1, 3) {
		minC++
	}
	for maxC > minC && !hasPoint(maxC, 3) && !hasPoint(maxC+1, 0) {
		maxC--
	}
	return Range{Start: minC, End: maxC}
}
