package arcform

import "math"

// bisectionSteps is the fixed iteration count used to invert the graph
// cubic's x(u) during motion evaluation (spec.md §4.G step 6, §9 "Open
// question: bisection iteration count"). The spec leaves residual-based
// termination as an allowed alternative, but a fixed budget keeps
// per-frame evaluation cost constant regardless of curve shape, which
// matters more for interactive playback than the extra precision would.
const bisectionSteps = 10

// Evaluate returns the spatial point a path occupies at elapsedMs,
// taking all attached sketch and graph modifiers into account, per
// spec.md §4.G. A path with fewer than 2 keyframes is not Editable and
// evaluates to the zero vector.
func (p *Path) Evaluate(elapsedMs float64) Vector {
	if !p.Editable() {
		return Vector{}
	}

	sketchCurves := ApplySketchModifiers(p.Keyframes, p.SketchModifiers)
	progress := ComputeKeyframeProgress(p.Keyframes, sketchCurves)
	graphCurves := ApplyGraphModifiers(p.Keyframes, progress, p.GraphModifiers)

	startMs := p.StartTimeSec * 1000
	durationMs := p.DurationSec * 1000
	if durationMs < 1 {
		Logger().Warn("evaluate: duration floored to 1ms", "path_id", p.ID, "duration_ms", durationMs)
		durationMs = 1
	}

	if elapsedMs < startMs {
		Logger().Debug("evaluate: before active window", "path_id", p.ID, "elapsed_ms", elapsedMs, "start_ms", startMs)
		return sketchCurves[0].P0
	}

	tau := clamp01((elapsedMs - startMs) / durationMs)
	if tau >= 1 {
		return sketchCurves[len(sketchCurves)-1].P3
	}

	i := locateKeyframeInterval(p.Keyframes, tau)
	u := solveBezierX(graphCurves[i], tau)
	prog := graphCurves[i].Eval(u).Y

	denom := progress[i+1] - progress[i]
	local := 0.0
	if math.Abs(denom) < chordFloor {
		Logger().Warn("evaluate: degenerate progress span", "path_id", p.ID, "segment", i)
	} else {
		local = clamp01((prog - progress[i]) / denom)
	}

	return sketchCurves[i].Eval(local)
}

// locateKeyframeInterval finds the keyframe interval [i, i+1] whose
// time span contains tau via bisection on keyframe.Time, floored at 0
// and ceilinged at len(keyframes)-2, per spec.md §4.G step 5.
func locateKeyframeInterval(keyframes []Keyframe, tau float64) int {
	lo, hi := 0, len(keyframes)-2
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if keyframes[mid].Time <= tau {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// solveBezierX inverts curve's x(u) for u such that B_x(u) = tau, via
// ten bisection steps over u in [0, 1] (spec.md §4.G step 6). A tau at
// or before the curve's start x returns exactly 0, and one at or past
// its end x returns exactly 1, so segment boundaries map to the exact
// anchors. It assumes B_x is monotone over the curve, which holds for
// the timing curves this package builds.
func solveBezierX(curve CubicBezier, tau float64) float64 {
	if tau <= curve.P0.X {
		return 0
	}
	if tau >= curve.P3.X {
		return 1
	}
	lo, hi := 0.0, 1.0
	for i := 0; i < bisectionSteps; i++ {
		mid := (lo + hi) / 2
		if curve.Eval(mid).X < tau {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// EvaluateAll evaluates every path in paths at the given elapsed time,
// looping modulo the overall playback duration: either durationOverrideMs
// when non-nil, or the max of each path's start_ms + duration_ms
// otherwise (spec.md §4.G, multi-path playback).
func EvaluateAll(paths []*Path, elapsedMs float64, durationOverrideMs *float64) []Vector {
	total := 0.0
	if durationOverrideMs != nil {
		total = *durationOverrideMs
	} else {
		for _, p := range paths {
			durMs := math.Max(1, p.DurationSec*1000)
			if end := p.StartTimeSec*1000 + durMs; end > total {
				total = end
			}
		}
	}

	looped := elapsedMs
	if total > chordFloor {
		looped = math.Mod(elapsedMs, total)
		if looped < 0 {
			looped += total
		}
	}

	out := make([]Vector, len(paths))
	for i, p := range paths {
		out[i] = p.Evaluate(looped)
	}
	return out
}
