package arcform

import "fmt"

// sketchTask is one unit of work on the sketch fitter's explicit stack:
// a sample range plus any boundary tangents inherited from the parent
// split point (spec.md §9 "explicit stack... encouraged").
type sketchTask struct {
	rng             Range
	startTangent    *Vector
	endTangent      *Vector
}

// sketchResult pairs a fitted range with its accepted cubic, prior to
// being sorted back into left-to-right order.
type sketchResult struct {
	rng   Range
	curve CubicBezier
}

// FitSketch approximates points with a minimum-segment chain of cubic
// Bézier curves such that every segment's maximum Euclidean deviation
// from its covered samples is at most epsFine, or the input granularity
// prevents further subdivision (spec.md §4.B).
//
// It reports the segments in left-to-right order together with their
// covered sample Ranges, and the last FitErrorResult evaluated during
// the fit. The Ranges' endpoints are where the fitter divided the
// input; GenerateKeyframes takes the graph fitter's split indices from
// them.
func FitSketch(points []Vector, epsFine, epsCoarse float64) ([]CubicBezier, []Range, FitErrorResult, error) {
	if len(points) < 2 {
		return nil, nil, FitErrorResult{}, fmt.Errorf("%w: FitSketch requires at least 2 points, got %d", ErrInvalidArgument, len(points))
	}
	if epsCoarse < epsFine {
		return nil, nil, FitErrorResult{}, fmt.Errorf("%w: coarse tolerance %.6g must be >= fine tolerance %.6g", ErrInvalidArgument, epsCoarse, epsFine)
	}

	var lastErr FitErrorResult
	var results []sketchResult

	stack := []sketchTask{{rng: Range{0, len(points) - 1}}}
	for len(stack) > 0 {
		task := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if task.rng.Len() < 2 {
			continue
		}

		us := chordLengthParams(points, task.rng)
		t1, t2 := endTangents(points, task.rng, task.startTangent, task.endTangent)
		curve := buildCubic(points, task.rng, us, t1, t2)
		errResult := measureError(points, task.rng, us, curve)
		lastErr = errResult

		if errResult.MaxError <= epsFine {
			results = append(results, sketchResult{task.rng, curve})
			continue
		}

		if errResult.MaxError <= epsCoarse {
			refinedUs := newtonRefineInterior(points, task.rng, us, curve)
			refinedCurve := buildCubic(points, task.rng, refinedUs, t1, t2)
			refinedErr := measureError(points, task.rng, refinedUs, refinedCurve)
			lastErr = refinedErr
			if refinedErr.MaxError <= epsFine {
				results = append(results, sketchResult{task.rng, refinedCurve})
				continue
			}
		}

		splitIdx := errResult.Index
		tangent, ok := Vector{}, false
		if splitIdx >= 0 {
			tangent, ok = SplitTangent(points, splitIdx)
		}
		if splitIdx < 0 || splitIdx == task.rng.Start || splitIdx == task.rng.End || !ok {
			results = append(results, sketchResult{task.rng, curve})
			continue
		}

		Logger().Debug("fitsketch: subdividing", "range_start", task.rng.Start, "range_end", task.rng.End, "split_index", splitIdx, "max_error", errResult.MaxError)

		negTangent := tangent.MulScalar(-1)
		stack = append(stack,
			sketchTask{rng: Range{task.rng.Start, splitIdx}, startTangent: task.startTangent, endTangent: &tangent},
			sketchTask{rng: Range{splitIdx, task.rng.End}, startTangent: &negTangent, endTangent: task.endTangent},
		)
	}

	sortSketchResults(results)

	curves := make([]CubicBezier, len(results))
	ranges := make([]Range, len(results))
	for i, r := range results {
		curves[i] = r.curve
		ranges[i] = r.rng
	}
	return curves, ranges, lastErr, nil
}

// sortSketchResults sorts fitted segments by range start. A simple
// insertion sort is enough here: the fitter's stack depth (and hence
// result count) is bounded by input size, and strokes are interactively
// sized, not bulk-sorted data.
func sortSketchResults(results []sketchResult) {
	for i := 1; i < len(results); i++ {
		for j := i; j > 0 && results[j].rng.Start < results[j-1].rng.Start; j-- {
			results[j], results[j-1] = results[j-1], results[j]
		}
	}
}
