package arcform

import "fmt"

// FitGraph fits one cubic Bézier per consecutive pair of splitIndices
// over points in the (time, progress) plane, using the same end-tangent
// and least-squares control-point solve as FitSketch, but with no
// adaptive error search: the subdivision is driven entirely by the
// externally supplied splitIndices (spec.md §4.C), which the keyframe
// builder sets to the sketch fitter's segment boundaries so the two
// chains' breakpoints coincide exactly.
func FitGraph(points []Vector, splitIndices []int) ([]CubicBezier, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: FitGraph requires at least 2 points, got %d", ErrInvalidArgument, len(points))
	}
	if len(splitIndices) < 2 {
		return nil, fmt.Errorf("%w: FitGraph requires at least 2 split indices, got %d", ErrInvalidArgument, len(splitIndices))
	}
	if splitIndices[0] != 0 || splitIndices[len(splitIndices)-1] != len(points)-1 {
		return nil, fmt.Errorf("%w: split indices must span the full point range [0, %d]", ErrInvalidArgument, len(points)-1)
	}
	for i := 1; i < len(splitIndices); i++ {
		if splitIndices[i] <= splitIndices[i-1] {
			return nil, fmt.Errorf("%w: split indices must be strictly increasing", ErrInvalidArgument)
		}
	}

	curves := make([]CubicBezier, 0, len(splitIndices)-1)
	for i := 1; i < len(splitIndices); i++ {
		rng := Range{Start: splitIndices[i-1], End: splitIndices[i]}
		us := chordLengthParams(points, rng)
		t1, t2 := endTangents(points, rng, nil, nil)
		curves = append(curves, buildCubic(points, rng, us, t1, t2))
	}
	return curves, nil
}
