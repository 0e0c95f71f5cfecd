// Package arcform implements the geometric core of a sketch-to-motion
// authoring tool.
//
// # Overview
//
// A hand-drawn stroke (an ordered, time-stamped point sequence) is fit
// to a minimum-segment chain of cubic Béziers under an L∞ error bound
// (FitSketch), and its drawing cadence is captured as a second cubic
// chain over the (time, progress) plane (FitGraph). The fused result is
// a Keyframe list (GenerateKeyframes) that an editor can split
// (SplitSegment), drag (DragAnchor/DragControl), and layer with
// additive, strength-scaled modifier deltas (CreateSketchModifier,
// ApplySketchModifiers) without ever mutating the base Keyframes. A
// Path's position at an elapsed playback time is resolved by
// (*Path).Evaluate.
//
// # Scope
//
// This package is the geometric core only: rendering, hit-testing,
// network I/O, and persistence are the responsibility of an external
// collaborator and are not modeled here.
//
// # Concurrency
//
// The package is single-threaded cooperative: every operation is either
// a pure function or a synchronous mutation of a caller-owned Path.
// There is no internal parallelism and nothing to synchronize beyond
// the package logger (see SetLogger).
package arcform
