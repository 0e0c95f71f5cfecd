package arcform

import (
	"errors"
	"fmt"
)

// Sentinel errors for the taxonomy described in spec.md §7. Only
// InvalidArgument ever reaches a caller; DegenerateGeometry and
// Numerical conditions are recovered locally via their documented
// fallbacks and never returned.
var (
	// ErrInvalidArgument is returned when a precondition on a public
	// operation (SplitSegment, the fitters' sample-count checks, a
	// t ∉ (0,1) parameter) is violated. No partial mutation occurs.
	ErrInvalidArgument = errors.New("arcform: invalid argument")

	// ErrDegenerateGeometry marks a condition recovered locally via a
	// documented fallback (chord/3 handle magnitude, skipped split,
	// unchanged Newton parameter). Never returned to a caller; kept as
	// a sentinel so internal call sites and log lines can refer to it
	// uniformly.
	ErrDegenerateGeometry = errors.New("arcform: degenerate geometry")

	// ErrNumerical marks a non-finite intermediate (NaN/±Inf) that was
	// discarded in favor of the previous valid state. Never returned to
	// a caller.
	ErrNumerical = errors.New("arcform: non-finite numerical result")
)

// invalidArgf wraps ErrInvalidArgument with a formatted message so
// callers can errors.Is against the sentinel.
func invalidArgf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}
