package sleefe

import "errors"

// Errors returned by the package. They are wrapped with the offending values,
// so use [errors.Is] to match them.
var (
	// ErrInvalidDegree is returned when fewer than three control values are
	// given, i.e. when the polynomial is constant or linear.
	ErrInvalidDegree = errors.New("sleefe: degree must be at least 2")

	// ErrUnsupportedDegree is returned when the degree exceeds
	// [MaximumDegree].
	ErrUnsupportedDegree = errors.New("sleefe: unsupported degree")

	// ErrInvalidSegmentCount is returned when the number of segments is not in
	// [1, MaximumNumberOfSegments].
	ErrInvalidSegmentCount = errors.New("sleefe: invalid number of segments")

	// ErrOutOfRange is returned by [BoundTable.Lookup] for a degree or
	// segment count outside of the table's grid.
	ErrOutOfRange = errors.New("sleefe: table lookup out of range")

	// ErrNonFiniteValue is returned when a control value is NaN or ±Inf, or
	// when finite control values are so large that a breakpoint overflows.
	ErrNonFiniteValue = errors.New("sleefe: control value is NaN or Inf")

	// ErrBreakpointMismatch is returned by [NewSleefe] when the components
	// don't have the same number of breakpoints, or fewer than two.
	ErrBreakpointMismatch = errors.New("sleefe: mismatched breakpoints")

	// ErrInconsistentBounds is returned by [NewSleefe] when a lower breakpoint
	// value exceeds the corresponding upper one.
	ErrInconsistentBounds = errors.New("sleefe: lower bound exceeds upper bound")

	// ErrBadTable is returned when a bound table asset can't be decoded or
	// violates the table's invariants.
	ErrBadTable = errors.New("sleefe: malformed bound table")
)
