package sleefe

import (
	"fmt"
	"math"
	"slices"
)

// breakpointSnap is the distance, in units of segments, within which a
// scaled parameter is snapped to the nearest breakpoint. It absorbs the
// rounding of i/n·n so that evaluating at a breakpoint returns the stored
// value exactly.
const breakpointSnap = 1e-12

// Sleefe is a piecewise-linear enclosure of a univariate polynomial on
// [0, 1]. Its lower and upper components have n+1 breakpoints each, at the
// parameters i/n for i = 0..n.
//
// Sleefes are immutable values. The zero value has no segments, and its
// evaluation methods return NaN.
type Sleefe struct {
	lower []float64
	upper []float64
}

// NewSleefe returns a sleefe with the given breakpoint values. The slices are
// copied. Both must have the same length of at least 2, and no lower value
// may exceed the corresponding upper value.
func NewSleefe(lower, upper []float64) (Sleefe, error) {
	if len(lower) != len(upper) || len(lower) < 2 {
		return Sleefe{}, fmt.Errorf("%w: got %d lower and %d upper values",
			ErrBreakpointMismatch, len(lower), len(upper))
	}
	for i := range lower {
		if lower[i] > upper[i] {
			return Sleefe{}, fmt.Errorf("%w: breakpoint %d has lower value %g and upper value %g",
				ErrInconsistentBounds, i, lower[i], upper[i])
		}
	}
	return Sleefe{
		lower: slices.Clone(lower),
		upper: slices.Clone(upper),
	}, nil
}

// NumberOfSegments returns the number of linear segments of each component.
func (s Sleefe) NumberOfSegments() int {
	if len(s.lower) == 0 {
		return 0
	}
	return len(s.lower) - 1
}

// LowerValues returns the values of the lower component at the breakpoints.
// The returned slice is a copy.
func (s Sleefe) LowerValues() []float64 {
	return slices.Clone(s.lower)
}

// UpperValues returns the values of the upper component at the breakpoints.
// The returned slice is a copy.
func (s Sleefe) UpperValues() []float64 {
	return slices.Clone(s.upper)
}

// LowerValueAt returns the value of the lower component at t. Parameters
// outside of [0, 1] are clamped.
func (s Sleefe) LowerValueAt(t float64) float64 {
	return valueAt(s.lower, t)
}

// UpperValueAt returns the value of the upper component at t. Parameters
// outside of [0, 1] are clamped.
func (s Sleefe) UpperValueAt(t float64) float64 {
	return valueAt(s.upper, t)
}

// ValueAt returns the interval between the lower and upper components at t.
func (s Sleefe) ValueAt(t float64) Interval {
	return Interval{
		Min: s.LowerValueAt(t),
		Max: s.UpperValueAt(t),
	}
}

func valueAt(values []float64, t float64) float64 {
	n := len(values) - 1
	if n < 1 || math.IsNaN(t) {
		return math.NaN()
	}
	t = min(max(t, 0), 1)
	x := t * float64(n)
	if r := math.Round(x); math.Abs(x-r) <= breakpointSnap*float64(n) {
		x = r
	}
	i := int(math.Floor(x))
	if i >= n {
		i = n - 1
	}
	return aerp(x-float64(i), values[i], values[i+1])
}

// Encloses reports whether v lies between the lower and upper components at
// t.
func (s Sleefe) Encloses(t, v float64) bool {
	return s.ValueAt(t).Contains(v)
}

// LowerSegment returns the i-th linear piece of the lower component. For i
// outside of [0, NumberOfSegments()), both end points of the line are NaN.
func (s Sleefe) LowerSegment(i int) Line {
	return segment(s.lower, i)
}

// UpperSegment returns the i-th linear piece of the upper component. For i
// outside of [0, NumberOfSegments()), both end points of the line are NaN.
func (s Sleefe) UpperSegment(i int) Line {
	return segment(s.upper, i)
}

func segment(values []float64, i int) Line {
	if i < 0 || i >= len(values)-1 {
		nan := Pt(math.NaN(), math.NaN())
		return Line{nan, nan}
	}
	n := float64(len(values) - 1)
	return Line{
		P0: Pt(float64(i)/n, values[i]),
		P1: Pt(float64(i+1)/n, values[i+1]),
	}
}

// SegmentRange returns an interval enclosing the polynomial's values on the
// i-th segment, [i/n, (i+1)/n]. For i outside of [0, NumberOfSegments()),
// both bounds are NaN.
func (s Sleefe) SegmentRange(i int) Interval {
	if i < 0 || i >= s.NumberOfSegments() {
		return Interval{math.NaN(), math.NaN()}
	}
	return s.LowerSegment(i).Range().Union(s.UpperSegment(i).Range())
}

// Range returns an interval enclosing the polynomial's values on [0, 1].
func (s Sleefe) Range() Interval {
	n := s.NumberOfSegments()
	if n == 0 {
		return Interval{math.NaN(), math.NaN()}
	}
	r := s.SegmentRange(0)
	for i := 1; i < n; i++ {
		r = r.Union(s.SegmentRange(i))
	}
	return r
}

// MaxWidth returns the largest distance between the upper and lower
// components. Since both are linear on every segment, it is attained at a
// breakpoint.
func (s Sleefe) MaxWidth() float64 {
	var w float64
	for i := range s.lower {
		w = max(w, Interval{s.lower[i], s.upper[i]}.Width())
	}
	return w
}

// SegmentsOverlapping returns the indices of the segments on which the
// polynomial may take a value in iv, in increasing order. On every other
// segment the polynomial stays outside of iv.
func (s Sleefe) SegmentsOverlapping(iv Interval) []int {
	var out []int
	for i := range s.NumberOfSegments() {
		if s.SegmentRange(i).Overlaps(iv) {
			out = append(out, i)
		}
	}
	return out
}

// ZeroCrossings returns the indices of the segments on which the polynomial
// may have a root, in increasing order. The polynomial has no root on any
// other segment.
func (s Sleefe) ZeroCrossings() []int {
	return s.SegmentsOverlapping(Interval{0, 0})
}

func (s Sleefe) String() string {
	return fmt.Sprintf("Sleefe{segments: %d, lower: %v, upper: %v}", s.NumberOfSegments(), s.lower, s.upper)
}
