package sleefe

import (
	"fmt"
	"math"
)

// Point is a point on the graph of a sleefe component: a parameter value T
// and the component's value V at T.
type Point struct {
	T float64
	V float64
}

// Pt returns the point (t, v).
func Pt(t, v float64) Point {
	return Point{T: t, V: v}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.T, pt.V)
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point{
		T: aerp(t, pt.T, o.T),
		V: aerp(t, pt.V, o.V),
	}
}

// IsInf reports whether at least one of t and v is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.T, 0) || math.IsInf(pt.V, 0)
}

// IsNaN reports whether at least one of t and v is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.T) || math.IsNaN(pt.V)
}
