package sleefe

import "fmt"

// Interval is a closed interval [Min, Max] of the real line.
type Interval struct {
	Min, Max float64
}

// NewInterval returns the interval spanned by a and b, in either order.
func NewInterval(a, b float64) Interval {
	return Interval{min(a, b), max(a, b)}
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%g, %g]", iv.Min, iv.Max)
}

// Width returns Max − Min.
func (iv Interval) Width() float64 {
	return iv.Max - iv.Min
}

// Contains reports whether v lies in the interval, endpoints included.
func (iv Interval) Contains(v float64) bool {
	return v >= iv.Min && v <= iv.Max
}

// Union returns the smallest interval enclosing iv and o.
func (iv Interval) Union(o Interval) Interval {
	return Interval{
		Min: min(iv.Min, o.Min),
		Max: max(iv.Max, o.Max),
	}
}

// Overlaps reports whether the two intervals share at least one value.
func (iv Interval) Overlaps(o Interval) bool {
	return iv.Min <= o.Max && o.Min <= iv.Max
}
