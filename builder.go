package sleefe

import (
	"fmt"
	"math"
)

// Builder builds sleefes from the control values of Bézier functions. A
// Builder only reads from its table and is safe for concurrent use.
type Builder struct {
	table *BoundTable
}

// NewBuilder returns a builder that uses the given table, which must not be
// nil.
func NewBuilder(table *BoundTable) *Builder {
	return &Builder{table: table}
}

// Table returns the builder's bound table.
func (b *Builder) Table() *BoundTable { return b.table }

// Build builds a sleefe with numberOfSegments linear segments for the
// polynomial with the given Bézier control values. The degree of the
// polynomial is len(controlValues)-1.
//
// The lower component of the result never exceeds the polynomial on [0, 1],
// and the upper component is never below it, up to floating-point rounding.
func (b *Builder) Build(numberOfSegments int, controlValues []float64) (Sleefe, error) {
	degree := len(controlValues) - 1
	if degree < MinimumDegree {
		return Sleefe{}, fmt.Errorf("%w: got %d control values", ErrInvalidDegree, len(controlValues))
	}
	if degree > MaximumDegree {
		return Sleefe{}, fmt.Errorf("%w: degree %d exceeds %d", ErrUnsupportedDegree, degree, MaximumDegree)
	}
	if numberOfSegments < 1 || numberOfSegments > MaximumNumberOfSegments {
		return Sleefe{}, fmt.Errorf("%w: %d not in [1, %d]",
			ErrInvalidSegmentCount, numberOfSegments, MaximumNumberOfSegments)
	}
	for i, v := range controlValues {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Sleefe{}, fmt.Errorf("%w: control value %d is %g", ErrNonFiniteValue, i, v)
		}
	}

	entry, err := b.table.Lookup(degree, numberOfSegments)
	if err != nil {
		return Sleefe{}, err
	}

	var deltas [MaximumDegree - 1]float64
	for j := 1; j < degree; j++ {
		deltas[j-1] = controlValues[j-1] - 2*controlValues[j] + controlValues[j+1]
	}

	first, last := controlValues[0], controlValues[degree]
	lower := make([]float64, numberOfSegments+1)
	upper := make([]float64, numberOfSegments+1)
	for i := range numberOfSegments + 1 {
		t := float64(i) / float64(numberOfSegments)
		base := aerp(t, first, last)
		lo, hi := base, base
		lw, uw := entry.Lower[i], entry.Upper[i]
		for j, delta := range deltas[:degree-1] {
			// p = ℓ - Σ δ·a, so a positive δ turns the upper bound of a into
			// the lower bound of p and vice versa.
			if delta >= 0 {
				hi -= delta * lw[j]
				lo -= delta * uw[j]
			} else {
				hi -= delta * uw[j]
				lo -= delta * lw[j]
			}
		}
		if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) {
			return Sleefe{}, fmt.Errorf("%w: breakpoint %d overflows to [%g, %g]", ErrNonFiniteValue, i, lo, hi)
		}
		lower[i] = lo
		upper[i] = hi
	}
	return Sleefe{lower: lower, upper: upper}, nil
}

// aerp computes the affine combination (1-t)·a + t·b.
func aerp(t, a, b float64) float64 {
	return (1-t)*a + t*b
}
