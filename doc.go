// Package sleefe computes guaranteed piecewise-linear enclosures of univariate
// polynomials given in Bernstein (Bézier) form.
//
// A sleefe ("subdividable linear efficient function enclosure") of a
// polynomial p on [0, 1] consists of two piecewise-linear functions, a lower
// and an upper component, such that for every t ∈ [0, 1] the value p(t) lies
// between them. Both components share the same uniformly spaced breakpoints
// i/n, i = 0..n, where n is the number of segments. Enclosures like these are
// cheap, provably conservative substitutes for the polynomial itself in ray
// and curve intersection culling, root isolation, and collision pruning.
//
// # Building sleefes
//
// A [Builder] turns the control values of a polynomial and a requested number
// of segments into a [Sleefe]:
//
//	table, err := sleefe.NewBoundTable()
//	if err != nil {
//		// the embedded table is malformed
//	}
//	b := sleefe.NewBuilder(table)
//	s, err := b.Build(4, []float64{0.0, 1.0, 0.8, -0.2})
//
// The degree of the polynomial is inferred from the number of control values
// and must lie in [2, [MaximumDegree]]. The number of segments must lie in
// [1, [MaximumNumberOfSegments]]. Both ceilings are properties of the
// precomputed [BoundTable], not arbitrary limits.
//
// Invalid requests fail with [ErrInvalidDegree], [ErrUnsupportedDegree],
// [ErrInvalidSegmentCount] or [ErrNonFiniteValue]. There are no partial
// results.
//
// # Bound tables
//
// Write b_0, …, b_d for the control values, ℓ for the line through b_0 and
// b_d, and δ_j = b_{j−1} − 2b_j + b_{j+1} for the second differences. Every
// polynomial of degree d can then be written as
//
//	p(t) = ℓ(t) − Σ_j δ_j·a_j(t),  j = 1..d−1,
//
// where the functions a_j depend only on d. They are concave, non-negative
// and vanish at both ends of [0, 1]. A [BoundTable] stores piecewise-linear
// lower and upper bounds of every a_j at the breakpoints of every supported
// segment count. A sleefe is assembled from those bounds, choosing the lower
// or upper bound of a_j depending on the sign of δ_j.
//
// The table is a versioned data asset embedded in the package. It was derived
// offline with exact rational arithmetic and directed rounding, see
// internal/tablegen. Tables are read-only after construction and may be shared
// by any number of goroutines.
//
// For two or more segments, both components interpolate the first and last
// control values exactly, matching the end-point interpolation of Bézier
// curves.
//
// # Literature
//
//   - Optimized refinable enclosures of multivariate polynomial pieces, by Lutterkort and Peters
//   - [A Primer on Bézier Curves]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package sleefe
