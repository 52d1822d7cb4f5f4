// Package tablegen derives the bound table used by the sleefe builder.
//
// For a degree d, the polynomial p with control values b_0..b_d satisfies
//
//	p(t) = ℓ(t) − Σ_j δ_j·a_j(t),  a_j(t) = Σ_k G(k, j)·B_k(t),
//
// with G(k, j) = min(k, j)·(d − max(k, j)) / d, the Green's function of the
// discrete second difference. Every a_j is concave since its control values
// are, vanishes at 0 and 1, and has slope d−j at 0 and −j at 1.
//
// Lower bounds are the values of a_j at the breakpoints: for a concave
// function every chord lies below the graph. Upper bounds come from tangents.
// With a single segment, the tangent at t = 1/2 is used. With more segments,
// the end values are pinned to zero, the first and last segments are bounded
// by the tangents at 0 and 1, and every interior segment is bounded by its
// chord lifted by the largest gap between the chord and the lower envelope of
// a fan of tangents.
//
// All computations are exact. Lower bounds are rounded down and upper bounds
// are rounded up when converting to float64.
package tablegen

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"

	"honnef.co/go/sleefe"
)

// DefaultTangents is the number of tangent intervals per interior segment.
const DefaultTangents = 32

// Options control the derivation.
type Options struct {
	MaxDegree   int
	MaxSegments int
	Tangents    int
}

// DefaultOptions returns the options that produced the table embedded in
// package sleefe.
func DefaultOptions() Options {
	return Options{
		MaxDegree:   sleefe.MaximumDegree,
		MaxSegments: sleefe.MaximumNumberOfSegments,
		Tangents:    DefaultTangents,
	}
}

var (
	ratZero = big.NewRat(0, 1)
	ratOne  = big.NewRat(1, 1)
	ratHalf = big.NewRat(1, 2)
)

// difference is one of the functions a_j of a given degree.
type difference struct {
	g  []*big.Rat
	dg []*big.Rat
}

func newDifference(degree, j int) *difference {
	g := make([]*big.Rat, degree+1)
	for k := range g {
		g[k] = big.NewRat(int64(min(k, j)*(degree-max(k, j))), int64(degree))
	}
	dg := make([]*big.Rat, degree)
	for k := range dg {
		r := new(big.Rat).Sub(g[k+1], g[k])
		dg[k] = r.Mul(r, big.NewRat(int64(degree), 1))
	}
	return &difference{g: g, dg: dg}
}

func (f *difference) value(t *big.Rat) *big.Rat { return casteljau(f.g, t) }
func (f *difference) slope(t *big.Rat) *big.Rat { return casteljau(f.dg, t) }

func casteljau(cs []*big.Rat, t *big.Rat) *big.Rat {
	c := make([]*big.Rat, len(cs))
	for i := range cs {
		c[i] = new(big.Rat).Set(cs[i])
	}
	mt := new(big.Rat).Sub(ratOne, t)
	var a, b big.Rat
	for r := 1; r < len(c); r++ {
		for k := range len(c) - r {
			a.Mul(mt, c[k])
			b.Mul(t, c[k+1])
			c[k].Add(&a, &b)
		}
	}
	return c[0]
}

func ratMin(a, b *big.Rat) *big.Rat {
	if b.Cmp(a) < 0 {
		return b
	}
	return a
}

func ratMax(a, b *big.Rat) *big.Rat {
	if b.Cmp(a) > 0 {
		return b
	}
	return a
}

// line returns y + s·(x − t).
func line(y, s, x, t *big.Rat) *big.Rat {
	r := new(big.Rat).Sub(x, t)
	r.Mul(r, s)
	return r.Add(r, y)
}

type tangentPoint struct {
	t, y, s *big.Rat
}

// segmentGap returns an upper bound of a − chord on [lo, hi], where chord is
// the line through (lo, a(lo)) and (hi, a(hi)).
func segmentGap(f *difference, lo, hi *big.Rat, tangents int) *big.Rat {
	h := new(big.Rat).Sub(hi, lo)
	ylo, yhi := f.value(lo), f.value(hi)
	chordSlope := new(big.Rat).Sub(yhi, ylo)
	chordSlope.Quo(chordSlope, h)

	pts := make([]tangentPoint, tangents+1)
	for m := range pts {
		tau := new(big.Rat).Mul(h, big.NewRat(int64(m), int64(tangents)))
		tau.Add(tau, lo)
		pts[m] = tangentPoint{t: tau, y: f.value(tau), s: f.slope(tau)}
	}

	best := new(big.Rat)
	for m := range tangents {
		p0, p1 := pts[m], pts[m+1]
		xs := []*big.Rat{p0.t, p1.t}
		if p0.s.Cmp(p1.s) != 0 {
			// Intersection of the two tangents.
			num := new(big.Rat).Sub(p1.y, p0.y)
			num.Add(num, new(big.Rat).Mul(p0.s, p0.t))
			num.Sub(num, new(big.Rat).Mul(p1.s, p1.t))
			x := num.Quo(num, new(big.Rat).Sub(p0.s, p1.s))
			xs = append(xs, ratMin(ratMax(x, p0.t), p1.t))
		}
		for _, x := range xs {
			env := ratMin(line(p0.y, p0.s, x, p0.t), line(p1.y, p1.s, x, p1.t))
			gap := new(big.Rat).Sub(env, line(ylo, chordSlope, x, lo))
			if gap.Cmp(best) > 0 {
				best = gap
			}
		}
	}
	return best
}

// Bounds returns the exact lower and upper bounds of a_j at the breakpoints
// i/segments of the given degree.
func Bounds(degree, segments, j, tangents int) (lower, upper []*big.Rat) {
	f := newDifference(degree, j)
	ts := make([]*big.Rat, segments+1)
	lower = make([]*big.Rat, segments+1)
	for i := range ts {
		ts[i] = big.NewRat(int64(i), int64(segments))
		lower[i] = f.value(ts[i])
	}

	if segments == 1 {
		y, s := f.value(ratHalf), f.slope(ratHalf)
		hs := new(big.Rat).Mul(s, ratHalf)
		return lower, []*big.Rat{
			new(big.Rat).Sub(y, hs),
			new(big.Rat).Add(y, hs),
		}
	}

	gaps := make(map[int]*big.Rat)
	for s := 1; s < segments-1; s++ {
		gaps[s] = segmentGap(f, ts[s], ts[s+1], tangents)
	}
	upper = make([]*big.Rat, segments+1)
	upper[0] = new(big.Rat)
	upper[segments] = new(big.Rat)
	for i := 1; i < segments; i++ {
		var u *big.Rat
		consider := func(c *big.Rat) {
			if u == nil || c.Cmp(u) > 0 {
				u = c
			}
		}
		if i == 1 {
			consider(new(big.Rat).Mul(ts[1], f.slope(ratZero)))
		}
		if i == segments-1 {
			r := new(big.Rat).Sub(ratOne, ts[segments-1])
			consider(r.Mul(r, new(big.Rat).Neg(f.slope(ratOne))))
		}
		if i-1 >= 1 {
			consider(new(big.Rat).Add(lower[i], gaps[i-1]))
		}
		if i <= segments-2 {
			consider(new(big.Rat).Add(lower[i], gaps[i]))
		}
		upper[i] = u
	}
	return lower, upper
}

// RoundDown returns the largest float64 not greater than r.
func RoundDown(r *big.Rat) float64 {
	f, _ := r.Float64()
	if new(big.Rat).SetFloat64(f).Cmp(r) > 0 {
		f = math.Nextafter(f, math.Inf(-1))
	}
	return f
}

// RoundUp returns the smallest float64 not less than r.
func RoundUp(r *big.Rat) float64 {
	f, _ := r.Float64()
	if new(big.Rat).SetFloat64(f).Cmp(r) < 0 {
		f = math.Nextafter(f, math.Inf(1))
	}
	return f
}

// Generate derives a complete table.
func Generate(opts Options) (sleefe.TableFile, error) {
	if opts.MaxDegree < sleefe.MinimumDegree {
		return sleefe.TableFile{}, fmt.Errorf("maximum degree %d is less than %d", opts.MaxDegree, sleefe.MinimumDegree)
	}
	if opts.MaxSegments < 1 {
		return sleefe.TableFile{}, fmt.Errorf("maximum number of segments %d is less than 1", opts.MaxSegments)
	}
	if opts.Tangents < 1 {
		return sleefe.TableFile{}, fmt.Errorf("number of tangents %d is less than 1", opts.Tangents)
	}

	out := sleefe.TableFile{
		Version:     sleefe.TableVersion,
		MaxDegree:   opts.MaxDegree,
		MaxSegments: opts.MaxSegments,
		Tangents:    opts.Tangents,
	}
	for d := sleefe.MinimumDegree; d <= opts.MaxDegree; d++ {
		for n := 1; n <= opts.MaxSegments; n++ {
			out.Entries = append(out.Entries, generateEntry(d, n, opts.Tangents))
		}
	}
	return out, nil
}

func generateEntry(degree, segments, tangents int) sleefe.TableFileEntry {
	e := sleefe.TableFileEntry{
		Degree:   degree,
		Segments: segments,
		Lower:    make([][]float64, segments+1),
		Upper:    make([][]float64, segments+1),
	}
	for i := range segments + 1 {
		e.Lower[i] = make([]float64, degree-1)
		e.Upper[i] = make([]float64, degree-1)
	}
	for j := 1; j < degree; j++ {
		lo, hi := Bounds(degree, segments, j, tangents)
		for i := range segments + 1 {
			e.Lower[i][j-1] = RoundDown(lo[i])
			e.Upper[i][j-1] = RoundUp(hi[i])
		}
	}
	return e
}

// Encode writes the table in the asset format read by
// [sleefe.NewBoundTableFromYAML].
func Encode(w io.Writer, f sleefe.TableFile) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# Code generated by sleefe-tablegen. DO NOT EDIT.")
	fmt.Fprintf(bw, "version: %d\n", f.Version)
	fmt.Fprintf(bw, "max-degree: %d\n", f.MaxDegree)
	fmt.Fprintf(bw, "max-segments: %d\n", f.MaxSegments)
	fmt.Fprintf(bw, "tangents: %d\n", f.Tangents)
	fmt.Fprintln(bw, "entries:")
	for _, e := range f.Entries {
		fmt.Fprintf(bw, "- degree: %d\n", e.Degree)
		fmt.Fprintf(bw, "  segments: %d\n", e.Segments)
		fmt.Fprintln(bw, "  lower:")
		for _, row := range e.Lower {
			fmt.Fprintf(bw, "  - %s\n", formatRow(row))
		}
		fmt.Fprintln(bw, "  upper:")
		for _, row := range e.Upper {
			fmt.Fprintf(bw, "  - %s\n", formatRow(row))
		}
	}
	return bw.Flush()
}

func formatRow(row []float64) string {
	parts := make([]string, len(row))
	for i, v := range row {
		// The shortest representation parses back to the same float64, which
		// keeps the directed rounding intact.
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
