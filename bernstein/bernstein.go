// Package bernstein evaluates univariate polynomials given in Bernstein
// (Bézier) form.
//
// The package is independent of the sleefe builder, which never evaluates
// polynomials. It serves as the reference evaluator for checking that a
// sleefe encloses its polynomial.
package bernstein

import "math"

// Poly is a polynomial in Bernstein form, represented by its control values.
// Its degree is len(p)-1.
type Poly []float64

// Degree returns the degree of the polynomial, or -1 for an empty Poly.
func (p Poly) Degree() int {
	return len(p) - 1
}

// Start returns the value of the polynomial at t = 0.
func (p Poly) Start() float64 { return p[0] }

// End returns the value of the polynomial at t = 1.
func (p Poly) End() float64 { return p[len(p)-1] }

// Eval evaluates the polynomial at t with de Casteljau's algorithm.
func (p Poly) Eval(t float64) float64 {
	switch len(p) {
	case 0:
		return math.NaN()
	case 1:
		return p[0]
	}
	var buf [16]float64
	var c []float64
	if len(p) <= len(buf) {
		c = buf[:len(p)]
	} else {
		c = make([]float64, len(p))
	}
	copy(c, p)
	mt := 1.0 - t
	for r := 1; r < len(c); r++ {
		for k := range len(c) - r {
			c[k] = mt*c[k] + t*c[k+1]
		}
	}
	return c[0]
}

// EvalBasis evaluates the polynomial at t as the sum of its control values
// weighted by the Bernstein basis functions.
func (p Poly) EvalBasis(t float64) float64 {
	if len(p) == 0 {
		return math.NaN()
	}
	var sum float64
	for i, b := range Basis(p.Degree(), t) {
		sum += b * p[i]
	}
	return sum
}

// Differentiate returns the derivative of the polynomial, a polynomial of one
// degree less. The derivative of a constant is the zero constant.
func (p Poly) Differentiate() Poly {
	n := p.Degree()
	if n < 1 {
		return Poly{0}
	}
	out := make(Poly, n)
	for i := range out {
		out[i] = float64(n) * (p[i+1] - p[i])
	}
	return out
}

// SecondDifferences returns b[j-1] - 2·b[j] + b[j+1] for j = 1..Degree()-1.
func (p Poly) SecondDifferences() []float64 {
	if len(p) < 3 {
		return nil
	}
	out := make([]float64, len(p)-2)
	for j := range out {
		out[j] = p[j] - 2*p[j+1] + p[j+2]
	}
	return out
}

// Basis returns the values of the n+1 Bernstein basis functions of degree n
// at t.
func Basis(n int, t float64) []float64 {
	if n < 0 {
		return nil
	}
	values := make([]float64, n+1)
	mt := 1.0 - t
	values[0] = 1.0
	for i := 1; i <= n; i++ {
		var carry float64
		for j := range i {
			tmp := values[j]
			values[j] = carry + mt*tmp
			carry = t * tmp
		}
		values[i] = carry
	}
	return values
}
