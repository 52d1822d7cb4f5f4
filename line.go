package sleefe

// Line is one linear piece of a sleefe component, running from P0 to P1.
type Line struct {
	// The piece's start point.
	P0 Point
	// The piece's end point.
	P1 Point
}

// Eval evaluates the line at the local parameter u ∈ [0, 1].
func (l Line) Eval(u float64) Point {
	return l.P0.Lerp(l.P1, u)
}

// ValueAt returns the value of the line at the parameter t of the sleefe,
// which should lie in [P0.T, P1.T]. Degenerate lines return P0.V.
func (l Line) ValueAt(t float64) float64 {
	dt := l.P1.T - l.P0.T
	if dt == 0 {
		return l.P0.V
	}
	return aerp((t-l.P0.T)/dt, l.P0.V, l.P1.V)
}

// Slope returns the change in value per unit of parameter.
func (l Line) Slope() float64 {
	return (l.P1.V - l.P0.V) / (l.P1.T - l.P0.T)
}

// Range returns the values taken by the line.
func (l Line) Range() Interval {
	return NewInterval(l.P0.V, l.P1.V)
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}
