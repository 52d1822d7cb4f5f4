package sleefe

import (
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"

	"honnef.co/go/sleefe/bernstein"
)

func TestBuildConsistency(t *testing.T) {
	b := newTestBuilder(t)
	for _, coeffs := range controlValues {
		for n := 1; n <= MaximumNumberOfSegments; n++ {
			s := mustBuild(t, b, n, coeffs)
			lower, upper := s.LowerValues(), s.UpperValues()
			if len(lower) != n+1 || len(upper) != n+1 {
				t.Fatalf("degree %d, %d segments: got %d lower and %d upper values, want %d",
					len(coeffs)-1, n, len(lower), len(upper), n+1)
			}
			if got := s.NumberOfSegments(); got != n {
				t.Errorf("got %d segments, want %d", got, n)
			}
			for i := range lower {
				if lower[i] > upper[i]+equalityTolerance {
					t.Errorf("degree %d, %d segments, breakpoint %d: lower %g > upper %g",
						len(coeffs)-1, n, i, lower[i], upper[i])
				}
			}
		}
	}
}

func TestBuildBreakpoints(t *testing.T) {
	b := newTestBuilder(t)
	for _, coeffs := range controlValues {
		for n := 1; n <= MaximumNumberOfSegments; n++ {
			s := mustBuild(t, b, n, coeffs)
			lower, upper := s.LowerValues(), s.UpperValues()
			for i := range n + 1 {
				ts := min(max(float64(i)/float64(n), 0), 1)
				if d := math.Abs(s.LowerValueAt(ts) - lower[i]); d > equalityTolerance {
					t.Errorf("degree %d, %d segments: lower value at %g off by %g", len(coeffs)-1, n, ts, d)
				}
				if d := math.Abs(s.UpperValueAt(ts) - upper[i]); d > equalityTolerance {
					t.Errorf("degree %d, %d segments: upper value at %g off by %g", len(coeffs)-1, n, ts, d)
				}
			}
		}
	}
}

func checkEnclosure(t *testing.T, s Sleefe, coeffs []float64, samples int) {
	t.Helper()
	p := bernstein.Poly(coeffs)
	for i := range samples + 1 {
		ts := float64(i) / float64(samples)
		v := p.EvalBasis(ts)
		if lo := s.LowerValueAt(ts); lo > v+equalityTolerance {
			t.Errorf("degree %d, %d segments: lower value %g exceeds function value %g at %g",
				p.Degree(), s.NumberOfSegments(), lo, v, ts)
			return
		}
		if hi := s.UpperValueAt(ts); hi < v-equalityTolerance {
			t.Errorf("degree %d, %d segments: upper value %g is below function value %g at %g",
				p.Degree(), s.NumberOfSegments(), hi, v, ts)
			return
		}
	}
}

func TestBuildEnclosure(t *testing.T) {
	const samples = 10000
	b := newTestBuilder(t)
	for _, coeffs := range controlValues {
		for n := 1; n <= MaximumNumberOfSegments; n++ {
			checkEnclosure(t, mustBuild(t, b, n, coeffs), coeffs, samples)
		}
	}
}

func TestBuildEnclosureRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	b := newTestBuilder(t)
	for range 200 {
		coeffs := make([]float64, 3+rng.IntN(MaximumDegree-1))
		for i := range coeffs {
			coeffs[i] = rng.Float64()*20 - 10
		}
		n := 1 + rng.IntN(MaximumNumberOfSegments)
		checkEnclosure(t, mustBuild(t, b, n, coeffs), coeffs, 1000)
	}
}

func TestBuildQuadraticOneSegment(t *testing.T) {
	b := newTestBuilder(t)
	coeffs := []float64{0.0, 1.0, 0.8}
	s := mustBuild(t, b, 1, coeffs)

	if n := len(s.LowerValues()); n != 2 {
		t.Fatalf("got %d lower values, want 2", n)
	}
	if n := len(s.UpperValues()); n != 2 {
		t.Fatalf("got %d upper values, want 2", n)
	}
	if got, want := s.LowerValueAt(0), s.LowerValues()[0]; got != want {
		t.Errorf("got lower value %g at 0, want %g", got, want)
	}
	const want = 0.25*0.0 + 0.5*1.0 + 0.25*0.8
	if lo, hi := s.LowerValueAt(0.5), s.UpperValueAt(0.5); lo > want+equalityTolerance || hi < want-equalityTolerance {
		t.Errorf("[%g, %g] does not enclose %g", lo, hi, want)
	}
}

func TestBuildQuadraticTwoSegments(t *testing.T) {
	b := newTestBuilder(t)
	coeffs := []float64{0.0, 1.0, 0.8}
	s := mustBuild(t, b, 2, coeffs)

	for _, tc := range []struct {
		t    float64
		want float64
	}{
		{0, 0.0},
		{1, 0.8},
	} {
		if got := s.LowerValueAt(tc.t); got != tc.want {
			t.Errorf("got lower value %g at %g, want %g", got, tc.t, tc.want)
		}
		if got := s.UpperValueAt(tc.t); got != tc.want {
			t.Errorf("got upper value %g at %g, want %g", got, tc.t, tc.want)
		}
	}

	opt := cmpopts.EquateApprox(0, equalityTolerance)
	diff(t, []float64{0.0, 0.7, 0.8}, s.LowerValues(), opt)
	diff(t, []float64{0.0, 1.0, 0.8}, s.UpperValues(), opt)
}

func TestBuildEndpointInterpolation(t *testing.T) {
	b := newTestBuilder(t)
	for _, coeffs := range controlValues {
		first, last := coeffs[0], coeffs[len(coeffs)-1]
		for n := 2; n <= MaximumNumberOfSegments; n++ {
			s := mustBuild(t, b, n, coeffs)
			if lo, hi := s.LowerValueAt(0), s.UpperValueAt(0); lo != first || hi != first {
				t.Errorf("degree %d, %d segments: got [%g, %g] at 0, want %g", len(coeffs)-1, n, lo, hi, first)
			}
			if lo, hi := s.LowerValueAt(1), s.UpperValueAt(1); lo != last || hi != last {
				t.Errorf("degree %d, %d segments: got [%g, %g] at 1, want %g", len(coeffs)-1, n, lo, hi, last)
			}
		}
	}
}

func TestBuildLinearData(t *testing.T) {
	// Control values on a line have vanishing second differences, so the
	// sleefe collapses onto the line.
	b := newTestBuilder(t)
	coeffs := []float64{1, 2, 3, 4, 5}
	for n := 1; n <= MaximumNumberOfSegments; n++ {
		s := mustBuild(t, b, n, coeffs)
		for i := range n + 1 {
			want := 1 + 4*float64(i)/float64(n)
			diff(t, want, s.LowerValues()[i], cmpopts.EquateApprox(0, equalityTolerance))
			diff(t, want, s.UpperValues()[i], cmpopts.EquateApprox(0, equalityTolerance))
		}
	}
}

func TestBuildErrors(t *testing.T) {
	b := newTestBuilder(t)
	tests := []struct {
		name     string
		segments int
		coeffs   []float64
		want     error
	}{
		{"no control values", 1, nil, ErrInvalidDegree},
		{"constant", 1, []float64{1}, ErrInvalidDegree},
		{"linear", 1, []float64{0, 1}, ErrInvalidDegree},
		{"degree 10", 1, make([]float64, 11), ErrUnsupportedDegree},
		{"zero segments", 0, []float64{0, 1, 0.8}, ErrInvalidSegmentCount},
		{"negative segments", -1, []float64{0, 1, 0.8}, ErrInvalidSegmentCount},
		{"ten segments", 10, []float64{0, 1, 0.8}, ErrInvalidSegmentCount},
		{"NaN", 2, []float64{0, math.NaN(), 0.8}, ErrNonFiniteValue},
		{"Inf", 2, []float64{0, 1, math.Inf(-1)}, ErrNonFiniteValue},
		{"overflowing quadratic", 3, []float64{1e308, -1e308, 1e308}, ErrNonFiniteValue},
		{"overflowing cubic", 2, []float64{-1.7e308, 1.7e308, -1.7e308, 1.7e308}, ErrNonFiniteValue},
		// Degree is checked before the number of segments.
		{"linear and ten segments", 10, []float64{0, 1}, ErrInvalidDegree},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := b.Build(tc.segments, tc.coeffs)
			if !errors.Is(err, tc.want) {
				t.Fatalf("got error %v, want %v", err, tc.want)
			}
			if s.NumberOfSegments() != 0 {
				t.Errorf("got partial result %v", s)
			}
		})
	}
}

func TestBuildLargeFiniteValues(t *testing.T) {
	// Large values that don't overflow still give a valid sleefe.
	b := newTestBuilder(t)
	coeffs := []float64{1e300, -1e300, 1e300}
	for n := 1; n <= MaximumNumberOfSegments; n++ {
		s := mustBuild(t, b, n, coeffs)
		lower, upper := s.LowerValues(), s.UpperValues()
		for i := range lower {
			if math.IsInf(lower[i], 0) || math.IsNaN(lower[i]) || math.IsInf(upper[i], 0) || math.IsNaN(upper[i]) {
				t.Fatalf("%d segments: breakpoint %d is [%g, %g]", n, i, lower[i], upper[i])
			}
			if lower[i] > upper[i] {
				t.Errorf("%d segments: breakpoint %d has lower %g > upper %g", n, i, lower[i], upper[i])
			}
		}
	}
}

func TestBuildDoesNotRetainInput(t *testing.T) {
	b := newTestBuilder(t)
	coeffs := []float64{0.0, 1.0, 0.8}
	s := mustBuild(t, b, 2, coeffs)
	before := s.UpperValues()
	coeffs[1] = 100
	diff(t, before, s.UpperValues())
}

func TestBuildConcurrent(t *testing.T) {
	b := newTestBuilder(t)
	want := make([][]Sleefe, len(controlValues))
	for d, coeffs := range controlValues {
		for n := 1; n <= MaximumNumberOfSegments; n++ {
			want[d] = append(want[d], mustBuild(t, b, n, coeffs))
		}
	}

	var wg sync.WaitGroup
	errs := make(chan error, 8*len(controlValues)*MaximumNumberOfSegments)
	for range 8 {
		for d, coeffs := range controlValues {
			for n := 1; n <= MaximumNumberOfSegments; n++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					s, err := b.Build(n, coeffs)
					if err != nil {
						errs <- err
						return
					}
					w := want[d][n-1]
					if !slices.Equal(s.lower, w.lower) || !slices.Equal(s.upper, w.upper) {
						errs <- errors.New("concurrent build differs")
					}
				}()
			}
		}
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestAerp(t *testing.T) {
	if got := aerp(0, 3, 7); got != 3 {
		t.Errorf("aerp(0, 3, 7) = %g, want 3", got)
	}
	if got := aerp(1, 3, 7); got != 7 {
		t.Errorf("aerp(1, 3, 7) = %g, want 7", got)
	}
	if got := aerp(0.25, 3, 7); got != 4 {
		t.Errorf("aerp(0.25, 3, 7) = %g, want 4", got)
	}
}

func BenchmarkBuild(b *testing.B) {
	builder := newTestBuilder(b)
	coeffs := controlValues[len(controlValues)-1]
	for range b.N {
		if _, err := builder.Build(MaximumNumberOfSegments, coeffs); err != nil {
			b.Fatal(err)
		}
	}
}
