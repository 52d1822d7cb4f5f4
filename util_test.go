package sleefe

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// equalityTolerance is the tolerance of floating-point comparisons in tests.
const equalityTolerance = 1e-12

// controlValues holds the control values of Bézier functions of degree 2
// through 9.
var controlValues = [][]float64{
	{0.0, 1.0, 0.8},
	{0.0, 1.0, 0.8, -0.2},
	{0.0, 1.0, 0.8, -0.2, 2.5},
	{0.0, 1.0, 0.8, -0.2, 2.5, 3.5},
	{0.0, 1.0, 0.8, -0.2, 2.5, 3.5, 2.0},
	{0.0, 1.0, 0.8, -0.2, 2.5, 3.5, 2.0, 5.2},
	{0.0, 1.0, 0.8, -0.2, 2.5, 3.5, 2.0, 5.2, 4.0},
	{0.0, 1.0, 0.8, -0.2, 2.5, 3.5, 2.0, 5.2, 4.0, 0.5},
}

func newTestBuilder(t testing.TB) *Builder {
	t.Helper()
	table, err := NewBoundTable()
	if err != nil {
		t.Fatal(err)
	}
	return NewBuilder(table)
}

func mustBuild(t testing.TB, b *Builder, n int, coeffs []float64) Sleefe {
	t.Helper()
	s, err := b.Build(n, coeffs)
	if err != nil {
		t.Fatalf("Build(%d, %v): %v", n, coeffs, err)
	}
	return s
}
