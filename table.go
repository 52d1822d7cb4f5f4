package sleefe

import (
	_ "embed"
	"fmt"
	"math"

	"gopkg.in/yaml.v2"
)

//go:generate go run ./cmd/sleefe-tablegen -o data/bounds.yaml

const (
	// MaximumDegree is the highest polynomial degree covered by the bound
	// table.
	MaximumDegree = 9

	// MaximumNumberOfSegments is the largest number of linear segments of a
	// sleefe covered by the bound table.
	MaximumNumberOfSegments = 9

	// MinimumDegree is the lowest polynomial degree covered by the bound
	// table. Linear functions are their own sleefes.
	MinimumDegree = 2
)

// TableVersion is the version of the table asset format understood by this
// package.
const TableVersion = 1

//go:embed data/bounds.yaml
var boundsAsset []byte

// Entry holds the bounds of one (degree, number of segments) pair of a
// [BoundTable].
//
// Lower[i][j-1] and Upper[i][j-1] are the lower and upper bounds of the
// function a_j (see the package documentation) at breakpoint i/Segments.
// There are Segments+1 breakpoints and Degree-1 functions. The slices are
// shared with the table and must not be modified.
type Entry struct {
	Degree   int
	Segments int
	Lower    [][]float64
	Upper    [][]float64
}

// BoundTable holds the precomputed bounds for all supported degrees and
// numbers of segments. It is read-only after construction and safe for
// concurrent use.
type BoundTable struct {
	version  int
	tangents int
	entries  [MaximumDegree - MinimumDegree + 1][MaximumNumberOfSegments]Entry
}

// TableFile is the serialized form of a bound table.
type TableFile struct {
	Version     int              `yaml:"version"`
	MaxDegree   int              `yaml:"max-degree"`
	MaxSegments int              `yaml:"max-segments"`
	Tangents    int              `yaml:"tangents"`
	Entries     []TableFileEntry `yaml:"entries"`
}

type TableFileEntry struct {
	Degree   int         `yaml:"degree"`
	Segments int         `yaml:"segments"`
	Lower    [][]float64 `yaml:"lower"`
	Upper    [][]float64 `yaml:"upper"`
}

// NewBoundTable returns the bound table embedded in the package.
func NewBoundTable() (*BoundTable, error) {
	return NewBoundTableFromYAML(boundsAsset)
}

// NewBoundTableFromYAML decodes and validates a bound table asset, such as
// one written by sleefe-tablegen.
//
// The asset has to cover every degree in [MinimumDegree, MaximumDegree] and
// every number of segments in [1, MaximumNumberOfSegments] exactly once, and
// every lower bound must not exceed its upper bound.
func NewBoundTableFromYAML(data []byte) (*BoundTable, error) {
	var f TableFile
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadTable, err)
	}
	if f.Version != TableVersion {
		return nil, fmt.Errorf("%w: version %d, want %d", ErrBadTable, f.Version, TableVersion)
	}
	if f.MaxDegree != MaximumDegree || f.MaxSegments != MaximumNumberOfSegments {
		return nil, fmt.Errorf("%w: grid %dx%d, want %dx%d",
			ErrBadTable, f.MaxDegree, f.MaxSegments, MaximumDegree, MaximumNumberOfSegments)
	}

	tbl := &BoundTable{
		version:  f.Version,
		tangents: f.Tangents,
	}
	for _, e := range f.Entries {
		if e.Degree < MinimumDegree || e.Degree > MaximumDegree ||
			e.Segments < 1 || e.Segments > MaximumNumberOfSegments {
			return nil, fmt.Errorf("%w: entry for degree %d, %d segments outside of grid",
				ErrBadTable, e.Degree, e.Segments)
		}
		slot := &tbl.entries[e.Degree-MinimumDegree][e.Segments-1]
		if slot.Degree != 0 {
			return nil, fmt.Errorf("%w: duplicate entry for degree %d, %d segments",
				ErrBadTable, e.Degree, e.Segments)
		}
		if err := validateEntry(e); err != nil {
			return nil, err
		}
		*slot = Entry{
			Degree:   e.Degree,
			Segments: e.Segments,
			Lower:    e.Lower,
			Upper:    e.Upper,
		}
	}
	for d := range tbl.entries {
		for n := range tbl.entries[d] {
			if tbl.entries[d][n].Degree == 0 {
				return nil, fmt.Errorf("%w: missing entry for degree %d, %d segments",
					ErrBadTable, d+MinimumDegree, n+1)
			}
		}
	}
	return tbl, nil
}

func validateEntry(e TableFileEntry) error {
	if len(e.Lower) != e.Segments+1 || len(e.Upper) != e.Segments+1 {
		return fmt.Errorf("%w: degree %d, %d segments: got %d lower and %d upper breakpoints",
			ErrBadTable, e.Degree, e.Segments, len(e.Lower), len(e.Upper))
	}
	for i := range e.Lower {
		lo, hi := e.Lower[i], e.Upper[i]
		if len(lo) != e.Degree-1 || len(hi) != e.Degree-1 {
			return fmt.Errorf("%w: degree %d, %d segments, breakpoint %d: got %d lower and %d upper weights",
				ErrBadTable, e.Degree, e.Segments, i, len(lo), len(hi))
		}
		for j := range lo {
			if math.IsNaN(lo[j]) || math.IsInf(lo[j], 0) || math.IsNaN(hi[j]) || math.IsInf(hi[j], 0) {
				return fmt.Errorf("%w: degree %d, %d segments, breakpoint %d: non-finite weight",
					ErrBadTable, e.Degree, e.Segments, i)
			}
			if lo[j] > hi[j] {
				return fmt.Errorf("%w: degree %d, %d segments, breakpoint %d: lower weight %g exceeds upper weight %g",
					ErrBadTable, e.Degree, e.Segments, i, lo[j], hi[j])
			}
		}
	}
	return nil
}

// Lookup returns the entry for the given degree and number of segments. It
// returns [ErrOutOfRange] if either lies outside of the table's grid.
func (tbl *BoundTable) Lookup(degree, segments int) (Entry, error) {
	if degree < MinimumDegree || degree > MaximumDegree {
		return Entry{}, fmt.Errorf("%w: degree %d not in [%d, %d]",
			ErrOutOfRange, degree, MinimumDegree, MaximumDegree)
	}
	if segments < 1 || segments > MaximumNumberOfSegments {
		return Entry{}, fmt.Errorf("%w: %d segments not in [1, %d]",
			ErrOutOfRange, segments, MaximumNumberOfSegments)
	}
	return tbl.entries[degree-MinimumDegree][segments-1], nil
}

// Version returns the version of the table's asset.
func (tbl *BoundTable) Version() int { return tbl.version }

// Tangents returns the number of tangents per segment that the table's
// derivation used for bounding interior segments.
func (tbl *BoundTable) Tangents() int { return tbl.tangents }

// MaxDegree returns the highest degree covered by the table.
func (tbl *BoundTable) MaxDegree() int { return MaximumDegree }

// MaxSegments returns the largest number of segments covered by the table.
func (tbl *BoundTable) MaxSegments() int { return MaximumNumberOfSegments }
