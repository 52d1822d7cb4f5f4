package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"honnef.co/go/sleefe"
	"honnef.co/go/sleefe/bernstein"
)

// enclosureTolerance is the amount by which a sampled polynomial value may
// lie outside of its sleefe before the demo reports a failure.
const enclosureTolerance = 1e-12

// enclosureViolation returns the largest amount by which p leaves s at
// samples+1 evenly spaced parameters. It is zero or negative if s encloses p
// at all samples.
func enclosureViolation(s sleefe.Sleefe, p bernstein.Poly, samples int) float64 {
	worst := math.Inf(-1)
	for i := range samples + 1 {
		t := float64(i) / float64(samples)
		v := p.Eval(t)
		worst = max(worst, s.LowerValueAt(t)-v, v-s.UpperValueAt(t))
	}
	return worst
}

func registerDemoCommand(a *app) *cobra.Command {
	var (
		segments int
		all      bool
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Build sleefes of the configured curves and check that they enclose them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("segments") {
				segments = a.cfg.Segments
			}
			counts := []int{segments}
			if all {
				counts = counts[:0]
				for n := 1; n <= sleefe.MaximumNumberOfSegments; n++ {
					counts = append(counts, n)
				}
			}

			table := newTable(cmd.OutOrStdout())
			table.SetHeader([]string{"DEGREE", "SEGMENTS", "MAX WIDTH", "RANGE", "ROOTS IN", "ENCLOSED"})
			var failed int
			for _, curve := range a.cfg.Curves {
				p := bernstein.Poly(curve)
				for _, n := range counts {
					s, err := a.builder.Build(n, curve)
					if err != nil {
						return err
					}
					v := enclosureViolation(s, p, a.cfg.Samples)
					enclosed := "yes"
					if v > enclosureTolerance {
						enclosed = fmt.Sprintf("no (%g)", v)
						failed++
						log.Warningf("sleefe of %v with %d segments misses the curve by %g", curve, n, v)
					}
					table.Append([]string{
						strconv.Itoa(p.Degree()),
						strconv.Itoa(n),
						strconv.FormatFloat(s.MaxWidth(), 'f', 6, 64),
						s.Range().String(),
						fmt.Sprint(s.ZeroCrossings()),
						enclosed,
					})
				}
			}
			table.Render()
			if failed > 0 {
				return fmt.Errorf("%d sleefes do not enclose their curve", failed)
			}
			log.Infof("checked %d sleefes at %d samples each", len(a.cfg.Curves)*len(counts), a.cfg.Samples+1)
			return nil
		},
	}
	cmd.Flags().IntVarP(&segments, "segments", "n", 4, "Number of segments")
	cmd.Flags().BoolVar(&all, "all", false, "Build sleefes with every supported number of segments")
	return cmd
}
