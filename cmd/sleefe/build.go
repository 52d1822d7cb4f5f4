package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"honnef.co/go/sleefe"
	"honnef.co/go/sleefe/internal/coeffio"
)

type buildParams struct {
	input    string
	output   string
	segments int
}

func parseBuildParams(args []string) (buildParams, error) {
	params := buildParams{input: args[0], output: args[1]}
	if params.output == "" {
		return buildParams{}, fmt.Errorf("output filename cannot be the empty string")
	}
	n, err := strconv.Atoi(args[2])
	if err != nil {
		return buildParams{}, fmt.Errorf("number of sleefe segments: %w", err)
	}
	if n < 1 {
		return buildParams{}, fmt.Errorf("number of sleefe segments must be positive")
	}
	if n > sleefe.MaximumNumberOfSegments {
		return buildParams{}, fmt.Errorf("number of sleefe segments cannot exceed %d", sleefe.MaximumNumberOfSegments)
	}
	params.segments = n
	return params, nil
}

func registerBuildCommand(a *app) *cobra.Command {
	var precision int
	cmd := &cobra.Command{
		Use:   "build <input file> <output file> <number of segments>",
		Short: "Build the sleefe of the polynomial in a coefficient file",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("precision") {
				precision = a.cfg.Precision
			}

			start := time.Now()
			params, err := parseBuildParams(args)
			if err != nil {
				return err
			}
			log.Infof("parsed the input parameter values in %s", time.Since(start))

			start = time.Now()
			coeffs, err := coeffio.ReadCoefficientsFile(params.input)
			if err != nil {
				return err
			}
			log.Infof("read %d coefficients from %s in %s", len(coeffs), params.input, time.Since(start))

			start = time.Now()
			s, err := a.builder.Build(params.segments, coeffs)
			if err != nil {
				return err
			}
			log.Infof("computed the sleefe components in %s", time.Since(start))

			start = time.Now()
			if err := coeffio.WriteSleefeFile(params.output, s, precision); err != nil {
				return err
			}
			log.Infof("wrote the sleefe bounds to %s in %s", params.output, time.Since(start))
			return nil
		},
	}
	cmd.Flags().IntVarP(&precision, "precision", "p", 10, "Decimals per breakpoint value")
	return cmd
}
