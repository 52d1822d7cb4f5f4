// Command sleefe-tablegen derives the bound table embedded in package sleefe.
//
// Usage:
//
//	sleefe-tablegen [-o file] [--tangents n]
package main

import (
	"bytes"
	"os"
	"time"

	logging "github.com/op/go-logging"
	"github.com/spf13/cobra"

	"honnef.co/go/sleefe"
	"honnef.co/go/sleefe/internal/logger"
	"honnef.co/go/sleefe/internal/tablegen"
)

var log = logging.MustGetLogger("sleefe-tablegen")

func newRootCommand() *cobra.Command {
	var (
		output   string
		logLevel string
		opts     = tablegen.DefaultOptions()
	)
	root := &cobra.Command{
		Use:          "sleefe-tablegen",
		Short:        "Derive the sleefe bound table",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.InitConsoleLog(logLevel); err != nil {
				return err
			}

			start := time.Now()
			f, err := tablegen.Generate(opts)
			if err != nil {
				return err
			}
			log.Infof("derived %d entries in %s", len(f.Entries), time.Since(start))

			var buf bytes.Buffer
			if err := tablegen.Encode(&buf, f); err != nil {
				return err
			}
			// Refuse to write a table the package wouldn't load.
			if _, err := sleefe.NewBoundTableFromYAML(buf.Bytes()); err != nil {
				return err
			}
			if output == "-" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return err
			}
			log.Infof("wrote %s", output)
			return nil
		},
	}
	root.Flags().StringVarP(&output, "output", "o", "data/bounds.yaml", "Output file, - for stdout")
	root.Flags().IntVar(&opts.Tangents, "tangents", opts.Tangents, "Tangent intervals per interior segment")
	root.Flags().StringVar(&logLevel, "log-level", "info", "Log level")
	return root
}

func main() {
	root := newRootCommand()
	root.SetArgs(os.Args[1:])
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
