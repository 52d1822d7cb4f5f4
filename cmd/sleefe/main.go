// Command sleefe builds sleefes of Bézier functions.
package main

import (
	"io"
	"os"

	logging "github.com/op/go-logging"
	"github.com/spf13/cobra"

	"honnef.co/go/sleefe"
	"honnef.co/go/sleefe/internal/config"
	"honnef.co/go/sleefe/internal/logger"
)

var log = logging.MustGetLogger("sleefe")

// app holds what the subcommands share. It is filled in by the root
// command's PersistentPreRunE.
type app struct {
	configPath string
	logLevel   string
	logOutput  io.Writer

	cfg     config.Config
	builder *sleefe.Builder
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := logger.Init(a.logOutput, cfg.LogLevel, a.logOutput == os.Stderr); err != nil {
		return err
	}
	table, err := sleefe.NewBoundTable()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.builder = sleefe.NewBuilder(table)
	log.Debugf("loaded bound table version %d", table.Version())
	return nil
}

func newRootCommand(logOutput io.Writer) *cobra.Command {
	a := &app{logOutput: logOutput}
	root := &cobra.Command{
		Use:               "sleefe",
		Short:             "Piecewise-linear enclosures of Bézier functions",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "f", "", "Specify config file location")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", config.DefaultLogLevel, "Log level (debug, info, notice, warning, error, critical)")

	root.AddCommand(
		registerBuildCommand(a),
		registerDemoCommand(a),
		registerTableCommand(a),
		registerVersionCommand(a),
	)
	return root
}

func main() {
	root := newRootCommand(os.Stderr)
	root.SetArgs(os.Args[1:])
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
