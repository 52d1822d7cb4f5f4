package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"honnef.co/go/sleefe"
)

func registerVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of the bound table",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			tbl := a.builder.Table()
			fmt.Fprintf(cmd.OutOrStdout(), "bound table version %d: degrees %d to %d, up to %d segments, %d tangents per segment\n",
				tbl.Version(), sleefe.MinimumDegree, tbl.MaxDegree(), tbl.MaxSegments(), tbl.Tangents())
		},
	}
}
