package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// newTable returns a borderless, left-aligned table writing to w.
func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)
	return table
}

func registerTableCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "table <degree> [number of segments]",
		Short: "Print an entry of the bound table",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			degree, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("degree: %w", err)
			}
			segments := a.cfg.Segments
			if len(args) == 2 {
				if segments, err = strconv.Atoi(args[1]); err != nil {
					return fmt.Errorf("number of segments: %w", err)
				}
			}
			e, err := a.builder.Table().Lookup(degree, segments)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "degree %d, %d segments\n", e.Degree, e.Segments)
			table := newTable(out)
			table.SetHeader([]string{"BREAKPOINT", "T", "LOWER", "UPPER"})
			for i := range e.Segments + 1 {
				table.Append([]string{
					strconv.Itoa(i),
					strconv.FormatFloat(float64(i)/float64(e.Segments), 'f', 4, 64),
					fmt.Sprint(e.Lower[i]),
					fmt.Sprint(e.Upper[i]),
				})
			}
			table.Render()
			return nil
		},
	}
}
