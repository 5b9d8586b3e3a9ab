package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/ukaji3/vyustruct-go/pkg/vyustruct"
	"github.com/ukaji3/vyustruct-go/pkg/vyustruct/output"
	"github.com/ukaji3/vyustruct-go/pkg/vyustruct/sheet"
)

func newInfoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info [input]",
		Short: "List columns, codes and cell counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := vyustruct.Open(args[0], a.options())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(s.ColumnList()))
			for _, col := range s.Columns() {
				var first, last string
				if cells := col.SortedCells(); len(cells) > 0 {
					first = sheet.FormatTimestamp(minOnset(cells))
					last = sheet.FormatTimestamp(maxOffset(cells))
				}
				rows = append(rows, []string{
					col.Name(),
					fmt.Sprint(col.Fields()),
					strconv.Itoa(col.Len()),
					first,
					last,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", s.Name)
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Column", "Codes", "Cells", "First onset", "Last offset"}, rows, 3))
			return nil
		},
	}
}

func newMergeCommand(a *app) *cobra.Command {
	var (
		columns    string
		noPrune    bool
		outputPath string
		timeFormat string
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "merge [input]",
		Short: "Align columns into one time-partitioned table",
		Long: `merge cuts the timeline at every cell boundary of the selected columns
and prints one row per interval. With -o the table is exported; the format
follows the extension (.csv, .xlsx, .db/.sqlite, .json).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.options()
			if cmd.Flags().Changed("no-prune") {
				prune := !noPrune
				opts.Prune = &prune
			}
			if timeFormat != "" {
				if !output.TimeFormat(timeFormat).Valid() {
					return fmt.Errorf("invalid time format: %s (must be timestamp or millis)", timeFormat)
				}
				opts.TimeFormat = output.TimeFormat(timeFormat)
			}
			if pretty {
				opts.Pretty = true
			}

			s, err := vyustruct.Open(args[0], opts)
			if err != nil {
				return err
			}
			t, err := vyustruct.Table(s, opts, splitColumns(columns)...)
			if err != nil {
				return fmt.Errorf("merge failed: %w", err)
			}

			if outputPath != "" {
				if err := vyustruct.Export(cmd.Context(), t, outputPath, opts); err != nil {
					return err
				}
				opts.Logger.Info("merged table written", "path", outputPath, "rows", len(t.Rows))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(t.Header(), t.Records(opts.TimeFormat.Formatter()), 1, 2, 3))
			return nil
		},
	}

	cmd.Flags().StringVarP(&columns, "columns", "c", "", "Comma-separated columns to merge (default: all)")
	cmd.Flags().BoolVar(&noPrune, "no-prune", false, "Keep intervals with no values")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Export path (default: print a table)")
	cmd.Flags().StringVar(&timeFormat, "time-format", "", "Time rendering: timestamp or millis")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func newConvertCommand(a *app) *cobra.Command {
	var (
		columns string
		pretty  bool
	)

	cmd := &cobra.Command{
		Use:   "convert [input] [output]",
		Short: "Convert between .opf and .json, or print JSON with one argument",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.options()
			if pretty {
				opts.Pretty = true
			}

			s, err := vyustruct.Open(args[0], opts)
			if err != nil {
				return err
			}
			if names := splitColumns(columns); len(names) > 0 {
				if _, err := s.FilterColumns(names...); err != nil {
					return err
				}
			}

			if len(args) == 1 {
				data, err := output.ToJSON(s, opts.Pretty)
				if err != nil {
					return fmt.Errorf("serialization failed: %w", err)
				}
				return writeOutput(cmd, "", data)
			}
			return vyustruct.Save(s, args[1], opts)
		},
	}

	cmd.Flags().StringVarP(&columns, "columns", "c", "", "Comma-separated columns to keep (default: all)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func newTrimCommand(a *app) *cobra.Command {
	var (
		onset       string
		offset      string
		noShift     bool
		dropEmpty   bool
		destination string
	)

	cmd := &cobra.Command{
		Use:   "trim [input]",
		Short: "Clip every column to a time window",
		Long: `trim keeps only cells overlapping [onset, offset], clips them to the window
and, unless --no-shift is given, moves the window start to 00:00:00:000.
Times accept HH:MM:SS:mmm or milliseconds.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseTime(onset)
			if err != nil {
				return fmt.Errorf("invalid --onset: %w", err)
			}
			end, err := parseTime(offset)
			if err != nil {
				return fmt.Errorf("invalid --offset: %w", err)
			}

			opts := a.options()
			s, err := vyustruct.Open(args[0], opts)
			if err != nil {
				return err
			}
			if err := s.Trim(start, end, !noShift); err != nil {
				return err
			}
			if dropEmpty {
				s.RemoveEmptyColumns()
			}

			target := destination
			if target == "" {
				target = args[0]
			}
			return vyustruct.Save(s, target, opts)
		},
	}

	cmd.Flags().StringVar(&onset, "onset", "0", "Window start")
	cmd.Flags().StringVar(&offset, "offset", "", "Window end")
	cmd.Flags().BoolVar(&noShift, "no-shift", false, "Keep original times instead of restarting at zero")
	cmd.Flags().BoolVar(&dropEmpty, "drop-empty", false, "Remove columns left without cells")
	cmd.Flags().StringVarP(&destination, "output", "o", "", "Output path (default: overwrite input)")
	_ = cmd.MarkFlagRequired("offset")
	return cmd
}

// parseTime accepts HH:MM:SS:mmm or a plain millisecond count.
func parseTime(s string) (int64, error) {
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return sheet.ToMillis(ms)
	}
	return sheet.ParseTimestamp(s)
}

func minOnset(cells []*sheet.Cell) int64 {
	m := cells[0].Onset()
	for _, c := range cells[1:] {
		m = min(m, c.Onset())
	}
	return m
}

func maxOffset(cells []*sheet.Cell) int64 {
	m := cells[0].Offset()
	for _, c := range cells[1:] {
		m = max(m, c.Offset())
	}
	return m
}
