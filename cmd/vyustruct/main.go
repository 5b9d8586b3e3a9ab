// Package main provides the CLI entry point for vyustruct.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/vyustruct-go/pkg/vyustruct"
)

var (
	configPath string
	logLevel   string
)

// app holds state resolved before any subcommand runs.
type app struct {
	cfg    *vyustruct.Config
	logger *slog.Logger
}

func (a *app) options() vyustruct.Options {
	return a.cfg.Options(a.logger)
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "vyustruct",
		Short: "Inspect, merge and convert Datavyu spreadsheets",
		Long: `vyustruct reads Datavyu .opf archives (or their JSON form), aligns
columns into a single time-partitioned table, and exports the result.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := vyustruct.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Logging.Level = logLevel
			}
			level, err := cfg.LogLevel()
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = newLogger(cmd.ErrOrStderr(), level, cfg.Logging.Format)
			slog.SetDefault(a.logger)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a TOML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newInfoCommand(a),
		newMergeCommand(a),
		newConvertCommand(a),
		newTrimCommand(a),
	)
	return rootCmd
}

// splitColumns parses a comma-separated column list, dropping blanks.
func splitColumns(s string) []string {
	var out []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
