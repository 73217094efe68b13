// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/davetashner/matchplot/internal/pipeline"
	"github.com/davetashner/matchplot/internal/report"
)

// Report-specific flag values.
var (
	reportFormat string
	reportOutput string
)

// reportCmd prints the analyzed sections as tables or JSON.
var reportCmd = &cobra.Command{
	Use:   "report [data-dir]",
	Short: "Print head-to-head, scorer, win/loss and shootout tables",
	Long: `Load the CSV files from a data directory (default: current directory),
filter results by tournament, and print each report section as an aligned
table or as JSON.

Exit codes: 0 all sections reported, 1 invalid arguments or config,
2 some sections skipped because their CSV file was not found,
3 no CSV file could be loaded.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

func init() {
	addDataFlags(reportCmd.Flags())
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "text", "output format: text or json")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "output file path (default: stdout)")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, fileCfg, err := loadRunConfig(cmd, args)
	if err != nil {
		return err
	}

	format := reportFormat
	if !cmd.Flags().Changed("format") && fileCfg.Format != "" {
		format = fileCfg.Format
	}
	if format != "text" && format != "json" {
		return exitError(ExitInvalidArgs, "matchplot: unsupported format %q (must be text or json)", format)
	}

	res, err := pipeline.Run(cmd.Context(), cfg)
	if err != nil {
		return runError(err)
	}

	w := cmd.OutOrStdout()
	if reportOutput != "" {
		f, createErr := os.Create(reportOutput) //nolint:gosec // user-specified output path
		if createErr != nil {
			return exitError(ExitInvalidArgs, "matchplot: cannot create output file %q (%v)", reportOutput, createErr)
		}
		defer f.Close() //nolint:errcheck // best-effort close on output file
		w = f
	}

	if format == "json" {
		err = report.RenderJSON(res.Header(), res.Outcomes, w)
	} else {
		err = report.RenderText(res.Header(), res.Outcomes, w)
	}
	if err != nil {
		return exitError(ExitTotalFailure, "matchplot: rendering failed (%v)", err)
	}

	slog.Info("report complete", "sections", len(res.Outcomes), "skipped", res.Skipped(), "duration", res.Duration)
	if reportOutput != "" {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", reportOutput)
	}
	return skippedError(res)
}
