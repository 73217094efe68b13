// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/davetashner/matchplot/internal/chart"
	"github.com/davetashner/matchplot/internal/output"
	"github.com/davetashner/matchplot/internal/pipeline"
	"github.com/davetashner/matchplot/internal/report"
)

// Render-specific flag values.
var (
	renderOut         string
	renderChartFormat string
	renderWidth       float64
	renderHeight      float64
	renderPalette     string
)

// renderCmd writes each section's chart to an output directory.
var renderCmd = &cobra.Command{
	Use:   "render [data-dir]",
	Short: "Render the heatmap and bar charts as image files",
	Long: `Load the CSV files from a data directory (default: current directory)
and write one chart per section to the output directory, together with a
manifest.json and an index.html page showing every chart.

Exit codes match the report command.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	addDataFlags(renderCmd.Flags())
	renderCmd.Flags().StringVar(&renderOut, "out", pipeline.DefaultOutDir, "directory to write charts to")
	renderCmd.Flags().StringVar(&renderChartFormat, "chart-format", chart.DefaultFormat, "image format: png, svg, pdf, jpg, tif or eps")
	renderCmd.Flags().Float64Var(&renderWidth, "width", 0, "chart width in inches (default: per chart)")
	renderCmd.Flags().Float64Var(&renderHeight, "height", 0, "chart height in inches (default: per chart)")
	renderCmd.Flags().StringVar(&renderPalette, "palette", "", "ColorBrewer sequential palette for the heatmap (default: Blues)")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadRunConfig(cmd, args)
	if err != nil {
		return err
	}

	res, err := pipeline.Run(cmd.Context(), cfg)
	if err != nil {
		return runError(err)
	}

	m, err := output.WriteChartDir(cfg.OutDir, res)
	if err != nil {
		return exitError(ExitTotalFailure, "matchplot: %v", err)
	}

	w := cmd.OutOrStdout()
	tbl := report.NewTable(
		report.Column{Header: "Section"},
		report.Column{Header: "Chart"},
	)
	for _, c := range m.Charts {
		tbl.AddRow(c.Section, filepath.Join(cfg.OutDir, c.File))
	}
	for _, s := range m.Skipped {
		tbl.AddRow(s.Section, report.ColorStatus(string(report.StatusSkipped)))
	}
	if err := tbl.Render(w); err != nil {
		return exitError(ExitTotalFailure, "matchplot: %v", err)
	}
	_, _ = fmt.Fprintf(w, "\n%s written to %s (run %s)\n",
		plural(len(m.Charts), "chart"), filepath.Join(cfg.OutDir, output.IndexFile), m.RunID)

	slog.Info("render complete", "charts", len(m.Charts), "duration", res.Duration)
	return skippedError(res)
}
