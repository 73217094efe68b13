// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	matchplotlog "github.com/davetashner/matchplot/internal/log"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
)

// rootCmd is the base command for matchplot.
var rootCmd = &cobra.Command{
	Use:   "matchplot",
	Short: "Charts and tables from international football results",
	Long: `Matchplot loads the international football results, goal scorer and
penalty shootout CSV files and turns them into a head-to-head heatmap, a
top scorer ranking, win/loss records and shootout records, printed as
tables or rendered as chart images.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		matchplotlog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}
