// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/davetashner/matchplot/internal/chart"
	"github.com/davetashner/matchplot/internal/config"
	"github.com/davetashner/matchplot/internal/dataset"
	"github.com/davetashner/matchplot/internal/pipeline"
	"github.com/davetashner/matchplot/internal/stats"
)

// Init-specific flag values.
var (
	initForce bool
	initTOML  bool
)

// initCmd writes a starter config file into a data directory.
var initCmd = &cobra.Command{
	Use:   "init [data-dir]",
	Short: "Write a starter config file into a data directory",
	Long: `Create .matchplot.yaml (or .matchplot.toml with --toml) in a data
directory, filled with the default tournament filter, table limits and chart
settings, and report which of the expected CSV files are present.

This command is non-destructive by default: it skips an existing config.
Use --force to regenerate it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
	initCmd.Flags().BoolVar(&initTOML, "toml", false, "write .matchplot.toml instead of .matchplot.yaml")
}

// starterConfig is the config init writes.
func starterConfig() *config.Config {
	teams, scorers, records := stats.DefaultTopTeams, stats.DefaultTopScorers, stats.DefaultTopRecords
	return &config.Config{
		Results:     dataset.ResultsFile,
		Goals:       dataset.GoalsFile,
		Shootouts:   dataset.ShootoutsFile,
		Tournaments: dataset.DefaultTournaments,
		TopTeams:    &teams,
		TopScorers:  &scorers,
		TopRecords:  &records,
		Format:      "text",
		Chart: config.ChartConfig{
			Format:  chart.DefaultFormat,
			OutDir:  pipeline.DefaultOutDir,
			Palette: chart.DefaultPalette,
		},
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	dir, err := resolveDataDir(args)
	if err != nil {
		return err
	}

	name := config.FileName
	write := config.Write
	if initTOML {
		name = config.TOMLFileName
		write = config.WriteTOML
	}
	path := filepath.Join(dir, name)

	w := cmd.OutOrStdout()
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	if _, err := cmdFS.Stat(path); err == nil && !initForce {
		_, _ = yellow.Fprintf(w, "  skipped  %s (exists, use --force to overwrite)\n", name)
	} else {
		var buf bytes.Buffer
		if err := write(&buf, starterConfig()); err != nil {
			return exitError(ExitTotalFailure, "matchplot: init failed (%v)", err)
		}
		if err := cmdFS.WriteFile(path, buf.Bytes(), 0o600); err != nil {
			return exitError(ExitTotalFailure, "matchplot: init failed (%v)", err)
		}
		slog.Info("config written", "path", path)
		_, _ = green.Fprintf(w, "  created  %s\n", name)
	}

	for _, csv := range []string{dataset.ResultsFile, dataset.GoalsFile, dataset.ShootoutsFile} {
		_, err := cmdFS.Stat(filepath.Join(dir, csv))
		switch {
		case err == nil:
			_, _ = green.Fprintf(w, "  found    %s\n", csv)
		case errors.Is(err, fs.ErrNotExist):
			_, _ = yellow.Fprintf(w, "  missing  %s\n", csv)
		default:
			return exitError(ExitInvalidArgs, "matchplot: %v", err)
		}
	}
	_, _ = fmt.Fprintln(w)
	return nil
}
