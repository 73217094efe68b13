// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gonum.org/v1/plot/vg"

	"github.com/davetashner/matchplot/internal/config"
	"github.com/davetashner/matchplot/internal/dataset"
	"github.com/davetashner/matchplot/internal/pipeline"
	"github.com/davetashner/matchplot/internal/stats"
)

// Data selection flag values, shared by report and render.
var (
	dataResults        string
	dataGoals          string
	dataShootouts      string
	dataTournaments    []string
	dataAllTournaments bool
	dataTopTeams       int
	dataTopScorers     int
	dataTopRecords     int
	dataSections       []string
)

// addDataFlags registers the data selection flags on fs.
func addDataFlags(fs *pflag.FlagSet) {
	fs.StringVar(&dataResults, "results", dataset.ResultsFile, "results CSV, relative to the data directory")
	fs.StringVar(&dataGoals, "goals", dataset.GoalsFile, "goal scorers CSV, relative to the data directory")
	fs.StringVar(&dataShootouts, "shootouts", dataset.ShootoutsFile, "penalty shootouts CSV, relative to the data directory")
	fs.StringArrayVar(&dataTournaments, "tournament", nil, "keep only this tournament (repeatable; default: FIFA World Cup and UEFA Euro)")
	fs.BoolVar(&dataAllTournaments, "all-tournaments", false, "keep matches from every tournament")
	fs.IntVar(&dataTopTeams, "top-teams", stats.DefaultTopTeams, "teams on the head-to-head axes (0 = all)")
	fs.IntVar(&dataTopScorers, "top-scorers", stats.DefaultTopScorers, "players in the scorer ranking (0 = all)")
	fs.IntVar(&dataTopRecords, "top-records", stats.DefaultTopRecords, "teams in the win/loss and shootout tables (0 = all)")
	fs.StringSliceVar(&dataSections, "sections", nil, "comma-separated list of sections to include (default: all)")
}

// resolveDataDir turns the optional positional argument into an absolute
// directory path.
func resolveDataDir(args []string) (string, error) {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	absPath, err := cmdFS.Abs(dir)
	if err != nil {
		return "", exitError(ExitInvalidArgs, "matchplot: cannot resolve path %q (%v)", dir, err)
	}
	absPath, err = cmdFS.EvalSymlinks(absPath)
	if err != nil {
		return "", exitError(ExitInvalidArgs, "matchplot: cannot resolve path %q (%v)", dir, err)
	}
	info, err := cmdFS.Stat(absPath)
	if err != nil {
		return "", exitError(ExitInvalidArgs, "matchplot: path %q does not exist", dir)
	}
	if !info.IsDir() {
		return "", exitError(ExitInvalidArgs, "matchplot: %q is not a directory", dir)
	}
	return absPath, nil
}

// loadRunConfig builds the merged pipeline config from CLI flags and the
// config files. It returns the file config too for command-specific keys.
func loadRunConfig(cmd *cobra.Command, args []string) (pipeline.Config, *config.Config, error) {
	dir, err := resolveDataDir(args)
	if err != nil {
		return pipeline.Config{}, nil, err
	}

	fileCfg, err := config.LoadLayered(dir)
	if err != nil {
		return pipeline.Config{}, nil, exitError(ExitInvalidArgs, "matchplot: failed to load config (%v)", err)
	}
	if err := config.Validate(fileCfg); err != nil {
		return pipeline.Config{}, nil, exitError(ExitInvalidArgs, "matchplot: %v", err)
	}

	cfg := pipeline.DefaultConfig(dir)
	cfg.Paths = dataset.Paths{
		Results:   config.ResolvePath(dir, dataResults),
		Goals:     config.ResolvePath(dir, dataGoals),
		Shootouts: config.ResolvePath(dir, dataShootouts),
	}
	if cmd.Flags().Changed("tournament") {
		cfg.Tournaments = dataTournaments
	}
	cfg.AllTournaments = dataAllTournaments
	cfg.Limits.TopTeams = dataTopTeams
	cfg.Limits.TopScorers = dataTopScorers
	cfg.Limits.TopRecords = dataTopRecords
	cfg.Sections = dataSections
	applyChartFlags(cmd, &cfg)

	cfg = config.Merge(fileCfg, cfg, cmd.Flags().Changed)

	if errs := pipeline.Validate(cfg); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return pipeline.Config{}, nil, exitError(ExitInvalidArgs, "matchplot: invalid arguments:\n  %s", strings.Join(msgs, "\n  "))
	}
	return cfg, fileCfg, nil
}

// applyChartFlags copies the render flags into cfg when the command has them.
func applyChartFlags(cmd *cobra.Command, cfg *pipeline.Config) {
	if cmd.Flags().Lookup("chart-format") == nil {
		return
	}
	cfg.ChartFormat = strings.ToLower(renderChartFormat)
	cfg.OutDir = renderOut
	cfg.Chart.Palette = renderPalette
	if renderWidth != 0 {
		cfg.Chart.Width = vg.Length(renderWidth) * vg.Inch
	}
	if renderHeight != 0 {
		cfg.Chart.Height = vg.Length(renderHeight) * vg.Inch
	}
}

// runError maps a pipeline failure to an exit code.
func runError(err error) error {
	return exitError(ExitTotalFailure, "matchplot: %v", err)
}

// skippedError reports sections skipped for missing data, or nil.
func skippedError(res *pipeline.Result) error {
	if n := res.Skipped(); n > 0 {
		return exitError(ExitPartialFailure, "matchplot: %d section(s) skipped because their data file was not found", n)
	}
	return nil
}

// plural is used by command summaries.
func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
