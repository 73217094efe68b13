// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package config

import (
	"path/filepath"

	"gonum.org/v1/plot/vg"

	"github.com/davetashner/matchplot/internal/pipeline"
)

// Merge combines file-based config with the CLI-built pipeline config.
// CLI values take precedence: a file value is applied only when changed
// reports that the corresponding flag was not set. A nil changed treats
// every flag as unset.
func Merge(fileCfg *Config, cliCfg pipeline.Config, changed func(flag string) bool) pipeline.Config {
	if changed == nil {
		changed = func(string) bool { return false }
	}
	result := cliCfg

	if fileCfg.Results != "" && !changed("results") {
		result.Paths.Results = ResolvePath(result.DataDir, fileCfg.Results)
	}
	if fileCfg.Goals != "" && !changed("goals") {
		result.Paths.Goals = ResolvePath(result.DataDir, fileCfg.Goals)
	}
	if fileCfg.Shootouts != "" && !changed("shootouts") {
		result.Paths.Shootouts = ResolvePath(result.DataDir, fileCfg.Shootouts)
	}

	if len(fileCfg.Tournaments) > 0 && !changed("tournament") {
		result.Tournaments = fileCfg.Tournaments
	}
	// An explicit tournament list on the command line also overrides the
	// file's all_tournaments.
	if fileCfg.AllTournaments && !changed("all-tournaments") && !changed("tournament") {
		result.AllTournaments = true
	}

	if fileCfg.TopTeams != nil && !changed("top-teams") {
		result.Limits.TopTeams = *fileCfg.TopTeams
	}
	if fileCfg.TopScorers != nil && !changed("top-scorers") {
		result.Limits.TopScorers = *fileCfg.TopScorers
	}
	if fileCfg.TopRecords != nil && !changed("top-records") {
		result.Limits.TopRecords = *fileCfg.TopRecords
	}

	if len(fileCfg.Sections) > 0 && !changed("sections") {
		result.Sections = fileCfg.Sections
	}

	if fileCfg.Chart.Format != "" && !changed("chart-format") {
		result.ChartFormat = fileCfg.Chart.Format
	}
	if fileCfg.Chart.OutDir != "" && !changed("out") {
		result.OutDir = fileCfg.Chart.OutDir
	}
	if fileCfg.Chart.Width > 0 && !changed("width") {
		result.Chart.Width = vg.Length(fileCfg.Chart.Width) * vg.Inch
	}
	if fileCfg.Chart.Height > 0 && !changed("height") {
		result.Chart.Height = vg.Length(fileCfg.Chart.Height) * vg.Inch
	}
	if fileCfg.Chart.Palette != "" && !changed("palette") {
		result.Chart.Palette = fileCfg.Chart.Palette
	}

	return result
}

// ResolvePath joins a relative file name onto dir. Absolute paths and the
// empty string are returned unchanged.
func ResolvePath(dir, name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}
