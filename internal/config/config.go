// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

// Package config handles .matchplot.yaml and .matchplot.toml configuration
// files.
package config

// Config represents the contents of a matchplot configuration file. File
// names are relative to the data directory unless absolute.
type Config struct {
	Results   string `yaml:"results,omitempty" toml:"results,omitempty"`
	Goals     string `yaml:"goals,omitempty" toml:"goals,omitempty"`
	Shootouts string `yaml:"shootouts,omitempty" toml:"shootouts,omitempty"`

	Tournaments    []string `yaml:"tournaments,omitempty" toml:"tournaments,omitempty"`
	AllTournaments bool     `yaml:"all_tournaments,omitempty" toml:"all_tournaments,omitempty"`

	// Limits are pointers so an explicit 0 (no limit) is distinct from unset.
	TopTeams   *int `yaml:"top_teams,omitempty" toml:"top_teams,omitempty"`
	TopScorers *int `yaml:"top_scorers,omitempty" toml:"top_scorers,omitempty"`
	TopRecords *int `yaml:"top_records,omitempty" toml:"top_records,omitempty"`

	Sections []string `yaml:"sections,omitempty" toml:"sections,omitempty"`

	// Format is the report output format: text or json.
	Format string `yaml:"format,omitempty" toml:"format,omitempty"`

	Chart ChartConfig `yaml:"chart,omitempty" toml:"chart,omitempty"`

	// Path is the file the config was read from, empty if none.
	Path string `yaml:"-" toml:"-"`
}

// ChartConfig holds chart rendering settings.
type ChartConfig struct {
	Format  string  `yaml:"format,omitempty" toml:"format,omitempty"`
	OutDir  string  `yaml:"out_dir,omitempty" toml:"out_dir,omitempty"`
	Width   float64 `yaml:"width,omitempty" toml:"width,omitempty"` // inches
	Height  float64 `yaml:"height,omitempty" toml:"height,omitempty"`
	Palette string  `yaml:"palette,omitempty" toml:"palette,omitempty"`
}

// FileName is the YAML config file name in a data directory.
const FileName = ".matchplot.yaml"

// TOMLFileName is the TOML config file name, read when FileName is absent.
const TOMLFileName = ".matchplot.toml"
