// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// GlobalConfigDir returns the directory for global matchplot configuration.
// It uses $XDG_CONFIG_HOME/matchplot if set, otherwise ~/.config/matchplot.
func GlobalConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "matchplot")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "matchplot")
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() string {
	return filepath.Join(GlobalConfigDir(), "config.yaml")
}

// LoadGlobal loads the global config file.
// If the file does not exist, it returns a zero-value Config and nil error.
func LoadGlobal() (*Config, error) {
	cfg, err := LoadFile(GlobalConfigPath())
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	return cfg, err
}

// Overlay returns base with every field set in top taking its place.
// Neither argument is modified.
func Overlay(base, top *Config) *Config {
	out := *base
	if top.Results != "" {
		out.Results = top.Results
	}
	if top.Goals != "" {
		out.Goals = top.Goals
	}
	if top.Shootouts != "" {
		out.Shootouts = top.Shootouts
	}
	if len(top.Tournaments) > 0 {
		out.Tournaments = top.Tournaments
	}
	if top.AllTournaments {
		out.AllTournaments = true
	}
	if top.TopTeams != nil {
		out.TopTeams = top.TopTeams
	}
	if top.TopScorers != nil {
		out.TopScorers = top.TopScorers
	}
	if top.TopRecords != nil {
		out.TopRecords = top.TopRecords
	}
	if len(top.Sections) > 0 {
		out.Sections = top.Sections
	}
	if top.Format != "" {
		out.Format = top.Format
	}
	if top.Chart.Format != "" {
		out.Chart.Format = top.Chart.Format
	}
	if top.Chart.OutDir != "" {
		out.Chart.OutDir = top.Chart.OutDir
	}
	if top.Chart.Width != 0 {
		out.Chart.Width = top.Chart.Width
	}
	if top.Chart.Height != 0 {
		out.Chart.Height = top.Chart.Height
	}
	if top.Chart.Palette != "" {
		out.Chart.Palette = top.Chart.Palette
	}
	if top.Path != "" {
		out.Path = top.Path
	}
	return &out
}

// LoadLayered loads the global config and overlays the data directory's
// config file on it.
func LoadLayered(dir string) (*Config, error) {
	global, err := LoadGlobal()
	if err != nil {
		return nil, err
	}
	local, err := Load(dir)
	if err != nil {
		return nil, err
	}
	return Overlay(global, local), nil
}
