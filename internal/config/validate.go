// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strings"

	"github.com/davetashner/matchplot/internal/chart"
	"github.com/davetashner/matchplot/internal/report"
)

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	switch cfg.Format {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("format: invalid value %q (must be text or json)", cfg.Format))
	}

	limits := []struct {
		key   string
		value *int
	}{
		{"top_teams", cfg.TopTeams},
		{"top_scorers", cfg.TopScorers},
		{"top_records", cfg.TopRecords},
	}
	for _, l := range limits {
		if l.value != nil && *l.value < 0 {
			errs = append(errs, fmt.Sprintf("%s: must be non-negative, got %d", l.key, *l.value))
		}
	}

	for _, name := range cfg.Tournaments {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, "tournaments: entries must not be empty")
			break
		}
	}

	for _, name := range report.UnknownSections(cfg.Sections) {
		errs = append(errs, fmt.Sprintf("sections.%s: unknown section", name))
	}

	if cfg.Chart.Format != "" && !chart.ValidFormat(cfg.Chart.Format) {
		errs = append(errs, fmt.Sprintf("chart.format: invalid value %q (must be one of %s)", cfg.Chart.Format, strings.Join(chart.Formats, ", ")))
	}
	if cfg.Chart.Palette != "" && !chart.ValidPalette(cfg.Chart.Palette) {
		errs = append(errs, fmt.Sprintf("chart.palette: unknown sequential palette %q", cfg.Chart.Palette))
	}
	if cfg.Chart.Width < 0 {
		errs = append(errs, fmt.Sprintf("chart.width: must be non-negative, got %g", cfg.Chart.Width))
	}
	if cfg.Chart.Height < 0 {
		errs = append(errs, fmt.Sprintf("chart.height: must be non-negative, got %g", cfg.Chart.Height))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
