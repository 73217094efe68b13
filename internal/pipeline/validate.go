// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"strings"

	"github.com/davetashner/matchplot/internal/chart"
	"github.com/davetashner/matchplot/internal/report"
)

// ValidationError describes a single invalid Config field.
type ValidationError struct {
	// Field is the setting that failed validation, named as on the command line.
	Field string

	// Message describes what went wrong.
	Message string
}

// Error implements the error interface.
func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// Validate checks cfg and returns every problem found. An empty slice
// means the configuration is usable.
func Validate(cfg Config) []ValidationError {
	var errs []ValidationError

	if cfg.Paths.Results == "" && cfg.Paths.Goals == "" && cfg.Paths.Shootouts == "" {
		errs = append(errs, ValidationError{
			Field:   "data",
			Message: "at least one CSV path is required",
		})
	}

	limits := []struct {
		field string
		value int
	}{
		{"top-teams", cfg.Limits.TopTeams},
		{"top-scorers", cfg.Limits.TopScorers},
		{"top-records", cfg.Limits.TopRecords},
	}
	for _, l := range limits {
		if l.value < 0 {
			errs = append(errs, ValidationError{
				Field:   l.field,
				Message: fmt.Sprintf("must be non-negative, got %d", l.value),
			})
		}
	}

	for _, name := range cfg.Tournaments {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, ValidationError{
				Field:   "tournament",
				Message: "must not be empty",
			})
			break
		}
	}

	if unknown := report.UnknownSections(cfg.Sections); len(unknown) > 0 {
		errs = append(errs, ValidationError{
			Field:   "sections",
			Message: fmt.Sprintf("unknown section(s) %s (available: %s)", strings.Join(unknown, ", "), strings.Join(report.List(), ", ")),
		})
	}

	if cfg.Chart.Palette != "" && !chart.ValidPalette(cfg.Chart.Palette) {
		errs = append(errs, ValidationError{
			Field:   "palette",
			Message: fmt.Sprintf("unknown sequential palette %q", cfg.Chart.Palette),
		})
	}

	if cfg.ChartFormat != "" && !chart.ValidFormat(cfg.ChartFormat) {
		errs = append(errs, ValidationError{
			Field:   "chart-format",
			Message: fmt.Sprintf("unsupported format %q (must be one of %s)", cfg.ChartFormat, strings.Join(chart.Formats, ", ")),
		})
	}

	if cfg.Chart.Width < 0 || cfg.Chart.Height < 0 {
		errs = append(errs, ValidationError{
			Field:   "size",
			Message: "chart width and height must be non-negative",
		})
	}

	return errs
}
