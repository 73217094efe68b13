// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

// Package pipeline orchestrates a matchplot run: it loads the CSV bundle,
// applies the tournament filter, and analyzes the selected report sections.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/davetashner/matchplot/internal/chart"
	"github.com/davetashner/matchplot/internal/dataset"
	"github.com/davetashner/matchplot/internal/report"
)

// ErrNoData is returned when none of the CSV files could be loaded.
var ErrNoData = errors.New("no input table loaded")

// Config is everything a run needs.
type Config struct {
	// DataDir is the directory the CSV paths were resolved against.
	DataDir string

	Paths dataset.Paths

	// Tournaments restricts results to these tournament names. Nil means
	// dataset.DefaultTournaments; ignored when AllTournaments is set.
	Tournaments    []string
	AllTournaments bool

	Limits report.Limits

	// Sections selects report sections by name; empty means all.
	Sections []string

	Chart chart.Options

	// ChartFormat and OutDir control where rendered charts are written.
	ChartFormat string
	OutDir      string
}

// DefaultOutDir is the chart directory used when none is configured.
const DefaultOutDir = "charts"

// DefaultConfig returns the standard configuration for a data directory.
func DefaultConfig(dataDir string) Config {
	return Config{
		DataDir:     dataDir,
		Paths:       dataset.DefaultPaths(dataDir),
		Limits:      report.DefaultLimits(),
		ChartFormat: chart.DefaultFormat,
		OutDir:      DefaultOutDir,
	}
}

// TournamentFilter returns the tournament names results are restricted to.
// An empty result means no filtering.
func (c Config) TournamentFilter() []string {
	if c.AllTournaments {
		return nil
	}
	if c.Tournaments == nil {
		return dataset.DefaultTournaments
	}
	return c.Tournaments
}

// Result is the outcome of a run.
type Result struct {
	Config   Config
	Bundle   *dataset.Bundle
	Outcomes []report.Outcome
	Duration time.Duration
}

// Skipped returns how many sections were skipped for missing data.
func (r *Result) Skipped() int {
	return report.Skipped(r.Outcomes)
}

// Header summarizes the run for report rendering.
func (r *Result) Header() report.Header {
	h := report.Header{DataDir: r.Config.DataDir, Duration: r.Duration}
	add := func(name, path string, rows int, loaded bool) {
		h.Tables = append(h.Tables, report.TableSummary{Name: name, Path: path, Rows: rows, Loaded: loaded})
	}
	b := r.Bundle
	add("results", r.Config.Paths.Results, b.Results.Len(), b.Results != nil)
	add("goalscorers", r.Config.Paths.Goals, b.Goals.Len(), b.Goals != nil)
	add("shootouts", r.Config.Paths.Shootouts, b.Shootouts.Len(), b.Shootouts != nil)
	return h
}

// Run loads the data, filters results by tournament and analyzes the
// selected sections. It returns ErrNoData if no table could be loaded.
// Sections whose table is absent are reported as skipped, not as errors.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	start := time.Now()

	if errs := Validate(cfg); len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %w", errors.Join(asErrors(errs)...))
	}

	bundle, err := dataset.LoadBundle(ctx, cfg.Paths)
	if err != nil {
		return nil, err
	}
	if bundle.Empty() {
		return nil, fmt.Errorf("%s: %w", cfg.DataDir, ErrNoData)
	}

	if filter := cfg.TournamentFilter(); len(filter) > 0 && bundle.Results != nil {
		before := bundle.Results.Len()
		bundle.FilterResults(filter)
		slog.Debug("filtered results by tournament",
			"tournaments", filter, "before", before, "after", bundle.Results.Len())
	}

	outcomes, err := report.Run(&report.Input{Bundle: bundle, Limits: cfg.Limits}, cfg.Sections)
	if err != nil {
		return nil, err
	}

	return &Result{
		Config:   cfg,
		Bundle:   bundle,
		Outcomes: outcomes,
		Duration: time.Since(start),
	}, nil
}

func asErrors(errs []ValidationError) []error {
	out := make([]error, len(errs))
	for i, e := range errs {
		out[i] = e
	}
	return out
}
