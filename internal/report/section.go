// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

// Package report provides a pluggable section registry for matchplot.
// Each section aggregates one loaded table, renders it as a terminal
// table, and can draw it as a chart.
package report

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/davetashner/matchplot/internal/chart"
	"github.com/davetashner/matchplot/internal/dataset"
	"github.com/davetashner/matchplot/internal/stats"
)

// ErrDataNotAvailable indicates a section's input table is absent,
// typically because its CSV file was not found.
var ErrDataNotAvailable = errors.New("data not available")

// Limits caps the length of each derived table.
type Limits struct {
	TopTeams   int
	TopScorers int
	// TopRecords caps both the win/loss and the shootout tables.
	TopRecords int
}

// DefaultLimits returns the standard table lengths.
func DefaultLimits() Limits {
	return Limits{
		TopTeams:   stats.DefaultTopTeams,
		TopScorers: stats.DefaultTopScorers,
		TopRecords: stats.DefaultTopRecords,
	}
}

// Input is what every section analyzes.
type Input struct {
	Bundle *dataset.Bundle
	Limits Limits
}

// Section is a pluggable report section that aggregates loaded data and
// renders a focused report segment.
type Section interface {
	// Name returns the unique identifier for this section (e.g., "win-loss").
	Name() string

	// Description returns a human-readable description of what this section reports.
	Description() string

	// Analyze computes the section's derived table from in.
	// Returns ErrDataNotAvailable (wrapped) if the required table is absent.
	Analyze(in *Input) error

	// Render writes the section output to w.
	Render(w io.Writer) error
}

// Charter is implemented by sections that can draw their analysis.
type Charter interface {
	Chart(opts chart.Options) (*chart.Chart, error)
}

// DataProvider is implemented by sections that expose their derived table
// for structured output.
type DataProvider interface {
	Data() any
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Section)
	order    []string // insertion order for deterministic listing
)

// Register adds a section to the global registry.
// It panics if a section with the same name is already registered.
func Register(s Section) {
	mu.Lock()
	defer mu.Unlock()
	name := s.Name()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("report section already registered: %s", name))
	}
	registry[name] = s
	order = append(order, name)
}

// Get returns the section with the given name, or nil if not found.
func Get(name string) Section {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// List returns the names of all registered sections in registration order.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// ResolveSections determines which sections to run. If filter is empty,
// all registered sections are used. Unknown names are dropped; see
// UnknownSections.
func ResolveSections(filter []string) []string {
	if len(filter) == 0 {
		return List()
	}

	var names []string
	for _, name := range filter {
		if Get(name) != nil {
			names = append(names, name)
		}
	}
	return names
}

// UnknownSections returns the names in filter that are not registered.
func UnknownSections(filter []string) []string {
	var unknown []string
	for _, name := range filter {
		if Get(name) == nil {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// resetForTesting clears the registry. Only for use in tests.
func resetForTesting() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Section)
	order = nil
}
