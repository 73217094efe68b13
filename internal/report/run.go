// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"log/slog"
)

// Status is the outcome of analyzing one section.
type Status string

const (
	StatusOK      Status = "ok"
	StatusSkipped Status = "skipped"
)

// Outcome records how one section fared.
type Outcome struct {
	Section Section
	Status  Status
	Reason  string // why the section was skipped
}

// Run analyzes the named sections (all when names is empty) in registry
// order of names. Sections whose data is absent are marked skipped; any
// other analysis error aborts the run.
func Run(in *Input, names []string) ([]Outcome, error) {
	var outcomes []Outcome
	for _, name := range ResolveSections(names) {
		sec := Get(name)
		if sec == nil {
			continue
		}

		if err := sec.Analyze(in); err != nil {
			if errors.Is(err, ErrDataNotAvailable) {
				slog.Warn("section skipped", "section", name, "reason", err)
				outcomes = append(outcomes, Outcome{Section: sec, Status: StatusSkipped, Reason: err.Error()})
				continue
			}
			return nil, fmt.Errorf("section %s: %w", name, err)
		}
		outcomes = append(outcomes, Outcome{Section: sec, Status: StatusOK})
	}
	return outcomes, nil
}

// Skipped counts the skipped outcomes.
func Skipped(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Status == StatusSkipped {
			n++
		}
	}
	return n
}
