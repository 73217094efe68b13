// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/davetashner/matchplot/internal/chart"
	"github.com/davetashner/matchplot/internal/stats"
)

func init() {
	Register(&shootoutsSection{})
}

// shootoutsSection reports penalty shootout records.
type shootoutsSection struct {
	records []stats.ShootoutRecord
}

func (s *shootoutsSection) Name() string        { return "shootouts" }
func (s *shootoutsSection) Description() string { return "Penalty shootouts won and lost per team" }

func (s *shootoutsSection) Analyze(in *Input) error {
	s.records = nil
	if in == nil || in.Bundle == nil || in.Bundle.Shootouts == nil {
		return fmt.Errorf("shootouts: %w", ErrDataNotAvailable)
	}
	s.records = stats.Shootouts(in.Bundle.Shootouts.Rows, in.Limits.TopRecords)
	return nil
}

func (s *shootoutsSection) Render(w io.Writer) error {
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle("Penalty Shootouts"))
	_, _ = fmt.Fprintf(w, "-----------------\n")

	if len(s.records) == 0 {
		_, _ = fmt.Fprintf(w, "  No shootouts recorded.\n\n")
		return nil
	}

	tbl := NewTable(
		Column{Header: "Team"},
		Column{Header: "Won", Align: AlignRight, Color: ColorWins},
		Column{Header: "Lost", Align: AlignRight, Color: ColorLosses},
	)
	for _, r := range s.records {
		tbl.AddRow(r.Team, strconv.Itoa(r.Won), strconv.Itoa(r.Lost))
	}
	if err := tbl.Render(w); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "\n")
	return nil
}

func (s *shootoutsSection) Chart(opts chart.Options) (*chart.Chart, error) {
	return chart.Shootouts(s.records, opts)
}

func (s *shootoutsSection) Data() any { return s.records }
