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
	Register(&topScorersSection{})
}

// topScorersSection ranks players by goals, excluding own goals.
type topScorersSection struct {
	tallies []stats.ScorerTally
}

func (s *topScorersSection) Name() string        { return "top-scorers" }
func (s *topScorersSection) Description() string { return "Players with the most goals, own goals excluded" }

func (s *topScorersSection) Analyze(in *Input) error {
	s.tallies = nil
	if in == nil || in.Bundle == nil || in.Bundle.Goals == nil {
		return fmt.Errorf("goalscorers: %w", ErrDataNotAvailable)
	}
	s.tallies = stats.TopScorers(in.Bundle.Goals.Rows, in.Limits.TopScorers)
	return nil
}

func (s *topScorersSection) Render(w io.Writer) error {
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle("Top Scorers"))
	_, _ = fmt.Fprintf(w, "-----------\n")

	if len(s.tallies) == 0 {
		_, _ = fmt.Fprintf(w, "  No goals recorded.\n\n")
		return nil
	}

	tbl := NewTable(
		Column{Header: "#", Align: AlignRight},
		Column{Header: "Player"},
		Column{Header: "Goals", Align: AlignRight, Color: ColorHighlight},
		Column{Header: "Penalties", Align: AlignRight},
	)
	for i, t := range s.tallies {
		tbl.AddRow(strconv.Itoa(i+1), t.Scorer, strconv.Itoa(t.Goals), strconv.Itoa(t.Penalties))
	}
	if err := tbl.Render(w); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "\n")
	return nil
}

func (s *topScorersSection) Chart(opts chart.Options) (*chart.Chart, error) {
	return chart.TopScorers(s.tallies, opts)
}

func (s *topScorersSection) Data() any { return s.tallies }
