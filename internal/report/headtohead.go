// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/davetashner/matchplot/internal/chart"
	"github.com/davetashner/matchplot/internal/stats"
)

// headToHeadTopPairs caps the text table; the chart shows the full matrix.
const headToHeadTopPairs = 20

func init() {
	Register(&headToHeadSection{})
}

// headToHeadSection reports how often the most active teams met each other.
type headToHeadSection struct {
	matrix *stats.Matrix
}

type pairCount struct {
	a, b  string
	count int
}

func (s *headToHeadSection) Name() string { return "head-to-head" }
func (s *headToHeadSection) Description() string {
	return "Match counts between the most active teams"
}

func (s *headToHeadSection) Analyze(in *Input) error {
	s.matrix = nil
	if in == nil || in.Bundle == nil || in.Bundle.Results == nil {
		return fmt.Errorf("results: %w", ErrDataNotAvailable)
	}
	s.matrix = stats.HeadToHead(in.Bundle.Results.Rows, in.Limits.TopTeams)
	return nil
}

func (s *headToHeadSection) Render(w io.Writer) error {
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle("Head-to-Head"))
	_, _ = fmt.Fprintf(w, "------------\n")

	if s.matrix.Len() == 0 {
		_, _ = fmt.Fprintf(w, "  No matches after filtering.\n\n")
		return nil
	}

	_, _ = fmt.Fprintf(w, "  Teams: %d   Matches between them: %d\n\n", s.matrix.Len(), s.matrix.Total())

	pairs := s.pairs()
	tbl := NewTable(
		Column{Header: "Team"},
		Column{Header: "Opponent"},
		Column{Header: "Matches", Align: AlignRight, Color: ColorHighlight},
	)
	for _, p := range pairs {
		tbl.AddRow(p.a, p.b, strconv.Itoa(p.count))
	}
	if err := tbl.Render(w); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "\n")
	return nil
}

// pairs lists the non-zero off-diagonal cells, most played first.
func (s *headToHeadSection) pairs() []pairCount {
	var pairs []pairCount
	m := s.matrix
	for i := range m.Teams {
		for j := i + 1; j < len(m.Teams); j++ {
			if c := m.Counts[i][j]; c > 0 {
				pairs = append(pairs, pairCount{a: m.Teams[i], b: m.Teams[j], count: c})
			}
		}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].count > pairs[j].count
	})
	if len(pairs) > headToHeadTopPairs {
		pairs = pairs[:headToHeadTopPairs]
	}
	return pairs
}

func (s *headToHeadSection) Chart(opts chart.Options) (*chart.Chart, error) {
	return chart.Heatmap(s.matrix, opts)
}

func (s *headToHeadSection) Data() any { return s.matrix }
