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
	Register(&winLossSection{})
}

// winLossSection reports wins and losses per team across home and away games.
type winLossSection struct {
	records []stats.TeamRecord
}

func (s *winLossSection) Name() string        { return "win-loss" }
func (s *winLossSection) Description() string { return "Wins and losses per team, home and away combined" }

func (s *winLossSection) Analyze(in *Input) error {
	s.records = nil
	if in == nil || in.Bundle == nil || in.Bundle.Results == nil {
		return fmt.Errorf("results: %w", ErrDataNotAvailable)
	}
	s.records = stats.WinLoss(in.Bundle.Results.Rows, in.Limits.TopRecords)
	return nil
}

func (s *winLossSection) Render(w io.Writer) error {
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle("Win/Loss Records"))
	_, _ = fmt.Fprintf(w, "----------------\n")

	if len(s.records) == 0 {
		_, _ = fmt.Fprintf(w, "  No played matches.\n\n")
		return nil
	}

	tbl := NewTable(
		Column{Header: "Team"},
		Column{Header: "Wins", Align: AlignRight, Color: ColorWins},
		Column{Header: "Losses", Align: AlignRight, Color: ColorLosses},
		Column{Header: "Draws", Align: AlignRight},
		Column{Header: "Home W-L", Align: AlignRight},
		Column{Header: "Away W-L", Align: AlignRight},
	)
	for _, r := range s.records {
		tbl.AddRow(r.Team,
			strconv.Itoa(r.Wins),
			strconv.Itoa(r.Losses),
			strconv.Itoa(r.Draws),
			fmt.Sprintf("%d-%d", r.HomeWins, r.HomeLosses),
			fmt.Sprintf("%d-%d", r.AwayWins, r.AwayLosses),
		)
	}
	if err := tbl.Render(w); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "\n")
	return nil
}

func (s *winLossSection) Chart(opts chart.Options) (*chart.Chart, error) {
	return chart.WinLoss(s.records, opts)
}

func (s *winLossSection) Data() any { return s.records }
