// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/matchplot/internal/chart"
	"github.com/davetashner/matchplot/internal/dataset"
	"github.com/davetashner/matchplot/internal/stats"
)

func fixtureBundle() *dataset.Bundle {
	return &dataset.Bundle{
		Results: &dataset.Table[dataset.Match]{
			Path: "results.csv",
			Rows: []dataset.Match{
				{HomeTeam: "Argentina", AwayTeam: "Brazil", HomeScore: dataset.Int(2), AwayScore: dataset.Int(1), Tournament: "FIFA World Cup"},
				{HomeTeam: "Brazil", AwayTeam: "Argentina", HomeScore: dataset.Int(0), AwayScore: dataset.Int(3), Tournament: "FIFA World Cup"},
				{HomeTeam: "Brazil", AwayTeam: "Italy", HomeScore: dataset.Int(1), AwayScore: dataset.Int(1), Tournament: "FIFA World Cup"},
			},
		},
		Goals: &dataset.Table[dataset.Goal]{
			Path: "goalscorers.csv",
			Rows: []dataset.Goal{
				{Team: "Brazil", Scorer: "Pelé"},
				{Team: "Brazil", Scorer: "Pelé", Penalty: true},
				{Team: "Argentina", Scorer: "Kempes"},
				{Team: "Italy", Scorer: "Own Goaler", OwnGoal: true},
			},
		},
		Shootouts: &dataset.Table[dataset.Shootout]{
			Path: "shootouts.csv",
			Rows: []dataset.Shootout{
				{HomeTeam: "Brazil", AwayTeam: "Italy", Winner: "Brazil"},
			},
		},
	}
}

func fixtureInput() *Input {
	return &Input{Bundle: fixtureBundle(), Limits: DefaultLimits()}
}

func TestHeadToHead_Analyze(t *testing.T) {
	s := &headToHeadSection{}
	require.NoError(t, s.Analyze(fixtureInput()))

	m, ok := s.Data().(*stats.Matrix)
	require.True(t, ok)
	assert.Equal(t, []string{"Argentina", "Brazil", "Italy"}, m.Teams)
	assert.Equal(t, 2, m.Count("Argentina", "Brazil"))
	assert.Equal(t, 3, m.Total())

	var buf bytes.Buffer
	require.NoError(t, s.Render(&buf))
	out := buf.String()
	assert.Contains(t, out, "Head-to-Head")
	assert.Contains(t, out, "Matches between them: 3")
	assert.Contains(t, out, "Argentina")
}

func TestHeadToHead_PairsOrderedByCount(t *testing.T) {
	s := &headToHeadSection{}
	require.NoError(t, s.Analyze(fixtureInput()))

	pairs := s.pairs()
	require.Len(t, pairs, 2)
	assert.Equal(t, pairCount{a: "Argentina", b: "Brazil", count: 2}, pairs[0])
	assert.Equal(t, pairCount{a: "Brazil", b: "Italy", count: 1}, pairs[1])
}

func TestHeadToHead_MissingResults(t *testing.T) {
	s := &headToHeadSection{}
	in := fixtureInput()
	in.Bundle.Results = nil

	err := s.Analyze(in)
	assert.True(t, errors.Is(err, ErrDataNotAvailable))
	assert.Nil(t, s.Data())
}

func TestHeadToHead_EmptyAfterFilter(t *testing.T) {
	s := &headToHeadSection{}
	in := fixtureInput()
	in.Bundle.Results.Rows = nil
	require.NoError(t, s.Analyze(in))

	var buf bytes.Buffer
	require.NoError(t, s.Render(&buf))
	assert.Contains(t, buf.String(), "No matches after filtering")

	_, err := s.Chart(chart.Options{})
	assert.True(t, errors.Is(err, chart.ErrNoData))
}

func TestTopScorers_Analyze(t *testing.T) {
	s := &topScorersSection{}
	require.NoError(t, s.Analyze(fixtureInput()))

	tallies, ok := s.Data().([]stats.ScorerTally)
	require.True(t, ok)
	require.Len(t, tallies, 2)
	assert.Equal(t, stats.ScorerTally{Scorer: "Pelé", Goals: 2, Penalties: 1}, tallies[0])
	assert.Equal(t, "Kempes", tallies[1].Scorer)

	var buf bytes.Buffer
	require.NoError(t, s.Render(&buf))
	assert.Contains(t, buf.String(), "Top Scorers")
	assert.NotContains(t, buf.String(), "Own Goaler")
}

func TestTopScorers_MissingGoals(t *testing.T) {
	s := &topScorersSection{}
	in := fixtureInput()
	in.Bundle.Goals = nil
	assert.True(t, errors.Is(s.Analyze(in), ErrDataNotAvailable))
}

func TestTopScorers_LimitApplied(t *testing.T) {
	s := &topScorersSection{}
	in := fixtureInput()
	in.Limits.TopScorers = 1
	require.NoError(t, s.Analyze(in))
	assert.Len(t, s.tallies, 1)
}

func TestWinLoss_Analyze(t *testing.T) {
	s := &winLossSection{}
	require.NoError(t, s.Analyze(fixtureInput()))

	records, ok := s.Data().([]stats.TeamRecord)
	require.True(t, ok)
	require.NotEmpty(t, records)
	assert.Equal(t, "Argentina", records[0].Team)
	assert.Equal(t, 2, records[0].Wins)
	assert.Equal(t, 0, records[0].Losses)

	var buf bytes.Buffer
	require.NoError(t, s.Render(&buf))
	out := buf.String()
	assert.Contains(t, out, "Win/Loss Records")
	assert.Contains(t, out, "Home W-L")
}

func TestWinLoss_MissingResults(t *testing.T) {
	s := &winLossSection{}
	in := fixtureInput()
	in.Bundle.Results = nil
	assert.True(t, errors.Is(s.Analyze(in), ErrDataNotAvailable))
}

func TestShootouts_Analyze(t *testing.T) {
	s := &shootoutsSection{}
	require.NoError(t, s.Analyze(fixtureInput()))

	records, ok := s.Data().([]stats.ShootoutRecord)
	require.True(t, ok)
	require.Len(t, records, 2)
	assert.Equal(t, stats.ShootoutRecord{Team: "Brazil", Won: 1}, records[0])
	assert.Equal(t, stats.ShootoutRecord{Team: "Italy", Lost: 1}, records[1])
}

func TestShootouts_UsesTopRecordsLimit(t *testing.T) {
	s := &shootoutsSection{}
	in := fixtureInput()
	in.Limits.TopRecords = 1
	require.NoError(t, s.Analyze(in))

	records, ok := s.Data().([]stats.ShootoutRecord)
	require.True(t, ok)
	require.Len(t, records, 1)
	assert.Equal(t, "Brazil", records[0].Team)
}

func TestShootouts_MissingTable(t *testing.T) {
	s := &shootoutsSection{}
	in := fixtureInput()
	in.Bundle.Shootouts = nil
	assert.True(t, errors.Is(s.Analyze(in), ErrDataNotAvailable))
}

func TestSections_ChartEveryAnalyzedSection(t *testing.T) {
	outcomes, err := Run(fixtureInput(), nil)
	require.NoError(t, err)
	require.Len(t, outcomes, 4)

	for _, o := range outcomes {
		c, ok := o.Section.(Charter)
		require.True(t, ok, o.Section.Name())
		ch, err := c.Chart(chart.Options{})
		require.NoError(t, err, o.Section.Name())
		assert.NotNil(t, ch.Plot)
	}
}

func TestSections_AnalyzeResetsState(t *testing.T) {
	s := &topScorersSection{}
	require.NoError(t, s.Analyze(fixtureInput()))
	require.NotEmpty(t, s.tallies)

	in := fixtureInput()
	in.Bundle.Goals = nil
	_ = s.Analyze(in)
	assert.Empty(t, s.tallies)
}
