// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/matchplot/internal/dataset"
	"github.com/davetashner/matchplot/internal/report"
	"github.com/davetashner/matchplot/internal/stats"
)

const resultsCSV = `date,home_team,away_team,home_score,away_score,tournament,city,country,neutral
2018-06-16,A,B,2,1,FIFA World Cup,Kazan,Russia,TRUE
2018-06-21,B,A,0,3,FIFA World Cup,Moscow,Russia,TRUE
2019-03-22,A,C,5,0,Friendly,Rome,Italy,FALSE
`

const goalsCSV = `date,home_team,away_team,team,scorer,minute,own_goal,penalty
2018-06-16,A,B,A,Striker,10,FALSE,FALSE
2018-06-16,A,B,A,Striker,50,FALSE,TRUE
2018-06-16,A,B,A,Defender,80,TRUE,FALSE
`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func dataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, dataset.ResultsFile, resultsCSV)
	writeFile(t, dir, dataset.GoalsFile, goalsCSV)
	return dir
}

func outcome(t *testing.T, res *Result, name string) report.Outcome {
	t.Helper()
	for _, o := range res.Outcomes {
		if o.Section.Name() == name {
			return o
		}
	}
	t.Fatalf("no outcome for section %q", name)
	return report.Outcome{}
}

func TestRun_DefaultFilter(t *testing.T) {
	res, err := Run(context.Background(), DefaultConfig(dataDir(t)))
	require.NoError(t, err)

	// The friendly is filtered out.
	assert.Equal(t, 2, res.Bundle.Results.Len())
	require.Len(t, res.Outcomes, 4)

	h2h := outcome(t, res, "head-to-head")
	require.Equal(t, report.StatusOK, h2h.Status)
	m := h2h.Section.(report.DataProvider).Data().(*stats.Matrix)
	assert.Equal(t, 2, m.Count("A", "B"))
	assert.Equal(t, 0, m.Count("A", "C"))

	wl := outcome(t, res, "win-loss")
	records := wl.Section.(report.DataProvider).Data().([]stats.TeamRecord)
	require.NotEmpty(t, records)
	assert.Equal(t, "A", records[0].Team)
	assert.Equal(t, 2, records[0].Wins)
	assert.Equal(t, 0, records[0].Losses)

	scorers := outcome(t, res, "top-scorers").Section.(report.DataProvider).Data().([]stats.ScorerTally)
	require.Len(t, scorers, 1)
	assert.Equal(t, "Striker", scorers[0].Scorer)
	assert.Equal(t, 2, scorers[0].Goals)

	// No shootouts.csv in the data directory.
	assert.Equal(t, report.StatusSkipped, outcome(t, res, "shootouts").Status)
	assert.Equal(t, 1, res.Skipped())
}

func TestRun_AllTournaments(t *testing.T) {
	cfg := DefaultConfig(dataDir(t))
	cfg.AllTournaments = true
	cfg.Sections = []string{"head-to-head"}

	res, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Bundle.Results.Len())
	require.Len(t, res.Outcomes, 1)
}

func TestRun_CustomTournament(t *testing.T) {
	cfg := DefaultConfig(dataDir(t))
	cfg.Tournaments = []string{"Friendly"}

	res, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Bundle.Results.Len())
}

func TestRun_MissingResultsSkipsDependentSections(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, dataset.GoalsFile, goalsCSV)

	res, err := Run(context.Background(), DefaultConfig(dir))
	require.NoError(t, err)
	assert.Equal(t, report.StatusSkipped, outcome(t, res, "head-to-head").Status)
	assert.Equal(t, report.StatusSkipped, outcome(t, res, "win-loss").Status)
	assert.Equal(t, report.StatusOK, outcome(t, res, "top-scorers").Status)
	assert.Equal(t, 3, res.Skipped())
}

func TestRun_NoData(t *testing.T) {
	_, err := Run(context.Background(), DefaultConfig(t.TempDir()))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoData))
}

func TestRun_MalformedCSV(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, dataset.ResultsFile, "date,home_team\n2020-01-01,A\n")

	_, err := Run(context.Background(), DefaultConfig(dir))
	require.Error(t, err)
	assert.True(t, errors.Is(err, dataset.ErrMissingColumns))
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig(dataDir(t))
	cfg.Limits.TopTeams = -1
	cfg.Sections = []string{"nope"}

	_, err := Run(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "top-teams")
	assert.Contains(t, err.Error(), "nope")
}

func TestRun_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, DefaultConfig(dataDir(t)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestResult_Header(t *testing.T) {
	dir := dataDir(t)
	res, err := Run(context.Background(), DefaultConfig(dir))
	require.NoError(t, err)

	h := res.Header()
	assert.Equal(t, dir, h.DataDir)
	require.Len(t, h.Tables, 3)
	assert.Equal(t, report.TableSummary{Name: "results", Path: filepath.Join(dir, dataset.ResultsFile), Rows: 2, Loaded: true}, h.Tables[0])
	assert.False(t, h.Tables[2].Loaded)
}

func TestConfig_TournamentFilter(t *testing.T) {
	assert.Equal(t, dataset.DefaultTournaments, Config{}.TournamentFilter())
	assert.Equal(t, []string{"Copa América"}, Config{Tournaments: []string{"Copa América"}}.TournamentFilter())
	assert.Empty(t, Config{Tournaments: []string{"Copa América"}, AllTournaments: true}.TournamentFilter())
	assert.Empty(t, Config{Tournaments: []string{}}.TournamentFilter())
}
