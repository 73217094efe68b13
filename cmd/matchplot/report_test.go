// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/matchplot/internal/config"
	"github.com/davetashner/matchplot/internal/dataset"
	"github.com/davetashner/matchplot/internal/report"
)

func runReportJSON(t *testing.T, args ...string) (report.ReportJSON, error) {
	t.Helper()
	resetFlags()
	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs(append([]string{"report", "--format", "json"}, args...))
	err := cmd.Execute()

	var out report.ReportJSON
	if stdout.Len() > 0 {
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &out), stdout.String())
	}
	return out, err
}

func sectionByName(t *testing.T, out report.ReportJSON, name string) report.SectionJSON {
	t.Helper()
	for _, s := range out.Sections {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("section %q not in report", name)
	return report.SectionJSON{}
}

func TestReportCmd_Text(t *testing.T) {
	dir := initDataDir(t, allFiles()...)
	resetFlags()

	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"report", dir})
	require.NoError(t, cmd.Execute())

	out := stdout.String()
	assert.Contains(t, out, "Football Report: "+dir)
	assert.Contains(t, out, "Head-to-Head")
	assert.Contains(t, out, "Top Scorers")
	assert.Contains(t, out, "Miroslav Klose")
	assert.Contains(t, out, "Win/Loss Records")
	assert.Contains(t, out, "Penalty Shootouts")
}

func TestReportCmd_JSONDefaultFilter(t *testing.T) {
	dir := initDataDir(t, allFiles()...)

	out, err := runReportJSON(t, dir)
	require.NoError(t, err)
	assert.Equal(t, dir, out.DataDir)
	require.Len(t, out.Sections, 4)
	for _, s := range out.Sections {
		assert.Equal(t, "ok", s.Status, s.Name)
	}

	// The qualifier against Estonia is dropped by the default filter.
	wl := sectionByName(t, out, "win-loss")
	assert.NotContains(t, wl.Content, "Estonia")
}

func TestReportCmd_AllTournaments(t *testing.T) {
	dir := initDataDir(t, allFiles()...)

	out, err := runReportJSON(t, dir, "--all-tournaments")
	require.NoError(t, err)
	assert.Contains(t, sectionByName(t, out, "win-loss").Content, "Estonia")
}

func TestReportCmd_TournamentFlag(t *testing.T) {
	dir := initDataDir(t, allFiles()...)

	out, err := runReportJSON(t, dir, "--tournament", "UEFA Euro")
	require.NoError(t, err)
	wl := sectionByName(t, out, "win-loss")
	assert.Contains(t, wl.Content, "France")
	assert.NotContains(t, wl.Content, "Argentina")
}

func TestReportCmd_SectionsFlag(t *testing.T) {
	dir := initDataDir(t, allFiles()...)

	out, err := runReportJSON(t, dir, "--sections", "top-scorers,win-loss")
	require.NoError(t, err)
	require.Len(t, out.Sections, 2)
	assert.Equal(t, "top-scorers", out.Sections[0].Name)
	assert.Equal(t, "win-loss", out.Sections[1].Name)
}

func TestReportCmd_MissingShootoutsIsPartial(t *testing.T) {
	dir := initDataDir(t, dataset.ResultsFile, dataset.GoalsFile)

	out, err := runReportJSON(t, dir)
	requireExitCode(t, err, ExitPartialFailure)

	so := sectionByName(t, out, "shootouts")
	assert.Equal(t, "skipped", so.Status)
	assert.NotEmpty(t, so.Reason)
	assert.Equal(t, "ok", sectionByName(t, out, "head-to-head").Status)
}

func TestReportCmd_NoDataIsTotalFailure(t *testing.T) {
	dir := initDataDir(t)

	_, err := runReportJSON(t, dir)
	requireExitCode(t, err, ExitTotalFailure)
}

func TestReportCmd_BadPath(t *testing.T) {
	resetFlags()
	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"report", filepath.Join(t.TempDir(), "nope")})
	requireExitCode(t, cmd.Execute(), ExitInvalidArgs)
}

func TestReportCmd_UnknownSection(t *testing.T) {
	dir := initDataDir(t, allFiles()...)

	_, err := runReportJSON(t, dir, "--sections", "possession")
	ece := requireExitCode(t, err, ExitInvalidArgs)
	assert.Contains(t, ece.Error(), "possession")
}

func TestReportCmd_NegativeLimit(t *testing.T) {
	dir := initDataDir(t, allFiles()...)

	_, err := runReportJSON(t, dir, "--top-scorers", "-1")
	requireExitCode(t, err, ExitInvalidArgs)
}

func TestReportCmd_UnsupportedFormat(t *testing.T) {
	dir := initDataDir(t, allFiles()...)
	resetFlags()

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"report", dir, "--format", "xml"})
	ece := requireExitCode(t, cmd.Execute(), ExitInvalidArgs)
	assert.Contains(t, ece.Error(), "xml")
}

func TestReportCmd_OutputFile(t *testing.T) {
	dir := initDataDir(t, allFiles()...)
	resetFlags()

	dest := filepath.Join(t.TempDir(), "report.txt")
	cmd, stdout, stderr := newTestCmd()
	cmd.SetArgs([]string{"report", dir, "-o", dest})
	require.NoError(t, cmd.Execute())

	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Report written to "+dest)
	data, err := os.ReadFile(dest) //nolint:gosec // test path
	require.NoError(t, err)
	assert.Contains(t, string(data), "Top Scorers")
}

func TestReportCmd_ConfigFileFormatAndLimits(t *testing.T) {
	dir := initDataDir(t, allFiles()...)
	one := 1
	f, err := os.Create(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	require.NoError(t, config.Write(f, &config.Config{Format: "json", TopScorers: &one}))
	require.NoError(t, f.Close())

	resetFlags()
	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"report", dir})
	require.NoError(t, cmd.Execute())

	var out report.ReportJSON
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	ts := sectionByName(t, out, "top-scorers")
	assert.Contains(t, ts.Content, "Miroslav Klose")
	assert.NotContains(t, ts.Content, "Antoine Griezmann")
}

func TestReportCmd_FlagOverridesConfigFile(t *testing.T) {
	dir := initDataDir(t, allFiles()...)
	one := 1
	f, err := os.Create(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	require.NoError(t, config.Write(f, &config.Config{TopScorers: &one}))
	require.NoError(t, f.Close())

	out, err := runReportJSON(t, dir, "--top-scorers", "0")
	require.NoError(t, err)
	assert.Contains(t, sectionByName(t, out, "top-scorers").Content, "Antoine Griezmann")
}

func TestReportCmd_TournamentFlagOverridesConfigAllTournaments(t *testing.T) {
	dir := initDataDir(t, allFiles()...)
	writeTestFile(t, dir, config.FileName, "all_tournaments: true\n")

	out, err := runReportJSON(t, dir, "--tournament", "UEFA Euro")
	require.NoError(t, err)
	wl := sectionByName(t, out, "win-loss")
	assert.Contains(t, wl.Content, "France")
	assert.NotContains(t, wl.Content, "Estonia")
	assert.NotContains(t, wl.Content, "Argentina")
}

func TestReportCmd_InvalidConfigFile(t *testing.T) {
	dir := initDataDir(t, allFiles()...)
	writeTestFile(t, dir, config.FileName, "top_teams: -3\n")

	_, err := runReportJSON(t, dir)
	requireExitCode(t, err, ExitInvalidArgs)
}
