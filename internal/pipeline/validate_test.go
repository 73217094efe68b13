// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertHasFieldError(t *testing.T, errs []ValidationError, field string) {
	t.Helper()
	for _, e := range errs {
		if e.Field == field {
			return
		}
	}
	t.Errorf("expected validation error for field %q, got %v", field, errs)
}

func TestValidate_Default(t *testing.T) {
	assert.Empty(t, Validate(DefaultConfig("data")))
}

func TestValidate_NoPaths(t *testing.T) {
	assertHasFieldError(t, Validate(Config{}), "data")
}

func TestValidate_NegativeLimits(t *testing.T) {
	cfg := DefaultConfig("data")
	cfg.Limits.TopScorers = -3
	cfg.Limits.TopRecords = -1

	errs := Validate(cfg)
	assertHasFieldError(t, errs, "top-scorers")
	assertHasFieldError(t, errs, "top-records")
	assert.Len(t, errs, 2)
}

func TestValidate_ZeroLimitMeansUnlimited(t *testing.T) {
	cfg := DefaultConfig("data")
	cfg.Limits.TopTeams = 0
	assert.Empty(t, Validate(cfg))
}

func TestValidate_UnknownSection(t *testing.T) {
	cfg := DefaultConfig("data")
	cfg.Sections = []string{"win-loss", "possession"}

	errs := Validate(cfg)
	assertHasFieldError(t, errs, "sections")
	assert.Contains(t, errs[0].Error(), "possession")
}

func TestValidate_BlankTournament(t *testing.T) {
	cfg := DefaultConfig("data")
	cfg.Tournaments = []string{"FIFA World Cup", " "}
	assertHasFieldError(t, Validate(cfg), "tournament")
}

func TestValidate_Palette(t *testing.T) {
	cfg := DefaultConfig("data")
	cfg.Chart.Palette = "Greens"
	assert.Empty(t, Validate(cfg))

	cfg.Chart.Palette = "Rainbow"
	assertHasFieldError(t, Validate(cfg), "palette")
}

func TestValidate_ChartFormat(t *testing.T) {
	cfg := DefaultConfig("data")
	cfg.ChartFormat = "SVG"
	assert.Empty(t, Validate(cfg))

	cfg.ChartFormat = "gif"
	assertHasFieldError(t, Validate(cfg), "chart-format")
}

func TestValidate_NegativeSize(t *testing.T) {
	cfg := DefaultConfig("data")
	cfg.Chart.Width = -1
	assertHasFieldError(t, Validate(cfg), "size")
}

func TestValidationError_Error(t *testing.T) {
	e := ValidationError{Field: "top-teams", Message: "must be non-negative, got -1"}
	assert.Equal(t, "top-teams: must be non-negative, got -1", e.Error())
}
