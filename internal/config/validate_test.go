// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Empty(t *testing.T) {
	assert.NoError(t, Validate(&Config{}))
}

func TestValidate_Valid(t *testing.T) {
	cfg := &Config{
		Format:     "json",
		TopTeams:   intPtr(0),
		Sections:   []string{"head-to-head", "shootouts"},
		Chart:      ChartConfig{Format: "svg", Palette: "Purples", Width: 10, Height: 8},
		TopScorers: intPtr(25),
	}
	assert.NoError(t, Validate(cfg))
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := &Config{
		Format:      "xml",
		TopTeams:    intPtr(-1),
		Tournaments: []string{""},
		Sections:    []string{"possession"},
		Chart:       ChartConfig{Format: "gif", Palette: "Rainbow", Width: -2, Height: -1},
	}

	err := Validate(cfg)
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "config validation failed")
	assert.Contains(t, msg, `format: invalid value "xml"`)
	assert.Contains(t, msg, "top_teams: must be non-negative, got -1")
	assert.Contains(t, msg, "tournaments: entries must not be empty")
	assert.Contains(t, msg, "sections.possession: unknown section")
	assert.Contains(t, msg, `chart.format: invalid value "gif"`)
	assert.Contains(t, msg, `chart.palette: unknown sequential palette "Rainbow"`)
	assert.Contains(t, msg, "chart.width")
	assert.Contains(t, msg, "chart.height")
}
