// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/matchplot/internal/dataset"
)

func TestShootouts(t *testing.T) {
	records := Shootouts([]dataset.Shootout{
		{HomeTeam: "Italy", AwayTeam: "England", Winner: "Italy"},
		{HomeTeam: "England", AwayTeam: "Germany", Winner: "Germany"},
		{HomeTeam: "Germany", AwayTeam: "Italy", Winner: "Germany"},
		{HomeTeam: "Spain", AwayTeam: "Portugal", Winner: "Brazil"},
		{HomeTeam: "Spain", AwayTeam: "Portugal", Winner: ""},
	}, 0)

	require.Len(t, records, 3)
	assert.Equal(t, ShootoutRecord{Team: "Germany", Won: 2, Lost: 0}, records[0])
	assert.Equal(t, ShootoutRecord{Team: "Italy", Won: 1, Lost: 1}, records[1])
	assert.Equal(t, ShootoutRecord{Team: "England", Won: 0, Lost: 2}, records[2])
}

func TestShootouts_Limit(t *testing.T) {
	records := Shootouts([]dataset.Shootout{
		{HomeTeam: "A", AwayTeam: "B", Winner: "A"},
		{HomeTeam: "C", AwayTeam: "D", Winner: "C"},
	}, 1)
	require.Len(t, records, 1)
	assert.Equal(t, "A", records[0].Team)
}
