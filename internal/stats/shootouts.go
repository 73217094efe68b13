// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package stats

import (
	"sort"

	"github.com/davetashner/matchplot/internal/dataset"
)

// ShootoutRecord counts penalty shootouts won and lost by a team.
type ShootoutRecord struct {
	Team string `json:"team"`
	Won  int    `json:"won"`
	Lost int    `json:"lost"`
}

// Shootouts tallies shootout results per team and returns the n teams with
// most shootouts won (ties: fewer lost, then name). Rows whose winner is
// neither side of the fixture are ignored. n <= 0 returns every team.
func Shootouts(shootouts []dataset.Shootout, n int) []ShootoutRecord {
	byTeam := make(map[string]*ShootoutRecord)
	record := func(team string) *ShootoutRecord {
		r, ok := byTeam[team]
		if !ok {
			r = &ShootoutRecord{Team: team}
			byTeam[team] = r
		}
		return r
	}

	for _, s := range shootouts {
		if s.Winner == "" {
			continue
		}
		var loser string
		switch s.Winner {
		case s.HomeTeam:
			loser = s.AwayTeam
		case s.AwayTeam:
			loser = s.HomeTeam
		default:
			continue
		}
		record(s.Winner).Won++
		record(loser).Lost++
	}

	out := make([]ShootoutRecord, 0, len(byTeam))
	for _, r := range byTeam {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Won != out[j].Won {
			return out[i].Won > out[j].Won
		}
		if out[i].Lost != out[j].Lost {
			return out[i].Lost < out[j].Lost
		}
		return out[i].Team < out[j].Team
	})

	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
