// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package stats

import (
	"sort"

	"github.com/davetashner/matchplot/internal/dataset"
)

// DefaultTopRecords is the win/loss table length.
const DefaultTopRecords = 15

// Outcome is a match result seen from the home side.
type Outcome int

const (
	// Unplayed marks a match with a missing score.
	Unplayed Outcome = iota
	Win
	Loss
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	case Draw:
		return "draw"
	default:
		return "unplayed"
	}
}

// Invert returns the same result seen from the away side.
func (o Outcome) Invert() Outcome {
	switch o {
	case Win:
		return Loss
	case Loss:
		return Win
	default:
		return o
	}
}

// HomeOutcome labels m from the home team's perspective.
func HomeOutcome(m dataset.Match) Outcome {
	if !m.Played() {
		return Unplayed
	}
	switch {
	case m.HomeScore.Value > m.AwayScore.Value:
		return Win
	case m.HomeScore.Value < m.AwayScore.Value:
		return Loss
	default:
		return Draw
	}
}

// TeamRecord aggregates one team's results across home and away matches.
type TeamRecord struct {
	Team       string `json:"team"`
	Wins       int    `json:"wins"`
	Losses     int    `json:"losses"`
	Draws      int    `json:"draws"`
	HomeWins   int    `json:"home_wins"`
	HomeLosses int    `json:"home_losses"`
	AwayWins   int    `json:"away_wins"`
	AwayLosses int    `json:"away_losses"`
}

func (r *TeamRecord) add(o Outcome, home bool) {
	switch o {
	case Win:
		r.Wins++
		if home {
			r.HomeWins++
		} else {
			r.AwayWins++
		}
	case Loss:
		r.Losses++
		if home {
			r.HomeLosses++
		} else {
			r.AwayLosses++
		}
	case Draw:
		r.Draws++
	}
}

// WinLoss totals wins, losses and draws per team over home and away
// appearances and returns the n teams with most wins (ties: fewer losses,
// then name). Unplayed matches are ignored. n <= 0 returns every team.
func WinLoss(matches []dataset.Match, n int) []TeamRecord {
	byTeam := make(map[string]*TeamRecord)
	record := func(team string) *TeamRecord {
		r, ok := byTeam[team]
		if !ok {
			r = &TeamRecord{Team: team}
			byTeam[team] = r
		}
		return r
	}

	for _, m := range matches {
		o := HomeOutcome(m)
		if o == Unplayed {
			continue
		}
		record(m.HomeTeam).add(o, true)
		record(m.AwayTeam).add(o.Invert(), false)
	}

	out := make([]TeamRecord, 0, len(byTeam))
	for _, r := range byTeam {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		if out[i].Losses != out[j].Losses {
			return out[i].Losses < out[j].Losses
		}
		return out[i].Team < out[j].Team
	})

	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
