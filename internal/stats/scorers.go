// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package stats

import (
	"sort"
	"strings"

	"github.com/davetashner/matchplot/internal/dataset"
)

// DefaultTopScorers is the scorer ranking length.
const DefaultTopScorers = 10

// ScorerTally is one line of the scorer ranking.
type ScorerTally struct {
	Scorer    string `json:"scorer"`
	Goals     int    `json:"goals"`
	Penalties int    `json:"penalties"`
}

// TopScorers counts goals per scorer, excluding own goals and rows with no
// scorer name (blank, NA or NaN), and returns the n highest sorted by goals descending then
// name. n <= 0 returns every scorer.
func TopScorers(goals []dataset.Goal, n int) []ScorerTally {
	byScorer := make(map[string]*ScorerTally)
	for _, g := range goals {
		if g.OwnGoal {
			continue
		}
		name := strings.TrimSpace(g.Scorer)
		if name == "" || strings.EqualFold(name, "NA") || strings.EqualFold(name, "NaN") {
			continue
		}
		st, ok := byScorer[name]
		if !ok {
			st = &ScorerTally{Scorer: name}
			byScorer[name] = st
		}
		st.Goals++
		if g.Penalty {
			st.Penalties++
		}
	}

	out := make([]ScorerTally, 0, len(byScorer))
	for _, st := range byScorer {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Goals != out[j].Goals {
			return out[i].Goals > out[j].Goals
		}
		return out[i].Scorer < out[j].Scorer
	})

	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
