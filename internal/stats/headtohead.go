// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

// Package stats computes the derived tables behind each visualization:
// head-to-head counts, top scorers, win/loss records and shootout records.
// Every function is pure and leaves its input untouched.
package stats

import (
	"sort"

	"github.com/davetashner/matchplot/internal/dataset"
)

// DefaultTopTeams is the head-to-head team limit.
const DefaultTopTeams = 15

// Pair is an unordered fixture key. A <= B always holds, so A-vs-B and
// B-vs-A produce the same Pair.
type Pair struct {
	A, B string
}

// NewPair returns the canonical pair for two team names.
func NewPair(home, away string) Pair {
	if away < home {
		home, away = away, home
	}
	return Pair{A: home, B: away}
}

// CountPairs counts matches per unordered pair.
func CountPairs(matches []dataset.Match) map[Pair]int {
	counts := make(map[Pair]int)
	for _, m := range matches {
		counts[NewPair(m.HomeTeam, m.AwayTeam)]++
	}
	return counts
}

// TopTeams returns the n teams that appear in the most distinct pairs,
// ties broken by name. n <= 0 returns every team. The result is sorted by
// frequency, most frequent first.
func TopTeams(counts map[Pair]int, n int) []string {
	freq := make(map[string]int)
	for p := range counts {
		freq[p.A]++
		if p.B != p.A {
			freq[p.B]++
		}
	}

	teams := make([]string, 0, len(freq))
	for t := range freq {
		teams = append(teams, t)
	}
	sort.Slice(teams, func(i, j int) bool {
		if freq[teams[i]] != freq[teams[j]] {
			return freq[teams[i]] > freq[teams[j]]
		}
		return teams[i] < teams[j]
	})

	if n > 0 && len(teams) > n {
		teams = teams[:n]
	}
	return teams
}

// Matrix is a symmetric team x team table of match counts. Row i and
// column i both refer to Teams[i].
type Matrix struct {
	Teams  []string `json:"teams"`
	Counts [][]int  `json:"counts"`
}

// HeadToHead builds the head-to-head matrix restricted to the topN teams
// (see TopTeams). Axes are in name order and unobserved pairs are zero.
func HeadToHead(matches []dataset.Match, topN int) *Matrix {
	counts := CountPairs(matches)
	teams := TopTeams(counts, topN)
	sort.Strings(teams)

	index := make(map[string]int, len(teams))
	for i, t := range teams {
		index[t] = i
	}

	grid := make([][]int, len(teams))
	for i := range grid {
		grid[i] = make([]int, len(teams))
	}

	for p, c := range counts {
		i, okA := index[p.A]
		j, okB := index[p.B]
		if !okA || !okB {
			continue
		}
		grid[i][j] = c
		grid[j][i] = c
	}

	return &Matrix{Teams: teams, Counts: grid}
}

// Len returns the number of teams on each axis.
func (m *Matrix) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Teams)
}

// Count returns the number of matches between teams a and b, or 0 if
// either is not on the axes.
func (m *Matrix) Count(a, b string) int {
	i, j := m.indexOf(a), m.indexOf(b)
	if i < 0 || j < 0 {
		return 0
	}
	return m.Counts[i][j]
}

// Total sums every unordered pair once (the upper triangle including the
// diagonal).
func (m *Matrix) Total() int {
	total := 0
	for i := range m.Counts {
		for j := i; j < len(m.Counts[i]); j++ {
			total += m.Counts[i][j]
		}
	}
	return total
}

// Max returns the largest cell value.
func (m *Matrix) Max() int {
	highest := 0
	for _, row := range m.Counts {
		for _, c := range row {
			if c > highest {
				highest = c
			}
		}
	}
	return highest
}

func (m *Matrix) indexOf(team string) int {
	for i, t := range m.Teams {
		if t == team {
			return i
		}
	}
	return -1
}
