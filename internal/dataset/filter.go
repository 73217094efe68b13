// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package dataset

// DefaultTournaments is the tournament filter applied to results when none
// is configured.
var DefaultTournaments = []string{"FIFA World Cup", "UEFA Euro"}

// FilterTournaments returns the matches whose tournament is one of names.
// An empty names list keeps every match. The input is not modified.
func FilterTournaments(matches []Match, names []string) []Match {
	if len(names) == 0 {
		out := make([]Match, len(matches))
		copy(out, matches)
		return out
	}

	keep := make(map[string]bool, len(names))
	for _, n := range names {
		keep[n] = true
	}

	out := make([]Match, 0, len(matches))
	for _, m := range matches {
		if keep[m.Tournament] {
			out = append(out, m)
		}
	}
	return out
}

// FilterResults applies FilterTournaments to the bundle's results table in
// place. An absent results table stays absent.
func (b *Bundle) FilterResults(names []string) {
	if b == nil || b.Results == nil {
		return
	}
	b.Results = &Table[Match]{
		Path: b.Results.Path,
		Rows: FilterTournaments(b.Results.Rows, names),
	}
}
