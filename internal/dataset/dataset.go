// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

// Package dataset defines the match, goal and shootout record types and
// loads them from CSV files.
package dataset

// Match is one row of results.csv.
type Match struct {
	Date       string  `csv:"date"`
	HomeTeam   string  `csv:"home_team"`
	AwayTeam   string  `csv:"away_team"`
	HomeScore  NullInt `csv:"home_score"`
	AwayScore  NullInt `csv:"away_score"`
	Tournament string  `csv:"tournament"`
	City       string  `csv:"city"`
	Country    string  `csv:"country"`
	Neutral    bool    `csv:"neutral"`
}

// RequiredColumns lists the results.csv headers the aggregations read.
func (Match) RequiredColumns() []string {
	return []string{"home_team", "away_team", "home_score", "away_score", "tournament"}
}

// Played reports whether both scores are present.
func (m Match) Played() bool {
	return m.HomeScore.Valid && m.AwayScore.Valid
}

// Goal is one row of goalscorers.csv.
type Goal struct {
	Date     string  `csv:"date"`
	HomeTeam string  `csv:"home_team"`
	AwayTeam string  `csv:"away_team"`
	Team     string  `csv:"team"`
	Scorer   string  `csv:"scorer"`
	Minute   NullInt `csv:"minute"`
	OwnGoal  bool    `csv:"own_goal"`
	Penalty  bool    `csv:"penalty"`
}

// RequiredColumns lists the goalscorers.csv headers the aggregations read.
func (Goal) RequiredColumns() []string {
	return []string{"scorer", "own_goal"}
}

// Shootout is one row of shootouts.csv.
type Shootout struct {
	Date         string `csv:"date"`
	HomeTeam     string `csv:"home_team"`
	AwayTeam     string `csv:"away_team"`
	Winner       string `csv:"winner"`
	FirstShooter string `csv:"first_shooter"`
}

// RequiredColumns lists the shootouts.csv headers the aggregations read.
func (Shootout) RequiredColumns() []string {
	return []string{"home_team", "away_team", "winner"}
}

// Record is implemented by every row type Load accepts.
type Record interface {
	RequiredColumns() []string
}

// Table is a loaded CSV file.
type Table[T Record] struct {
	Path string
	Rows []T
}

// Len returns the number of rows, treating a nil table as empty.
func (t *Table[T]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}
