// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/davetashner/matchplot/internal/stats"
)

// TopScorers draws the scorer ranking as horizontal bars, top scorer on top.
func TopScorers(tallies []stats.ScorerTally, opts Options) (*Chart, error) {
	if len(tallies) == 0 {
		return nil, fmt.Errorf("top scorers: %w", ErrNoData)
	}

	n := len(tallies)
	values := make(plotter.Values, n)
	names := make([]string, n)
	for i, t := range tallies {
		values[n-1-i] = float64(t.Goals)
		names[n-1-i] = t.Scorer
	}

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return nil, fmt.Errorf("top scorers bars: %w", err)
	}
	bars.Horizontal = true
	bars.Color = plotutil.Color(2)
	bars.LineStyle.Width = 0

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Top %d goal scorers", n)
	p.X.Label.Text = "Goals"
	p.Y.Label.Text = "Player"
	p.X.Min = 0
	p.Add(verticalGrid(), bars)
	p.NominalY(names...)

	return newChart(p, 10*vg.Inch, 6*vg.Inch, opts), nil
}

// WinLoss draws wins and losses per team as grouped horizontal bars.
func WinLoss(records []stats.TeamRecord, opts Options) (*Chart, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("win/loss: %w", ErrNoData)
	}

	n := len(records)
	wins := make(plotter.Values, n)
	losses := make(plotter.Values, n)
	names := make([]string, n)
	for i, r := range records {
		wins[n-1-i] = float64(r.Wins)
		losses[n-1-i] = float64(r.Losses)
		names[n-1-i] = r.Team
	}

	p, err := groupedBars(names, "Wins", wins, "Losses", losses)
	if err != nil {
		return nil, fmt.Errorf("win/loss: %w", err)
	}
	p.Title.Text = "Wins and losses by team"
	p.X.Label.Text = "Matches"
	p.Y.Label.Text = "Team"

	return newChart(p, 12*vg.Inch, 8*vg.Inch, opts), nil
}

// Shootouts draws shootouts won and lost per team as grouped horizontal bars.
func Shootouts(records []stats.ShootoutRecord, opts Options) (*Chart, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("shootouts: %w", ErrNoData)
	}

	n := len(records)
	won := make(plotter.Values, n)
	lost := make(plotter.Values, n)
	names := make([]string, n)
	for i, r := range records {
		won[n-1-i] = float64(r.Won)
		lost[n-1-i] = float64(r.Lost)
		names[n-1-i] = r.Team
	}

	p, err := groupedBars(names, "Won", won, "Lost", lost)
	if err != nil {
		return nil, fmt.Errorf("shootouts: %w", err)
	}
	p.Title.Text = "Penalty shootouts by team"
	p.X.Label.Text = "Shootouts"
	p.Y.Label.Text = "Team"

	return newChart(p, 12*vg.Inch, 8*vg.Inch, opts), nil
}

func groupedBars(names []string, firstName string, first plotter.Values, secondName string, second plotter.Values) (*plot.Plot, error) {
	w := vg.Points(10)

	a, err := plotter.NewBarChart(first, w)
	if err != nil {
		return nil, err
	}
	a.Horizontal = true
	a.Offset = -w / 2
	a.Color = plotutil.Color(0)
	a.LineStyle.Width = 0

	b, err := plotter.NewBarChart(second, w)
	if err != nil {
		return nil, err
	}
	b.Horizontal = true
	b.Offset = w / 2
	b.Color = plotutil.Color(1)
	b.LineStyle.Width = 0

	p := plot.New()
	p.X.Min = 0
	p.Add(verticalGrid(), a, b)
	p.Legend.Add(firstName, a)
	p.Legend.Add(secondName, b)
	p.Legend.Top = true
	p.NominalY(names...)
	return p, nil
}

// verticalGrid returns dashed grid lines along the value axis only.
func verticalGrid() *plotter.Grid {
	g := plotter.NewGrid()
	g.Horizontal.Color = nil
	g.Vertical.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	return g
}
