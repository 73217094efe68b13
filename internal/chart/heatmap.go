// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/davetashner/matchplot/internal/stats"
)

// DefaultPalette is the heatmap color scale.
const DefaultPalette = "Blues"

const paletteSize = 9

// ValidPalette reports whether name is a ColorBrewer sequential palette.
func ValidPalette(name string) bool {
	_, err := brewer.GetPalette(brewer.TypeSequential, name, paletteSize)
	return err == nil
}

// matrixGrid adapts a Matrix to plotter.GridXYZ. Row r of the grid holds
// team len-1-r so the first team is drawn at the top.
type matrixGrid struct {
	m *stats.Matrix
}

func (g matrixGrid) Dims() (c, r int) {
	n := g.m.Len()
	return n, n
}

func (g matrixGrid) Z(c, r int) float64 {
	return float64(g.m.Counts[g.row(r)][c])
}

func (g matrixGrid) X(c int) float64 { return float64(c) }
func (g matrixGrid) Y(r int) float64 { return float64(r) }

func (g matrixGrid) row(r int) int { return g.m.Len() - 1 - r }

// Heatmap draws the head-to-head matrix as a color-graded grid with every
// cell annotated by its count.
func Heatmap(m *stats.Matrix, opts Options) (*Chart, error) {
	if m.Len() == 0 {
		return nil, fmt.Errorf("heatmap: %w", ErrNoData)
	}

	name := opts.Palette
	if name == "" {
		name = DefaultPalette
	}
	var pal palette.Palette
	pal, err := brewer.GetPalette(brewer.TypeSequential, name, paletteSize)
	if err != nil {
		return nil, fmt.Errorf("heatmap palette %q: %w", name, err)
	}

	grid := matrixGrid{m: m}
	hm := plotter.NewHeatMap(grid, pal)
	hm.Min = 0
	hm.Max = math.Max(1, float64(m.Max()))

	labels, err := cellLabels(grid, hm.Max)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = "Head-to-head between major nations"
	p.X.Label.Text = "Team"
	p.Y.Label.Text = "Team"
	p.Add(hm, labels)

	xTicks := make([]plot.Tick, m.Len())
	yTicks := make([]plot.Tick, m.Len())
	for i := range m.Teams {
		xTicks[i] = plot.Tick{Value: float64(i), Label: m.Teams[i]}
		yTicks[i] = plot.Tick{Value: float64(i), Label: m.Teams[grid.row(i)]}
	}
	p.X.Tick.Marker = plot.ConstantTicks(xTicks)
	p.Y.Tick.Marker = plot.ConstantTicks(yTicks)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter

	return newChart(p, 12*vg.Inch, 10*vg.Inch, opts), nil
}

// cellLabels annotates each heatmap cell. Counts in the darker upper half
// of the scale are written in white.
func cellLabels(g matrixGrid, maxValue float64) (*plotter.Labels, error) {
	cols, rows := g.Dims()
	xys := make(plotter.XYs, 0, cols*rows)
	values := make([]float64, 0, cols*rows)
	names := make([]string, 0, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := g.Z(c, r)
			xys = append(xys, plotter.XY{X: g.X(c), Y: g.Y(r)})
			values = append(values, v)
			names = append(names, strconv.Itoa(int(v)))
		}
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: names})
	if err != nil {
		return nil, fmt.Errorf("heatmap labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YCenter
		if values[i] > maxValue/2 {
			labels.TextStyle[i].Color = color.White
		}
	}
	return labels, nil
}
