// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

// Package chart builds gonum/plot charts from the aggregates in package
// stats and writes them as image files.
package chart

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// ErrNoData is returned when an aggregate has nothing to draw.
var ErrNoData = errors.New("no data to plot")

// DefaultFormat is the image format used when none is configured.
const DefaultFormat = "png"

// Formats lists the image formats gonum/plot can write, by file extension.
var Formats = []string{"png", "svg", "pdf", "jpg", "jpeg", "tif", "tiff", "eps"}

// ValidFormat reports whether format is one of Formats.
func ValidFormat(format string) bool {
	format = strings.ToLower(format)
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Options tunes chart output. Zero values fall back to per-chart defaults.
type Options struct {
	// Width and Height override the chart's default canvas size.
	Width, Height vg.Length

	// Palette is a ColorBrewer sequential palette name used by the heatmap.
	Palette string
}

// Chart is a built plot together with the canvas size it should be drawn at.
type Chart struct {
	Plot   *plot.Plot
	Width  vg.Length
	Height vg.Length
}

func newChart(p *plot.Plot, width, height vg.Length, opts Options) *Chart {
	if opts.Width > 0 {
		width = opts.Width
	}
	if opts.Height > 0 {
		height = opts.Height
	}
	return &Chart{Plot: p, Width: width, Height: height}
}

// Save writes the chart to path. The format follows the file extension.
func (c *Chart) Save(path string) error {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if !ValidFormat(ext) {
		return fmt.Errorf("unsupported chart format %q", ext)
	}
	if err := c.Plot.Save(c.Width, c.Height, path); err != nil {
		return fmt.Errorf("save chart %s: %w", path, err)
	}
	return nil
}

// Encode writes the chart to w in the given format.
func (c *Chart) Encode(w io.Writer, format string) error {
	if !ValidFormat(format) {
		return fmt.Errorf("unsupported chart format %q", format)
	}
	wt, err := c.Plot.WriterTo(c.Width, c.Height, strings.ToLower(format))
	if err != nil {
		return fmt.Errorf("create chart writer: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	return nil
}
