// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package report

import (
	"github.com/fatih/color"
)

// Shared color printers for report sections.
var (
	colorRed    = color.New(color.FgRed)
	colorYellow = color.New(color.FgYellow)
	colorGreen  = color.New(color.FgGreen)
	colorCyan   = color.New(color.FgCyan)
	colorBold   = color.New(color.Bold)
)

// SectionTitle renders a bold section title.
func SectionTitle(title string) string {
	return colorBold.Sprint(title)
}

// ColorWins colors a win count.
func ColorWins(val string) string {
	if val == "0" {
		return val
	}
	return colorGreen.Sprint(val)
}

// ColorLosses colors a loss count.
func ColorLosses(val string) string {
	if val == "0" {
		return val
	}
	return colorRed.Sprint(val)
}

// ColorHighlight colors the leading figure of a ranking.
func ColorHighlight(val string) string {
	return colorCyan.Sprint(val)
}

// ColorStatus colors section statuses.
func ColorStatus(val string) string {
	switch Status(val) {
	case StatusOK:
		return colorGreen.Sprint(val)
	case StatusSkipped:
		return colorYellow.Sprint(val)
	default:
		return val
	}
}
