// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"
)

// Header describes the run a report was produced from.
type Header struct {
	DataDir  string
	Duration time.Duration
	Tables   []TableSummary
}

// TableSummary describes one loaded CSV table.
type TableSummary struct {
	Name   string `json:"name"`
	Path   string `json:"path,omitempty"`
	Rows   int    `json:"rows"`
	Loaded bool   `json:"loaded"`
}

// ReportJSON is the top-level JSON structure for --format json output.
type ReportJSON struct {
	DataDir   string         `json:"data_dir"`
	Generated string         `json:"generated"`
	Duration  string         `json:"duration"`
	Tables    []TableSummary `json:"tables"`
	Sections  []SectionJSON  `json:"sections,omitempty"`
}

// SectionJSON is the JSON representation of a single report section.
type SectionJSON struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"` // "ok", "skipped"
	Reason      string `json:"reason,omitempty"`
	Data        any    `json:"data,omitempty"`
	Content     string `json:"content,omitempty"` // rendered text
}

// RenderJSON writes analyzed outcomes as machine-readable JSON.
func RenderJSON(h Header, outcomes []Outcome, w io.Writer) error {
	out := ReportJSON{
		DataDir:   h.DataDir,
		Generated: time.Now().Format(time.RFC3339),
		Duration:  h.Duration.Round(time.Millisecond).String(),
		Tables:    h.Tables,
	}

	for _, o := range outcomes {
		sj := SectionJSON{
			Name:        o.Section.Name(),
			Description: o.Section.Description(),
			Status:      string(o.Status),
			Reason:      o.Reason,
		}
		if o.Status == StatusOK {
			if dp, ok := o.Section.(DataProvider); ok {
				sj.Data = dp.Data()
			}
			var buf bytes.Buffer
			if err := o.Section.Render(&buf); err != nil {
				return fmt.Errorf("section %s render: %w", sj.Name, err)
			}
			sj.Content = buf.String()
		}
		out.Sections = append(out.Sections, sj)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON marshal: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// RenderText writes the human-readable report: a summary of the loaded
// tables followed by every analyzed section.
func RenderText(h Header, outcomes []Outcome, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "%s %s\n", SectionTitle("Football Report:"), h.DataDir)
	_, _ = fmt.Fprintf(w, "Generated: %s (%s)\n\n",
		time.Now().Format("2006-01-02 15:04:05"),
		h.Duration.Round(time.Millisecond))

	tbl := NewTable(
		Column{Header: "Table"},
		Column{Header: "Rows", Align: AlignRight},
		Column{Header: "Status", Color: ColorStatus},
	)
	for _, t := range h.Tables {
		status, rows := string(StatusOK), strconv.Itoa(t.Rows)
		if !t.Loaded {
			status, rows = "missing", "-"
		}
		tbl.AddRow(t.Name, rows, status)
	}
	if tbl.Len() > 0 {
		if err := tbl.Render(w); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "\n")
	}

	for _, o := range outcomes {
		if o.Status == StatusSkipped {
			_, _ = fmt.Fprintf(w, "%s %s\n\n", SectionTitle(o.Section.Name()+":"), ColorStatus(string(StatusSkipped)))
			continue
		}
		if err := o.Section.Render(w); err != nil {
			return fmt.Errorf("section %s render: %w", o.Section.Name(), err)
		}
	}
	return nil
}
