// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Alignment controls how a column's content is justified.
type Alignment int

const (
	// AlignLeft pads on the right (default).
	AlignLeft Alignment = iota
	// AlignRight pads on the left.
	AlignRight
)

// ColorFunc maps a cell value to a colored string. If nil, no color is applied.
type ColorFunc func(value string) string

// Column describes a single table column.
type Column struct {
	Header string
	Align  Alignment
	Color  ColorFunc // optional per-cell color function
}

// Table renders aligned text tables to an io.Writer. Widths are measured
// in runes so accented player and team names line up.
type Table struct {
	columns []Column
	rows    [][]string
}

// NewTable creates a table with the given column definitions.
func NewTable(columns ...Column) *Table {
	return &Table{columns: columns}
}

// AddRow appends a row. Values beyond the column count are silently ignored;
// missing values are treated as empty strings.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.columns))
	for i := range row {
		if i < len(values) {
			row[i] = values[i]
		}
	}
	t.rows = append(t.rows, row)
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

// Render writes the table to w with computed column widths.
func (t *Table) Render(w io.Writer) error {
	if len(t.columns) == 0 {
		return nil
	}

	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = width(col.Header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if n := width(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	header := make([]string, len(t.columns))
	for i, col := range t.columns {
		header[i] = colorBold.Sprint(pad(col.Header, col.Header, widths[i], col.Align))
	}
	if err := writeLine(w, header); err != nil {
		return err
	}

	sep := make([]string, len(t.columns))
	for i, n := range widths {
		sep[i] = strings.Repeat("-", n)
	}
	if err := writeLine(w, sep); err != nil {
		return err
	}

	for _, row := range t.rows {
		cells := make([]string, len(t.columns))
		for i, col := range t.columns {
			display := row[i]
			if col.Color != nil {
				display = col.Color(row[i])
			}
			// Padding is based on the raw value, not the ANSI-colored one.
			cells[i] = pad(display, row[i], widths[i], col.Align)
		}
		if err := writeLine(w, cells); err != nil {
			return err
		}
	}
	return nil
}

func width(s string) int { return utf8.RuneCountInString(s) }

func pad(display, raw string, n int, align Alignment) string {
	fill := n - width(raw)
	if fill < 0 {
		fill = 0
	}
	if align == AlignRight {
		return strings.Repeat(" ", fill) + display
	}
	return display + strings.Repeat(" ", fill)
}

func writeLine(w io.Writer, cells []string) error {
	if _, err := fmt.Fprintf(w, "  %s\n", strings.TrimRight(strings.Join(cells, "  "), " ")); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}
