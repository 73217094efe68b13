// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"golang.org/x/sync/errgroup"
)

// ErrMissingColumns indicates a CSV header lacks columns a record type needs.
var ErrMissingColumns = errors.New("missing required columns")

var utf8BOM = []byte("\xef\xbb\xbf")

// Default file names inside a data directory.
const (
	ResultsFile   = "results.csv"
	GoalsFile     = "goalscorers.csv"
	ShootoutsFile = "shootouts.csv"
)

// Load reads a CSV file into a table of T. If the file does not exist it
// logs a warning and returns a nil table and nil error; every other failure
// is returned.
func Load[T Record](path string) (*Table[T], error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided data path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Warn("data file not found", "path", path)
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	data = bytes.TrimPrefix(data, utf8BOM)

	var zero T
	if err := checkHeader(data, zero.RequiredColumns()); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	rows := []T{}
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	slog.Debug("loaded data file", "path", path, "rows", len(rows))
	return &Table[T]{Path: path, Rows: rows}, nil
}

// checkHeader verifies the first CSV record contains every required column.
// An empty file has no header and fails the check.
func checkHeader(data []byte, required []string) error {
	r := csv.NewReader(bytes.NewReader(data))
	header, err := r.Read()
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read header: %w", err)
	}

	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[strings.TrimSpace(h)] = true
	}

	var missing []string
	for _, col := range required {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return nil
}

// Paths locates the three input files. An empty path means the table is
// not wanted and is left absent without a warning.
type Paths struct {
	Results   string
	Goals     string
	Shootouts string
}

// DefaultPaths returns the standard file names inside dir.
func DefaultPaths(dir string) Paths {
	return Paths{
		Results:   filepath.Join(dir, ResultsFile),
		Goals:     filepath.Join(dir, GoalsFile),
		Shootouts: filepath.Join(dir, ShootoutsFile),
	}
}

// Bundle holds the loaded tables. A nil field means the file was absent.
type Bundle struct {
	Results   *Table[Match]
	Goals     *Table[Goal]
	Shootouts *Table[Shootout]
}

// Empty reports whether no table was loaded.
func (b *Bundle) Empty() bool {
	return b == nil || (b.Results == nil && b.Goals == nil && b.Shootouts == nil)
}

// LoadBundle loads the three tables concurrently. The first hard error
// cancels the remaining loads.
func LoadBundle(ctx context.Context, paths Paths) (*Bundle, error) {
	var b Bundle
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		t, err := loadPath[Match](gctx, paths.Results)
		b.Results = t
		return err
	})
	g.Go(func() error {
		t, err := loadPath[Goal](gctx, paths.Goals)
		b.Goals = t
		return err
	})
	g.Go(func() error {
		t, err := loadPath[Shootout](gctx, paths.Shootouts)
		b.Shootouts = t
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &b, nil
}

func loadPath[T Record](ctx context.Context, path string) (*Table[T], error) {
	if path == "" {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Load[T](path)
}
