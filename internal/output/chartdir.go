// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

// Package output writes rendered charts to a directory together with a
// JSON manifest and an HTML index page.
package output

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/davetashner/matchplot/internal/chart"
	"github.com/davetashner/matchplot/internal/pipeline"
	"github.com/davetashner/matchplot/internal/report"
	"github.com/davetashner/matchplot/internal/testable"
)

const (
	// ManifestFile lists the charts written by a run.
	ManifestFile = "manifest.json"
	// IndexFile is the HTML gallery of the charts.
	IndexFile = "index.html"
)

// ChartDir writes charts for a pipeline result.
type ChartDir struct {
	fs      testable.FileSystem
	nowFunc func() time.Time
	idFunc  func() string
}

// NewChartDir returns a ChartDir stamping manifests with the current time
// and a random run id.
func NewChartDir() *ChartDir {
	return &ChartDir{fs: testable.DefaultFS}
}

var (
	indexTmplOnce sync.Once
	indexTmpl     *template.Template
)

// WriteChartDir renders every analyzed section that can chart into dir
// using a default ChartDir.
func WriteChartDir(dir string, res *pipeline.Result) (*Manifest, error) {
	return NewChartDir().Write(dir, res)
}

// Write renders each chartable section to <dir>/<section>.<format>, then
// writes manifest.json and index.html. Sections that were skipped or have
// nothing to plot are listed in the manifest instead of failing the run.
func (c *ChartDir) Write(dir string, res *pipeline.Result) (*Manifest, error) {
	format := strings.ToLower(res.Config.ChartFormat)
	if format == "" {
		format = chart.DefaultFormat
	}
	if !chart.ValidFormat(format) {
		return nil, fmt.Errorf("unsupported chart format %q", format)
	}

	if err := c.fs.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	m := &Manifest{
		RunID:     c.runID(),
		Generated: c.now().UTC().Format(time.RFC3339),
		DataDir:   res.Config.DataDir,
		Format:    format,
	}

	for _, o := range res.Outcomes {
		name := o.Section.Name()
		if o.Status != report.StatusOK {
			m.Skipped = append(m.Skipped, SkippedChart{Section: name, Reason: o.Reason})
			continue
		}
		charter, ok := o.Section.(report.Charter)
		if !ok {
			continue
		}

		ch, err := charter.Chart(res.Config.Chart)
		if errors.Is(err, chart.ErrNoData) {
			slog.Info("nothing to chart", "section", name)
			m.Skipped = append(m.Skipped, SkippedChart{Section: name, Reason: err.Error()})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("chart %s: %w", name, err)
		}

		var buf bytes.Buffer
		if err := ch.Encode(&buf, format); err != nil {
			return nil, fmt.Errorf("chart %s: %w", name, err)
		}
		file := name + "." + format
		if err := c.fs.WriteFile(filepath.Join(dir, file), buf.Bytes(), 0o600); err != nil {
			return nil, fmt.Errorf("chart %s: %w", name, err)
		}
		slog.Info("chart written", "section", name, "path", filepath.Join(dir, file))
		m.Charts = append(m.Charts, ChartFile{
			Section:     name,
			Description: o.Section.Description(),
			File:        file,
		})
	}

	if err := writeManifest(c.fs, filepath.Join(dir, ManifestFile), m); err != nil {
		return nil, err
	}
	if err := writeIndex(c.fs, filepath.Join(dir, IndexFile), m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *ChartDir) now() time.Time {
	if c.nowFunc != nil {
		return c.nowFunc()
	}
	return time.Now()
}

func (c *ChartDir) runID() string {
	if c.idFunc != nil {
		return c.idFunc()
	}
	return uuid.NewString()
}

func writeIndex(fsys testable.FileSystem, path string, m *Manifest) error {
	indexTmplOnce.Do(func() {
		indexTmpl = template.Must(template.New("index").Parse(indexTemplate))
	})

	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, m); err != nil {
		return fmt.Errorf("execute index template: %w", err)
	}
	if err := fsys.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", IndexFile, err)
	}
	return nil
}
