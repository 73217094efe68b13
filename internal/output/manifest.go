// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"

	"github.com/davetashner/matchplot/internal/testable"
)

// Manifest describes one chart rendering run.
type Manifest struct {
	RunID     string         `json:"run_id"`
	Generated string         `json:"generated"`
	DataDir   string         `json:"data_dir"`
	Format    string         `json:"format"`
	Charts    []ChartFile    `json:"charts"`
	Skipped   []SkippedChart `json:"skipped,omitempty"`
}

// ChartFile is a chart written to the output directory.
type ChartFile struct {
	Section     string `json:"section"`
	Description string `json:"description"`
	File        string `json:"file"` // relative to the output directory
}

// SkippedChart is a section that produced no chart.
type SkippedChart struct {
	Section string `json:"section"`
	Reason  string `json:"reason,omitempty"`
}

// ReadManifest loads a manifest written by ChartDir.Write.
func ReadManifest(path string) (*Manifest, error) {
	data, err := testable.DefaultFS.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &m, nil
}

func writeManifest(fsys testable.FileSystem, path string, m *Manifest) error {
	if m.Charts == nil {
		m.Charts = []ChartFile{}
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := fsys.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", ManifestFile, err)
	}
	return nil
}
