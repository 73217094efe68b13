// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/davetashner/matchplot/internal/config"
	"github.com/davetashner/matchplot/internal/output"
	"github.com/davetashner/matchplot/internal/pipeline"
	"github.com/davetashner/matchplot/internal/report"
)

// DataInput selects and filters the data both tools analyze.
type DataInput struct {
	Path           string `json:"path" jsonschema:"Data directory holding results.csv, goalscorers.csv and shootouts.csv (defaults to current directory)"`
	Sections       string `json:"sections,omitempty" jsonschema:"Comma-separated list of sections (default: all)"`
	Tournaments    string `json:"tournaments,omitempty" jsonschema:"Comma-separated tournament names to keep (default: FIFA World Cup, UEFA Euro)"`
	AllTournaments bool   `json:"all_tournaments,omitempty" jsonschema:"Keep every tournament"`
	TopTeams       int    `json:"top_teams,omitempty" jsonschema:"Teams on the head-to-head axes (default 15)"`
	TopScorers     int    `json:"top_scorers,omitempty" jsonschema:"Players in the scorer ranking (default 10)"`
	TopRecords     int    `json:"top_records,omitempty" jsonschema:"Teams in the win/loss and shootout tables (default 15)"`
}

// ReportInput is the input schema for the matchplot report MCP tool.
type ReportInput struct {
	DataInput
	Format string `json:"format,omitempty" jsonschema:"Output format: json or text (default: json)"`
}

// RenderInput is the input schema for the matchplot render MCP tool.
type RenderInput struct {
	DataInput
	OutDir      string `json:"out_dir,omitempty" jsonschema:"Chart directory, relative to the data directory unless absolute (default: charts)"`
	ChartFormat string `json:"chart_format,omitempty" jsonschema:"Image format: png, svg, pdf, jpg, tif or eps (default: png)"`
	Palette     string `json:"palette,omitempty" jsonschema:"ColorBrewer sequential palette for the heatmap (default: Blues)"`
}

// runMu serializes tool calls: report sections are shared singletons.
var runMu sync.Mutex

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

// registerTools adds all matchplot tools to the MCP server.
func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "report",
		Description: "Summarize international football results: head-to-head counts, top scorers, win/loss records and penalty shootouts.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, handleReport)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render",
		Description: "Render the football statistics as chart images with a manifest.json and index.html. Returns the manifest.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    false,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, handleRender)
}

func handleReport(ctx context.Context, _ *mcp.CallToolRequest, input ReportInput) (*mcp.CallToolResult, any, error) {
	format := "json"
	if input.Format != "" {
		format = input.Format
	}
	if format != "json" && format != "text" {
		return nil, nil, fmt.Errorf("unsupported format %q", format)
	}

	cfg, err := buildConfig(input.DataInput, nil)
	if err != nil {
		return nil, nil, err
	}

	runMu.Lock()
	defer runMu.Unlock()

	res, err := pipeline.Run(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("pipeline: %w", err)
	}

	var buf bytes.Buffer
	if format == "text" {
		err = report.RenderText(res.Header(), res.Outcomes, &buf)
	} else {
		err = report.RenderJSON(res.Header(), res.Outcomes, &buf)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("render report: %w", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: buf.String()}},
	}, nil, nil
}

func handleRender(ctx context.Context, _ *mcp.CallToolRequest, input RenderInput) (*mcp.CallToolResult, any, error) {
	cfg, err := buildConfig(input.DataInput, func(cfg *pipeline.Config, set map[string]bool) {
		if input.OutDir != "" {
			cfg.OutDir = input.OutDir
			set["out"] = true
		}
		if input.ChartFormat != "" {
			cfg.ChartFormat = input.ChartFormat
			set["chart-format"] = true
		}
		if input.Palette != "" {
			cfg.Chart.Palette = input.Palette
			set["palette"] = true
		}
	})
	if err != nil {
		return nil, nil, err
	}

	runMu.Lock()
	defer runMu.Unlock()

	res, err := pipeline.Run(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("pipeline: %w", err)
	}

	m, err := output.WriteChartDir(config.ResolvePath(cfg.DataDir, cfg.OutDir), res)
	if err != nil {
		return nil, nil, fmt.Errorf("render charts: %w", err)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("marshal manifest: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil, nil
}

// buildConfig resolves the data directory, applies tool arguments over the
// defaults and merges the directory's config file beneath them. extra may
// apply tool-specific arguments, recording each in set.
func buildConfig(input DataInput, extra func(cfg *pipeline.Config, set map[string]bool)) (pipeline.Config, error) {
	dir, err := ResolvePath(input.Path)
	if err != nil {
		return pipeline.Config{}, err
	}

	fileCfg, err := config.LoadLayered(dir)
	if err != nil {
		return pipeline.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.Validate(fileCfg); err != nil {
		return pipeline.Config{}, err
	}

	cfg := pipeline.DefaultConfig(dir)
	set := make(map[string]bool)

	if input.Sections != "" {
		cfg.Sections = splitAndTrim(input.Sections)
		set["sections"] = true
	}
	if input.Tournaments != "" {
		cfg.Tournaments = splitAndTrim(input.Tournaments)
		set["tournament"] = true
	}
	if input.AllTournaments {
		cfg.AllTournaments = true
		set["all-tournaments"] = true
	}
	if input.TopTeams != 0 {
		cfg.Limits.TopTeams = input.TopTeams
		set["top-teams"] = true
	}
	if input.TopScorers != 0 {
		cfg.Limits.TopScorers = input.TopScorers
		set["top-scorers"] = true
	}
	if input.TopRecords != 0 {
		cfg.Limits.TopRecords = input.TopRecords
		set["top-records"] = true
	}
	if extra != nil {
		extra(&cfg, set)
	}

	cfg = config.Merge(fileCfg, cfg, func(flag string) bool { return set[flag] })
	if errs := pipeline.Validate(cfg); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return pipeline.Config{}, fmt.Errorf("invalid arguments: %s", strings.Join(msgs, "; "))
	}
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace from each element.
func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
