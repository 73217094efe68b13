// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/davetashner/matchplot/internal/mcpserver"
)

// mcpCmd is the parent command for MCP-related subcommands.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server commands",
	Long:  "Commands for running matchplot as an MCP server, exposing the report and render tools to AI agents.",
}

// mcpServeCmd runs the MCP server over stdio.
var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Start an MCP server on stdin/stdout, exposing matchplot's tools:
  - report: Head-to-head, top scorer, win/loss and shootout tables
  - render: Chart images plus manifest.json and index.html

The server communicates using the Model Context Protocol (MCP) over stdio
transport. Logs go to stderr so they never corrupt the protocol stream.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return mcpserver.Run(cmd.Context(), Version, &mcp.StdioTransport{})
	},
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
}
