// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/davetashner/matchplot/internal/report"
)

// sectionsCmd lists the registered report sections.
var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List available report sections",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		tbl := report.NewTable(
			report.Column{Header: "Section"},
			report.Column{Header: "Description"},
		)
		for _, name := range report.List() {
			sec := report.Get(name)
			tbl.AddRow(name, sec.Description())
		}
		return tbl.Render(cmd.OutOrStdout())
	},
}
