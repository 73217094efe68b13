// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package main

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"report", "render", "sections", "init", "mcp", "version"} {
		assert.True(t, names[want], "%s command should be registered on root", want)
	}
}

func TestRootCmd_NoColorFlag(t *testing.T) {
	resetFlags()
	prev := color.NoColor
	defer func() { color.NoColor = prev }()
	color.NoColor = false

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"version", "--no-color"})
	require.NoError(t, cmd.Execute())
	assert.True(t, color.NoColor)
}

func TestVersionDefault(t *testing.T) {
	assert.Equal(t, "dev", Version)
}

func TestVersionCmd(t *testing.T) {
	resetFlags()
	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "matchplot dev", strings.TrimSpace(stdout.String()))
}

func TestSectionsCmd(t *testing.T) {
	resetFlags()
	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"sections"})
	require.NoError(t, cmd.Execute())

	out := stdout.String()
	for _, name := range []string{"head-to-head", "top-scorers", "win-loss", "shootouts"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "Description")
}

func TestExitError_DefaultMessages(t *testing.T) {
	assert.Equal(t, "matchplot: some sections were skipped", exitError(ExitPartialFailure, "").Error())
	assert.Equal(t, "matchplot: no data loaded", exitError(ExitTotalFailure, "").Error())
	assert.Equal(t, "matchplot: error", exitError(ExitInvalidArgs, "").Error())
	assert.Equal(t, "matchplot: bad 7", exitError(ExitInvalidArgs, "matchplot: bad %d", 7).Error())
}

func TestMCPCmd_IsRegistered(t *testing.T) {
	found := false
	for _, cmd := range mcpCmd.Commands() {
		if cmd.Use == "serve" {
			found = true
			break
		}
	}
	assert.True(t, found, "serve command should be registered on mcpCmd")
}

func TestMCPServeCmd_RejectsArgs(t *testing.T) {
	err := mcpServeCmd.Args(mcpServeCmd, []string{"extra"})
	assert.Error(t, err)
}
