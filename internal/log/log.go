// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

// Package log configures structured logging for matchplot using log/slog.
package log

import (
	"io"
	"log/slog"
	"os"
)

// Level maps the verbosity flags to a slog level. Quiet wins over verbose.
//
//   - quiet:   WARN and ERROR only (missing data files still show)
//   - default: INFO and above
//   - verbose: DEBUG and above
func Level(verbose, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelWarn
	case verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// Setup installs a text logger on stderr as the slog default.
func Setup(verbose, quiet bool) {
	SetupWriter(os.Stderr, verbose, quiet)
}

// SetupWriter installs a text logger writing to w as the slog default.
func SetupWriter(w io.Writer, verbose, quiet bool) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: Level(verbose, quiet),
	})
	slog.SetDefault(slog.New(handler))
}
