// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package main

import "fmt"

// Exit codes for matchplot CLI.
const (
	ExitOK             = 0 // Every selected section produced output.
	ExitInvalidArgs    = 1 // Invalid arguments, bad path or bad config.
	ExitPartialFailure = 2 // Some sections skipped because their CSV was absent.
	ExitTotalFailure   = 3 // No output produced.
)

// exitCodeError carries a process exit code through cobra's error return.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message is
// set to a generic description of the exit code.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitPartialFailure:
			msg = "matchplot: some sections were skipped"
		case ExitTotalFailure:
			msg = "matchplot: no data loaded"
		default:
			msg = "matchplot: error"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
