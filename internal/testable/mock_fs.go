// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package testable

import "os"

// MockFileSystem calls the matching function field when it is set and
// falls through to OsFileSystem otherwise, so a test overrides only the
// call it wants to fail.
type MockFileSystem struct {
	AbsFn          func(path string) (string, error)
	EvalSymlinksFn func(path string) (string, error)
	StatFn         func(name string) (os.FileInfo, error)
	WriteFileFn    func(name string, data []byte, perm os.FileMode) error
	ReadFileFn     func(name string) ([]byte, error)
	MkdirAllFn     func(path string, perm os.FileMode) error
}

var osFS OsFileSystem

func (m *MockFileSystem) Abs(path string) (string, error) {
	if m.AbsFn != nil {
		return m.AbsFn(path)
	}
	return osFS.Abs(path)
}

func (m *MockFileSystem) EvalSymlinks(path string) (string, error) {
	if m.EvalSymlinksFn != nil {
		return m.EvalSymlinksFn(path)
	}
	return osFS.EvalSymlinks(path)
}

func (m *MockFileSystem) Stat(name string) (os.FileInfo, error) {
	if m.StatFn != nil {
		return m.StatFn(name)
	}
	return osFS.Stat(name)
}

func (m *MockFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	if m.WriteFileFn != nil {
		return m.WriteFileFn(name, data, perm)
	}
	return osFS.WriteFile(name, data, perm)
}

func (m *MockFileSystem) ReadFile(name string) ([]byte, error) {
	if m.ReadFileFn != nil {
		return m.ReadFileFn(name)
	}
	return osFS.ReadFile(name)
}

func (m *MockFileSystem) MkdirAll(path string, perm os.FileMode) error {
	if m.MkdirAllFn != nil {
		return m.MkdirAllFn(path, perm)
	}
	return osFS.MkdirAll(path, perm)
}

var _ FileSystem = (*MockFileSystem)(nil)
