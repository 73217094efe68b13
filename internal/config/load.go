// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads the config file from the given data directory, preferring
// .matchplot.yaml over .matchplot.toml. If neither exists, it returns a
// zero-value Config and nil error.
func Load(dir string) (*Config, error) {
	for _, name := range []string{FileName, TOMLFileName} {
		cfg, err := LoadFile(filepath.Join(dir, name))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return cfg, err
	}
	return &Config{}, nil
}

// LoadFile reads a single config file, choosing the decoder by extension
// (.toml for TOML, anything else YAML).
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided data path
	if err != nil {
		return nil, err
	}

	var cfg Config
	if filepath.Ext(path) == ".toml" {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.Path = path
	return &cfg, nil
}

// Write marshals the config to YAML and writes it to w.
func Write(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close() //nolint:errcheck // best-effort close
	enc.SetIndent(2)
	return enc.Encode(cfg)
}

// WriteTOML marshals the config to TOML and writes it to w.
func WriteTOML(w io.Writer, cfg *Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}
