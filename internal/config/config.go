// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads brinkc's configuration file.
//
// The configuration file is YAML, and is named brinkc.yaml by default:
//
//	indent: spaces:4   # auto, tab, spaces, or spaces:N
//	color: auto        # auto, always, or never
//	format: text       # text or json
//	recover: false
//	blank_lines: false # skip blank lines between items
//	jobs: 0            # 0 means one per CPU
//	max_errors: 0      # 0 means no limit
//
// Unknown keys are an error.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/brink-lang/brinkc/source"
)

// FileName is the name of the configuration file searched for by [Find].
const FileName = "brinkc.yaml"

// Config is the root of the configuration file.
type Config struct {
	Indent     string `yaml:"indent"`
	Color      string `yaml:"color"`
	Format     string `yaml:"format"`
	Recover    bool   `yaml:"recover"`
	BlankLines bool   `yaml:"blank_lines"`
	Jobs       int    `yaml:"jobs"`
	MaxErrors  int    `yaml:"max_errors"`
}

// Default returns the configuration used when there is no configuration
// file.
func Default() Config {
	return Config{
		Indent: "auto",
		Color:  "auto",
		Format: "text",
	}
}

// Parse parses a configuration file. Keys missing from data take their
// values from [Default].
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the configuration file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Find looks for a configuration file in dir.
//
// Returns the empty string if there is none.
func Find(dir string) string {
	path := filepath.Join(dir, FileName)
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return path
	}
	return ""
}

// Validate checks that every value in this configuration is well-formed.
func (c Config) Validate() error {
	if _, err := c.Indentation(); err != nil {
		return err
	}

	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color %q: expected auto, always, or never", c.Color)
	}

	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid format %q: expected text or json", c.Format)
	}

	if c.Jobs < 0 {
		return fmt.Errorf("invalid jobs %d: must not be negative", c.Jobs)
	}
	if c.MaxErrors < 0 {
		return fmt.Errorf("invalid max_errors %d: must not be negative", c.MaxErrors)
	}
	return nil
}

// Indentation returns the indentation style this configuration asks for.
//
// Returns nil if each file's indentation should be detected from its
// contents.
func (c Config) Indentation() (*source.IndentKind, error) {
	if c.Indent == "" || c.Indent == "auto" {
		return nil, nil //nolint:nilnil // nil means "detect".
	}
	kind, err := source.ParseIndentKind(c.Indent)
	if err != nil {
		return nil, err
	}
	return &kind, nil
}
