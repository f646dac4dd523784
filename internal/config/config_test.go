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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brink-lang/brinkc/internal/config"
	"github.com/brink-lang/brinkc/source"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
		want config.Config
		err  string
	}{
		{name: "empty", yaml: "", want: config.Default()},
		{
			name: "full",
			yaml: "indent: spaces:4\ncolor: never\nformat: json\nrecover: true\nblank_lines: true\njobs: 3\nmax_errors: 10\n",
			want: config.Config{
				Indent: "spaces:4", Color: "never", Format: "json",
				Recover: true, BlankLines: true, Jobs: 3, MaxErrors: 10,
			},
		},
		{
			name: "partial",
			yaml: "indent: tab\n",
			want: config.Config{Indent: "tab", Color: "auto", Format: "text"},
		},
		{name: "unknown-key", yaml: "colour: never\n", err: "field colour not found"},
		{name: "bad-color", yaml: "color: sometimes\n", err: `invalid color "sometimes"`},
		{name: "bad-format", yaml: "format: xml\n", err: `invalid format "xml"`},
		{name: "bad-indent", yaml: "indent: spaces:0\n", err: "width must be between 1 and 255"},
		{name: "bad-jobs", yaml: "jobs: -1\n", err: "invalid jobs -1"},
		{name: "not-yaml", yaml: "indent: [\n", err: "failed to parse YAML"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := config.Parse([]byte(test.yaml))
			if test.err != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), test.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestIndentation(t *testing.T) {
	t.Parallel()

	indent, err := config.Default().Indentation()
	require.NoError(t, err)
	assert.Nil(t, indent)

	indent, err = config.Config{Indent: "spaces(3)"}.Indentation()
	require.NoError(t, err)
	require.NotNil(t, indent)
	assert.Equal(t, source.Spaces(3), *indent)

	indent, err = config.Config{Indent: "tab"}.Indentation()
	require.NoError(t, err)
	assert.True(t, indent.IsTab())
}

func TestLoadAndFind(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	assert.Empty(t, config.Find(dir))

	path := filepath.Join(dir, config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("format: json\n"), 0o600))
	assert.Equal(t, path, config.Find(dir))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)

	require.NoError(t, os.WriteFile(path, []byte("format: yaml\n"), 0o600))
	_, err = config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
