// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
	return logger.WithContext(context.Background())
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "writing config file")
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		config      string
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name:     "yaml_full",
			filename: "config.yaml",
			config: `
ignore_patterns:
  - "templates/**"
  - "**/*.excalidraw.md"
dry_run: true
diff: true
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"templates/**", "**/*.excalidraw.md"}, cfg.IgnorePatterns)
				assert.True(t, cfg.DryRun, "dry_run should be set")
				assert.True(t, cfg.Diff, "diff should be set")
			},
		},
		{
			name:     "yaml_empty_file",
			filename: "config.yml",
			config:   "\n\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Empty(t, cfg.IgnorePatterns)
				assert.False(t, cfg.DryRun)
				assert.False(t, cfg.Diff)
			},
		},
		{
			name:        "yaml_unknown_field",
			filename:    "config.yaml",
			config:      "ignore: [\"a\"]\n",
			errContains: "parsing YAML",
		},
		{
			name:        "yaml_syntax_error",
			filename:    "config.yaml",
			config:      "ignore_patterns: [\n",
			errContains: "parsing YAML",
		},
		{
			name:     "json_full",
			filename: "config.json",
			config:   `{"ignore_patterns": ["archive/**"], "dry_run": true}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"archive/**"}, cfg.IgnorePatterns)
				assert.True(t, cfg.DryRun)
				assert.False(t, cfg.Diff)
			},
		},
		{
			name:        "json_unknown_field",
			filename:    "config.json",
			config:      `{"dryrun": true}`,
			errContains: "parsing JSON",
		},
		{
			name:     "hcl_full",
			filename: "config.hcl",
			config: `
ignore_patterns = ["templates/**"]
diff            = true
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"templates/**"}, cfg.IgnorePatterns)
				assert.False(t, cfg.DryRun)
				assert.True(t, cfg.Diff)
			},
		},
		{
			name:        "hcl_syntax_error",
			filename:    "config.hcl",
			config:      "ignore_patterns = \n",
			errContains: "parsing HCL",
		},
		{
			name:        "hcl_unknown_attribute",
			filename:    "config.hcl",
			config:      "unknown = true\n",
			errContains: "decoding HCL",
		},
		{
			name:        "invalid_pattern",
			filename:    "config.yaml",
			config:      "ignore_patterns: [\"[\"]\n",
			errContains: "invalid pattern",
		},
		{
			name:        "empty_pattern",
			filename:    "config.yaml",
			config:      "ignore_patterns: [\"  \"]\n",
			errContains: "pattern is empty",
		},
		{
			name:        "unsupported_extension",
			filename:    "config.toml",
			config:      "dry_run = true\n",
			errContains: "no parser found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.filename, tt.config)

			cfg, err := Load(testContext(t), path)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, path, cfg.Location(), "location should be recorded")
			tt.check(t, cfg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(testContext(t), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoad_HCLEnvironment(t *testing.T) {
	t.Setenv("DVSERIALIZE_TEST_IGNORE", "drafts/**")

	path := writeConfig(t, t.TempDir(), "config.hcl", `ignore_patterns = [env.DVSERIALIZE_TEST_IGNORE]`)

	cfg, err := Load(testContext(t), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"drafts/**"}, cfg.IgnorePatterns)
}

func TestDiscover(t *testing.T) {
	tests := []struct {
		name         string
		files        map[string]string
		explicit     string
		wantLocation string
		wantIgnore   []string
		errContains  string
	}{
		{
			name:       "no_config_uses_defaults",
			wantIgnore: nil,
		},
		{
			name:         "yaml_in_root",
			files:        map[string]string{".dvserialize.yaml": "ignore_patterns: [\"a/**\"]\n"},
			wantLocation: ".dvserialize.yaml",
			wantIgnore:   []string{"a/**"},
		},
		{
			name: "yaml_wins_over_json",
			files: map[string]string{
				".dvserialize.yaml": "ignore_patterns: [\"yaml/**\"]\n",
				".dvserialize.json": `{"ignore_patterns": ["json/**"]}`,
			},
			wantLocation: ".dvserialize.yaml",
			wantIgnore:   []string{"yaml/**"},
		},
		{
			name:         "hcl_in_root",
			files:        map[string]string{".dvserialize.hcl": `ignore_patterns = ["h/**"]`},
			wantLocation: ".dvserialize.hcl",
			wantIgnore:   []string{"h/**"},
		},
		{
			name: "explicit_path_wins",
			files: map[string]string{
				".dvserialize.yaml": "ignore_patterns: [\"root/**\"]\n",
				"custom.json":       `{"ignore_patterns": ["custom/**"]}`,
			},
			explicit:     "custom.json",
			wantLocation: "custom.json",
			wantIgnore:   []string{"custom/**"},
		},
		{
			name:        "explicit_path_missing",
			explicit:    "missing.yaml",
			errContains: "reading config file",
		},
		{
			name:        "invalid_default_file",
			files:       map[string]string{".dvserialize.yaml": "bogus: true\n"},
			errContains: "parsing YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			for name, content := range tt.files {
				writeConfig(t, root, name, content)
			}

			explicit := ""
			if tt.explicit != "" {
				explicit = filepath.Join(root, tt.explicit)
			}

			cfg, err := Discover(testContext(t), root, explicit)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			if tt.wantLocation == "" {
				assert.Empty(t, cfg.Location(), "defaults have no location")
			} else {
				assert.Equal(t, filepath.Join(root, tt.wantLocation), cfg.Location())
			}
			assert.Equal(t, tt.wantIgnore, cfg.IgnorePatterns)
		})
	}
}

func TestDiscover_RootIsFile(t *testing.T) {
	root := writeConfig(t, t.TempDir(), "note.md", "# hi")

	cfg, err := Discover(testContext(t), root, "")
	require.NoError(t, err, "a file root has no config next to it")
	assert.Empty(t, cfg.Location())
}

func TestConfig_String(t *testing.T) {
	cfg := &Config{IgnorePatterns: []string{"a/**"}, DryRun: true}
	assert.Equal(t, "ignore=[a/**] dry_run=true diff=false", cfg.String())
}
