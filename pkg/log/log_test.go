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

package log

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/dvserialize/pkg/status"
	"gitlab.com/tozd/go/errors"
)

func disableStyling(t *testing.T) {
	color.NoColor = true
	pterm.DisableColor()
	t.Cleanup(func() {
		color.NoColor = false
		pterm.EnableColor()
	})
}

func TestLogger(t *testing.T) {
	disableStyling(t)

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantOut  []string
		wantErrs []string
	}{
		{
			name: "announce",
			op: func(t *testing.T, logger *Logger) {
				logger.Announce(context.Background(), "notes/a.md")
				logger.Announce(context.Background(), "notes/b.md")
			},
			wantOut: []string{"notes/a.md", "notes/b.md"},
		},
		{
			name: "log_file_operation",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileOperation(context.Background(), status.FileInfo{
					Path:    "test.md",
					Status:  status.StatusSerialized,
					Queries: 2,
				})
			},
			wantOut: []string{
				"✓ test.md                             serialized   2 queries",
			},
		},
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("info message")
				logger.Warning("warning message")
				logger.Error("error message", nil)
			},
			wantOut: []string{
				"ℹ️  info message",
			},
			wantErrs: []string{
				"⚠️  warning message",
				"error: error message",
			},
		},
		{
			name: "log_error_with_cause",
			op: func(t *testing.T, logger *Logger) {
				logger.Error("walking vault", errors.New("permission denied"))
			},
			wantErrs: []string{
				"error: walking vault: permission denied",
			},
		},
		{
			name: "log_formatted_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Infof("info %s", "test")
				logger.Warningf("warning %s", "test")
			},
			wantOut: []string{
				"ℹ️  info test",
			},
			wantErrs: []string{
				"⚠️  warning test",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("serializing queries")
			},
			wantOut: []string{
				"dvserialize • serializing queries",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			errs := &bytes.Buffer{}
			logger := New(out, errs, zerolog.Nop())

			tt.op(t, logger)

			assertLines(t, tt.wantOut, out.String())
			assertLines(t, tt.wantErrs, errs.String())
		})
	}
}

func assertLines(t *testing.T, want []string, got string) {
	t.Helper()
	output := strings.TrimSpace(got)
	if len(want) == 0 {
		assert.Empty(t, output)
		return
	}
	lines := strings.Split(output, "\n")
	require.Equal(t, len(want), len(lines), "number of log lines should match: %q", output)
	for i, w := range want {
		assert.Equal(t, w, strings.TrimSpace(lines[i]), "log line %d should match", i)
	}
}

func TestLogger_Preview(t *testing.T) {
	disableStyling(t)

	out := &bytes.Buffer{}
	logger := New(out, io.Discard, zerolog.Nop())

	logger.Preview(context.Background(), "vault/a.md", "<!-- QueryToSerialize: LIST -->", "")
	assert.Equal(t, "\n\n\nvault/a.md\n\n<!-- QueryToSerialize: LIST -->\n", out.String())

	out.Reset()
	logger.Preview(context.Background(), "vault/a.md", "x", "-old\n+new\n")
	assert.True(t, strings.HasPrefix(out.String(), "\n\n\nvault/a.md\n\nx\n"))
	assert.Contains(t, out.String(), "DIFF")
	assert.True(t, strings.HasSuffix(out.String(), "-old\n+new\n"))
}

func TestLogger_Summary(t *testing.T) {
	disableStyling(t)

	out := &bytes.Buffer{}
	logger := New(out, io.Discard, zerolog.Nop())
	logger.Summary("5 markdown files visited: 2 serialized, 3 unchanged")

	assert.Contains(t, out.String(), "DONE")
	assert.Contains(t, out.String(), "5 markdown files visited: 2 serialized, 3 unchanged")
}

func TestLogger_MirrorsToZerolog(t *testing.T) {
	disableStyling(t)

	structured := &bytes.Buffer{}
	logger := New(io.Discard, io.Discard, zerolog.New(structured))

	logger.LogFileOperation(context.Background(), status.FileInfo{Path: "a.md", Status: status.StatusPreviewed, Queries: 1})

	assert.Contains(t, structured.String(), `"file":"a.md"`)
	assert.Contains(t, structured.String(), `"status":"previewed"`)
	assert.Contains(t, structured.String(), `"queries":1`)
}

func TestLoggerContext(t *testing.T) {
	logger := New(io.Discard, io.Discard, zerolog.Nop())

	ctx := NewContext(context.Background(), logger)

	got := FromContext(ctx)
	assert.Same(t, logger, got, "logger from context should be the same instance")

	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "FromContext should panic when logger is missing")
}
