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
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/dvserialize/pkg/status"
)

// 🎯 Logger writes human output to the console and error streams and
// mirrors every message into zerolog
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	errs    io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger
func New(console, errs io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		errs:    errs,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📣 Announce prints a candidate path before it is processed
func (l *Logger) Announce(ctx context.Context, path string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, path)
	l.zlog.Debug().Str("path", path).Msg("visiting file")
}

// 📝 LogFileOperation logs what happened to a file
func (l *Logger) LogFileOperation(ctx context.Context, info status.FileInfo) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, status.FormatFileLine(info))

	l.zlog.Info().
		Str("file", info.Path).
		Str("status", info.Status.String()).
		Int("queries", info.Queries).
		Int64("size", info.Size).
		Msg("file operation")
}

// 👀 Preview prints the would-be content of a file in dry run mode,
// optionally followed by a diff against the current content
func (l *Logger) Preview(ctx context.Context, path string, content string, diff string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.console, "\n\n\n%s\n\n%s\n", path, content)

	if diff != "" {
		fmt.Fprint(l.console, pterm.Info.WithPrefix(pterm.Prefix{Text: "DIFF", Style: pterm.Info.Prefix.Style}).Sprintln(path))
		fmt.Fprint(l.console, diff)
	}

	l.zlog.Info().Str("file", path).Int("size", len(content)).Bool("diff", diff != "").Msg("previewed file")
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("dvserialize")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📊 Summary logs the end of run totals
func (l *Logger) Summary(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(l.console, pterm.Success.WithPrefix(pterm.Prefix{Text: "DONE", Style: pterm.Success.Prefix.Style}).Sprintln(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.errs, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message on the error stream
func (l *Logger) Error(msg string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		fmt.Fprintf(l.errs, "error: %s: %s\n", color.New(color.FgRed).Sprint(msg), err)
	} else {
		fmt.Fprintf(l.errs, "error: %s\n", color.New(color.FgRed).Sprint(msg))
	}
	l.zlog.Error().Err(err).Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}
