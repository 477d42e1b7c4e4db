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

package walk

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// MarkdownSuffix is the only file suffix ever yielded
const MarkdownSuffix = ".md"

// ErrNotDirectory is returned when the walk root is not a directory
var ErrNotDirectory = errors.Base("not a directory")

// errStop unwinds filepath.WalkDir once the consumer stops pulling
var errStop = errors.Base("walk stopped")

// 🚦 Decision is the per-entry verdict of a Filter
type Decision int

const (
	// Continue yields the entry
	Continue Decision = iota
	// Ignore skips the entry; directories are still descended into
	Ignore
	// IgnoreDir skips the entry and, for directories, its whole subtree
	IgnoreDir
)

// String returns a string representation of Decision
func (d Decision) String() string {
	switch d {
	case Continue:
		return "continue"
	case Ignore:
		return "ignore"
	case IgnoreDir:
		return "ignore_dir"
	default:
		return "unknown"
	}
}

// Entry is what a Filter sees for each visited path below the root
type Entry struct {
	Path  string // Path as joined from the root
	Rel   string // Slash separated path relative to the root
	Name  string // Base name
	IsDir bool   // Whether the entry is a directory, symlinks followed
}

// 🔍 Filter decides what happens to one entry
type Filter func(ctx context.Context, e Entry) Decision

// MarkdownFilter applies the default policy: hidden directories are pruned,
// anything not ending in .md is skipped, directories are never yielded.
func MarkdownFilter(ctx context.Context, e Entry) Decision {
	if e.IsDir && strings.HasPrefix(e.Name, ".") {
		return IgnoreDir
	}
	if !strings.HasSuffix(e.Name, MarkdownSuffix) {
		return Ignore
	}
	if e.IsDir {
		return Ignore
	}
	return Continue
}

// IgnorePatterns builds a Filter that prunes directories and skips files whose
// root relative path matches any of the doublestar patterns.
func IgnorePatterns(patterns []string) Filter {
	return func(ctx context.Context, e Entry) Decision {
		for _, pattern := range patterns {
			matched, err := doublestar.Match(pattern, e.Rel)
			if err != nil {
				zerolog.Ctx(ctx).Debug().Str("pattern", pattern).Str("path", e.Rel).Err(err).Msg("error matching pattern")
				continue
			}
			if matched {
				zerolog.Ctx(ctx).Debug().Str("path", e.Rel).Str("pattern", pattern).Msg("path ignored by pattern")
				if e.IsDir {
					return IgnoreDir
				}
				return Ignore
			}
		}
		return Continue
	}
}

// Chain evaluates filters in order. The first non-Continue decision wins.
func Chain(filters ...Filter) Filter {
	return func(ctx context.Context, e Entry) Decision {
		for _, f := range filters {
			if d := f(ctx, e); d != Continue {
				return d
			}
		}
		return Continue
	}
}

// 🚶 Walker lazily enumerates the candidate files below a root
type Walker struct {
	root   string
	filter Filter
	warnf  func(format string, args ...any)
}

// Option configures a Walker
type Option func(w *Walker)

// WithWarnings reports skipped entries (vanished files, dangling links)
// through warnf
func WithWarnings(warnf func(format string, args ...any)) Option {
	return func(w *Walker) {
		w.warnf = warnf
	}
}

// New creates a Walker over root using filter. A nil filter means MarkdownFilter.
func New(root string, filter Filter, opts ...Option) *Walker {
	if filter == nil {
		filter = MarkdownFilter
	}
	w := &Walker{
		root:   root,
		filter: filter,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Root returns the directory the walker starts from
func (w *Walker) Root() string {
	return w.root
}

// Candidates returns the accepted file paths one at a time. The first error
// ends the sequence. Each call starts a fresh traversal; a single sequence
// must not be consumed from more than one goroutine.
//
// Yielded paths always start with the root as given, even when the root is
// a symlink to the directory actually walked.
func (w *Walker) Candidates(ctx context.Context) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		base, err := w.resolveRoot()
		if err != nil {
			yield("", err)
			return
		}

		err = filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return errors.Errorf("walking %s: %w", w.root, ctxErr)
			}

			if path == base {
				if err != nil {
					return errors.Errorf("walking %s: %w", w.root, err)
				}
				return nil
			}

			entry, ok, entryErr := w.entry(base, path, d, err)
			if entryErr != nil {
				return entryErr
			}
			if !ok {
				w.vanished(ctx, entry.Path)
				return nil
			}

			switch w.filter(ctx, entry) {
			case IgnoreDir:
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			case Ignore:
				return nil
			}

			if !yield(entry.Path, nil) {
				return errStop
			}
			return nil
		})

		if err != nil && !errors.Is(err, errStop) {
			yield("", err)
		}
	}
}

// resolveRoot checks the root and returns the directory to hand to WalkDir.
// WalkDir never descends into a symlinked root, so such a root is resolved.
func (w *Walker) resolveRoot() (string, error) {
	info, err := os.Stat(w.root)
	if err != nil {
		return "", errors.Errorf("opening root %s: %w", w.root, err)
	}
	if !info.IsDir() {
		return "", errors.Errorf("opening root %s: %w", w.root, ErrNotDirectory)
	}

	linfo, err := os.Lstat(w.root)
	if err != nil {
		return "", errors.Errorf("opening root %s: %w", w.root, err)
	}
	if linfo.Mode()&fs.ModeSymlink == 0 {
		return w.root, nil
	}

	resolved, err := filepath.EvalSymlinks(w.root)
	if err != nil {
		return "", errors.Errorf("resolving root %s: %w", w.root, err)
	}
	return resolved, nil
}

func (w *Walker) vanished(ctx context.Context, path string) {
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("entry not found during walk")
	if w.warnf != nil {
		w.warnf("skipping %s: not found", path)
	}
}

// entry builds the Entry for path, found below base by WalkDir. The
// directory check follows symlinks, so a link to a directory is treated as
// a directory even though WalkDir will not descend into it. ok is false
// when the entry disappeared.
func (w *Walker) entry(base, path string, d fs.DirEntry, walkErr error) (Entry, bool, error) {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return Entry{}, false, errors.Errorf("relativizing %s: %w", path, err)
	}

	shown := path
	if base != w.root {
		shown = filepath.Join(w.root, rel)
	}

	if walkErr != nil {
		if errors.Is(walkErr, fs.ErrNotExist) {
			return Entry{Path: shown}, false, nil
		}
		return Entry{}, false, errors.Errorf("walking %s: %w", shown, walkErr)
	}

	isDir := d.IsDir()
	if d.Type()&fs.ModeSymlink != 0 {
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return Entry{Path: shown}, false, nil
			}
			return Entry{}, false, errors.Errorf("reading metadata for %s: %w", shown, err)
		}
		isDir = info.IsDir()
	}

	return Entry{
		Path:  shown,
		Rel:   filepath.ToSlash(rel),
		Name:  d.Name(),
		IsDir: isDir,
	}, true, nil
}
