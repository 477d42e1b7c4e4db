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

package status

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// BackupSuffix is appended to a file name to form its backup name
const BackupSuffix = ".orig"

// ErrInvalidUTF8 is returned when a file cannot be read as text
var ErrInvalidUTF8 = errors.Base("invalid UTF-8")

// 📊 FileStatus represents what happened to a file during a run
type FileStatus int

const (
	StatusUnknown    FileStatus = iota
	StatusUnchanged             // No query blocks, file untouched
	StatusSerialized            // Backed up and rewritten
	StatusPreviewed             // Would be rewritten, dry run
	StatusRestored              // Backup moved back over the file
	StatusCleaned               // Backup removed
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusUnchanged:
		return "unchanged"
	case StatusSerialized:
		return "serialized"
	case StatusPreviewed:
		return "previewed"
	case StatusRestored:
		return "restored"
	case StatusCleaned:
		return "cleaned"
	default:
		return "unknown"
	}
}

// 📄 FileInfo contains what a run recorded about a file
type FileInfo struct {
	Path    string     // Path as yielded by the walker
	Status  FileStatus // Outcome
	Queries int        // Number of query blocks serialized
	Size    int64      // Size of the content written or previewed
	Error   error      // Any error associated with this file
}

// 💾 FileManager handles all file system operations
type FileManager interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// BackupFile moves path to its backup name. It must succeed before
	// WriteFile is called for the same path.
	BackupFile(ctx context.Context, path string) error
	WriteFile(ctx context.Context, path string, content []byte) error

	BackupExists(ctx context.Context, path string) (bool, error)
	RestoreFile(ctx context.Context, path string) error
	RemoveBackup(ctx context.Context, path string) error
}

// 📈 StatusReporter tracks file status for the run summary
type StatusReporter interface {
	TrackFile(ctx context.Context, info FileInfo)
	ListFiles(ctx context.Context) []FileInfo
	Count(ctx context.Context, status FileStatus) int
	Summary(ctx context.Context) string
}

// 🔧 Manager implements both FileManager and StatusReporter
type Manager struct {
	formatter FileFormatter

	mu    sync.RWMutex
	files []FileInfo
}

// 🏭 New creates a new status manager
func New(formatter FileFormatter) *Manager {
	if formatter == nil {
		formatter = NewDefaultFileFormatter()
	}
	return &Manager{
		formatter: formatter,
	}
}

// BackupPath returns the backup name for path
func BackupPath(path string) string {
	return path + BackupSuffix
}

// FileManager interface implementation

func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	if !utf8.Valid(content) {
		return nil, errors.Errorf("reading file %s: %w", path, ErrInvalidUTF8)
	}
	return content, nil
}

func (m *Manager) BackupFile(ctx context.Context, path string) error {
	backupPath := BackupPath(path)

	if err := os.Rename(path, backupPath); err != nil {
		return errors.Errorf("moving %s to %s: %w", path, backupPath, err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Str("backup", backupPath).Msg("created backup")
	return nil
}

// WriteFile writes content through a temp file in the same directory, so a
// crash mid-write never leaves a truncated file at path. The mode is taken
// from the backup when one exists.
func (m *Manager) WriteFile(ctx context.Context, path string, content []byte) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(BackupPath(path)); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tempPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tempPath, mode); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("setting file mode: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

func (m *Manager) BackupExists(ctx context.Context, path string) (bool, error) {
	info, err := os.Stat(BackupPath(path))
	if err == nil {
		return !info.IsDir(), nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Errorf("checking backup existence: %w", err)
}

func (m *Manager) RestoreFile(ctx context.Context, path string) error {
	backupPath := BackupPath(path)

	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return errors.Errorf("backup file does not exist: %s", backupPath)
	} else if err != nil {
		return errors.Errorf("checking backup existence: %w", err)
	}

	if err := os.Rename(backupPath, path); err != nil {
		return errors.Errorf("restoring from backup: %w", err)
	}

	return nil
}

func (m *Manager) RemoveBackup(ctx context.Context, path string) error {
	if err := os.Remove(BackupPath(path)); err != nil {
		return errors.Errorf("removing backup: %w", err)
	}
	return nil
}

// StatusReporter interface implementation

func (m *Manager) TrackFile(ctx context.Context, info FileInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.files = append(m.files, info)

	msg := m.formatter.FormatFileOperation(info.Path, info.Status, info.Queries)
	if info.Error != nil {
		msg = m.formatter.FormatError(info.Error)
	}
	zerolog.Ctx(ctx).Debug().
		Str("path", info.Path).
		Str("status", info.Status.String()).
		Int("queries", info.Queries).
		Msg(msg)
}

func (m *Manager) ListFiles(ctx context.Context) []FileInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	files := make([]FileInfo, len(m.files))
	copy(files, m.files)
	return files
}

func (m *Manager) Count(ctx context.Context, status FileStatus) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	for _, f := range m.files {
		if f.Status == status {
			n++
		}
	}
	return n
}

// Summary formats the totals tracked so far
func (m *Manager) Summary(ctx context.Context) string {
	files := m.ListFiles(ctx)

	counts := make(map[FileStatus]int)
	for _, f := range files {
		counts[f.Status]++
	}
	return m.formatter.FormatSummary(len(files), counts)
}
