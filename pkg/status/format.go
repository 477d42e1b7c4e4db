package status

import (
	"fmt"
	"strings"
)

// FileFormatter defines how file operations and status should be formatted
type FileFormatter interface {
	// FormatFileOperation formats a file operation status message
	FormatFileOperation(path string, status FileStatus, queries int) string

	// FormatSummary formats the end of run totals, counts holds the number
	// of visited files per status
	FormatSummary(visited int, counts map[FileStatus]int) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFileOperation formats a file operation status message with emojis
func (f *DefaultFileFormatter) FormatFileOperation(path string, status FileStatus, queries int) string {
	switch status {
	case StatusSerialized:
		return fmt.Sprintf("📝 Serialized %s (%s)", path, pluralQueries(queries))
	case StatusPreviewed:
		return fmt.Sprintf("👀 Previewed %s (%s)", path, pluralQueries(queries))
	case StatusRestored:
		return fmt.Sprintf("⏪ Restored %s", path)
	case StatusCleaned:
		return fmt.Sprintf("🗑️  Removed backup of %s", path)
	default:
		return fmt.Sprintf("👍 Unchanged %s", path)
	}
}

// summaryOrder is the order statuses are listed in a summary
var summaryOrder = []FileStatus{
	StatusSerialized,
	StatusPreviewed,
	StatusRestored,
	StatusCleaned,
	StatusUnchanged,
	StatusUnknown,
}

// FormatSummary formats the end of run totals, listing only the statuses
// that occurred
func (f *DefaultFileFormatter) FormatSummary(visited int, counts map[FileStatus]int) string {
	var parts []string
	for _, status := range summaryOrder {
		if n := counts[status]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, status))
		}
	}

	msg := fmt.Sprintf("✅ %d markdown %s visited", visited, pluralFiles(visited))
	if len(parts) == 0 {
		return msg
	}
	return msg + ": " + strings.Join(parts, ", ")
}

// FormatError formats an error message with emoji
func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}

func pluralFiles(n int) string {
	if n == 1 {
		return "file"
	}
	return "files"
}

func pluralQueries(n int) string {
	if n == 1 {
		return "1 query"
	}
	return fmt.Sprintf("%d queries", n)
}
