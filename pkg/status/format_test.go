package status

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// 🧪 TestDefaultFileFormatter tests the default file formatter implementation
func TestDefaultFileFormatter(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		status  FileStatus
		queries int
		want    string
	}{
		{
			name:    "serialized_one",
			path:    "notes/a.md",
			status:  StatusSerialized,
			queries: 1,
			want:    "📝 Serialized notes/a.md (1 query)",
		},
		{
			name:    "serialized_many",
			path:    "b.md",
			status:  StatusSerialized,
			queries: 3,
			want:    "📝 Serialized b.md (3 queries)",
		},
		{
			name:    "previewed",
			path:    "c.md",
			status:  StatusPreviewed,
			queries: 2,
			want:    "👀 Previewed c.md (2 queries)",
		},
		{
			name:   "restored",
			path:   "d.md",
			status: StatusRestored,
			want:   "⏪ Restored d.md",
		},
		{
			name:   "cleaned",
			path:   "e.md",
			status: StatusCleaned,
			want:   "🗑️  Removed backup of e.md",
		},
		{
			name:   "unchanged",
			path:   "f.md",
			status: StatusUnchanged,
			want:   "👍 Unchanged f.md",
		},
	}

	formatter := NewDefaultFileFormatter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatter.FormatFileOperation(tt.path, tt.status, tt.queries)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultFileFormatter_Summary(t *testing.T) {
	tests := []struct {
		name    string
		visited int
		counts  map[FileStatus]int
		want    string
	}{
		{
			name: "nothing_visited",
			want: "✅ 0 markdown files visited",
		},
		{
			name:    "single_file",
			visited: 1,
			counts:  map[FileStatus]int{StatusUnchanged: 1},
			want:    "✅ 1 markdown file visited: 1 unchanged",
		},
		{
			name:    "serialize_run",
			visited: 10,
			counts:  map[FileStatus]int{StatusUnchanged: 7, StatusSerialized: 3},
			want:    "✅ 10 markdown files visited: 3 serialized, 7 unchanged",
		},
		{
			name:    "clean_run",
			visited: 2,
			counts:  map[FileStatus]int{StatusCleaned: 1, StatusUnchanged: 1},
			want:    "✅ 2 markdown files visited: 1 cleaned, 1 unchanged",
		},
	}

	formatter := NewDefaultFileFormatter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatter.FormatSummary(tt.visited, tt.counts))
		})
	}
}

func TestDefaultFileFormatter_Error(t *testing.T) {
	formatter := NewDefaultFileFormatter()
	assert.Empty(t, formatter.FormatError(nil))
	assert.Equal(t, "❌ Error: boom", formatter.FormatError(fmt.Errorf("boom")))
}
