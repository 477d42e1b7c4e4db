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
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestFormatFileLine(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name string
		info FileInfo
		want string
	}{
		{
			name: "serialized",
			info: FileInfo{Path: "notes/a.md", Status: StatusSerialized, Queries: 2},
			want: "    ✓ notes/a.md                          serialized   2 queries",
		},
		{
			name: "previewed",
			info: FileInfo{Path: "b.md", Status: StatusPreviewed, Queries: 1},
			want: "    ? b.md                                previewed    1 query",
		},
		{
			name: "unchanged",
			info: FileInfo{Path: "c.md", Status: StatusUnchanged},
			want: "    - c.md                                unchanged",
		},
		{
			name: "restored",
			info: FileInfo{Path: "d.md", Status: StatusRestored},
			want: "    ⟳ d.md                                restored",
		},
		{
			name: "cleaned",
			info: FileInfo{Path: "e.md", Status: StatusCleaned},
			want: "    ✗ e.md                                cleaned",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFileLine(tt.info))
		})
	}
}
