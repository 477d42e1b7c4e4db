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

package text

import (
	"context"
	"io"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

const (
	// QueryTag is the language tag that marks a fenced block as a query
	QueryTag = "dataview"

	// CommentPrefix is the label written in front of every serialized query
	CommentPrefix = "QueryToSerialize:"
)

// queryBlock matches a dataview fence up to the nearest closing fence.
// (?s) lets the body span lines; the lazy group keeps blocks independent.
var queryBlock = regexp.MustCompile("(?s)```" + QueryTag + "(.*?)```")

// NormalizeQuery turns a multi-line query body into a single line.
// Newlines are dropped without a separator, then the result is trimmed and
// every remaining run of whitespace becomes one space.
func NormalizeQuery(body string) string {
	body = strings.ReplaceAll(body, "\n", "")
	return strings.Join(strings.Fields(body), " ")
}

// SerializeQueries rewrites every dataview block in input into a single line
// HTML comment. The bool is false when input holds no dataview block, in
// which case the returned string is empty and must not be written anywhere.
func SerializeQueries(input string) (string, bool) {
	out, count := serialize(input)
	if count == 0 {
		return "", false
	}
	return out, true
}

func serialize(input string) (string, int) {
	count := 0
	out := queryBlock.ReplaceAllStringFunc(input, func(block string) string {
		count++
		body := queryBlock.FindStringSubmatch(block)[1]
		return FormatComment(NormalizeQuery(body))
	})
	return out, count
}

// FormatComment wraps an already normalized query in the comment form
func FormatComment(query string) string {
	return "<!-- " + CommentPrefix + " " + query + " -->"
}

// 🔄 QueryTransformer implements Transformer for dataview blocks
type QueryTransformer struct{}

// NewQueryTransformer creates a new QueryTransformer
func NewQueryTransformer() *QueryTransformer {
	return &QueryTransformer{}
}

// Transform implements Transformer.Transform
func (t *QueryTransformer) Transform(ctx context.Context, content io.Reader) (*ReplacementResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	modified, count := serialize(string(originalContent))
	if count == 0 {
		zerolog.Ctx(ctx).Trace().Msg("no query blocks found")
		return nil, nil
	}

	zerolog.Ctx(ctx).Debug().Int("queries", count).Msg("serialized query blocks")

	return &ReplacementResult{
		ReplacementCount: count,
		OriginalContent:  originalContent,
		ModifiedContent:  []byte(modified),
	}, nil
}
