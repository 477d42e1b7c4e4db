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
)

// ReplacementResult contains the results of a query serialization
type ReplacementResult struct {
	// ReplacementCount is the number of query blocks rewritten
	ReplacementCount int

	// OriginalContent is the content before serialization
	OriginalContent []byte

	// ModifiedContent is the content after serialization
	ModifiedContent []byte
}

// 🔌 Transformer rewrites the query blocks of a single document
type Transformer interface {
	// Transform reads the whole document and rewrites every query block.
	// A nil result with a nil error means nothing matched and the
	// document must be left alone.
	Transform(ctx context.Context, content io.Reader) (*ReplacementResult, error)
}
