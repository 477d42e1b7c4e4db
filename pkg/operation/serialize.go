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

package operation

import (
	"bytes"
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/dvserialize/pkg/status"
	"github.com/walteh/dvserialize/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 📝 NewSerializeOperation creates a new serialize operation
func NewSerializeOperation(opts Options) (Operation, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Transformer == nil {
		return nil, errors.Errorf("transformer is required")
	}
	return &serializeOperation{
		BaseOperation: NewBaseOperation(opts),
	}, nil
}

// 📝 serializeOperation rewrites the query blocks of every candidate
type serializeOperation struct {
	BaseOperation
}

// 🏃 Execute runs the serialize operation
func (op *serializeOperation) Execute(ctx context.Context) error {
	zerolog.Ctx(ctx).Debug().
		Str("root", op.Source.Root()).
		Bool("dry_run", op.DryRun).
		Msg("serializing queries")

	header := "serializing queries in " + op.Source.Root()
	if op.DryRun {
		header = "previewing queries in " + op.Source.Root()
	}
	return op.each(ctx, header, op.processFile)
}

// 📄 processFile serializes a single file
func (op *serializeOperation) processFile(ctx context.Context, path string) error {
	op.Logger.Announce(ctx, path)

	content, err := op.Files.ReadFile(ctx, path)
	if err != nil {
		return err
	}

	result, err := op.Transformer.Transform(ctx, bytes.NewReader(content))
	if err != nil {
		return errors.Errorf("transforming content: %w", err)
	}

	if result == nil {
		op.track(ctx, status.FileInfo{Path: path, Status: status.StatusUnchanged}, false)
		return nil
	}

	info := status.FileInfo{
		Path:    path,
		Queries: result.ReplacementCount,
		Size:    int64(len(result.ModifiedContent)),
	}

	if op.DryRun {
		diff := ""
		if op.Diff {
			diff = text.Diff(string(result.OriginalContent), string(result.ModifiedContent))
		}
		op.Logger.Preview(ctx, path, string(result.ModifiedContent), diff)
		info.Status = status.StatusPreviewed
		op.track(ctx, info, false)
		return nil
	}

	// the backup must exist before anything is written
	if err := op.Files.BackupFile(ctx, path); err != nil {
		return errors.Errorf("backing up: %w", err)
	}

	if err := op.Files.WriteFile(ctx, path, result.ModifiedContent); err != nil {
		return errors.Errorf("writing: %w", err)
	}

	info.Status = status.StatusSerialized
	op.track(ctx, info, true)
	return nil
}
