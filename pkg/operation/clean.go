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
	"context"

	"github.com/walteh/dvserialize/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🧹 NewCleanOperation creates a new clean operation
func NewCleanOperation(opts Options) (Operation, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &cleanOperation{
		BaseOperation: NewBaseOperation(opts),
	}, nil
}

// 🧹 cleanOperation removes the backups left by a live run
type cleanOperation struct {
	BaseOperation
}

// 🏃 Execute runs the clean operation
func (op *cleanOperation) Execute(ctx context.Context) error {
	return op.each(ctx, "removing backups in "+op.Source.Root(), op.cleanFile)
}

// 🗑️ cleanFile removes the backup of a single file, if any
func (op *cleanOperation) cleanFile(ctx context.Context, path string) error {
	exists, err := op.Files.BackupExists(ctx, path)
	if err != nil {
		return err
	}
	if !exists {
		op.track(ctx, status.FileInfo{Path: path, Status: status.StatusUnchanged}, false)
		return nil
	}

	if err := op.Files.RemoveBackup(ctx, path); err != nil {
		return errors.Errorf("cleaning: %w", err)
	}

	op.track(ctx, status.FileInfo{Path: path, Status: status.StatusCleaned}, true)
	return nil
}
