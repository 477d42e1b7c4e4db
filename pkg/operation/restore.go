package operation

import (
	"context"

	"github.com/walteh/dvserialize/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// ⏪ NewRestoreOperation creates a new restore operation
func NewRestoreOperation(opts Options) (Operation, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &restoreOperation{
		BaseOperation: NewBaseOperation(opts),
	}, nil
}

// ⏪ restoreOperation moves backups back over their files
type restoreOperation struct {
	BaseOperation
}

// 🏃 Execute runs the restore operation
func (op *restoreOperation) Execute(ctx context.Context) error {
	return op.each(ctx, "restoring backups in "+op.Source.Root(), op.restoreFile)
}

func (op *restoreOperation) restoreFile(ctx context.Context, path string) error {
	exists, err := op.Files.BackupExists(ctx, path)
	if err != nil {
		return err
	}
	if !exists {
		op.track(ctx, status.FileInfo{Path: path, Status: status.StatusUnchanged}, false)
		return nil
	}

	if err := op.Files.RestoreFile(ctx, path); err != nil {
		return errors.Errorf("restoring: %w", err)
	}

	op.track(ctx, status.FileInfo{Path: path, Status: status.StatusRestored}, true)
	return nil
}
