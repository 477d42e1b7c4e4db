package operation

import (
	"context"
	"iter"

	"github.com/walteh/dvserialize/pkg/log"
	"github.com/walteh/dvserialize/pkg/status"
	"github.com/walteh/dvserialize/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a single run over the candidate files
type Operation interface {
	Execute(ctx context.Context) error
}

// 🌲 Source yields the candidate files of a run
type Source interface {
	Root() string
	Candidates(ctx context.Context) iter.Seq2[string, error]
}

// 🔧 Options contains everything an operation needs
type Options struct {
	// Source yields candidate markdown files, usually a *walk.Walker
	Source Source
	// Files performs reads, backups and writes
	Files status.FileManager
	// Reporter records the outcome for every visited file
	Reporter status.StatusReporter
	// Transformer rewrites query blocks
	Transformer text.Transformer
	// Logger writes the human readable output. When nil, the logger carried
	// by the context is used.
	Logger *log.Logger

	DryRun bool
	Diff   bool
}

// 🔍 Validate checks that all required dependencies are set
func (o Options) Validate() error {
	if o.Source == nil {
		return errors.Errorf("source is required")
	}
	if o.Files == nil {
		return errors.Errorf("file manager is required")
	}
	if o.Reporter == nil {
		return errors.Errorf("status reporter is required")
	}
	return nil
}

// 🧱 BaseOperation holds the shared dependencies of every operation
type BaseOperation struct {
	Options
}

// 🏭 NewBaseOperation creates a new base operation
func NewBaseOperation(opts Options) BaseOperation {
	return BaseOperation{Options: opts}
}

// track records a file outcome and prints its status line
func (op *BaseOperation) track(ctx context.Context, info status.FileInfo, print bool) {
	op.Reporter.TrackFile(ctx, info)
	if print {
		op.Logger.LogFileOperation(ctx, info)
	}
}

// each announces the operation, then runs fn for every candidate, stopping
// on the first error
func (op *BaseOperation) each(ctx context.Context, header string, fn func(ctx context.Context, path string) error) error {
	if op.Logger == nil {
		op.Logger = log.FromContext(ctx)
	}
	op.Logger.Header(header)

	for path, err := range op.Source.Candidates(ctx) {
		if err != nil {
			return err
		}
		if err := fn(ctx, path); err != nil {
			op.Reporter.TrackFile(ctx, status.FileInfo{Path: path, Status: status.StatusUnknown, Error: err})
			return errors.Errorf("processing file %s: %w", path, err)
		}
	}

	op.Logger.Summary(op.Reporter.Summary(ctx))
	return nil
}
