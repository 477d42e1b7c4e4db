package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/dvserialize/cmd/dvserialize/opts"
	"github.com/walteh/dvserialize/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// SerializeRunE returns the run function of the root command
func SerializeRunE(o *opts.RootOpts) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		options, err := o.Resolve(ctx, cmd)
		if err != nil {
			return err
		}

		op, err := operation.NewSerializeOperation(options)
		if err != nil {
			return errors.Errorf("creating serialize operation: %w", err)
		}

		return operation.NewRunner(zerolog.Ctx(ctx)).Run(ctx, "serialize", op)
	}
}
