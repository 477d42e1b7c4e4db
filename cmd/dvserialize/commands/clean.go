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

package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/dvserialize/cmd/dvserialize/opts"
	"github.com/walteh/dvserialize/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

func NewCleanCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the .orig backups left by a live run",
		Long: `Clean removes backups once you are happy with the result.
It will:
1. Visit every markdown file below --path
2. Delete its <file>.orig sibling, if any
3. Leave the markdown files themselves untouched`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			options, err := o.Resolve(ctx, cmd)
			if err != nil {
				return err
			}

			op, err := operation.NewCleanOperation(options)
			if err != nil {
				return errors.Errorf("creating clean operation: %w", err)
			}

			return operation.NewRunner(zerolog.Ctx(ctx)).Run(ctx, "clean", op)
		},
	}

	return cmd
}
