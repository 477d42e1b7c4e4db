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

package opts

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/dvserialize/pkg/config"
	"github.com/walteh/dvserialize/pkg/log"
	"github.com/walteh/dvserialize/pkg/operation"
	"github.com/walteh/dvserialize/pkg/status"
	"github.com/walteh/dvserialize/pkg/text"
	"github.com/walteh/dvserialize/pkg/walk"
	"gitlab.com/tozd/go/errors"
)

// RootOpts holds the flag values and streams shared by every command
type RootOpts struct {
	Path       string
	ConfigFile string
	DryRun     bool
	Diff       bool
	Debug      bool

	Stdout io.Writer
	Stderr io.Writer
}

// Resolve loads the config for the run and builds the operation
// dependencies. Flags set on the command line win over the config file.
// The operations print through the logger carried by ctx.
func (o *RootOpts) Resolve(ctx context.Context, cmd *cobra.Command) (operation.Options, error) {
	if o.Path == "" {
		return operation.Options{}, errors.Errorf(`required flag "path" not set`)
	}

	logger := log.FromContext(ctx)

	cfg, err := config.Discover(ctx, o.Path, o.ConfigFile)
	if err != nil {
		return operation.Options{}, errors.Errorf("loading config: %w", err)
	}
	if cfg.Location() != "" {
		logger.Infof("using config %s", cfg.Location())
	}

	dryRun := cfg.DryRun
	if flagChanged(cmd, "dryrun") {
		dryRun = o.DryRun
	}
	diff := cfg.Diff
	if flagChanged(cmd, "diff") {
		diff = o.Diff
	}

	zerolog.Ctx(ctx).Debug().
		Str("config", cfg.Location()).
		Str("settings", cfg.String()).
		Bool("dry_run", dryRun).
		Bool("diff", diff).
		Msg("resolved options")

	mgr := status.New(nil)

	return operation.Options{
		Source: walk.New(o.Path,
			walk.Chain(walk.MarkdownFilter, walk.IgnorePatterns(cfg.IgnorePatterns)),
			walk.WithWarnings(logger.Warningf),
		),
		Files:       mgr,
		Reporter:    mgr,
		Transformer: text.NewQueryTransformer(),
		DryRun:      dryRun,
		Diff:        diff,
	}, nil
}

func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}
