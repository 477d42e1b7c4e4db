package main

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/dvserialize/cmd/dvserialize/commands"
	"github.com/walteh/dvserialize/cmd/dvserialize/opts"
	"github.com/walteh/dvserialize/pkg/log"
)

func newRootCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dvserialize",
		Short: "Serialize Dataview queries in markdown notes",
		Long: `dvserialize walks a directory of markdown notes and replaces every
dataview code block with a single HTML comment holding the normalized query.

Rewritten files are backed up to <file>.orig first. Use --dryrun to print the
rewritten notes instead of touching the disk.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(setupLogging(cmd.Context(), o))
		},
		RunE: commands.SerializeRunE(o),
	}

	cmd.SetOut(o.Stdout)
	cmd.SetErr(o.Stderr)

	addRootFlags(cmd, o)

	cmd.AddCommand(
		commands.NewRestoreCmd(o),
		commands.NewCleanCmd(o),
		newVersionCmd(),
	)

	return cmd
}

// addRootFlags adds the flags to the root command. --path, --config and
// --debug are shared with the subcommands.
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.Path, "path", "p", "", "root directory of the notes (required)")
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", "", "config file path (default: .dvserialize.yaml in --path)")
	cmd.PersistentFlags().BoolVar(&o.Debug, "debug", false, "enable debug logging")

	cmd.Flags().BoolVarP(&o.DryRun, "dryrun", "d", false, "print the rewritten notes instead of writing them (use --dryrun=false, not -d false)")
	cmd.Flags().BoolVar(&o.Diff, "diff", false, "with --dryrun, also print a diff of every rewritten note")
}

// setupLogging configures zerolog based on flags and attaches both loggers
// to ctx
func setupLogging(ctx context.Context, o *opts.RootOpts) context.Context {
	level := zerolog.WarnLevel
	if o.Debug {
		level = zerolog.DebugLevel
	}

	zlog := zerolog.New(o.Stderr).Level(level).With().Timestamp().Logger()

	ctx = zlog.WithContext(ctx)
	return log.NewContext(ctx, log.New(o.Stdout, o.Stderr, zlog))
}
