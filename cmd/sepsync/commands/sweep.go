package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sepsync/cmd/sepsync/opts"
	"github.com/walteh/sepsync/pkg/operation"
	"github.com/walteh/sepsync/pkg/vault"
)

// NewSweepCmd creates a new sweep command
func NewSweepCmd(getOpts opts.Factory) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Convert every eligible markdown file in the vault once",
		Long: `Sweep enumerates all eligible markdown files and normalizes their
image-embed path separators. It will:
1. List markdown files and apply the exclusion filter
2. Process files in batches of 20, each batch concurrently
3. Report progress after every batch and totals at the end`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "sweep").Logger().WithContext(ctx)

			o, err := getOpts(ctx)
			if err != nil {
				return err
			}

			o.Notifier.Header("converting all vault files")

			options := operation.Options{
				Store:         o.Store,
				Filter:        vault.NewFilter(o.Settings.ExcludedList()),
				Settings:      o.Settings,
				Notifier:      o.Notifier,
				HostIsWindows: o.HostIsWindows,
				DryRun:        dryRun,
			}
			sweeper := operation.NewSweeper(options, operation.NewProcessor(options))

			if _, err := sweeper.Run(ctx); err != nil {
				return errors.Errorf("running sweep: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report rewrites without writing any file")

	return cmd
}
