package commands

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sepsync/cmd/sepsync/opts"
	"github.com/walteh/sepsync/pkg/debounce"
	"github.com/walteh/sepsync/pkg/operation"
	"github.com/walteh/sepsync/pkg/vault"
)

// NewWatchCmd creates a new watch command
func NewWatchCmd(getOpts opts.Factory) *cobra.Command {
	var wait time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the vault and convert files as they change",
		Long: `Watch subscribes to change notifications for the vault and normalizes a
file shortly after it is edited. Bursts of edits to the same file are
debounced into a single conversion; each file has its own quiet window.
Stop with Ctrl-C; pending debounced work is cancelled, conversions already
in flight finish.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "watch").Logger().WithContext(ctx)
			logger := zerolog.Ctx(ctx)

			o, err := getOpts(ctx)
			if err != nil {
				return err
			}

			filter := vault.NewFilter(o.Settings.ExcludedList())
			options := operation.Options{
				Store:         o.Store,
				Filter:        filter,
				Settings:      o.Settings,
				Notifier:      o.Notifier,
				HostIsWindows: o.HostIsWindows,
			}
			processor := operation.NewProcessor(options)

			events, err := o.Store.Subscribe(ctx)
			if err != nil {
				return errors.Errorf("subscribing to vault changes: %w", err)
			}

			deb := debounce.New(func(path string) {
				if err := processor.ProcessFile(ctx, vault.NewFile(path)); err != nil {
					o.Notifier.FileError(path, err)
				}
			}, wait, true)
			defer deb.CancelAll()

			o.Notifier.Header("watching vault for changes")

			for {
				select {
				case <-ctx.Done():
					logger.Info().Msg("shutting down, cancelling pending conversions")
					return nil

				case ev, ok := <-events:
					if !ok {
						return nil
					}
					if !filter.Eligible(ev.File) {
						continue
					}
					logger.Debug().
						Str("path", ev.File.Path).
						Stringer("kind", ev.Kind).
						Msg("change event")
					deb.Call(ev.File.Path)
				}
			}
		},
	}

	cmd.Flags().DurationVar(&wait, "debounce", 500*time.Millisecond, "quiet window before a changed file is converted")

	return cmd
}
