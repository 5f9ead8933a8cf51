package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sepsync/cmd/sepsync/commands"
	"github.com/walteh/sepsync/cmd/sepsync/opts"
	"github.com/walteh/sepsync/pkg/config"
	"github.com/walteh/sepsync/pkg/log"
	"github.com/walteh/sepsync/pkg/vault"
)

var (
	// Flags
	configFile string
	vaultDir   string
	debug      bool
	osType     string
	excluded   string
)

// newRootOpts creates a new RootOpts with initialized dependencies
func newRootOpts(ctx context.Context) (*opts.RootOpts, error) {
	// Load persisted settings
	settings, err := config.Load(ctx, configFile)
	if err != nil {
		return nil, errors.Errorf("loading settings: %w", err)
	}

	// Apply flag overrides on top of the loaded settings
	settings = settings.Merge(&config.Settings{
		OSType:          osType,
		ExcludedFolders: excluded,
	})
	if err := settings.Validate(); err != nil {
		return nil, errors.Errorf("validating settings: %w", err)
	}

	// Open the vault
	store, err := vault.NewDiskStore(vaultDir)
	if err != nil {
		return nil, errors.Errorf("opening vault: %w", err)
	}

	return &opts.RootOpts{
		Settings:      settings,
		Store:         store,
		Notifier:      log.NewUserNotifier(ctx),
		HostIsWindows: runtime.GOOS == "windows",
	}, nil
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
}

// NewRootCmd builds the sepsync command tree
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sepsync",
		Short: "Normalize path separators in markdown image embeds",
		Long: `sepsync keeps image-embed links like ![cover](images\cover.png) valid when
a vault of markdown notes moves between Windows and macOS/Linux, by rewriting
the separator character inside embed paths toward one convention.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
	}

	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".sepsync.yaml", "settings file path")
	cmd.PersistentFlags().StringVar(&vaultDir, "vault", ".", "vault root directory")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&osType, "os", "", "separator convention: auto, windows or macos (overrides settings)")
	cmd.PersistentFlags().StringVar(&excluded, "exclude", "", "comma-separated excluded folder prefixes (overrides settings)")

	cmd.AddCommand(commands.NewSweepCmd(newRootOpts))
	cmd.AddCommand(commands.NewWatchCmd(newRootOpts))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(FormatVersion())
		},
	})

	return cmd
}
