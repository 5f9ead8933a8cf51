package opts

import (
	"context"

	"github.com/walteh/sepsync/pkg/config"
	"github.com/walteh/sepsync/pkg/log"
	"github.com/walteh/sepsync/pkg/vault"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Settings      *config.Settings
	Store         *vault.DiskStore
	Notifier      *log.UserNotifier
	HostIsWindows bool
}

// Factory builds RootOpts after flag parsing has happened.
type Factory func(ctx context.Context) (*RootOpts, error)
