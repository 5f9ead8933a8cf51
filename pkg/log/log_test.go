package log_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sepsync/pkg/log"
	"github.com/walteh/sepsync/pkg/operation"
)

// The notifier must satisfy the operation package's callback surface.
var _ operation.Notifier = (*log.UserNotifier)(nil)

func TestUserNotifier_Smoke(t *testing.T) {
	logger := zerolog.Nop()
	ctx := logger.WithContext(context.Background())

	n := log.NewUserNotifier(ctx)

	n.Header("normalizing separators")
	n.SweepStarted(45)
	n.SweepProgress(20, 45)
	n.SweepProgress(45, 45)
	n.FileConverted("notes/a.md", 2)
	n.FileWouldChange("notes/b.md", 1)
	n.FileError("notes/c.md", errors.New("boom"))
	n.SweepAlreadyRunning()
	n.SweepFinished(42, 3)
}
