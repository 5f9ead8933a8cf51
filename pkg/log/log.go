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

package log

import (
	"context"
	"fmt"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserNotifier surfaces transient, user-facing progress messages for
// vault operations and mirrors everything into zerolog for debugging
type UserNotifier struct {
	log zerolog.Logger
	mu  sync.Mutex
}

// 🏭 NewUserNotifier creates a notifier bound to the context logger
func NewUserNotifier(ctx context.Context) *UserNotifier {
	return &UserNotifier{
		log: *zerolog.Ctx(ctx),
	}
}

// 📝 Header prints the tool banner with a short message
func (u *UserNotifier) Header(msg string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	name := color.New(color.Bold, color.FgCyan).Sprint("sepsync")
	fmt.Printf("\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	u.log.Info().Msg(msg)
}

// 🧹 SweepStarted announces a new whole-vault sweep
func (u *UserNotifier) SweepStarted(total int) {
	u.mu.Lock()
	defer u.mu.Unlock()

	msg := fmt.Sprintf("Converting %d files", total)
	pterm.Info.WithPrefix(pterm.Prefix{Text: "🔍"}).Println(msg)
	u.log.Info().Int("total", total).Msg("sweep started")
}

// ⏳ SweepProgress reports cumulative progress after a batch settles
func (u *UserNotifier) SweepProgress(processed, total int) {
	u.mu.Lock()
	defer u.mu.Unlock()

	msg := fmt.Sprintf("Processed %d/%d files", processed, total)
	pterm.Info.WithPrefix(pterm.Prefix{Text: "⏳"}).Println(msg)
	u.log.Info().Int("processed", processed).Int("total", total).Msg("sweep progress")
}

// ✅ SweepFinished reports the final success and error totals
func (u *UserNotifier) SweepFinished(succeeded, failed int) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if failed > 0 {
		msg := fmt.Sprintf("Converted %d files, %d failed", succeeded, failed)
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(msg)
		u.log.Warn().Int("succeeded", succeeded).Int("failed", failed).Msg("sweep finished")
		return
	}

	msg := fmt.Sprintf("Converted %d files", succeeded)
	pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(msg)
	u.log.Info().Int("succeeded", succeeded).Msg("sweep finished")
}

// ⚠️ SweepAlreadyRunning tells the user their request was a no-op
func (u *UserNotifier) SweepAlreadyRunning() {
	u.mu.Lock()
	defer u.mu.Unlock()

	pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println("A conversion is already running")
	u.log.Warn().Msg("sweep already running")
}

// ✨ FileConverted reports a single rewritten file
func (u *UserNotifier) FileConverted(path string, rewrites int) {
	u.mu.Lock()
	defer u.mu.Unlock()

	msg := fmt.Sprintf("Converted %s (%d rewrites)", path, rewrites)
	pterm.Success.WithPrefix(pterm.Prefix{Text: "✨"}).Println(msg)
	u.log.Info().Str("path", path).Int("rewrites", rewrites).Msg("file converted")
}

// 📝 FileWouldChange reports a dry-run hit without writing anything
func (u *UserNotifier) FileWouldChange(path string, rewrites int) {
	u.mu.Lock()
	defer u.mu.Unlock()

	msg := fmt.Sprintf("Would convert %s (%d rewrites)", path, rewrites)
	pterm.Info.WithPrefix(pterm.Prefix{Text: "📝"}).Println(msg)
	u.log.Info().Str("path", path).Int("rewrites", rewrites).Msg("file would change")
}

// ❌ FileError reports a per-file failure
func (u *UserNotifier) FileError(path string, err error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Printf("Failed on %s\n", path)
	pterm.Error.Println(err)
	u.log.Error().Err(err).Str("path", path).Msg("file error")
}
