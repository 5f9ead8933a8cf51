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

package operation

import (
	"sync"

	"github.com/walteh/sepsync/pkg/config"
	"github.com/walteh/sepsync/pkg/vault"
)

// 📢 Notifier receives user-facing progress callbacks from vault operations
type Notifier interface {
	SweepStarted(total int)
	SweepProgress(processed, total int)
	SweepFinished(succeeded, failed int)
	SweepAlreadyRunning()
	FileConverted(path string, rewrites int)
	FileWouldChange(path string, rewrites int)
	FileError(path string, err error)
}

// ⚙️ Options configures the processor and sweeper
type Options struct {
	Store         vault.Store
	Filter        *vault.Filter
	Settings      *config.Settings
	Notifier      Notifier
	HostIsWindows bool
	DryRun        bool
}

// 🔒 inflight is an advisory per-file lock shared by the debounced trigger
// path and the sweep path, so two writers never race on the same note
type inflight struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func newInflight() *inflight {
	return &inflight{held: make(map[string]struct{})}
}

// tryAcquire marks path as being processed; false means someone else holds it
func (g *inflight) tryAcquire(path string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, held := g.held[path]; held {
		return false
	}
	g.held[path] = struct{}{}
	return true
}

func (g *inflight) release(path string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.held, path)
}
