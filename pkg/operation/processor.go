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
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sepsync/pkg/normalize"
	"github.com/walteh/sepsync/pkg/vault"
)

// 📄 Processor runs the read → normalize → write path for a single file
type Processor struct {
	store         vault.Store
	settings      *settingsView
	notifier      Notifier
	norm          *normalize.Normalizer
	dryRun        bool
	inflightFiles *inflight
}

// settingsView captures the resolved separator inputs once at construction
type settingsView struct {
	target normalize.Separator
}

// 🏭 NewProcessor creates a processor from shared options
func NewProcessor(opts Options) *Processor {
	return &Processor{
		store: opts.Store,
		settings: &settingsView{
			target: opts.Settings.TargetSeparator(opts.HostIsWindows),
		},
		notifier:      opts.Notifier,
		norm:          normalize.New(),
		dryRun:        opts.DryRun,
		inflightFiles: newInflight(),
	}
}

// 🏃 ProcessFile normalizes one file and writes it back only when the
// content actually changed. A file already being processed by the other
// trigger path is skipped, not queued.
func (p *Processor) ProcessFile(ctx context.Context, file vault.File) error {
	logger := zerolog.Ctx(ctx)

	if !p.inflightFiles.tryAcquire(file.Path) {
		logger.Debug().Str("path", file.Path).Msg("file already being processed, skipping")
		return nil
	}
	defer p.inflightFiles.release(file.Path)

	content, err := p.store.Read(ctx, file)
	if err != nil {
		return errors.Errorf("reading %s: %w", file.Path, err)
	}

	result := p.norm.Normalize(content, p.settings.target)
	if !result.WasModified {
		logger.Debug().Str("path", file.Path).Msg("no separator rewrites needed")
		return nil
	}

	if p.dryRun {
		p.notifier.FileWouldChange(file.Path, result.RewriteCount)
		return nil
	}

	if err := p.store.Write(ctx, file, result.ModifiedContent); err != nil {
		return errors.Errorf("writing %s: %w", file.Path, err)
	}

	logger.Debug().
		Str("path", file.Path).
		Int("rewrites", result.RewriteCount).
		Msg("normalized embed paths")
	p.notifier.FileConverted(file.Path, result.RewriteCount)

	return nil
}
