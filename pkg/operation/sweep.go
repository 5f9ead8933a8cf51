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
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"

	"github.com/walteh/sepsync/pkg/vault"
)

// batchSize is how many files one sweep batch processes concurrently.
// Batches run strictly in sequence; batch N+1 starts only after every file
// of batch N has settled.
const batchSize = 20

// 📊 Result reports the outcome of a completed sweep
type Result struct {
	Total     int // eligible files enumerated
	Succeeded int
	Failed    int
}

// 🧹 Sweeper drives a one-shot pass over every eligible file in the vault
type Sweeper struct {
	store     vault.Store
	filter    *vault.Filter
	processor *Processor
	notifier  Notifier

	mu         sync.Mutex
	inProgress bool
}

// 🏭 NewSweeper creates a sweeper from shared options
func NewSweeper(opts Options, processor *Processor) *Sweeper {
	return &Sweeper{
		store:     opts.Store,
		filter:    opts.Filter,
		processor: processor,
		notifier:  opts.Notifier,
	}
}

// InProgress reports whether a sweep is currently running.
func (s *Sweeper) InProgress() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inProgress
}

// tryBegin claims the sweep slot; false means one is already running.
func (s *Sweeper) tryBegin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inProgress {
		return false
	}
	s.inProgress = true
	return true
}

func (s *Sweeper) end() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inProgress = false
}

// 🏃 Run sweeps the whole vault once. A request while a sweep is already
// running is a no-op, not an error: the user is notified and a nil Result
// returned. Per-file failures are counted, never propagated; the only error
// Run can return is a failure to enumerate the vault.
func (s *Sweeper) Run(ctx context.Context) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	if !s.tryBegin() {
		logger.Info().Msg("sweep requested while one is already running")
		s.notifier.SweepAlreadyRunning()
		return nil, nil
	}
	defer s.end()

	files, err := s.store.ListMarkdownFiles(ctx)
	if err != nil {
		return nil, errors.Errorf("listing markdown files: %w", err)
	}

	eligible := make([]vault.File, 0, len(files))
	for _, f := range files {
		if s.filter.Eligible(f) {
			eligible = append(eligible, f)
		}
	}

	result := &Result{Total: len(eligible)}
	s.notifier.SweepStarted(len(eligible))
	logger.Info().Int("files", len(eligible)).Msg("starting vault sweep")

	var succeeded, failed int32

	for start := 0; start < len(eligible); start += batchSize {
		end := start + batchSize
		if end > len(eligible) {
			end = len(eligible)
		}
		batch := eligible[start:end]

		g, gctx := errgroup.WithContext(ctx)
		for _, file := range batch {
			file := file
			g.Go(func() error {
				if err := s.processor.ProcessFile(gctx, file); err != nil {
					atomic.AddInt32(&failed, 1)
					logger.Error().Err(err).Str("path", file.Path).Msg("processing file")
					s.notifier.FileError(file.Path, err)
					return nil // one file's failure never aborts the batch
				}
				atomic.AddInt32(&succeeded, 1)
				return nil
			})
		}
		_ = g.Wait()

		s.notifier.SweepProgress(end, len(eligible))
	}

	result.Succeeded = int(atomic.LoadInt32(&succeeded))
	result.Failed = int(atomic.LoadInt32(&failed))

	logger.Info().
		Int("succeeded", result.Succeeded).
		Int("failed", result.Failed).
		Msg("vault sweep complete")
	s.notifier.SweepFinished(result.Succeeded, result.Failed)

	return result, nil
}
