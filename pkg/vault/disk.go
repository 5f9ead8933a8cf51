package vault

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// markdownGlob matches every markdown file in the vault, at any depth.
const markdownGlob = "**/*.md"

// DiskStore is a Store backed by a vault directory on the local filesystem.
type DiskStore struct {
	root string
}

// NewDiskStore creates a store rooted at the given vault directory.
func NewDiskStore(root string) (*DiskStore, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Errorf("resolving vault root: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, errors.Errorf("checking vault root: %w", err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("vault root is not a directory: %s", abs)
	}

	return &DiskStore{root: abs}, nil
}

// Root returns the absolute vault root directory.
func (s *DiskStore) Root() string {
	return s.root
}

// abs maps a vault-relative handle to an absolute host path.
func (s *DiskStore) abs(file File) string {
	return filepath.Join(s.root, filepath.FromSlash(file.Path))
}

// rel maps an absolute host path back to a vault-relative slash path.
func (s *DiskStore) rel(path string) (string, error) {
	rel, err := filepath.Rel(s.root, path)
	if err != nil {
		return "", errors.Errorf("relativizing %s: %w", path, err)
	}
	return filepath.ToSlash(rel), nil
}

// Read implements Store.Read
func (s *DiskStore) Read(ctx context.Context, file File) (string, error) {
	data, err := os.ReadFile(s.abs(file))
	if err != nil {
		return "", errors.Errorf("reading %s: %w", file.Path, err)
	}
	return string(data), nil
}

// Write implements Store.Write. The content lands atomically: it is written
// to a temp file in the same directory and renamed over the target, so a
// concurrent reader never observes a half-written note.
func (s *DiskStore) Write(ctx context.Context, file File, content string) error {
	target := s.abs(file)

	tmp, err := os.CreateTemp(filepath.Dir(target), ".sepsync-*")
	if err != nil {
		return errors.Errorf("creating temp file for %s: %w", file.Path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Errorf("writing %s: %w", file.Path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Errorf("closing temp file for %s: %w", file.Path, err)
	}

	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return errors.Errorf("setting permissions for %s: %w", file.Path, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return errors.Errorf("replacing %s: %w", file.Path, err)
	}

	return nil
}

// ListMarkdownFiles implements Store.ListMarkdownFiles
func (s *DiskStore) ListMarkdownFiles(ctx context.Context) ([]File, error) {
	var files []File

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		rel, err := s.rel(path)
		if err != nil {
			return err
		}

		ok, err := doublestar.Match(markdownGlob, rel)
		if err != nil {
			return err
		}
		if ok {
			files = append(files, NewFile(rel))
		}
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("walking vault: %w", err)
	}

	return files, nil
}

// Subscribe implements Store.Subscribe. It watches the vault tree
// recursively and translates filesystem notifications into Events:
// writes become EventModify, newly created files become EventSave.
// Directories created while watching are added to the watch set.
func (s *DiskStore) Subscribe(ctx context.Context) (<-chan Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Errorf("creating watcher: %w", err)
	}

	// Watch every directory in the tree; fsnotify is not recursive.
	err = filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		watcher.Close()
		return nil, errors.Errorf("watching vault tree: %w", err)
	}

	events := make(chan Event, 16)
	go s.pump(ctx, watcher, events)
	return events, nil
}

// pump translates raw watcher notifications until ctx is cancelled.
func (s *DiskStore) pump(ctx context.Context, watcher *fsnotify.Watcher, events chan<- Event) {
	defer close(events)
	defer watcher.Close()

	logger := zerolog.Ctx(ctx)

	for {
		select {
		case <-ctx.Done():
			return

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn().Err(err).Msg("watcher error")

		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			info, err := os.Stat(ev.Name)
			if err != nil {
				continue
			}
			if info.IsDir() {
				if ev.Op&fsnotify.Create != 0 {
					if err := watcher.Add(ev.Name); err != nil {
						logger.Warn().Err(err).Str("dir", ev.Name).Msg("watching new directory")
					}
				}
				continue
			}
			if !info.Mode().IsRegular() {
				continue
			}

			rel, err := s.rel(ev.Name)
			if err != nil {
				logger.Warn().Err(err).Str("path", ev.Name).Msg("ignoring event outside vault")
				continue
			}

			kind := EventModify
			if ev.Op&fsnotify.Create != 0 {
				kind = EventSave
			}

			select {
			case events <- Event{Kind: kind, File: NewFile(rel)}:
			case <-ctx.Done():
				return
			}
		}
	}
}
