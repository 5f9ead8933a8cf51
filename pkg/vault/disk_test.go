package vault

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeVaultFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestNewDiskStore(t *testing.T) {
	root := t.TempDir()

	store, err := NewDiskStore(root)
	require.NoError(t, err)
	assert.Equal(t, root, store.Root())

	_, err = NewDiskStore(filepath.Join(root, "missing"))
	require.Error(t, err)

	writeVaultFile(t, root, "file.md", "x")
	_, err = NewDiskStore(filepath.Join(root, "file.md"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestDiskStore_ReadWrite(t *testing.T) {
	root := t.TempDir()
	writeVaultFile(t, root, "notes/a.md", "original")

	store, err := NewDiskStore(root)
	require.NoError(t, err)

	ctx := context.Background()
	file := NewFile("notes/a.md")

	content, err := store.Read(ctx, file)
	require.NoError(t, err)
	assert.Equal(t, "original", content)

	require.NoError(t, store.Write(ctx, file, "rewritten"))

	content, err = store.Read(ctx, file)
	require.NoError(t, err)
	assert.Equal(t, "rewritten", content)

	// No stray temp files left behind
	entries, err := os.ReadDir(filepath.Join(root, "notes"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	_, err = store.Read(ctx, NewFile("notes/missing.md"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notes/missing.md")
}

func TestDiskStore_ListMarkdownFiles(t *testing.T) {
	root := t.TempDir()
	writeVaultFile(t, root, "inbox.md", "")
	writeVaultFile(t, root, "notes/a.md", "")
	writeVaultFile(t, root, "notes/deep/b.md", "")
	writeVaultFile(t, root, "images/cover.png", "")
	writeVaultFile(t, root, "notes/data.json", "")

	store, err := NewDiskStore(root)
	require.NoError(t, err)

	files, err := store.ListMarkdownFiles(context.Background())
	require.NoError(t, err)

	paths := make([]string, 0, len(files))
	for _, f := range files {
		assert.Equal(t, "md", f.Extension)
		paths = append(paths, f.Path)
	}
	assert.ElementsMatch(t, []string{"inbox.md", "notes/a.md", "notes/deep/b.md"}, paths)
}

func TestDiskStore_SubscribeClosesOnCancel(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	events, err := store.Subscribe(ctx)
	require.NoError(t, err)

	cancel()

	// The channel closes once the pump observes cancellation.
	for range events {
	}
}
