package vault

import (
	"context"
	"strings"
)

// EventKind distinguishes the change notifications a store emits.
type EventKind int

const (
	// EventModify means a file's content changed on disk.
	EventModify EventKind = iota
	// EventSave means a file was newly created or saved into place.
	EventSave
)

// String returns a string representation of the event kind
func (k EventKind) String() string {
	switch k {
	case EventModify:
		return "modify"
	case EventSave:
		return "save"
	default:
		return "unknown"
	}
}

// File is a handle to a document inside the vault. Path is vault-relative
// and uses forward slashes regardless of the host OS; Extension is the
// suffix after the final dot, without the dot.
type File struct {
	Path      string
	Extension string
}

// NewFile builds a handle from a vault-relative path.
func NewFile(path string) File {
	f := File{Path: path}
	if idx := strings.LastIndex(path, "."); idx >= 0 && idx < len(path)-1 {
		f.Extension = path[idx+1:]
	}
	return f
}

// Event is one change notification for a file in the vault.
type Event struct {
	Kind EventKind
	File File
}

// Store is the document store the normalizer operates against. Reads and
// writes may fail with ordinary I/O errors; Subscribe delivers change
// events until ctx is cancelled, then closes the channel.
type Store interface {
	Read(ctx context.Context, file File) (string, error)
	Write(ctx context.Context, file File, content string) error
	ListMarkdownFiles(ctx context.Context) ([]File, error)
	Subscribe(ctx context.Context) (<-chan Event, error)
}
