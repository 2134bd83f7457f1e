package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"passkeep/internal/domain"
)

// DefaultFilename is the snapshot file name inside the passkeep home.
const DefaultFilename = "passwords.json"

// FileBackend keeps the snapshot in a single JSON file.
type FileBackend struct {
	path string
	mu   sync.Mutex
}

// NewFileBackend returns a FileBackend writing to path.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Path returns the snapshot file location.
func (b *FileBackend) Path() string { return b.path }

// ReadSnapshot returns the file contents, or domain.ErrSnapshotNotFound when
// the file does not exist.
func (b *FileBackend) ReadSnapshot(ctx context.Context) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, ContextError("read", err)
	}
	data, ok, err := readFile(b.path)
	if err != nil {
		return nil, domain.NewIOError("read", err)
	}
	if !ok {
		return nil, domain.ErrSnapshotNotFound
	}
	return data, nil
}

// WriteSnapshot atomically replaces the file with data.
func (b *FileBackend) WriteSnapshot(ctx context.Context, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return ContextError("write", err)
	}
	if err := os.MkdirAll(filepath.Dir(b.path), 0o700); err != nil {
		return domain.NewIOError("write", err)
	}
	if err := writeFile(ctx, b.path, data, 0o600); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return ContextError("write", err)
		}
		return domain.NewIOError("write", err)
	}
	return nil
}

// Compile-time assertion that FileBackend implements domain.StorageBackend.
var _ domain.StorageBackend = (*FileBackend)(nil)
