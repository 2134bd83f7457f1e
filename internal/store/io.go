package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"passkeep/internal/domain"
)

// readFile reads the file at path; ok is false when the file does not exist.
func readFile(path string) (b []byte, ok bool, err error) {
	b, err = os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// writeFile writes b to a synced temp file next to path and then atomically
// replaces the target. The context is checked right before the replace, so
// an expired deadline never commits.
func writeFile(ctx context.Context, path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before the replace.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	return atomic.ReplaceFile(tmp, path)
}

// ContextError converts a context failure into a classified storage error.
// Deadline expiry becomes ErrTimeout; cancellation stays an I/O failure.
func ContextError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &domain.IOError{Op: op, Err: domain.ErrTimeout}
	}
	return domain.NewIOError(op, err)
}
