package store

import (
	"bytes"
	"context"
	"sync"

	"passkeep/internal/domain"
)

// MemoryBackend holds the snapshot in process memory.
type MemoryBackend struct {
	mu       sync.Mutex
	data     []byte
	ok       bool
	writes   int
	failNext error
}

// NewMemoryBackend returns an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend { return &MemoryBackend{} }

// NewMemoryBackendWith returns a MemoryBackend holding data as its snapshot.
func NewMemoryBackendWith(data []byte) *MemoryBackend {
	return &MemoryBackend{data: bytes.Clone(data), ok: true}
}

// ReadSnapshot returns a copy of the stored snapshot.
func (m *MemoryBackend) ReadSnapshot(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, ContextError("read", err)
	}
	if !m.ok {
		return nil, domain.ErrSnapshotNotFound
	}
	return bytes.Clone(m.data), nil
}

// WriteSnapshot replaces the stored snapshot, unless a failure was queued
// with FailNextWrite.
func (m *MemoryBackend) WriteSnapshot(ctx context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return ContextError("write", err)
	}
	if m.failNext != nil {
		err := m.failNext
		m.failNext = nil
		return domain.NewIOError("write", err)
	}
	m.data = bytes.Clone(data)
	m.ok = true
	m.writes++
	return nil
}

// FailNextWrite makes the next WriteSnapshot fail with err.
func (m *MemoryBackend) FailNextWrite(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failNext = err
}

// Snapshot returns the stored bytes and whether anything was stored.
func (m *MemoryBackend) Snapshot() ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return bytes.Clone(m.data), m.ok
}

// Writes returns the number of successful writes.
func (m *MemoryBackend) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// Compile-time assertion that MemoryBackend implements domain.StorageBackend.
var _ domain.StorageBackend = (*MemoryBackend)(nil)
