package store

import (
	"context"
	"errors"
	"time"

	"passkeep/internal/domain"
)

// timeoutBackend bounds every call of the wrapped backend.
type timeoutBackend struct {
	next    domain.StorageBackend
	timeout time.Duration
}

// WithTimeout wraps next so each read and write runs under its own deadline.
// Expiry is reported as domain.ErrTimeout. A non-positive d returns next.
func WithTimeout(next domain.StorageBackend, d time.Duration) domain.StorageBackend {
	if d <= 0 {
		return next
	}
	return &timeoutBackend{next: next, timeout: d}
}

func (t *timeoutBackend) ReadSnapshot(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	data, err := t.next.ReadSnapshot(ctx)
	if err != nil {
		return nil, classify(ctx, "read", err)
	}
	return data, nil
}

func (t *timeoutBackend) WriteSnapshot(ctx context.Context, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	if err := t.next.WriteSnapshot(ctx, data); err != nil {
		return classify(ctx, "write", err)
	}
	return nil
}

// classify turns failures caused by an expired deadline into ErrTimeout.
func classify(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, domain.ErrSnapshotNotFound), errors.Is(err, domain.ErrTimeout):
		return err
	case errors.Is(err, context.DeadlineExceeded), errors.Is(ctx.Err(), context.DeadlineExceeded):
		return &domain.IOError{Op: op, Err: domain.ErrTimeout}
	default:
		return err
	}
}

// Compile-time assertion that timeoutBackend implements domain.StorageBackend.
var _ domain.StorageBackend = (*timeoutBackend)(nil)
