package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"passkeep/internal/domain"
	"passkeep/internal/store"
)

// Backend stores the snapshot as the single row of the snapshots table.
type Backend struct {
	db *DB
}

// NewBackend returns a Backend over db.
func NewBackend(db *DB) *Backend {
	return &Backend{db: db}
}

// ReadSnapshot returns the stored snapshot, or domain.ErrSnapshotNotFound
// when the table is empty.
func (b *Backend) ReadSnapshot(ctx context.Context) ([]byte, error) {
	const query = `SELECT data FROM snapshots WHERE id = 1`

	var data []byte
	err := b.db.Reader.QueryRowContext(ctx, query).Scan(&data)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, domain.ErrSnapshotNotFound
	case err != nil:
		return nil, classify(ctx, "read", err)
	}
	return data, nil
}

// WriteSnapshot replaces the stored snapshot inside one transaction.
func (b *Backend) WriteSnapshot(ctx context.Context, data []byte) error {
	const upsert = `INSERT INTO snapshots (id, data, updated_at) VALUES (1, ?, CURRENT_TIMESTAMP)
ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`

	tx, err := b.db.Writer.BeginTx(ctx, nil)
	if err != nil {
		return classify(ctx, "write", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, upsert, data); err != nil {
		return classify(ctx, "write", err)
	}
	if err := ctx.Err(); err != nil {
		return store.ContextError("write", err)
	}
	if err := tx.Commit(); err != nil {
		return classify(ctx, "write", err)
	}
	return nil
}

// Close releases the underlying database.
func (b *Backend) Close() error { return b.db.Close() }

func classify(ctx context.Context, op string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return store.ContextError(op, ctxErr)
	}
	return domain.NewIOError(op, err)
}

// Compile-time assertion that Backend implements domain.StorageBackend.
var _ domain.StorageBackend = (*Backend)(nil)
