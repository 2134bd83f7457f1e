package interfaces

import "context"

// StorageBackend reads and writes the serialized snapshot of the store.
//
// A WriteSnapshot call either fully succeeds, after which ReadSnapshot returns
// exactly the written bytes, or fails without touching the previously
// committed snapshot.
type StorageBackend interface {
	// ReadSnapshot returns the committed snapshot, or ErrSnapshotNotFound
	// when nothing has been written yet.
	ReadSnapshot(ctx context.Context) ([]byte, error)
	// WriteSnapshot replaces the committed snapshot with data.
	WriteSnapshot(ctx context.Context, data []byte) error
}
