package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyField is returned when a site name or password is empty or
	// whitespace-only.
	ErrEmptyField = errors.New("site name and password cannot be empty")

	// ErrInvalidUTF8 is returned when a site name or password is not valid
	// UTF-8 text.
	ErrInvalidUTF8 = errors.New("site name and password must be valid UTF-8")

	// ErrSiteNotFound is returned when a removal targets an unknown site.
	ErrSiteNotFound = errors.New("site not found")

	// ErrPasswordNotFound is returned when the site exists but holds no
	// exactly-matching password.
	ErrPasswordNotFound = errors.New("password not found")

	// ErrSnapshotNotFound is returned by a StorageBackend that has never been
	// written to.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrCorruptStorage is returned when a snapshot exists but cannot be decoded.
	ErrCorruptStorage = errors.New("corrupt storage")

	// ErrUnsupportedVersion is returned for snapshots written by a newer format.
	// Errors carrying it also match ErrCorruptStorage.
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")

	// ErrIO is matched by every storage read/write failure.
	ErrIO = errors.New("storage i/o failed")

	// ErrTimeout is returned when a storage operation exceeds its deadline.
	// Errors carrying it also match ErrIO.
	ErrTimeout = errors.New("storage i/o timed out")
)

// ValidationError reports a user-correctable input problem. Err is
// ErrEmptyField when unset, or ErrInvalidUTF8.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Err == nil || e.Err == ErrEmptyField {
		return fmt.Sprintf("%s: %s is empty", ErrEmptyField, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Field)
}

func (e *ValidationError) Unwrap() error {
	if e.Err == nil {
		return ErrEmptyField
	}
	return e.Err
}

// NotFoundError reports a missing removal target. Err is ErrSiteNotFound or
// ErrPasswordNotFound.
type NotFoundError struct {
	Site string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", e.Err, e.Site)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// CorruptStorageError reports a snapshot that exists but is not valid.
type CorruptStorageError struct {
	Reason string
	Err    error
}

func (e *CorruptStorageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", ErrCorruptStorage, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %v", ErrCorruptStorage, e.Reason, e.Err)
}

func (e *CorruptStorageError) Unwrap() error { return e.Err }

// Is makes every CorruptStorageError match ErrCorruptStorage.
func (e *CorruptStorageError) Is(target error) bool { return target == ErrCorruptStorage }

// IOError reports a failed storage read or write.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Is makes every IOError match ErrIO.
func (e *IOError) Is(target error) bool { return target == ErrIO }

// NewIOError wraps err as an IOError for op. Errors that are already
// classified as I/O failures are returned unchanged.
func NewIOError(op string, err error) error {
	if err == nil {
		return nil
	}
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return err
	}
	return &IOError{Op: op, Err: err}
}
