// Package store provides the storage backends and the snapshot format for
// passkeep.
//
// Backends move opaque snapshot bytes; EncodeSnapshot and DecodeSnapshot
// define what those bytes mean. All backends are concurrency-safe via
// internal locking, and every write either fully commits or leaves the
// previous snapshot untouched.
//
// The package includes:
//   - FileBackend, a single JSON file replaced atomically on every write
//   - MemoryBackend, an in-process backend for tests and embedding
//   - WithTimeout, a decorator bounding each backend call
//
// A SQLite backend lives in the sqlite subpackage.
package store
