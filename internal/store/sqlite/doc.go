// Package sqlite persists the credential snapshot in a SQLite database
// through the pure-Go modernc.org/sqlite driver. The schema is managed by
// golang-migrate from migrations embedded in the binary.
package sqlite
