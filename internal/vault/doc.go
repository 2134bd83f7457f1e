// Package vault holds the in-memory credential store.
//
// A Store maps site names to ordered lists of credentials. Every mutation is
// applied to a copy of the committed state, written through a
// domain.StorageBackend, and only swapped in once the write succeeded, so
// memory and storage never disagree.
package vault
