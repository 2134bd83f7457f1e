// Package crypto exposes the small set of primitives passkeep needs.
//
// Contents
//
//   - BLAKE2b-256 snapshot checksums and constant-time verification
//     (Checksum, VerifyChecksum)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//
// # Notes
//
// Checksums protect snapshots against truncation and bit-rot. They are not a
// MAC and give no secrecy; snapshots are stored in plaintext.
package crypto
