package crypto

import (
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Checksum returns the hex-encoded BLAKE2b-256 digest of b.
func Checksum(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// VerifyChecksum reports whether want is the checksum of b. The comparison
// runs in constant time.
func VerifyChecksum(b []byte, want string) bool {
	got := Checksum(b)
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
