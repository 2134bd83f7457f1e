package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"passkeep/internal/crypto"
)

func TestChecksum_StableAndVerifiable(t *testing.T) {
	data := []byte(`{"github.com":["Tr0ub4dor&3"]}`)

	sum := crypto.Checksum(data)
	assert.Len(t, sum, 64)
	assert.Equal(t, sum, crypto.Checksum(data))
	assert.True(t, crypto.VerifyChecksum(data, sum))
}

func TestVerifyChecksum_DetectsChange(t *testing.T) {
	sum := crypto.Checksum([]byte("abc"))

	assert.False(t, crypto.VerifyChecksum([]byte("abd"), sum))
	assert.False(t, crypto.VerifyChecksum([]byte("abc"), ""))
}

func TestWipe(t *testing.T) {
	b := []byte("secret")
	crypto.Wipe(b)
	assert.Equal(t, make([]byte, 6), b)

	crypto.Wipe(nil)
}
