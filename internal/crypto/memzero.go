package crypto

import "runtime"

// Wipe overwrites b with zeros once a secret-bearing buffer is no longer
// needed. Copies made elsewhere by the runtime are not reached.
//
//go:noinline
func Wipe(b []byte) {
	clear(b)
	runtime.KeepAlive(b)
}
