package random

import (
	"crypto/rand"
	"encoding/hex"
	"io"
)

// Hex returns n random bytes encoded as a hex string of length 2n.
func Hex(n int) string {
	return hex.EncodeToString(Bytes(n))
}

// Bytes reads n bytes from the system CSPRNG, panicking if it is unavailable.
func Bytes(n int) []byte {
	data := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, data); err != nil {
		panic(err)
	}
	return data
}

// UUID returns a random (version 4) UUID as 32 hex characters without
// dashes, which is how request IDs are propagated in X-Request-ID.
func UUID() string {
	id := Bytes(16)
	id[6] &= 0x0F // clear version
	id[6] |= 0x40 // set version to 4 (random uuid)
	id[8] &= 0x3F // clear variant
	id[8] |= 0x80 // set to IETF variant
	return hex.EncodeToString(id)
}
