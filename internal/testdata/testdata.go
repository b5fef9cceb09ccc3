// Package testdata generates deterministic byte strings for tests and fuzz
// corpora.
package testdata

import (
	"golang.org/x/crypto/sha3"
)

// DRBG is a deterministic byte source backed by SHAKE-128.
type DRBG struct {
	xof sha3.ShakeHash
}

// New returns a DRBG seeded with the given domain string. Two DRBGs with the
// same domain produce the same byte stream.
func New(domain string) *DRBG {
	xof := sha3.NewShake128()
	_, _ = xof.Write([]byte(domain))
	return &DRBG{xof: xof}
}

// Data returns the next n bytes of the stream.
func (d *DRBG) Data(n int) []byte {
	b := make([]byte, n)
	_, _ = d.xof.Read(b)
	return b
}
