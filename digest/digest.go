// Package digest adapts PHOTON-Beetle-Hash to the standard library's
// hash.Hash interface.
//
// The underlying scheme is one-shot over a complete message, so this adapter
// buffers everything written to it and hashes at Sum time. Callers with
// large inputs should use photonbeetle.Sum256 directly and manage the buffer
// themselves.
package digest

import (
	"hash"

	"github.com/codahale/photonbeetle"
)

// Size is the size, in bytes, of the hash's digest.
const Size = photonbeetle.DigestSize

// BlockSize is the absorption rate, in bytes, once the first 16-byte block
// has initialized the state.
const BlockSize = 4

// New returns a new hash.Hash computing the PHOTON-Beetle-Hash digest.
func New() hash.Hash {
	return &digest{buf: nil}
}

type digest struct {
	buf []byte
}

func (d *digest) Write(p []byte) (n int, err error) {
	d.buf = append(d.buf, p...)
	return len(p), nil
}

func (d *digest) Sum(b []byte) []byte {
	sum := photonbeetle.Sum256(d.buf)
	return append(b, sum[:]...)
}

func (d *digest) Reset() {
	d.buf = d.buf[:0]
}

func (d *digest) Size() int {
	return Size
}

func (d *digest) BlockSize() int {
	return BlockSize
}

var _ hash.Hash = (*digest)(nil)
