// Package aead adapts the PHOTON-Beetle AEAD variants to the standard
// library's cipher.AEAD interface.
package aead

import (
	"crypto/cipher"

	"github.com/codahale/photonbeetle"
)

// New32 returns a cipher.AEAD instance of PHOTON-Beetle-AEAD[32] using the
// given key. It panics if key is not photonbeetle.KeySize bytes.
func New32(key []byte) cipher.AEAD {
	return newAEAD(key, photonbeetle.Seal32, photonbeetle.Open32)
}

// New128 returns a cipher.AEAD instance of PHOTON-Beetle-AEAD[128] using the
// given key. It panics if key is not photonbeetle.KeySize bytes.
func New128(key []byte) cipher.AEAD {
	return newAEAD(key, photonbeetle.Seal128, photonbeetle.Open128)
}

type sealFunc func(dst, key, nonce, additionalData, plaintext []byte) []byte

type openFunc func(dst, key, nonce, additionalData, ciphertextAndTag []byte) ([]byte, error)

func newAEAD(key []byte, seal sealFunc, open openFunc) cipher.AEAD {
	if len(key) != photonbeetle.KeySize {
		panic("photonbeetle/aead: invalid key size")
	}

	a := &aead{seal: seal, open: open}
	copy(a.key[:], key)
	return a
}

type aead struct {
	key  [photonbeetle.KeySize]byte
	seal sealFunc
	open openFunc
}

func (a *aead) NonceSize() int {
	return photonbeetle.NonceSize
}

func (a *aead) Overhead() int {
	return photonbeetle.TagSize
}

func (a *aead) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	if len(nonce) != a.NonceSize() {
		panic("photonbeetle/aead: invalid nonce size")
	}
	return a.seal(dst, a.key[:], nonce, additionalData, plaintext)
}

func (a *aead) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != a.NonceSize() {
		panic("photonbeetle/aead: invalid nonce size")
	}
	return a.open(dst, a.key[:], nonce, additionalData, ciphertext)
}

var _ cipher.AEAD = (*aead)(nil)
