// Package photonbeetle implements the PHOTON-Beetle family of lightweight
// symmetric primitives: a 32-byte-digest hash and an authenticated
// encryption with associated data scheme in two rate variants, all built on
// the 256-bit Photon permutation in a sponge construction. PHOTON-Beetle was
// a finalist in the [NIST lightweight cryptography] standardization effort;
// this package follows the final-round [specification].
//
// The AEAD variants differ only in how many bytes of state are absorbed or
// squeezed between permutation calls: PHOTON-Beetle-AEAD[32] ([Seal32],
// [Open32]) moves 4 bytes per call and PHOTON-Beetle-AEAD[128] ([Seal128],
// [Open128]) moves 16. The 128-bit-rate variant is roughly four times
// faster; the 32-bit-rate variant is the primary submission. Both use
// 16-byte keys, 16-byte nonces, and 16-byte tags, and the two are distinct
// schemes: a ciphertext sealed at one rate will not open at the other.
//
// All operations are one-shot over complete messages. For the
// standard-library integration surfaces, see the aead and digest
// subpackages.
//
// [NIST lightweight cryptography]: https://csrc.nist.gov/projects/lightweight-cryptography
// [specification]: https://csrc.nist.gov/CSRC/media/Projects/lightweight-cryptography/documents/finalist-round/updated-spec-doc/photon-beetle-spec-final.pdf
package photonbeetle

import "errors"

const (
	// KeySize is the size of an AEAD key, in bytes.
	KeySize = 16

	// NonceSize is the size of an AEAD nonce, in bytes.
	NonceSize = 16

	// TagSize is the number of bytes added to the plaintext by Seal.
	TagSize = 16

	// DigestSize is the size of a Sum256 digest, in bytes.
	DigestSize = 32
)

// ErrInvalidCiphertext is returned when a ciphertext is inauthentic: some
// part of the key, nonce, associated data, ciphertext, or tag has been
// altered.
var ErrInvalidCiphertext = errors.New("photonbeetle: invalid ciphertext")

// Seal32 encrypts and authenticates plaintext with PHOTON-Beetle-AEAD[32],
// binding additionalData, and appends the ciphertext and a TagSize-byte tag
// to dst, returning the resulting slice.
//
// To reuse plaintext's storage for the encrypted output, use plaintext[:0]
// as dst. Otherwise, the remaining capacity of dst must not overlap
// plaintext.
//
// Seal32 panics if key is not KeySize bytes or nonce is not NonceSize bytes.
// The nonce must never be reused with the same key.
func Seal32(dst, key, nonce, additionalData, plaintext []byte) []byte {
	return seal(rate32, dst, key, nonce, additionalData, plaintext)
}

// Open32 decrypts and authenticates ciphertextAndTag, which must have been
// produced by Seal32 with the same key, nonce, and additionalData. It
// appends the plaintext to dst and returns the resulting slice; if the
// ciphertext is inauthentic it returns ErrInvalidCiphertext and any
// plaintext written to dst is zeroed.
//
// To reuse ciphertextAndTag's storage for the decrypted output, use
// ciphertextAndTag[:0] as dst. Otherwise, the remaining capacity of dst must
// not overlap ciphertextAndTag.
func Open32(dst, key, nonce, additionalData, ciphertextAndTag []byte) ([]byte, error) {
	return open(rate32, dst, key, nonce, additionalData, ciphertextAndTag)
}

// Seal128 is Seal32 with the PHOTON-Beetle-AEAD[128] rate.
func Seal128(dst, key, nonce, additionalData, plaintext []byte) []byte {
	return seal(rate128, dst, key, nonce, additionalData, plaintext)
}

// Open128 is Open32 with the PHOTON-Beetle-AEAD[128] rate.
func Open128(dst, key, nonce, additionalData, ciphertextAndTag []byte) ([]byte, error) {
	return open(rate128, dst, key, nonce, additionalData, ciphertextAndTag)
}
