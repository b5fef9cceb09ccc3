package photonbeetle

import (
	"crypto/subtle"

	"github.com/codahale/photonbeetle/internal/mem"
)

func seal(rate int, dst, key, nonce, additionalData, plaintext []byte) []byte {
	ret, out := mem.SliceForAppend(dst, len(plaintext)+TagSize)
	ciphertext, tag := out[:len(plaintext)], out[len(plaintext):]

	d := initAEAD(rate, key, nonce)

	if len(additionalData) == 0 && len(plaintext) == 0 {
		d.separate(1)
		d.squeezeTag(tag)
		return ret
	}

	c0, c1 := domainConstants(rate, len(additionalData), len(plaintext))

	if len(additionalData) > 0 {
		d.absorb(additionalData, c0)
	}

	if len(plaintext) > 0 {
		for off := 0; off < len(plaintext); off += rate {
			n := min(rate, len(plaintext)-off)
			d.permute()
			d.rho(ciphertext[off:off+n], plaintext[off:off+n])
		}
		d.separate(c1)
	}

	d.squeezeTag(tag)
	return ret
}

func open(rate int, dst, key, nonce, additionalData, ciphertextAndTag []byte) ([]byte, error) {
	if len(ciphertextAndTag) < TagSize {
		return nil, ErrInvalidCiphertext
	}

	ret, plaintext := mem.SliceForAppend(dst, len(ciphertextAndTag)-TagSize)
	ciphertext, receivedTag := ciphertextAndTag[:len(plaintext)], ciphertextAndTag[len(plaintext):]
	var expectedTag [TagSize]byte

	d := initAEAD(rate, key, nonce)

	if len(additionalData) == 0 && len(ciphertext) == 0 {
		d.separate(1)
		d.squeezeTag(expectedTag[:])
	} else {
		c0, c1 := domainConstants(rate, len(additionalData), len(ciphertext))

		if len(additionalData) > 0 {
			d.absorb(additionalData, c0)
		}

		if len(ciphertext) > 0 {
			for off := 0; off < len(ciphertext); off += rate {
				n := min(rate, len(ciphertext)-off)
				d.permute()
				d.rhoInv(plaintext[off:off+n], ciphertext[off:off+n])
			}
			d.separate(c1)
		}

		d.squeezeTag(expectedTag[:])
	}

	if subtle.ConstantTimeCompare(receivedTag, expectedTag[:]) == 0 {
		clear(plaintext)
		return nil, ErrInvalidCiphertext
	}
	return ret, nil
}

func initAEAD(rate int, key, nonce []byte) *sponge {
	if len(key) != KeySize {
		panic("photonbeetle: invalid key size")
	}
	if len(nonce) != NonceSize {
		panic("photonbeetle: invalid nonce size")
	}

	d := newSponge(rate)
	copy(d.s[0:16], nonce)
	copy(d.s[16:32], key)
	return d
}

// domainConstants picks the phase-closing constants: c0 closes the
// associated data phase and c1 closes the message phase. Together with the
// empty-input shortcut they give each of the eight (AD present, message
// present, AD block-aligned, message block-aligned) categories a distinct
// state at tag time, which is what blocks forgeries across categories.
func domainConstants(rate, adLen, msgLen int) (c0, c1 byte) {
	switch {
	case msgLen > 0 && adLen%rate == 0:
		c0 = 1
	case msgLen > 0:
		c0 = 2
	case adLen%rate == 0:
		c0 = 3
	default:
		c0 = 4
	}

	switch {
	case adLen > 0 && msgLen%rate == 0:
		c1 = 1
	case adLen > 0:
		c1 = 2
	case msgLen%rate == 0:
		c1 = 5
	default:
		c1 = 6
	}

	return c0, c1
}
