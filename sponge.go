package photonbeetle

import (
	"encoding/binary"
	"math/bits"

	"github.com/codahale/photonbeetle/internal/mem"
	"github.com/codahale/photonbeetle/internal/photon"
)

const (
	rate32  = 4  // absorption/squeeze rate of PHOTON-Beetle-AEAD[32] and of the hash after its first block
	rate128 = 16 // absorption/squeeze rate of PHOTON-Beetle-AEAD[128]
)

// sponge is a Photon256 state plus the rate at which it absorbs and
// squeezes. Bytes 0..rate-1 are the rate region; everything after is
// capacity and is only ever touched through domain separation.
type sponge struct {
	s    [photon.Width]byte
	rate int
}

func newSponge(rate int) *sponge {
	if rate != rate32 && rate != rate128 {
		panic("photonbeetle: rate must be 4 or 16 bytes")
	}
	return &sponge{rate: rate}
}

func (d *sponge) permute() {
	photon.Permute(&d.s)
}

// separate XORs a domain separation constant into the top three bits of the
// final capacity byte, closing the current sponge phase. The constant
// records which categorical branch the computation took, keeping the state
// spaces of the branches disjoint.
func (d *sponge) separate(c byte) {
	d.s[31] ^= c << 5
}

// absorb folds msg into the state one rate-sized block at a time, permuting
// before each block. A final partial block is closed with a 0x01 pad byte; a
// message that is a positive multiple of the rate gets no pad, and an empty
// message touches nothing. Either way the phase ends with the domain
// constant c.
func (d *sponge) absorb(msg []byte, c byte) {
	for len(msg) >= d.rate {
		d.permute()
		mem.XOR(d.s[:d.rate], d.s[:d.rate], msg[:d.rate])
		msg = msg[d.rate:]
	}

	if len(msg) > 0 {
		d.permute()
		mem.XOR(d.s[:len(msg)], d.s[:len(msg)], msg)
		d.s[len(msg)] ^= 0x01
	}

	d.separate(c)
}

// shuffle writes the keystream block derived from the rate region into out:
// the two halves of the rate swap places and the low half is rotated right
// by one bit, both halves read as little-endian words.
func (d *sponge) shuffle(out []byte) {
	switch d.rate {
	case rate32:
		lo := binary.LittleEndian.Uint16(d.s[0:2])
		copy(out[0:2], d.s[2:4])
		binary.LittleEndian.PutUint16(out[2:4], bits.RotateLeft16(lo, -1))
	case rate128:
		lo := binary.LittleEndian.Uint64(d.s[0:8])
		copy(out[0:8], d.s[8:16])
		binary.LittleEndian.PutUint64(out[8:16], bits.RotateLeft64(lo, -1))
	}
}

// rho encrypts up to one rate block: the shuffled rate is the keystream, and
// the plaintext (padded if short) replaces the rate by XOR. ciphertext and
// plaintext may be the same slice.
func (d *sponge) rho(ciphertext, plaintext []byte) {
	var ks [rate128]byte
	d.shuffle(ks[:])

	for i := range plaintext {
		p := plaintext[i]
		ciphertext[i] = ks[i] ^ p
		d.s[i] ^= p
	}
	if len(plaintext) < d.rate {
		d.s[len(plaintext)] ^= 0x01
	}
}

// rhoInv inverts rho, recovering the plaintext and folding it back into the
// rate so that both directions agree on the next state. plaintext and
// ciphertext may be the same slice.
func (d *sponge) rhoInv(plaintext, ciphertext []byte) {
	var ks [rate128]byte
	d.shuffle(ks[:])

	for i := range ciphertext {
		p := ks[i] ^ ciphertext[i]
		plaintext[i] = p
		d.s[i] ^= p
	}
	if len(ciphertext) < d.rate {
		d.s[len(ciphertext)] ^= 0x01
	}
}

// squeezeTag permutes and copies out the first 16 bytes of state, twice for
// a 32-byte digest.
func (d *sponge) squeezeTag(tag []byte) {
	if len(tag) != TagSize && len(tag) != DigestSize {
		panic("photonbeetle: tag must be 16 or 32 bytes")
	}

	d.permute()
	copy(tag, d.s[:TagSize])

	if len(tag) == DigestSize {
		d.permute()
		copy(tag[TagSize:], d.s[:TagSize])
	}
}
