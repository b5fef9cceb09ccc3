// Package photon implements the 256-bit Photon permutation used by the
// PHOTON-Beetle AEAD and hash modes.
//
// The state is an 8x8 matrix of GF(2^4) cells packed two to a byte: the cell
// in row i, column j lives in byte i*4+j/2, low nibble for even j. Each of
// the twelve rounds applies AddConstant, SubCells, ShiftRows, and
// MixColumnSerial, per figure 2.1 of the Photon-Beetle specification:
// https://csrc.nist.gov/CSRC/media/Projects/lightweight-cryptography/documents/finalist-round/updated-spec-doc/photon-beetle-spec-final.pdf
package photon

import (
	"encoding/binary"
	"math/bits"
)

// Width is the width of the permutation in bytes.
const Width = 32

const rounds = 12

// Permute applies the 12-round Photon256 permutation to a 256-bit state.
func Permute(state *[Width]byte) {
	for r := range rounds {
		addConstant(state, r)
		subCells(state)
		shiftRows(state)
		mixColumnSerial(state)
	}
}

// addConstant XORs the round's constants into the first column of the state
// matrix, one nibble per row.
func addConstant(state *[Width]byte, r int) {
	off := r * 8
	for i := range 8 {
		state[i*4] ^= rc[off+i]
	}
}

// subCells applies the 4-bit S-box to all 64 cells, two at a time via the
// derived 8-bit table.
func subCells(state *[Width]byte) {
	for i, b := range state {
		state[i] = sbox8[b]
	}
}

// shiftRows rotates row i left by i cells. With each row packed into a
// little-endian word, a left rotation of the nibble sequence is a right
// rotation of the word by four bits per cell.
func shiftRows(state *[Width]byte) {
	for i := 1; i < 8; i++ {
		row := binary.LittleEndian.Uint32(state[i*4:])
		binary.LittleEndian.PutUint32(state[i*4:], bits.RotateLeft32(row, -4*i))
	}
}

// mixColumnSerial multiplies the state matrix by M^8 over GF(2^4), unpacking
// to one cell per byte for the duration of the multiply.
func mixColumnSerial(state *[Width]byte) {
	var cells, out [64]byte
	for i, b := range state {
		cells[2*i] = b & 0xF
		cells[2*i+1] = b >> 4
	}

	for i := range 8 {
		off := i * 8
		for k := range 8 {
			mik := m8[off+k]
			for j := range 8 {
				out[off+j] ^= mulTab[mik<<4|cells[k*8+j]]
			}
		}
	}

	for i := range state {
		state[i] = out[2*i+1]<<4 | out[2*i]
	}
}
