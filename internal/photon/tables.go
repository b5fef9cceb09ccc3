package photon

// The 4-bit S-box, figure 2.1 of the Photon-Beetle specification.
var sbox4 = [16]byte{
	0xC, 0x5, 0x6, 0xB, 0x9, 0x0, 0xA, 0xD, 0x3, 0xE, 0xF, 0x8, 0x4, 0x7, 0x1, 0x2,
}

// irp is the irreducible polynomial x^4 + x + 1 reduced to its low nibble;
// after a carrying left shift the dropped x^4 term contributes x + 1.
const irp = 0x13 & 0xF

// Round constants, eight per round. RC[8*r+i] is XORed into the first cell of
// row i during round r. Each value is the round's LFSR output XORed with a
// fixed per-row constant, see figure 2.1 of the specification.
var rc = [96]byte{
	1, 0, 2, 6, 14, 15, 13, 9,
	3, 2, 0, 4, 12, 13, 15, 11,
	7, 6, 4, 0, 8, 9, 11, 15,
	14, 15, 13, 9, 1, 0, 2, 6,
	13, 12, 14, 10, 2, 3, 1, 5,
	11, 10, 8, 12, 4, 5, 7, 3,
	6, 7, 5, 1, 9, 8, 10, 14,
	12, 13, 15, 11, 3, 2, 0, 4,
	9, 8, 10, 14, 6, 7, 5, 1,
	2, 3, 1, 5, 13, 12, 14, 10,
	5, 4, 6, 2, 10, 11, 9, 13,
	10, 11, 9, 13, 5, 4, 6, 2,
}

// serialLast is the last row of Serial[2, 4, 2, 11, 2, 8, 5, 6], the serial
// mixing matrix defined in section 1.1 of the specification. The other rows
// shift the state matrix up by one row.
var serialLast = [8]byte{2, 4, 2, 11, 2, 8, 5, 6}

// Derived tables, built once at package init. SBOX8 applies the 4-bit S-box
// to both nibbles of a byte; mulTab[a<<4|b] is a*b in GF(2^4); m8 is the
// eighth power of the serial matrix, which collapses the eight serial column
// mixings of a round into one matrix multiply.
var (
	sbox8  = makeSbox8()
	mulTab = makeMulTab()
	m8     = makeM8()
)

// gf16Mul multiplies a and b in GF(2^4) modulo x^4 + x + 1.
func gf16Mul(a, b byte) byte {
	var res byte
	for range 4 {
		if b&1 == 1 {
			res ^= a
		}
		b >>= 1

		carry := a>>3 == 1
		a = a << 1 & 0xF
		if carry {
			a ^= irp
		}
	}
	return res
}

func makeSbox8() (tab [256]byte) {
	for i := range tab {
		tab[i] = sbox4[i>>4]<<4 | sbox4[i&0xF]
	}
	return tab
}

func makeMulTab() (tab [256]byte) {
	for a := byte(0); a < 16; a++ {
		for b := byte(0); b < 16; b++ {
			tab[a<<4|b] = gf16Mul(a, b)
		}
	}
	return tab
}

func makeM8() [64]byte {
	var m [64]byte
	for i := range 7 {
		m[i*8+i+1] = 1
	}
	copy(m[56:], serialLast[:])

	m2 := matMul(m, m)
	m4 := matMul(m2, m2)
	return matMul(m4, m4)
}

// matMul multiplies two 8x8 row-major matrices over GF(2^4).
func matMul(a, b [64]byte) (res [64]byte) {
	for i := range 8 {
		for k := range 8 {
			for j := range 8 {
				res[i*8+j] ^= gf16Mul(a[i*8+k], b[k*8+j])
			}
		}
	}
	return res
}
