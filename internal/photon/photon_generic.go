package photon

// permuteGeneric is a table-free rendition of the permutation working on one
// cell per byte, with the column mixing applied as eight successive
// multiplications by the serial matrix rather than one multiply by its
// precomputed eighth power. It exists to cross-check Permute and the derived
// tables against the definitional form.
func permuteGeneric(state *[Width]byte) {
	var m [64]byte
	for i, b := range state {
		m[2*i] = b & 0xF
		m[2*i+1] = b >> 4
	}

	for r := range rounds {
		// AddConstant
		for i := range 8 {
			m[i*8] ^= rc[r*8+i]
		}

		// SubCells
		for i, c := range m {
			m[i] = sbox4[c]
		}

		// ShiftRows
		var row [8]byte
		for i := 1; i < 8; i++ {
			copy(row[:], m[i*8:i*8+8])
			for j := range 8 {
				m[i*8+j] = row[(j+i)%8]
			}
		}

		// MixColumnSerial: the serial matrix shifts the state up one row and
		// fills the last row with the Z-weighted column sum; applying it
		// eight times mixes every column completely.
		for range 8 {
			var last [8]byte
			for j := range 8 {
				var acc byte
				for k := range 8 {
					acc ^= gf16Mul(serialLast[k], m[k*8+j])
				}
				last[j] = acc
			}
			copy(m[:56], m[8:])
			copy(m[56:], last[:])
		}
	}

	for i := range state {
		state[i] = m[2*i+1]<<4 | m[2*i]
	}
}
