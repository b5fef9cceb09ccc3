// Package mem provides small buffer helpers shared by the sponge modes.
package mem

import "slices"

// XOR XORs a and b into dst. Rate blocks here are at most 16 bytes, well
// under the point where subtle.XORBytes' SIMD path pays for its call
// overhead, so this stays a scalar loop.
func XOR(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}

// SliceForAppend takes a slice and a requested number of bytes. It returns a
// slice with the contents of the given slice followed by that many bytes and
// a second slice that aliases into it and contains only the extra bytes. If
// the original slice has sufficient capacity, then no allocation is
// performed.
func SliceForAppend(in []byte, n int) (head, tail []byte) {
	head = slices.Grow(in, n)
	head = head[:len(in)+n]
	tail = head[len(in):]
	return head, tail
}
