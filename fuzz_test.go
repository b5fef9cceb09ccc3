package photonbeetle_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/codahale/photonbeetle"
	"github.com/codahale/photonbeetle/internal/testdata"
	fuzz "github.com/trailofbits/go-fuzz-utils"
)

func FuzzSealOpen(f *testing.F) {
	drbg := testdata.New("photonbeetle seal/open")
	for range 10 {
		f.Add(drbg.Data(256))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		var key [photonbeetle.KeySize]byte
		var nonce [photonbeetle.NonceSize]byte
		keyBytes, err := tp.GetBytes()
		if err != nil {
			t.Skip(err)
		}
		nonceBytes, err := tp.GetBytes()
		if err != nil {
			t.Skip(err)
		}
		copy(key[:], keyBytes)
		copy(nonce[:], nonceBytes)

		ad, err := tp.GetBytes()
		if err != nil {
			t.Skip(err)
		}
		plaintext, err := tp.GetBytes()
		if err != nil {
			t.Skip(err)
		}

		for _, v := range variants {
			ciphertext := v.seal(nil, key[:], nonce[:], ad, plaintext)
			decrypted, err := v.open(nil, key[:], nonce[:], ad, ciphertext)
			if err != nil {
				t.Fatalf("%s: Open = %v", v.name, err)
			}
			if !bytes.Equal(decrypted, plaintext) {
				t.Fatalf("%s: Open = %x, want %x", v.name, decrypted, plaintext)
			}
		}
	})
}

func FuzzForgery(f *testing.F) {
	drbg := testdata.New("photonbeetle forgery")
	for range 10 {
		f.Add(drbg.Data(256))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		var key [photonbeetle.KeySize]byte
		var nonce [photonbeetle.NonceSize]byte
		keyBytes, err := tp.GetBytes()
		if err != nil {
			t.Skip(err)
		}
		copy(key[:], keyBytes)
		nonceBytes, err := tp.GetBytes()
		if err != nil {
			t.Skip(err)
		}
		copy(nonce[:], nonceBytes)

		plaintext, err := tp.GetBytes()
		if err != nil {
			t.Skip(err)
		}
		idx, err := tp.GetUint16()
		if err != nil {
			t.Skip(err)
		}
		mask, err := tp.GetByte()
		if err != nil || mask == 0 {
			t.Skip(err)
		}

		for _, v := range variants {
			ciphertext := v.seal(nil, key[:], nonce[:], nil, plaintext)
			ciphertext[int(idx)%len(ciphertext)] ^= mask

			dst := make([]byte, len(plaintext))
			if _, err := v.open(dst[:0], key[:], nonce[:], nil, ciphertext); !errors.Is(err, photonbeetle.ErrInvalidCiphertext) {
				t.Fatalf("%s: Open of corrupted ciphertext = %v, want ErrInvalidCiphertext", v.name, err)
			}
			for i, b := range dst {
				if b != 0 {
					t.Fatalf("%s: plaintext buffer not zeroed at %d", v.name, i)
				}
			}
		}
	})
}

func FuzzSum256(f *testing.F) {
	drbg := testdata.New("photonbeetle sum256")
	for _, n := range lengths {
		f.Add(drbg.Data(n))
	}

	f.Fuzz(func(t *testing.T, msg []byte) {
		d1 := photonbeetle.Sum256(msg)
		d2 := photonbeetle.Sum256(bytes.Clone(msg))
		if d1 != d2 {
			t.Fatalf("Sum256(%x) not deterministic", msg)
		}
	})
}
