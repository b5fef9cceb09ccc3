package aead_test

import (
	"fmt"

	"github.com/codahale/photonbeetle/aead"
)

func Example() {
	key := []byte("a 16-byte secret")
	nonce := []byte("a 16-byte nonce!")
	ad := []byte("some additional data")
	plaintext := []byte("hello world")

	c := aead.New128(key)

	ciphertext := c.Seal(nil, nonce, plaintext, ad)
	fmt.Printf("overhead  = %d bytes\n", len(ciphertext)-len(plaintext))

	decrypted, err := c.Open(nil, nonce, ciphertext, ad)
	if err != nil {
		panic(err)
	}
	fmt.Printf("plaintext = %s\n", decrypted)

	// Output:
	// overhead  = 16 bytes
	// plaintext = hello world
}
