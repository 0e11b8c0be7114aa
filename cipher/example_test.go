// SPDX-License-Identifier: MIT

package cipher_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/playfair/cipher"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Encrypt / Decrypt
////////////////////////////////////////////////////////////////////////////////

// ExampleCipher_Encrypt reproduces the classic Wikipedia walkthrough.
// The doubled E in "tree" is split by the filler X.
func ExampleCipher_Encrypt() {
	c, err := cipher.New("playfair example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(c.Encrypt("Hide the gold in the tree stump."))

	// Output:
	// bmodzbxdnabekudmuixmmouvif
}

// ExampleCipher_Decrypt shows that fillers survive decryption.
func ExampleCipher_Decrypt() {
	c, _ := cipher.New("playfair example")
	pt, err := c.Decrypt("bmodzbxdnabekudmuixmmouvif")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(pt)

	_, err = c.Decrypt("bmo")
	fmt.Println(errors.Is(err, cipher.ErrInvalidCiphertext))

	// Output:
	// hidethegoldinthetrexestump
	// true
}

////////////////////////////////////////////////////////////////////////////////
// Example: Digraphs
////////////////////////////////////////////////////////////////////////////////

// ExampleDigraphs shows filler insertion between doubled letters.
func ExampleDigraphs() {
	var parts []string
	for _, d := range cipher.Digraphs("balloon") {
		parts = append(parts, d.String())
	}
	fmt.Println(strings.Join(parts, " "))

	// Output:
	// BA LX LO ON
}
