// SPDX-License-Identifier: MIT

package keymatrix_test

import (
	"fmt"

	"github.com/katalvlaran/playfair/keymatrix"
)

// ExampleNew builds the square used in the Wikipedia walkthrough.
func ExampleNew() {
	km, err := keymatrix.New("playfair example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(km)

	// Output:
	// P L A Y F
	// I R E X M
	// B C D G H
	// K N O Q S
	// T U V W Z
}

// ExampleKeyMatrix_Position shows that J shares the cell of I.
func ExampleKeyMatrix_Position() {
	km, _ := keymatrix.New("playfair example")
	i, _ := km.Position('i')
	j, _ := km.Position('J')
	fmt.Printf("I=%v J=%v\n", i, j)

	// Output:
	// I={1 0} J={1 0}
}

// ExampleNormalize strips everything outside the 25-letter alphabet.
func ExampleNormalize() {
	fmt.Println(keymatrix.Normalize("Jump, déjà-vu!"))

	// Output:
	// IUMPDEIAVU
}
