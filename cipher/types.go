// SPDX-License-Identifier: MIT

package cipher

import "github.com/katalvlaran/playfair/keymatrix"

const (
	// Filler separates doubled letters and completes a trailing single letter.
	Filler = 'X'

	// AltFiller replaces Filler when the letter being padded is Filler itself.
	AltFiller = 'Q'
)

// Digraph is a pair of normalized letters processed as one unit.
type Digraph struct {
	A, B rune
}

// String returns the two letters as a string.
func (d Digraph) String() string {
	return string([]rune{d.A, d.B})
}

// Transformer is the contract shared by reversible text ciphers.
// *Cipher satisfies it.
type Transformer interface {
	Encrypt(plaintext string) string
	Decrypt(ciphertext string) (string, error)
}

// Cipher encrypts and decrypts with a fixed key square.
// Build it with New; the zero value has no key and must not be used.
type Cipher struct {
	matrix keymatrix.KeyMatrix
}

var _ Transformer = (*Cipher)(nil)
