// SPDX-License-Identifier: MIT

package cipher

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/playfair/keymatrix"
)

// New builds a Cipher from keyword.
// Returns an error matching ErrInvalidKeyword if the keyword has no letters.
func New(keyword string) (*Cipher, error) {
	km, err := keymatrix.New(keyword)
	if err != nil {
		return nil, fmt.Errorf("cipher: new: %w", err)
	}

	return &Cipher{matrix: km}, nil
}

// Rekey returns a new Cipher for keyword. The receiver is left untouched.
func (c *Cipher) Rekey(keyword string) (*Cipher, error) {
	return New(keyword)
}

// Keyword returns the 25-letter key sequence in row-major order, lower case.
func (c *Cipher) Keyword() string {
	return strings.ToLower(c.matrix.Letters())
}

// Matrix returns a copy of the key square.
func (c *Cipher) Matrix() keymatrix.KeyMatrix {
	return c.matrix
}

// Encrypt enciphers plaintext.
//
// Non-letters are dropped, J is read as I, and fillers are inserted as
// described by Digraphs. The result is lower case with an even length;
// a plaintext without letters yields "".
// Complexity: O(len(plaintext)).
func (c *Cipher) Encrypt(plaintext string) string {
	return c.apply(Digraphs(plaintext), encryptDigraph)
}

// Decrypt deciphers ciphertext.
//
// The normalized ciphertext is paired straight, without fillers. Fillers
// added during encryption are kept in the result, which is lower case.
// Returns ErrInvalidCiphertext if the letter count is odd.
// Complexity: O(len(ciphertext)).
func (c *Cipher) Decrypt(ciphertext string) (string, error) {
	digraphs, err := pairs(ciphertext)
	if err != nil {
		return "", err
	}

	return c.apply(digraphs, decryptDigraph), nil
}

// apply runs rule over every digraph and joins the lower-cased results.
func (c *Cipher) apply(digraphs []Digraph, rule func(keymatrix.KeyMatrix, Digraph) Digraph) string {
	var b strings.Builder
	b.Grow(2 * len(digraphs))
	for _, d := range digraphs {
		out := rule(c.matrix, d)
		b.WriteRune(toLower(out.A))
		b.WriteRune(toLower(out.B))
	}

	return b.String()
}

// toLower lowers an ASCII upper-case letter.
func toLower(r rune) rune {
	return r + ('a' - 'A')
}
