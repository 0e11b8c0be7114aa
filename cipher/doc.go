// SPDX-License-Identifier: MIT

// Package cipher implements the Playfair digraph substitution cipher on top
// of a keymatrix.KeyMatrix.
//
// 🚀 What is Playfair?
//
//	A classical cipher that substitutes letter pairs (digraphs) using a 5×5
//	key square. It is a teaching cipher and offers no real security.
//
// ⚙️ Usage:
//
//	c, err := cipher.New("playfair example")
//	if err != nil {
//		// ErrInvalidKeyword
//	}
//	ct := c.Encrypt("Hide the gold in the tree stump.") // "bmodzbxdnabekudmuixmmouvif"
//	pt, err := c.Decrypt(ct)                            // "hidethegoldinthetrexestump"
//
// Preprocessing (Encrypt):
//
//  1. Normalize the text (keymatrix.Normalize): letters only, upper case, J→I.
//  2. Pair letters left to right. A pair of equal letters is split by a
//     filler: X, or Q when the doubled letter is X itself.
//  3. A lone trailing letter is completed with the same filler rule.
//
// Decrypt pairs the normalized ciphertext straight, without fillers, and
// fails with ErrInvalidCiphertext on an odd letter count. Fillers inserted by
// Encrypt remain in the recovered plaintext.
//
// Digraph rules (a at (ra,ca), b at (rb,cb)):
//
//   - same row:    shift one column right (Encrypt) or left (Decrypt), wrapping.
//   - same column: shift one row down (Encrypt) or up (Decrypt), wrapping.
//   - rectangle:   a→(ra,cb), b→(rb,ca) in both directions.
//
// Output of both operations is lower case.
//
// Complexity:
//
//   - New:     O(len(keyword)).
//   - Encrypt: O(len(text)), Memory: O(len(text)).
//   - Decrypt: O(len(text)), Memory: O(len(text)).
//
// A *Cipher is never mutated after New and is safe for concurrent use.
package cipher
