// Package playfair is a small, dependency-light implementation of the
// classical Playfair digraph cipher.
//
// 🚀 What is in the box?
//
//   - keymatrix: the 5×5 key square derived from a keyword (I and J merged),
//     plus the text normalization shared by every operation.
//   - cipher: digraph preparation (filler insertion) and the Playfair
//     row / column / rectangle rules for Encrypt and Decrypt.
//   - cmd/playfair: a cobra command wrapping the library, configured
//     through flags, PLAYFAIR_* variables or .playfair.yaml.
//
// ✨ Guarantees:
//
//   - Pure functions - no I/O in the library, no hidden state.
//   - Immutable keys - a Cipher never changes after New and is safe to share
//     between goroutines.
//   - Explicit errors - ErrInvalidKeyword and ErrInvalidCiphertext, matched
//     with errors.Is.
//
// Quick example:
//
//	c, _ := cipher.New("playfair example")
//	c.Encrypt("Hide the gold in the tree stump.") // "bmodzbxdnabekudmuixmmouvif"
//
// Playfair is a teaching cipher. It does not protect anything against a
// modern attacker.
//
//	go get github.com/katalvlaran/playfair
package playfair
