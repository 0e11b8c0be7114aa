// SPDX-License-Identifier: MIT

package cipher

import (
	"errors"

	"github.com/katalvlaran/playfair/keymatrix"
)

var (
	// ErrInvalidKeyword indicates the keyword has no letters after normalization.
	// It is the keymatrix sentinel, so either name matches with errors.Is.
	ErrInvalidKeyword = keymatrix.ErrInvalidKeyword

	// ErrInvalidCiphertext indicates the ciphertext cannot be split into whole digraphs.
	ErrInvalidCiphertext = errors.New("cipher: ciphertext must normalize to an even number of letters")
)
