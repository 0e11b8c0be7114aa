// SPDX-License-Identifier: MIT

package keymatrix

const (
	// Size is the side length of the square.
	Size = 5

	// Cells is the number of symbols held by the square.
	Cells = Size * Size

	// Alphabet lists the 25 symbols in natural order; J is merged into I.
	Alphabet = "ABCDEFGHIKLMNOPQRSTUVWXYZ"

	// Merged is the letter folded away during normalization.
	Merged = 'J'

	// MergedInto is the letter Merged is replaced with.
	MergedInto = 'I'
)

// Position is a (row, column) coordinate inside the square.
// Both fields lie in [0, Size).
type Position struct {
	Row int
	Col int
}

// KeyMatrix is the immutable 5×5 key square. Only New builds a usable one;
// the zero value holds no letters.
// cells holds the symbols row-major; index maps a symbol (offset from 'A')
// to its slot in cells, or -1 for J.
type KeyMatrix struct {
	cells [Cells]rune
	index [26]int8
}
