// SPDX-License-Identifier: MIT

package keymatrix

import (
	"strings"
)

// New derives the key square from keyword.
//
// The keyword is normalized first (see Normalize); its unique letters fill
// the leading cells in order of first appearance and the rest of Alphabet
// follows. Digits, punctuation and spacing in the keyword are ignored.
//
// Returns ErrInvalidKeyword if no letters remain after normalization.
// Complexity: O(len(keyword)).
func New(keyword string) (KeyMatrix, error) {
	letters := Normalize(keyword)
	if letters == "" {
		return KeyMatrix{}, ErrInvalidKeyword
	}

	var km KeyMatrix
	for i := range km.index {
		km.index[i] = -1
	}

	n := 0
	place := func(r rune) {
		if km.index[r-'A'] >= 0 {
			return
		}
		km.cells[n] = r
		km.index[r-'A'] = int8(n)
		n++
	}
	for _, r := range letters {
		place(r)
	}
	for _, r := range Alphabet {
		place(r)
	}

	return km, nil
}

// Position returns the coordinate of r.
// Lower-case input is accepted and J resolves to the cell of I.
// The boolean is false for runes outside the alphabet, and for every rune
// on a zero KeyMatrix.
// Complexity: O(1).
func (km KeyMatrix) Position(r rune) (Position, bool) {
	n, ok := normalizeRune(r)
	if !ok {
		return Position{}, false
	}
	idx := km.index[n-'A']
	if idx < 0 || km.cells[idx] != n {
		return Position{}, false
	}

	return Position{Row: int(idx) / Size, Col: int(idx) % Size}, true
}

// At returns the symbol at (row, col). Both indices wrap modulo Size,
// negative values included, so At(r, c+1) and At(r-1, c) never go out of range.
// Complexity: O(1).
func (km KeyMatrix) At(row, col int) rune {
	return km.cells[wrap(row)*Size+wrap(col)]
}

// Letters returns the 25 symbols in row-major order, upper case.
func (km KeyMatrix) Letters() string {
	return string(km.cells[:])
}

// Rows returns each row of the square as a five-letter string.
func (km KeyMatrix) Rows() [Size]string {
	var rows [Size]string
	for r := 0; r < Size; r++ {
		rows[r] = string(km.cells[r*Size : (r+1)*Size])
	}

	return rows
}

// String renders the square as five lines of space-separated letters.
func (km KeyMatrix) String() string {
	var b strings.Builder
	for r, row := range km.Rows() {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c, ch := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(ch)
		}
	}

	return b.String()
}

// wrap reduces i into [0, Size).
func wrap(i int) int {
	i %= Size
	if i < 0 {
		i += Size
	}

	return i
}
