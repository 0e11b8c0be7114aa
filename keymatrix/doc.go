// SPDX-License-Identifier: MIT

// Package keymatrix builds the 5×5 Playfair key square from a keyword.
//
// What:
//
//   - KeyMatrix holds the 25-symbol alphabet (26 Latin letters with I and J
//     merged) in row-major order, together with a reverse lookup table.
//   - Normalize reduces arbitrary text to the matrix alphabet: accents are
//     folded, non-letters dropped, letters upper-cased and J mapped to I.
//
// Construction:
//
//  1. Normalize the keyword.
//  2. Take its unique letters in order of first appearance.
//  3. Append the remaining letters of ABCDEFGHIKLMNOPQRSTUVWXYZ.
//  4. Fill the grid row by row: index i lands at (i/5, i%5).
//
// Example ("playfair example"):
//
//	P L A Y F
//	I R E X M
//	B C D G H
//	K N O Q S
//	T U V W Z
//
// Complexity:
//
//   - New:      O(len(keyword)), Memory: O(1) beyond the normalized keyword.
//   - Position: O(1).
//   - At:       O(1).
//
// Errors:
//
//   - ErrInvalidKeyword: the keyword contains no Latin letters.
//
// A KeyMatrix is a value and never changes after New, so it can be shared
// between goroutines freely.
package keymatrix
