// SPDX-License-Identifier: MIT

package cipher

import "github.com/katalvlaran/playfair/keymatrix"

// Digraphs normalizes text and splits it into digraphs for encryption.
//
// Equal letters never share a digraph: the first is padded with a filler and
// the second starts the next pair. A trailing single letter is padded too.
// The filler is Filler, or AltFiller when padding Filler itself.
//
// Example: "balloon" → BA LX LO ON.
// Complexity: O(len(text)).
func Digraphs(text string) []Digraph {
	letters := []rune(keymatrix.Normalize(text))
	out := make([]Digraph, 0, len(letters)/2+1)

	for i := 0; i < len(letters); {
		a := letters[i]
		if i+1 == len(letters) || letters[i+1] == a {
			out = append(out, Digraph{A: a, B: fillerFor(a)})
			i++
			continue
		}
		out = append(out, Digraph{A: a, B: letters[i+1]})
		i += 2
	}

	return out
}

// pairs normalizes text and splits it into digraphs without inserting fillers.
// Returns ErrInvalidCiphertext if the letter count is odd.
func pairs(text string) ([]Digraph, error) {
	letters := []rune(keymatrix.Normalize(text))
	if len(letters)%2 != 0 {
		return nil, ErrInvalidCiphertext
	}

	out := make([]Digraph, 0, len(letters)/2)
	for i := 0; i < len(letters); i += 2 {
		out = append(out, Digraph{A: letters[i], B: letters[i+1]})
	}

	return out, nil
}

func fillerFor(r rune) rune {
	if r == Filler {
		return AltFiller
	}

	return Filler
}
