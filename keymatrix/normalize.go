// SPDX-License-Identifier: MIT

package keymatrix

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize reduces s to the 25-symbol alphabet.
//
// Steps:
//  1. Canonical decomposition (NFD) and removal of non-spacing marks,
//     so "é" becomes "e" and "Ñ" becomes "N".
//  2. Every rune outside A–Z / a–z is dropped.
//  3. Letters are upper-cased and J is replaced with I.
//
// The result may be empty. Complexity: O(len(s)).
func Normalize(s string) string {
	// transform.Chain keeps internal buffers, so a fresh chain per call
	// keeps Normalize safe for concurrent use.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(fold, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if n, ok := normalizeRune(r); ok {
			b.WriteRune(n)
		}
	}

	return b.String()
}

// normalizeRune maps a single ASCII letter onto the alphabet.
// It reports false for anything that is not an ASCII letter.
func normalizeRune(r rune) (rune, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		r -= 'a' - 'A'
	case r >= 'A' && r <= 'Z':
	default:
		return 0, false
	}
	if r == Merged {
		r = MergedInto
	}

	return r, true
}
