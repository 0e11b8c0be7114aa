// SPDX-License-Identifier: MIT

package keymatrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/playfair/keymatrix"
)

// TestNormalize is table-driven over the normalization rules.
func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"Empty", "", ""},
		{"Sentence", "Hide the gold in the tree stump.", "HIDETHEGOLDINTHETREESTUMP"},
		{"MergeJ", "Jane jumps", "IANEIUMPS"},
		{"DigitsAndPunctuation", "a1-b2_c3!", "ABC"},
		{"Accents", "Ça déjà vu, señor", "CADEIAVUSENOR"},
		{"NonLatinDropped", "abc αβγ где", "ABC"},
		{"OnlyNoise", "123 !?", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, keymatrix.Normalize(tc.in))
		})
	}
}
