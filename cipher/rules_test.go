// SPDX-License-Identifier: MIT

package cipher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/playfair/keymatrix"
)

// TestRules_Cases checks one digraph per rule on the Wikipedia square.
//
//	P L A Y F
//	I R E X M
//	B C D G H
//	K N O Q S
//	T U V W Z
func TestRules_Cases(t *testing.T) {
	km, err := keymatrix.New("playfair example")
	require.NoError(t, err)

	cases := []struct {
		name    string
		in, enc Digraph
	}{
		{"SameRow", Digraph{'L', 'Y'}, Digraph{'A', 'F'}},
		{"SameRowWraps", Digraph{'A', 'F'}, Digraph{'Y', 'P'}},
		{"SameColumn", Digraph{'D', 'E'}, Digraph{'O', 'D'}},
		{"SameColumnWraps", Digraph{'K', 'T'}, Digraph{'T', 'P'}},
		{"Rectangle", Digraph{'H', 'I'}, Digraph{'B', 'M'}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.enc, encryptDigraph(km, tc.in))
			require.Equal(t, tc.in, decryptDigraph(km, tc.enc))
		})
	}
}

// TestRules_Inverse checks that decryption undoes encryption for every pair
// of distinct letters, and that the rectangle rule is its own inverse.
func TestRules_Inverse(t *testing.T) {
	for _, kw := range []string{"playfair example", "monarchy", "q"} {
		km, err := keymatrix.New(kw)
		require.NoError(t, err)

		for _, a := range keymatrix.Alphabet {
			for _, b := range keymatrix.Alphabet {
				if a == b {
					continue
				}
				d := Digraph{A: a, B: b}
				enc := encryptDigraph(km, d)
				require.Equal(t, d, decryptDigraph(km, enc), "keyword %q digraph %s", kw, d)

				pa, _ := km.Position(a)
				pb, _ := km.Position(b)
				if pa.Row != pb.Row && pa.Col != pb.Col {
					require.Equal(t, d, encryptDigraph(km, enc), "rectangle %s", d)
					require.Equal(t, enc, decryptDigraph(km, d), "rectangle %s", d)
				}
			}
		}
	}
}

// TestPairs covers straight pairing for decryption.
func TestPairs(t *testing.T) {
	got, err := pairs("aa bB x-y")
	require.NoError(t, err)
	require.Equal(t, []Digraph{{'A', 'A'}, {'B', 'B'}, {'X', 'Y'}}, got)

	_, err = pairs("abc")
	require.ErrorIs(t, err, ErrInvalidCiphertext)
}
