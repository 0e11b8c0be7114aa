// SPDX-License-Identifier: MIT

package cipher

import "github.com/katalvlaran/playfair/keymatrix"

// Shift directions for the row and column rules.
const (
	forward  = 1
	backward = -1
)

// substitute applies the Playfair rule to d, moving step cells along the
// shared row or column. step is forward for encryption and backward for
// decryption; the rectangle case ignores it.
//
// Both letters of d must belong to the alphabet.
func substitute(km keymatrix.KeyMatrix, d Digraph, step int) Digraph {
	pa, _ := km.Position(d.A)
	pb, _ := km.Position(d.B)

	switch {
	case pa.Row == pb.Row:
		return Digraph{
			A: km.At(pa.Row, pa.Col+step),
			B: km.At(pb.Row, pb.Col+step),
		}
	case pa.Col == pb.Col:
		return Digraph{
			A: km.At(pa.Row+step, pa.Col),
			B: km.At(pb.Row+step, pb.Col),
		}
	default:
		return Digraph{
			A: km.At(pa.Row, pb.Col),
			B: km.At(pb.Row, pa.Col),
		}
	}
}

func encryptDigraph(km keymatrix.KeyMatrix, d Digraph) Digraph {
	return substitute(km, d, forward)
}

func decryptDigraph(km keymatrix.KeyMatrix, d Digraph) Digraph {
	return substitute(km, d, backward)
}
