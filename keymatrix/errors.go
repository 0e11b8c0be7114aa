// SPDX-License-Identifier: MIT

package keymatrix

import "errors"

// ErrInvalidKeyword indicates the keyword has no Latin letters left after normalization.
var ErrInvalidKeyword = errors.New("keymatrix: keyword contains no letters")
