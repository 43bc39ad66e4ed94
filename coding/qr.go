// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package coding implements low-level QR coding details.

Text is encoded in a single byte mode segment at error correction
level L.  Encode produces the codewords as a bit sequence, BuildGrid
lays out the function patterns and the masked data bits, and
FindBestMask picks the mask with the smallest penalty.
*/
package coding // import "github.com/unixdj/byteqr/coding"

// AutoMask requests mask selection by penalty.
const AutoMask = -1

// Symbol returns the grid for text at version v.  If mask is AutoMask,
// the mask with the smallest penalty is used.
func Symbol(text string, v Version, mask int) (*Grid, error) {
	bits, err := Encode(text, v)
	if err != nil {
		return nil, err
	}
	if mask == AutoMask {
		if mask, err = FindBestMask(v, bits); err != nil {
			return nil, err
		}
	}
	return BuildGrid(v, bits, mask)
}
