// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "rsc.io/qr/gf256"

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// ECC returns n Reed-Solomon check bytes for data.
func ECC(data []byte, n int) []byte {
	check := make([]byte, n)
	if n > 0 {
		gf256.NewRSEncoder(Field, n).ECC(data, check)
	}
	return check
}
