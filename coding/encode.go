// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "golang.org/x/text/encoding/charmap"

// byteIndicator is the 4 bit byte mode indicator.
const byteIndicator = 0b0100

// Latin1 returns text encoded as ISO 8859-1, replacing characters
// outside Latin-1 with '?'.  At most limit bytes are returned.
func Latin1(text string, limit int) []byte {
	b := make([]byte, 0, min(len(text), limit))
	for _, r := range text {
		if len(b) == limit {
			break
		}
		c, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			c = '?'
		}
		b = append(b, c)
	}
	return b
}

// Encode returns the codewords for text at version v as a bit
// sequence of exactly v.CodewordsLength() bytes: a byte mode segment,
// padding and error correction.
//
// Text is converted to ISO 8859-1 and silently truncated to
// v.MaxInputLength() bytes.
func Encode(text string, v Version) (*Bits, error) {
	if err := v.check(); err != nil {
		return nil, err
	}
	data := Latin1(text, v.MaxInputLength())
	b := NewBits(v)
	b.Write(byteIndicator, 4)
	b.Write(uint32(len(data)), 8)
	b.WriteBytes(data)
	b.Align() // terminator
	b.PadTo(v.DataLength())
	if n := v.ECCLength(); n > 0 {
		b.WriteBytes(ECC(b.Bytes(), n))
	}
	return b, nil
}
