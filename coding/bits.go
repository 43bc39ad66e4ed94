// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Bits is a bit sequence, most significant bit of each byte first.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with enough capacity for a QR code of the
// given version.
func NewBits(v Version) *Bits {
	n := 0
	if v.IsValid() {
		n = v.CodewordsLength()
	}
	return &Bits{b: make([]byte, 0, n)}
}

// Len returns the number of bits in b.
func (b *Bits) Len() int { return b.nbit }

// At reports whether bit i is set.  Bits past the end are unset.
func (b *Bits) At(i int) bool {
	return 0 <= i && i < b.nbit && b.b[i>>3]>>(7&^i)&1 != 0
}

// Bytes returns the codewords in b.
func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	return b.b
}

// Write appends the nbit low bits of v, most significant first.
// nbit must not exceed 32.
func (b *Bits) Write(v uint32, nbit int) {
	if nbit == 0 {
		return
	}
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// WriteBytes appends whole bytes.
func (b *Bits) WriteBytes(p []byte) {
	if b.nbit&7 == 0 {
		b.b = append(b.b, p...)
		b.nbit += len(p) * 8
		return
	}
	for _, c := range p {
		b.Write(uint32(c), 8)
	}
}

// Align appends zero bits up to the next byte boundary.
func (b *Bits) Align() { b.nbit = len(b.b) * 8 }

// PadTo appends alternating 0xec, 0x11 bytes until b holds n bytes.
// b must be byte aligned.  PadTo never shortens b.
func (b *Bits) PadTo(n int) {
	for pad := byte(0xec); len(b.Bytes()) < n; pad ^= 0xec ^ 0x11 {
		b.b = append(b.b, pad)
		b.nbit += 8
	}
}

// Stream returns a BitStream reading b.
func (b *Bits) Stream() BitStream { return BitStream{b: b.b, n: b.nbit} }

// BitStream reads bits from the underlying buffer.
type BitStream struct {
	b   []byte
	n   int
	pos int
}

// NewBitStream returns a BitStream reading from b.
func NewBitStream(b []byte) BitStream { return BitStream{b: b, n: len(b) * 8} }

// Next returns the next bit from s as 0 or 1.
// Past end of buffer Next returns 0.
func (s *BitStream) Next() byte {
	var b byte
	if s.pos < s.n {
		b = s.b[s.pos>>3] >> (7 &^ s.pos) & 1
		s.pos++
	}
	return b
}

// Pos returns the number of bits read.
func (s *BitStream) Pos() int { return s.pos }
