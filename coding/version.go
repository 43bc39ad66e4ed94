// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"strconv"
)

var ErrVersion = errors.New("qr: invalid version")

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 pixels on a side.
// Only versions 1 to 5 at error correction level L are supported,
// each of them holding a single Reed-Solomon block.
type Version int

// Code versions.
const (
	MinVersion Version = 1 // Minimum QR version
	MaxVersion Version = 5 // Maximum QR version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// A version describes metadata associated with a version.
type version struct {
	bytes int // total codewords
	check int // error correction codewords
}

// Level L.
var vtab = [MaxVersion + 1]version{
	{},
	{26, 7},
	{44, 10},
	{70, 15},
	{100, 20},
	{134, 26},
}

// IsValid reports whether v is a supported version.
func (v Version) IsValid() bool { return MinVersion <= v && v <= MaxVersion }

func (v Version) check() error {
	if !v.IsValid() {
		return ErrVersion
	}
	return nil
}

// Size returns the number of pixels on a side.
func (v Version) Size() int { return int(v)*4 + 17 }

// CodewordsLength returns the total number of data and error
// correction codewords.
func (v Version) CodewordsLength() int { return vtab[v].bytes }

// ECCLength returns the number of error correction codewords.
func (v Version) ECCLength() int { return vtab[v].check }

// DataLength returns the number of data codewords, including the
// segment header.
func (v Version) DataLength() int { return vtab[v].bytes - vtab[v].check }

// headerBits is the length of the byte mode segment header
// (4 bit mode indicator, 8 bit count) plus the 4 bit terminator.
const headerBits = 4 + 8 + 4

// MaxInputLength returns the maximum number of bytes encodable in v.
func (v Version) MaxInputLength() int { return v.DataLength() - headerBits/8 }

// Fit returns the smallest version holding n bytes of input.
// If none does, Fit returns MaxVersion and false.
func Fit(n int) (Version, bool) {
	for v := MinVersion; v <= MaxVersion; v++ {
		if n <= v.MaxInputLength() {
			return v, true
		}
	}
	return MaxVersion, false
}

// Format information at level L for masks 0 to 7: the 2 bit level and
// 3 bit mask with a BCH(15,5) checksum, xored with 0x5412.
var ftab = [8]uint16{0x77c4, 0x72f3, 0x7daa, 0x789d, 0x662f, 0x6318, 0x6c41, 0x6976}

// FormatBits returns the 15 bit format information for mask, or 0 for
// an invalid mask.
func FormatBits(mask int) uint16 {
	if uint(mask) < uint(len(ftab)) {
		return ftab[mask]
	}
	return 0
}
