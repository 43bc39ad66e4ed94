// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes text as QR codes in byte mode.

Text is converted to ISO 8859-1 and stored at error correction level L
in QR versions 1 to 5.  Text longer than the version holds is silently
truncated.
*/
package qr // import "github.com/unixdj/byteqr"

import (
	"errors"
	"image"
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/unixdj/byteqr/coding"
)

var ErrArgs = errors.New("qr: invalid arguments")

// Defaults for Code.
const (
	DefaultScale  = 8 // image pixels per QR pixel
	DefaultBorder = 4 // quiet zone in QR pixels
)

// Encode returns a QR code of text at version v, choosing the mask with
// the smallest penalty.
func Encode(text string, v coding.Version) (*Code, error) {
	return EncodeMask(text, v, coding.AutoMask)
}

// EncodeMask returns a QR code of text at version v using the given
// mask, or the best one if mask is coding.AutoMask.  A mask outside
// 0 to 7 leaves the data unmasked.
func EncodeMask(text string, v coding.Version, mask int) (*Code, error) {
	g, err := coding.Symbol(text, v, mask)
	if err != nil {
		return nil, err
	}
	return newCode(g), nil
}

// EncodeText returns a QR code of text at the smallest version holding
// it.  Text too long for any version is truncated to fit the largest.
func EncodeText(text string) (*Code, error) {
	v, _ := coding.Fit(utf8.RuneCountInString(text))
	return Encode(text, v)
}

// A Code is a square pixel grid.
// It implements image.Image and direct PBM and PNG encoding.
type Code struct {
	Bitmap  []byte         // 1 is black, 0 is white
	Size    int            // number of pixels on a side
	Stride  int            // number of bytes per row
	Version coding.Version // QR version
	Mask    int            // mask pattern

	Scale   int  // number of image pixels per QR pixel
	Border  int  // number of QR pixels in the quiet zone
	Reverse bool // swap black and white
}

func newCode(g *coding.Grid) *Code {
	siz := g.Size
	stride := (siz + 7) >> 3
	c := &Code{
		Bitmap:  make([]byte, siz*stride),
		Size:    siz,
		Stride:  stride,
		Version: g.Version,
		Mask:    g.Mask,
		Scale:   DefaultScale,
		Border:  DefaultBorder,
	}
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; x++ {
			if g.Black(x, y) {
				c.Bitmap[y*stride+x>>3] |= 0x80 >> (x & 7)
			}
		}
	}
	return c
}

// Black returns true if the pixel at (x,y) is black.
// Pixels outside the code are white.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(1<<uint(7&^x)) != 0
}

// ink reports whether the pixel at (x,y) is drawn in the foreground
// colour, honouring c.Reverse.
func (c *Code) ink(x, y int) bool { return c.Black(x, y) != c.Reverse }

func (c *Code) isValid() bool {
	return c != nil && c.Size > 0 && c.Scale > 0 && c.Border >= 0 &&
		len(c.Bitmap) >= c.Size*c.Stride
}

// String returns the code drawn with Unicode block elements, two rows
// per line, with white pixels drawn for light-on-dark terminals.
func (c *Code) String() string {
	if !c.isValid() {
		return ""
	}
	bord := c.Border
	var b strings.Builder
	for y := -bord; y < c.Size+bord; y += 2 {
		for x := -bord; x < c.Size+bord; x++ {
			n := 0
			if c.ink(x, y) {
				n = 2
			}
			if y+1 == c.Size+bord || c.ink(x, y+1) {
				n++
			}
			b.WriteString([4]string{"█", "▀", "▄", " "}[n])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Image returns an Image displaying the code.
func (c *Code) Image() image.Image {
	return &codeImage{c}
}

// codeImage implements image.Image
type codeImage struct {
	*Code
}

var (
	whiteColor color.Color = color.Gray{0xFF}
	blackColor color.Color = color.Gray{0x00}
)

func (c *codeImage) Bounds() image.Rectangle {
	d := (c.Size + 2*c.Border) * c.Scale
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) At(x, y int) color.Color {
	if x < 0 || y < 0 || c.Scale < 1 {
		return whiteColor
	}
	if c.ink(x/c.Scale-c.Border, y/c.Scale-c.Border) {
		return blackColor
	}
	return whiteColor
}

func (c *codeImage) ColorModel() color.Model {
	return color.GrayModel
}
