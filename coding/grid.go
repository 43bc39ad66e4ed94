// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Module is the colour of a QR pixel.
type Module byte

const (
	Unset Module = iota
	White
	Black
)

func (m Module) String() string {
	switch m {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return "unset"
}

// A Grid is a square pixel grid under construction or complete.
type Grid struct {
	Version Version
	Mask    int
	Size    int      // number of pixels on a side
	Modules []Module // row major
	fn      []bool   // function pattern pixels
}

func newGrid(v Version, mask int) *Grid {
	siz := v.Size()
	return &Grid{
		Version: v,
		Mask:    mask,
		Size:    siz,
		Modules: make([]Module, siz*siz),
		fn:      make([]bool, siz*siz),
	}
}

func (g *Grid) in(x, y int) bool {
	return 0 <= x && x < g.Size && 0 <= y && y < g.Size
}

// At returns the module at (x, y), or White outside the grid.
func (g *Grid) At(x, y int) Module {
	if !g.in(x, y) {
		return White
	}
	return g.Modules[y*g.Size+x]
}

// Black reports whether the pixel at (x, y) is black.
func (g *Grid) Black(x, y int) bool { return g.At(x, y) == Black }

// IsFunction reports whether (x, y) belongs to a function pattern:
// finder, separator, alignment, timing, dark module or format
// information.
func (g *Grid) IsFunction(x, y int) bool { return g.in(x, y) && g.fn[y*g.Size+x] }

// set sets a function pattern pixel.
func (g *Grid) set(x, y int, black bool) {
	i := y*g.Size + x
	if g.fn[i] {
		return
	}
	g.fn[i] = true
	g.Modules[i] = White
	if black {
		g.Modules[i] = Black
	}
}

// finder draws a position box with upper left corner at x, y and the
// separator around it, clipped to the grid.
func (g *Grid) finder(x, y int) {
	for dy := -1; dy <= 7; dy++ {
		for dx := -1; dx <= 7; dx++ {
			if !g.in(x+dx, y+dy) {
				continue
			}
			ring := max(abs(dx-3), abs(dy-3)) // 0 to 4
			g.set(x+dx, y+dy, ring != 2 && ring != 4)
		}
	}
}

// alignBox draws an alignment box with upper left corner at x, y.
func (g *Grid) alignBox(x, y int) {
	for dy := 0; dy < 5; dy++ {
		for dx := 0; dx < 5; dx++ {
			g.set(x+dx, y+dy, max(abs(dx-2), abs(dy-2)) != 1)
		}
	}
}

// timing draws the timing patterns between the position boxes.
func (g *Grid) timing() {
	for i := 8; i < g.Size-8; i++ {
		g.set(i, 6, i&1 == 0)
		g.set(6, i, i&1 == 0)
	}
}

// Format pixel coordinates around the upper left position box,
// least significant bit first.
var formatPos = [15][2]int{
	{8, 0}, {8, 1}, {8, 2}, {8, 3}, {8, 4}, {8, 5}, {8, 7}, {8, 8},
	{7, 8}, {5, 8}, {4, 8}, {3, 8}, {2, 8}, {1, 8}, {0, 8},
}

// format writes the format bits twice: around the upper left position
// box, and split between the upper right and lower left ones.
func (g *Grid) format(fb uint16) {
	siz := g.Size
	for i, p := range formatPos {
		black := fb>>i&1 != 0
		g.set(p[0], p[1], black)
		if i < 8 {
			g.set(siz-1-i, 8, black)
		} else {
			g.set(8, siz-15+i, black)
		}
	}
}

// layout draws the function patterns.
func (g *Grid) layout() {
	siz := g.Size
	g.finder(0, 0)
	g.finder(siz-7, 0)
	g.finder(0, siz-7)
	if g.Version > 1 {
		g.alignBox(siz-9, siz-9)
	}
	g.timing()
	g.set(8, siz-8, true) // one lonely black pixel
	g.format(FormatBits(g.Mask))
}

// zigzag calls f for each data pixel in placement order: pairs of
// columns from right to left skipping the vertical timing column,
// alternately upwards and downwards, right column first.
func (g *Grid) zigzag(f func(x, y int)) {
	siz := g.Size
	up := true
	for x := siz - 1; x > 0; x -= 2 {
		if x == 6 {
			x--
		}
		for i := 0; i < siz; i++ {
			y := i
			if up {
				y = siz - 1 - i
			}
			for _, xx := range [2]int{x, x - 1} {
				if !g.fn[y*siz+xx] {
					f(xx, y)
				}
			}
		}
		up = !up
	}
}

// Serialise writes bits from s to the data pixels in zigzag order,
// applying the grid's mask.
func (g *Grid) Serialise(s *BitStream) {
	g.zigzag(func(x, y int) {
		g.Modules[y*g.Size+x] = MaskColor(x, y, s.Next() != 0, g.Mask)
	})
}

// Unmask returns the data bits read in zigzag order with the mask
// removed.
func (g *Grid) Unmask() *Bits {
	b := &Bits{b: make([]byte, 0, (g.DataModules()+7)/8)}
	g.zigzag(func(x, y int) {
		var bit uint32
		if g.Black(x, y) != Invert(x, y, g.Mask) {
			bit = 1
		}
		b.Write(bit, 1)
	})
	return b
}

// DataModules returns the number of pixels available for data.
func (g *Grid) DataModules() int {
	n := 0
	for _, f := range g.fn {
		if !f {
			n++
		}
	}
	return n
}

// BuildGrid returns the grid for version v holding bits under mask.
// Bits past the end of the data pixels are ignored; data pixels past
// the end of bits are white before masking.  A mask outside 0 to 7
// leaves the data unmasked and the format bits unset.
func BuildGrid(v Version, bits *Bits, mask int) (*Grid, error) {
	if err := v.check(); err != nil {
		return nil, err
	}
	g := newGrid(v, mask)
	g.layout()
	var s BitStream
	if bits != nil {
		s = bits.Stream()
	}
	g.Serialise(&s)
	return g, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
