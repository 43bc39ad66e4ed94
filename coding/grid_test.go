// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"strings"
	"testing"
)

// ones returns n bytes of 0xff.
func ones(n int) *Bits {
	b := &Bits{}
	b.WriteBytes([]byte(strings.Repeat("\xff", n)))
	return b
}

func mustBuild(t *testing.T, v Version, bits *Bits, mask int) *Grid {
	t.Helper()
	g, err := BuildGrid(v, bits, mask)
	if err != nil {
		t.Fatalf("BuildGrid(%d, _, %d): %v", v, mask, err)
	}
	return g
}

func TestFunctionPatternsIndependentOfData(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		text, err := Encode("function patterns", v)
		if err != nil {
			t.Fatal(err)
		}
		for mask := 0; mask < NumMasks; mask++ {
			grids := []*Grid{
				mustBuild(t, v, nil, mask),
				mustBuild(t, v, ones(v.CodewordsLength()), mask),
				mustBuild(t, v, text, mask),
			}
			a := grids[0]
			for _, b := range grids[1:] {
				for y := 0; y < a.Size; y++ {
					for x := 0; x < a.Size; x++ {
						if a.IsFunction(x, y) != b.IsFunction(x, y) {
							t.Fatalf("version %d mask %d: "+
								"function map differs at %d,%d",
								v, mask, x, y)
						}
						if a.IsFunction(x, y) && a.At(x, y) != b.At(x, y) {
							t.Fatalf("version %d mask %d: "+
								"function pixel differs at %d,%d",
								v, mask, x, y)
						}
					}
				}
			}
		}
	}
}

func TestNoUnsetModules(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		g := mustBuild(t, v, nil, 3)
		for i, m := range g.Modules {
			if m == Unset {
				t.Fatalf("version %d: pixel %d,%d unset",
					v, i%g.Size, i/g.Size)
			}
		}
	}
}

// finderRows is a position box with its separator, '#' for black.
var finderRows = []string{
	"#######.",
	"#.....#.",
	"#.###.#.",
	"#.###.#.",
	"#.###.#.",
	"#.....#.",
	"#######.",
	"........",
}

func TestFinders(t *testing.T) {
	g := mustBuild(t, 2, nil, 0)
	siz := g.Size
	for y, row := range finderRows {
		for x, c := range row {
			want := c == '#'
			// upper left, upper right mirrored, lower left mirrored
			for _, p := range [3][2]int{{x, y}, {siz - 1 - x, y}, {x, siz - 1 - y}} {
				if !g.IsFunction(p[0], p[1]) {
					t.Errorf("%d,%d not a function pixel", p[0], p[1])
				}
				if g.Black(p[0], p[1]) != want {
					t.Errorf("%d,%d black = %v, want %v",
						p[0], p[1], !want, want)
				}
			}
		}
	}
}

func TestAlignment(t *testing.T) {
	g := mustBuild(t, 1, nil, 0)
	if c := g.Size - 7; g.IsFunction(c, c) {
		t.Errorf("version 1: alignment box at %d,%d", c, c)
	}
	rows := []string{"#####", "#...#", "#.#.#", "#...#", "#####"}
	for v := Version(2); v <= MaxVersion; v++ {
		g := mustBuild(t, v, nil, 0)
		o := g.Size - 9
		for y, row := range rows {
			for x, c := range row {
				if !g.IsFunction(o+x, o+y) || g.Black(o+x, o+y) != (c == '#') {
					t.Errorf("version %d: alignment pixel %d,%d wrong",
						v, o+x, o+y)
				}
			}
		}
	}
}

func TestTiming(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		g := mustBuild(t, v, ones(v.CodewordsLength()), 5)
		for i := 8; i < g.Size-8; i++ {
			want := i%2 == 0
			if !g.IsFunction(i, 6) || g.Black(i, 6) != want {
				t.Errorf("version %d: horizontal timing at %d wrong", v, i)
			}
			if !g.IsFunction(6, i) || g.Black(6, i) != want {
				t.Errorf("version %d: vertical timing at %d wrong", v, i)
			}
		}
	}
}

func TestDarkModule(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		for mask := -1; mask <= NumMasks; mask++ {
			g := mustBuild(t, v, nil, mask)
			if !g.IsFunction(8, g.Size-8) || !g.Black(8, g.Size-8) {
				t.Errorf("version %d mask %d: no dark module", v, mask)
			}
		}
	}
}

// readFormat reads both copies of the format information.
func readFormat(g *Grid) (uint16, uint16) {
	var a, b uint16
	for i, p := range formatPos {
		if g.Black(p[0], p[1]) {
			a |= 1 << i
		}
		x, y := 8, g.Size-15+i
		if i < 8 {
			x, y = g.Size-1-i, 8
		}
		if g.Black(x, y) {
			b |= 1 << i
		}
	}
	return a, b
}

func TestFormatRegion(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		for mask := 0; mask < NumMasks; mask++ {
			g := mustBuild(t, v, ones(v.CodewordsLength()), mask)
			a, b := readFormat(g)
			if want := FormatBits(mask); a != want || b != want {
				t.Errorf("version %d mask %d: format %#x %#x, want %#x",
					v, mask, a, b, want)
			}
		}
	}
	// an invalid mask reserves the region but leaves it white
	g := mustBuild(t, 3, ones(70), 8)
	if a, b := readFormat(g); a != 0 || b != 0 {
		t.Errorf("mask 8: format %#x %#x, want 0", a, b)
	}
	for _, p := range formatPos {
		if !g.IsFunction(p[0], p[1]) {
			t.Errorf("mask 8: format pixel %d,%d not reserved", p[0], p[1])
		}
	}
}

func TestZigzagVisitsDataOnce(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		g := mustBuild(t, v, nil, 0)
		seen := make(map[[2]int]bool)
		g.zigzag(func(x, y int) {
			p := [2]int{x, y}
			if seen[p] {
				t.Errorf("version %d: %d,%d visited twice", v, x, y)
			}
			if g.IsFunction(x, y) {
				t.Errorf("version %d: function pixel %d,%d visited", v, x, y)
			}
			seen[p] = true
		})
		if len(seen) != g.DataModules() {
			t.Errorf("version %d: %d pixels visited, want %d",
				v, len(seen), g.DataModules())
		}
		for y := 0; y < g.Size; y++ {
			if seen[[2]int{6, y}] {
				t.Errorf("version %d: column 6 visited", v)
			}
		}
	}
}

func TestZigzagOrder(t *testing.T) {
	g := mustBuild(t, 1, nil, 0)
	var order [][2]int
	g.zigzag(func(x, y int) { order = append(order, [2]int{x, y}) })
	want := map[int][2]int{
		0:  {20, 20},
		1:  {19, 20},
		2:  {20, 19},
		3:  {19, 19},
		23: {19, 9},  // top of the first column pair
		24: {18, 9},  // second pair runs downwards
		25: {17, 9},  //
		47: {17, 20}, // bottom of the second pair
		48: {16, 20}, // third pair upwards again
	}
	for i, p := range want {
		if order[i] != p {
			t.Errorf("pixel %d at %v, want %v", i, order[i], p)
		}
	}
	if last := order[len(order)-1]; last != [2]int{0, 12} {
		t.Errorf("last pixel at %v, want [0 12]", last)
	}
}

func TestUnmaskRoundTrip(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		bits, err := Encode("round trip", v)
		if err != nil {
			t.Fatal(err)
		}
		for mask := -1; mask <= NumMasks; mask++ {
			u := mustBuild(t, v, bits, mask).Unmask()
			for i := 0; i < u.Len(); i++ {
				if u.At(i) != bits.At(i) {
					t.Errorf("version %d mask %d: bit %d differs",
						v, mask, i)
					break
				}
			}
		}
	}
}

func TestUnmaskedData(t *testing.T) {
	// masks outside 0 to 7 store the data as is
	g := mustBuild(t, 1, ones(26), NumMasks)
	g.zigzag(func(x, y int) {
		if !g.Black(x, y) {
			t.Errorf("data pixel %d,%d white", x, y)
		}
	})
}

func TestMaskColor(t *testing.T) {
	for mask := 0; mask < NumMasks; mask++ {
		for y := 0; y < 12; y++ {
			for x := 0; x < 12; x++ {
				a := MaskColor(x, y, true, mask)
				b := MaskColor(x, y, false, mask)
				if a == b || a == Unset || b == Unset {
					t.Errorf("mask %d at %d,%d: %v, %v", mask, x, y, a, b)
				}
				if (b == Black) != Invert(x, y, mask) {
					t.Errorf("mask %d at %d,%d: zero bit %v", mask, x, y, b)
				}
			}
		}
	}
	for _, mask := range []int{-1, 8} {
		if MaskColor(3, 3, true, mask) != Black ||
			MaskColor(3, 3, false, mask) != White {
			t.Errorf("mask %d: data masked", mask)
		}
	}
}

func TestMaskPredicates(t *testing.T) {
	tests := []struct {
		mask, x, y int
		want       bool
	}{
		{0, 0, 0, true}, {0, 1, 0, false}, {0, 1, 1, true},
		{1, 5, 0, true}, {1, 0, 1, false},
		{2, 3, 1, true}, {2, 4, 0, false},
		{3, 1, 2, true}, {3, 1, 1, false},
		{4, 0, 0, true}, {4, 3, 0, false}, {4, 0, 2, false}, {4, 3, 2, true},
		{5, 0, 7, true}, {5, 1, 1, false}, {5, 2, 3, true}, {5, 2, 2, false},
		{6, 1, 1, true}, {6, 2, 2, false}, {6, 1, 5, false},
		{7, 0, 0, true}, {7, 1, 1, false}, {7, 1, 0, false}, {7, 2, 2, false},
	}
	for _, tt := range tests {
		if got := Invert(tt.x, tt.y, tt.mask); got != tt.want {
			t.Errorf("Invert(%d, %d, %d) = %v, want %v",
				tt.x, tt.y, tt.mask, got, tt.want)
		}
	}
}

func TestBuildGridInvalidVersion(t *testing.T) {
	for _, v := range []Version{0, 6, -3} {
		if g, err := BuildGrid(v, nil, 0); err != ErrVersion || g != nil {
			t.Errorf("BuildGrid(%d) = %v, %v; want nil, ErrVersion", v, g, err)
		}
	}
}
