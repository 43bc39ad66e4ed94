// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Total penalty is the sum of penalties for runs and boxes of
// same-colour pixels, finder-like patterns and colour balance.
//
//   - RunP: a run of n>=3 pixels scores 3 at length 3, then 1 for each
//     further pixel
//   - BoxP: for possibly overlapping 2x2 boxes -> 3
//   - FindP: for possibly overlapping patterns 10111010000 or
//     01000101111 -> 40; the grid is surrounded by a 1 pixel white
//     border when searching
//   - BalP: for n% of black pixels, the distance from 50 to the
//     nearer of the multiples of 5 around n, times 2
const (
	MinRun   = 3  // RunP:  minimum run length
	RunPP    = 3  // RunP:  points for a minimum run
	BoxPP    = 3  // BoxP:  points per box
	FindPP   = 40 // FindP: points per pattern
	BalPStep = 5  // BalP:  percentage step
	BalPMul  = 2  // BalP:  points per percent
)

var (
	findPat = [11]Module{Black, White, Black, Black, Black, White, Black, White, White, White, White}
	losePat = [11]Module{White, Black, White, White, White, Black, White, Black, Black, Black, Black}
)

// Penalty returns the penalty value used for choosing the mask.
func (g *Grid) Penalty() int {
	lines := g.lines()
	return runP(lines) + boxP(g) + findP(lines) + balP(g)
}

// lines returns the rows followed by the columns of g.
func (g *Grid) lines() [][]Module {
	siz := g.Size
	l := make([][]Module, 0, siz*2)
	for y := 0; y < siz; y++ {
		l = append(l, g.Modules[y*siz:(y+1)*siz])
	}
	col := make([]Module, siz*siz)
	for x := 0; x < siz; x++ {
		c := col[x*siz : (x+1)*siz]
		for y := range c {
			c[y] = g.Modules[y*siz+x]
		}
		l = append(l, c)
	}
	return l
}

func runP(lines [][]Module) int {
	p := 0
	for _, line := range lines {
		r := 0
		for i, m := range line {
			if i == 0 || m != line[i-1] {
				r = 0
			}
			r++
			if r == MinRun {
				p += RunPP
			} else if r > MinRun {
				p++
			}
		}
	}
	return p
}

func boxP(g *Grid) int {
	siz := g.Size
	p := 0
	for y := 1; y < siz; y++ {
		for x := 1; x < siz; x++ {
			m := g.Modules[y*siz+x]
			if m == g.Modules[y*siz+x-1] &&
				m == g.Modules[(y-1)*siz+x] &&
				m == g.Modules[(y-1)*siz+x-1] {
				p += BoxPP
			}
		}
	}
	return p
}

func findP(lines [][]Module) int {
	p := 0
	var buf []Module
	for _, line := range lines {
		// add quiet zone
		buf = append(append(append(buf[:0], White), line...), White)
		for i := 0; i+len(findPat) <= len(buf); i++ {
			w := buf[i : i+len(findPat)]
			if [11]Module(w) == findPat {
				p += FindPP
			}
			if [11]Module(w) == losePat {
				p += FindPP
			}
		}
	}
	return p
}

func balP(g *Grid) int {
	if len(g.Modules) == 0 {
		return 0
	}
	bal := 0
	for _, m := range g.Modules {
		if m == Black {
			bal++
		}
	}
	pct := bal * 100 / len(g.Modules)
	lo := pct - pct%BalPStep
	hi := lo + BalPStep
	return min(abs(lo-50), abs(hi-50)) * BalPMul
}
