// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "golang.org/x/sync/errgroup"

// Scores returns the penalty of the grid built for each mask.
// The grids are built concurrently.
func Scores(v Version, bits *Bits) ([NumMasks]int, error) {
	var pen [NumMasks]int
	if err := v.check(); err != nil {
		return pen, err
	}
	var eg errgroup.Group
	for mask := range pen {
		mask := mask
		eg.Go(func() error {
			g, err := BuildGrid(v, bits, mask)
			if err != nil {
				return err
			}
			pen[mask] = g.Penalty()
			return nil
		})
	}
	err := eg.Wait()
	return pen, err
}

// FindBestMask returns the mask giving the smallest penalty for bits
// at version v.  Ties go to the lowest mask.
func FindBestMask(v Version, bits *Bits) (int, error) {
	pen, err := Scores(v, bits)
	if err != nil {
		return 0, err
	}
	return bestMask(pen), nil
}

func bestMask(pen [NumMasks]int) int {
	best := 0
	for mask, p := range pen {
		if p < pen[best] {
			best = mask
		}
	}
	return best
}
