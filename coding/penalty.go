// Copyright 2026 The qrgen Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Penalty weights for the four terms of the mask evaluation score.
const (
	penaltyN1 = 3  // runs of 5 or more same-colour modules
	penaltyN2 = 3  // 2x2 blocks of same-colour modules
	penaltyN3 = 40 // finder-like 1:1:3:1:1 patterns
	penaltyN4 = 10 // dark/light imbalance, per 5% step

	// Upper bound of the total penalty given the weights above.
	// Exceeding it means a scoring bug, not bad input.
	maxPenalty = 2568888
)

// finderRuns is a sliding history of the last seven run lengths in a
// line, used to detect finder-like patterns.
type finderRuns struct {
	size int
	run  [7]int
}

// add pushes a finished run.  The first run of a line is extended by
// a full symbol width of synthetic light padding.
func (f *finderRuns) add(length int) {
	if f.run[0] == 0 {
		length += f.size
	}
	copy(f.run[1:], f.run[:6])
	f.run[0] = length
}

// count returns the number of finder-like patterns ending at the
// current position: a 1:1:3:1:1 core bordered by at least 4 units of
// light on one or both sides.
func (f *finderRuns) count() int {
	n := f.run[1]
	if n == 0 || f.run[2] != n || f.run[3] != n*3 ||
		f.run[4] != n || f.run[5] != n {
		return 0
	}
	p := 0
	if f.run[0] >= n*4 && f.run[6] >= n {
		p++
	}
	if f.run[6] >= n*4 && f.run[0] >= n {
		p++
	}
	return p
}

// terminate closes the line with synthetic light padding and returns
// the pattern count for the final position.
func (f *finderRuns) terminate(color bool, length int) int {
	if color {
		f.add(length)
		length = 0
	}
	f.add(length + f.size)
	return f.count()
}

// penalty returns the mask evaluation score of the grid: the sum of
// the four weighted terms, lower is better.  It is a comparison
// heuristic, not a correctness check.
func (b *board) penalty() int {
	p := 0

	// Runs and finder-like patterns, by row and by column.
	for y := 0; y < b.size; y++ {
		color, run := false, 0
		f := finderRuns{size: b.size}
		for x := 0; x < b.size; x++ {
			if b.modules[y*b.size+x] == color {
				run++
				if run == 5 {
					p += penaltyN1
				} else if run > 5 {
					p++
				}
				continue
			}
			f.add(run)
			if !color {
				p += f.count() * penaltyN3
			}
			color, run = !color, 1
		}
		p += f.terminate(color, run) * penaltyN3
	}
	for x := 0; x < b.size; x++ {
		color, run := false, 0
		f := finderRuns{size: b.size}
		for y := 0; y < b.size; y++ {
			if b.modules[y*b.size+x] == color {
				run++
				if run == 5 {
					p += penaltyN1
				} else if run > 5 {
					p++
				}
				continue
			}
			f.add(run)
			if !color {
				p += f.count() * penaltyN3
			}
			color, run = !color, 1
		}
		p += f.terminate(color, run) * penaltyN3
	}

	// 2x2 blocks of a single colour, overlapping.
	for y := 0; y < b.size-1; y++ {
		for x := 0; x < b.size-1; x++ {
			c := b.modules[y*b.size+x]
			if c == b.modules[y*b.size+x+1] &&
				c == b.modules[(y+1)*b.size+x] &&
				c == b.modules[(y+1)*b.size+x+1] {
				p += penaltyN2
			}
		}
	}

	// Dark/light balance: 10 points for every 5% deviation from 50%.
	dark := 0
	for _, m := range b.modules {
		if m {
			dark++
		}
	}
	total := b.size * b.size
	d := dark*20 - total*10
	if d < 0 {
		d = -d
	}
	p += ((d+total-1)/total - 1) * penaltyN4

	if p < 0 || p > maxPenalty {
		panic("qr: internal error")
	}
	return p
}
