// Copyright 2026 The qrgen Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Code is a finished, immutable square module grid with its
// version, level and mask metadata.
type Code struct {
	Bitmap  []byte // 1 is black, 0 is white
	Size    int    // number of modules on a side
	Stride  int    // number of bytes per row
	Version Version
	Level   Level
	Mask    int // applied mask, 0 to 7
}

// Black reports whether the module at (x, y) is black.  Coordinates
// outside the grid are white, never an error; renderers may probe
// adjacent coordinates freely.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(1<<uint(7&^x)) != 0
}

// A board holds the mutable module grid during construction.  The
// modules and the parallel function module flags are indexed
// y*size+x.  Construction runs in three strictly ordered phases:
// function patterns, codewords, masking.
type board struct {
	version Version
	size    int
	modules []bool
	isFunc  []bool
}

func newBoard(v Version) *board {
	siz := v.Size()
	return &board{v, siz, make([]bool, siz*siz), make([]bool, siz*siz)}
}

// set sets the module at (x, y) and marks it as a function module.
func (b *board) set(x, y int, dark bool) {
	b.modules[y*b.size+x] = dark
	b.isFunc[y*b.size+x] = true
}

// drawFunctionPatterns draws the timing, finder and alignment
// patterns and reserves the format and version areas.
func (b *board) drawFunctionPatterns(l Level) {
	for i := 0; i < b.size; i++ {
		b.set(6, i, i%2 == 0)
		b.set(i, 6, i%2 == 0)
	}
	b.drawFinder(3, 3)
	b.drawFinder(b.size-4, 3)
	b.drawFinder(3, b.size-4)
	pos := b.version.alignPos()
	for i, x := range pos {
		for j, y := range pos {
			// Skip the three corners occupied by finders.
			if i == 0 && (j == 0 || j == len(pos)-1) ||
				j == 0 && i == len(pos)-1 {
				continue
			}
			b.drawAlign(x, y)
		}
	}
	b.drawFormat(l, 0) // placeholder mask, redrawn after masking
	b.drawVersion()
}

// drawFinder draws a finder pattern and separator centred at (x, y),
// clipped at the edges.
func (b *board) drawFinder(x, y int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			xx, yy := x+dx, y+dy
			if 0 <= xx && xx < b.size && 0 <= yy && yy < b.size {
				d := max(dx, -dx, dy, -dy)
				b.set(xx, yy, d != 2 && d != 4)
			}
		}
	}
}

// drawAlign draws an alignment pattern centred at (x, y).
func (b *board) drawAlign(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			b.set(x+dx, y+dy, max(dx, -dx, dy, -dy) != 1)
		}
	}
}

// drawFormat writes the format information for the level and mask
// into both of its fixed locations.
func (b *board) drawFormat(l Level, mask int) {
	fb := formatBits(l, mask)
	// Around the top left finder.
	for i := 0; i <= 5; i++ {
		b.set(8, i, fb>>i&1 != 0)
	}
	b.set(8, 7, fb>>6&1 != 0)
	b.set(8, 8, fb>>7&1 != 0)
	b.set(7, 8, fb>>8&1 != 0)
	for i := 9; i < 15; i++ {
		b.set(14-i, 8, fb>>i&1 != 0)
	}
	// Along the opposite edges.
	for i := 0; i < 8; i++ {
		b.set(b.size-1-i, 8, fb>>i&1 != 0)
	}
	for i := 8; i < 15; i++ {
		b.set(8, b.size-15+i, fb>>i&1 != 0)
	}
	b.set(8, b.size-8, true) // always black
}

// drawVersion writes the version information into both of its fixed
// locations for versions 7 up.
func (b *board) drawVersion() {
	if b.version < 7 {
		return
	}
	vb := versionBits(b.version)
	for i := 0; i < 18; i++ {
		bit := vb>>i&1 != 0
		a, c := b.size-11+i%3, i/3
		b.set(a, c, bit)
		b.set(c, a, bit)
	}
}

// drawCodewords writes the raw codeword sequence into the data
// modules in zigzag scan order: column pairs from the right edge,
// alternating scan direction, skipping the vertical timing column.
// Leftover remainder modules stay white.
func (b *board) drawCodewords(data []byte) {
	i := 0
	for right := b.size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		for vert := 0; vert < b.size; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j
				y := vert
				if (right+1)&2 == 0 {
					y = b.size - 1 - vert // scanning upward
				}
				if !b.isFunc[y*b.size+x] && i < len(data)*8 {
					b.modules[y*b.size+x] = data[i>>3]>>(7&^i)&1 != 0
					i++
				}
			}
		}
	}
	if i != len(data)*8 {
		panic("qr: internal error")
	}
}

// applyMask XORs the mask pattern into the non-function modules.
// Applying the same mask twice is the identity transform, which the
// encoder uses to trial and undo masks without copying the grid.
func (b *board) applyMask(mask int) error {
	if mask < 0 || mask > 7 {
		return RangeError{"mask", int64(mask)}
	}
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			var invert bool
			switch mask {
			case 0:
				invert = (x+y)%2 == 0
			case 1:
				invert = y%2 == 0
			case 2:
				invert = x%3 == 0
			case 3:
				invert = (x+y)%3 == 0
			case 4:
				invert = (x/3+y/2)%2 == 0
			case 5:
				invert = x*y%2+x*y%3 == 0
			case 6:
				invert = (x*y%2+x*y%3)%2 == 0
			case 7:
				invert = ((x+y)%2+x*y%3)%2 == 0
			}
			i := y*b.size + x
			if invert && !b.isFunc[i] {
				b.modules[i] = !b.modules[i]
			}
		}
	}
	return nil
}

// code freezes the grid into an immutable Code.
func (b *board) code(l Level, mask int) *Code {
	stride := (b.size + 7) >> 3
	c := &Code{
		Bitmap:  make([]byte, stride*b.size),
		Size:    b.size,
		Stride:  stride,
		Version: b.version,
		Level:   l,
		Mask:    mask,
	}
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			if b.modules[y*b.size+x] {
				c.Bitmap[y*stride+x>>3] |= 0x80 >> (x & 7)
			}
		}
	}
	return c
}
