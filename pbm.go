// Copyright 2026 The qrgen Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"io"
	"strconv"
)

// EncodePBM writes a Portable Bit Map image displaying the code to
// w, for use with netpbm.
func (c *Code) EncodePBM(w io.Writer) error {
	if !c.isValid() {
		return ErrArgs
	}
	b := bufio.NewWriter(w)
	siz := c.Size
	scale := c.Scale
	bord := c.Border
	length := scale * (siz + bord*2)
	ls := strconv.Itoa(length)
	if _, err := b.WriteString("P4\n" + ls + " " + ls + "\n"); err != nil {
		return err
	}
	var white byte
	if c.Reverse {
		white = 0xff
	}
	row := make([]byte, (length+7)/8)
	blank := make([]byte, len(row))
	for i := range blank {
		blank[i] = white
	}
	clearHighBits(blank, length)
	for y := 0; y < siz+bord*2; y++ {
		line := blank
		if y >= bord && y < siz+bord {
			for i := range row {
				row[i] = white
			}
			for x := 0; x < siz; x++ {
				if c.Black(x, y-bord) {
					setRun(row, (x+bord)*scale, scale, c.Reverse)
				}
			}
			clearHighBits(row, length)
			line = row
		}
		for i := 0; i < scale; i++ {
			if _, err := b.Write(line); err != nil {
				return err
			}
		}
	}
	return b.Flush()
}

// setRun sets or clears n consecutive bits starting at bit off.
func setRun(row []byte, off, n int, clear bool) {
	for i := off; i < off+n; i++ {
		if clear {
			row[i>>3] &^= 0x80 >> (i & 7)
		} else {
			row[i>>3] |= 0x80 >> (i & 7)
		}
	}
}

// clearHighBits zeroes the padding bits past length in the last byte.
func clearHighBits(row []byte, length int) {
	if pad := -length & 7; pad != 0 {
		row[len(row)-1] &^= 1<<pad - 1
	}
}
