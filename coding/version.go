// Copyright 2026 The qrgen Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// levtab carries the per-level constants: the 2 bit format
// information indicator and, indexed by version 1 to 40 (index 0
// unused), the number of error correction codewords per block and
// the number of blocks.
var levtab = [4]struct {
	fbits  uint32
	check  [MaxVersion + 1]byte
	nblock [MaxVersion + 1]byte
}{
	L: {1,
		[MaxVersion + 1]byte{0,
			7, 10, 15, 20, 26, 18, 20, 24, 30, 18, // 1-10
			20, 24, 26, 30, 22, 24, 28, 30, 28, 28, // 11-20
			28, 28, 30, 30, 26, 28, 30, 30, 30, 30, // 21-30
			30, 30, 30, 30, 30, 30, 30, 30, 30, 30, // 31-40
		},
		[MaxVersion + 1]byte{0,
			1, 1, 1, 1, 1, 2, 2, 2, 2, 4, // 1-10
			4, 4, 4, 4, 6, 6, 6, 6, 7, 8, // 11-20
			8, 9, 9, 10, 12, 12, 12, 13, 14, 15, // 21-30
			16, 17, 18, 19, 19, 20, 21, 22, 24, 25, // 31-40
		}},
	M: {0,
		[MaxVersion + 1]byte{0,
			10, 16, 26, 18, 24, 16, 18, 22, 22, 26, // 1-10
			30, 22, 22, 24, 24, 28, 28, 26, 26, 26, // 11-20
			26, 28, 28, 28, 28, 28, 28, 28, 28, 28, // 21-30
			28, 28, 28, 28, 28, 28, 28, 28, 28, 28, // 31-40
		},
		[MaxVersion + 1]byte{0,
			1, 1, 1, 2, 2, 4, 4, 4, 5, 5, // 1-10
			5, 8, 9, 9, 10, 10, 11, 13, 14, 16, // 11-20
			17, 17, 18, 20, 21, 23, 25, 26, 28, 29, // 21-30
			31, 33, 35, 37, 38, 40, 43, 45, 47, 49, // 31-40
		}},
	Q: {3,
		[MaxVersion + 1]byte{0,
			13, 22, 18, 26, 18, 24, 18, 22, 20, 24, // 1-10
			28, 26, 24, 20, 30, 24, 28, 28, 26, 30, // 11-20
			28, 30, 30, 30, 30, 28, 30, 30, 30, 30, // 21-30
			30, 30, 30, 30, 30, 30, 30, 30, 30, 30, // 31-40
		},
		[MaxVersion + 1]byte{0,
			1, 1, 2, 2, 4, 4, 6, 6, 8, 8, // 1-10
			8, 10, 12, 16, 12, 17, 16, 18, 21, 20, // 11-20
			23, 23, 25, 27, 29, 34, 34, 35, 38, 40, // 21-30
			43, 45, 48, 51, 53, 56, 59, 62, 65, 68, // 31-40
		}},
	H: {2,
		[MaxVersion + 1]byte{0,
			17, 28, 22, 16, 22, 28, 26, 26, 24, 28, // 1-10
			24, 28, 22, 24, 24, 30, 28, 28, 26, 28, // 11-20
			30, 24, 30, 30, 30, 30, 30, 30, 30, 30, // 21-30
			30, 30, 30, 30, 30, 30, 30, 30, 30, 30, // 31-40
		},
		[MaxVersion + 1]byte{0,
			1, 1, 2, 4, 4, 4, 5, 6, 8, 8, // 1-10
			11, 11, 16, 16, 18, 16, 19, 21, 25, 25, // 11-20
			25, 34, 30, 32, 35, 37, 40, 42, 45, 48, // 21-30
			51, 54, 57, 60, 63, 66, 70, 74, 77, 81, // 31-40
		}},
}

// totalModules returns the number of raw modules available for data,
// error correction and remainder bits in a QR code with version v,
// excluding all function patterns.
func (v Version) totalModules() int {
	n := (16*int(v)+128)*int(v) + 64
	if v >= 2 {
		na := int(v)/7 + 2
		n -= (25*na-10)*na - 55
		if v >= 7 {
			n -= 36
		}
	}
	return n
}

// DataBytes returns the number of data codewords that can be stored
// in a QR code with the given version and level.
func (v Version) DataBytes(l Level) int {
	t := &levtab[l]
	return v.totalModules()/8 - int(t.check[v])*int(t.nblock[v])
}

// DataBits returns the number of data bits that can be stored in a
// QR code with the given version and level.
func (v Version) DataBits(l Level) int { return v.DataBytes(l) * 8 }

// alignPos returns the alignment pattern centre positions for v:
// none for version 1, otherwise v/7+2 positions spaced evenly
// between the fixed first at 6 and last at Size-7.
func (v Version) alignPos() []int {
	if v == 1 {
		return nil
	}
	n := int(v)/7 + 2
	step := (int(v)*4 + n*2 + 1) / (n*2 - 2) * 2
	if v == 32 {
		step = 26
	}
	pos := make([]int, n)
	pos[0] = 6
	for i, p := n-1, v.Size()-7; i >= 1; i, p = i-1, p-step {
		pos[i] = p
	}
	return pos
}

// formatBits returns the 15 bit format information for the level and
// mask: 5 data bits, a 10 bit BCH remainder and the fixed XOR mask.
func formatBits(l Level, mask int) uint32 {
	data := levtab[l].fbits<<3 | uint32(mask)
	rem := data
	for i := 0; i < 10; i++ {
		rem = rem<<1 ^ rem>>9&1*0x537
	}
	return (data<<10 | rem) ^ 0x5412
}

// versionBits returns the 18 bit version information for v: 6 data
// bits and a 12 bit BCH remainder.  Only drawn for versions 7 up.
func versionBits(v Version) uint32 {
	rem := uint32(v)
	for i := 0; i < 12; i++ {
		rem = rem<<1 ^ rem>>11&1*0x1f25
	}
	return uint32(v)<<12 | rem
}
