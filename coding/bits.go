// Copyright 2026 The qrgen Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "math"

// Bits is an append-only sequence of bits, packed MSB first.
// The zero value is an empty buffer ready to use.
type Bits struct {
	b    []byte
	nbit int
}

// Len returns the length of b in bits.
func (b *Bits) Len() int { return b.nbit }

// Reset truncates b to zero length.
func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

// Clone returns a copy of b sharing no storage with it.
func (b *Bits) Clone() *Bits {
	return &Bits{append([]byte(nil), b.b...), b.nbit}
}

// Bytes returns the contents of b, which must hold a whole number
// of bytes.
func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	return b.b
}

// Bit returns the bit at index i.
func (b *Bits) Bit(i int) (byte, error) {
	if i < 0 || i >= b.nbit {
		return 0, RangeError{"bit index", int64(i)}
	}
	return b.b[i>>3] >> (7 &^ i) & 1, nil
}

// Append appends the low n bits of v to b, most significant first.
// It requires 0 <= n <= 31 and v < 1<<n, and fails with ErrCapacity
// if the resulting length is not representable.
func (b *Bits) Append(v uint32, n int) error {
	if n < 0 || n > 31 {
		return RangeError{"bit width", int64(n)}
	}
	if v>>n != 0 {
		return RangeError{"bit value", int64(v)}
	}
	if b.nbit > math.MaxInt-n {
		return ErrCapacity
	}
	b.write(v, n)
	return nil
}

// AppendBits appends the contents of o to b in order.
func (b *Bits) AppendBits(o *Bits) error {
	if b.nbit > math.MaxInt-o.nbit {
		return ErrCapacity
	}
	b.appendBits(o)
	return nil
}

// write appends the low n bits of v, most significant first.
// The caller guarantees 0 <= n <= 31 and v < 1<<n.
func (b *Bits) write(v uint32, n int) {
	v <<= 32 - uint(n)
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= n {
			b.nbit += n
			return
		}
		b.nbit += rem
		n -= rem
		v <<= rem
	}
	for k := n; k > 0; k -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += n
}

func (b *Bits) appendBits(o *Bits) {
	if b.nbit%8 == 0 {
		// Byte aligned: copy whole bytes directly.
		b.b = append(b.b, o.b...)
		b.nbit += o.nbit
		if pad := -o.nbit & 7; pad != 0 {
			b.b[len(b.b)-1] &^= 1<<pad - 1
		}
		return
	}
	for i, n := 0, o.nbit; n > 0; i++ {
		w := min(n, 8)
		b.write(uint32(o.b[i]>>(8-w)), w)
		n -= w
	}
}

// padTo appends up to 4 terminator bits, pads to a byte boundary
// with zero bits and fills with alternating pad bytes until b is
// n bits long.  n must be a multiple of 8 and not less than Len.
func (b *Bits) padTo(n int) {
	b.write(0, min(4, n-b.nbit))
	b.write(0, -b.nbit&7)
	for pad := uint32(0xec); b.nbit < n; pad ^= 0xec ^ 0x11 {
		b.write(pad, 8)
	}
}
