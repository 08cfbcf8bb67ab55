// Copyright 2026 The qrgen Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestBitsAppend(t *testing.T) {
	var b Bits
	if err := b.Append(5, 3); err != nil {
		t.Fatal(err)
	}
	if err := b.Append(1, 2); err != nil {
		t.Fatal(err)
	}
	if b.Len() != 5 {
		t.Fatalf("Len = %d, want 5", b.Len())
	}
	// 101 01, most significant first
	want := []byte{1, 0, 1, 0, 1}
	for i, w := range want {
		if v, err := b.Bit(i); err != nil || v != w {
			t.Errorf("Bit(%d) = %d, %v, want %d", i, v, err, w)
		}
	}
	for _, i := range []int{-1, 5} {
		if _, err := b.Bit(i); !errors.As(err, new(RangeError)) {
			t.Errorf("Bit(%d): err = %v, want RangeError", i, err)
		}
	}
}

func TestBitsAppendRange(t *testing.T) {
	var b Bits
	for _, tc := range []struct {
		v uint32
		n int
	}{
		{0, -1},
		{0, 32},
		{4, 2},
	} {
		if err := b.Append(tc.v, tc.n); !errors.As(err, new(RangeError)) {
			t.Errorf("Append(%d, %d): err = %v, want RangeError",
				tc.v, tc.n, err)
		}
	}
	if b.Len() != 0 {
		t.Errorf("Len = %d after failed appends", b.Len())
	}
}

func TestBitsAppendBits(t *testing.T) {
	var a, b Bits
	a.write(0x15, 5)
	b.write(0x2c5, 11)
	if err := a.AppendBits(&b); err != nil {
		t.Fatal(err)
	}
	if a.Len() != 16 {
		t.Fatalf("Len = %d, want 16", a.Len())
	}
	// 10101 01011000101
	if want := []byte{0xaa, 0xc5}; !bytes.Equal(a.Bytes(), want) {
		t.Errorf("Bytes = %x, want %x", a.Bytes(), want)
	}
}

func TestBitsPadTo(t *testing.T) {
	var b Bits
	b.write(0xf, 4)
	b.padTo(32)
	want := []byte{0xf0, 0xec, 0x11, 0xec}
	if b.Len() != 32 || !bytes.Equal(b.Bytes(), want) {
		t.Errorf("padded to %x, want %x", b.Bytes(), want)
	}

	// Terminator shortened to the 2 remaining bits, no pad bytes.
	b.Reset()
	b.write(0x3fffffff, 30)
	b.padTo(32)
	if b.Len() != 32 || b.b[3] != 0xfc {
		t.Errorf("padded to %x, want last byte fc", b.Bytes())
	}
}

func TestBitsBytesPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Bytes on fractional byte did not panic")
		}
	}()
	var b Bits
	b.write(0, 3)
	b.Bytes()
}

func TestMakeNumeric(t *testing.T) {
	s, err := MakeNumeric("01234567")
	if err != nil {
		t.Fatal(err)
	}
	if s.Mode() != Numeric || s.Count() != 8 || s.Bits() != 27 {
		t.Fatalf("mode %v count %d bits %d, want numeric 8 27",
			s.Mode(), s.Count(), s.Bits())
	}
	// 012 345 67 -> 0000001100 0101011001 1000011
	if want := "000000110001010110011000011"; bitString(&s.data) != want {
		t.Errorf("data = %s, want %s", bitString(&s.data), want)
	}

	if _, err := MakeNumeric("12a"); err == nil {
		t.Error(`MakeNumeric("12a") did not fail`)
	} else if want := "qr: non-numeric string `12a`"; err.Error() != want {
		t.Errorf("err = %q, want %q", err, want)
	}
}

func TestMakeAlphanumeric(t *testing.T) {
	s, err := MakeAlphanumeric("AC-42")
	if err != nil {
		t.Fatal(err)
	}
	if s.Mode() != Alphanumeric || s.Count() != 5 || s.Bits() != 28 {
		t.Fatalf("mode %v count %d bits %d, want alphanumeric 5 28",
			s.Mode(), s.Count(), s.Bits())
	}
	if want := "0011100111011100111001000010"; bitString(&s.data) != want {
		t.Errorf("data = %s, want %s", bitString(&s.data), want)
	}

	for _, bad := range []string{"abc", "A,B", "Ä"} {
		if _, err := MakeAlphanumeric(bad); err == nil {
			t.Errorf("MakeAlphanumeric(%q) did not fail", bad)
		}
	}
}

func TestMakeBytes(t *testing.T) {
	s := MakeBytes([]byte{0, 0xff, 0x80})
	if s.Mode() != Byte || s.Count() != 3 || s.Bits() != 24 {
		t.Fatalf("mode %v count %d bits %d, want byte 3 24",
			s.Mode(), s.Count(), s.Bits())
	}
}

func TestMakeKanji(t *testing.T) {
	s, err := MakeKanji("点茗")
	if err != nil {
		t.Fatal(err)
	}
	if s.Count() != 2 || s.Bits() != 26 {
		t.Fatalf("count %d bits %d, want 2 26", s.Count(), s.Bits())
	}
	// Shift JIS 935F -> 0d9f, e4aa -> 1aaa
	want := "0110110011111" + "1101010101010"
	if bitString(&s.data) != want {
		t.Errorf("data = %s, want %s", bitString(&s.data), want)
	}

	// ASCII and half-width kana encode to single Shift JIS bytes
	// outside the double-byte ranges.
	for _, bad := range []string{"abc", "点a", "ｶﾅ"} {
		if _, err := MakeKanji(bad); err == nil {
			t.Errorf("MakeKanji(%q) did not fail", bad)
		}
	}
}

func TestMakeLatin1(t *testing.T) {
	s, err := MakeLatin1("café")
	if err != nil {
		t.Fatal(err)
	}
	if s.Mode() != Byte || s.Count() != 4 {
		t.Fatalf("mode %v count %d, want byte 4", s.Mode(), s.Count())
	}
	if want := []byte{0x63, 0x61, 0x66, 0xe9}; !bytes.Equal(s.data.Bytes(), want) {
		t.Errorf("data = %x, want %x", s.data.Bytes(), want)
	}

	if _, err := MakeLatin1("漢"); err == nil {
		t.Error("MakeLatin1 of kanji did not fail")
	}
}

func TestMakeECI(t *testing.T) {
	for _, tc := range []struct {
		value int
		bits  string
	}{
		{26, "00011010"},
		{0, "00000000"},
		{127, "01111111"},
		{128, "1000000010000000"},
		{16383, "1011111111111111"},
		{16384, "110000000100000000000000"},
		{999999, "110011110100001000111111"},
	} {
		s, err := MakeECI(tc.value)
		if err != nil {
			t.Errorf("MakeECI(%d): %v", tc.value, err)
			continue
		}
		if s.Mode() != ECI || s.Count() != 0 {
			t.Errorf("MakeECI(%d): mode %v count %d",
				tc.value, s.Mode(), s.Count())
		}
		if got := bitString(&s.data); got != tc.bits {
			t.Errorf("MakeECI(%d) = %s, want %s", tc.value, got, tc.bits)
		}
	}
	for _, v := range []int{-1, 1000000} {
		if _, err := MakeECI(v); !errors.As(err, new(RangeError)) {
			t.Errorf("MakeECI(%d): err = %v, want RangeError", v, err)
		}
	}
}

func TestMakeSegments(t *testing.T) {
	for _, tc := range []struct {
		text string
		mode Mode
	}{
		{"314159265358979323846264338327950288419716939937510", Numeric},
		{"DOLLAR AMOUNT: $39.87 + 10%*", Alphanumeric},
		{"hello, world", Byte},
		{"こんにちwa、世界！", Byte},
	} {
		segs := MakeSegments(tc.text)
		if len(segs) != 1 || segs[0].Mode() != tc.mode {
			t.Errorf("MakeSegments(%q) = %v, want one %v segment",
				tc.text, segs, tc.mode)
		}
	}
	if segs := MakeSegments(""); segs != nil {
		t.Errorf(`MakeSegments("") = %v, want nil`, segs)
	}
}

func TestTotalBits(t *testing.T) {
	s, _ := MakeNumeric("0123456789")
	// 4 bit indicator, 10 bit count at version 1, 34 data bits.
	if n := TotalBits([]Segment{s}, 1); n != 48 {
		t.Errorf("TotalBits(v1) = %d, want 48", n)
	}
	// 12 bit count at version 10, 14 at version 27.
	if n := TotalBits([]Segment{s}, 10); n != 50 {
		t.Errorf("TotalBits(v10) = %d, want 50", n)
	}
	if n := TotalBits([]Segment{s}, 27); n != 52 {
		t.Errorf("TotalBits(v27) = %d, want 52", n)
	}

	// 1024 digits overflow the 10 bit count field of version 1.
	s, _ = MakeNumeric(strings.Repeat("7", 1024))
	if n := TotalBits([]Segment{s}, 1); n != -1 {
		t.Errorf("TotalBits(overflowing count) = %d, want -1", n)
	}
	if n := TotalBits([]Segment{s}, 10); n == -1 {
		t.Error("TotalBits(v10) = -1 for 1024 digits")
	}
}

func TestDataBytes(t *testing.T) {
	for _, tc := range []struct {
		v    Version
		l    Level
		want int
	}{
		{1, L, 19},
		{1, M, 16},
		{1, Q, 13},
		{1, H, 9},
		{5, H, 46},
		{14, L, 461},
		{40, L, 2956},
		{40, H, 1276},
	} {
		if n := tc.v.DataBytes(tc.l); n != tc.want {
			t.Errorf("DataBytes(%v, %v) = %d, want %d",
				tc.v, tc.l, n, tc.want)
		}
	}
}

func TestTotalModules(t *testing.T) {
	for _, tc := range []struct {
		v    Version
		want int
	}{
		{1, 26},
		{5, 134},
		{14, 581},
		{40, 3706},
	} {
		if n := tc.v.totalModules() / 8; n != tc.want {
			t.Errorf("totalModules(%v)/8 = %d, want %d", tc.v, n, tc.want)
		}
	}
}

func TestCapacityMonotonic(t *testing.T) {
	for l := L; l <= H; l++ {
		for v := MinVersion; v < MaxVersion; v++ {
			if v.DataBytes(l) >= (v + 1).DataBytes(l) {
				t.Errorf("DataBytes(%v, %v) = %d not below version %v",
					v, l, v.DataBytes(l), v+1)
			}
		}
	}
}

func TestAlignPos(t *testing.T) {
	for _, tc := range []struct {
		v    Version
		want []int
	}{
		{1, nil},
		{2, []int{6, 18}},
		{7, []int{6, 22, 38}},
		{32, []int{6, 34, 60, 86, 112, 138}},
		{40, []int{6, 30, 58, 86, 114, 142, 170}},
	} {
		got := tc.v.alignPos()
		if len(got) != len(tc.want) {
			t.Errorf("alignPos(%v) = %v, want %v", tc.v, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("alignPos(%v) = %v, want %v", tc.v, got, tc.want)
				break
			}
		}
	}
}

func TestFormatBits(t *testing.T) {
	for _, tc := range []struct {
		l    Level
		mask int
		want uint32
	}{
		{L, 0, 0x77c4},
		{M, 0, 0x5412},
		{Q, 1, 0x3068},
		{H, 7, 0x083b},
	} {
		if fb := formatBits(tc.l, tc.mask); fb != tc.want {
			t.Errorf("formatBits(%v, %d) = %#04x, want %#04x",
				tc.l, tc.mask, fb, tc.want)
		}
	}
}

func TestVersionBits(t *testing.T) {
	for _, tc := range []struct {
		v    Version
		want uint32
	}{
		{7, 0x07c94},
		{21, 0x15683},
		{40, 0x28c69},
	} {
		if vb := versionBits(tc.v); vb != tc.want {
			t.Errorf("versionBits(%v) = %#05x, want %#05x",
				tc.v, vb, tc.want)
		}
	}
}

func TestAddEccAndInterleave(t *testing.T) {
	// Version 5-H: 4 blocks of 11, 11, 12, 12 data bytes and 22
	// checksum bytes each, 134 raw codewords.
	data := make([]byte, Version(5).DataBytes(H))
	for i := range data {
		data[i] = byte(i)
	}
	out, err := AddEccAndInterleave(5, H, data)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 134 {
		t.Fatalf("len = %d, want 134", len(out))
	}
	// The first 11 rounds take one byte from each block in order.
	for i := 0; i < 44; i++ {
		var want byte
		switch j := i % 4; j {
		case 0, 1:
			want = byte(i/4 + j*11)
		default:
			want = byte(i/4 + 22 + (j-2)*12)
		}
		if out[i] != want {
			t.Errorf("out[%d] = %d, want %d", i, out[i], want)
		}
	}
	// The 12th round has only the two long blocks.
	if out[44] != 33 || out[45] != 45 {
		t.Errorf("out[44:46] = %v, want [33 45]", out[44:46])
	}
}

func TestAddEccAndInterleaveErrors(t *testing.T) {
	data := make([]byte, 19)
	if _, err := AddEccAndInterleave(0, L, data); err != ErrVersion {
		t.Errorf("version 0: err = %v, want ErrVersion", err)
	}
	if _, err := AddEccAndInterleave(1, Level(4), data); err != ErrLevel {
		t.Errorf("level 4: err = %v, want ErrLevel", err)
	}
	if _, err := AddEccAndInterleave(1, M, data); err != ErrDataLength {
		t.Errorf("short data: err = %v, want ErrDataLength", err)
	}
}

// bitString renders b as a string of ASCII digits for comparison.
func bitString(b *Bits) string {
	var sb strings.Builder
	for i := 0; i < b.Len(); i++ {
		v, _ := b.Bit(i)
		sb.WriteByte('0' + v)
	}
	return sb.String()
}
