// Copyright 2026 The qrgen Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"math"
	"strconv"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
)

// A Mode is a QR segment encoding mode.
type Mode int

// Predefined encoding modes.
const (
	Numeric      Mode = iota // numeric mode, digits only
	Alphanumeric             // alphanumeric mode, restricted alphabet
	Byte                     // byte mode, any data
	Kanji                    // kanji mode, QR subset of JIS X 0208
	ECI                      // extended channel interpretation
	numModes
)

// modeInfo carries the constants of a mode: the 4 bit mode indicator
// and the character count field width per version size class.
type modeInfo struct {
	name        string
	indicator   uint32
	countLength [3]byte
}

var modes = [numModes]modeInfo{
	Numeric:      {"numeric", 1, [3]byte{10, 12, 14}},
	Alphanumeric: {"alphanumeric", 2, [3]byte{9, 11, 13}},
	Byte:         {"byte", 4, [3]byte{8, 16, 16}},
	Kanji:        {"kanji", 8, [3]byte{8, 10, 12}},
	ECI:          {"eci", 7, [3]byte{0, 0, 0}},
}

func (m Mode) String() string {
	if m >= 0 && m < numModes {
		return modes[m].name
	}
	return strconv.Itoa(int(m))
}

// CountLength returns the width in bits of the character count field
// for mode m at version v.
func (m Mode) CountLength(v Version) int {
	return int(modes[m].countLength[v.SizeClass()])
}

// A Segment is a mode-tagged chunk of the encoded bitstream.
// Segments are immutable once constructed.
type Segment struct {
	mode  Mode
	count int
	data  Bits
}

// Mode returns the encoding mode of s.
func (s *Segment) Mode() Mode { return s.mode }

// Count returns the character count of s.
func (s *Segment) Count() int { return s.count }

// Bits returns the length of the segment data in bits, excluding the
// mode indicator and character count field.
func (s *Segment) Bits() int { return s.data.Len() }

// encode writes the segment header and data for version v to b.
func (s *Segment) encode(b *Bits, v Version) {
	b.write(modes[s.mode].indicator, 4)
	b.write(uint32(s.count), s.mode.CountLength(v))
	b.appendBits(&s.data)
}

const alphamask uint64 = 0x07fffffe_07ffec31 // SPACE $% *+ -./ [0-9] : [A-Z]

// Alphanumeric encoding table.  Used after validation.
// "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"
var alpha = [64]byte{
	00, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, // 0x40
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 00, 00, 00, 00, 00, // 0x50
	36, 00, 00, 00, 37, 38, 00, 00, 00, 00, 39, 40, 00, 41, 42, 43, // 0x20
	00, 01, 02, 03, 04, 05, 06, 07, 010, 9, 44, 00, 00, 00, 00, 00, // 0x30
}

func isNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isAlphanumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < ' ' || c > 'Z' || alphamask>>(c-' ')&1 == 0 {
			return false
		}
	}
	return true
}

// MakeNumeric returns a numeric mode segment encoding the given
// string of decimal digits.
func MakeNumeric(digits string) (Segment, error) {
	if !isNumeric(digits) {
		return Segment{}, SegmentError{Numeric, digits}
	}
	var b Bits
	for s := digits; s != ""; {
		n := min(len(s), 3)
		v := uint32(0)
		for i := 0; i < n; i++ {
			v = v*10 + uint32(s[i]-'0')
		}
		b.write(v, n*3+1)
		s = s[n:]
	}
	return Segment{Numeric, len(digits), b}, nil
}

// MakeAlphanumeric returns an alphanumeric mode segment encoding
// text, which must consist of digits, uppercase letters, space and
// the characters $%*+-./:.
func MakeAlphanumeric(text string) (Segment, error) {
	if !isAlphanumeric(text) {
		return Segment{}, SegmentError{Alphanumeric, text}
	}
	var b Bits
	for s := text; s != ""; {
		if len(s) >= 2 {
			b.write(uint32(alpha[s[0]&0x3f])*45+uint32(alpha[s[1]&0x3f]), 11)
			s = s[2:]
		} else {
			b.write(uint32(alpha[s[0]&0x3f]), 6)
			s = s[1:]
		}
	}
	return Segment{Alphanumeric, len(text), b}, nil
}

// MakeBytes returns a byte mode segment encoding data.  Any byte
// sequence is acceptable.
func MakeBytes(data []byte) Segment {
	var b Bits
	b.b = append(b.b, data...)
	b.nbit = len(data) * 8
	return Segment{Byte, len(data), b}
}

// MakeKanji returns a kanji mode segment encoding text, which must
// consist of characters in the QR kanji subset of JIS X 0208.
// MakeSegments never selects kanji mode; it is only available
// through this constructor.
func MakeKanji(text string) (Segment, error) {
	t, err := japanese.ShiftJIS.NewEncoder().String(text)
	if err != nil || len(t)%2 != 0 {
		return Segment{}, SegmentError{Kanji, text}
	}
	var b Bits
	for i := 0; i < len(t); i += 2 {
		v := uint32(t[i])<<8 | uint32(t[i+1])
		if v < 0x8140 || v > 0xebbf || v > 0x9ffc && v < 0xe040 {
			return Segment{}, SegmentError{Kanji, text}
		}
		b.write(uint32(t[i]&^0xc0)*0xc0+uint32(t[i+1])-0x100, 13)
	}
	return Segment{Kanji, len(t) / 2, b}, nil
}

// MakeLatin1 returns a byte mode segment with text transformed to
// ISO 8859-1, for decoders that default to Latin-1.
func MakeLatin1(text string) (Segment, error) {
	t, err := charmap.ISO8859_1.NewEncoder().String(text)
	if err != nil {
		return Segment{}, SegmentError{Byte, text}
	}
	return MakeBytes([]byte(t)), nil
}

// MakeECI returns a segment carrying an ECI designator, encoded per
// the AIM ECI rules.  Valid values are 0 to 999999.
func MakeECI(value int) (Segment, error) {
	var b Bits
	switch {
	case value < 0 || value >= 1000000:
		return Segment{}, RangeError{"eci value", int64(value)}
	case value < 1<<7:
		b.write(uint32(value), 8)
	case value < 1<<14:
		b.write(2, 2)
		b.write(uint32(value), 14)
	default:
		b.write(6, 3)
		b.write(uint32(value), 21)
	}
	return Segment{ECI, 0, b}, nil
}

// MakeSegments returns segments representing text: numeric mode if
// it consists of digits, alphanumeric mode if its alphabet allows,
// byte mode with UTF-8 encoding otherwise.  Empty text yields no
// segments.  The result is always at most one segment; modes are
// never mixed.
func MakeSegments(text string) []Segment {
	switch {
	case text == "":
		return nil
	case isNumeric(text):
		s, _ := MakeNumeric(text)
		return []Segment{s}
	case isAlphanumeric(text):
		s, _ := MakeAlphanumeric(text)
		return []Segment{s}
	}
	return []Segment{MakeBytes([]byte(text))}
}

// TotalBits returns the number of bits needed to encode segs at
// version v, including mode indicators and character count fields,
// or -1 if a segment's character count overflows its count field
// width or the total exceeds the 32 bit range.
func TotalBits(segs []Segment, v Version) int {
	var n int64
	for i := range segs {
		s := &segs[i]
		cl := s.mode.CountLength(v)
		if s.count >= 1<<cl {
			return -1
		}
		n += int64(4+cl) + int64(s.data.Len())
		if n > math.MaxInt32 {
			return -1
		}
	}
	return int(n)
}
