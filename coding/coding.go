// Copyright 2026 The qrgen Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR Code Model 2 symbol
// construction: segments, error correction, module grid layout and
// mask selection.
package coding // import "github.com/JD557/qrgen/coding"

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/JD557/qrgen/gf256"
)

var (
	ErrVersion = errors.New("qr: invalid version")
	ErrLevel   = errors.New("qr: invalid level")

	// ErrCapacity reports a bit buffer grown past the largest
	// representable bit count.
	ErrCapacity = errors.New("qr: bit buffer capacity exceeded")

	// ErrDataLength reports a data slice whose length does not
	// match the version and level it is encoded for.
	ErrDataLength = errors.New("qr: wrong data length for version and level")
)

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// A Version represents a QR version.  The version specifies the size
// of the QR code: a code with version v has 4v+17 modules on a side.
// The larger the version, the more information the code can store.
type Version int

const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// QR version size classes, selecting character count field widths.
const (
	Class0 = iota // QR versions 1 to 9
	Class1        // QR versions 10 to 26
	Class2        // QR versions 27 to 40
)

// SizeClass returns the size class of v, as documented under Class0.
func (v Version) SizeClass() int {
	if v <= 9 {
		return Class0
	}
	if v <= 26 {
		return Class1
	}
	return Class2
}

// Size returns the number of modules on a side of a QR code with
// version v.
func (v Version) Size() int { return int(v)*4 + 17 }

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota
	M
	Q
	H
)

func (l Level) String() string {
	if L <= l && l <= H {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// RangeError reports a numeric parameter outside its domain.
type RangeError struct {
	Param string
	Value int64
}

func (e RangeError) Error() string {
	return fmt.Sprintf("qr: %s %d out of range", e.Param, e.Value)
}

// SegmentError reports a string that is not encodable in a mode.
type SegmentError struct {
	Mode Mode
	Text string
}

func (e SegmentError) Error() string {
	return fmt.Sprintf("qr: non-%s string %#q", e.Mode, e.Text)
}

// DataTooLongError reports data that fits no version in the allowed
// range.  If Bits is negative, a segment's character count overflows
// its count field width at every allowed version; otherwise the
// encoded data exceeds the capacity of the largest allowed version.
type DataTooLongError struct {
	Bits     int     // encoded length in bits, or -1
	Capacity int     // data capacity in bits at Version
	Version  Version // largest allowed version
}

func (e DataTooLongError) Error() string {
	if e.Bits < 0 {
		return fmt.Sprintf(
			"qr: segment character count does not fit count field up to version %s",
			e.Version)
	}
	return fmt.Sprintf("qr: data length %d bits exceeds %d bit capacity of version %s",
		e.Bits, e.Capacity, e.Version)
}
