// Copyright 2026 The qrgen Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes text and binary data into QR codes.
*/
package qr // import "github.com/JD557/qrgen"

import (
	"errors"
	"image"
	"image/color"
	"strings"

	"github.com/JD557/qrgen/coding"
)

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // recovers 7% of data
	M              // recovers 15% of data
	Q              // recovers 25% of data
	H              // recovers 30% of data
)

// ECI assignment numbers for common character sets.
const (
	Latin1ECI   = 3
	ShiftJISECI = 20
	UTF8ECI     = 26
)

// ErrArgs is returned by renderers for invalid Code parameters.
var ErrArgs = errors.New("qr: invalid arguments")

// A Code is a square pixel grid holding an encoded QR code.
// It implements image.Image through Image.
type Code struct {
	Bitmap  []byte // 1 is black, 0 is white
	Size    int    // number of pixels on a side
	Stride  int    // number of bytes per row
	Scale   int    // image pixels per QR pixel
	Border  int    // quiet zone in QR pixels
	Reverse bool   // render with colours inverted
	Version int    // QR version, 1 to 40
	Level   Level  // error correction level, after boosting
	Mask    int    // mask number, 0 to 7
}

// EncodeText returns a QR code encoding text at the given error
// correction level.  Digit strings encode in numeric mode, strings
// over the 45 character alphanumeric alphabet in alphanumeric mode,
// anything else as UTF-8 in byte mode.  The smallest fitting version
// is used and the level is boosted as far as the data still fits.
func EncodeText(text string, level Level) (*Code, error) {
	return Encode(coding.MakeSegments(text), level)
}

// EncodeBinary returns a QR code encoding data in byte mode at the
// given error correction level.
func EncodeBinary(data []byte, level Level) (*Code, error) {
	return Encode([]coding.Segment{coding.MakeBytes(data)}, level)
}

// Encode returns a QR code encoding the given segments.
func Encode(segs []coding.Segment, level Level) (*Code, error) {
	cc, err := coding.Encode(segs, coding.Level(level))
	if err != nil {
		return nil, err
	}
	return New(cc), nil
}

// New wraps a low-level code in a Code with default rendering
// parameters.
func New(cc *coding.Code) *Code {
	return &Code{
		Bitmap:  cc.Bitmap,
		Size:    cc.Size,
		Stride:  cc.Stride,
		Scale:   4,
		Border:  4,
		Version: int(cc.Version),
		Level:   Level(cc.Level),
		Mask:    cc.Mask,
	}
}

// Black reports whether the pixel at (x, y) is black.  Coordinates
// outside the grid are white.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(1<<uint(7&^x)) != 0
}

func (c *Code) isValid() bool {
	return c.Size > 0 && c.Stride >= (c.Size+7)/8 &&
		len(c.Bitmap) >= c.Size*c.Stride &&
		c.Scale > 0 && c.Border >= 0
}

// String renders the code as half-block characters for dark
// terminals: light modules print as blocks, dark ones as spaces,
// or the reverse with c.Reverse set.
func (c *Code) String() string {
	bord := c.Border
	var sb strings.Builder
	for y := -bord; y < c.Size+bord; y += 2 {
		for x := -bord; x < c.Size+bord; x++ {
			n := 0
			if c.Black(x, y) != c.Reverse {
				n = 2
			}
			if c.Black(x, y+1) != c.Reverse {
				n++
			}
			sb.WriteString([4]string{"█", "▀", "▄", " "}[n&3])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Image returns an Image displaying the code.
func (c *Code) Image() image.Image {
	return &codeImage{c}
}

// codeImage implements image.Image.
type codeImage struct {
	*Code
}

var (
	whiteColor color.Color = color.Gray{0xFF}
	blackColor color.Color = color.Gray{0x00}
)

func (c *codeImage) Bounds() image.Rectangle {
	d := (c.Size + 2*c.Border) * c.Scale
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) At(x, y int) color.Color {
	if c.Black(x/c.Scale-c.Border, y/c.Scale-c.Border) != c.Reverse {
		return blackColor
	}
	return whiteColor
}

func (c *codeImage) ColorModel() color.Model {
	return color.GrayModel
}
