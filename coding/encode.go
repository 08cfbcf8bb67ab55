// Copyright 2026 The qrgen Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// MaskAuto selects the mask with the lowest penalty score,
// preferring the lowest mask number on a tie.
const MaskAuto = -1

// EncodeSegments encodes segs into a QR code at the given error
// correction level.  The version is the smallest in [minVersion,
// maxVersion] whose capacity fits the data.  mask is a mask number 0
// to 7, or MaskAuto.  If boost is true, the level is raised to the
// strongest one whose capacity at the chosen version still fits; the
// chosen version never changes.
func EncodeSegments(segs []Segment, l Level, minVersion, maxVersion Version,
	mask int, boost bool) (*Code, error) {
	if minVersion < MinVersion || minVersion > maxVersion ||
		maxVersion > MaxVersion {
		return nil, ErrVersion
	}
	if l < L || l > H {
		return nil, ErrLevel
	}
	if mask != MaskAuto && (mask < 0 || mask > 7) {
		return nil, RangeError{"mask", int64(mask)}
	}

	// Find the smallest version fitting the data.
	v := minVersion
	var used int
	for {
		used = TotalBits(segs, v)
		if used != -1 && used <= v.DataBits(l) {
			break
		}
		if v >= maxVersion {
			if used == -1 {
				return nil, DataTooLongError{Bits: -1, Version: maxVersion}
			}
			return nil, DataTooLongError{
				Bits:     used,
				Capacity: v.DataBits(l),
				Version:  maxVersion,
			}
		}
		v++
	}

	// Boost the level as far as the data still fits.
	if boost {
		for nl := l + 1; nl <= H; nl++ {
			if used <= v.DataBits(nl) {
				l = nl
			}
		}
	}

	// Assemble the bit stream: header and data per segment, then
	// terminator, byte alignment and pad bytes up to capacity.
	var b Bits
	for i := range segs {
		segs[i].encode(&b, v)
	}
	if b.Len() != used {
		panic("qr: internal error")
	}
	b.padTo(v.DataBits(l))

	raw, err := AddEccAndInterleave(v, l, b.Bytes())
	if err != nil {
		return nil, err
	}

	brd := newBoard(v)
	brd.drawFunctionPatterns(l)
	brd.drawCodewords(raw)

	if mask == MaskAuto {
		best, pen := 0, 1<<30 // largest penalty is far below 1<<30
		for m := 0; m < 8; m++ {
			brd.applyMask(m)
			brd.drawFormat(l, m)
			if p := brd.penalty(); p < pen {
				best, pen = m, p
			}
			brd.applyMask(m) // undo
		}
		mask = best
	}
	brd.applyMask(mask)
	brd.drawFormat(l, mask)
	return brd.code(l, mask), nil
}

// Encode encodes segs at the given level with automatic version,
// mask and level boosting.
func Encode(segs []Segment, l Level) (*Code, error) {
	return EncodeSegments(segs, l, MinVersion, MaxVersion, MaskAuto, true)
}
