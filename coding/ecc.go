// Copyright 2026 The qrgen Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "github.com/JD557/qrgen/gf256"

// AddEccAndInterleave splits data into blocks, appends a
// Reed-Solomon checksum to each and interleaves the blocks into the
// raw codeword sequence for a symbol of the given version and level.
// The length of data must equal v.DataBytes(l).
func AddEccAndInterleave(v Version, l Level, data []byte) ([]byte, error) {
	if v < MinVersion || v > MaxVersion {
		return nil, ErrVersion
	}
	if l < L || l > H {
		return nil, ErrLevel
	}
	if len(data) != v.DataBytes(l) {
		return nil, ErrDataLength
	}

	t := &levtab[l]
	nblock, check := int(t.nblock[v]), int(t.check[v])
	raw := v.totalModules() / 8
	// Short blocks come first and hold one data byte less.
	short := nblock - raw%nblock
	slen := raw/nblock - check

	// Split into blocks and compute a checksum for each.
	type block struct{ dat, ecc []byte }
	blocks := make([]block, nblock)
	ecc := make([]byte, nblock*check)
	rs := gf256.NewRSEncoder(Field, check)
	for i := range blocks {
		n := slen
		if i >= short {
			n++
		}
		blocks[i].dat, data = data[:n], data[n:]
		blocks[i].ecc, ecc = ecc[:check], ecc[check:]
		rs.ECC(blocks[i].dat, blocks[i].ecc)
	}

	// Interleave byte index major across blocks; short blocks lack
	// the last data byte, so its position is naturally skipped.
	out := make([]byte, 0, raw)
	for i := 0; i <= slen; i++ {
		for j := range blocks {
			if i < len(blocks[j].dat) {
				out = append(out, blocks[j].dat[i])
			}
		}
	}
	for i := 0; i < check; i++ {
		for j := range blocks {
			out = append(out, blocks[j].ecc[i])
		}
	}
	if len(out) != raw {
		panic("qr: internal error")
	}
	return out, nil
}
