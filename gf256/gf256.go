// Copyright 2026 The qrgen Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf256 implements arithmetic over the Galois field GF(2^8)
// and Reed-Solomon checksums over it.
package gf256

import "errors"

// ErrDegree reports a Reed-Solomon generator degree outside [1, 255].
var ErrDegree = errors.New("gf256: generator degree out of range")

// A Field represents an instance of GF(2^8) defined by a reducing
// polynomial and a generator element.
type Field struct {
	poly uint32 // reducing polynomial, bit 8 set
	gen  byte   // generator element
}

// NewField returns the field GF(2^8) defined by the given reducing
// polynomial and generator.  The polynomial must have degree 8.
func NewField(poly, gen int) *Field {
	if poly>>8 != 1 || gen == 0 {
		panic("gf256: invalid field parameters")
	}
	return &Field{uint32(poly), byte(gen)}
}

// Mul returns the product x*y in the field.
func (f *Field) Mul(x, y byte) byte {
	// Russian peasant multiplication, reducing after every shift.
	z := uint32(0)
	for i := 7; i >= 0; i-- {
		z = z<<1 ^ z>>7*f.poly
		z ^= uint32(y) >> i & 1 * uint32(x)
	}
	return byte(z)
}

// Exp returns the generator raised to the power n.
func (f *Field) Exp(n int) byte {
	v := byte(1)
	for ; n > 0; n-- {
		v = f.Mul(v, f.gen)
	}
	return v
}

// Gen returns the Reed-Solomon generator polynomial of the given
// degree, the product of (x - gen^i) for i in [0, degree).  The
// coefficients run from the x^(degree-1) term down to the constant
// term; the leading coefficient is 1 and omitted.
func (f *Field) Gen(degree int) ([]byte, error) {
	if degree < 1 || degree > 255 {
		return nil, ErrDegree
	}
	// Start with the monomial x^0 and multiply by (x - r) for
	// successive powers r of the generator.
	p := make([]byte, degree)
	p[degree-1] = 1
	root := byte(1)
	for i := 0; i < degree; i++ {
		for j := range p {
			p[j] = f.Mul(p[j], root)
			if j+1 < len(p) {
				p[j] ^= p[j+1]
			}
		}
		root = f.Mul(root, f.gen)
	}
	return p, nil
}

// An RSEncoder computes Reed-Solomon checksums of a fixed degree
// over a field.
type RSEncoder struct {
	f   *Field
	gen []byte
}

// NewRSEncoder returns an RSEncoder computing c checksum bytes
// over the field f.
func NewRSEncoder(f *Field, c int) *RSEncoder {
	gen, err := f.Gen(c)
	if err != nil {
		panic("gf256: " + err.Error())
	}
	return &RSEncoder{f, gen}
}

// ECC writes the Reed-Solomon checksum of data into check, whose
// length must equal the encoder's degree.  The checksum is the
// remainder of polynomial long division of data by the generator
// polynomial.
func (rs *RSEncoder) ECC(data, check []byte) {
	if len(check) != len(rs.gen) {
		panic("gf256: wrong checksum length")
	}
	for i := range check {
		check[i] = 0
	}
	for _, b := range data {
		factor := b ^ check[0]
		copy(check, check[1:])
		check[len(check)-1] = 0
		for j, g := range rs.gen {
			check[j] ^= rs.f.Mul(g, factor)
		}
	}
}
