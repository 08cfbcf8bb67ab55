// Copyright 2026 The qrgen Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command qr encodes data from the command line or standard input
// into a QR code and writes it as PNG, PBM or terminal text.
package main

import (
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"strings"
	"syscall"

	qr "github.com/JD557/qrgen"
	"github.com/JD557/qrgen/coding"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
)

var g = struct {
	scale    int      // image pixels per module
	border   int      // quiet zone modules
	rev      bool     // reverse colours
	fn       string   // output filename
	lev      qr.Level // error correction level
	minver   coding.Version
	mask     int  // mask number, or MaskAuto
	format   int  // output format index
	eci      int  // ECI segment value, or -1
	eciflag  bool // encode ECI for the selected charset
	latin1   bool // Latin-1 byte mode
	kanji    bool // kanji mode
	byteOnly bool // byte mode only
	upper    bool // convert input to uppercase
	noboost  bool // do not boost the level
}{
	border: 4,
	eci:    -1,
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	fmt.Fprintln(os.Stderr,
		"QR code generator\nUsage:", getopt.CommandLine.Program(),
		"[options] [string ...]\nIf no string is given, data is read"+
			" from standard input.")
	getopt.PrintUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	getopt.PrintUsage(os.Stdout)
	os.Exit(0)
}

var formats = []string{
	"png", "pngi", "pbm", "pbmi", "utf8", "utf8i", "ascii", "asciii",
}

var encoders = [...]func(*qr.Code, io.Writer) error{
	func(c *qr.Code, w io.Writer) error { return png.Encode(w, c.Image()) },
	(*qr.Code).EncodePBM,
	func(c *qr.Code, w io.Writer) error {
		_, err := fmt.Fprint(w, c)
		return err
	},
	ascii,
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(&g.latin1, '1', "convert the input to Latin-1 byte mode")
	getopt.Flag(&g.byteOnly, '8', "encode the entire input in byte mode")
	getopt.Flag(&g.kanji, 'k', "encode the entire input in kanji mode")
	getopt.Flag(&g.upper, 'i', "convert the input to uppercase")
	getopt.Flag(&g.noboost, 'b',
		"do not boost the error correction level")
	getopt.Flag(&g.border, 'm', "quiet zone modules [4]", "margin")
	fno := getopt.Flag(&g.fn, 'o',
		`output file, or "-" for standard output`, "file")
	getopt.Flag(&g.eciflag, 'e',
		"encode an ECI segment for the selected character encoding")
	eci := getopt.Signed('E', -1,
		&getopt.SignedLimit{Base: 0, Bits: 21, Min: 0, Max: 999999},
		"encode an ECI segment with the given value; overrides -e", "eci")
	ver := getopt.Unsigned('v', 1,
		&getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 1, Max: 40},
		"minimum QR code version", "ver")
	mask := getopt.Signed('p', -1,
		&getopt.SignedLimit{Base: 0, Bits: 8, Min: -1, Max: 7},
		"mask number; -1 chooses the best mask", "mask")
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, "l",
		"error correction level, lowest to highest", "l|m|q|h")
	scale := getopt.Unsigned('s', 4,
		&getopt.UnsignedLimit{Base: 0, Bits: 28, Min: 1, Max: 1 << 28},
		"image pixels per QR module; ignored for types utf8[i] "+
			"and ascii[i]", "scale")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	getopt.Parse()
	g.scale = int(*scale)
	g.minver = coding.Version(*ver)
	g.mask = int(*mask)
	g.lev = qr.Level(strings.Index("lmqhLMQH", *lev) & 3)
	g.eci = int(*eci)
	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "utf8"
		} else {
			*ff = "png"
		}
	}
	for i, v := range formats {
		if *ff == v {
			g.format = i >> 1
			g.rev = i&1 != 0
			break
		}
	}
	if g.fn == "-" {
		g.fn = ""
	}
	if g.eciflag && !getopt.IsSet('E') {
		switch {
		case g.latin1:
			g.eci = qr.Latin1ECI
		case g.kanji:
			g.eci = qr.ShiftJISECI
		default:
			g.eci = qr.UTF8ECI
		}
	}
}

func main() {
	log.SetFlags(0)
	parseFlags()

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}
	if g.upper {
		s = strings.ToUpper(s)
	}

	var segs []coding.Segment
	if g.eci >= 0 {
		seg, err := coding.MakeECI(g.eci)
		if err != nil {
			log.Fatalln(err)
		}
		segs = append(segs, seg)
	}
	switch {
	case g.byteOnly:
		segs = append(segs, coding.MakeBytes([]byte(s)))
	case g.kanji:
		seg, err := coding.MakeKanji(s)
		if err != nil {
			log.Fatalln(err)
		}
		segs = append(segs, seg)
	case g.latin1:
		seg, err := coding.MakeLatin1(s)
		if err != nil {
			log.Fatalln(err)
		}
		segs = append(segs, seg)
	default:
		segs = append(segs, coding.MakeSegments(s)...)
	}

	cc, err := coding.EncodeSegments(segs, coding.Level(g.lev),
		g.minver, coding.MaxVersion, g.mask, !g.noboost)
	if err != nil {
		log.Fatalln(err)
	}
	c := qr.New(cc)
	c.Scale = g.scale
	c.Border = g.border
	c.Reverse = g.rev
	write(c)
}

func write(c *qr.Code) {
	var w = os.Stdout
	if c.Border < 0 {
		log.Fatalln(qr.ErrArgs)
	}
	if g.fn != "" {
		var err error
		if w, err = os.OpenFile(g.fn,
			os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666); err != nil {
			log.Fatalln(err)
		}
	}
	err := encoders[g.format](c, w)
	if g.fn != "" && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}

func ascii(c *qr.Code, w io.Writer) error {
	siz := c.Size
	bord := c.Border
	pix := siz + 2*bord
	b := make([]byte, (pix*2+1)*pix)
	i := 0
	for y := -bord; y < siz+bord; y++ {
		for x := -bord; x < siz+bord; x++ {
			var p byte = ' '
			if c.Black(x, y) != c.Reverse {
				p = '#'
			}
			b[i], b[i+1] = p, p
			i += 2
		}
		b[i] = '\n'
		i++
	}
	_, err := w.Write(b)
	return err
}
