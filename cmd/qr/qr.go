package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"syscall"
	"unicode/utf8"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	qr "github.com/unixdj/byteqr"
	"github.com/unixdj/byteqr/coding"
)

var g = struct {
	scale  int            // scale
	border int            // quiet zone
	rev    bool           // reverse colours
	fn     string         // filename
	ver    coding.Version // QR version, 0 for smallest fitting
	mask   int            // mask pattern, coding.AutoMask to choose
	format int            // output file format
	upper  bool           // uppercase
	debug  *int           // diagnostics verbosity
}{
	border: qr.DefaultBorder,
}

var logger = commonlog.GetLogger("qr")

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	fmt.Fprint(w, "Byte mode QR code generator\nUsage: ", cl.Program(), " ",
		cl.UsageLine(), ` [string ...]
If no string is given, data is read from standard input and the final
newline is stripped.  Input is UTF-8 and is encoded as ISO 8859-1;
other characters become "?".  Input too long for the version is
truncated.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qr version 0.1.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2025 Vadim Vygonets`)
	os.Exit(0)
}

var formats = []string{
	"png", "pngi", "pbm", "pbmi", "utf8", "utf8i", "ascii", "asciii",
}

var encoders = [...]func(*qr.Code, io.Writer) error{
	(*qr.Code).EncodePNG,
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
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.Flag(&g.upper, 'i', "ignore case, convert input to uppercase")
	getopt.Flag(&g.border, 'm', "quiet zone pixels", "margin")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	g.debug = getopt.Counter('d', "log diagnostics to standard error; "+
		"-dd for more")
	ver := getopt.Unsigned('v', 0, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 0,
		Max: uint64(coding.MaxVersion)},
		"QR code version; 0 picks the smallest that fits", "ver")
	mask := getopt.Signed('p', coding.AutoMask,
		&getopt.SignedLimit{Base: 0, Bits: 8, Min: coding.AutoMask, Max: coding.NumMasks - 1},
		"mask pattern; -1 picks the one with the least penalty", "mask")
	scale := getopt.Unsigned('s', qr.DefaultScale,
		&(getopt.UnsignedLimit{Base: 0, Bits: 28, Min: 1, Max: 1 << 12}),
		`image pixels per QR module ("pixel"); `+
			`ignored for types utf8[i] and ascii[i]`, "scale")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	getopt.Parse()
	if g.border < 0 {
		fmt.Fprintln(os.Stderr, "-m must not be negative")
		usage()
	}
	g.scale = int(*scale)
	g.ver = coding.Version(*ver)
	g.mask = int(*mask)
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
}

func main() {
	log.SetFlags(0)
	parseFlags()
	commonlog.Configure(*g.debug, nil)

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

	n := utf8.RuneCountInString(s)
	if g.ver == 0 {
		g.ver, _ = coding.Fit(n)
	}
	if lim := g.ver.MaxInputLength(); n > lim {
		logger.Warningf("input truncated from %d to %d characters",
			n, lim)
	}
	logger.Infof("version %s, %dx%d pixels", g.ver, g.ver.Size(),
		g.ver.Size())
	if g.mask == coding.AutoMask {
		logScores(s)
	}

	c, err := qr.EncodeMask(s, g.ver, g.mask)
	if err != nil {
		log.Fatalln(err)
	}
	logger.Infof("mask %d", c.Mask)
	write(c)
}

// logScores logs the penalty of each mask.
func logScores(s string) {
	if !logger.AllowLevel(commonlog.Debug) {
		return
	}
	bits, err := coding.Encode(s, g.ver)
	if err != nil {
		return
	}
	pen, err := coding.Scores(g.ver, bits)
	if err != nil {
		return
	}
	for mask, p := range pen {
		logger.Debugf("mask %d: penalty %d", mask, p)
	}
}

func write(c *qr.Code) {
	var w = os.Stdout
	if g.fn != "" {
		var err error
		if w, err = os.OpenFile(g.fn,
			os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666); err != nil {
			log.Fatalln(err)
		}
	}
	c.Scale = g.scale
	c.Border = g.border
	c.Reverse = g.rev
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
