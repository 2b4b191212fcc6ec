// Command qrgen encodes text as a QR code symbol and writes it as PNG,
// JPEG, SVG, PDF or terminal text.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"syscall"

	qrgen "github.com/ericlevine/qrgen"
	"github.com/ericlevine/qrgen/render"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
)

var g = struct {
	level   qrgen.ErrorCorrectionLevel
	mode    qrgen.Mode
	version int    // 0 = choose smallest
	mask    int    // -1 = choose by penalty
	scale   int    // pixels per module
	border  int    // quiet zone modules
	invert  bool   // swap dark and light
	format  string // output type
	fn      string // output file, "" = stdout
}{
	mask: -1,
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	fmt.Fprint(w, "QR code generator\nUsage: ", cl.Program(), " ",
		cl.UsageLine(), ` [string ...]
If no string is given, data is read from standard input and the final
newline is stripped.

`)
	cl.PrintOptions(w)
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

var formats = []string{"png", "jpeg", "svg", "pdf", "txt", "term"}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, "l",
		"error correction level, lowest to highest", "l|m|q|h")
	ver := getopt.Unsigned('v', 0,
		&getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 0, Max: 40},
		"QR code version; 0 picks the smallest that fits", "ver")
	mask := getopt.Unsigned('m', 0,
		&getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 0, Max: 7},
		"force mask pattern; picked by penalty score if not given", "mask")
	var kanji bool
	getopt.Flag(&kanji, 'k', "encode entirely in kanji mode; "+
		"input must be double-byte Shift JIS characters")
	getopt.Flag(&g.invert, 'i', "invert colours")
	scale := getopt.Unsigned('s', 8,
		&getopt.UnsignedLimit{Base: 0, Bits: 16, Min: 1, Max: 256},
		`image pixels (type pdf: points) per QR module; `+
			`ignored for types txt and term`, "scale")
	border := getopt.Unsigned('q', 4,
		&getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 0, Max: 99},
		"quiet zone width in modules", "modules")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for standard output`,
		"file")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; if no -o is given and standard output is a TTY, `+
		`default is term, otherwise png`, "type")

	getopt.Parse()
	var err error
	if g.level, err = qrgen.ECLevelForString(strings.ToUpper(*lev)); err != nil {
		log.Fatalln(err)
	}
	if kanji {
		g.mode = qrgen.ModeKanji
	}
	g.version = int(*ver)
	if getopt.IsSet('m') {
		g.mask = int(*mask)
	}
	g.scale = int(*scale)
	g.border = int(*border)
	if g.fn == "-" {
		g.fn = ""
	}
	g.format = *ff
	if g.format == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			g.format = "term"
		} else {
			g.format = "png"
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

	opts := &qrgen.EncodeOptions{Version: g.version, Mode: g.mode}
	if g.mask >= 0 {
		opts.MaskPattern = &g.mask
	}
	sym, err := qrgen.Encode(s, g.level, opts)
	if err != nil {
		log.Fatalln(err)
	}

	w := os.Stdout
	if g.fn != "" {
		if w, err = os.OpenFile(g.fn,
			os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666); err != nil {
			log.Fatalln(err)
		}
	}
	o := render.Options{ModuleSize: g.scale, QuietZone: g.border, Invert: g.invert}
	switch g.format {
	case "png":
		err = render.PNG(w, sym, o)
	case "jpeg":
		err = render.JPEG(w, sym, o)
	case "svg":
		err = render.SVG(w, sym, o)
	case "pdf":
		err = render.PDF(w, sym, o)
	case "txt":
		_, err = io.WriteString(w, sym.String())
	case "term":
		err = render.Terminal(w, sym, o)
	}
	if g.fn != "" && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}
