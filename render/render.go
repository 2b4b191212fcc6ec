// Package render turns encoded QR code symbols into image, vector and
// terminal output.
package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"

	qrgen "github.com/ericlevine/qrgen"
)

const (
	defaultModuleSize = 8
	defaultQuietZone  = 4
)

// Options control the rendered output. ModuleSize is the width of one
// module in pixels (or points for PDF); values below 1 fall back to 8.
// QuietZone is the light border width in modules; negative values fall back
// to the standard 4, zero disables the border. Invert swaps dark and light
// cells.
type Options struct {
	ModuleSize int
	QuietZone  int
	Invert     bool
}

func (o Options) normalized() Options {
	if o.ModuleSize < 1 {
		o.ModuleSize = defaultModuleSize
	}
	if o.QuietZone < 0 {
		o.QuietZone = defaultQuietZone
	}
	return o
}

func (o Options) colors() (fg, bg color.Color) {
	if o.Invert {
		return color.White, color.Black
	}
	return color.Black, color.White
}

// buildImage rasterizes the symbol onto a two-color paletted image.
func buildImage(sym *qrgen.Symbol, o Options) *image.Paletted {
	fg, bg := o.colors()
	dimension := sym.Matrix.Width
	size := (dimension + 2*o.QuietZone) * o.ModuleSize

	img := image.NewPaletted(image.Rect(0, 0, size, size), color.Palette{bg, fg})
	for y := 0; y < dimension; y++ {
		for x := 0; x < dimension; x++ {
			if sym.Matrix.Get(x, y) != 1 {
				continue
			}
			px := (x + o.QuietZone) * o.ModuleSize
			py := (y + o.QuietZone) * o.ModuleSize
			for dy := 0; dy < o.ModuleSize; dy++ {
				for dx := 0; dx < o.ModuleSize; dx++ {
					img.SetColorIndex(px+dx, py+dy, 1)
				}
			}
		}
	}
	return img
}

// PNG writes the symbol to w as a PNG image.
func PNG(w io.Writer, sym *qrgen.Symbol, o Options) error {
	encoder := png.Encoder{CompressionLevel: png.BestCompression}
	return encoder.Encode(w, buildImage(sym, o.normalized()))
}

// JPEG writes the symbol to w as a JPEG image.
func JPEG(w io.Writer, sym *qrgen.Symbol, o Options) error {
	return jpeg.Encode(w, buildImage(sym, o.normalized()), &jpeg.Options{Quality: jpeg.DefaultQuality})
}

// DataURI renders the symbol in the named format ("png", "jpeg", "svg" or
// "pdf") and returns it as a base64 data URI.
func DataURI(format string, sym *qrgen.Symbol, o Options) (string, error) {
	var b bytes.Buffer
	var mime string
	var err error
	switch format {
	case "png":
		mime, err = "image/png", PNG(&b, sym, o)
	case "jpeg":
		mime, err = "image/jpeg", JPEG(&b, sym, o)
	case "svg":
		mime, err = "image/svg+xml", SVG(&b, sym, o)
	case "pdf":
		mime, err = "application/pdf", PDF(&b, sym, o)
	default:
		return "", fmt.Errorf("render: unknown format %q", format)
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(b.Bytes())), nil
}
