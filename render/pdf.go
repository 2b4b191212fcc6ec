package render

import (
	"io"

	"github.com/signintech/gopdf"

	qrgen "github.com/ericlevine/qrgen"
)

// PDF writes the symbol to w as a single-page PDF document sized to the
// rendered image, one point per pixel.
func PDF(w io.Writer, sym *qrgen.Symbol, o Options) error {
	o = o.normalized()
	img := buildImage(sym, o)
	size := float64(img.Bounds().Dx())

	rect := gopdf.Rect{W: size, H: size}
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{Unit: gopdf.UnitPT, PageSize: rect})
	pdf.AddPage()
	if err := pdf.ImageFrom(img, 0, 0, &rect); err != nil {
		return err
	}
	return pdf.Write(w)
}
