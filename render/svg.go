package render

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"

	qrgen "github.com/ericlevine/qrgen"
)

func svgFillStyle(c color.Color) string {
	r, g, b, a := c.RGBA()
	return fmt.Sprintf("fill: rgb(%d, %d, %d); fill-opacity: %.2f", r>>8, g>>8, b>>8, float64(a>>8)/255)
}

// SVG writes the symbol to w as an SVG document with one rect per dark
// module.
func SVG(w io.Writer, sym *qrgen.Symbol, o Options) error {
	o = o.normalized()
	fg, bg := o.colors()
	dimension := sym.Matrix.Width
	size := (dimension + 2*o.QuietZone) * o.ModuleSize

	var b bytes.Buffer
	canvas := svg.New(&b)
	canvas.Start(size, size)
	canvas.Rect(0, 0, size, size, svgFillStyle(bg))
	canvas.Group(svgFillStyle(fg))
	canvas.Scale(float64(o.ModuleSize))
	for y := 0; y < dimension; y++ {
		for x := 0; x < dimension; x++ {
			if sym.Matrix.Get(x, y) == 1 {
				canvas.Rect(x+o.QuietZone, y+o.QuietZone, 1, 1)
			}
		}
	}
	canvas.Gend()
	canvas.Gend()
	canvas.End()

	_, err := w.Write(b.Bytes())
	return err
}
