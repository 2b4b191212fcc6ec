package render

import (
	"io"
	"strings"

	qrgen "github.com/ericlevine/qrgen"
)

// Terminal writes the symbol to w using Unicode half blocks, packing two
// module rows into each text line. ModuleSize is ignored. Pass Invert on
// dark terminal themes so the light modules come out as the blocks.
func Terminal(w io.Writer, sym *qrgen.Symbol, o Options) error {
	o = o.normalized()
	dimension := sym.Matrix.Width
	total := dimension + 2*o.QuietZone

	// Rows outside the symbol belong to the quiet zone and are light.
	dark := func(x, y int) bool {
		mx, my := x-o.QuietZone, y-o.QuietZone
		if mx < 0 || my < 0 || mx >= dimension || my >= sym.Matrix.Height {
			return o.Invert
		}
		return (sym.Matrix.Get(mx, my) == 1) != o.Invert
	}

	var sb strings.Builder
	for y := 0; y < total; y += 2 {
		for x := 0; x < total; x++ {
			upper := dark(x, y)
			lower := y+1 < total && dark(x, y+1)
			switch {
			case upper && lower:
				sb.WriteRune('█')
			case upper:
				sb.WriteRune('▀')
			case lower:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
