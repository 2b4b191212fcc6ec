package qrgen

import (
	"strings"

	"github.com/ericlevine/qrgen/bitutil"
)

// Symbol holds a fully assembled QR code.
type Symbol struct {
	Segments    []Segment
	Mode        Mode // mode shared by every segment, or ModeAuto when segments mix modes
	Level       ErrorCorrectionLevel
	Version     *Version
	MaskPattern int
	Matrix      *ByteMatrix
}

// BitMatrix converts the symbol's module grid to a BitMatrix.
func (s *Symbol) BitMatrix() *bitutil.BitMatrix {
	bm := bitutil.NewBitMatrixWithSize(s.Matrix.Width, s.Matrix.Height)
	for y := 0; y < s.Matrix.Height; y++ {
		for x := 0; x < s.Matrix.Width; x++ {
			if s.Matrix.Get(x, y) == 1 {
				bm.Set(x, y)
			}
		}
	}
	return bm
}

// Render renders the symbol to a BitMatrix with the given dimensions. The
// symbol is scaled by the largest whole-module multiple that fits once
// quietZone modules of margin are reserved, then centered. The output never
// shrinks below the symbol plus its quiet zone.
func (s *Symbol) Render(width, height, quietZone int) *bitutil.BitMatrix {
	input := s.Matrix
	inputWidth := input.Width
	inputHeight := input.Height
	qrWidth := inputWidth + quietZone*2
	qrHeight := inputHeight + quietZone*2
	outputWidth := width
	if outputWidth < qrWidth {
		outputWidth = qrWidth
	}
	outputHeight := height
	if outputHeight < qrHeight {
		outputHeight = qrHeight
	}

	multiple := outputWidth / qrWidth
	if h := outputHeight / qrHeight; h < multiple {
		multiple = h
	}

	leftPadding := (outputWidth - inputWidth*multiple) / 2
	topPadding := (outputHeight - inputHeight*multiple) / 2

	output := bitutil.NewBitMatrixWithSize(outputWidth, outputHeight)

	for inputY := 0; inputY < inputHeight; inputY++ {
		outputY := topPadding + inputY*multiple
		for inputX := 0; inputX < inputWidth; inputX++ {
			if input.Get(inputX, inputY) == 1 {
				outputX := leftPadding + inputX*multiple
				output.SetRegion(outputX, outputY, multiple, multiple)
			}
		}
	}

	return output
}

// String returns a visual representation of the symbol.
func (s *Symbol) String() string {
	var sb strings.Builder
	for y := 0; y < s.Matrix.Height; y++ {
		for x := 0; x < s.Matrix.Width; x++ {
			if s.Matrix.Get(x, y) == 1 {
				sb.WriteString("##")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
