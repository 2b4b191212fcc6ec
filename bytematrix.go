package qrgen

import "strings"

// ByteMatrix is a module grid stored as a single row-major byte slice.
// Cells hold 0 (light), 1 (dark), or 0xFF meaning not yet written. Function
// pattern placement writes cells first, so data placement fills exactly the
// cells still marked 0xFF.
type ByteMatrix struct {
	Width, Height int
	data          []byte
}

// NewByteMatrix creates a new ByteMatrix.
func NewByteMatrix(width, height int) *ByteMatrix {
	return &ByteMatrix{
		Width:  width,
		Height: height,
		data:   make([]byte, width*height),
	}
}

// Get returns the value at (x, y).
func (bm *ByteMatrix) Get(x, y int) byte { return bm.data[y*bm.Width+x] }

// Set sets the value at (x, y).
func (bm *ByteMatrix) Set(x, y int, value byte) { bm.data[y*bm.Width+x] = value }

// SetBool sets the value at (x, y) as 1 (true) or 0 (false).
func (bm *ByteMatrix) SetBool(x, y int, value bool) {
	if value {
		bm.data[y*bm.Width+x] = 1
	} else {
		bm.data[y*bm.Width+x] = 0
	}
}

// Clear fills the matrix with the given value.
func (bm *ByteMatrix) Clear(value byte) {
	for i := range bm.data {
		bm.data[i] = value
	}
}

// String returns a visual representation using "##" for dark and "  " for
// light or unwritten cells.
func (bm *ByteMatrix) String() string {
	var sb strings.Builder
	sb.Grow(bm.Height * (bm.Width*2 + 1))
	for y := 0; y < bm.Height; y++ {
		for x := 0; x < bm.Width; x++ {
			if bm.Get(x, y) == 1 {
				sb.WriteString("##")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
