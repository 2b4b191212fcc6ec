package qrgen

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ericlevine/qrgen/bitutil"
)

func TestEncodeHelloWorld(t *testing.T) {
	sym, err := Encode("HELLO WORLD", ECLevelQ, nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if sym.Version.Number != 1 {
		t.Errorf("version = %d, want 1", sym.Version.Number)
	}
	if sym.Mode != ModeAlphanumeric {
		t.Errorf("mode = %v, want %v", sym.Mode, ModeAlphanumeric)
	}
	if sym.Level != ECLevelQ {
		t.Errorf("level = %v, want %v", sym.Level, ECLevelQ)
	}
	if sym.MaskPattern < 0 || sym.MaskPattern >= numMaskPatterns {
		t.Errorf("mask pattern = %d, want 0..7", sym.MaskPattern)
	}
	if sym.Matrix.Width != 21 || sym.Matrix.Height != 21 {
		t.Errorf("matrix = %dx%d, want 21x21", sym.Matrix.Width, sym.Matrix.Height)
	}
}

// helloWorldGolden is the complete symbol for "HELLO WORLD" at level Q:
// version 1 in alphanumeric mode, with mask pattern 6 chosen by penalty
// scoring.
const helloWorldGolden = `#######....#..#######
#.....#.##..#.#.....#
#.###.#..#.##.#.###.#
#.###.#.#####.#.###.#
#.###.#.##.#..#.###.#
#.....#..#..#.#.....#
#######.#.#.#.#######
........##.##........
.#.####.##..###.##.#.
#.####.#....####.###.
..#.#.##...#..##.....
#.##.#...#.##...##...
##.########.###.#####
........#...#..#.#...
#######..##..##..####
#.....#.#.#..#..#.###
#.###.#.##.#..#...###
#.###.#.#.###...#.#..
#.###.#..#....#....##
#.....#.###..###..##.
#######..#.#.......#.
`

func TestEncodeHelloWorldGoldenMatrix(t *testing.T) {
	sym, err := Encode("HELLO WORLD", ECLevelQ, nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if sym.MaskPattern != 6 {
		t.Errorf("mask pattern = %d, want 6", sym.MaskPattern)
	}
	want := bitutil.ParseStringMatrix(helloWorldGolden, "#", ".")
	if got := sym.BitMatrix(); !got.Equals(want) {
		t.Errorf("matrix mismatch:\ngot:\n%vwant:\n%v", got, want)
	}
}

func TestEncodeDataCodewords(t *testing.T) {
	// 11 alphanumeric characters at level Q fill version 1 with two pad
	// codewords and a terminator.
	segments, err := buildSegments("HELLO WORLD", ModeAuto)
	if err != nil {
		t.Fatalf("buildSegments failed: %v", err)
	}
	version, _ := GetVersionForNumber(1)
	bits, err := buildDataBits(segments, version)
	if err != nil {
		t.Fatalf("buildDataBits failed: %v", err)
	}
	if err := terminateBits(13, bits); err != nil {
		t.Fatalf("terminateBits failed: %v", err)
	}
	got := make([]byte, 13)
	bits.ToBytes(0, got, 0, 13)
	want := []byte{0x20, 0x5B, 0x0B, 0x78, 0xD1, 0x72, 0xDC, 0x4D, 0x43, 0x40, 0xEC, 0x11, 0xEC}
	if !bytes.Equal(got, want) {
		t.Errorf("data codewords = %x, want %x", got, want)
	}
}

func TestEncodeEmpty(t *testing.T) {
	sym, err := Encode("", ECLevelL, nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if sym.Version.Number != 1 {
		t.Errorf("version = %d, want 1", sym.Version.Number)
	}
	if len(sym.Segments) != 0 {
		t.Errorf("segments = %d, want 0", len(sym.Segments))
	}
	if sym.Mode != ModeAuto {
		t.Errorf("mode = %v, want %v", sym.Mode, ModeAuto)
	}
	for y := 0; y < 21; y++ {
		for x := 0; x < 21; x++ {
			if v := sym.Matrix.Get(x, y); v != 0 && v != 1 {
				t.Fatalf("cell (%d, %d) = %#x, want 0 or 1", x, y, v)
			}
		}
	}
}

func TestEncodeNumericCapacity(t *testing.T) {
	sym, err := Encode(strings.Repeat("7", 7089), ECLevelL, nil)
	if err != nil {
		t.Fatalf("Encode failed at capacity: %v", err)
	}
	if sym.Version.Number != 40 {
		t.Errorf("version = %d, want 40", sym.Version.Number)
	}

	if _, err := Encode(strings.Repeat("7", 7090), ECLevelL, nil); !errors.Is(err, ErrDataTooLong) {
		t.Errorf("error = %v, want ErrDataTooLong", err)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	first, err := Encode("deterministic output", ECLevelM, nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	second, err := Encode("deterministic output", ECLevelM, nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if first.MaskPattern != second.MaskPattern {
		t.Errorf("mask patterns differ: %d vs %d", first.MaskPattern, second.MaskPattern)
	}
	if first.String() != second.String() {
		t.Error("matrices differ between runs")
	}
}

func TestEncodeValidation(t *testing.T) {
	badMaskLow, badMaskHigh := -1, 8
	tests := []struct {
		name    string
		level   ErrorCorrectionLevel
		opts    *EncodeOptions
		wantErr error
	}{
		{"level below range", ErrorCorrectionLevel(-1), nil, ErrInvalidLevel},
		{"level above range", ErrorCorrectionLevel(4), nil, ErrInvalidLevel},
		{"version above range", ECLevelM, &EncodeOptions{Version: 41}, ErrInvalidVersion},
		{"version below range", ECLevelM, &EncodeOptions{Version: -2}, ErrInvalidVersion},
		{"mask below range", ECLevelM, &EncodeOptions{MaskPattern: &badMaskLow}, ErrInvalidMask},
		{"mask above range", ECLevelM, &EncodeOptions{MaskPattern: &badMaskHigh}, ErrInvalidMask},
		{"mode unknown", ECLevelM, &EncodeOptions{Mode: Mode(3)}, ErrInvalidMode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Encode("TEST", tt.level, tt.opts); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestEncodeForcedVersion(t *testing.T) {
	sym, err := Encode("HELLO WORLD", ECLevelQ, &EncodeOptions{Version: 5})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if sym.Version.Number != 5 {
		t.Errorf("version = %d, want 5", sym.Version.Number)
	}
	if sym.Matrix.Width != 37 {
		t.Errorf("dimension = %d, want 37", sym.Matrix.Width)
	}

	// A forced version too small for the content fails rather than spill.
	_, err = Encode(strings.Repeat("x", 200), ECLevelH, &EncodeOptions{Version: 1})
	if !errors.Is(err, ErrDataTooLong) {
		t.Errorf("error = %v, want ErrDataTooLong", err)
	}
}

func TestEncodeForcedMask(t *testing.T) {
	for mask := 0; mask < numMaskPatterns; mask++ {
		sym, err := Encode("FORCED MASK", ECLevelM, &EncodeOptions{MaskPattern: &mask})
		if err != nil {
			t.Fatalf("Encode with mask %d failed: %v", mask, err)
		}
		if sym.MaskPattern != mask {
			t.Errorf("mask = %d, want %d", sym.MaskPattern, mask)
		}

		// The embedded format information names the forced mask.
		want := formatInfoTable[(ECLevelM.Bits()<<3)|mask]
		got := 0
		for i, coord := range typeInfoCoordinates {
			got |= int(sym.Matrix.Get(coord[0], coord[1])) << uint(i)
		}
		if got != want {
			t.Errorf("mask %d: format info = %#06x, want %#06x", mask, got, want)
		}
	}
}

func TestEncodeForcedMode(t *testing.T) {
	sym, err := Encode("12345678", ECLevelM, &EncodeOptions{Mode: ModeByte})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if sym.Mode != ModeByte {
		t.Errorf("mode = %v, want %v", sym.Mode, ModeByte)
	}

	sym, err = Encode("12345678", ECLevelM, &EncodeOptions{Mode: ModeAlphanumeric})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if sym.Mode != ModeAlphanumeric {
		t.Errorf("mode = %v, want %v", sym.Mode, ModeAlphanumeric)
	}

	if _, err := Encode("lowercase", ECLevelM, &EncodeOptions{Mode: ModeNumeric}); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("error = %v, want ErrInvalidMode", err)
	}
}

func TestEncodeKanji(t *testing.T) {
	sym, err := Encode("漢字テスト", ECLevelL, nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if sym.Mode != ModeKanji {
		t.Errorf("mode = %v, want %v", sym.Mode, ModeKanji)
	}
	if sym.Version.Number != 1 {
		t.Errorf("version = %d, want 1", sym.Version.Number)
	}
}

func TestEncodeMixedModes(t *testing.T) {
	sym, err := Encode("AB1234567890123456CD", ECLevelM, nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if len(sym.Segments) != 3 {
		t.Fatalf("segments = %d, want 3", len(sym.Segments))
	}
	if sym.Mode != ModeAuto {
		t.Errorf("mode = %v, want %v for mixed segments", sym.Mode, ModeAuto)
	}
}

func TestSymbolBitMatrix(t *testing.T) {
	sym, err := Encode("BITMATRIX", ECLevelM, nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	bm := sym.BitMatrix()
	if bm.Width() != sym.Matrix.Width || bm.Height() != sym.Matrix.Height {
		t.Fatalf("BitMatrix is %dx%d, want %dx%d", bm.Width(), bm.Height(), sym.Matrix.Width, sym.Matrix.Height)
	}
	for y := 0; y < sym.Matrix.Height; y++ {
		for x := 0; x < sym.Matrix.Width; x++ {
			if bm.Get(x, y) != (sym.Matrix.Get(x, y) == 1) {
				t.Fatalf("cell (%d, %d) mismatch", x, y)
			}
		}
	}
}

func TestSymbolRender(t *testing.T) {
	sym, err := Encode("HELLO WORLD", ECLevelQ, nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	// Minimum size is the symbol plus the quiet zone.
	out := sym.Render(0, 0, 4)
	if out.Width() != 29 || out.Height() != 29 {
		t.Errorf("minimal render = %dx%d, want 29x29", out.Width(), out.Height())
	}

	// Larger targets scale by a whole multiple and center the symbol.
	out = sym.Render(100, 100, 4)
	if out.Width() != 100 || out.Height() != 100 {
		t.Fatalf("render = %dx%d, want 100x100", out.Width(), out.Height())
	}
	if out.Get(0, 0) {
		t.Error("quiet zone corner is dark")
	}
	// multiple = 100/29 = 3, padding = (100-63)/2 = 18; the first module
	// of the finder pattern lands at (18, 18).
	if !out.Get(18, 18) {
		t.Error("finder corner module is light")
	}
	if !out.Get(20, 20) {
		t.Error("finder corner module not scaled to a 3x3 block")
	}
}

func TestSymbolString(t *testing.T) {
	sym, err := Encode("STRING", ECLevelL, nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	s := sym.String()
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != sym.Matrix.Height {
		t.Fatalf("lines = %d, want %d", len(lines), sym.Matrix.Height)
	}
	for i, line := range lines {
		if len(line) != sym.Matrix.Width*2 {
			t.Fatalf("line %d length = %d, want %d", i, len(line), sym.Matrix.Width*2)
		}
	}
	if !strings.Contains(s, "##") {
		t.Error("expected dark modules in string output")
	}
}
