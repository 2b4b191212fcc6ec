package qrgen

import (
	"testing"

	"github.com/ericlevine/qrgen/bitutil"
)

// formatInfoTable holds the masked format information sequences indexed by
// (level bits << 3) | mask pattern, per ISO/IEC 18004 Annex C.
var formatInfoTable = [32]int{
	0x5412, 0x5125, 0x5E7C, 0x5B4B, 0x45F9, 0x40CE, 0x4F97, 0x4AA0,
	0x77C4, 0x72F3, 0x7DAA, 0x789D, 0x662F, 0x6318, 0x6C41, 0x6976,
	0x1689, 0x13BE, 0x1CE7, 0x19D0, 0x0762, 0x0255, 0x0D0C, 0x083B,
	0x355F, 0x3068, 0x3F31, 0x3A06, 0x24B4, 0x2183, 0x2EDA, 0x2BED,
}

func TestFormatInfoBits(t *testing.T) {
	levels := []ErrorCorrectionLevel{ECLevelL, ECLevelM, ECLevelQ, ECLevelH}
	for _, level := range levels {
		for mask := 0; mask < numMaskPatterns; mask++ {
			want := formatInfoTable[(level.Bits()<<3)|mask]
			if got := formatInfoBits(level, mask); got != want {
				t.Errorf("formatInfoBits(%s, %d) = %#06x, want %#06x", level, mask, got, want)
			}
		}
	}
}

// versionInfoTable holds the version information sequences for versions 7-40,
// per ISO/IEC 18004 Annex D.
var versionInfoTable = []int{
	0x07C94, 0x085BC, 0x09A99, 0x0A4D3, 0x0BBF6,
	0x0C762, 0x0D847, 0x0E60D, 0x0F928, 0x10B78,
	0x1145D, 0x12A17, 0x13532, 0x149A6, 0x15683,
	0x168C9, 0x177EC, 0x18EC4, 0x191E1, 0x1AFAB,
	0x1B08E, 0x1CC1A, 0x1D33F, 0x1ED75, 0x1F250,
	0x209D5, 0x216F0, 0x228BA, 0x2379F, 0x24B0B,
	0x2542E, 0x26A64, 0x27541, 0x28C69,
}

func TestVersionInfoBits(t *testing.T) {
	for number := 7; number <= 40; number++ {
		want := versionInfoTable[number-7]
		if got := versionInfoBits(number); got != want {
			t.Errorf("versionInfoBits(%d) = %#06x, want %#06x", number, got, want)
		}
	}
}

func TestCalculateBCHCode(t *testing.T) {
	// Worked examples from ISO/IEC 18004 Annexes C and D.
	if got := calculateBCHCode(5, typeInfoPoly); got != 0xDC {
		t.Errorf("calculateBCHCode(5, %#x) = %#x, want 0xdc", typeInfoPoly, got)
	}
	if got := calculateBCHCode(7, versionInfoPoly); got != 0xC94 {
		t.Errorf("calculateBCHCode(7, %#x) = %#x, want 0xc94", versionInfoPoly, got)
	}
}

func TestFindMSBSet(t *testing.T) {
	tests := []struct {
		value int
		want  int
	}{
		{0, 0}, {1, 1}, {2, 2}, {3, 2}, {0x80, 8}, {0x537, 11}, {0x1F25, 13},
	}
	for _, tt := range tests {
		if got := findMSBSet(tt.value); got != tt.want {
			t.Errorf("findMSBSet(%#x) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestEmbedTypeInfoBothCopies(t *testing.T) {
	matrix := NewByteMatrix(21, 21)
	matrix.Clear(0xFF)
	embedTypeInfo(ECLevelL, 0, matrix)

	want := formatInfoTable[(ECLevelL.Bits()<<3)|0]
	primary := 0
	for i, coord := range typeInfoCoordinates {
		primary |= int(matrix.Get(coord[0], coord[1])) << uint(i)
	}
	if primary != want {
		t.Errorf("primary copy = %#06x, want %#06x", primary, want)
	}

	second := 0
	for i := 0; i < 15; i++ {
		var bit byte
		if i < 8 {
			bit = matrix.Get(matrix.Width-1-i, 8)
		} else {
			bit = matrix.Get(8, matrix.Height-7+(i-8))
		}
		second |= int(bit) << uint(i)
	}
	if second != want {
		t.Errorf("second copy = %#06x, want %#06x", second, want)
	}
}

func TestMaybeEmbedVersionInfo(t *testing.T) {
	version, _ := GetVersionForNumber(7)
	dimension := version.DimensionForVersion()
	matrix := NewByteMatrix(dimension, dimension)
	matrix.Clear(0xFF)
	maybeEmbedVersionInfo(version, matrix)

	bottomLeft := 0
	topRight := 0
	bitIndex := 0
	for i := 0; i < 6; i++ {
		for j := 0; j < 3; j++ {
			bottomLeft |= int(matrix.Get(i, dimension-11+j)) << uint(bitIndex)
			topRight |= int(matrix.Get(dimension-11+j, i)) << uint(bitIndex)
			bitIndex++
		}
	}
	if want := versionInfoTable[0]; bottomLeft != want || topRight != want {
		t.Errorf("version info = %#06x/%#06x, want %#06x", bottomLeft, topRight, want)
	}

	// Versions below 7 carry no version info.
	v6, _ := GetVersionForNumber(6)
	matrix = NewByteMatrix(41, 41)
	matrix.Clear(0xFF)
	maybeEmbedVersionInfo(v6, matrix)
	for y := 0; y < 41; y++ {
		for x := 0; x < 41; x++ {
			if matrix.Get(x, y) != 0xFF {
				t.Fatalf("version 6 wrote version info at (%d, %d)", x, y)
			}
		}
	}
}

// TestEmbedCoverageMatchesFunctionPattern checks that the cells written by
// the function pattern embeds are exactly the reserved cells reported by
// BuildFunctionPattern, for every version.
func TestEmbedCoverageMatchesFunctionPattern(t *testing.T) {
	for number := 1; number <= 40; number++ {
		version, _ := GetVersionForNumber(number)
		dimension := version.DimensionForVersion()
		matrix := NewByteMatrix(dimension, dimension)
		matrix.Clear(0xFF)
		embedBasicPatterns(version, matrix)
		embedTypeInfo(ECLevelL, 0, matrix)
		maybeEmbedVersionInfo(version, matrix)

		pattern := version.BuildFunctionPattern()
		for y := 0; y < dimension; y++ {
			for x := 0; x < dimension; x++ {
				written := matrix.Get(x, y) != 0xFF
				if written != pattern.Get(x, y) {
					t.Fatalf("version %d cell (%d, %d): written=%v, reserved=%v",
						number, x, y, written, pattern.Get(x, y))
				}
			}
		}
	}
}

func buildTestMatrix(t *testing.T, content string, level ErrorCorrectionLevel, maskPattern int) (*ByteMatrix, *Version) {
	t.Helper()
	segments, err := buildSegments(content, ModeAuto)
	if err != nil {
		t.Fatalf("buildSegments failed: %v", err)
	}
	version, err := chooseVersion(segments, level)
	if err != nil {
		t.Fatalf("chooseVersion failed: %v", err)
	}
	bits, err := buildDataBits(segments, version)
	if err != nil {
		t.Fatalf("buildDataBits failed: %v", err)
	}
	ecBlocks := version.ECBlocksForLevel(level)
	numDataBytes := version.TotalCodewords - ecBlocks.TotalECCodewords()
	if err := terminateBits(numDataBytes, bits); err != nil {
		t.Fatalf("terminateBits failed: %v", err)
	}
	final, err := interleaveWithECBytes(bits, version.TotalCodewords, numDataBytes, ecBlocks.NumBlocks())
	if err != nil {
		t.Fatalf("interleaveWithECBytes failed: %v", err)
	}
	dimension := version.DimensionForVersion()
	matrix := NewByteMatrix(dimension, dimension)
	if err := buildMatrix(final, level, version, maskPattern, matrix); err != nil {
		t.Fatalf("buildMatrix failed: %v", err)
	}
	return matrix, version
}

func TestBuildMatrixStructure(t *testing.T) {
	matrix, version := buildTestMatrix(t, "HELLO WORLD", ECLevelQ, 0)
	if version.Number != 1 {
		t.Fatalf("version = %d, want 1", version.Number)
	}
	dimension := matrix.Width

	// Every cell is resolved to light or dark.
	for y := 0; y < dimension; y++ {
		for x := 0; x < dimension; x++ {
			if v := matrix.Get(x, y); v != 0 && v != 1 {
				t.Fatalf("cell (%d, %d) = %#x, want 0 or 1", x, y, v)
			}
		}
	}

	// Finder pattern corners are dark, separators light.
	for _, cell := range [][2]int{{0, 0}, {6, 0}, {0, 6}, {dimension - 1, 0}, {0, dimension - 1}, {2, 2}} {
		if matrix.Get(cell[0], cell[1]) != 1 {
			t.Errorf("finder cell (%d, %d) = %d, want 1", cell[0], cell[1], matrix.Get(cell[0], cell[1]))
		}
	}
	for _, cell := range [][2]int{{7, 0}, {7, 7}, {0, 7}, {dimension - 8, 0}, {7, dimension - 1}} {
		if matrix.Get(cell[0], cell[1]) != 0 {
			t.Errorf("separator cell (%d, %d) = %d, want 0", cell[0], cell[1], matrix.Get(cell[0], cell[1]))
		}
	}

	// Timing pattern alternates starting dark.
	if matrix.Get(8, 6) != 1 || matrix.Get(9, 6) != 0 || matrix.Get(6, 8) != 1 || matrix.Get(6, 9) != 0 {
		t.Error("timing pattern does not alternate as expected")
	}

	// Dark module.
	if matrix.Get(8, dimension-8) != 1 {
		t.Errorf("dark module (8, %d) = %d, want 1", dimension-8, matrix.Get(8, dimension-8))
	}
}

func TestBuildMatrixAlignmentPatterns(t *testing.T) {
	matrix, version := buildTestMatrix(t, "alignment pattern coverage for version two", ECLevelM, 3)
	if version.Number < 2 {
		t.Fatalf("version = %d, want >= 2", version.Number)
	}
	// Version 2+ has an alignment pattern centered on its last center pair.
	centers := version.AlignmentPatternCenters
	c := centers[len(centers)-1]
	if matrix.Get(c, c) != 1 {
		t.Errorf("alignment center (%d, %d) = %d, want 1", c, c, matrix.Get(c, c))
	}
	for _, cell := range [][2]int{{c - 1, c}, {c + 1, c}, {c, c - 1}, {c, c + 1}} {
		if matrix.Get(cell[0], cell[1]) != 0 {
			t.Errorf("alignment ring (%d, %d) = %d, want 0", cell[0], cell[1], matrix.Get(cell[0], cell[1]))
		}
	}
}

func TestEmbedDataBitsCapacity(t *testing.T) {
	version, _ := GetVersionForNumber(1)

	prepare := func() *ByteMatrix {
		matrix := NewByteMatrix(21, 21)
		matrix.Clear(0xFF)
		embedBasicPatterns(version, matrix)
		embedTypeInfo(ECLevelL, 0, matrix)
		return matrix
	}

	// Version 1 holds exactly 26 codewords of data modules.
	bits := bitutil.NewBitArray(0)
	for i := 0; i < 26*8; i++ {
		bits.AppendBit(i%2 == 0)
	}
	if err := embedDataBits(bits, 0, prepare()); err != nil {
		t.Fatalf("embedDataBits failed: %v", err)
	}

	// One extra bit cannot be placed.
	bits.AppendBit(true)
	if err := embedDataBits(bits, 0, prepare()); err == nil {
		t.Error("expected error for surplus data bits")
	}
}
