package qrgen

// Mode represents a QR code data encoding mode. The constant values are the
// 4-bit mode indicators written to the bitstream.
type Mode int

const (
	// ModeAuto selects the minimal-cost segmentation. It is the zero value
	// and never appears in an encoded symbol.
	ModeAuto         Mode = 0x0
	ModeNumeric      Mode = 0x1
	ModeAlphanumeric Mode = 0x2
	ModeByte         Mode = 0x4
	ModeKanji        Mode = 0x8
)

// modeInfo drives per-mode dispatch: the display name and the
// character-count indicator widths for version classes 1-9, 10-26, 27-40.
var modeInfo = map[Mode]struct {
	name      string
	countBits [3]int
}{
	ModeNumeric:      {"Numeric", [3]int{10, 12, 14}},
	ModeAlphanumeric: {"Alphanumeric", [3]int{9, 11, 13}},
	ModeByte:         {"Byte", [3]int{8, 16, 16}},
	ModeKanji:        {"Kanji", [3]int{8, 10, 12}},
}

// Bits returns the 4-bit mode indicator.
func (m Mode) Bits() int {
	return int(m)
}

// CharacterCountBits returns the number of bits used to encode the character
// count for this mode in the given version.
func (m Mode) CharacterCountBits(version *Version) int {
	number := version.Number
	var offset int
	if number <= 9 {
		offset = 0
	} else if number <= 26 {
		offset = 1
	} else {
		offset = 2
	}
	return modeInfo[m].countBits[offset]
}

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeAuto {
		return "Auto"
	}
	if info, ok := modeInfo[m]; ok {
		return info.name
	}
	return "?"
}

func (m Mode) valid() bool {
	_, ok := modeInfo[m]
	return ok
}

// alphanumericTable maps ASCII values to alphanumeric codes.
var alphanumericTable = [128]int{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	36, -1, -1, -1, 37, 38, -1, -1, -1, -1, 39, 40, -1, 41, 42, 43,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 44, -1, -1, -1, -1, -1,
	-1, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24,
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
}

// GetAlphanumericCode returns the alphanumeric code for a character, or -1
// if the character is not in the alphanumeric set.
func GetAlphanumericCode(code int) int {
	if code >= 0 && code < 128 {
		return alphanumericTable[code]
	}
	return -1
}

// ChooseMode determines the tightest single encoding mode covering all of
// the content.
func ChooseMode(content string) Mode {
	if isOnlyDoubleByteKanji(content) {
		return ModeKanji
	}
	hasNumeric := false
	hasAlphanumeric := false
	for _, c := range content {
		if c >= '0' && c <= '9' {
			hasNumeric = true
		} else if GetAlphanumericCode(int(c)) != -1 {
			hasAlphanumeric = true
		} else {
			return ModeByte
		}
	}
	if hasAlphanumeric {
		return ModeAlphanumeric
	}
	if hasNumeric {
		return ModeNumeric
	}
	return ModeByte
}
