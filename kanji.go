package qrgen

import (
	"fmt"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// shiftJISBytes converts UTF-8 content to Shift JIS. Characters with no
// Shift JIS form fail with ErrUnsupportedCharacter.
func shiftJISBytes(content string) ([]byte, error) {
	encoded, _, err := transform.Bytes(japanese.ShiftJIS.NewEncoder(), []byte(content))
	if err != nil {
		return nil, fmt.Errorf("%w: content not representable in Shift JIS", ErrUnsupportedCharacter)
	}
	return encoded, nil
}

// isKanjiRune reports whether r has a double-byte Shift JIS encoding inside
// the ranges the kanji mode can represent, [0x8140, 0x9FFC] and
// [0xE040, 0xEBBF].
func isKanjiRune(r rune) bool {
	encoded, _, err := transform.Bytes(japanese.ShiftJIS.NewEncoder(), []byte(string(r)))
	if err != nil || len(encoded) != 2 {
		return false
	}
	code := int(encoded[0])<<8 | int(encoded[1])
	return (code >= 0x8140 && code <= 0x9FFC) || (code >= 0xE040 && code <= 0xEBBF)
}

// isOnlyDoubleByteKanji reports whether content is non-empty and consists
// entirely of characters with double-byte Shift JIS encodings.
func isOnlyDoubleByteKanji(content string) bool {
	if content == "" {
		return false
	}
	encoded, _, err := transform.Bytes(japanese.ShiftJIS.NewEncoder(), []byte(content))
	if err != nil || len(encoded)%2 != 0 {
		return false
	}
	for i := 0; i < len(encoded); i += 2 {
		b1 := int(encoded[i])
		if (b1 < 0x81 || b1 > 0x9F) && (b1 < 0xE0 || b1 > 0xEB) {
			return false
		}
	}
	return true
}
