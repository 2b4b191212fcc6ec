package qrgen

import (
	"fmt"

	"github.com/ericlevine/qrgen/bitutil"
)

// segmentWriters dispatches payload serialization by mode.
var segmentWriters = map[Mode]func(data []byte, bits *bitutil.BitArray) error{
	ModeNumeric:      appendNumericBytes,
	ModeAlphanumeric: appendAlphanumericBytes,
	ModeByte:         append8BitBytes,
	ModeKanji:        appendKanjiBytes,
}

// buildDataBits serializes the segments: per segment a 4-bit mode indicator,
// the character count indicator, then the payload bits.
func buildDataBits(segments []Segment, version *Version) (*bitutil.BitArray, error) {
	bits := bitutil.NewBitArray(0)
	for _, seg := range segments {
		writer := segmentWriters[seg.Mode]
		if writer == nil {
			return nil, fmt.Errorf("%w: mode %v has no payload encoding", ErrInvalidMode, seg.Mode)
		}
		bits.AppendBits(uint32(seg.Mode.Bits()), 4)
		bits.AppendBits(uint32(seg.NumChars), seg.Mode.CharacterCountBits(version))
		if err := writer(seg.Data, bits); err != nil {
			return nil, err
		}
	}
	return bits, nil
}

// terminateBits appends the terminator, pads to a byte boundary and fills
// the remaining data capacity with alternating pad codewords.
func terminateBits(numDataBytes int, bits *bitutil.BitArray) error {
	capacity := numDataBytes * 8
	if bits.Size() > capacity {
		return fmt.Errorf("qrgen: data bits exceed capacity (%d > %d)", bits.Size(), capacity)
	}

	// Terminator mode
	for i := 0; i < 4 && bits.Size() < capacity; i++ {
		bits.AppendBit(false)
	}

	// Pad to byte boundary
	numBitsInLastByte := bits.Size() & 0x07
	if numBitsInLastByte > 0 {
		for i := numBitsInLastByte; i < 8; i++ {
			bits.AppendBit(false)
		}
	}

	// Pad with alternating bytes
	numPaddingBytes := numDataBytes - bits.SizeInBytes()
	for i := 0; i < numPaddingBytes; i++ {
		if i%2 == 0 {
			bits.AppendBits(0xEC, 8)
		} else {
			bits.AppendBits(0x11, 8)
		}
	}
	return nil
}

// appendNumericBytes packs ASCII digits in groups of three into 10 bits,
// with 7- and 4-bit encodings for two and one trailing digits.
func appendNumericBytes(data []byte, bits *bitutil.BitArray) error {
	length := len(data)
	i := 0
	for i < length {
		num1 := int(data[i] - '0')
		if i+2 < length {
			num2 := int(data[i+1] - '0')
			num3 := int(data[i+2] - '0')
			bits.AppendBits(uint32(num1*100+num2*10+num3), 10)
			i += 3
		} else if i+1 < length {
			num2 := int(data[i+1] - '0')
			bits.AppendBits(uint32(num1*10+num2), 7)
			i += 2
		} else {
			bits.AppendBits(uint32(num1), 4)
			i++
		}
	}
	return nil
}

// appendAlphanumericBytes packs character pairs into 11 bits, or 6 bits for
// a trailing single character.
func appendAlphanumericBytes(data []byte, bits *bitutil.BitArray) error {
	length := len(data)
	i := 0
	for i < length {
		code1 := GetAlphanumericCode(int(data[i]))
		if code1 == -1 {
			return fmt.Errorf("%w: %q is not alphanumeric", ErrUnsupportedCharacter, data[i])
		}
		if i+1 < length {
			code2 := GetAlphanumericCode(int(data[i+1]))
			if code2 == -1 {
				return fmt.Errorf("%w: %q is not alphanumeric", ErrUnsupportedCharacter, data[i+1])
			}
			bits.AppendBits(uint32(code1*45+code2), 11)
			i += 2
		} else {
			bits.AppendBits(uint32(code1), 6)
			i++
		}
	}
	return nil
}

func append8BitBytes(data []byte, bits *bitutil.BitArray) error {
	for _, b := range data {
		bits.AppendBits(uint32(b), 8)
	}
	return nil
}

// appendKanjiBytes packs Shift JIS pairs into 13 bits each. Pairs must fall
// inside [0x8140, 0x9FFC] or [0xE040, 0xEBBF].
func appendKanjiBytes(data []byte, bits *bitutil.BitArray) error {
	if len(data)%2 != 0 {
		return fmt.Errorf("%w: kanji byte length not even", ErrUnsupportedCharacter)
	}
	for i := 0; i+1 < len(data); i += 2 {
		code := int(data[i])<<8 | int(data[i+1])
		subtracted := -1
		if code >= 0x8140 && code <= 0x9FFC {
			subtracted = code - 0x8140
		} else if code >= 0xE040 && code <= 0xEBBF {
			subtracted = code - 0xC140
		}
		if subtracted == -1 {
			return fmt.Errorf("%w: invalid Shift JIS sequence %#04x", ErrUnsupportedCharacter, code)
		}
		encoded := (subtracted>>8)*0xC0 + (subtracted & 0xFF)
		bits.AppendBits(uint32(encoded), 13)
	}
	return nil
}
