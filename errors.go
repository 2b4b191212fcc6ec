package qrgen

import "errors"

var (
	// ErrUnsupportedCharacter is returned when the input contains a character
	// that cannot be represented in any supported encoding mode.
	ErrUnsupportedCharacter = errors.New("unsupported character")

	// ErrDataTooLong is returned when the encoded data exceeds the capacity of
	// version 40 at the requested error correction level, or the capacity of a
	// forced version.
	ErrDataTooLong = errors.New("data too long")

	// ErrInvalidMode is returned when a forced mode cannot represent the input.
	ErrInvalidMode = errors.New("invalid mode")

	// ErrInvalidVersion is returned when a forced version is outside 1-40.
	ErrInvalidVersion = errors.New("invalid version")

	// ErrInvalidMask is returned when a forced mask pattern is outside 0-7.
	ErrInvalidMask = errors.New("invalid mask pattern")

	// ErrInvalidLevel is returned when an error correction level is not one of
	// L, M, Q, H.
	ErrInvalidLevel = errors.New("invalid error correction level")
)
