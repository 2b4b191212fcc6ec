// Package qrgen generates QR code symbols.
package qrgen

import (
	"fmt"
)

// EncodeOptions holds optional encoding parameters. The zero value lets the
// encoder choose everything.
type EncodeOptions struct {
	// Version forces a symbol version between 1 and 40. Zero selects the
	// smallest version whose capacity holds the data.
	Version int
	// MaskPattern forces a data mask pattern between 0 and 7. Nil selects
	// the pattern with the lowest penalty score.
	MaskPattern *int
	// Mode forces a single encoding mode for the whole content. ModeAuto
	// selects the cheapest segmentation.
	Mode Mode
}

// Encode encodes content into a QR code symbol at the given error correction
// level. A nil opts is equivalent to the zero EncodeOptions.
func Encode(content string, level ErrorCorrectionLevel, opts *EncodeOptions) (*Symbol, error) {
	if opts == nil {
		opts = &EncodeOptions{}
	}
	if level < ECLevelL || level > ECLevelH {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, int(level))
	}
	if opts.Version != 0 && (opts.Version < 1 || opts.Version > 40) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVersion, opts.Version)
	}
	if opts.MaskPattern != nil && (*opts.MaskPattern < 0 || *opts.MaskPattern >= numMaskPatterns) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMask, *opts.MaskPattern)
	}
	if opts.Mode != ModeAuto && !opts.Mode.valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMode, opts.Mode)
	}

	segments, err := buildSegments(content, opts.Mode)
	if err != nil {
		return nil, err
	}

	// Choose version
	var version *Version
	if opts.Version > 0 {
		version, err = GetVersionForNumber(opts.Version)
		if err != nil {
			return nil, err
		}
		if !willFit(totalInputBits(segments, version), version, level) {
			return nil, fmt.Errorf("%w: data would not fit in version %d at level %s",
				ErrDataTooLong, version.Number, level)
		}
	} else {
		version, err = chooseVersion(segments, level)
		if err != nil {
			return nil, err
		}
	}

	// Build data bits
	dataBits, err := buildDataBits(segments, version)
	if err != nil {
		return nil, err
	}

	// Calculate total data bytes
	ecBlocks := version.ECBlocksForLevel(level)
	totalBytes := version.TotalCodewords
	numDataBytes := totalBytes - ecBlocks.TotalECCodewords()

	// Terminate and pad
	if err := terminateBits(numDataBytes, dataBits); err != nil {
		return nil, err
	}

	// Interleave with EC bytes
	finalBits, err := interleaveWithECBytes(dataBits, totalBytes, numDataBytes, ecBlocks.NumBlocks())
	if err != nil {
		return nil, err
	}

	// Choose best mask pattern
	var maskPattern int
	if opts.MaskPattern != nil {
		maskPattern = *opts.MaskPattern
	} else {
		maskPattern, err = chooseMaskPattern(finalBits, level, version)
		if err != nil {
			return nil, err
		}
	}

	dimension := version.DimensionForVersion()
	matrix := NewByteMatrix(dimension, dimension)
	if err := buildMatrix(finalBits, level, version, maskPattern, matrix); err != nil {
		return nil, err
	}

	return &Symbol{
		Segments:    segments,
		Mode:        symbolMode(segments),
		Level:       level,
		Version:     version,
		MaskPattern: maskPattern,
		Matrix:      matrix,
	}, nil
}

// symbolMode returns the mode shared by every segment, or ModeAuto when the
// segments mix modes or the symbol carries no data.
func symbolMode(segments []Segment) Mode {
	if len(segments) == 0 {
		return ModeAuto
	}
	mode := segments[0].Mode
	for _, seg := range segments[1:] {
		if seg.Mode != mode {
			return ModeAuto
		}
	}
	return mode
}
