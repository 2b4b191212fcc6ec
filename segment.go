package qrgen

import (
	"fmt"
	"unicode/utf8"
)

// Segment is a run of input characters encoded in a single mode. Data holds
// the mode-appropriate bytes: ASCII for numeric and alphanumeric, raw UTF-8
// for byte mode, Shift JIS pairs for kanji. NumChars is the value written to
// the character count indicator.
type Segment struct {
	Mode     Mode
	Data     []byte
	NumChars int
}

type run struct {
	mode Mode
	text string
}

// runeMode returns the tightest mode able to encode r.
func runeMode(r rune) Mode {
	if r >= '0' && r <= '9' {
		return ModeNumeric
	}
	if GetAlphanumericCode(int(r)) != -1 {
		return ModeAlphanumeric
	}
	if isKanjiRune(r) {
		return ModeKanji
	}
	return ModeByte
}

// classifyRuns splits content into maximal runs of per-character modes.
func classifyRuns(content string) []run {
	var runs []run
	start := 0
	prev := ModeAuto
	for i, r := range content {
		mode := runeMode(r)
		if mode != prev && prev != ModeAuto {
			runs = append(runs, run{mode: prev, text: content[start:i]})
			start = i
		}
		prev = mode
	}
	if prev != ModeAuto {
		runs = append(runs, run{mode: prev, text: content[start:]})
	}
	return runs
}

// mergedMode returns the tightest mode covering both a and b.
func mergedMode(a, b Mode) Mode {
	if a == b {
		return a
	}
	if a == ModeKanji || b == ModeKanji || a == ModeByte || b == ModeByte {
		return ModeByte
	}
	return ModeAlphanumeric
}

// charCount returns the character count indicator value for text in mode.
func charCount(mode Mode, text string) int {
	switch mode {
	case ModeByte:
		return len(text)
	case ModeKanji:
		return utf8.RuneCountInString(text)
	}
	return len(text)
}

// dataBitsCount returns the payload bit length for numChars characters in
// mode, including partial final groups.
func dataBitsCount(mode Mode, numChars int) int {
	switch mode {
	case ModeNumeric:
		n := (numChars / 3) * 10
		switch numChars % 3 {
		case 1:
			n += 4
		case 2:
			n += 7
		}
		return n
	case ModeAlphanumeric:
		return (numChars/2)*11 + (numChars%2)*6
	case ModeByte:
		return numChars * 8
	case ModeKanji:
		return numChars * 13
	}
	return 0
}

// runCost is the encoded size of text as a standalone segment in mode, using
// the version 1-9 count indicator widths.
func runCost(mode Mode, text string) int {
	return 4 + modeInfo[mode].countBits[0] + dataBitsCount(mode, charCount(mode, text))
}

// mergeRuns greedily coalesces adjacent runs while merging does not grow the
// encoded size. Runs stay in input order.
func mergeRuns(runs []run) []run {
	merged := true
	for merged && len(runs) > 1 {
		merged = false
		for i := 0; i+1 < len(runs); i++ {
			a, b := runs[i], runs[i+1]
			m := mergedMode(a.mode, b.mode)
			if runCost(m, a.text+b.text) <= runCost(a.mode, a.text)+runCost(b.mode, b.text) {
				runs[i] = run{mode: m, text: a.text + b.text}
				runs = append(runs[:i+1], runs[i+2:]...)
				merged = true
				break
			}
		}
	}
	return runs
}

// makeSegment materializes text as a Segment in the given mode.
func makeSegment(mode Mode, text string) (Segment, error) {
	if mode == ModeKanji {
		data, err := shiftJISBytes(text)
		if err != nil {
			return Segment{}, err
		}
		return Segment{Mode: ModeKanji, Data: data, NumChars: len(data) / 2}, nil
	}
	return Segment{Mode: mode, Data: []byte(text), NumChars: charCount(mode, text)}, nil
}

// segmentContent splits content into minimal-cost segments: classified runs
// are merged greedily, and the result is kept only if it beats encoding the
// whole input in the single tightest mode. Empty content yields no segments.
func segmentContent(content string) ([]Segment, error) {
	if content == "" {
		return nil, nil
	}
	runs := mergeRuns(classifyRuns(content))
	multiCost := 0
	for _, r := range runs {
		multiCost += runCost(r.mode, r.text)
	}
	singleMode := ChooseMode(content)
	if runCost(singleMode, content) <= multiCost {
		runs = []run{{mode: singleMode, text: content}}
	}
	segments := make([]Segment, 0, len(runs))
	for _, r := range runs {
		seg, err := makeSegment(r.mode, r.text)
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

// forcedSegment encodes all of content as a single segment in mode, failing
// with ErrInvalidMode if the mode cannot represent it.
func forcedSegment(content string, mode Mode) ([]Segment, error) {
	if content == "" {
		return nil, nil
	}
	for _, r := range content {
		switch mode {
		case ModeNumeric:
			if r < '0' || r > '9' {
				return nil, fmt.Errorf("%w: %q is not numeric", ErrInvalidMode, r)
			}
		case ModeAlphanumeric:
			if GetAlphanumericCode(int(r)) == -1 {
				return nil, fmt.Errorf("%w: %q is not alphanumeric", ErrInvalidMode, r)
			}
		case ModeKanji:
			if !isKanjiRune(r) {
				return nil, fmt.Errorf("%w: %q is not kanji", ErrInvalidMode, r)
			}
		}
	}
	seg, err := makeSegment(mode, content)
	if err != nil {
		return nil, err
	}
	return []Segment{seg}, nil
}

// buildSegments segments content, honoring a forced mode.
func buildSegments(content string, mode Mode) ([]Segment, error) {
	if mode == ModeAuto {
		return segmentContent(content)
	}
	return forcedSegment(content, mode)
}

// totalInputBits returns the bitstream length of the segments at the given
// version, mode and count indicator headers included.
func totalInputBits(segments []Segment, version *Version) int {
	total := 0
	for _, seg := range segments {
		total += 4 + seg.Mode.CharacterCountBits(version) + dataBitsCount(seg.Mode, seg.NumChars)
	}
	return total
}
