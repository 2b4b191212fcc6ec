package qrgen

import (
	"errors"
	"testing"
)

func TestErrorCorrectionLevelBits(t *testing.T) {
	tests := []struct {
		level ErrorCorrectionLevel
		want  int
	}{
		{ECLevelL, 0x01},
		{ECLevelM, 0x00},
		{ECLevelQ, 0x03},
		{ECLevelH, 0x02},
	}
	for _, tt := range tests {
		if got := tt.level.Bits(); got != tt.want {
			t.Errorf("%s.Bits() = %#02x, want %#02x", tt.level, got, tt.want)
		}
	}
}

func TestECLevelForString(t *testing.T) {
	for _, name := range []string{"L", "M", "Q", "H"} {
		level, err := ECLevelForString(name)
		if err != nil {
			t.Fatalf("ECLevelForString(%q) failed: %v", name, err)
		}
		if level.String() != name {
			t.Errorf("round trip %q = %q", name, level.String())
		}
	}
	if _, err := ECLevelForString("X"); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("error = %v, want ErrInvalidLevel", err)
	}
	if _, err := ECLevelForString("l"); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("lowercase error = %v, want ErrInvalidLevel", err)
	}
}
