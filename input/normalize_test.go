package input

import (
	"testing"
)

func TestNormalize_Fixture(t *testing.T) {
	tests := []struct {
		in   byte
		want byte
	}{
		{0x41, 'A'},
		{0x00, ' '},
		{0x1F, '?'},
		{0x7F, '~'},
		{0x20, ' '},
		{0x7E, '~'},
		{0xFF, '!'},  // -1 -> 1 -> 33
		{0xBF, 'A'},  // -65 -> 65
		{0x81, '~'},  // -127 -> 127 -> 126
		{0x80, 0x80}, // -128 has no positive int8, stays 128
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(0x%02X): expected 0x%02X, got 0x%02X", tt.in, tt.want, got)
		}
	}
}

func TestNormalize_FullRange(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		got := Normalize(b)

		// Reference computation on the signed value
		v := int(int8(b))
		if v < 0 {
			v = -v
		}
		if v < 32 {
			v += 32
		} else if v == 127 {
			v = 126
		}
		if got != byte(v) {
			t.Errorf("Normalize(%d): expected %d, got %d", i, byte(v), got)
		}

		if got == 127 {
			t.Errorf("Normalize(%d) produced DEL", i)
		}
		if got < 32 {
			t.Errorf("Normalize(%d) produced control byte %d", i, got)
		}
		if Normalize(b) != got {
			t.Errorf("Normalize(%d) is not deterministic", i)
		}
	}
}

func TestNormalizeSlice(t *testing.T) {
	p := []byte{0x41, 0x00, 0x1F, 0x7F}
	NormalizeSlice(p)
	if string(p) != "A ?~" {
		t.Errorf("Expected %q, got %q", "A ?~", string(p))
	}
}
