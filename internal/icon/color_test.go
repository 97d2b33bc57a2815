package icon

import (
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#667eea", color.NRGBA{R: 0x66, G: 0x7e, B: 0xea, A: 0xff}},
		{"#ffffff", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{"#000000", color.NRGBA{A: 0xff}},
		{"#fa0", color.NRGBA{R: 0xff, G: 0xaa, B: 0x00, A: 0xff}},
		{"fff", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
	}

	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if err != nil {
			t.Errorf("ParseHex(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseHex_Invalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12345", "#gggggg", "blue"} {
		if _, err := ParseHex(in); err == nil {
			t.Errorf("ParseHex(%q): expected an error", in)
		}
	}
}
