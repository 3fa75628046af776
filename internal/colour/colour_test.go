package colour

import (
	"image/color"
	"testing"
)

func TestColorHex(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{name: "mixed", color: Color{R: 255, G: 128, B: 64}, want: "#ff8040"},
		{name: "black", color: Color{}, want: "#000000"},
		{name: "zero padded", color: Color{R: 1, G: 2, B: 3}, want: "#010203"},
		{name: "white", color: Color{R: 255, G: 255, B: 255}, want: "#ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.Hex(); got != tt.want {
				t.Errorf("Hex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColorRGBString(t *testing.T) {
	c := NewColor(255, 128, 64)
	if got := c.RGBString(); got != "rgb(255, 128, 64)" {
		t.Errorf("RGBString() = %q, want %q", got, "rgb(255, 128, 64)")
	}
	if got := c.String(); got != c.RGBString() {
		t.Errorf("String() = %q, want %q", got, c.RGBString())
	}
}

func TestColorLuminance(t *testing.T) {
	black := Color{}
	white := Color{R: 255, G: 255, B: 255}
	green := Color{G: 255}
	blue := Color{B: 255}

	if got := black.Luminance(); got != 0 {
		t.Errorf("black Luminance() = %v, want 0", got)
	}
	if got := white.Luminance(); got < 0.9999 || got > 1.0001 {
		t.Errorf("white Luminance() = %v, want 1", got)
	}
	if green.Luminance() <= blue.Luminance() {
		t.Error("green should be brighter than blue")
	}
}

func TestColorImplementsColor(t *testing.T) {
	var c color.Color = Color{R: 10, G: 20, B: 30}
	if got := FromColor(c); got != (Color{R: 10, G: 20, B: 30}) {
		t.Errorf("FromColor() = %+v", got)
	}
	_, _, _, a := c.RGBA()
	if a != 0xffff {
		t.Errorf("alpha = %#x, want 0xffff", a)
	}
}

func TestFromColorDropsAlpha(t *testing.T) {
	got := FromColor(color.NRGBA{R: 200, G: 100, B: 50, A: 10})
	if got != (Color{R: 200, G: 100, B: 50}) {
		t.Errorf("FromColor() = %+v", got)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{in: "#ff8040", want: Color{R: 255, G: 128, B: 64}},
		{in: "ff8040", want: Color{R: 255, G: 128, B: 64}},
		{in: "#FFFFFF", want: Color{R: 255, G: 255, B: 255}},
		{in: "#fff", want: Color{R: 255, G: 255, B: 255}},
		{in: "#12345", wantErr: true},
		{in: "zzzzzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}
