// Package colour implements palette extraction over RGB pixel samples:
// the Color value type, the sample buffer adapter, the k-means clustering
// engine and the palette result builder.
package colour

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque 8-bit RGB colour.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// NewColor returns the colour with the given channels.
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// FromColor converts any color.Color to a Color, dropping alpha.
func FromColor(c color.Color) Color {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: nrgba.R, G: nrgba.G, B: nrgba.B}
}

// ParseHex parses "#rrggbb" or "#rgb" (the leading hash is optional).
func ParseHex(s string) (Color, error) {
	if len(s) > 0 && s[0] != '#' {
		s = "#" + s
	}
	if len(s) != 7 && len(s) != 4 {
		return Color{}, fmt.Errorf("invalid hex colour %q: expected #rrggbb or #rgb", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// Hex returns the colour as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBString returns the colour in CSS form, e.g. "rgb(255, 128, 64)".
func (c Color) RGBString() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.RGBString()
}

// Luminance returns 0.2126r + 0.7152g + 0.0722b over channels scaled to [0, 1].
// No gamma correction is applied; the value is only meaningful for ordering.
func (c Color) Luminance() float64 {
	return 0.2126*float64(c.R)/255.0 + 0.7152*float64(c.G)/255.0 + 0.0722*float64(c.B)/255.0
}

// RGBA implements color.Color. The colour is always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// distanceSq returns the squared Euclidean distance between two colours.
func distanceSq(a, b Color) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}
