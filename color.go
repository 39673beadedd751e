package pixeldot

import (
	"fmt"
	"image/color"
)

// Color is a non-premultiplied RGBA color with 8 bits per channel.
// It is a plain value type; equality is exact channel-wise equality.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	Transparent = Color{}
	Black       = Color{A: 255}
	White       = Color{R: 255, G: 255, B: 255, A: 255}
)

// RGB creates an opaque color from RGB components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ParseHex parses a hex color string into a Color.
// Supported formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", each with an
// optional leading '#'. Returns ErrInvalidColorFormat for anything else.
func ParseHex(s string) (Color, error) {
	h := s
	if h != "" && h[0] == '#' {
		h = h[1:]
	}

	nibbles := make([]uint8, len(h))
	for i := 0; i < len(h); i++ {
		c := h[i]
		switch {
		case '0' <= c && c <= '9':
			nibbles[i] = c - '0'
		case 'a' <= c && c <= 'f':
			nibbles[i] = c - 'a' + 10
		case 'A' <= c && c <= 'F':
			nibbles[i] = c - 'A' + 10
		default:
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
		}
	}

	switch len(nibbles) {
	case 3: // RGB
		return Color{nibbles[0] * 17, nibbles[1] * 17, nibbles[2] * 17, 255}, nil
	case 4: // RGBA
		return Color{nibbles[0] * 17, nibbles[1] * 17, nibbles[2] * 17, nibbles[3] * 17}, nil
	case 6: // RRGGBB
		return Color{nibbles[0]<<4 | nibbles[1], nibbles[2]<<4 | nibbles[3], nibbles[4]<<4 | nibbles[5], 255}, nil
	case 8: // RRGGBBAA
		return Color{nibbles[0]<<4 | nibbles[1], nibbles[2]<<4 | nibbles[3], nibbles[4]<<4 | nibbles[5], nibbles[6]<<4 | nibbles[7]}, nil
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}
}

// Hex formats the color as "#RRGGBB", or "#RRGGBBAA" when not fully opaque.
func (c Color) Hex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// NRGBA converts the color to the standard library's non-premultiplied form.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts a standard color.Color to a Color. The conversion goes
// through the NRGBA model, so premultiplied inputs are unmultiplied first.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}
