// Package colorutil provides color-space math for pixel-art palettes:
// HSL conversion, lighten/darken/saturate adjustments, interpolation,
// ramps, and dither patterns.
//
// All functions are stateless and independent of compositing; they operate
// on pixeldot.Color values and preserve alpha unless stated otherwise.
// Color-space conversions are delegated to go-colorful.
package colorutil

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/sangyeon-bagelcode/pixeldot"
)

func toColorful(c pixeldot.Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func fromColorful(c colorful.Color, alpha uint8) pixeldot.Color {
	cl := c.Clamped()
	return pixeldot.Color{
		R: uint8(math.Round(cl.R * 255.0)),
		G: uint8(math.Round(cl.G * 255.0)),
		B: uint8(math.Round(cl.B * 255.0)),
		A: alpha,
	}
}

// RGBToHSL converts a color to HSL. Hue is in [0, 360), saturation and
// lightness in [0, 1]. Alpha is ignored.
func RGBToHSL(c pixeldot.Color) (h, s, l float64) {
	return toColorful(c).Hsl()
}

// HSLToRGB converts HSL values to a color with the given alpha.
func HSLToRGB(h, s, l float64, alpha uint8) pixeldot.Color {
	return fromColorful(colorful.Hsl(h, s, l), alpha)
}

// Lighten increases lightness by amount (0-1), preserving alpha.
func Lighten(c pixeldot.Color, amount float64) pixeldot.Color {
	h, s, l := toColorful(c).Hsl()
	return HSLToRGB(h, s, math.Min(1.0, l+amount), c.A)
}

// Darken decreases lightness by amount (0-1), preserving alpha.
func Darken(c pixeldot.Color, amount float64) pixeldot.Color {
	h, s, l := toColorful(c).Hsl()
	return HSLToRGB(h, s, math.Max(0.0, l-amount), c.A)
}

// Saturate increases saturation by amount (0-1), preserving alpha.
func Saturate(c pixeldot.Color, amount float64) pixeldot.Color {
	h, s, l := toColorful(c).Hsl()
	return HSLToRGB(h, math.Min(1.0, s+amount), l, c.A)
}

// Desaturate decreases saturation by amount (0-1), preserving alpha.
func Desaturate(c pixeldot.Color, amount float64) pixeldot.Color {
	h, s, l := toColorful(c).Hsl()
	return HSLToRGB(h, math.Max(0.0, s-amount), l, c.A)
}

// Lerp linearly interpolates between two colors in RGBA space.
// t is clamped to [0, 1]; t=0 returns c1, t=1 returns c2.
func Lerp(c1, c2 pixeldot.Color, t float64) pixeldot.Color {
	t = math.Max(0.0, math.Min(1.0, t))
	lerp := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	return pixeldot.Color{
		R: lerp(c1.R, c2.R),
		G: lerp(c1.G, c2.G),
		B: lerp(c1.B, c2.B),
		A: lerp(c1.A, c2.A),
	}
}

// Ramp generates a gradient from start to end, inclusive. steps must be at
// least 2.
func Ramp(start, end pixeldot.Color, steps int) ([]pixeldot.Color, error) {
	if steps < 2 {
		return nil, fmt.Errorf("colorutil: ramp requires at least 2 steps, got %d", steps)
	}
	out := make([]pixeldot.Color, steps)
	for i := 0; i < steps; i++ {
		out[i] = Lerp(start, end, float64(i)/float64(steps-1))
	}
	return out, nil
}

// AutoShades generates highlight-to-shadow shades from a base color by
// sweeping lightness around the base. count must be at least 2.
func AutoShades(base pixeldot.Color, count int) ([]pixeldot.Color, error) {
	if count < 2 {
		return nil, fmt.Errorf("colorutil: auto shades require at least 2 colors, got %d", count)
	}
	h, s, l := toColorful(base).Hsl()
	high := math.Min(1.0, l+0.3)
	low := math.Max(0.0, l-0.3)
	out := make([]pixeldot.Color, count)
	for i := 0; i < count; i++ {
		li := high + (low-high)*float64(i)/float64(count-1)
		out[i] = HSLToRGB(h, s, li, base.A)
	}
	return out, nil
}

// Distance returns the Euclidean distance between two colors in RGBA space,
// on the 0-255 channel scale.
func Distance(c1, c2 pixeldot.Color) float64 {
	rgb := toColorful(c1).DistanceRgb(toColorful(c2)) * 255.0
	da := float64(c1.A) - float64(c2.A)
	return math.Sqrt(rgb*rgb + da*da)
}

// Dither patterns for mixing two colors. true selects the first color.
var ditherPatterns = map[string][][]bool{
	"checker": {
		{true, false},
		{false, true},
	},
	"horizontal": {
		{true, true},
		{false, false},
	},
	"vertical": {
		{true, false},
		{true, false},
	},
}

// DitherPattern returns a 2D boolean tile for dithering between two colors.
// Supported patterns: "checker", "horizontal", "vertical".
func DitherPattern(name string) ([][]bool, error) {
	p, ok := ditherPatterns[name]
	if !ok {
		return nil, fmt.Errorf("colorutil: unknown dither pattern %q", name)
	}
	out := make([][]bool, len(p))
	for i, row := range p {
		out[i] = append([]bool(nil), row...)
	}
	return out, nil
}
