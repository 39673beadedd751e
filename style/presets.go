// Package style provides retro preset palettes and sprite filters
// (outline, drop shadow). Presets and filters are stateless pure functions
// over the core types.
package style

import (
	"fmt"
	"sort"

	"github.com/sangyeon-bagelcode/pixeldot"
)

// NamedColor is one entry of a preset palette.
type NamedColor struct {
	Name  string
	Color pixeldot.Color
}

// Preset palettes, in their canonical order.
var (
	// GameBoy is the 4-shade DMG green palette.
	GameBoy = []NamedColor{
		{"lightest", pixeldot.RGB(155, 188, 15)},
		{"light", pixeldot.RGB(139, 172, 15)},
		{"dark", pixeldot.RGB(48, 98, 48)},
		{"darkest", pixeldot.RGB(15, 56, 15)},
	}

	// NES approximates the 2C02 composite palette's common colors.
	NES = []NamedColor{
		{"black", pixeldot.RGB(0, 0, 0)},
		{"white", pixeldot.RGB(255, 255, 255)},
		{"red", pixeldot.RGB(188, 0, 0)},
		{"cyan", pixeldot.RGB(0, 188, 188)},
		{"purple", pixeldot.RGB(136, 0, 160)},
		{"green", pixeldot.RGB(0, 168, 0)},
		{"blue", pixeldot.RGB(0, 0, 188)},
		{"yellow", pixeldot.RGB(228, 228, 0)},
		{"orange", pixeldot.RGB(188, 108, 0)},
		{"brown", pixeldot.RGB(100, 68, 0)},
		{"light_red", pixeldot.RGB(228, 92, 92)},
		{"dark_grey", pixeldot.RGB(80, 80, 80)},
		{"grey", pixeldot.RGB(120, 120, 120)},
		{"light_green", pixeldot.RGB(100, 228, 100)},
		{"light_blue", pixeldot.RGB(100, 100, 228)},
		{"light_grey", pixeldot.RGB(168, 168, 168)},
	}

	// PICO8 is the fixed 16-color PICO-8 palette.
	PICO8 = []NamedColor{
		{"black", pixeldot.RGB(0, 0, 0)},
		{"dark_blue", pixeldot.RGB(29, 43, 83)},
		{"dark_purple", pixeldot.RGB(126, 37, 83)},
		{"dark_green", pixeldot.RGB(0, 135, 81)},
		{"brown", pixeldot.RGB(171, 82, 54)},
		{"dark_grey", pixeldot.RGB(95, 87, 79)},
		{"light_grey", pixeldot.RGB(194, 195, 199)},
		{"white", pixeldot.RGB(255, 241, 232)},
		{"red", pixeldot.RGB(255, 0, 77)},
		{"orange", pixeldot.RGB(255, 163, 0)},
		{"yellow", pixeldot.RGB(255, 236, 39)},
		{"green", pixeldot.RGB(0, 228, 54)},
		{"blue", pixeldot.RGB(41, 173, 255)},
		{"lavender", pixeldot.RGB(131, 118, 156)},
		{"pink", pixeldot.RGB(255, 119, 168)},
		{"peach", pixeldot.RGB(255, 204, 170)},
	}

	// Sweetie16 is GrafxKid's 16-color palette.
	Sweetie16 = []NamedColor{
		{"black", pixeldot.RGB(26, 28, 44)},
		{"purple", pixeldot.RGB(93, 39, 93)},
		{"red", pixeldot.RGB(177, 62, 83)},
		{"orange", pixeldot.RGB(239, 125, 87)},
		{"yellow", pixeldot.RGB(255, 205, 117)},
		{"light_green", pixeldot.RGB(167, 240, 112)},
		{"green", pixeldot.RGB(56, 183, 100)},
		{"dark_green", pixeldot.RGB(37, 113, 121)},
		{"dark_blue", pixeldot.RGB(41, 54, 111)},
		{"blue", pixeldot.RGB(59, 93, 201)},
		{"light_blue", pixeldot.RGB(65, 166, 246)},
		{"cyan", pixeldot.RGB(115, 239, 247)},
		{"white", pixeldot.RGB(244, 244, 244)},
		{"light_grey", pixeldot.RGB(148, 176, 194)},
		{"grey", pixeldot.RGB(86, 108, 134)},
		{"dark_grey", pixeldot.RGB(51, 60, 87)},
	}

	// Endesga32 is ENDESGA's 32-color palette.
	Endesga32 = []NamedColor{
		{"void", pixeldot.RGB(19, 19, 19)},
		{"ash", pixeldot.RGB(43, 43, 43)},
		{"blind", pixeldot.RGB(81, 81, 81)},
		{"iron", pixeldot.RGB(139, 139, 139)},
		{"light", pixeldot.RGB(198, 198, 198)},
		{"white", pixeldot.RGB(255, 255, 255)},
		{"cocoa", pixeldot.RGB(67, 28, 11)},
		{"woody", pixeldot.RGB(107, 46, 12)},
		{"sandy", pixeldot.RGB(168, 89, 26)},
		{"skin", pixeldot.RGB(224, 148, 80)},
		{"salmon", pixeldot.RGB(237, 195, 137)},
		{"blood", pixeldot.RGB(133, 18, 18)},
		{"red", pixeldot.RGB(209, 42, 42)},
		{"orange", pixeldot.RGB(233, 114, 36)},
		{"gold", pixeldot.RGB(239, 183, 51)},
		{"yellow", pixeldot.RGB(245, 232, 97)},
		{"midnight", pixeldot.RGB(25, 31, 68)},
		{"dark_blue", pixeldot.RGB(34, 60, 114)},
		{"blue", pixeldot.RGB(50, 105, 172)},
		{"sea", pixeldot.RGB(75, 160, 207)},
		{"sky", pixeldot.RGB(143, 211, 234)},
		{"swamp", pixeldot.RGB(18, 56, 18)},
		{"forest", pixeldot.RGB(26, 100, 26)},
		{"green", pixeldot.RGB(51, 161, 51)},
		{"lime", pixeldot.RGB(124, 209, 72)},
		{"moss", pixeldot.RGB(183, 232, 123)},
		{"grape", pixeldot.RGB(64, 18, 82)},
		{"plum", pixeldot.RGB(115, 30, 105)},
		{"mauve", pixeldot.RGB(174, 60, 134)},
		{"pink", pixeldot.RGB(232, 106, 164)},
		{"rose", pixeldot.RGB(237, 172, 192)},
		{"teal", pixeldot.RGB(42, 127, 116)},
	}
)

var presets = map[string][]NamedColor{
	"gameboy":   GameBoy,
	"nes":       NES,
	"pico8":     PICO8,
	"sweetie16": Sweetie16,
	"endesga32": Endesga32,
}

// presetKeys is the character pool for preset key assignment.
const presetKeys = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Presets returns the names of all available preset palettes.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Colors returns the named colors of a preset in canonical order.
func Colors(name string) ([]NamedColor, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("style: unknown preset palette %q", name)
	}
	return append([]NamedColor(nil), p...), nil
}

// Preset builds a pixeldot palette from a preset, assigning
// single-character keys ('0'-'9', then 'a'-'z', then 'A'-'Z') in the
// preset's canonical color order.
func Preset(name string) (*pixeldot.Palette, error) {
	colors, err := Colors(name)
	if err != nil {
		return nil, err
	}
	entries := make([]pixeldot.PaletteEntry, 0, len(colors))
	for i, nc := range colors {
		if i >= len(presetKeys) {
			break
		}
		entries = append(entries, pixeldot.Key(string(presetKeys[i]), nc.Color))
	}
	return pixeldot.NewPalette(entries...)
}
