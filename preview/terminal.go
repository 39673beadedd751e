package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/sangyeon-bagelcode/pixeldot"
)

// Fprint writes a truecolor rendering of the sprite to w, two pixel rows
// per text line using half-block characters. Fully transparent pixels show
// the terminal background.
func Fprint(w io.Writer, s *pixeldot.Sprite) error {
	out := termenv.NewOutput(w, termenv.WithProfile(termenv.TrueColor))

	for y := 0; y < s.Height(); y += 2 {
		var line strings.Builder
		for x := 0; x < s.Width(); x++ {
			top, _ := s.Get(x, y)
			bottom := pixeldot.Transparent
			if y+1 < s.Height() {
				bottom, _ = s.Get(x, y+1)
			}
			line.WriteString(cell(out, top, bottom))
		}
		if _, err := fmt.Fprintln(w, line.String()); err != nil {
			return err
		}
	}
	return nil
}

// cell renders two vertically stacked pixels as one character.
func cell(out *termenv.Output, top, bottom pixeldot.Color) string {
	termColor := func(c pixeldot.Color) termenv.Color {
		return out.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
	}
	switch {
	case top.A == 0 && bottom.A == 0:
		return " "
	case top.A == 0:
		return out.String("▄").Foreground(termColor(bottom)).String()
	case bottom.A == 0:
		return out.String("▀").Foreground(termColor(top)).String()
	default:
		return out.String("▀").Foreground(termColor(top)).Background(termColor(bottom)).String()
	}
}

// FprintLegend writes the palette's key-to-color mapping to w, one line per
// entry with a color swatch. Keys are padded by display width so multi-rune
// keys align.
func FprintLegend(w io.Writer, p *pixeldot.Palette) error {
	out := termenv.NewOutput(w, termenv.WithProfile(termenv.TrueColor))

	maxWidth := 0
	for _, k := range p.Keys() {
		if kw := runewidth.StringWidth(k); kw > maxWidth {
			maxWidth = kw
		}
	}

	for _, k := range p.Keys() {
		c, _ := p.Lookup(k)
		pad := strings.Repeat(" ", maxWidth-runewidth.StringWidth(k))
		swatch := ""
		if c.A > 0 {
			swatch = out.String("██").Foreground(out.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))).String()
		} else {
			swatch = "··"
		}
		if _, err := fmt.Fprintf(w, "%s%s  %s %s\n", k, pad, swatch, c.Hex()); err != nil {
			return err
		}
	}
	return nil
}
