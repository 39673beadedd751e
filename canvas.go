package pixeldot

import (
	"fmt"
	"strings"
)

// Canvas parses character grids into sprites via a palette, and serializes
// sprites back into grids. Each run of KeyLength characters in a row maps to
// one pixel.
type Canvas struct {
	palette   *Palette
	preferKey string
}

// CanvasOption configures a Canvas.
type CanvasOption func(*Canvas)

// PreferKey sets the tie-break key for Serialize: when several palette keys
// map to the same color and one of them is key, that key is emitted. The
// default tie-break is palette insertion order.
func PreferKey(key string) CanvasOption {
	return func(c *Canvas) { c.preferKey = key }
}

// NewCanvas creates a canvas over the given palette.
func NewCanvas(p *Palette, opts ...CanvasOption) *Canvas {
	c := &Canvas{palette: p}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Palette returns the canvas palette.
func (c *Canvas) Palette() *Palette { return c.palette }

// Parse decodes grid rows into a sprite. Empty rows are skipped; all
// remaining rows must have equal length, and that length must be a multiple
// of the palette key length. Unknown keys fail with UnknownGlyphError
// carrying the pixel position; no default color is substituted.
func (c *Canvas) Parse(rows []string) (*Sprite, error) {
	kept := make([]string, 0, len(rows))
	for _, r := range rows {
		if r != "" {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("%w: no grid rows", ErrEmptyInput)
	}

	kl := c.palette.KeyLength()
	rowLen := len(kept[0])
	if rowLen%kl != 0 {
		return nil, fmt.Errorf("%w: row length %d is not a multiple of key length %d",
			ErrRaggedInput, rowLen, kl)
	}
	width := rowLen / kl
	height := len(kept)

	px := make([]Color, 0, width*height)
	for y, row := range kept {
		if len(row) != rowLen {
			return nil, fmt.Errorf("%w: row %d has %d chars, want %d",
				ErrRaggedInput, y, len(row), rowLen)
		}
		for x := 0; x < width; x++ {
			key := row[x*kl : (x+1)*kl]
			col, ok := c.palette.Lookup(key)
			if !ok {
				return nil, &UnknownGlyphError{Key: key, X: x, Y: y}
			}
			px = append(px, col)
		}
	}
	return newSprite(width, height, px), nil
}

// ParseBlock decodes a multi-line block string, typically a raw string
// literal. The block is dedented and leading/trailing blank lines are
// stripped before parsing.
func (c *Canvas) ParseBlock(block string) (*Sprite, error) {
	lines := splitBlock(block)
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: block is empty after stripping", ErrEmptyInput)
	}
	return c.Parse(lines)
}

// Serialize converts a sprite back into grid rows. Every pixel color must
// match a palette entry exactly; a color absent from the palette fails with
// NoMatchingGlyphError. Ties between keys sharing a color are broken by the
// PreferKey option, falling back to palette insertion order.
func (c *Canvas) Serialize(s *Sprite) ([]string, error) {
	byColor := make(map[Color]string, c.palette.Len())
	for _, k := range c.palette.Keys() {
		col, _ := c.palette.Lookup(k)
		if _, ok := byColor[col]; !ok {
			byColor[col] = k
		}
	}
	if c.preferKey != "" {
		if col, ok := c.palette.Lookup(c.preferKey); ok {
			byColor[col] = c.preferKey
		}
	}

	rows := make([]string, s.Height())
	var b strings.Builder
	for y := 0; y < s.Height(); y++ {
		b.Reset()
		for x := 0; x < s.Width(); x++ {
			col := s.at(x, y)
			key, ok := byColor[col]
			if !ok {
				return nil, &NoMatchingGlyphError{Color: col, X: x, Y: y}
			}
			b.WriteString(key)
		}
		rows[y] = b.String()
	}
	return rows, nil
}

// splitBlock dedents a block string and strips leading and trailing blank
// lines.
func splitBlock(block string) []string {
	lines := strings.Split(Dedent(block), "\n")
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}

// Dedent removes the longest common leading whitespace prefix shared by all
// non-blank lines. Blank lines are ignored when computing the prefix and
// normalized to empty strings in the output.
func Dedent(text string) string {
	lines := strings.Split(text, "\n")

	var prefix string
	first := true
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		indent := line[:len(line)-len(trimmed)]
		if first {
			prefix = indent
			first = false
			continue
		}
		// Shrink prefix to the common part.
		max := len(prefix)
		if len(indent) < max {
			max = len(indent)
		}
		i := 0
		for i < max && prefix[i] == indent[i] {
			i++
		}
		prefix = prefix[:i]
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
		} else {
			lines[i] = strings.TrimPrefix(line, prefix)
		}
	}
	return strings.Join(lines, "\n")
}
