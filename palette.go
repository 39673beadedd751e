package pixeldot

import (
	"fmt"
	"sort"
)

// PaletteEntry is a single key-to-color binding used to build a Palette.
// Create entries with Key or HexKey.
type PaletteEntry struct {
	key   string
	color Color
	err   error
}

// Key binds a palette key to a color.
func Key(key string, c Color) PaletteEntry {
	return PaletteEntry{key: key, color: c}
}

// HexKey binds a palette key to a hex color string such as "#FF8800" or
// "#FF880080". The parse error, if any, surfaces from NewPalette.
func HexKey(key, hex string) PaletteEntry {
	c, err := ParseHex(hex)
	if err != nil {
		return PaletteEntry{key: key, err: fmt.Errorf("key %q: %w", key, err)}
	}
	return PaletteEntry{key: key, color: c}
}

// Palette maps fixed-length text keys to colors. All keys in one palette
// have the same length, and insertion order is preserved: it is the
// tie-break order for reverse lookups when several keys share a color.
//
// By convention the "." key (or "..", for 2-character palettes) maps to
// Transparent, but any key may be used.
type Palette struct {
	keyLen int
	keys   []string
	colors map[string]Color
}

// NewPalette builds a palette from entries in order. The key length is
// taken from the first entry; every key must have that same length, and no
// key may repeat.
func NewPalette(entries ...PaletteEntry) (*Palette, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: palette needs at least one entry", ErrEmptyInput)
	}
	for _, e := range entries {
		if e.err != nil {
			return nil, e.err
		}
	}

	keyLen := len(entries[0].key)
	if keyLen == 0 {
		return nil, fmt.Errorf("%w: empty key", ErrInconsistentKeyLength)
	}

	p := &Palette{
		keyLen: keyLen,
		keys:   make([]string, 0, len(entries)),
		colors: make(map[string]Color, len(entries)),
	}
	for _, e := range entries {
		if len(e.key) != keyLen {
			return nil, fmt.Errorf("%w: key %q has length %d, want %d",
				ErrInconsistentKeyLength, e.key, len(e.key), keyLen)
		}
		if _, ok := p.colors[e.key]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, e.key)
		}
		p.keys = append(p.keys, e.key)
		p.colors[e.key] = e.color
	}
	return p, nil
}

// KeyLength returns the uniform key length of the palette.
func (p *Palette) KeyLength() int { return p.keyLen }

// Len returns the number of entries.
func (p *Palette) Len() int { return len(p.keys) }

// Keys returns the palette keys in insertion order.
func (p *Palette) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Lookup returns the color bound to key.
func (p *Palette) Lookup(key string) (Color, bool) {
	c, ok := p.colors[key]
	return c, ok
}

// ReverseLookup returns the first key in insertion order bound to the given
// color, or false when no key matches.
func (p *Palette) ReverseLookup(c Color) (string, bool) {
	for _, k := range p.keys {
		if p.colors[k] == c {
			return k, true
		}
	}
	return "", false
}

// WithUpdates returns a new palette with the given entries added or
// replacing existing bindings. The original palette is unchanged.
func (p *Palette) WithUpdates(entries ...PaletteEntry) (*Palette, error) {
	merged := make([]PaletteEntry, 0, len(p.keys)+len(entries))
	replaced := make(map[string]Color, len(entries))
	for _, e := range entries {
		if e.err != nil {
			return nil, e.err
		}
		replaced[e.key] = e.color
	}
	for _, k := range p.keys {
		c := p.colors[k]
		if nc, ok := replaced[k]; ok {
			c = nc
			delete(replaced, k)
		}
		merged = append(merged, Key(k, c))
	}
	for _, e := range entries {
		if _, ok := replaced[e.key]; ok {
			merged = append(merged, Key(e.key, e.color))
			delete(replaced, e.key)
		}
	}
	return NewPalette(merged...)
}

// autoKeys is the character pool for automatic key assignment, most
// frequent colors first.
const autoKeys = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// AutoPalette derives a palette and grid rows from an existing sprite. The
// most frequent colors receive keys first. Sprites with at most 62 unique
// colors get single-character keys; beyond that, two-character keys are
// assigned from the same pool.
func AutoPalette(s *Sprite) (*Palette, []string, error) {
	type freq struct {
		color Color
		count int
		seen  int
	}
	counts := make(map[Color]*freq)
	order := 0
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			c := s.at(x, y)
			f, ok := counts[c]
			if !ok {
				f = &freq{color: c, seen: order}
				order++
				counts[c] = f
			}
			f.count++
		}
	}
	if len(counts) == 0 {
		return nil, nil, fmt.Errorf("%w: sprite has no pixels", ErrEmptyInput)
	}

	freqs := make([]*freq, 0, len(counts))
	for _, f := range counts {
		freqs = append(freqs, f)
	}
	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].count != freqs[j].count {
			return freqs[i].count > freqs[j].count
		}
		return freqs[i].seen < freqs[j].seen
	})

	keys := make([]string, len(freqs))
	if len(freqs) <= len(autoKeys) {
		for i := range freqs {
			keys[i] = string(autoKeys[i])
		}
	} else {
		i := 0
	assign:
		for _, a := range autoKeys {
			for _, b := range autoKeys {
				keys[i] = string(a) + string(b)
				i++
				if i == len(keys) {
					break assign
				}
			}
		}
	}

	entries := make([]PaletteEntry, len(freqs))
	byColor := make(map[Color]string, len(freqs))
	for i, f := range freqs {
		entries[i] = Key(keys[i], f.color)
		byColor[f.color] = keys[i]
	}
	p, err := NewPalette(entries...)
	if err != nil {
		return nil, nil, err
	}

	rows := make([]string, s.Height())
	buf := make([]byte, 0, s.Width()*p.keyLen)
	for y := 0; y < s.Height(); y++ {
		buf = buf[:0]
		for x := 0; x < s.Width(); x++ {
			buf = append(buf, byColor[s.at(x, y)]...)
		}
		rows[y] = string(buf)
	}
	return p, rows, nil
}
