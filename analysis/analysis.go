// Package analysis reports on sprite contents: palette extraction with
// usage statistics, unique color counting, and content hashing for
// uniqueness checks.
package analysis

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"

	"github.com/sangyeon-bagelcode/pixeldot"
)

// ColorInfo describes one color's usage within a sprite.
type ColorInfo struct {
	Color      pixeldot.Color
	Hex        string
	Count      int
	Percentage float64
}

// ExtractPalette returns the most used colors in the sprite, most frequent
// first, limited to topN entries. Fully transparent pixels are excluded.
// Ties are broken by first appearance in scan order, so the result is
// deterministic.
func ExtractPalette(s *pixeldot.Sprite, topN int) []ColorInfo {
	type freq struct {
		color pixeldot.Color
		count int
		seen  int
	}
	counts := make(map[pixeldot.Color]*freq)
	totalOpaque := 0
	order := 0

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			c, _ := s.Get(x, y)
			if c.A == 0 {
				continue
			}
			f, ok := counts[c]
			if !ok {
				f = &freq{color: c, seen: order}
				order++
				counts[c] = f
			}
			f.count++
			totalOpaque++
		}
	}
	if totalOpaque == 0 {
		return nil
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
	if topN > 0 && len(freqs) > topN {
		freqs = freqs[:topN]
	}

	out := make([]ColorInfo, len(freqs))
	for i, f := range freqs {
		out[i] = ColorInfo{
			Color:      f.color,
			Hex:        f.color.Hex(),
			Count:      f.count,
			Percentage: float64(f.count) / float64(totalOpaque) * 100.0,
		}
	}
	return out
}

// ColorCount returns the number of unique colors with alpha > 0.
func ColorCount(s *pixeldot.Sprite) int {
	colors := make(map[pixeldot.Color]struct{})
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			c, _ := s.Get(x, y)
			if c.A > 0 {
				colors[c] = struct{}{}
			}
		}
	}
	return len(colors)
}

// PixelHash returns the SHA-256 hex digest of the sprite's raw RGBA bytes.
// Two sprites hash equal exactly when their dimensions may differ but their
// pixel streams are identical; include dimensions separately when that
// distinction matters.
func PixelHash(s *pixeldot.Sprite) string {
	sum := sha256.Sum256(s.Bytes())
	return hex.EncodeToString(sum[:])
}
