// Package preview turns sprites into things a human can look at quickly:
// integer upscales, side-by-side montages, and truecolor terminal output.
package preview

import (
	"fmt"

	"github.com/sangyeon-bagelcode/pixeldot"
)

// ScaleNearest scales a sprite up by an integer factor with
// nearest-neighbor sampling. Factor 1 returns the sprite unchanged.
func ScaleNearest(s *pixeldot.Sprite, factor int) (*pixeldot.Sprite, error) {
	if factor < 1 {
		return nil, fmt.Errorf("preview: scale factor must be >= 1, got %d", factor)
	}
	if factor == 1 {
		return s, nil
	}

	w, h := s.Width()*factor, s.Height()*factor
	px := make([]pixeldot.Color, 0, w*h)
	for y := 0; y < h; y++ {
		sy := y / factor
		for x := 0; x < w; x++ {
			c, _ := s.Get(x/factor, sy)
			px = append(px, c)
		}
	}
	return pixeldot.FromPixels(w, h, px)
}

// SideBySide places sprites next to each other for comparison, each scaled
// by factor, separated by gap pixels of background. Sprites of unequal
// height are top-aligned.
func SideBySide(sprites []*pixeldot.Sprite, factor, gap int, background pixeldot.Color) (*pixeldot.Sprite, error) {
	if len(sprites) == 0 {
		return nil, fmt.Errorf("preview: no sprites to display")
	}

	scaled := make([]*pixeldot.Sprite, len(sprites))
	maxH := 0
	totalW := gap * (len(sprites) - 1)
	for i, s := range sprites {
		sc, err := ScaleNearest(s, factor)
		if err != nil {
			return nil, err
		}
		scaled[i] = sc
		totalW += sc.Width()
		if sc.Height() > maxH {
			maxH = sc.Height()
		}
	}

	result, err := pixeldot.Filled(totalW, maxH, background)
	if err != nil {
		return nil, err
	}
	x := 0
	for _, sc := range scaled {
		result = result.Paste(sc, x, 0)
		x += sc.Width() + gap
	}
	return result, nil
}
