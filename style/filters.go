package style

import (
	"fmt"
	"math"

	"github.com/sangyeon-bagelcode/pixeldot"
)

// OutlineStyle selects which neighbors of an opaque pixel receive outline
// color.
type OutlineStyle uint8

const (
	// OutlineNone leaves the sprite unchanged.
	OutlineNone OutlineStyle = iota
	// OutlineThin outlines the four cardinal neighbors.
	OutlineThin
	// OutlineThick outlines all eight neighbors.
	OutlineThick
	// OutlineSelective outlines only bottom and right neighbors for a
	// shadow-like edge.
	OutlineSelective
)

type offset struct{ dx, dy int }

func outlineOffsets(s OutlineStyle) ([]offset, error) {
	switch s {
	case OutlineThin:
		return []offset{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}, nil
	case OutlineThick:
		return []offset{
			{-1, -1}, {0, -1}, {1, -1},
			{-1, 0}, {1, 0},
			{-1, 1}, {0, 1}, {1, 1},
		}, nil
	case OutlineSelective:
		return []offset{{1, 0}, {0, 1}, {1, 1}}, nil
	default:
		return nil, fmt.Errorf("style: unknown outline style %d", s)
	}
}

// Outline draws an outline around the sprite's opaque pixels. The result
// grows by one pixel on every side to make room. OutlineNone returns the
// sprite unchanged.
func Outline(s *pixeldot.Sprite, c pixeldot.Color, os OutlineStyle) (*pixeldot.Sprite, error) {
	if os == OutlineNone {
		return s, nil
	}
	offsets, err := outlineOffsets(os)
	if err != nil {
		return nil, err
	}

	w, h := s.Size()
	newW, newH := w+2, h+2
	px := make([]pixeldot.Color, newW*newH)

	// Outline first, original pixels painted over it afterwards.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p, _ := s.Get(x, y)
			if p.A == 0 {
				continue
			}
			for _, o := range offsets {
				nx, ny := x+1+o.dx, y+1+o.dy
				if px[ny*newW+nx].A == 0 {
					px[ny*newW+nx] = c
				}
			}
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p, _ := s.Get(x, y)
			if p.A > 0 {
				px[(y+1)*newW+(x+1)] = p
			}
		}
	}
	return pixeldot.FromPixels(newW, newH, px)
}

// Shadow adds a drop shadow behind the sprite's opaque pixels, offset by
// (dx, dy). The canvas grows to fit the shadow. opacity scales the shadow
// alpha and must be in [0, 1].
func Shadow(s *pixeldot.Sprite, dx, dy int, c pixeldot.Color, opacity float64) (*pixeldot.Sprite, error) {
	if opacity < 0 || opacity > 1 {
		return nil, fmt.Errorf("style: shadow opacity %v out of range", opacity)
	}
	shadowA := uint8(math.Round(opacity * 255.0))
	shadow := pixeldot.RGBA(c.R, c.G, c.B, shadowA)

	w, h := s.Size()
	minX := min(0, dx)
	minY := min(0, dy)
	maxX := max(w, w+dx)
	maxY := max(h, h+dy)
	newW := maxX - minX
	newH := maxY - minY

	px := make([]pixeldot.Color, newW*newH)

	// Shadow pass.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p, _ := s.Get(x, y)
			if p.A > 0 {
				sx := x + dx - minX
				sy := y + dy - minY
				px[sy*newW+sx] = shadow
			}
		}
	}
	shadowSprite, err := pixeldot.FromPixels(newW, newH, px)
	if err != nil {
		return nil, err
	}

	// Sprite pasted on top at its own offset.
	return shadowSprite.Paste(s, -minX, -minY), nil
}
