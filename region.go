package pixeldot

import (
	"fmt"
	"sort"
)

// Region is a named rectangle within a layout canvas.
type Region struct {
	Name string
	X, Y int
	W, H int
}

// RegionLayout defines named rectangular sub-areas of a fixed-size canvas
// and assembles or splits sprites along them. Declaration order is the
// z-order: where regions overlap, later regions paint over earlier ones.
type RegionLayout struct {
	width   int
	height  int
	regions []Region
	byName  map[string]int
}

// NewRegionLayout validates the regions against the canvas size. Every
// region must lie fully inside the canvas and names must be unique.
// Overlapping regions are allowed.
func NewRegionLayout(w, h int, regions []Region) (*RegionLayout, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, w, h)
	}
	byName := make(map[string]int, len(regions))
	for i, r := range regions {
		if _, ok := byName[r.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRegion, r.Name)
		}
		if r.W < 0 || r.H < 0 {
			return nil, fmt.Errorf("%w: region %q is %dx%d", ErrInvalidDimension, r.Name, r.W, r.H)
		}
		if r.X < 0 || r.Y < 0 || r.X+r.W > w || r.Y+r.H > h {
			return nil, fmt.Errorf("%w: region %q (%d, %d, %d, %d) exceeds %dx%d canvas",
				ErrOutOfBounds, r.Name, r.X, r.Y, r.W, r.H, w, h)
		}
		byName[r.Name] = i
	}
	cp := make([]Region, len(regions))
	copy(cp, regions)
	return &RegionLayout{width: w, height: h, regions: cp, byName: byName}, nil
}

// CanvasSize returns the layout canvas size.
func (rl *RegionLayout) CanvasSize() (int, int) { return rl.width, rl.height }

// Regions returns the regions in declaration order.
func (rl *RegionLayout) Regions() []Region {
	out := make([]Region, len(rl.regions))
	copy(out, rl.regions)
	return out
}

// Compose assembles named parts into a single canvas sprite. Composition is
// all-or-nothing: every declared region must have a part, and every part
// must name a declared region. Parts larger than their region are cropped
// to the region size so they cannot bleed into neighboring regions.
func (rl *RegionLayout) Compose(parts map[string]*Sprite) (*Sprite, error) {
	names := make([]string, 0, len(parts))
	for name := range parts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, ok := rl.byName[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRegion, name)
		}
	}
	for _, r := range rl.regions {
		if _, ok := parts[r.Name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingRegion, r.Name)
		}
	}

	result := newSprite(rl.width, rl.height, make([]Color, rl.width*rl.height))
	for _, r := range rl.regions {
		src := parts[r.Name]
		if src.Width() > r.W || src.Height() > r.H {
			w := min(src.Width(), r.W)
			h := min(src.Height(), r.H)
			cropped, err := src.Crop(0, 0, w, h)
			if err != nil {
				return nil, err
			}
			src = cropped
		}
		result = result.Paste(src, r.X, r.Y)
	}
	return result, nil
}

// Decompose splits a canvas sprite into its named region parts. The sprite
// must match the layout canvas size exactly.
func (rl *RegionLayout) Decompose(s *Sprite) (map[string]*Sprite, error) {
	if s.Width() != rl.width || s.Height() != rl.height {
		return nil, fmt.Errorf("%w: sprite is %dx%d, layout canvas is %dx%d",
			ErrDimensionMismatch, s.Width(), s.Height(), rl.width, rl.height)
	}
	parts := make(map[string]*Sprite, len(rl.regions))
	for _, r := range rl.regions {
		part, err := s.Crop(r.X, r.Y, r.W, r.H)
		if err != nil {
			return nil, err
		}
		parts[r.Name] = part
	}
	return parts, nil
}
