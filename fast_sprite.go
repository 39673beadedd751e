package pixeldot

import (
	"fmt"

	"github.com/sangyeon-bagelcode/pixeldot/internal/batch"
)

// FastSprite is the batch-oriented counterpart of Sprite, intended for
// large canvases. It stores pixels as a raw RGBA byte buffer and implements
// every transform with row kernels from internal/batch instead of per-pixel
// Color values.
//
// FastSprite is bit-exact with Sprite: for identical inputs, every
// operation produces identical pixels. That equivalence, not throughput, is
// the contract the test suite enforces.
type FastSprite struct {
	width  int
	height int
	data   []byte // RGBA, 4 bytes per pixel, row-major
}

// newFastSprite wraps a byte buffer without copying.
func newFastSprite(w, h int, data []byte) *FastSprite {
	return &FastSprite{width: w, height: h, data: data}
}

// EmptyFast creates a fully transparent fast sprite of the given size.
func EmptyFast(w, h int) (*FastSprite, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, w, h)
	}
	return newFastSprite(w, h, make([]byte, w*h*4)), nil
}

// FastFromSprite converts a scalar sprite into a fast sprite.
func FastFromSprite(s *Sprite) *FastSprite {
	return newFastSprite(s.width, s.height, s.Bytes())
}

// ToSprite converts back to a scalar sprite.
func (f *FastSprite) ToSprite() *Sprite {
	s, err := FromBytes(f.width, f.height, f.data)
	if err != nil {
		// The buffer invariant len(data) == w*h*4 always holds.
		panic(err)
	}
	return s
}

// Width returns the sprite width in pixels.
func (f *FastSprite) Width() int { return f.width }

// Height returns the sprite height in pixels.
func (f *FastSprite) Height() int { return f.height }

// Size returns (width, height).
func (f *FastSprite) Size() (int, int) { return f.width, f.height }

// Get returns the pixel at (x, y).
func (f *FastSprite) Get(x, y int) (Color, error) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Color{}, fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, x, y, f.width, f.height)
	}
	i := (y*f.width + x) * 4
	return Color{R: f.data[i], G: f.data[i+1], B: f.data[i+2], A: f.data[i+3]}, nil
}

// row returns the y-th pixel row as a byte slice.
func (f *FastSprite) row(y int) []byte {
	return f.data[y*f.width*4 : (y+1)*f.width*4]
}

// Crop extracts the sub-rectangle (x, y, w, h). Contract matches
// Sprite.Crop; rows are block-copied.
func (f *FastSprite) Crop(x, y, w, h int) (*FastSprite, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%w: crop %dx%d", ErrInvalidDimension, w, h)
	}
	if x < 0 || y < 0 || x+w > f.width || y+h > f.height {
		return nil, fmt.Errorf("%w: crop (%d, %d, %d, %d) of %dx%d",
			ErrOutOfBounds, x, y, w, h, f.width, f.height)
	}
	data := make([]byte, w*h*4)
	for row := 0; row < h; row++ {
		src := f.row(y + row)
		copy(data[row*w*4:(row+1)*w*4], src[x*4:(x+w)*4])
	}
	return newFastSprite(w, h, data), nil
}

// Paste composites other onto the sprite at (x, y) with source-over
// blending, clipping silently at the edges. The overlap is computed once
// and each overlapping row goes through a single batch kernel call.
func (f *FastSprite) Paste(other *FastSprite, x, y int) *FastSprite {
	data := make([]byte, len(f.data))
	copy(data, f.data)

	sx0 := max(0, -x)
	sy0 := max(0, -y)
	sx1 := min(other.width, f.width-x)
	sy1 := min(other.height, f.height-y)
	if sx0 >= sx1 || sy0 >= sy1 {
		return newFastSprite(f.width, f.height, data)
	}

	for sy := sy0; sy < sy1; sy++ {
		ty := y + sy
		dst := data[(ty*f.width+x+sx0)*4 : (ty*f.width+x+sx1)*4]
		src := other.row(sy)[sx0*4 : sx1*4]
		batch.SourceOverRow(dst, src)
	}
	return newFastSprite(f.width, f.height, data)
}

// FlipH mirrors the sprite horizontally.
func (f *FastSprite) FlipH() *FastSprite {
	data := make([]byte, len(f.data))
	for y := 0; y < f.height; y++ {
		batch.ReverseRow(data[y*f.width*4:(y+1)*f.width*4], f.row(y))
	}
	return newFastSprite(f.width, f.height, data)
}

// FlipV mirrors the sprite vertically.
func (f *FastSprite) FlipV() *FastSprite {
	data := make([]byte, len(f.data))
	for y := 0; y < f.height; y++ {
		copy(data[y*f.width*4:(y+1)*f.width*4], f.row(f.height-1-y))
	}
	return newFastSprite(f.width, f.height, data)
}

// ReplaceColor returns a copy with every pixel exactly equal to old set to
// new.
func (f *FastSprite) ReplaceColor(old, new Color) *FastSprite {
	data := make([]byte, len(f.data))
	copy(data, f.data)
	oldB := [4]byte{old.R, old.G, old.B, old.A}
	newB := [4]byte{new.R, new.G, new.B, new.A}
	for y := 0; y < f.height; y++ {
		batch.ReplaceRow(data[y*f.width*4:(y+1)*f.width*4], oldB, newB)
	}
	return newFastSprite(f.width, f.height, data)
}

// OpaqueBounds returns the bounding rectangle of alpha > 0 pixels, scanning
// whole rows via the batch span kernel.
func (f *FastSprite) OpaqueBounds() (Rect, bool) {
	minX, minY := f.width, f.height
	maxX, maxY := -1, -1
	for y := 0; y < f.height; y++ {
		first, last := batch.OpaqueSpan(f.row(y))
		if first < 0 {
			continue
		}
		if y < minY {
			minY = y
		}
		maxY = y
		if first < minX {
			minX = first
		}
		if last > maxX {
			maxX = last
		}
	}
	if maxX < 0 {
		return Rect{}, false
	}
	return Rect{X: minX, Y: minY, W: maxX - minX + 1, H: maxY - minY + 1}, true
}

// Trim returns the minimal sub-sprite containing all pixels with alpha > 0,
// or an empty 0x0 sprite when fully transparent.
func (f *FastSprite) Trim() *FastSprite {
	b, ok := f.OpaqueBounds()
	if !ok {
		return newFastSprite(0, 0, nil)
	}
	out, err := f.Crop(b.X, b.Y, b.W, b.H)
	if err != nil {
		panic(err)
	}
	return out
}

// Equal reports whether two fast sprites have identical dimensions and
// pixel data.
func (f *FastSprite) Equal(other *FastSprite) bool {
	if f.width != other.width || f.height != other.height {
		return false
	}
	for i, b := range f.data {
		if b != other.data[i] {
			return false
		}
	}
	return true
}

// FlattenFast is the batch counterpart of Flatten, blending whole layer
// rows through internal/batch kernels. The result is bit-exact with
// Flatten.
func (ls *LayerStack) FlattenFast() *Sprite {
	data := make([]byte, ls.width*ls.height*4)
	rowBytes := ls.width * 4
	for _, layer := range ls.layers {
		if !layer.Visible {
			continue
		}
		src := layer.Sprite.Bytes()
		for y := 0; y < ls.height; y++ {
			batch.BlendRow(data[y*rowBytes:(y+1)*rowBytes], src[y*rowBytes:(y+1)*rowBytes],
				batch.Mode(layer.Mode), layer.Opacity)
		}
	}
	s, err := FromBytes(ls.width, ls.height, data)
	if err != nil {
		panic(err)
	}
	return s
}
