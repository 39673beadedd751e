package pixeldot

import (
	"fmt"
	"image"
	"image/color"
)

// Rect is a rectangle anchored at the top-left corner of a sprite.
type Rect struct {
	X, Y, W, H int
}

// Sprite is an immutable rectangular pixel buffer. Pixels are stored
// row-major with the origin at the top-left corner. Every transform returns
// a new Sprite; no operation mutates one after construction, so sprites may
// be shared across goroutines freely.
//
// A zero-area sprite (width or height 0) is valid and empty.
type Sprite struct {
	width  int
	height int
	px     []Color
}

// newSprite wraps a pixel slice without copying. Callers must hand over
// ownership of px.
func newSprite(w, h int, px []Color) *Sprite {
	return &Sprite{width: w, height: h, px: px}
}

// Empty creates a fully transparent sprite of the given size.
func Empty(w, h int) (*Sprite, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, w, h)
	}
	return newSprite(w, h, make([]Color, w*h)), nil
}

// Filled creates a sprite of the given size with every pixel set to c.
func Filled(w, h int, c Color) (*Sprite, error) {
	s, err := Empty(w, h)
	if err != nil {
		return nil, err
	}
	for i := range s.px {
		s.px[i] = c
	}
	return s, nil
}

// FromPixels creates a sprite from a row-major pixel slice.
// len(px) must equal w*h.
func FromPixels(w, h int, px []Color) (*Sprite, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, w, h)
	}
	if len(px) != w*h {
		return nil, fmt.Errorf("%w: got %d pixels, want %d", ErrDimensionMismatch, len(px), w*h)
	}
	cp := make([]Color, len(px))
	copy(cp, px)
	return newSprite(w, h, cp), nil
}

// Width returns the sprite width in pixels.
func (s *Sprite) Width() int { return s.width }

// Height returns the sprite height in pixels.
func (s *Sprite) Height() int { return s.height }

// Size returns (width, height).
func (s *Sprite) Size() (int, int) { return s.width, s.height }

// Get returns the pixel at (x, y). Returns ErrOutOfBounds when the
// coordinates fall outside [0,w)x[0,h).
func (s *Sprite) Get(x, y int) (Color, error) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Color{}, fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, x, y, s.width, s.height)
	}
	return s.px[y*s.width+x], nil
}

// at returns the pixel at (x, y) without bounds checking.
func (s *Sprite) at(x, y int) Color {
	return s.px[y*s.width+x]
}

// Crop extracts the sub-rectangle (x, y, w, h) as a new sprite. The
// rectangle must lie fully inside the sprite; a zero-area rectangle is
// valid and yields an empty sprite.
func (s *Sprite) Crop(x, y, w, h int) (*Sprite, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%w: crop %dx%d", ErrInvalidDimension, w, h)
	}
	if x < 0 || y < 0 || x+w > s.width || y+h > s.height {
		return nil, fmt.Errorf("%w: crop (%d, %d, %d, %d) of %dx%d",
			ErrOutOfBounds, x, y, w, h, s.width, s.height)
	}
	px := make([]Color, w*h)
	for row := 0; row < h; row++ {
		src := s.px[(y+row)*s.width+x:]
		copy(px[row*w:(row+1)*w], src[:w])
	}
	return newSprite(w, h, px), nil
}

// Paste composites other onto the sprite at (x, y) using source-over alpha
// blending and returns the result. The part of other that falls outside the
// sprite is silently clipped; partial overlaps at canvas edges are common in
// composition round-trips and are not an error.
func (s *Sprite) Paste(other *Sprite, x, y int) *Sprite {
	px := make([]Color, len(s.px))
	copy(px, s.px)

	for sy := 0; sy < other.height; sy++ {
		ty := y + sy
		if ty < 0 || ty >= s.height {
			continue
		}
		for sx := 0; sx < other.width; sx++ {
			tx := x + sx
			if tx < 0 || tx >= s.width {
				continue
			}
			src := other.px[sy*other.width+sx]
			switch src.A {
			case 0:
				// fully transparent source leaves the destination untouched
			case 255:
				px[ty*s.width+tx] = src
			default:
				px[ty*s.width+tx] = sourceOver(px[ty*s.width+tx], src)
			}
		}
	}
	return newSprite(s.width, s.height, px)
}

// sourceOver composites src over dst using the Porter-Duff "over" operator
// on non-premultiplied 8-bit channels.
func sourceOver(dst, src Color) Color {
	sa := float64(src.A) / 255.0
	da := float64(dst.A) / 255.0
	outA := sa + da*(1.0-sa)
	if outA == 0 {
		return Color{}
	}
	return Color{
		R: uint8((float64(src.R)*sa + float64(dst.R)*da*(1.0-sa)) / outA),
		G: uint8((float64(src.G)*sa + float64(dst.G)*da*(1.0-sa)) / outA),
		B: uint8((float64(src.B)*sa + float64(dst.B)*da*(1.0-sa)) / outA),
		A: uint8(outA * 255.0),
	}
}

// FlipH mirrors the sprite horizontally.
func (s *Sprite) FlipH() *Sprite {
	px := make([]Color, len(s.px))
	for y := 0; y < s.height; y++ {
		row := s.px[y*s.width : (y+1)*s.width]
		out := px[y*s.width : (y+1)*s.width]
		for x := 0; x < s.width; x++ {
			out[x] = row[s.width-1-x]
		}
	}
	return newSprite(s.width, s.height, px)
}

// FlipV mirrors the sprite vertically.
func (s *Sprite) FlipV() *Sprite {
	px := make([]Color, len(s.px))
	for y := 0; y < s.height; y++ {
		copy(px[y*s.width:(y+1)*s.width], s.px[(s.height-1-y)*s.width:(s.height-y)*s.width])
	}
	return newSprite(s.width, s.height, px)
}

// ReplaceColor returns a copy with every pixel exactly equal to old set to
// new. All other pixels are unchanged.
func (s *Sprite) ReplaceColor(old, new Color) *Sprite {
	px := make([]Color, len(s.px))
	for i, c := range s.px {
		if c == old {
			px[i] = new
		} else {
			px[i] = c
		}
	}
	return newSprite(s.width, s.height, px)
}

// OpaqueBounds returns the smallest rectangle covering all pixels with
// alpha > 0. The second return value is false when the sprite is fully
// transparent.
func (s *Sprite) OpaqueBounds() (Rect, bool) {
	minX, minY := s.width, s.height
	maxX, maxY := -1, -1
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			if s.at(x, y).A > 0 {
				if x < minX {
					minX = x
				}
				if y < minY {
					minY = y
				}
				if x > maxX {
					maxX = x
				}
				if y > maxY {
					maxY = y
				}
			}
		}
	}
	if maxX < 0 {
		return Rect{}, false
	}
	return Rect{X: minX, Y: minY, W: maxX - minX + 1, H: maxY - minY + 1}, true
}

// Trim returns the minimal sub-sprite containing all pixels with alpha > 0.
// A fully transparent sprite trims to an empty 0x0 sprite.
func (s *Sprite) Trim() *Sprite {
	b, ok := s.OpaqueBounds()
	if !ok {
		return newSprite(0, 0, nil)
	}
	out, err := s.Crop(b.X, b.Y, b.W, b.H)
	if err != nil {
		// OpaqueBounds always lies inside the sprite.
		panic(err)
	}
	return out
}

// Equal reports whether two sprites have identical dimensions and pixels.
func (s *Sprite) Equal(other *Sprite) bool {
	if s.width != other.width || s.height != other.height {
		return false
	}
	for i, c := range s.px {
		if c != other.px[i] {
			return false
		}
	}
	return true
}

// Bytes returns a copy of the pixel data as raw RGBA bytes, 4 bytes per
// pixel, row-major, top-left origin. This is the interchange format with
// image codecs and external tooling.
func (s *Sprite) Bytes() []byte {
	out := make([]byte, len(s.px)*4)
	for i, c := range s.px {
		out[i*4+0] = c.R
		out[i*4+1] = c.G
		out[i*4+2] = c.B
		out[i*4+3] = c.A
	}
	return out
}

// FromBytes creates a sprite from raw RGBA bytes as produced by Bytes.
func FromBytes(w, h int, data []byte) (*Sprite, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, w, h)
	}
	if len(data) != w*h*4 {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrDimensionMismatch, len(data), w*h*4)
	}
	px := make([]Color, w*h)
	for i := range px {
		px[i] = Color{R: data[i*4], G: data[i*4+1], B: data[i*4+2], A: data[i*4+3]}
	}
	return newSprite(w, h, px), nil
}

// ToNRGBA converts the sprite to a standard library NRGBA image.
func (s *Sprite) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.Bytes())
	return img
}

// FromImage creates a sprite from any image.Image. Premultiplied sources are
// converted through the NRGBA color model.
func FromImage(img image.Image) *Sprite {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	px := make([]Color, w*h)

	if n, ok := img.(*image.NRGBA); ok {
		for y := 0; y < h; y++ {
			row := n.Pix[y*n.Stride:]
			for x := 0; x < w; x++ {
				px[y*w+x] = Color{R: row[x*4], G: row[x*4+1], B: row[x*4+2], A: row[x*4+3]}
			}
		}
		return newSprite(w, h, px)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px[y*w+x] = FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return newSprite(w, h, px)
}

// At implements the image.Image interface. Coordinates outside the sprite
// return the zero color, matching standard library behavior.
func (s *Sprite) At(x, y int) color.Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return color.NRGBA{}
	}
	return s.at(x, y).NRGBA()
}

// Bounds implements the image.Image interface.
func (s *Sprite) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Sprite) ColorModel() color.Model {
	return color.NRGBAModel
}
