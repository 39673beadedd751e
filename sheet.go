package pixeldot

import "fmt"

// StripSheet packs animation frames into a horizontal strip. All frames
// must share the same dimensions.
type StripSheet struct {
	frames []*Sprite
	frameW int
	frameH int
}

// NewStripSheet builds a strip sheet from frames in order.
func NewStripSheet(frames []*Sprite) (*StripSheet, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: strip needs at least one frame", ErrEmptyInput)
	}
	fw, fh := frames[0].Size()
	for i, f := range frames {
		w, h := f.Size()
		if w != fw || h != fh {
			return nil, fmt.Errorf("%w: frame %d is %dx%d, want %dx%d",
				ErrDimensionMismatch, i, w, h, fw, fh)
		}
	}
	cp := make([]*Sprite, len(frames))
	copy(cp, frames)
	return &StripSheet{frames: cp, frameW: fw, frameH: fh}, nil
}

// SplitStrip slices a packed strip back into frames of the given width.
// The sprite width must be an exact multiple of frameWidth.
func SplitStrip(s *Sprite, frameWidth int) (*StripSheet, error) {
	if frameWidth <= 0 {
		return nil, fmt.Errorf("%w: frame width %d", ErrInvalidDimension, frameWidth)
	}
	if s.Width()%frameWidth != 0 {
		return nil, fmt.Errorf("%w: sprite width %d is not a multiple of frame width %d",
			ErrDimensionMismatch, s.Width(), frameWidth)
	}
	count := s.Width() / frameWidth
	frames := make([]*Sprite, count)
	for i := 0; i < count; i++ {
		f, err := s.Crop(i*frameWidth, 0, frameWidth, s.Height())
		if err != nil {
			return nil, err
		}
		frames[i] = f
	}
	return NewStripSheet(frames)
}

// FrameCount returns the number of frames.
func (ss *StripSheet) FrameCount() int { return len(ss.frames) }

// FrameSize returns the uniform (width, height) of each frame.
func (ss *StripSheet) FrameSize() (int, int) { return ss.frameW, ss.frameH }

// Frame returns the frame at index i.
func (ss *StripSheet) Frame(i int) (*Sprite, error) {
	if i < 0 || i >= len(ss.frames) {
		return nil, fmt.Errorf("%w: frame %d of %d", ErrOutOfBounds, i, len(ss.frames))
	}
	return ss.frames[i], nil
}

// ToSprite packs all frames into one horizontal strip.
func (ss *StripSheet) ToSprite() *Sprite {
	result := newSprite(ss.frameW*len(ss.frames), ss.frameH,
		make([]Color, ss.frameW*len(ss.frames)*ss.frameH))
	for i, f := range ss.frames {
		result = result.Paste(f, i*ss.frameW, 0)
	}
	return result
}

// NamedSprite pairs a name with a sprite for ordered collections.
type NamedSprite struct {
	Name   string
	Sprite *Sprite
}

// GridCell describes where a named sprite landed in a packed grid sheet.
type GridCell struct {
	Name string
	X, Y int
	W, H int
}

// GridSheet packs a named sprite collection into a grid, left to right and
// top to bottom in declaration order. The cell size defaults to the largest
// sprite dimensions.
type GridSheet struct {
	sprites []NamedSprite
	columns int
	padding int
	cellW   int
	cellH   int
}

// GridOption configures a GridSheet.
type GridOption func(*GridSheet)

// WithPadding inserts padding pixels between cells.
func WithPadding(padding int) GridOption {
	return func(gs *GridSheet) { gs.padding = padding }
}

// WithCellSize overrides the computed cell size.
func WithCellSize(w, h int) GridOption {
	return func(gs *GridSheet) { gs.cellW, gs.cellH = w, h }
}

// NewGridSheet builds a grid sheet with the given column count.
func NewGridSheet(sprites []NamedSprite, columns int, opts ...GridOption) (*GridSheet, error) {
	if len(sprites) == 0 {
		return nil, fmt.Errorf("%w: grid needs at least one sprite", ErrEmptyInput)
	}
	if columns < 1 {
		return nil, fmt.Errorf("%w: columns %d", ErrInvalidDimension, columns)
	}
	gs := &GridSheet{
		sprites: append([]NamedSprite(nil), sprites...),
		columns: columns,
	}
	for _, s := range sprites {
		if s.Sprite.Width() > gs.cellW {
			gs.cellW = s.Sprite.Width()
		}
		if s.Sprite.Height() > gs.cellH {
			gs.cellH = s.Sprite.Height()
		}
	}
	for _, opt := range opts {
		opt(gs)
	}
	return gs, nil
}

// CellSize returns the (width, height) of each grid cell.
func (gs *GridSheet) CellSize() (int, int) { return gs.cellW, gs.cellH }

// Cells returns position metadata for each sprite in pack order.
func (gs *GridSheet) Cells() []GridCell {
	cells := make([]GridCell, len(gs.sprites))
	for i, s := range gs.sprites {
		col := i % gs.columns
		row := i / gs.columns
		cells[i] = GridCell{
			Name: s.Name,
			X:    col * (gs.cellW + gs.padding),
			Y:    row * (gs.cellH + gs.padding),
			W:    s.Sprite.Width(),
			H:    s.Sprite.Height(),
		}
	}
	return cells
}

// ToSprite packs all sprites into a single grid sheet sprite.
func (gs *GridSheet) ToSprite() *Sprite {
	rows := (len(gs.sprites) + gs.columns - 1) / gs.columns
	totalW := gs.columns*(gs.cellW+gs.padding) - gs.padding
	totalH := rows*(gs.cellH+gs.padding) - gs.padding
	if totalW < 1 {
		totalW = 1
	}
	if totalH < 1 {
		totalH = 1
	}

	result := newSprite(totalW, totalH, make([]Color, totalW*totalH))
	for i, s := range gs.sprites {
		col := i % gs.columns
		row := i / gs.columns
		result = result.Paste(s.Sprite, col*(gs.cellW+gs.padding), row*(gs.cellH+gs.padding))
	}
	return result
}
