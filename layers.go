package pixeldot

import (
	"fmt"
	"log/slog"
)

// Layer is one entry in a LayerStack: a named sprite with opacity,
// visibility, and a blend mode.
type Layer struct {
	Name    string
	Sprite  *Sprite
	Opacity float64
	Visible bool
	Mode    BlendMode
}

// LayerOption configures a layer as it is added to a stack.
type LayerOption func(*Layer)

// WithOpacity sets the layer opacity in [0, 1].
func WithOpacity(opacity float64) LayerOption {
	return func(l *Layer) { l.Opacity = opacity }
}

// WithBlendMode sets the layer blend mode.
func WithBlendMode(mode BlendMode) LayerOption {
	return func(l *Layer) { l.Mode = mode }
}

// Hidden adds the layer invisible; it is kept in the stack but skipped by
// Flatten until made visible again.
func Hidden() LayerOption {
	return func(l *Layer) { l.Visible = false }
}

// LayerStack is an ordered collection of named layers over a fixed canvas
// size. Layers are composited bottom-to-top by Flatten. All validation
// (names, dimensions, opacity, blend mode) happens when a layer is added or
// modified, so Flatten itself cannot fail.
type LayerStack struct {
	width  int
	height int
	layers []*Layer
}

// NewLayerStack creates an empty stack with the given canvas size.
func NewLayerStack(w, h int) (*LayerStack, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, w, h)
	}
	return &LayerStack{width: w, height: h}, nil
}

// Width returns the canvas width.
func (ls *LayerStack) Width() int { return ls.width }

// Height returns the canvas height.
func (ls *LayerStack) Height() int { return ls.height }

// AddLayer appends a layer on top of the stack. The sprite must match the
// canvas size exactly, the name must be unused, opacity must be in [0, 1],
// and the blend mode must be one of the defined modes.
func (ls *LayerStack) AddLayer(name string, s *Sprite, opts ...LayerOption) error {
	return ls.InsertLayer(len(ls.layers), name, s, opts...)
}

// InsertLayer adds a layer at the given position, 0 being the bottom.
// Position len(layers) is the top and equivalent to AddLayer.
func (ls *LayerStack) InsertLayer(position int, name string, s *Sprite, opts ...LayerOption) error {
	if position < 0 || position > len(ls.layers) {
		return fmt.Errorf("%w: layer position %d", ErrOutOfBounds, position)
	}
	for _, l := range ls.layers {
		if l.Name == name {
			return fmt.Errorf("%w: %q", ErrDuplicateLayer, name)
		}
	}
	if s.Width() != ls.width || s.Height() != ls.height {
		return fmt.Errorf("%w: layer %q is %dx%d, stack is %dx%d",
			ErrDimensionMismatch, name, s.Width(), s.Height(), ls.width, ls.height)
	}

	layer := &Layer{Name: name, Sprite: s, Opacity: 1.0, Visible: true, Mode: BlendNormal}
	for _, opt := range opts {
		opt(layer)
	}
	if layer.Opacity < 0 || layer.Opacity > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidOpacity, layer.Opacity)
	}
	if !layer.Mode.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownBlendMode, uint8(layer.Mode))
	}

	ls.layers = append(ls.layers, nil)
	copy(ls.layers[position+1:], ls.layers[position:])
	ls.layers[position] = layer
	return nil
}

// RemoveLayer removes and returns the named layer.
func (ls *LayerStack) RemoveLayer(name string) (*Layer, error) {
	for i, l := range ls.layers {
		if l.Name == name {
			ls.layers = append(ls.layers[:i], ls.layers[i+1:]...)
			return l, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLayer, name)
}

// Layer returns the named layer.
func (ls *LayerStack) Layer(name string) (*Layer, error) {
	for _, l := range ls.layers {
		if l.Name == name {
			return l, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLayer, name)
}

// LayerNames returns layer names from bottom to top.
func (ls *LayerStack) LayerNames() []string {
	names := make([]string, len(ls.layers))
	for i, l := range ls.layers {
		names[i] = l.Name
	}
	return names
}

// Reorder sets the layer order, bottom to top. names must contain exactly
// the current layer names.
func (ls *LayerStack) Reorder(names []string) error {
	if len(names) != len(ls.layers) {
		return fmt.Errorf("%w: reorder got %d names, stack has %d layers",
			ErrDimensionMismatch, len(names), len(ls.layers))
	}
	byName := make(map[string]*Layer, len(ls.layers))
	for _, l := range ls.layers {
		byName[l.Name] = l
	}
	ordered := make([]*Layer, 0, len(names))
	for _, n := range names {
		l, ok := byName[n]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownLayer, n)
		}
		delete(byName, n)
		ordered = append(ordered, l)
	}
	ls.layers = ordered
	return nil
}

// SetVisible toggles a layer's visibility.
func (ls *LayerStack) SetVisible(name string, visible bool) error {
	l, err := ls.Layer(name)
	if err != nil {
		return err
	}
	l.Visible = visible
	return nil
}

// SetOpacity updates a layer's opacity, validating the [0, 1] range.
func (ls *LayerStack) SetOpacity(name string, opacity float64) error {
	if opacity < 0 || opacity > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidOpacity, opacity)
	}
	l, err := ls.Layer(name)
	if err != nil {
		return err
	}
	l.Opacity = opacity
	return nil
}

// SetBlendMode updates a layer's blend mode, validating the mode.
func (ls *LayerStack) SetBlendMode(name string, mode BlendMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownBlendMode, uint8(mode))
	}
	l, err := ls.Layer(name)
	if err != nil {
		return err
	}
	l.Mode = mode
	return nil
}

// Flatten composites all visible layers, bottom to top, onto a fully
// transparent canvas and returns the result. The stack remains usable
// afterwards. Output depends only on the ordered layer list.
func (ls *LayerStack) Flatten() *Sprite {
	px := make([]Color, ls.width*ls.height)
	for _, layer := range ls.layers {
		if !layer.Visible {
			continue
		}
		for i, src := range layer.Sprite.px {
			if src.A == 0 {
				continue
			}
			px[i] = blendPixel(px[i], src, layer.Mode, layer.Opacity)
		}
	}
	Logger().Debug("flattened layer stack",
		slog.Int("layers", len(ls.layers)),
		slog.Int("width", ls.width),
		slog.Int("height", ls.height))
	return newSprite(ls.width, ls.height, px)
}
