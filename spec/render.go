package spec

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sangyeon-bagelcode/pixeldot"
	"github.com/sangyeon-bagelcode/pixeldot/imageio"
	"github.com/sangyeon-bagelcode/pixeldot/style"
)

// previewScale is the upscale factor for preview outputs.
const previewScale = 10

// renderer tracks memoized results and the in-progress set for cycle
// detection during dependency resolution.
type renderer struct {
	doc     *Document
	results map[string]*pixeldot.Sprite
	active  map[string]bool
}

// Render renders the named sprites and everything they depend on. With no
// names, every sprite in the document is rendered. The result maps sprite
// names to rendered sprites.
func (d *Document) Render(only ...string) (map[string]*pixeldot.Sprite, error) {
	names := only
	if len(names) == 0 {
		names = d.order
	}
	r := &renderer{
		doc:     d,
		results: make(map[string]*pixeldot.Sprite),
		active:  make(map[string]bool),
	}
	for _, name := range names {
		if _, err := r.render(name); err != nil {
			return nil, err
		}
	}
	return r.results, nil
}

func (r *renderer) render(name string) (*pixeldot.Sprite, error) {
	if s, ok := r.results[name]; ok {
		return s, nil
	}
	if r.active[name] {
		return nil, fmt.Errorf("%w: %q", ErrCircularReference, name)
	}
	def, ok := r.doc.defs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSprite, name)
	}
	r.active[name] = true
	defer delete(r.active, name)

	typ := def.Type
	if typ == "" {
		typ = "block"
	}

	var (
		sprite *pixeldot.Sprite
		err    error
	)
	switch typ {
	case "block":
		sprite, err = r.renderBlock(name, def)
	case "strip":
		sprite, err = r.renderStrip(name, def)
	case "grid":
		sprite, err = r.renderGrid(name, def)
	case "tilemap":
		sprite, err = r.renderTilemap(name, def)
	case "layers":
		sprite, err = r.renderLayers(name, def)
	default:
		return nil, fmt.Errorf("spec: sprite %q has unknown type %q", name, typ)
	}
	if err != nil {
		return nil, err
	}

	sprite, err = r.applyEffects(name, def, sprite)
	if err != nil {
		return nil, err
	}

	pixeldot.Logger().Debug("rendered sprite",
		slog.String("name", name),
		slog.String("type", typ),
		slog.Int("width", sprite.Width()),
		slog.Int("height", sprite.Height()))

	r.results[name] = sprite
	return sprite, nil
}

func (r *renderer) renderBlock(name string, def *spriteDef) (*pixeldot.Sprite, error) {
	if def.Block == "" {
		return nil, fmt.Errorf("spec: block sprite %q missing 'block' field", name)
	}
	s, err := pixeldot.NewCanvas(r.doc.palette).ParseBlock(def.Block)
	if err != nil {
		return nil, fmt.Errorf("spec: sprite %q: %w", name, err)
	}
	return s, nil
}

func (r *renderer) renderStrip(name string, def *spriteDef) (*pixeldot.Sprite, error) {
	if len(def.Frames) == 0 {
		return nil, fmt.Errorf("spec: strip %q missing 'frames' field", name)
	}
	frames := make([]*pixeldot.Sprite, len(def.Frames))
	for i, ref := range def.Frames {
		f, err := r.render(ref)
		if err != nil {
			return nil, err
		}
		frames[i] = f
	}
	strip, err := pixeldot.NewStripSheet(frames)
	if err != nil {
		return nil, fmt.Errorf("spec: strip %q: %w", name, err)
	}
	return strip.ToSprite(), nil
}

func (r *renderer) renderGrid(name string, def *spriteDef) (*pixeldot.Sprite, error) {
	refs := orderedRefs(def.Sprites)
	if len(refs) == 0 {
		return nil, fmt.Errorf("spec: grid %q missing 'sprites' field", name)
	}
	columns := def.Columns
	if columns == 0 {
		columns = 4
	}
	named := make([]pixeldot.NamedSprite, len(refs))
	for i, p := range refs {
		s, err := r.render(p.value)
		if err != nil {
			return nil, err
		}
		named[i] = pixeldot.NamedSprite{Name: p.key, Sprite: s}
	}
	grid, err := pixeldot.NewGridSheet(named, columns, pixeldot.WithPadding(def.Padding))
	if err != nil {
		return nil, fmt.Errorf("spec: grid %q: %w", name, err)
	}
	return grid.ToSprite(), nil
}

func (r *renderer) renderTilemap(name string, def *spriteDef) (*pixeldot.Sprite, error) {
	refs := orderedRefs(def.Tileset)
	if len(refs) == 0 {
		return nil, fmt.Errorf("spec: tilemap %q missing 'tileset' field", name)
	}
	if def.Grid == "" {
		return nil, fmt.Errorf("spec: tilemap %q missing 'grid' field", name)
	}
	tiles := make(map[rune]*pixeldot.Sprite, len(refs))
	for _, p := range refs {
		keyRunes := []rune(p.key)
		if len(keyRunes) != 1 {
			return nil, fmt.Errorf("spec: tilemap %q: tile key %q must be one character", name, p.key)
		}
		s, err := r.render(p.value)
		if err != nil {
			return nil, err
		}
		tiles[keyRunes[0]] = s
	}
	set, err := pixeldot.NewTileSet(tiles)
	if err != nil {
		return nil, fmt.Errorf("spec: tilemap %q: %w", name, err)
	}
	tm, err := pixeldot.NewTileMapBlock(set, def.Grid)
	if err != nil {
		return nil, fmt.Errorf("spec: tilemap %q: %w", name, err)
	}
	return tm.ToSprite(), nil
}

// layerEntry is one element of a layers list: either a bare sprite
// reference or a mapping with options.
type layerEntry struct {
	Sprite  string  `yaml:"sprite"`
	Name    string  `yaml:"name"`
	Opacity float64 `yaml:"opacity"`
	Blend   string  `yaml:"blend_mode"`
}

func (r *renderer) renderLayers(name string, def *spriteDef) (*pixeldot.Sprite, error) {
	if len(def.Layers) == 0 {
		return nil, fmt.Errorf("spec: layers %q missing 'layers' field", name)
	}

	entries := make([]layerEntry, len(def.Layers))
	for i, node := range def.Layers {
		if node.Kind == yaml.ScalarNode {
			entries[i] = layerEntry{Sprite: node.Value, Opacity: 1.0}
			continue
		}
		e := layerEntry{Opacity: 1.0}
		if err := node.Decode(&e); err != nil {
			return nil, fmt.Errorf("spec: layers %q entry %d: %w", name, i, err)
		}
		if e.Sprite == "" {
			return nil, fmt.Errorf("spec: layers %q entry %d missing 'sprite' field", name, i)
		}
		entries[i] = e
	}

	first, err := r.render(entries[0].Sprite)
	if err != nil {
		return nil, err
	}
	width, height := def.Width, def.Height
	if width == 0 {
		width = first.Width()
	}
	if height == 0 {
		height = first.Height()
	}

	stack, err := pixeldot.NewLayerStack(width, height)
	if err != nil {
		return nil, fmt.Errorf("spec: layers %q: %w", name, err)
	}
	for i, e := range entries {
		s, err := r.render(e.Sprite)
		if err != nil {
			return nil, err
		}
		layerName := e.Name
		if layerName == "" {
			layerName = e.Sprite
		}
		mode := pixeldot.BlendNormal
		if e.Blend != "" {
			mode, err = pixeldot.ParseBlendMode(e.Blend)
			if err != nil {
				return nil, fmt.Errorf("spec: layers %q entry %d: %w", name, i, err)
			}
		}
		if err := stack.AddLayer(layerName, s,
			pixeldot.WithOpacity(e.Opacity), pixeldot.WithBlendMode(mode)); err != nil {
			return nil, fmt.Errorf("spec: layers %q: %w", name, err)
		}
	}
	return stack.Flatten(), nil
}

// outlineDef mirrors an outline mapping: {color: ..., style: thin|thick|selective}.
type outlineDef struct {
	Color string `yaml:"color"`
	Style string `yaml:"style"`
}

// shadowDef mirrors a shadow mapping: {offset: [x, y], opacity: 0.5}.
type shadowDef struct {
	Offset  []int    `yaml:"offset"`
	Color   string   `yaml:"color"`
	Opacity *float64 `yaml:"opacity"`
}

func (r *renderer) applyEffects(name string, def *spriteDef, s *pixeldot.Sprite) (*pixeldot.Sprite, error) {
	var err error
	if !def.Outline.IsZero() {
		s, err = r.applyOutline(name, def.Outline, s)
		if err != nil {
			return nil, err
		}
	}
	if !def.Shadow.IsZero() {
		s, err = r.applyShadow(name, def.Shadow, s)
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (r *renderer) applyOutline(name string, node yaml.Node, s *pixeldot.Sprite) (*pixeldot.Sprite, error) {
	if node.Kind == yaml.ScalarNode {
		var enabled bool
		if err := node.Decode(&enabled); err != nil {
			return nil, fmt.Errorf("spec: sprite %q outline: %w", name, err)
		}
		if !enabled {
			return s, nil
		}
		return style.Outline(s, pixeldot.Black, style.OutlineThin)
	}

	var cfg outlineDef
	if err := node.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("spec: sprite %q outline: %w", name, err)
	}
	color := pixeldot.Black
	if cfg.Color != "" {
		var err error
		color, err = resolveColor(cfg.Color)
		if err != nil {
			return nil, fmt.Errorf("spec: sprite %q outline: %w", name, err)
		}
	}
	outlineStyle := style.OutlineThin
	switch cfg.Style {
	case "", "thin":
	case "thick":
		outlineStyle = style.OutlineThick
	case "selective":
		outlineStyle = style.OutlineSelective
	case "none":
		return s, nil
	default:
		return nil, fmt.Errorf("spec: sprite %q has unknown outline style %q", name, cfg.Style)
	}
	return style.Outline(s, color, outlineStyle)
}

func (r *renderer) applyShadow(name string, node yaml.Node, s *pixeldot.Sprite) (*pixeldot.Sprite, error) {
	if node.Kind == yaml.ScalarNode {
		var enabled bool
		if err := node.Decode(&enabled); err != nil {
			return nil, fmt.Errorf("spec: sprite %q shadow: %w", name, err)
		}
		if !enabled {
			return s, nil
		}
		return style.Shadow(s, 1, 1, pixeldot.Black, 0.5)
	}

	var cfg shadowDef
	if err := node.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("spec: sprite %q shadow: %w", name, err)
	}
	dx, dy := 1, 1
	if len(cfg.Offset) == 2 {
		dx, dy = cfg.Offset[0], cfg.Offset[1]
	}
	color := pixeldot.Black
	if cfg.Color != "" {
		var err error
		color, err = resolveColor(cfg.Color)
		if err != nil {
			return nil, fmt.Errorf("spec: sprite %q shadow: %w", name, err)
		}
	}
	opacity := 0.5
	if cfg.Opacity != nil {
		opacity = *cfg.Opacity
	}
	return style.Shadow(s, dx, dy, color, opacity)
}

// SaveAll writes every rendered sprite that declares a 'save' or 'preview'
// path, relative to the document directory. It returns the written paths.
func (d *Document) SaveAll(results map[string]*pixeldot.Sprite) ([]string, error) {
	var saved []string
	for _, name := range d.order {
		sprite, ok := results[name]
		if !ok {
			continue
		}
		def := d.defs[name]
		if def.Save != "" {
			path := filepath.Join(d.baseDir, def.Save)
			if err := imageio.Save(sprite, path); err != nil {
				return saved, err
			}
			saved = append(saved, path)
		}
		if def.Preview != "" {
			path := filepath.Join(d.baseDir, def.Preview)
			if err := imageio.SavePreview(sprite, path, previewScale); err != nil {
				return saved, err
			}
			saved = append(saved, path)
		}
	}
	return saved, nil
}

// RenderFile loads a spec file, renders every sprite, and writes declared
// outputs. With dryRun set, nothing is written.
func RenderFile(path string, dryRun bool) (map[string]*pixeldot.Sprite, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}
	results, err := doc.Render()
	if err != nil {
		return nil, err
	}
	if !dryRun {
		if _, err := doc.SaveAll(results); err != nil {
			return results, err
		}
	}
	return results, nil
}
