// Package spec renders batches of sprites from YAML documents. A document
// declares one palette (inline or preset) and a set of named sprites that
// may reference each other: blocks of string art, animation strips, grid
// sheets, tile maps, and layer compositions, optionally post-processed with
// outline and shadow filters and written to PNG files.
package spec

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sangyeon-bagelcode/pixeldot"
	"github.com/sangyeon-bagelcode/pixeldot/style"
)

// Spec errors.
var (
	// ErrUnknownSprite is returned when a definition references a sprite
	// name that does not exist in the document.
	ErrUnknownSprite = errors.New("spec: unknown sprite reference")

	// ErrCircularReference is returned when sprite definitions reference
	// each other in a cycle.
	ErrCircularReference = errors.New("spec: circular sprite reference")
)

// reservedColors are color names usable wherever a hex string is accepted.
var reservedColors = map[string]pixeldot.Color{
	"transparent": pixeldot.Transparent,
	"black":       pixeldot.Black,
	"white":       pixeldot.White,
}

// Document is a parsed spec. Render produces the sprites; SaveAll writes
// declared outputs relative to the document's directory.
type Document struct {
	palette *pixeldot.Palette
	defs    map[string]*spriteDef
	order   []string
	baseDir string
}

// spriteDef mirrors one entry of the document's sprites section. Ordered
// sub-maps stay as yaml nodes so declaration order survives decoding.
type spriteDef struct {
	Type    string      `yaml:"type"`
	Block   string      `yaml:"block"`
	Frames  []string    `yaml:"frames"`
	Sprites yaml.Node   `yaml:"sprites"`
	Columns int         `yaml:"columns"`
	Padding int         `yaml:"padding"`
	Tileset yaml.Node   `yaml:"tileset"`
	Grid    string      `yaml:"grid"`
	Layers  []yaml.Node `yaml:"layers"`
	Width   int         `yaml:"width"`
	Height  int         `yaml:"height"`
	Outline yaml.Node   `yaml:"outline"`
	Shadow  yaml.Node   `yaml:"shadow"`
	Save    string      `yaml:"save"`
	Preview string      `yaml:"preview"`
}

type rawDocument struct {
	Preset  string    `yaml:"preset"`
	Palette yaml.Node `yaml:"palette"`
	Sprites yaml.Node `yaml:"sprites"`
}

// Load reads and parses a spec file. Output paths in the document are
// resolved relative to the file's directory.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("spec: read file: %w", err)
	}
	return Parse(data, filepath.Dir(path))
}

// Parse parses spec YAML. baseDir anchors relative output paths.
func Parse(data []byte, baseDir string) (*Document, error) {
	var raw rawDocument
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("spec: parse yaml: %w", err)
	}

	palette, err := buildPalette(&raw)
	if err != nil {
		return nil, err
	}

	if raw.Sprites.Kind != yaml.MappingNode || len(raw.Sprites.Content) == 0 {
		return nil, errors.New("spec: document needs a 'sprites' section")
	}
	defs := make(map[string]*spriteDef)
	var order []string
	for i := 0; i+1 < len(raw.Sprites.Content); i += 2 {
		name := raw.Sprites.Content[i].Value
		if _, ok := defs[name]; ok {
			return nil, fmt.Errorf("spec: sprite %q defined twice", name)
		}
		var def spriteDef
		if err := raw.Sprites.Content[i+1].Decode(&def); err != nil {
			return nil, fmt.Errorf("spec: sprite %q: %w", name, err)
		}
		defs[name] = &def
		order = append(order, name)
	}

	return &Document{palette: palette, defs: defs, order: order, baseDir: baseDir}, nil
}

// buildPalette builds the document palette from the inline palette section
// or a preset name.
func buildPalette(raw *rawDocument) (*pixeldot.Palette, error) {
	switch {
	case raw.Palette.Kind == yaml.MappingNode:
		var entries []pixeldot.PaletteEntry
		for i := 0; i+1 < len(raw.Palette.Content); i += 2 {
			key := raw.Palette.Content[i].Value
			value := raw.Palette.Content[i+1].Value
			if c, ok := reservedColors[value]; ok {
				entries = append(entries, pixeldot.Key(key, c))
			} else {
				entries = append(entries, pixeldot.HexKey(key, value))
			}
		}
		return pixeldot.NewPalette(entries...)
	case raw.Preset != "":
		return style.Preset(raw.Preset)
	default:
		return nil, errors.New("spec: document needs a 'palette' or 'preset' section")
	}
}

// Palette returns the document palette.
func (d *Document) Palette() *pixeldot.Palette { return d.palette }

// Names returns the sprite names in declaration order.
func (d *Document) Names() []string {
	return append([]string(nil), d.order...)
}

// resolveColor interprets a scalar node as a reserved color name or a hex
// string.
func resolveColor(value string) (pixeldot.Color, error) {
	if c, ok := reservedColors[value]; ok {
		return c, nil
	}
	return pixeldot.ParseHex(value)
}

// orderedRefs flattens a mapping node into (key, value) pairs in
// declaration order.
type refPair struct {
	key   string
	value string
}

func orderedRefs(node yaml.Node) []refPair {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	pairs := make([]refPair, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		pairs = append(pairs, refPair{key: node.Content[i].Value, value: node.Content[i+1].Value})
	}
	return pairs
}
