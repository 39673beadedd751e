package pixeldot

import (
	"fmt"
	"sort"
)

// TileSet is a collection of equally sized tile sprites keyed by a single
// character.
type TileSet struct {
	tiles  map[rune]*Sprite
	tileW  int
	tileH  int
}

// NewTileSet builds a tile set. Every tile must share the exact same
// dimensions; the size is taken from the first tile in key order.
func NewTileSet(tiles map[rune]*Sprite) (*TileSet, error) {
	if len(tiles) == 0 {
		return nil, fmt.Errorf("%w: tile set needs at least one tile", ErrEmptyInput)
	}

	keys := make([]rune, 0, len(tiles))
	for k := range tiles {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	tw, th := tiles[keys[0]].Size()
	for _, k := range keys {
		w, h := tiles[k].Size()
		if w != tw || h != th {
			return nil, fmt.Errorf("%w: tile %q is %dx%d, want %dx%d",
				ErrInconsistentTileSize, k, w, h, tw, th)
		}
	}

	cp := make(map[rune]*Sprite, len(tiles))
	for k, v := range tiles {
		cp[k] = v
	}
	return &TileSet{tiles: cp, tileW: tw, tileH: th}, nil
}

// TileSize returns the (width, height) of each tile.
func (ts *TileSet) TileSize() (int, int) { return ts.tileW, ts.tileH }

// Len returns the number of tiles.
func (ts *TileSet) Len() int { return len(ts.tiles) }

// Tile returns the tile for a key.
func (ts *TileSet) Tile(key rune) (*Sprite, bool) {
	t, ok := ts.tiles[key]
	return t, ok
}

// TileMap is a rectangular character grid referencing tiles in a TileSet.
// A 32x32 grid of 8x8 tiles expands to a 256x256 pixel sprite.
type TileMap struct {
	set  *TileSet
	rows []string
	cols int
}

// NewTileMap builds a tile map from explicit grid rows. All rows must have
// equal length and reference only keys present in the set. Both checks run
// here so that expansion cannot fail after validation.
func NewTileMap(set *TileSet, rows []string) (*TileMap, error) {
	kept := make([]string, 0, len(rows))
	for _, r := range rows {
		if r != "" {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("%w: tile map grid is empty", ErrEmptyInput)
	}

	cols := len([]rune(kept[0]))
	for y, row := range kept {
		runes := []rune(row)
		if len(runes) != cols {
			return nil, fmt.Errorf("%w: row %d has %d chars, want %d",
				ErrRaggedMap, y, len(runes), cols)
		}
		for x, ch := range runes {
			if _, ok := set.Tile(ch); !ok {
				return nil, &UnknownTileError{Key: ch, X: x, Y: y}
			}
		}
	}
	return &TileMap{set: set, rows: kept, cols: cols}, nil
}

// NewTileMapBlock builds a tile map from a block string, dedenting and
// stripping blank lines the same way Canvas.ParseBlock does.
func NewTileMapBlock(set *TileSet, block string) (*TileMap, error) {
	return NewTileMap(set, splitBlock(block))
}

// GridSize returns the map size in tiles (cols, rows).
func (tm *TileMap) GridSize() (int, int) { return tm.cols, len(tm.rows) }

// PixelSize returns the expanded size in pixels.
func (tm *TileMap) PixelSize() (int, int) {
	tw, th := tm.set.TileSize()
	return tm.cols * tw, len(tm.rows) * th
}

// ToSprite expands the map into a single sprite. Tiles are copied directly
// into place; they tile exactly and never overlap, so no blending is
// involved.
func (tm *TileMap) ToSprite() *Sprite {
	tw, th := tm.set.TileSize()
	pw, ph := tm.PixelSize()
	px := make([]Color, pw*ph)

	for gy, row := range tm.rows {
		for gx, ch := range []rune(row) {
			tile, _ := tm.set.Tile(ch)
			for y := 0; y < th; y++ {
				dst := px[(gy*th+y)*pw+gx*tw:]
				src := tile.px[y*tw:]
				copy(dst[:tw], src[:tw])
			}
		}
	}
	return newSprite(pw, ph, px)
}
