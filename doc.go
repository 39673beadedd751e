// Package pixeldot builds exact low-resolution RGBA images from compact
// textual descriptions and composes them into larger scenes.
//
// # Overview
//
// pixeldot renders "string art" — character grids mapped to colors through
// a palette — into immutable Sprite pixel buffers, then layers, tiles, and
// lays out those buffers into finished images. One character (or a fixed
// run of characters) is one pixel, which keeps even detailed sprites
// readable and diffable as plain text.
//
// # Quick Start
//
//	import "github.com/sangyeon-bagelcode/pixeldot"
//
//	p, _ := pixeldot.NewPalette(
//		pixeldot.Key(".", pixeldot.Transparent),
//		pixeldot.Key("K", pixeldot.Black),
//		pixeldot.HexKey("r", "#FF0000"),
//	)
//	sprite, _ := pixeldot.NewCanvas(p).ParseBlock(`
//		..KK..
//		.KrrK.
//		KrrrrK
//		.KrrK.
//		..KK..
//	`)
//
// # Architecture
//
// The library is organized into:
//   - Core: Color, Sprite, Palette, Canvas, LayerStack, TileSet/TileMap,
//     RegionLayout, StripSheet/GridSheet
//   - Fast path: FastSprite and internal/batch row kernels, bit-exact with
//     the scalar implementations
//   - Collaborators: colorutil (HSL math), style (presets and filters),
//     analysis (reports), imageio (PNG), preview (scaling and terminal
//     output), spec (YAML batch rendering)
//
// # Immutability
//
// Sprite values never change after construction; every transform returns a
// new Sprite. Sharing sprites across goroutines needs no coordination.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package pixeldot

// Version is the current version of the library.
const Version = "0.1.0"
