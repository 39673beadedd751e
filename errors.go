package pixeldot

import (
	"errors"
	"fmt"
)

// Validation errors. These are returned when a constructor or operation
// receives structurally invalid input.
var (
	// ErrInvalidDimension is returned when a width or height is negative.
	ErrInvalidDimension = errors.New("pixeldot: invalid dimensions")

	// ErrRaggedInput is returned when grid rows have inconsistent lengths,
	// or a row length is not a multiple of the palette key length.
	ErrRaggedInput = errors.New("pixeldot: ragged grid input")

	// ErrRaggedMap is returned when tile map rows have inconsistent lengths.
	ErrRaggedMap = errors.New("pixeldot: ragged tile map")

	// ErrInconsistentKeyLength is returned when palette keys differ in length.
	ErrInconsistentKeyLength = errors.New("pixeldot: inconsistent palette key length")

	// ErrInconsistentTileSize is returned when tiles in a set differ in size.
	ErrInconsistentTileSize = errors.New("pixeldot: inconsistent tile size")

	// ErrDuplicateKey is returned when a palette key is declared twice.
	ErrDuplicateKey = errors.New("pixeldot: duplicate palette key")

	// ErrDuplicateLayer is returned when a layer name is already in use.
	ErrDuplicateLayer = errors.New("pixeldot: duplicate layer name")

	// ErrDuplicateRegion is returned when a region name is declared twice.
	ErrDuplicateRegion = errors.New("pixeldot: duplicate region name")

	// ErrInvalidOpacity is returned when a layer opacity is outside [0, 1].
	ErrInvalidOpacity = errors.New("pixeldot: opacity out of range")

	// ErrInvalidColorFormat is returned when a hex color string cannot be parsed.
	ErrInvalidColorFormat = errors.New("pixeldot: invalid color format")

	// ErrEmptyInput is returned when a grid, tile set, or frame list is empty
	// where at least one entry is required.
	ErrEmptyInput = errors.New("pixeldot: empty input")
)

// Lookup errors.
var (
	// ErrUnknownBlendMode is returned when a blend mode is not one of the
	// defined modes. Detected when the layer is added, not at flatten time.
	ErrUnknownBlendMode = errors.New("pixeldot: unknown blend mode")

	// ErrUnknownRegion is returned when a composed part names no declared region.
	ErrUnknownRegion = errors.New("pixeldot: unknown region name")

	// ErrUnknownLayer is returned when a layer name is not in the stack.
	ErrUnknownLayer = errors.New("pixeldot: unknown layer name")
)

// Bounds errors.
var (
	// ErrOutOfBounds is returned when coordinates or a rectangle fall outside
	// the buffer.
	ErrOutOfBounds = errors.New("pixeldot: coordinates out of bounds")

	// ErrDimensionMismatch is returned when a sprite's size differs from the
	// size its container declares.
	ErrDimensionMismatch = errors.New("pixeldot: dimension mismatch")

	// ErrMissingRegion is returned when a declared region has no supplied part.
	ErrMissingRegion = errors.New("pixeldot: missing region part")
)

// UnknownGlyphError reports a grid key with no palette entry. X and Y are
// pixel coordinates, not character columns.
type UnknownGlyphError struct {
	Key string
	X   int
	Y   int
}

func (e *UnknownGlyphError) Error() string {
	return fmt.Sprintf("pixeldot: key %q at (%d, %d) not in palette", e.Key, e.X, e.Y)
}

// NoMatchingGlyphError reports a pixel color with no palette entry during
// serialization.
type NoMatchingGlyphError struct {
	Color Color
	X     int
	Y     int
}

func (e *NoMatchingGlyphError) Error() string {
	return fmt.Sprintf("pixeldot: color %s at (%d, %d) has no palette entry", e.Color.Hex(), e.X, e.Y)
}

// UnknownTileError reports a tile map character with no tile set entry.
// X and Y are grid cell coordinates.
type UnknownTileError struct {
	Key rune
	X   int
	Y   int
}

func (e *UnknownTileError) Error() string {
	return fmt.Sprintf("pixeldot: tile %q at grid (%d, %d) not in tile set", e.Key, e.X, e.Y)
}
