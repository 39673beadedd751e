package pixeldot

import "fmt"

// BlendMode selects the per-channel function applied to color channels
// before source-over alpha compositing during layer flattening. The alpha
// channel always follows the source-over formula; blend math affects color
// channels only.
type BlendMode uint8

const (
	// BlendNormal composites the source color unchanged.
	BlendNormal BlendMode = iota
	// BlendMultiply multiplies destination and source: dst * src.
	BlendMultiply
	// BlendScreen inverts, multiplies, inverts: 1 - (1-dst)*(1-src).
	BlendScreen
	// BlendOverlay multiplies or screens depending on the destination.
	BlendOverlay
	// BlendAdd adds channels, saturating at 1: min(1, dst+src).
	BlendAdd
	// BlendSubtract subtracts the source, clamping at 0: max(0, dst-src).
	BlendSubtract

	blendModeCount
)

var blendModeNames = [...]string{
	BlendNormal:   "normal",
	BlendMultiply: "multiply",
	BlendScreen:   "screen",
	BlendOverlay:  "overlay",
	BlendAdd:      "add",
	BlendSubtract: "subtract",
}

// Valid reports whether the mode is one of the defined blend modes.
func (m BlendMode) Valid() bool {
	return m < blendModeCount
}

// String returns the lowercase mode name, e.g. "multiply".
func (m BlendMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("BlendMode(%d)", uint8(m))
	}
	return blendModeNames[m]
}

// ParseBlendMode parses a lowercase mode name as used in spec documents.
// Returns ErrUnknownBlendMode for unrecognized names.
func ParseBlendMode(name string) (BlendMode, error) {
	for m, n := range blendModeNames {
		if n == name {
			return BlendMode(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBlendMode, name)
}

// blendPixel composites a single source pixel onto a destination pixel
// using the given blend mode and layer opacity. The effective source alpha
// is src.A * opacity; a zero effective alpha leaves the destination
// untouched.
func blendPixel(dst, src Color, mode BlendMode, opacity float64) Color {
	sa := float64(src.A) / 255.0 * opacity
	if sa == 0 {
		return dst
	}
	da := float64(dst.A) / 255.0

	if mode == BlendNormal {
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

	sr, sg, sb := float64(src.R)/255.0, float64(src.G)/255.0, float64(src.B)/255.0
	dr, dg, db := float64(dst.R)/255.0, float64(dst.G)/255.0, float64(dst.B)/255.0

	br := blendChannel(dr, sr, mode)
	bg := blendChannel(dg, sg, mode)
	bb := blendChannel(db, sb, mode)

	// The blended color takes the source's place in the standard
	// source-over composite.
	outA := sa + da*(1.0-sa)
	if outA == 0 {
		return Color{}
	}
	return Color{
		R: uint8((br*sa + dr*da*(1.0-sa)) / outA * 255.0),
		G: uint8((bg*sa + dg*da*(1.0-sa)) / outA * 255.0),
		B: uint8((bb*sa + db*da*(1.0-sa)) / outA * 255.0),
		A: uint8(outA * 255.0),
	}
}

// blendChannel applies the per-channel blend function on normalized [0,1]
// values. BlendNormal is handled by the caller.
func blendChannel(dst, src float64, mode BlendMode) float64 {
	switch mode {
	case BlendMultiply:
		return dst * src
	case BlendScreen:
		// Written as dst + src - dst*src rather than 1-(1-dst)*(1-src) so
		// that a zero source channel is an exact identity.
		return dst + src - dst*src
	case BlendOverlay:
		if dst < 0.5 {
			return 2.0 * dst * src
		}
		return 1.0 - 2.0*(1.0-dst)*(1.0-src)
	case BlendAdd:
		v := dst + src
		if v > 1.0 {
			return 1.0
		}
		return v
	case BlendSubtract:
		v := dst - src
		if v < 0.0 {
			return 0.0
		}
		return v
	default:
		return src
	}
}
