package batch

// Mode mirrors the root package's blend mode numbering.
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeMultiply
	ModeScreen
	ModeOverlay
	ModeAdd
	ModeSubtract
)

// BlendRow blends src onto dst in place for len(src)/4 pixels using the
// given mode and layer opacity. Pixels whose effective source alpha is zero
// are skipped, matching the scalar flatten loop.
func BlendRow(dst, src []byte, mode Mode, opacity float64) {
	n := len(src) / 4
	for i := 0; i < n; i++ {
		if src[i*4+3] == 0 {
			continue
		}
		blendPixel(dst[i*4:i*4+4], src[i*4:i*4+4], mode, opacity)
	}
}

// blendPixel mirrors the scalar blend arithmetic exactly: blend-mode math
// on normalized color channels, then source-over with the effective alpha.
func blendPixel(dst, src []byte, mode Mode, opacity float64) {
	sa := float64(src[3]) / 255.0 * opacity
	if sa == 0 {
		return
	}
	da := float64(dst[3]) / 255.0

	if mode == ModeNormal {
		outA := sa + da*(1.0-sa)
		if outA == 0 {
			dst[0], dst[1], dst[2], dst[3] = 0, 0, 0, 0
			return
		}
		dst[0] = uint8((float64(src[0])*sa + float64(dst[0])*da*(1.0-sa)) / outA)
		dst[1] = uint8((float64(src[1])*sa + float64(dst[1])*da*(1.0-sa)) / outA)
		dst[2] = uint8((float64(src[2])*sa + float64(dst[2])*da*(1.0-sa)) / outA)
		dst[3] = uint8(outA * 255.0)
		return
	}

	sr, sg, sb := float64(src[0])/255.0, float64(src[1])/255.0, float64(src[2])/255.0
	dr, dg, db := float64(dst[0])/255.0, float64(dst[1])/255.0, float64(dst[2])/255.0

	br := blendChannel(dr, sr, mode)
	bg := blendChannel(dg, sg, mode)
	bb := blendChannel(db, sb, mode)

	outA := sa + da*(1.0-sa)
	if outA == 0 {
		dst[0], dst[1], dst[2], dst[3] = 0, 0, 0, 0
		return
	}
	dst[0] = uint8((br*sa + dr*da*(1.0-sa)) / outA * 255.0)
	dst[1] = uint8((bg*sa + dg*da*(1.0-sa)) / outA * 255.0)
	dst[2] = uint8((bb*sa + db*da*(1.0-sa)) / outA * 255.0)
	dst[3] = uint8(outA * 255.0)
}

func blendChannel(dst, src float64, mode Mode) float64 {
	switch mode {
	case ModeMultiply:
		return dst * src
	case ModeScreen:
		// Same expression as the scalar kernel: a zero source channel must
		// be an exact identity.
		return dst + src - dst*src
	case ModeOverlay:
		if dst < 0.5 {
			return 2.0 * dst * src
		}
		return 1.0 - 2.0*(1.0-dst)*(1.0-src)
	case ModeAdd:
		v := dst + src
		if v > 1.0 {
			return 1.0
		}
		return v
	case ModeSubtract:
		v := dst - src
		if v < 0.0 {
			return 0.0
		}
		return v
	default:
		return src
	}
}
