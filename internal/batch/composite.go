package batch

// SourceOverRow composites src over dst in place for len(src)/4 pixels.
// Both slices must hold at least the same number of pixels.
//
// The row is processed as runs: consecutive fully opaque source pixels are
// block-copied, consecutive fully transparent pixels are skipped, and only
// mixed-alpha pixels take the per-pixel compositing path.
func SourceOverRow(dst, src []byte) {
	n := len(src) / 4
	i := 0
	for i < n {
		a := src[i*4+3]
		switch a {
		case 255:
			run := i
			for run < n && src[run*4+3] == 255 {
				run++
			}
			copy(dst[i*4:run*4], src[i*4:run*4])
			i = run
		case 0:
			run := i
			for run < n && src[run*4+3] == 0 {
				run++
			}
			i = run
		default:
			compositePixel(dst[i*4:i*4+4], src[i*4:i*4+4])
			i++
		}
	}
}

// compositePixel applies the source-over formula to a single pixel. The
// arithmetic mirrors the scalar implementation exactly.
func compositePixel(dst, src []byte) {
	sa := float64(src[3]) / 255.0
	da := float64(dst[3]) / 255.0
	outA := sa + da*(1.0-sa)
	if outA == 0 {
		dst[0], dst[1], dst[2], dst[3] = 0, 0, 0, 0
		return
	}
	dst[0] = uint8((float64(src[0])*sa + float64(dst[0])*da*(1.0-sa)) / outA)
	dst[1] = uint8((float64(src[1])*sa + float64(dst[1])*da*(1.0-sa)) / outA)
	dst[2] = uint8((float64(src[2])*sa + float64(dst[2])*da*(1.0-sa)) / outA)
	dst[3] = uint8(outA * 255.0)
}
