package batch

import "bytes"

// ReverseRow writes the pixels of src into dst in reverse order. The
// slices must not overlap and must hold the same number of pixels.
func ReverseRow(dst, src []byte) {
	n := len(src) / 4
	for i := 0; i < n; i++ {
		copy(dst[(n-1-i)*4:(n-i)*4], src[i*4:i*4+4])
	}
}

// ReplaceRow rewrites every pixel in row that exactly equals old with new,
// in place. bytes.Index is used to skip non-matching stretches quickly;
// matches are verified for pixel alignment before being rewritten.
func ReplaceRow(row []byte, old, new [4]byte) {
	off := 0
	for off+4 <= len(row) {
		i := bytes.Index(row[off:], old[:])
		if i < 0 {
			return
		}
		pos := off + i
		if pos%4 != 0 {
			// Match straddles a pixel boundary; realign to the next pixel.
			off = pos + (4 - pos%4)
			continue
		}
		copy(row[pos:pos+4], new[:])
		off = pos + 4
	}
}

// OpaqueSpan returns the first and last pixel index in the row with
// alpha > 0, or (-1, -1) when the row is fully transparent.
func OpaqueSpan(row []byte) (first, last int) {
	n := len(row) / 4
	first, last = -1, -1
	for i := 0; i < n; i++ {
		if row[i*4+3] > 0 {
			first = i
			break
		}
	}
	if first < 0 {
		return -1, -1
	}
	for i := n - 1; i >= first; i-- {
		if row[i*4+3] > 0 {
			last = i
			break
		}
	}
	return first, last
}
