package batch

import (
	"bytes"
	"testing"
)

func TestReverseRow(t *testing.T) {
	src := []byte{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
	}
	dst := make([]byte, len(src))
	ReverseRow(dst, src)
	want := []byte{
		9, 10, 11, 12,
		5, 6, 7, 8,
		1, 2, 3, 4,
	}
	if !bytes.Equal(dst, want) {
		t.Errorf("ReverseRow = %v, want %v", dst, want)
	}
}

func TestReverseRow_SinglePixel(t *testing.T) {
	src := []byte{1, 2, 3, 4}
	dst := make([]byte, 4)
	ReverseRow(dst, src)
	if !bytes.Equal(dst, src) {
		t.Errorf("ReverseRow = %v, want %v", dst, src)
	}
}

func TestReplaceRow(t *testing.T) {
	row := []byte{
		1, 2, 3, 4,
		5, 6, 7, 8,
		1, 2, 3, 4,
	}
	ReplaceRow(row, [4]byte{1, 2, 3, 4}, [4]byte{9, 9, 9, 9})
	want := []byte{
		9, 9, 9, 9,
		5, 6, 7, 8,
		9, 9, 9, 9,
	}
	if !bytes.Equal(row, want) {
		t.Errorf("ReplaceRow = %v, want %v", row, want)
	}
}

// TestReplaceRow_StraddlingMatch: a byte pattern that appears across a
// pixel boundary must not be rewritten.
func TestReplaceRow_StraddlingMatch(t *testing.T) {
	// Pixels (0,0,1,2) and (3,4,0,0): bytes 1,2,3,4 appear at offset 2,
	// straddling the boundary.
	row := []byte{
		0, 0, 1, 2,
		3, 4, 0, 0,
	}
	orig := append([]byte(nil), row...)
	ReplaceRow(row, [4]byte{1, 2, 3, 4}, [4]byte{9, 9, 9, 9})
	if !bytes.Equal(row, orig) {
		t.Errorf("straddling match was rewritten: %v", row)
	}
}

// TestReplaceRow_AlignedAfterStraddle: an aligned match following a
// straddling one is still found.
func TestReplaceRow_AlignedAfterStraddle(t *testing.T) {
	row := []byte{
		0, 0, 1, 2,
		3, 4, 0, 0,
		1, 2, 3, 4,
	}
	ReplaceRow(row, [4]byte{1, 2, 3, 4}, [4]byte{9, 9, 9, 9})
	want := []byte{
		0, 0, 1, 2,
		3, 4, 0, 0,
		9, 9, 9, 9,
	}
	if !bytes.Equal(row, want) {
		t.Errorf("ReplaceRow = %v, want %v", row, want)
	}
}

func TestOpaqueSpan(t *testing.T) {
	cases := []struct {
		name        string
		row         []byte
		first, last int
	}{
		{"all transparent", make([]byte, 16), -1, -1},
		{"single", []byte{0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0}, 1, 1},
		{"span", []byte{0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 255}, 1, 3},
		{"edges", []byte{1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1}, 0, 2},
		{"empty row", nil, -1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			first, last := OpaqueSpan(tc.row)
			if first != tc.first || last != tc.last {
				t.Errorf("OpaqueSpan = (%d, %d), want (%d, %d)", first, last, tc.first, tc.last)
			}
		})
	}
}

func TestSourceOverRow_Runs(t *testing.T) {
	// opaque, transparent, partial source pixels over an opaque row.
	dst := []byte{
		10, 10, 10, 255,
		20, 20, 20, 255,
		0, 0, 255, 255,
	}
	src := []byte{
		200, 0, 0, 255,
		1, 2, 3, 0,
		255, 0, 0, 128,
	}
	SourceOverRow(dst, src)

	if dst[0] != 200 || dst[3] != 255 {
		t.Errorf("opaque run pixel = %v", dst[:4])
	}
	if dst[4] != 20 || dst[5] != 20 || dst[6] != 20 || dst[7] != 255 {
		t.Errorf("transparent run pixel = %v", dst[4:8])
	}
	// Half red over opaque blue, truncating non-premultiplied over.
	if dst[8] != 128 || dst[9] != 0 || dst[10] != 127 || dst[11] != 255 {
		t.Errorf("partial pixel = %v, want [128 0 127 255]", dst[8:12])
	}
}

func TestBlendRow_SkipsTransparentSource(t *testing.T) {
	dst := []byte{7, 8, 9, 100}
	src := []byte{255, 255, 255, 0}
	BlendRow(dst, src, ModeMultiply, 1.0)
	if dst[0] != 7 || dst[1] != 8 || dst[2] != 9 || dst[3] != 100 {
		t.Errorf("transparent source changed dst: %v", dst)
	}
}

func TestBlendRow_MultiplyWhiteIdentity(t *testing.T) {
	dst := []byte{40, 80, 120, 255}
	src := []byte{255, 255, 255, 255}
	BlendRow(dst, src, ModeMultiply, 1.0)
	if dst[0] != 40 || dst[1] != 80 || dst[2] != 120 || dst[3] != 255 {
		t.Errorf("multiply by white changed dst: %v", dst)
	}
}

func TestBlendRow_ZeroOpacity(t *testing.T) {
	dst := []byte{1, 2, 3, 4}
	src := []byte{200, 200, 200, 200}
	BlendRow(dst, src, ModeNormal, 0.0)
	if dst[0] != 1 || dst[1] != 2 || dst[2] != 3 || dst[3] != 4 {
		t.Errorf("zero opacity changed dst: %v", dst)
	}
}
