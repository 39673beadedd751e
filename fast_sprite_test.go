package pixeldot

import (
	"errors"
	"math/rand"
	"testing"
)

// randomSprite builds a sprite with unconstrained alpha, including partial
// values, so the equivalence suite exercises every compositing path.
func randomSprite(t *testing.T, w, h int, seed int64) *Sprite {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	px := make([]Color, w*h)
	for i := range px {
		switch rng.Intn(4) {
		case 0:
			px[i] = Transparent
		case 1:
			px[i] = RGB(uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256)))
		default:
			px[i] = RGBA(uint8(rng.Intn(256)), uint8(rng.Intn(256)),
				uint8(rng.Intn(256)), uint8(rng.Intn(256)))
		}
	}
	s, err := FromPixels(w, h, px)
	if err != nil {
		t.Fatalf("FromPixels: %v", err)
	}
	return s
}

// assertMatchesScalar fails unless the fast sprite holds exactly the same
// pixels as the scalar one.
func assertMatchesScalar(t *testing.T, fast *FastSprite, scalar *Sprite, op string) {
	t.Helper()
	got := fast.ToSprite()
	if got.Width() != scalar.Width() || got.Height() != scalar.Height() {
		t.Fatalf("%s: size %dx%d, scalar %dx%d",
			op, got.Width(), got.Height(), scalar.Width(), scalar.Height())
	}
	for y := 0; y < scalar.Height(); y++ {
		for x := 0; x < scalar.Width(); x++ {
			a, _ := got.Get(x, y)
			b, _ := scalar.Get(x, y)
			if a != b {
				t.Fatalf("%s: pixel (%d, %d) = %v, scalar %v", op, x, y, a, b)
			}
		}
	}
}

func TestFastSprite_Conversion(t *testing.T) {
	s := randomSprite(t, 7, 5, 1)
	f := FastFromSprite(s)
	if !f.ToSprite().Equal(s) {
		t.Error("Sprite -> FastSprite -> Sprite round trip changed pixels")
	}
	c1, _ := s.Get(3, 2)
	c2, err := f.Get(3, 2)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if c1 != c2 {
		t.Errorf("Get(3, 2) = %v, scalar %v", c2, c1)
	}
	if _, err := f.Get(7, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("out-of-bounds Get error = %v, want ErrOutOfBounds", err)
	}
}

func TestFastSprite_CropEquivalence(t *testing.T) {
	s := randomSprite(t, 9, 6, 2)
	f := FastFromSprite(s)

	rects := []struct{ x, y, w, h int }{
		{0, 0, 9, 6},
		{2, 1, 4, 3},
		{8, 5, 1, 1},
		{3, 3, 0, 0},
	}
	for _, r := range rects {
		sc, err := s.Crop(r.x, r.y, r.w, r.h)
		if err != nil {
			t.Fatalf("scalar Crop: %v", err)
		}
		fc, err := f.Crop(r.x, r.y, r.w, r.h)
		if err != nil {
			t.Fatalf("fast Crop: %v", err)
		}
		assertMatchesScalar(t, fc, sc, "Crop")
	}
	if _, err := f.Crop(5, 5, 9, 9); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("oversize crop error = %v, want ErrOutOfBounds", err)
	}
}

// TestFastSprite_PasteEquivalence runs source-over pastes at offsets that
// exercise full overlap, partial clipping on every edge, and no overlap.
func TestFastSprite_PasteEquivalence(t *testing.T) {
	base := randomSprite(t, 8, 8, 3)
	over := randomSprite(t, 5, 4, 4)
	fBase := FastFromSprite(base)
	fOver := FastFromSprite(over)

	offsets := []struct{ x, y int }{
		{0, 0}, {2, 3}, {-2, -1}, {6, 6}, {-5, 0}, {8, 8}, {-10, -10},
	}
	for _, o := range offsets {
		want := base.Paste(over, o.x, o.y)
		got := fBase.Paste(fOver, o.x, o.y)
		assertMatchesScalar(t, got, want, "Paste")
	}
}

// TestFastSprite_PasteOpaqueAndTransparentRuns hits the fast paths for
// solid and fully transparent source stretches.
func TestFastSprite_PasteOpaqueAndTransparentRuns(t *testing.T) {
	base := randomSprite(t, 16, 2, 5)
	px := make([]Color, 16*2)
	for i := range px {
		switch {
		case i%8 < 3:
			px[i] = RGB(200, 10, 10)
		case i%8 < 6:
			px[i] = Transparent
		default:
			px[i] = RGBA(10, 200, 10, 100)
		}
	}
	over, err := FromPixels(16, 2, px)
	if err != nil {
		t.Fatalf("FromPixels: %v", err)
	}
	want := base.Paste(over, 0, 0)
	got := FastFromSprite(base).Paste(FastFromSprite(over), 0, 0)
	assertMatchesScalar(t, got, want, "Paste")
}

func TestFastSprite_FlipEquivalence(t *testing.T) {
	s := randomSprite(t, 7, 4, 6)
	f := FastFromSprite(s)
	assertMatchesScalar(t, f.FlipH(), s.FlipH(), "FlipH")
	assertMatchesScalar(t, f.FlipV(), s.FlipV(), "FlipV")
	if !f.FlipH().FlipH().Equal(f) {
		t.Error("fast FlipH applied twice is not the identity")
	}
}

func TestFastSprite_ReplaceColorEquivalence(t *testing.T) {
	s := randomOpaqueSprite(t, 6, 6, 7)
	target, _ := s.Get(2, 2)
	f := FastFromSprite(s)
	assertMatchesScalar(t, f.ReplaceColor(target, RGBA(1, 2, 3, 4)),
		s.ReplaceColor(target, RGBA(1, 2, 3, 4)), "ReplaceColor")
	assertMatchesScalar(t, f.ReplaceColor(Transparent, White),
		s.ReplaceColor(Transparent, White), "ReplaceColor transparent")
}

func TestFastSprite_TrimEquivalence(t *testing.T) {
	s, _ := Empty(8, 8)
	s = s.Paste(mustFilled(t, 2, 3, RGBA(0, 100, 0, 128)), 3, 2)
	f := FastFromSprite(s)

	sb, sok := s.OpaqueBounds()
	fb, fok := f.OpaqueBounds()
	if sok != fok || sb != fb {
		t.Errorf("OpaqueBounds: fast %+v %v, scalar %+v %v", fb, fok, sb, sok)
	}
	assertMatchesScalar(t, f.Trim(), s.Trim(), "Trim")

	clear, _ := EmptyFast(4, 4)
	if _, ok := clear.OpaqueBounds(); ok {
		t.Error("fully transparent fast sprite reported opaque bounds")
	}
	if tr := clear.Trim(); tr.Width() != 0 || tr.Height() != 0 {
		t.Errorf("transparent trim size = %dx%d, want 0x0", tr.Width(), tr.Height())
	}
}

// TestFlattenFast_Equivalence compares the batch flatten against the scalar
// one across modes, opacities, and hidden layers.
func TestFlattenFast_Equivalence(t *testing.T) {
	ls := newTestStack(t, 12, 9)
	layers := []struct {
		name string
		seed int64
		opts []LayerOption
	}{
		{"base", 10, nil},
		{"mult", 11, []LayerOption{WithBlendMode(BlendMultiply), WithOpacity(0.7)}},
		{"screen", 12, []LayerOption{WithBlendMode(BlendScreen)}},
		{"overlay", 13, []LayerOption{WithBlendMode(BlendOverlay), WithOpacity(0.4)}},
		{"add", 14, []LayerOption{WithBlendMode(BlendAdd)}},
		{"sub", 15, []LayerOption{WithBlendMode(BlendSubtract), WithOpacity(0.9)}},
		{"hidden", 16, []LayerOption{Hidden()}},
		{"half", 17, []LayerOption{WithOpacity(0.5)}},
	}
	for _, l := range layers {
		if err := ls.AddLayer(l.name, randomSprite(t, 12, 9, l.seed), l.opts...); err != nil {
			t.Fatalf("AddLayer(%s): %v", l.name, err)
		}
	}

	want := ls.Flatten()
	got := ls.FlattenFast()
	if !got.Equal(want) {
		for y := 0; y < want.Height(); y++ {
			for x := 0; x < want.Width(); x++ {
				a, _ := got.Get(x, y)
				b, _ := want.Get(x, y)
				if a != b {
					t.Fatalf("pixel (%d, %d): fast %v, scalar %v", x, y, a, b)
				}
			}
		}
	}
}

func TestFlattenFast_EmptyStack(t *testing.T) {
	ls := newTestStack(t, 3, 3)
	if !ls.FlattenFast().Equal(ls.Flatten()) {
		t.Error("empty stack flattens differ")
	}
}

func TestEmptyFast_NegativeDimension(t *testing.T) {
	if _, err := EmptyFast(-1, 2); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("error = %v, want ErrInvalidDimension", err)
	}
}

func TestFastSprite_Equal(t *testing.T) {
	a := FastFromSprite(randomSprite(t, 4, 4, 20))
	b := FastFromSprite(randomSprite(t, 4, 4, 20))
	if !a.Equal(b) {
		t.Error("same-seed fast sprites compare unequal")
	}
	c := FastFromSprite(randomSprite(t, 4, 4, 21))
	if a.Equal(c) {
		t.Error("different fast sprites compare equal")
	}
}
