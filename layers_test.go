package pixeldot

import (
	"errors"
	"testing"
)

func newTestStack(t *testing.T, w, h int) *LayerStack {
	t.Helper()
	ls, err := NewLayerStack(w, h)
	if err != nil {
		t.Fatalf("NewLayerStack(%d, %d): %v", w, h, err)
	}
	return ls
}

func TestLayerStack_AddLayer(t *testing.T) {
	ls := newTestStack(t, 2, 2)
	if err := ls.AddLayer("bg", mustFilled(t, 2, 2, Black)); err != nil {
		t.Fatalf("AddLayer: %v", err)
	}
	if err := ls.AddLayer("fg", mustFilled(t, 2, 2, White)); err != nil {
		t.Fatalf("AddLayer: %v", err)
	}
	names := ls.LayerNames()
	if len(names) != 2 || names[0] != "bg" || names[1] != "fg" {
		t.Errorf("LayerNames() = %v, want [bg fg]", names)
	}
}

func TestLayerStack_AddLayerValidation(t *testing.T) {
	ls := newTestStack(t, 2, 2)
	sp := mustFilled(t, 2, 2, Black)
	if err := ls.AddLayer("a", sp); err != nil {
		t.Fatalf("AddLayer: %v", err)
	}

	if err := ls.AddLayer("a", sp); !errors.Is(err, ErrDuplicateLayer) {
		t.Errorf("duplicate name error = %v, want ErrDuplicateLayer", err)
	}
	if err := ls.AddLayer("b", mustFilled(t, 3, 2, Black)); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("size mismatch error = %v, want ErrDimensionMismatch", err)
	}
	if err := ls.AddLayer("b", sp, WithOpacity(1.5)); !errors.Is(err, ErrInvalidOpacity) {
		t.Errorf("opacity error = %v, want ErrInvalidOpacity", err)
	}
	if err := ls.AddLayer("b", sp, WithOpacity(-0.1)); !errors.Is(err, ErrInvalidOpacity) {
		t.Errorf("negative opacity error = %v, want ErrInvalidOpacity", err)
	}
	// Invalid blend modes are rejected here, not at flatten time.
	if err := ls.AddLayer("b", sp, WithBlendMode(BlendMode(42))); !errors.Is(err, ErrUnknownBlendMode) {
		t.Errorf("blend mode error = %v, want ErrUnknownBlendMode", err)
	}
}

func TestLayerStack_InsertLayer(t *testing.T) {
	ls := newTestStack(t, 1, 1)
	if err := ls.AddLayer("top", mustFilled(t, 1, 1, White)); err != nil {
		t.Fatal(err)
	}
	if err := ls.InsertLayer(0, "bottom", mustFilled(t, 1, 1, Black)); err != nil {
		t.Fatalf("InsertLayer: %v", err)
	}
	names := ls.LayerNames()
	if names[0] != "bottom" || names[1] != "top" {
		t.Errorf("LayerNames() = %v, want [bottom top]", names)
	}
	if err := ls.InsertLayer(5, "x", mustFilled(t, 1, 1, Black)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("bad position error = %v, want ErrOutOfBounds", err)
	}
}

func TestLayerStack_RemoveLayer(t *testing.T) {
	ls := newTestStack(t, 1, 1)
	if err := ls.AddLayer("a", mustFilled(t, 1, 1, Black)); err != nil {
		t.Fatal(err)
	}
	l, err := ls.RemoveLayer("a")
	if err != nil {
		t.Fatalf("RemoveLayer: %v", err)
	}
	if l.Name != "a" {
		t.Errorf("removed layer = %q", l.Name)
	}
	if _, err := ls.RemoveLayer("a"); !errors.Is(err, ErrUnknownLayer) {
		t.Errorf("second remove error = %v, want ErrUnknownLayer", err)
	}
}

func TestLayerStack_Reorder(t *testing.T) {
	ls := newTestStack(t, 1, 1)
	for _, n := range []string{"a", "b", "c"} {
		if err := ls.AddLayer(n, mustFilled(t, 1, 1, Black)); err != nil {
			t.Fatal(err)
		}
	}
	if err := ls.Reorder([]string{"c", "a", "b"}); err != nil {
		t.Fatalf("Reorder: %v", err)
	}
	names := ls.LayerNames()
	if names[0] != "c" || names[1] != "a" || names[2] != "b" {
		t.Errorf("LayerNames() = %v, want [c a b]", names)
	}
	if err := ls.Reorder([]string{"a", "b"}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("short reorder error = %v, want ErrDimensionMismatch", err)
	}
	if err := ls.Reorder([]string{"a", "b", "x"}); !errors.Is(err, ErrUnknownLayer) {
		t.Errorf("unknown name error = %v, want ErrUnknownLayer", err)
	}
}

func TestLayerStack_Flatten(t *testing.T) {
	ls := newTestStack(t, 2, 2)
	if err := ls.AddLayer("bg", mustFilled(t, 2, 2, RGB(0, 0, 255))); err != nil {
		t.Fatal(err)
	}
	dot, _ := Empty(2, 2)
	dot = dot.Paste(mustFilled(t, 1, 1, RGB(255, 0, 0)), 0, 0)
	if err := ls.AddLayer("fg", dot); err != nil {
		t.Fatal(err)
	}

	out := ls.Flatten()
	if c, _ := out.Get(0, 0); c != RGB(255, 0, 0) {
		t.Errorf("pixel (0, 0) = %v, want red", c)
	}
	if c, _ := out.Get(1, 1); c != RGB(0, 0, 255) {
		t.Errorf("pixel (1, 1) = %v, want blue", c)
	}
	// The stack is reusable; a second flatten matches the first.
	if !ls.Flatten().Equal(out) {
		t.Error("second Flatten differs from the first")
	}
}

// TestLayerStack_FlattenOpaqueTopWins: three fully opaque layers flatten to
// the top layer exactly.
func TestLayerStack_FlattenOpaqueTopWins(t *testing.T) {
	ls := newTestStack(t, 4, 3)
	top := randomOpaqueSprite(t, 4, 3, 21).ReplaceColor(Transparent, Black)
	if err := ls.AddLayer("a", mustFilled(t, 4, 3, RGB(1, 2, 3))); err != nil {
		t.Fatal(err)
	}
	if err := ls.AddLayer("b", mustFilled(t, 4, 3, RGB(4, 5, 6))); err != nil {
		t.Fatal(err)
	}
	if err := ls.AddLayer("c", top); err != nil {
		t.Fatal(err)
	}
	if !ls.Flatten().Equal(top) {
		t.Error("flatten of opaque layers differs from the top layer")
	}
}

func TestLayerStack_FlattenHiddenSkipped(t *testing.T) {
	ls := newTestStack(t, 1, 1)
	if err := ls.AddLayer("bg", mustFilled(t, 1, 1, Black)); err != nil {
		t.Fatal(err)
	}
	if err := ls.AddLayer("fg", mustFilled(t, 1, 1, White), Hidden()); err != nil {
		t.Fatal(err)
	}
	if c, _ := ls.Flatten().Get(0, 0); c != Black {
		t.Errorf("hidden layer leaked into flatten: %v", c)
	}
	if err := ls.SetVisible("fg", true); err != nil {
		t.Fatal(err)
	}
	if c, _ := ls.Flatten().Get(0, 0); c != White {
		t.Errorf("re-shown layer missing from flatten: %v", c)
	}
}

func TestLayerStack_FlattenOpacity(t *testing.T) {
	ls := newTestStack(t, 1, 1)
	if err := ls.AddLayer("bg", mustFilled(t, 1, 1, Black)); err != nil {
		t.Fatal(err)
	}
	if err := ls.AddLayer("fg", mustFilled(t, 1, 1, White), WithOpacity(0.5)); err != nil {
		t.Fatal(err)
	}
	if c, _ := ls.Flatten().Get(0, 0); c != RGB(127, 127, 127) {
		t.Errorf("half-opacity white over black = %v, want (127, 127, 127)", c)
	}
}

func TestLayerStack_FlattenBlendMode(t *testing.T) {
	ls := newTestStack(t, 1, 1)
	if err := ls.AddLayer("bg", mustFilled(t, 1, 1, RGB(100, 150, 200))); err != nil {
		t.Fatal(err)
	}
	if err := ls.AddLayer("fg", mustFilled(t, 1, 1, RGB(100, 100, 100)), WithBlendMode(BlendMultiply)); err != nil {
		t.Fatal(err)
	}
	if c, _ := ls.Flatten().Get(0, 0); c != RGB(39, 58, 78) {
		t.Errorf("multiply flatten = %v, want (39, 58, 78)", c)
	}
}

func TestLayerStack_FlattenEmpty(t *testing.T) {
	ls := newTestStack(t, 3, 2)
	out := ls.Flatten()
	if out.Width() != 3 || out.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", out.Width(), out.Height())
	}
	if _, ok := out.OpaqueBounds(); ok {
		t.Error("empty stack flattened to non-transparent pixels")
	}
}

func TestLayerStack_Setters(t *testing.T) {
	ls := newTestStack(t, 1, 1)
	if err := ls.AddLayer("a", mustFilled(t, 1, 1, Black)); err != nil {
		t.Fatal(err)
	}
	if err := ls.SetOpacity("a", 2.0); !errors.Is(err, ErrInvalidOpacity) {
		t.Errorf("SetOpacity error = %v, want ErrInvalidOpacity", err)
	}
	if err := ls.SetBlendMode("a", BlendMode(7)); !errors.Is(err, ErrUnknownBlendMode) {
		t.Errorf("SetBlendMode error = %v, want ErrUnknownBlendMode", err)
	}
	if err := ls.SetOpacity("x", 0.5); !errors.Is(err, ErrUnknownLayer) {
		t.Errorf("unknown layer error = %v, want ErrUnknownLayer", err)
	}
	if err := ls.SetOpacity("a", 0.25); err != nil {
		t.Fatalf("SetOpacity: %v", err)
	}
	l, err := ls.Layer("a")
	if err != nil {
		t.Fatal(err)
	}
	if l.Opacity != 0.25 {
		t.Errorf("Opacity = %v, want 0.25", l.Opacity)
	}
}
