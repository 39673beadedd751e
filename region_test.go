package pixeldot

import (
	"errors"
	"testing"
)

func testLayout(t *testing.T) *RegionLayout {
	t.Helper()
	rl, err := NewRegionLayout(4, 4, []Region{
		{Name: "a", X: 0, Y: 0, W: 2, H: 2},
		{Name: "b", X: 2, Y: 2, W: 2, H: 2},
	})
	if err != nil {
		t.Fatalf("NewRegionLayout: %v", err)
	}
	return rl
}

func TestNewRegionLayout_Validation(t *testing.T) {
	if _, err := NewRegionLayout(-1, 4, nil); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("negative canvas error = %v, want ErrInvalidDimension", err)
	}
	_, err := NewRegionLayout(4, 4, []Region{
		{Name: "a", W: 1, H: 1},
		{Name: "a", X: 1, W: 1, H: 1},
	})
	if !errors.Is(err, ErrDuplicateRegion) {
		t.Errorf("duplicate name error = %v, want ErrDuplicateRegion", err)
	}
	_, err = NewRegionLayout(4, 4, []Region{{Name: "a", X: 3, Y: 3, W: 2, H: 2}})
	if !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("overflow error = %v, want ErrOutOfBounds", err)
	}
	_, err = NewRegionLayout(4, 4, []Region{{Name: "a", W: -1, H: 1}})
	if !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("negative region error = %v, want ErrInvalidDimension", err)
	}
}

// TestRegion_ComposeDecomposeRoundTrip: two disjoint solid parts survive a
// compose/decompose cycle unchanged.
func TestRegion_ComposeDecomposeRoundTrip(t *testing.T) {
	rl := testLayout(t)
	red := mustFilled(t, 2, 2, RGB(255, 0, 0))
	blue := mustFilled(t, 2, 2, RGB(0, 0, 255))

	canvas, err := rl.Compose(map[string]*Sprite{"a": red, "b": blue})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if canvas.Width() != 4 || canvas.Height() != 4 {
		t.Fatalf("canvas size = %dx%d, want 4x4", canvas.Width(), canvas.Height())
	}
	if c, _ := canvas.Get(0, 0); c != RGB(255, 0, 0) {
		t.Errorf("region a pixel = %v, want red", c)
	}
	if c, _ := canvas.Get(3, 3); c != RGB(0, 0, 255) {
		t.Errorf("region b pixel = %v, want blue", c)
	}
	if c, _ := canvas.Get(3, 0); c != Transparent {
		t.Errorf("uncovered pixel = %v, want transparent", c)
	}

	parts, err := rl.Decompose(canvas)
	if err != nil {
		t.Fatalf("Decompose: %v", err)
	}
	if !parts["a"].Equal(red) {
		t.Error("part a changed in the round trip")
	}
	if !parts["b"].Equal(blue) {
		t.Error("part b changed in the round trip")
	}
}

func TestRegion_ComposeUnknownPart(t *testing.T) {
	rl := testLayout(t)
	parts := map[string]*Sprite{
		"a": mustFilled(t, 2, 2, Black),
		"b": mustFilled(t, 2, 2, Black),
		"x": mustFilled(t, 2, 2, Black),
	}
	if _, err := rl.Compose(parts); !errors.Is(err, ErrUnknownRegion) {
		t.Errorf("error = %v, want ErrUnknownRegion", err)
	}
}

func TestRegion_ComposeMissingPart(t *testing.T) {
	rl := testLayout(t)
	parts := map[string]*Sprite{"a": mustFilled(t, 2, 2, Black)}
	if _, err := rl.Compose(parts); !errors.Is(err, ErrMissingRegion) {
		t.Errorf("error = %v, want ErrMissingRegion", err)
	}
}

// TestRegion_ComposeOversizePartCropped: a part larger than its region is
// cropped to the region size instead of bleeding into neighbors.
func TestRegion_ComposeOversizePartCropped(t *testing.T) {
	rl := testLayout(t)
	big := mustFilled(t, 4, 4, RGB(255, 0, 0))
	canvas, err := rl.Compose(map[string]*Sprite{
		"a": big,
		"b": mustFilled(t, 2, 2, RGB(0, 0, 255)),
	})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if c, _ := canvas.Get(1, 1); c != RGB(255, 0, 0) {
		t.Errorf("inside region a = %v, want red", c)
	}
	if c, _ := canvas.Get(2, 0); c != Transparent {
		t.Errorf("outside region a = %v, want transparent", c)
	}
}

// TestRegion_ComposeSmallPart: a part smaller than its region covers only
// its own extent.
func TestRegion_ComposeSmallPart(t *testing.T) {
	rl := testLayout(t)
	canvas, err := rl.Compose(map[string]*Sprite{
		"a": mustFilled(t, 1, 1, RGB(255, 0, 0)),
		"b": mustFilled(t, 2, 2, RGB(0, 0, 255)),
	})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if c, _ := canvas.Get(0, 0); c != RGB(255, 0, 0) {
		t.Errorf("covered pixel = %v, want red", c)
	}
	if c, _ := canvas.Get(1, 1); c != Transparent {
		t.Errorf("uncovered region pixel = %v, want transparent", c)
	}
}

// TestRegion_OverlapZOrder: overlapping regions paint in declaration order,
// so the later region wins.
func TestRegion_OverlapZOrder(t *testing.T) {
	rl, err := NewRegionLayout(2, 2, []Region{
		{Name: "under", X: 0, Y: 0, W: 2, H: 2},
		{Name: "over", X: 0, Y: 0, W: 1, H: 1},
	})
	if err != nil {
		t.Fatalf("NewRegionLayout: %v", err)
	}
	canvas, err := rl.Compose(map[string]*Sprite{
		"under": mustFilled(t, 2, 2, Black),
		"over":  mustFilled(t, 1, 1, White),
	})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if c, _ := canvas.Get(0, 0); c != White {
		t.Errorf("overlapped pixel = %v, want white", c)
	}
	if c, _ := canvas.Get(1, 1); c != Black {
		t.Errorf("non-overlapped pixel = %v, want black", c)
	}
}

func TestRegion_DecomposeSizeMismatch(t *testing.T) {
	rl := testLayout(t)
	if _, err := rl.Decompose(mustFilled(t, 3, 4, Black)); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("error = %v, want ErrDimensionMismatch", err)
	}
}

func TestRegion_Regions(t *testing.T) {
	rl := testLayout(t)
	regions := rl.Regions()
	if len(regions) != 2 || regions[0].Name != "a" || regions[1].Name != "b" {
		t.Errorf("Regions() = %+v", regions)
	}
	if w, h := rl.CanvasSize(); w != 4 || h != 4 {
		t.Errorf("CanvasSize() = %dx%d, want 4x4", w, h)
	}
}
