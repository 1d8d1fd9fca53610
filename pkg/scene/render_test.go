package scene

import (
	"image"
	"testing"

	"github.com/go-drift/displaylayout/pkg/errors"
	"github.com/go-drift/displaylayout/pkg/graphics"
)

func TestRender_DrawsTileGridsInGroupOrigin(t *testing.T) {
	root := NewGroup(0, 0)
	inner := NewGroup(2, 1)
	inner.Append(whiteLine(3, 1, 0, 0))
	root.Append(inner)

	img, err := Render(root, 8, 4, graphics.ColorBlack)
	if err != nil {
		t.Fatal(err)
	}
	for x := 0; x < 8; x++ {
		want := uint32(graphics.ColorBlack)
		if x >= 2 && x < 5 {
			want = uint32(graphics.ColorWhite)
		}
		if got := packRGBA(img, x, 1); got != want {
			t.Errorf("pixel (%d,1) = %#08x, want %#08x", x, got, want)
		}
	}
	if got := packRGBA(img, 2, 0); got != uint32(graphics.ColorBlack) {
		t.Errorf("row 0 should be background, got %#08x", got)
	}
}

func TestRender_TransparentPaletteSkipped(t *testing.T) {
	root := NewGroup(0, 0)
	root.Append(NewTileGrid(NewShape(2, 2), NewPalette(1), 0, 0))
	img, err := Render(root, 2, 2, graphics.ColorBlue)
	if err != nil {
		t.Fatal(err)
	}
	if got := packRGBA(img, 0, 0); got != uint32(graphics.ColorBlue) {
		t.Errorf("transparent tile should not paint, got %#08x", got)
	}
}

func TestRender_InvalidSize(t *testing.T) {
	_, err := Render(NewGroup(0, 0), 0, 10, graphics.ColorBlack)
	if errors.KindOf(err) != errors.KindRender {
		t.Fatalf("expected render error, got %v", err)
	}
}

func TestScale(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.Set(1, 0, graphics.ColorRed)

	dst, err := Scale(src, 3, false)
	if err != nil {
		t.Fatal(err)
	}
	if dst.Bounds() != image.Rect(0, 0, 6, 3) {
		t.Fatalf("scaled bounds = %v", dst.Bounds())
	}
	if got := packRGBA(dst, 4, 2); got != uint32(graphics.ColorRed) {
		t.Errorf("nearest neighbour pixel = %#08x, want red", got)
	}
	if _, err := Scale(src, 0, false); err == nil {
		t.Error("expected error for zero factor")
	}
}

func TestPalette_Bounds(t *testing.T) {
	p := NewPalette(2)
	p.Set(1, graphics.ColorGreen)
	p.Set(5, graphics.ColorRed)
	if p.Len() != 2 || p.At(1) != graphics.ColorGreen {
		t.Errorf("unexpected palette state")
	}
	if p.At(5) != graphics.ColorTransparent || p.At(-1) != graphics.ColorTransparent {
		t.Error("out of range lookups should be transparent")
	}
	var nilPalette *Palette
	if nilPalette.At(0) != graphics.ColorTransparent {
		t.Error("nil palette should be transparent")
	}
}
