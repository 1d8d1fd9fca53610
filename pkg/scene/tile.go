package scene

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/go-drift/displaylayout/pkg/graphics"
)

// Palette is a fixed-size color table.
type Palette struct {
	colors []graphics.Color
}

// NewPalette creates a palette of n transparent entries.
func NewPalette(n int) *Palette {
	if n < 0 {
		n = 0
	}
	return &Palette{colors: make([]graphics.Color, n)}
}

// Len returns the number of entries.
func (p *Palette) Len() int {
	return len(p.colors)
}

// Set assigns entry i. Out of range indices are ignored.
func (p *Palette) Set(i int, c graphics.Color) {
	if i < 0 || i >= len(p.colors) {
		return
	}
	p.colors[i] = c
}

// At returns entry i, or transparent when i is out of range.
func (p *Palette) At(i int) graphics.Color {
	if p == nil || i < 0 || i >= len(p.colors) {
		return graphics.ColorTransparent
	}
	return p.colors[i]
}

// Shape is a filled rectangle definition of Width x Height pixels.
// A shape has no position; TileGrid places it.
type Shape struct {
	Width  int
	Height int
}

// NewShape creates a filled rectangle shape.
func NewShape(width, height int) *Shape {
	return &Shape{Width: width, Height: height}
}

// TileGrid binds a shape to a palette at a pixel position. The shape's pixels
// take palette entry 0.
type TileGrid struct {
	Shape   *Shape
	Palette *Palette
	X, Y    int
}

// NewTileGrid creates a positioned instance of shape.
func NewTileGrid(shape *Shape, palette *Palette, x, y int) *TileGrid {
	return &TileGrid{Shape: shape, Palette: palette, X: x, Y: y}
}

// Bounds implements Node.
func (t *TileGrid) Bounds() image.Rectangle {
	if t.Shape == nil {
		return image.Rectangle{}
	}
	return graphics.RectFromXYWH(t.X, t.Y, t.Shape.Width, t.Shape.Height)
}

// Draw implements Node.
func (t *TileGrid) Draw(dst draw.Image, offset image.Point) {
	r := t.Bounds()
	if r.Empty() {
		return
	}
	c := t.Palette.At(0)
	if c.IsTransparent() {
		return
	}
	draw.Draw(dst, r.Add(offset), image.NewUniform(c), image.Point{}, draw.Over)
}
