package widgets

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/go-drift/displaylayout/pkg/graphics"
)

// Box is a plain rectangle whose width and height are set independently.
type Box struct {
	Fill    graphics.Color
	Outline graphics.Color

	x, y          int
	width, height int
}

// NewBox creates a box filled with fill.
func NewBox(fill graphics.Color) *Box {
	return &Box{Fill: fill}
}

// SetWidth sets the width in pixels.
func (b *Box) SetWidth(width int) { b.width = width }

// SetHeight sets the height in pixels.
func (b *Box) SetHeight(height int) { b.height = height }

// Size returns the box size.
func (b *Box) Size() image.Point { return image.Pt(b.width, b.height) }

// SetPosition moves the top-left corner.
func (b *Box) SetPosition(x, y int) { b.x, b.y = x, y }

// Position returns the top-left corner.
func (b *Box) Position() image.Point { return image.Pt(b.x, b.y) }

// Bounds implements scene.Node.
func (b *Box) Bounds() image.Rectangle {
	return graphics.RectFromXYWH(b.x, b.y, b.width, b.height)
}

// Draw implements scene.Node.
func (b *Box) Draw(dst draw.Image, offset image.Point) {
	r := b.Bounds().Add(offset)
	fillRect(dst, r, b.Fill)
	strokeRect(dst, r, b.Outline)
}
