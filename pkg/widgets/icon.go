package widgets

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/go-drift/displaylayout/pkg/graphics"
)

// Icon is a fixed-size square marker. Layouts move it but never resize it.
type Icon struct {
	Color graphics.Color
	Side  int

	x, y int
}

// NewIcon creates a square icon side pixels wide.
func NewIcon(side int, c graphics.Color) *Icon {
	return &Icon{Color: c, Side: side}
}

// SetPosition moves the icon's top-left corner.
func (i *Icon) SetPosition(x, y int) { i.x, i.y = x, y }

// Position returns the icon's top-left corner.
func (i *Icon) Position() image.Point { return image.Pt(i.x, i.y) }

// Bounds implements scene.Node.
func (i *Icon) Bounds() image.Rectangle {
	return graphics.RectFromXYWH(i.x, i.y, i.Side, i.Side)
}

// Draw implements scene.Node.
func (i *Icon) Draw(dst draw.Image, offset image.Point) {
	fillRect(dst, i.Bounds().Add(offset), i.Color)
}
