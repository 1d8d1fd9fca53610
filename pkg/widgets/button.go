package widgets

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"

	"github.com/go-drift/displaylayout/pkg/graphics"
)

// Button is a filled rectangle with a centered caption. A layout resizes it
// with Resize to fill its cell.
type Button struct {
	// Label is the caption.
	Label string
	// Fill is the background color.
	Fill graphics.Color
	// Outline is the 1 pixel border color. Transparent disables the border.
	Outline graphics.Color
	// TextColor is the caption color.
	TextColor graphics.Color
	// Face is the caption font face. Defaults to DefaultFace.
	Face font.Face

	x, y          int
	width, height int
}

// NewButton creates a button of the given initial size with a white outline
// and caption on a dark fill.
func NewButton(label string, width, height int) *Button {
	return &Button{
		Label:     label,
		Fill:      graphics.RGB(0x30, 0x30, 0x30),
		Outline:   graphics.ColorWhite,
		TextColor: graphics.ColorWhite,
		width:     width,
		height:    height,
	}
}

// WithColors sets fill, outline and caption colors and returns the button.
func (b *Button) WithColors(fill, outline, text graphics.Color) *Button {
	b.Fill = fill
	b.Outline = outline
	b.TextColor = text
	return b
}

// Resize sets the button size.
func (b *Button) Resize(width, height int) {
	b.width, b.height = width, height
}

// Size returns the button size.
func (b *Button) Size() image.Point {
	return image.Pt(b.width, b.height)
}

// SetPosition moves the top-left corner.
func (b *Button) SetPosition(x, y int) {
	b.x, b.y = x, y
}

// Position returns the top-left corner.
func (b *Button) Position() image.Point {
	return image.Pt(b.x, b.y)
}

// Bounds implements scene.Node.
func (b *Button) Bounds() image.Rectangle {
	return graphics.RectFromXYWH(b.x, b.y, b.width, b.height)
}

// Draw implements scene.Node.
func (b *Button) Draw(dst draw.Image, offset image.Point) {
	r := b.Bounds().Add(offset)
	if r.Empty() {
		return
	}
	fillRect(dst, r, b.Fill)
	strokeRect(dst, r, b.Outline)
	drawTextCentered(dst, faceOr(b.Face), b.Label, r, b.TextColor)
}

// Describe implements scene.Describer.
func (b *Button) Describe() map[string]any {
	return map[string]any{"label": b.Label}
}
