package widgets

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/displaylayout/pkg/graphics"
)

// DefaultFace is the bitmap font used when a widget has no Face set.
var DefaultFace font.Face = basicfont.Face7x13

func faceOr(face font.Face) font.Face {
	if face != nil {
		return face
	}
	return DefaultFace
}

// fillRect paints r with c, skipping empty rects and transparent colors.
func fillRect(dst draw.Image, r image.Rectangle, c graphics.Color) {
	if r.Empty() || c.IsTransparent() {
		return
	}
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// strokeRect paints a 1 pixel outline just inside r.
func strokeRect(dst draw.Image, r image.Rectangle, c graphics.Color) {
	if r.Empty() || c.IsTransparent() {
		return
	}
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), c)
	fillRect(dst, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), c)
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), c)
	fillRect(dst, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), c)
}

// measureText returns the pixel size of a single line of text.
func measureText(face font.Face, text string) image.Point {
	m := face.Metrics()
	return image.Point{
		X: font.MeasureString(face, text).Ceil(),
		Y: (m.Ascent + m.Descent).Ceil(),
	}
}

// drawText draws text with its top-left corner at topLeft.
func drawText(dst draw.Image, face font.Face, text string, topLeft image.Point, c graphics.Color) {
	if text == "" || c.IsTransparent() {
		return
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(topLeft.X, topLeft.Y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}

// drawTextCentered draws text centered inside r, clipped to r.
func drawTextCentered(dst draw.Image, face font.Face, text string, r image.Rectangle, c graphics.Color) {
	if r.Empty() {
		return
	}
	size := measureText(face, text)
	at := image.Point{
		X: r.Min.X + (r.Dx()-size.X)/2,
		Y: r.Min.Y + (r.Dy()-size.Y)/2,
	}
	drawText(clipImage{Image: dst, clip: r}, face, text, at, c)
}

// clipImage drops writes outside clip.
type clipImage struct {
	draw.Image
	clip image.Rectangle
}

func (c clipImage) Bounds() image.Rectangle {
	return c.Image.Bounds().Intersect(c.clip)
}
