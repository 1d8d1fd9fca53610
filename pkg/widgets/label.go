package widgets

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"

	"github.com/go-drift/displaylayout/pkg/graphics"
)

// Label is a single line of text. Its size follows the text; it is placed by
// an anchor point, a fraction of its size in [0, 1] on each axis, and the
// pixel position that anchor lands on.
type Label struct {
	// Text is the string drawn.
	Text string
	// Color is the text color. Defaults to white.
	Color graphics.Color
	// Background fills the label bounds when not transparent.
	Background graphics.Color
	// Face is the font face. Defaults to DefaultFace.
	Face font.Face

	anchorX, anchorY float64
	anchored         image.Point
}

// NewLabel creates a white label anchored at its top-left corner.
func NewLabel(text string) *Label {
	return &Label{Text: text, Color: graphics.ColorWhite}
}

// WithColor sets the text color and returns the label.
func (l *Label) WithColor(c graphics.Color) *Label {
	l.Color = c
	return l
}

// WithBackground sets the background color and returns the label.
func (l *Label) WithBackground(c graphics.Color) *Label {
	l.Background = c
	return l
}

// Size returns the measured text size.
func (l *Label) Size() image.Point {
	return measureText(faceOr(l.Face), l.Text)
}

// SetAnchorPoint sets the anchor as a fraction of the label size. Values are
// clamped to [0, 1].
func (l *Label) SetAnchorPoint(ax, ay float64) {
	l.anchorX, l.anchorY = clamp01(ax), clamp01(ay)
}

// AnchorPoint returns the anchor fractions.
func (l *Label) AnchorPoint() (ax, ay float64) {
	return l.anchorX, l.anchorY
}

// SetAnchoredPosition sets where the anchor point lands, in parent pixels.
func (l *Label) SetAnchoredPosition(x, y int) {
	l.anchored = image.Pt(x, y)
}

// AnchoredPosition returns where the anchor point lands.
func (l *Label) AnchoredPosition() image.Point {
	return l.anchored
}

// Bounds implements scene.Node.
func (l *Label) Bounds() image.Rectangle {
	size := l.Size()
	topLeft := image.Point{
		X: l.anchored.X - int(math.Round(l.anchorX*float64(size.X))),
		Y: l.anchored.Y - int(math.Round(l.anchorY*float64(size.Y))),
	}
	return image.Rectangle{Min: topLeft, Max: topLeft.Add(size)}
}

// Draw implements scene.Node.
func (l *Label) Draw(dst draw.Image, offset image.Point) {
	r := l.Bounds().Add(offset)
	fillRect(dst, r, l.Background)
	drawText(dst, faceOr(l.Face), l.Text, r.Min, l.Color)
}

// Describe implements scene.Describer.
func (l *Label) Describe() map[string]any {
	return map[string]any{"text": l.Text}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
