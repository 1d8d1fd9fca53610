package layout

import (
	"image"

	"github.com/go-drift/displaylayout/pkg/scene"
)

// Resizer is content that can be resized with an explicit call.
type Resizer interface {
	Resize(width, height int)
}

// Dimensioned is content with independently settable width and height.
type Dimensioned interface {
	SetWidth(width int)
	SetHeight(height int)
}

// PlainPositionable is content positioned by its top-left corner.
type PlainPositionable interface {
	SetPosition(x, y int)
	Position() image.Point
}

// AnchoredPositionable is content positioned by an anchor point, given as a
// fraction of its size, and the pixel location that anchor should land on.
type AnchoredPositionable interface {
	SetAnchorPoint(ax, ay float64)
	SetAnchoredPosition(x, y int)
	AnchoredPosition() image.Point
}

type sizing int

const (
	sizeFixed sizing = iota
	sizeResize
	sizeDimensions
)

func (s sizing) String() string {
	switch s {
	case sizeResize:
		return "resize"
	case sizeDimensions:
		return "dimensions"
	default:
		return "fixed"
	}
}

type positioning int

const (
	positionNone positioning = iota
	positionPlain
	positionAnchored
)

func (p positioning) String() string {
	switch p {
	case positionPlain:
		return "plain"
	case positionAnchored:
		return "anchored"
	default:
		return "none"
	}
}

// capabilities records how a piece of content is sized and positioned.
// It is resolved once when the content is registered.
type capabilities struct {
	sizing      sizing
	positioning positioning
}

func capabilitiesOf(content scene.Node) capabilities {
	var c capabilities
	switch content.(type) {
	case Resizer:
		c.sizing = sizeResize
	case Dimensioned:
		c.sizing = sizeDimensions
	}
	switch content.(type) {
	case AnchoredPositionable:
		c.positioning = positionAnchored
	case PlainPositionable:
		c.positioning = positionPlain
	}
	return c
}

// applySize hands the measured cell size to content. Fixed-size content keeps
// whatever size it already has.
func (c capabilities) applySize(content scene.Node, size image.Point) {
	switch c.sizing {
	case sizeResize:
		content.(Resizer).Resize(size.X, size.Y)
	case sizeDimensions:
		d := content.(Dimensioned)
		d.SetWidth(size.X)
		d.SetHeight(size.Y)
	}
}

// applyPosition moves content to origin and returns the top-left corner the
// content reports afterwards. The anchored and plain paths are exclusive.
func (c capabilities) applyPosition(content scene.Node, origin image.Point) image.Point {
	switch c.positioning {
	case positionAnchored:
		a := content.(AnchoredPositionable)
		a.SetAnchorPoint(0, 0)
		a.SetAnchoredPosition(origin.X, origin.Y)
		return a.AnchoredPosition()
	case positionPlain:
		p := content.(PlainPositionable)
		p.SetPosition(origin.X, origin.Y)
		return p.Position()
	}
	return origin
}
