package layout

import (
	"image"

	"golang.org/x/image/draw"
)

// fakeContent records every sizing and positioning call it receives.
type fakeContent struct {
	bounds image.Rectangle

	resizeCalls    []image.Point
	widthCalls     []int
	heightCalls    []int
	positionCalls  []image.Point
	anchorCalls    [][2]float64
	anchoredCalls  []image.Point
	position       image.Point
	anchoredOrigin image.Point
}

func (f *fakeContent) Bounds() image.Rectangle { return f.bounds }

func (f *fakeContent) Draw(dst draw.Image, at image.Point) {}

// fixedContent has no sizing or positioning capability.
type fixedContent struct{ fakeContent }

// plainContent is resized with Resize and positioned by its top-left.
type plainContent struct{ fakeContent }

func (p *plainContent) Resize(w, h int) { p.resizeCalls = append(p.resizeCalls, image.Pt(w, h)) }
func (p *plainContent) SetPosition(x, y int) {
	p.positionCalls = append(p.positionCalls, image.Pt(x, y))
	p.position = image.Pt(x, y)
}
func (p *plainContent) Position() image.Point { return p.position }

func (p *plainContent) Bounds() image.Rectangle {
	var size image.Point
	if n := len(p.resizeCalls); n > 0 {
		size = p.resizeCalls[n-1]
	}
	return image.Rectangle{Min: p.position, Max: p.position.Add(size)}
}

// dimsOnly exposes SetWidth/SetHeight and plain positioning, but not Resize.
type dimsOnly struct{ fakeContent }

func (d *dimsOnly) SetWidth(w int) { d.widthCalls = append(d.widthCalls, w) }
func (d *dimsOnly) SetHeight(h int) { d.heightCalls = append(d.heightCalls, h) }
func (d *dimsOnly) SetPosition(x, y int) {
	d.positionCalls = append(d.positionCalls, image.Pt(x, y))
	d.position = image.Pt(x, y)
}
func (d *dimsOnly) Position() image.Point { return d.position }

// dualContent supports both positioning styles and both sizing styles,
// like a text label that also has plain x/y attributes.
type dualContent struct{ fakeContent }

func (d *dualContent) Resize(w, h int) { d.resizeCalls = append(d.resizeCalls, image.Pt(w, h)) }
func (d *dualContent) SetWidth(w int) { d.widthCalls = append(d.widthCalls, w) }
func (d *dualContent) SetHeight(h int) { d.heightCalls = append(d.heightCalls, h) }
func (d *dualContent) SetPosition(x, y int) {
	d.positionCalls = append(d.positionCalls, image.Pt(x, y))
}
func (d *dualContent) Position() image.Point { return d.position }
func (d *dualContent) SetAnchorPoint(ax, ay float64) {
	d.anchorCalls = append(d.anchorCalls, [2]float64{ax, ay})
}
func (d *dualContent) SetAnchoredPosition(x, y int) {
	d.anchoredCalls = append(d.anchoredCalls, image.Pt(x, y))
	d.anchoredOrigin = image.Pt(x, y)
}
func (d *dualContent) AnchoredPosition() image.Point { return d.anchoredOrigin }

// anchoredContent is fixed size and positioned by anchor only.
type anchoredContent struct{ fakeContent }

func (a *anchoredContent) SetAnchorPoint(ax, ay float64) {
	a.anchorCalls = append(a.anchorCalls, [2]float64{ax, ay})
}
func (a *anchoredContent) SetAnchoredPosition(x, y int) {
	a.anchoredCalls = append(a.anchoredCalls, image.Pt(x, y))
	a.anchoredOrigin = image.Pt(x, y)
}
func (a *anchoredContent) AnchoredPosition() image.Point { return a.anchoredOrigin }

// valueNode is a non-pointer node holding a slice, so it cannot be compared.
type valueNode struct{ tags []string }

func (v valueNode) Bounds() image.Rectangle { return image.Rectangle{} }

func (v valueNode) Draw(dst draw.Image, at image.Point) {}
