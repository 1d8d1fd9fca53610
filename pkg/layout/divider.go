package layout

import (
	"image"

	"github.com/go-drift/displaylayout/pkg/graphics"
	"github.com/go-drift/displaylayout/pkg/scene"
)

// Edge identifies which side of a cell a divider line runs along.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	default:
		return "unknown"
	}
}

// DividerSpec is the geometry of one divider line in grid-local pixels.
type DividerSpec struct {
	// Cell is the grid position of the cell the line was derived from.
	Cell image.Point
	Edge Edge
	// Rect is the 1 pixel thick line rectangle.
	Rect image.Rectangle
}

// DividerLine is a divider attached to the scene: the shared shape and the
// positioned tile drawing it.
type DividerLine struct {
	DividerSpec
	Shape *scene.Shape
	Tile  *scene.TileGrid
}

// allowList is a set of boundary indices. A nil list allows every index.
type allowList map[int]struct{}

func newAllowList(indices []int) allowList {
	if indices == nil {
		return nil
	}
	a := make(allowList, len(indices))
	for _, i := range indices {
		a[i] = struct{}{}
	}
	return a
}

func (a allowList) allows(i int) bool {
	if a == nil {
		return true
	}
	_, ok := a[i]
	return ok
}

// Dividers derives the divider lines for the placed cells, in cell order.
// Each cell contributes, in this order: its bottom edge when it reaches the
// last row, its top edge, its left edge, and its right edge when it reaches
// the last column. Every edge is subject to the row or column allow-list for
// the boundary it sits on. Lines sit CellPadding pixels outside the measured
// content rectangle.
func Dividers(cfg Config, cells []Cell) []DividerSpec {
	if !cfg.DividerLines {
		return nil
	}
	rows := newAllowList(cfg.HDividerLineRows)
	cols := newAllowList(cfg.VDividerLineCols)
	var specs []DividerSpec
	for _, c := range cells {
		if !c.Placed {
			continue
		}
		specs = append(specs, cellDividers(cfg, rows, cols, c)...)
	}
	return specs
}

func cellDividers(cfg Config, rows, cols allowList, c Cell) []DividerSpec {
	p := cfg.CellPadding
	left := c.Origin.X - p
	top := c.Origin.Y - p
	width := c.Size.X + 2*p
	height := c.Size.Y + 2*p

	bottomRow := c.Position.Y + c.Span.Y
	rightCol := c.Position.X + c.Span.X

	specs := make([]DividerSpec, 0, 4)
	add := func(e Edge, r image.Rectangle) {
		specs = append(specs, DividerSpec{Cell: c.Position, Edge: e, Rect: r})
	}
	if bottomRow == cfg.GridSize.Y && rows.allows(bottomRow) {
		add(EdgeBottom, graphics.RectFromXYWH(left, c.Origin.Y+c.Size.Y+p, width, 1))
	}
	if rows.allows(c.Position.Y) {
		add(EdgeTop, graphics.RectFromXYWH(left, top, width, 1))
	}
	if cols.allows(c.Position.X) {
		add(EdgeLeft, graphics.RectFromXYWH(left, top, 1, height))
	}
	if rightCol == cfg.GridSize.X && cols.allows(rightCol) {
		add(EdgeRight, graphics.RectFromXYWH(c.Origin.X+c.Size.X+p, top, 1, height))
	}
	return specs
}

// newDividerLines turns specs into drawables. Lines of equal size share one
// shape definition; every line gets its own tile.
func newDividerLines(specs []DividerSpec, palette *scene.Palette) []DividerLine {
	shapes := make(map[image.Point]*scene.Shape)
	lines := make([]DividerLine, 0, len(specs))
	for _, spec := range specs {
		size := spec.Rect.Size()
		shape, ok := shapes[size]
		if !ok {
			shape = scene.NewShape(size.X, size.Y)
			shapes[size] = shape
		}
		lines = append(lines, DividerLine{
			DividerSpec: spec,
			Shape:       shape,
			Tile:        scene.NewTileGrid(shape, palette, spec.Rect.Min.X, spec.Rect.Min.Y),
		})
	}
	return lines
}
