package scene

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/go-drift/displaylayout/pkg/errors"
)

// Node is anything that can be placed in a scene.
type Node interface {
	// Bounds returns the area covered by the node in its parent's coordinates.
	Bounds() image.Rectangle
	// Draw paints the node onto dst, translated by offset.
	Draw(dst draw.Image, offset image.Point)
}

// ChildVisitor is implemented by nodes that have children.
type ChildVisitor interface {
	// VisitChildren calls the visitor function for each child in draw order.
	VisitChildren(visitor func(Node))
}

// Group is an ordered container of nodes positioned at an origin.
// Children are drawn relative to the origin in append order.
type Group struct {
	x, y     int
	children []Node
	maxSize  int
}

// NewGroup creates an empty group at (x, y).
func NewGroup(x, y int) *Group {
	return &Group{x: x, y: y}
}

// SetMaxSize limits how many children the group accepts. Zero means no limit.
func (g *Group) SetMaxSize(n int) {
	if n < 0 {
		n = 0
	}
	g.maxSize = n
}

// MaxSize returns the child limit, zero when unlimited.
func (g *Group) MaxSize() int {
	return g.maxSize
}

// Position returns the group origin in its parent's coordinates.
func (g *Group) Position() image.Point {
	return image.Pt(g.x, g.y)
}

// SetPosition moves the group origin.
func (g *Group) SetPosition(x, y int) {
	g.x, g.y = x, y
}

// Append adds node on top of the existing children.
func (g *Group) Append(node Node) error {
	if node == nil {
		return errors.New("scene.Group.Append", errors.KindScene, ErrNilNode)
	}
	if !Comparable(node) {
		return errors.Errorf("scene.Group.Append", errors.KindScene,
			"%T: %w", node, ErrUncomparable)
	}
	if g.Contains(node) {
		return errors.New("scene.Group.Append", errors.KindScene, ErrAlreadyAttached)
	}
	if g.maxSize > 0 && len(g.children) >= g.maxSize {
		return errors.Errorf("scene.Group.Append", errors.KindScene,
			"%d children: %w", len(g.children), ErrGroupFull)
	}
	g.children = append(g.children, node)
	return nil
}

// Remove detaches node from the group.
func (g *Group) Remove(node Node) error {
	i := g.Index(node)
	if i < 0 {
		return errors.New("scene.Group.Remove", errors.KindScene, ErrNotFound)
	}
	copy(g.children[i:], g.children[i+1:])
	g.children[len(g.children)-1] = nil
	g.children = g.children[:len(g.children)-1]
	return nil
}

// Contains reports whether node is a direct child, compared by identity.
func (g *Group) Contains(node Node) bool {
	return g.Index(node) >= 0
}

// Index returns the draw-order index of node, or -1. Nodes that are not
// Comparable are never children, so they report -1.
func (g *Group) Index(node Node) int {
	if !Comparable(node) {
		return -1
	}
	for i, child := range g.children {
		if child == node {
			return i
		}
	}
	return -1
}

// Len returns the number of direct children.
func (g *Group) Len() int {
	return len(g.children)
}

// Children returns a copy of the children in draw order.
func (g *Group) Children() []Node {
	out := make([]Node, len(g.children))
	copy(out, g.children)
	return out
}

// VisitChildren implements ChildVisitor.
func (g *Group) VisitChildren(visitor func(Node)) {
	for _, child := range g.children {
		visitor(child)
	}
}

// Bounds returns the union of the children's bounds, translated by the origin.
func (g *Group) Bounds() image.Rectangle {
	var r image.Rectangle
	for _, child := range g.children {
		r = r.Union(child.Bounds())
	}
	return r.Add(image.Pt(g.x, g.y))
}

// Draw paints the children in order. A child that panics is reported and
// skipped so the rest of the scene still renders.
func (g *Group) Draw(dst draw.Image, offset image.Point) {
	origin := offset.Add(image.Pt(g.x, g.y))
	for _, child := range g.children {
		drawChild(child, dst, origin)
	}
}

func drawChild(child Node, dst draw.Image, offset image.Point) {
	defer errors.Recover("scene.Group.Draw")
	child.Draw(dst, offset)
}
