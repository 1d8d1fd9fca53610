package layout

import (
	"image"
	"log/slog"
	"slices"

	"golang.org/x/image/draw"

	"github.com/go-drift/displaylayout/pkg/errors"
	"github.com/go-drift/displaylayout/pkg/graphics"
	"github.com/go-drift/displaylayout/pkg/scene"
)

const (
	opNew        = "layout.New"
	opAddContent = "layout.AddContent"
)

// Config is the fixed outer geometry of a grid.
type Config struct {
	// X and Y place the grid in its parent, in pixels.
	X, Y int
	// Width and Height are the pixel size of the grid area.
	Width, Height int
	// GridSize is the number of columns (X) and rows (Y).
	GridSize image.Point
	// CellPadding is the space kept free inside every cell edge, in pixels.
	CellPadding int
	// DividerLines enables 1 pixel lines between cells.
	DividerLines bool
	// HDividerLineRows lists the row boundaries that get horizontal lines.
	// Boundary i is the top edge of row i; boundary GridSize.Y is the bottom
	// of the grid. Nil means every boundary.
	HDividerLineRows []int
	// VDividerLineCols lists the column boundaries that get vertical lines,
	// indexed like HDividerLineRows. Nil means every boundary.
	VDividerLineCols []int
}

// Cell is one content registration and, once placed, its computed geometry.
type Cell struct {
	Content scene.Node
	// Position is the zero based (column, row) of the cell's top-left.
	Position image.Point
	// Span is the cell size in grid cells.
	Span image.Point
	// Origin is the content's top-left in grid-local pixels after placement.
	Origin image.Point
	// Size is the measured cell size handed to the content.
	Size image.Point
	// Placed is false for a registration whose content was already attached
	// by an earlier registration.
	Placed bool
}

type cell struct {
	Cell
	caps capabilities
}

// GridLayout places content into the cells of a fixed pixel grid and owns
// the scene group the content is attached to.
//
// GridLayout is not safe for concurrent use.
type GridLayout struct {
	cfg   Config
	group *scene.Group

	// cells is append-only; next is the index of the first registration the
	// layout pass has not visited yet.
	cells []*cell
	next  int

	dividers     []DividerLine
	palette      *scene.Palette
	dividerColor graphics.Color

	boundsCheck bool
	maxChildren int
	logger      *slog.Logger
}

// New creates an empty grid. GridSize must be positive in both axes; sizes,
// padding and allow-list indices must not be negative.
func New(cfg Config, opts ...Option) (*GridLayout, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	cfg.HDividerLineRows = slices.Clone(cfg.HDividerLineRows)
	cfg.VDividerLineCols = slices.Clone(cfg.VDividerLineCols)

	g := &GridLayout{
		cfg:          cfg,
		group:        scene.NewGroup(cfg.X, cfg.Y),
		dividerColor: graphics.ColorWhite,
		boundsCheck:  true,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.group.SetMaxSize(g.maxChildren)
	g.palette = scene.NewPalette(2)
	g.palette.Set(0, g.dividerColor)
	g.palette.Set(1, g.dividerColor)
	return g, nil
}

func validateConfig(cfg Config) error {
	if cfg.GridSize.X <= 0 || cfg.GridSize.Y <= 0 {
		return errors.Errorf(opNew, errors.KindConfig, "grid size %dx%d: %w",
			cfg.GridSize.X, cfg.GridSize.Y, errors.ErrInvalidGrid)
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return errors.Errorf(opNew, errors.KindConfig, "area %dx%d: %w",
			cfg.Width, cfg.Height, errors.ErrInvalidGrid)
	}
	if cfg.CellPadding < 0 {
		return errors.Errorf(opNew, errors.KindConfig, "cell padding %d: %w",
			cfg.CellPadding, errors.ErrInvalidGrid)
	}
	for _, r := range cfg.HDividerLineRows {
		if r < 0 {
			return errors.Errorf(opNew, errors.KindConfig, "divider row %d: %w", r, errors.ErrInvalidGrid)
		}
	}
	for _, c := range cfg.VDividerLineCols {
		if c < 0 {
			return errors.Errorf(opNew, errors.KindConfig, "divider column %d: %w", c, errors.ErrInvalidGrid)
		}
	}
	return nil
}

// AddContent registers content at position spanning span cells, then places
// every registration that has not been placed yet.
//
// Content already attached to the grid is not moved again; the duplicate
// registration is kept but left unplaced. A registration rejected by bounds
// checking or by the scene group is not kept, and its content is neither
// resized nor moved. If the scene group rejects a divider line, the content
// stays attached and the error is returned.
func (g *GridLayout) AddContent(content scene.Node, position, span image.Point) error {
	if content == nil {
		return errors.New(opAddContent, errors.KindConfig, errors.ErrNilContent)
	}
	if !scene.Comparable(content) {
		return errors.Errorf(opAddContent, errors.KindConfig, "%T: %w", content, errors.ErrUncomparableContent)
	}
	if g.boundsCheck {
		if err := g.checkBounds(position, span); err != nil {
			return err
		}
	}
	g.cells = append(g.cells, &cell{
		Cell: Cell{Content: content, Position: position, Span: span},
		caps: capabilitiesOf(content),
	})
	if err := g.layoutCells(); err != nil {
		if g.next < len(g.cells) {
			g.cells = g.cells[:g.next]
		}
		return err
	}
	return nil
}

func (g *GridLayout) checkBounds(position, span image.Point) error {
	if span.X < 1 || span.Y < 1 {
		return errors.Errorf(opAddContent, errors.KindBounds, "span %v: %w",
			span, errors.ErrOutOfBounds)
	}
	area := image.Rectangle{Min: position, Max: position.Add(span)}
	if !area.In(image.Rectangle{Max: g.cfg.GridSize}) {
		return errors.Errorf(opAddContent, errors.KindBounds, "position %v span %v in %dx%d grid: %w",
			position, span, g.cfg.GridSize.X, g.cfg.GridSize.Y, errors.ErrOutOfBounds)
	}
	return nil
}

// layoutCells visits the registrations after the cursor and places each one
// whose content is not attached yet.
func (g *GridLayout) layoutCells() error {
	placed := false
	for ; g.next < len(g.cells); g.next++ {
		c := g.cells[g.next]
		if g.group.Contains(c.Content) {
			g.logger.Debug("content already attached, skipping",
				slog.Any("position", c.Position))
			continue
		}
		if err := g.place(c); err != nil {
			return err
		}
		placed = true
	}
	if placed && g.cfg.DividerLines {
		return g.rebuildDividers()
	}
	return nil
}

// place attaches the content first so a rejected cell leaves it untouched,
// then sizes and positions it.
func (g *GridLayout) place(c *cell) error {
	if err := g.group.Append(c.Content); err != nil {
		return errors.Errorf(opAddContent, errors.KindScene, "attach content at %v: %w", c.Position, err)
	}
	origin, size := cellGeometry(g.cfg, c.Position, c.Span)
	c.caps.applySize(c.Content, size)
	c.Origin = c.caps.applyPosition(c.Content, origin)
	c.Size = size
	c.Placed = true

	g.logger.Debug("placed cell",
		slog.Any("position", c.Position),
		slog.Any("span", c.Span),
		slog.Any("origin", c.Origin),
		slog.Any("size", c.Size),
		slog.String("sizing", c.caps.sizing.String()),
		slog.String("positioning", c.caps.positioning.String()),
	)
	return nil
}

// rebuildDividers replaces every divider drawable with a freshly derived set.
// Lines are appended after all content so they draw on top.
func (g *GridLayout) rebuildDividers() error {
	for _, line := range g.dividers {
		if err := g.group.Remove(line.Tile); err != nil {
			errors.Report(errors.New(opAddContent, errors.KindScene, err))
		}
	}
	g.dividers = nil

	lines := newDividerLines(Dividers(g.cfg, g.Cells()), g.palette)
	attached := make([]DividerLine, 0, len(lines))
	for _, line := range lines {
		if err := g.group.Append(line.Tile); err != nil {
			g.dividers = attached
			return errors.Errorf(opAddContent, errors.KindScene, "attach %s divider of cell %v: %w",
				line.Edge, line.Cell, err)
		}
		attached = append(attached, line)
	}
	g.dividers = attached
	g.logger.Debug("rebuilt divider lines", slog.Int("count", len(attached)))
	return nil
}

// cellGeometry returns the content origin and measured size for a cell, in
// grid-local pixels. Cell edges are floor(index*extent/count); padding is
// taken once from each side of the whole span.
func cellGeometry(cfg Config, position, span image.Point) (origin, size image.Point) {
	cols, rows := cfg.GridSize.X, cfg.GridSize.Y
	p := cfg.CellPadding
	size = image.Point{
		X: graphics.ScaleFloor(span.X, cfg.Width, cols) - 2*p,
		Y: graphics.ScaleFloor(span.Y, cfg.Height, rows) - 2*p,
	}
	origin = image.Point{
		X: graphics.ScaleFloor(position.X, cfg.Width, cols) + p,
		Y: graphics.ScaleFloor(position.Y, cfg.Height, rows) + p,
	}
	return origin, size
}

// CellRect returns the content rectangle a cell at position spanning span
// would get, in grid-local pixels. It does not modify the grid.
func (g *GridLayout) CellRect(position, span image.Point) image.Rectangle {
	origin, size := cellGeometry(g.cfg, position, span)
	return graphics.RectFromXYWH(origin.X, origin.Y, size.X, size.Y)
}

// Config returns a copy of the grid configuration.
func (g *GridLayout) Config() Config {
	cfg := g.cfg
	cfg.HDividerLineRows = slices.Clone(cfg.HDividerLineRows)
	cfg.VDividerLineCols = slices.Clone(cfg.VDividerLineCols)
	return cfg
}

// Cells returns a copy of the registrations in insertion order.
func (g *GridLayout) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	for i, c := range g.cells {
		out[i] = c.Cell
	}
	return out
}

// Len returns the number of registrations.
func (g *GridLayout) Len() int {
	return len(g.cells)
}

// DividerLines returns a copy of the attached divider lines in draw order.
func (g *GridLayout) DividerLines() []DividerLine {
	return slices.Clone(g.dividers)
}

// Contains reports whether node is attached to the grid's group.
func (g *GridLayout) Contains(node scene.Node) bool {
	return g.group.Contains(node)
}

// Position returns the grid origin in its parent's coordinates.
func (g *GridLayout) Position() image.Point {
	return g.group.Position()
}

// Bounds implements scene.Node. It covers the configured grid area plus any
// content that overflows it.
func (g *GridLayout) Bounds() image.Rectangle {
	area := graphics.RectFromXYWH(g.cfg.X, g.cfg.Y, g.cfg.Width, g.cfg.Height)
	return area.Union(g.group.Bounds())
}

// Draw implements scene.Node.
func (g *GridLayout) Draw(dst draw.Image, offset image.Point) {
	g.group.Draw(dst, offset)
}

// VisitChildren implements scene.ChildVisitor.
func (g *GridLayout) VisitChildren(visitor func(scene.Node)) {
	g.group.VisitChildren(visitor)
}

// Describe implements scene.Describer.
func (g *GridLayout) Describe() map[string]any {
	return map[string]any{
		"gridSize": []int{g.cfg.GridSize.X, g.cfg.GridSize.Y},
		"padding":  g.cfg.CellPadding,
		"cells":    len(g.cells),
		"dividers": len(g.dividers),
	}
}
