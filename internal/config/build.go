package config

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/go-drift/displaylayout/pkg/graphics"
	"github.com/go-drift/displaylayout/pkg/layout"
	"github.com/go-drift/displaylayout/pkg/scene"
	"github.com/go-drift/displaylayout/pkg/widgets"
)

// Screen is a built layout ready to render.
type Screen struct {
	Root       *scene.Group
	Grid       *layout.GridLayout
	Width      int
	Height     int
	Background graphics.Color
}

// GridLayoutConfig converts the grid section to a layout.Config.
func (g GridConfig) GridLayoutConfig() layout.Config {
	return layout.Config{
		X:                g.X,
		Y:                g.Y,
		Width:            g.Width,
		Height:           g.Height,
		GridSize:         image.Pt(g.Size[0], g.Size[1]),
		CellPadding:      g.Padding,
		DividerLines:     g.DividerLines,
		HDividerLineRows: g.HDividerRows,
		VDividerLineCols: g.VDividerCols,
	}
}

// Build creates the widgets of l and adds them to a new grid in file order.
// Missing defaults are filled in on l first.
func Build(l *Layout, logger *slog.Logger) (*Screen, error) {
	if logger == nil {
		logger = slog.Default()
	}
	l.applyDefaults()
	grid, err := layout.New(l.Grid.GridLayoutConfig(),
		layout.WithLogger(logger),
		layout.WithBoundsCheck(*l.Grid.BoundsCheck),
		layout.WithDividerColor(*l.Grid.DividerColor),
		layout.WithMaxChildren(l.Display.MaxChildren),
	)
	if err != nil {
		return nil, err
	}

	for i, c := range l.Cells {
		node := newWidget(c)
		if err := grid.AddContent(node, c.PositionPoint(), c.SpanPoint()); err != nil {
			return nil, fmt.Errorf("cells[%d] (%s): %w", i, c.Widget, err)
		}
	}

	root := scene.NewGroup(0, 0)
	if err := root.Append(grid); err != nil {
		return nil, err
	}
	logger.Debug("built screen",
		slog.Int("cells", grid.Len()),
		slog.Int("dividers", len(grid.DividerLines())),
	)
	return &Screen{
		Root:       root,
		Grid:       grid,
		Width:      l.Display.Width,
		Height:     l.Display.Height,
		Background: *l.Display.Background,
	}, nil
}

// Render rasterizes the screen at its display size.
func (s *Screen) Render() (*image.RGBA, error) {
	return scene.Render(s.Root, s.Width, s.Height, s.Background)
}

func newWidget(c CellConfig) scene.Node {
	switch c.Widget {
	case WidgetLabel:
		l := widgets.NewLabel(c.Text)
		if c.Color != nil {
			l.Color = *c.Color
		}
		if c.Fill != nil {
			l.Background = *c.Fill
		}
		return l
	case WidgetButton:
		b := widgets.NewButton(c.Text, 0, 0)
		if c.Fill != nil {
			b.Fill = *c.Fill
		}
		if c.Outline != nil {
			b.Outline = *c.Outline
		}
		if c.Color != nil {
			b.TextColor = *c.Color
		}
		return b
	case WidgetIcon:
		color := graphics.ColorWhite
		if c.Color != nil {
			color = *c.Color
		}
		return widgets.NewIcon(c.Side, color)
	default:
		fill := graphics.ColorWhite
		if c.Fill != nil {
			fill = *c.Fill
		}
		b := widgets.NewBox(fill)
		if c.Outline != nil {
			b.Outline = *c.Outline
		}
		return b
	}
}
