package layout

import (
	"log/slog"

	"github.com/go-drift/displaylayout/pkg/graphics"
)

// Option configures a GridLayout.
type Option func(*GridLayout)

// WithLogger sets the logger used for placement debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(g *GridLayout) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithBoundsCheck controls validation of positions and spans in AddContent.
// It is on by default. With it off, out-of-range cells are placed anyway and
// may overlap or overflow the grid area.
func WithBoundsCheck(enabled bool) Option {
	return func(g *GridLayout) {
		g.boundsCheck = enabled
	}
}

// WithDividerColor sets the divider line color. The default is white.
func WithDividerColor(c graphics.Color) Option {
	return func(g *GridLayout) {
		g.dividerColor = c
	}
}

// WithMaxChildren caps the number of drawables, content and divider lines
// together, the grid's scene group accepts. Zero means no limit.
func WithMaxChildren(n int) Option {
	return func(g *GridLayout) {
		g.maxChildren = n
	}
}
