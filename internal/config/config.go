// Package config loads screen layout descriptions from YAML files.
package config

import (
	"errors"
	"fmt"
	"image"
	"os"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/displaylayout/pkg/graphics"
)

// CurrentVersion is the layout file format this package reads.
const CurrentVersion = "v1"

// Widget kinds accepted in a cell description.
const (
	WidgetLabel  = "label"
	WidgetButton = "button"
	WidgetBox    = "box"
	WidgetIcon   = "icon"
)

// Layout is the root of a layout file.
type Layout struct {
	Version string        `yaml:"version,omitempty"`
	Display DisplayConfig `yaml:"display"`
	Grid    GridConfig    `yaml:"grid"`
	Cells   []CellConfig  `yaml:"cells"`
}

// DisplayConfig describes the target display.
type DisplayConfig struct {
	Width      int             `yaml:"width,omitempty"`
	Height     int             `yaml:"height,omitempty"`
	Background *graphics.Color `yaml:"background,omitempty"`
	// MaxChildren caps the drawables of the grid group. Zero means no limit.
	MaxChildren int `yaml:"max_children,omitempty"`
}

// GridConfig mirrors layout.Config plus rendering options.
type GridConfig struct {
	X            int             `yaml:"x"`
	Y            int             `yaml:"y"`
	Width        int             `yaml:"width"`
	Height       int             `yaml:"height"`
	Size         [2]int          `yaml:"size,flow"`
	Padding      int             `yaml:"padding"`
	DividerLines bool            `yaml:"divider_lines"`
	DividerColor *graphics.Color `yaml:"divider_color,omitempty"`
	HDividerRows []int           `yaml:"h_divider_rows,flow"`
	VDividerCols []int           `yaml:"v_divider_cols,flow"`
	BoundsCheck  *bool           `yaml:"bounds_check,omitempty"`
}

// CellConfig describes one widget and where it goes.
type CellConfig struct {
	Widget   string          `yaml:"widget"`
	Text     string          `yaml:"text,omitempty"`
	Position [2]int          `yaml:"position,flow"`
	Span     [2]int          `yaml:"span,flow,omitempty"`
	Color    *graphics.Color `yaml:"color,omitempty"`
	Fill     *graphics.Color `yaml:"fill,omitempty"`
	Outline  *graphics.Color `yaml:"outline,omitempty"`
	// Side is the icon size in pixels.
	Side int `yaml:"side,omitempty"`
}

// PositionPoint returns Position as an image.Point.
func (c CellConfig) PositionPoint() image.Point {
	return image.Pt(c.Position[0], c.Position[1])
}

// SpanPoint returns Span as an image.Point.
func (c CellConfig) SpanPoint() image.Point {
	return image.Pt(c.Span[0], c.Span[1])
}

// Load reads and parses the layout file at path.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout %s: %w", path, err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Parse decodes a layout file, applies defaults and validates it.
func Parse(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}
	l.applyDefaults()
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

func (l *Layout) applyDefaults() {
	if strings.TrimSpace(l.Version) == "" {
		l.Version = CurrentVersion
	}
	if l.Display.Width == 0 {
		l.Display.Width = l.Grid.X + l.Grid.Width
	}
	if l.Display.Height == 0 {
		l.Display.Height = l.Grid.Y + l.Grid.Height
	}
	if l.Display.Background == nil {
		bg := graphics.ColorBlack
		l.Display.Background = &bg
	}
	if l.Grid.DividerColor == nil {
		c := graphics.ColorWhite
		l.Grid.DividerColor = &c
	}
	if l.Grid.BoundsCheck == nil {
		on := true
		l.Grid.BoundsCheck = &on
	}
	for i := range l.Cells {
		c := &l.Cells[i]
		c.Widget = strings.ToLower(strings.TrimSpace(c.Widget))
		if c.Span == [2]int{} {
			c.Span = [2]int{1, 1}
		}
	}
}

// ErrUnsupportedVersion is returned for layout files written for another
// major format version.
var ErrUnsupportedVersion = errors.New("unsupported layout version")

// Validate checks the parts of a layout that the grid itself does not.
// Grid geometry and cell bounds are left to layout.New and AddContent.
func (l *Layout) Validate() error {
	if !semver.IsValid(l.Version) {
		return fmt.Errorf("version %q is not a valid semantic version", l.Version)
	}
	if semver.Major(l.Version) != CurrentVersion {
		return fmt.Errorf("version %s: %w (want %s)", l.Version, ErrUnsupportedVersion, CurrentVersion)
	}
	if l.Display.Width <= 0 || l.Display.Height <= 0 {
		return fmt.Errorf("display size %dx%d must be positive", l.Display.Width, l.Display.Height)
	}
	if l.Display.MaxChildren < 0 {
		return fmt.Errorf("display.max_children %d must not be negative", l.Display.MaxChildren)
	}
	for i, c := range l.Cells {
		switch c.Widget {
		case WidgetLabel, WidgetButton, WidgetBox:
		case WidgetIcon:
			if c.Side <= 0 {
				return fmt.Errorf("cells[%d]: icon side %d must be positive", i, c.Side)
			}
		default:
			return fmt.Errorf("cells[%d]: unknown widget %q", i, c.Widget)
		}
	}
	return nil
}
