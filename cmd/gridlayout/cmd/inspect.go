package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

const inspectUsage = "gridlayout inspect <layout.yaml>"

func init() {
	RegisterCommand(&Command{
		Name:  "inspect",
		Short: "Print cell geometry and divider lines",
		Long: `Inspect builds the layout file and prints where every cell landed,
followed by every divider line in drawing order.

Coordinates are grid-local pixels.`,
		Usage: inspectUsage,
		Run:   runInspect,
	})
}

func runInspect(args []string) error {
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			return fmt.Errorf("unknown flag %s\n\nUsage: %s", arg, inspectUsage)
		}
	}
	path, err := layoutPath(args, inspectUsage)
	if err != nil {
		return err
	}
	screen, err := loadScreen(path)
	if err != nil {
		return err
	}

	cfg := screen.Grid.Config()
	fmt.Fprintf(stdout, "grid %dx%d at (%d,%d), %dx%d px, padding %d\n\n",
		cfg.GridSize.X, cfg.GridSize.Y, cfg.X, cfg.Y, cfg.Width, cfg.Height, cfg.CellPadding)

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CELL\tCONTENT\tPOSITION\tSPAN\tORIGIN\tSIZE")
	for i, c := range screen.Grid.Cells() {
		origin, size := fmt.Sprintf("%d,%d", c.Origin.X, c.Origin.Y), fmt.Sprintf("%dx%d", c.Size.X, c.Size.Y)
		if !c.Placed {
			origin, size = "-", "-"
		}
		fmt.Fprintf(tw, "%d\t%T\t%d,%d\t%dx%d\t%s\t%s\n",
			i, c.Content, c.Position.X, c.Position.Y, c.Span.X, c.Span.Y, origin, size)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	lines := screen.Grid.DividerLines()
	if len(lines) == 0 {
		fmt.Fprintln(stdout, "\nno divider lines")
		return nil
	}
	fmt.Fprintln(stdout)
	tw = tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LINE\tCELL\tEDGE\tRECT")
	for i, l := range lines {
		fmt.Fprintf(tw, "%d\t%d,%d\t%s\t%v\n", i, l.Cell.X, l.Cell.Y, l.Edge, l.Rect)
	}
	return tw.Flush()
}
