package layout

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/displaylayout/pkg/graphics"
	"github.com/go-drift/displaylayout/pkg/scene"
)

// fillThreeByThree adds one plain cell per grid position in row-major order.
func fillThreeByThree(t *testing.T, g *GridLayout) {
	t.Helper()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			mustAdd(t, g, &plainContent{}, image.Pt(col, row), image.Pt(1, 1))
		}
	}
}

func specsOf(lines []DividerLine) []DividerSpec {
	out := make([]DividerSpec, len(lines))
	for i, l := range lines {
		out[i] = l.DividerSpec
	}
	return out
}

func hLine(x, y int) image.Rectangle { return graphics.RectFromXYWH(x, y, 100, 1) }
func vLine(x, y int) image.Rectangle { return graphics.RectFromXYWH(x, y, 1, 100) }

func TestDividers_AllBoundaries(t *testing.T) {
	g := mustGrid(t, Config{Width: 300, Height: 300, GridSize: image.Pt(3, 3), CellPadding: 5, DividerLines: true})
	fillThreeByThree(t, g)

	lines := g.DividerLines()
	// 9 top + 9 left + 3 bottom + 3 right.
	if len(lines) != 24 {
		t.Fatalf("got %d divider lines, want 24", len(lines))
	}
	counts := map[Edge]int{}
	for _, l := range lines {
		counts[l.Edge]++
	}
	want := map[Edge]int{EdgeTop: 9, EdgeLeft: 9, EdgeBottom: 3, EdgeRight: 3}
	if diff := cmp.Diff(want, counts); diff != "" {
		t.Errorf("edge counts (-want +got):\n%s", diff)
	}

	// The last cell contributes bottom, top, left, right in that order.
	last := specsOf(lines[len(lines)-4:])
	wantLast := []DividerSpec{
		{Cell: image.Pt(2, 2), Edge: EdgeBottom, Rect: hLine(200, 300)},
		{Cell: image.Pt(2, 2), Edge: EdgeTop, Rect: hLine(200, 200)},
		{Cell: image.Pt(2, 2), Edge: EdgeLeft, Rect: vLine(200, 200)},
		{Cell: image.Pt(2, 2), Edge: EdgeRight, Rect: vLine(300, 200)},
	}
	if diff := cmp.Diff(wantLast, last); diff != "" {
		t.Errorf("last cell dividers (-want +got):\n%s", diff)
	}
}

func TestDividers_RowAllowList(t *testing.T) {
	g := mustGrid(t, Config{
		Width: 300, Height: 300, GridSize: image.Pt(3, 3), CellPadding: 5,
		DividerLines: true, HDividerLineRows: []int{1},
	})
	fillThreeByThree(t, g)

	want := []DividerSpec{
		{Cell: image.Pt(0, 0), Edge: EdgeLeft, Rect: vLine(0, 0)},
		{Cell: image.Pt(1, 0), Edge: EdgeLeft, Rect: vLine(100, 0)},
		{Cell: image.Pt(2, 0), Edge: EdgeLeft, Rect: vLine(200, 0)},
		{Cell: image.Pt(2, 0), Edge: EdgeRight, Rect: vLine(300, 0)},

		{Cell: image.Pt(0, 1), Edge: EdgeTop, Rect: hLine(0, 100)},
		{Cell: image.Pt(0, 1), Edge: EdgeLeft, Rect: vLine(0, 100)},
		{Cell: image.Pt(1, 1), Edge: EdgeTop, Rect: hLine(100, 100)},
		{Cell: image.Pt(1, 1), Edge: EdgeLeft, Rect: vLine(100, 100)},
		{Cell: image.Pt(2, 1), Edge: EdgeTop, Rect: hLine(200, 100)},
		{Cell: image.Pt(2, 1), Edge: EdgeLeft, Rect: vLine(200, 100)},
		{Cell: image.Pt(2, 1), Edge: EdgeRight, Rect: vLine(300, 100)},

		{Cell: image.Pt(0, 2), Edge: EdgeLeft, Rect: vLine(0, 200)},
		{Cell: image.Pt(1, 2), Edge: EdgeLeft, Rect: vLine(100, 200)},
		{Cell: image.Pt(2, 2), Edge: EdgeLeft, Rect: vLine(200, 200)},
		{Cell: image.Pt(2, 2), Edge: EdgeRight, Rect: vLine(300, 200)},
	}
	if diff := cmp.Diff(want, specsOf(g.DividerLines())); diff != "" {
		t.Errorf("dividers (-want +got):\n%s", diff)
	}
}

func TestDividers_BottomBoundaryAllowListed(t *testing.T) {
	cfg := Config{
		Width: 300, Height: 300, GridSize: image.Pt(3, 3), CellPadding: 5,
		DividerLines: true, HDividerLineRows: []int{3}, VDividerLineCols: []int{},
	}
	g := mustGrid(t, cfg)
	fillThreeByThree(t, g)

	want := []DividerSpec{
		{Cell: image.Pt(0, 2), Edge: EdgeBottom, Rect: hLine(0, 300)},
		{Cell: image.Pt(1, 2), Edge: EdgeBottom, Rect: hLine(100, 300)},
		{Cell: image.Pt(2, 2), Edge: EdgeBottom, Rect: hLine(200, 300)},
	}
	if diff := cmp.Diff(want, specsOf(g.DividerLines())); diff != "" {
		t.Errorf("dividers (-want +got):\n%s", diff)
	}
}

func TestDividers_SpanReachingLastRow(t *testing.T) {
	cfg := Config{Width: 200, Height: 200, GridSize: image.Pt(2, 2), DividerLines: true}
	cells := []Cell{{
		Position: image.Pt(0, 0),
		Span:     image.Pt(2, 2),
		Origin:   image.Pt(0, 0),
		Size:     image.Pt(200, 200),
		Placed:   true,
	}}
	specs := Dividers(cfg, cells)
	edges := make([]Edge, len(specs))
	for i, s := range specs {
		edges[i] = s.Edge
	}
	if diff := cmp.Diff([]Edge{EdgeBottom, EdgeTop, EdgeLeft, EdgeRight}, edges); diff != "" {
		t.Errorf("edges (-want +got):\n%s", diff)
	}
	if specs[0].Rect != graphics.RectFromXYWH(0, 200, 200, 1) {
		t.Errorf("bottom rect = %v", specs[0].Rect)
	}
}

func TestDividers_DisabledOrUnplaced(t *testing.T) {
	cell := Cell{Position: image.Pt(0, 0), Span: image.Pt(1, 1), Size: image.Pt(10, 10), Placed: true}
	if got := Dividers(Config{GridSize: image.Pt(1, 1)}, []Cell{cell}); got != nil {
		t.Errorf("disabled dividers = %v", got)
	}
	cell.Placed = false
	if got := Dividers(Config{GridSize: image.Pt(1, 1), DividerLines: true}, []Cell{cell}); len(got) != 0 {
		t.Errorf("unplaced cell produced dividers: %v", got)
	}
}

func TestDividers_RebuiltWholesaleAndDrawnLast(t *testing.T) {
	g := mustGrid(t, Config{Width: 200, Height: 100, GridSize: image.Pt(2, 1), DividerLines: true})

	first := &plainContent{}
	mustAdd(t, g, first, image.Pt(0, 0), image.Pt(1, 1))
	before := g.DividerLines()

	second := &plainContent{}
	mustAdd(t, g, second, image.Pt(1, 0), image.Pt(1, 1))
	after := g.DividerLines()

	for _, old := range before {
		if g.Contains(old.Tile) {
			t.Errorf("stale divider tile %v still attached", old.Edge)
		}
	}
	// First cell: bottom, top, left. Second: bottom, top, left, right.
	if len(after) != 7 {
		t.Fatalf("got %d dividers, want 7", len(after))
	}
	children := g.group.Children()
	if len(children) != 2+len(after) {
		t.Fatalf("group has %d children, want %d", len(children), 2+len(after))
	}
	if children[0] != first || children[1] != second {
		t.Error("content should precede divider lines")
	}
	for i, line := range after {
		if children[2+i] != line.Tile {
			t.Errorf("child %d is not divider %d", 2+i, i)
		}
	}
}

func TestDividers_SharedShapes(t *testing.T) {
	g := mustGrid(t, Config{Width: 300, Height: 300, GridSize: image.Pt(3, 3), CellPadding: 5, DividerLines: true})
	fillThreeByThree(t, g)

	shapes := map[*scene.Shape]bool{}
	for _, l := range g.DividerLines() {
		shapes[l.Shape] = true
		if l.Tile.Shape != l.Shape {
			t.Fatal("tile does not draw its divider shape")
		}
	}
	// One horizontal and one vertical definition for uniform cells.
	if len(shapes) != 2 {
		t.Errorf("got %d distinct shapes, want 2", len(shapes))
	}
}

func TestDividers_Rendered(t *testing.T) {
	g := mustGrid(t, Config{Width: 300, Height: 300, GridSize: image.Pt(3, 3), CellPadding: 5, DividerLines: true})
	fillThreeByThree(t, g)

	img, err := scene.Render(g, 301, 301, graphics.ColorBlack)
	if err != nil {
		t.Fatal(err)
	}
	white := []image.Point{{100, 50}, {50, 100}, {300, 150}, {150, 300}, {0, 0}}
	for _, p := range white {
		if c := img.RGBAAt(p.X, p.Y); c.R != 0xFF || c.G != 0xFF || c.B != 0xFF {
			t.Errorf("pixel %v = %v, want white divider", p, c)
		}
	}
	if c := img.RGBAAt(50, 50); c.R != 0 {
		t.Errorf("cell interior pixel = %v, want background", c)
	}
}

func TestEdgeString(t *testing.T) {
	for e, want := range map[Edge]string{
		EdgeTop: "top", EdgeBottom: "bottom", EdgeLeft: "left", EdgeRight: "right", Edge(9): "unknown",
	} {
		if got := e.String(); got != want {
			t.Errorf("Edge(%d).String() = %q, want %q", e, got, want)
		}
	}
}
