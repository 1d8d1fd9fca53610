// Package layout arranges scene content in a fixed grid of cells.
//
// A [GridLayout] divides a rectangular pixel area into columns and rows.
// Each call to [GridLayout.AddContent] registers a piece of content at a
// grid position with a span in cells, sizes and positions it to fit that
// cell (minus padding), and attaches it to the grid's scene group. Content
// is placed once, when it is added; later additions never move it.
//
// Content opts into sizing and positioning by implementing [Resizer] or
// [Dimensioned], and [AnchoredPositionable] or [PlainPositionable].
// Content implementing none of them keeps its own size and position.
//
// With divider lines enabled, 1 pixel lines are drawn around cells on the
// row and column boundaries selected by the allow-lists in [Config].
package layout
