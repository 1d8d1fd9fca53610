// Package widgets provides content types for grid layouts on small displays.
//
// Each widget is a scene node and advertises how a layout may size and place
// it through the capability interfaces of package layout:
//
//   - [Label] is fixed size and positioned by anchor point.
//   - [Button] is resized with Resize and positioned by its top-left.
//   - [Box] takes width and height separately and is positioned by its top-left.
//   - [Icon] is fixed size and positioned by its top-left.
//
// Text is drawn with golang.org/x/image/font; the default face is the 7x13
// bitmap font from basicfont.
package widgets
