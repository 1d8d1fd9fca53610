// Package scene is a small retained scene graph for pixel displays.
//
// A scene is a tree of [Node] values. [Group] holds an ordered list of
// children drawn in append order, so later children paint over earlier ones.
// [TileGrid] binds a [Shape] to a [Palette] at a pixel position and is the
// primitive used for divider lines. [Render] rasterizes a tree into an
// *image.RGBA.
//
// Nodes are compared by identity, so implementations should be pointer types.
package scene
