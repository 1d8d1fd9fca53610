package graphics

import "image"

// FloorDiv returns a/b rounded toward negative infinity. b must be non-zero.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// ScaleFloor returns floor(n*total/parts), the pixel offset of the n-th of
// parts equal divisions of total.
func ScaleFloor(n, total, parts int) int {
	return FloorDiv(n*total, parts)
}

// RectFromXYWH constructs an image.Rectangle from an origin and a size.
// Unlike image.Rect it does not canonicalize, so a negative size stays visible
// as an empty rectangle instead of being flipped.
func RectFromXYWH(x, y, width, height int) image.Rectangle {
	return image.Rectangle{
		Min: image.Point{X: x, Y: y},
		Max: image.Point{X: x + width, Y: y + height},
	}
}
