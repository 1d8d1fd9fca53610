package scene

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/go-drift/displaylayout/pkg/errors"
	"github.com/go-drift/displaylayout/pkg/graphics"
)

// Render rasterizes root onto a width x height canvas filled with background.
func Render(root Node, width, height int, background graphics.Color) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("scene.Render", errors.KindRender,
			"invalid canvas size %dx%d", width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	if root != nil {
		drawChild(root, img, image.Point{})
	}
	return img, nil
}

// Scale enlarges src by an integer factor. Nearest neighbour keeps pixel edges
// sharp; smooth selects bilinear filtering instead.
func Scale(src image.Image, factor int, smooth bool) (*image.RGBA, error) {
	if factor < 1 {
		return nil, errors.Errorf("scene.Scale", errors.KindRender,
			"invalid scale factor %d", factor)
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	var interp draw.Interpolator = draw.NearestNeighbor
	if smooth {
		interp = draw.ApproxBiLinear
	}
	interp.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst, nil
}
