package assets

import (
	"image"
	"image/color"
	"math"

	"github.com/plus3/blockfall/tetris"
)

// Fit scales an iw×ih image to fit inside a square of side inner centered on
// (cx, cy), keeping its aspect ratio. The result is snapped to whole pixels
// and is never smaller than 1×1.
func Fit(iw, ih int, cx, cy, inner float64) image.Rectangle {
	if iw <= 0 || ih <= 0 {
		return image.Rectangle{}
	}
	scale := math.Min(inner/float64(iw), inner/float64(ih))
	dw := max(1, int(math.Floor(float64(iw)*scale)))
	dh := max(1, int(math.Floor(float64(ih)*scale)))
	x := int(math.Floor(cx - float64(dw)/2))
	y := int(math.Floor(cy - float64(dh)/2))
	return image.Rect(x, y, x+dw, y+dh)
}

var palette = []color.RGBA{
	{R: 0x38, G: 0xbd, B: 0xf8, A: 0xff},
	{R: 0xfa, G: 0xcc, B: 0x15, A: 0xff},
	{R: 0xa7, G: 0x8b, B: 0xfa, A: 0xff},
	{R: 0xfb, G: 0x92, B: 0x3c, A: 0xff},
	{R: 0x60, G: 0xa5, B: 0xfa, A: 0xff},
	{R: 0x4a, G: 0xde, B: 0x80, A: 0xff},
	{R: 0xf8, G: 0x71, B: 0x71, A: 0xff},
	{R: 0xf4, G: 0x72, B: 0xb6, A: 0xff},
}

// Outline is the stroke color of cells drawn without a texture.
var Outline = color.RGBA{R: 0xe6, G: 0xe8, B: 0xff, A: 0xe6}

// TagColor returns a stable fill color for a tag whose texture is not
// available. NoTag has no fill.
func TagColor(tag tetris.Tag) (color.RGBA, bool) {
	if tag == tetris.NoTag {
		return color.RGBA{}, false
	}
	return palette[int(tag-1)%len(palette)], true
}
