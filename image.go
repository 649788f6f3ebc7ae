package filament

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// NewImageBuffer converts img to tightly packed, non-premultiplied RGBA8
// pixels, ready for Texture.SetImage with PixelRGBA and PixelUByte.
//
// A zero size keeps the image size. Otherwise img is scaled to size with
// Catmull-Rom filtering.
func NewImageBuffer(img image.Image, size image.Point) *Buffer {
	src := img.Bounds()
	if size == (image.Point{}) {
		size = src.Size()
	}
	dst := image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))
	if size == src.Size() {
		xdraw.Draw(dst, dst.Bounds(), img, src.Min, xdraw.Src)
	} else {
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, src, xdraw.Src, nil)
	}
	return NewBuffer(dst.Pix)
}
