// Package postprocess prepares rendered frames for encoding.
package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample shrinks img to targetSize×targetSize with Catmull-Rom
// filtering in premultiplied alpha, so transparent edges do not pick up a
// dark halo. Images already at or below the target are returned as is.
func Downsample(img *image.NRGBA, targetSize int) *image.NRGBA {
	b := img.Bounds()
	if targetSize <= 0 || (b.Dx() <= targetSize && b.Dy() <= targetSize) {
		return img
	}

	// Drawing NRGBA onto RGBA premultiplies.
	premul := image.NewRGBA(b)
	draw.Draw(premul, b, img, b.Min, draw.Src)

	dst := image.NewRGBA(image.Rect(0, 0, targetSize, targetSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), premul, b, draw.Src, nil)

	// And back again un-premultiplies.
	out := image.NewNRGBA(dst.Bounds())
	draw.Draw(out, out.Bounds(), dst, image.Point{}, draw.Src)
	return out
}
