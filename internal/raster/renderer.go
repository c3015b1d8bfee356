package raster

import (
	"image"

	"spatial-interactor/internal/mathutil"
	"spatial-interactor/internal/scene/memscene"
	"spatial-interactor/internal/texture"
)

// boxFaces lists each face of a box as four corner indices, where bit 0, 1
// and 2 of an index select max x, y and z.
var boxFaces = [6][4]int{
	{0, 2, 6, 4}, // -x
	{1, 5, 7, 3}, // +x
	{0, 4, 5, 1}, // -y
	{2, 3, 7, 6}, // +y
	{0, 1, 3, 2}, // -z
	{4, 6, 7, 5}, // +z
}

var faceUV = [4][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// RenderFrame draws a scene frame into a square NRGBA image of
// size*supersample pixels. The background is transparent.
func RenderFrame(f memscene.Frame, texResolver texture.Resolver, size, supersample int) *image.NRGBA {
	if supersample < 1 {
		supersample = 1
	}
	renderSize := size * supersample
	img := image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))

	proj, ok := newProjector(f.View, renderSize)
	if !ok {
		return img
	}

	fb := NewFrameBuffer(renderSize, renderSize)
	if f.View.Far > 0 {
		fb.ClearDepth(1 / f.View.Far)
	}
	lc := NewLighting(f.LightDir)

	for _, a := range f.Actors {
		// Load texture
		var tex *image.NRGBA
		if texResolver != nil && a.Texture != "" {
			tex = texResolver.Resolve(a.Texture)
		}
		base := [4]uint8{a.Color[0], a.Color[1], a.Color[2], 255}

		for _, p := range a.Parts {
			drawBox(fb, proj, a.Matrix, p, tex, base, &lc)
		}
	}

	copy(img.Pix, fb.Color)
	return img
}

func drawBox(fb *FrameBuffer, proj projector, m mathutil.Mat4, p memscene.PartFrame, tex *image.NRGBA, base [4]uint8, lc *Lighting) {
	var corners [8]mathutil.Vec3
	for i := range corners {
		c := p.Min
		if i&1 != 0 {
			c[0] = p.Max[0]
		}
		if i&2 != 0 {
			c[1] = p.Max[1]
		}
		if i&4 != 0 {
			c[2] = p.Max[2]
		}
		corners[i] = m.MulPoint(c)
	}

	for _, face := range boxFaces {
		var quad [4]Vertex
		visible := true
		for k, ci := range face {
			v, ok := proj.project(corners[ci])
			if !ok {
				// No near-plane clipping: faces crossing it are dropped.
				visible = false
				break
			}
			v.U, v.V = faceUV[k][0], faceUV[k][1]
			quad[k] = v
		}
		if !visible {
			continue
		}
		RasterizeTriangle(fb, [3]Vertex{quad[0], quad[1], quad[2]}, tex, base, p.Planes, lc)
		RasterizeTriangle(fb, [3]Vertex{quad[0], quad[2], quad[3]}, tex, base, p.Planes, lc)
	}
}

// Coverage returns the fraction of pixels with non-zero alpha.
func Coverage(img *image.NRGBA) float64 {
	b := img.Bounds()
	total := b.Dx() * b.Dy()
	if total == 0 {
		return 0
	}
	var n int
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			n++
		}
	}
	return float64(n) / float64(total)
}
