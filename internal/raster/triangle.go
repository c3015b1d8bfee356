package raster

import (
	"image"
	"math"

	"spatial-interactor/internal/mathutil"
	"spatial-interactor/internal/scene"
)

// RasterizeTriangle fills one triangle with texture mapping, z-buffer,
// sRGB color space, lighting and ACES tone mapping. Pixels whose world
// position falls on the discarded side of any plane are skipped.
//
// Lighting is flat (per face). The inner loop does not allocate.
func RasterizeTriangle(
	fb *FrameBuffer,
	v [3]Vertex,
	tex *image.NRGBA,
	base [4]uint8,
	planes []scene.Plane,
	lc *Lighting,
) {
	// Face normal for flat shading, in world space
	normal := v[1].World.Sub(v[0].World).Cross(v[2].World.Sub(v[0].World))
	if normal.Len() < 1e-12 {
		return
	}
	shade := lc.Shade(normal.Normalize())

	x0, y0 := v[0].X, v[0].Y
	x1, y1 := v[1].X, v[1].Y
	x2, y2 := v[2].X, v[2].Y

	// Bounding box
	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1

	minX = max(minX, 0)
	minY = max(minY, 0)
	maxX = min(maxX, fb.Width-1)
	maxY = min(maxY, fb.Height-1)
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	// Attributes divided by depth interpolate linearly in screen space.
	iz0, iz1, iz2 := v[0].InvZ, v[1].InvZ, v[2].InvZ
	pw0 := v[0].World.Scale(iz0)
	pw1 := v[1].World.Scale(iz1)
	pw2 := v[2].World.Scale(iz2)

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			iz := w0*iz0 + w1*iz1 + w2*iz2
			zIdx := rowOff + sx
			if iz <= fb.ZBuf[zIdx] {
				continue
			}

			z := 1 / iz
			world := pw0.Scale(w0).Add(pw1.Scale(w1)).Add(pw2.Scale(w2)).Scale(z)
			if clipped(planes, world) {
				continue
			}

			c := base
			if tex != nil {
				u := (w0*v[0].U*iz0 + w1*v[1].U*iz1 + w2*v[2].U*iz2) * z
				t := (w0*v[0].V*iz0 + w1*v[1].V*iz1 + w2*v[2].V*iz2) * z
				c = SampleTexture(tex, u, t)
			}

			// Skip transparent texels
			if c[3] < 8 {
				continue
			}
			fb.ZBuf[zIdx] = iz

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = lc.Apply(c[0], shade)
			fb.Color[pxIdx+1] = lc.Apply(c[1], shade)
			fb.Color[pxIdx+2] = lc.Apply(c[2], shade)
			fb.Color[pxIdx+3] = c[3]
		}
	}
}

func clipped(planes []scene.Plane, p mathutil.Vec3) bool {
	for _, pl := range planes {
		if !pl.Keeps(p) {
			return true
		}
	}
	return false
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
