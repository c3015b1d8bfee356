package raster

import "image"

// SampleTexture filters tex bilinearly at (u, v) in [0,1]. Coordinates are
// clamped to the edge texels: each box face maps the whole texture once, and
// wrapping would bleed the opposite border into the seams.
func SampleTexture(tex *image.NRGBA, u, v float64) [4]uint8 {
	b := tex.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return [4]uint8{}
	}

	fx := clampf(u*float64(w)-0.5, 0, float64(w-1))
	fy := clampf(v*float64(h)-0.5, 0, float64(h-1))
	x0, y0 := int(fx), int(fy)
	x1, y1 := min(x0+1, w-1), min(y0+1, h-1)
	dx, dy := fx-float64(x0), fy-float64(y0)

	texel := func(x, y int) []uint8 {
		i := tex.PixOffset(b.Min.X+x, b.Min.Y+y)
		return tex.Pix[i : i+4]
	}
	t00, t10 := texel(x0, y0), texel(x1, y0)
	t01, t11 := texel(x0, y1), texel(x1, y1)

	var out [4]uint8
	for c := range out {
		top := float64(t00[c]) + (float64(t10[c])-float64(t00[c]))*dx
		bot := float64(t01[c]) + (float64(t11[c])-float64(t01[c]))*dx
		out[c] = uint8(top + (bot-top)*dy + 0.5)
	}
	return out
}

func clampf(x, lo, hi float64) float64 {
	return max(lo, min(x, hi))
}
