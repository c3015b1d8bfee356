package memscene

import (
	"spatial-interactor/internal/mathutil"
	"spatial-interactor/internal/scene"
)

// Picker hit-tests world points against the world bounding boxes of a
// Renderer's parts. It returns the part whose box center is nearest.
type Picker struct{}

func (Picker) Pick(point mathutil.Vec3, r scene.Renderer) (scene.Node, bool) {
	ren, ok := r.(*Renderer)
	if !ok || ren == nil {
		return nil, false
	}

	var (
		best     *Part
		bestDist float64
	)
	for _, a := range ren.actors {
		for _, p := range a.parts {
			lo, hi := p.Bounds()
			if !inside(point, lo, hi) {
				continue
			}
			d := lo.Add(hi).Scale(0.5).Sub(point).Len()
			if best == nil || d < bestDist {
				best, bestDist = p, d
			}
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}

func inside(p, lo, hi mathutil.Vec3) bool {
	for k := 0; k < 3; k++ {
		if p[k] < lo[k] || p[k] > hi[k] {
			return false
		}
	}
	return true
}
