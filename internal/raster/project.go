package raster

import (
	"math"

	"spatial-interactor/internal/mathutil"
	"spatial-interactor/internal/scene/memscene"
)

// Vertex is a projected point. Screen coordinates are in pixels with y down.
type Vertex struct {
	X, Y float64
	// InvZ is 1 / view depth, used for depth testing and perspective-correct
	// interpolation.
	InvZ  float64
	World mathutil.Vec3
	U, V  float64
}

// projector maps world points through a look-at perspective camera onto a
// square target.
type projector struct {
	eye, right, up, fwd mathutil.Vec3
	tanHalf             float64
	near                float64
	size                float64
}

func newProjector(v memscene.View, size int) (projector, bool) {
	fwd := v.Focal.Sub(v.Eye).Normalize()
	if fwd.IsZero() {
		return projector{}, false
	}
	up := v.Up
	if up.IsZero() {
		up = mathutil.Vec3{0, 1, 0}
	}
	right := fwd.Cross(up).Normalize()
	if right.IsZero() {
		// View up parallel to the view direction; any perpendicular will do.
		right = fwd.Cross(mathutil.Vec3{1, 0, 0}).Normalize()
		if right.IsZero() {
			right = fwd.Cross(mathutil.Vec3{0, 0, 1}).Normalize()
		}
	}
	angle := v.ViewAngle
	if angle <= 0 || angle >= 180 {
		angle = 30
	}
	near := v.Near
	if near <= 0 {
		near = 1e-3
	}
	return projector{
		eye:     v.Eye,
		right:   right,
		up:      right.Cross(fwd),
		fwd:     fwd,
		tanHalf: math.Tan(mathutil.Deg2Rad(angle) / 2),
		near:    near,
		size:    float64(size),
	}, true
}

// project returns false for points in front of the near plane.
func (p projector) project(w mathutil.Vec3) (Vertex, bool) {
	d := w.Sub(p.eye)
	z := d.Dot(p.fwd)
	if z < p.near {
		return Vertex{}, false
	}
	ndcX := d.Dot(p.right) / (z * p.tanHalf)
	ndcY := d.Dot(p.up) / (z * p.tanHalf)
	return Vertex{
		X:     (ndcX + 1) * 0.5 * p.size,
		Y:     (1 - ndcY) * 0.5 * p.size,
		InvZ:  1 / z,
		World: w,
	}, true
}
