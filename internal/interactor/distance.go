package interactor

import "spatial-interactor/internal/scene"

// SetDistance moves cam so that its focal distance becomes newDistance while
// the tracked head keeps the same physical offset: only the virtual scale
// of the world changes, not where the user appears to stand.
func (c *Controller) SetDistance(cam scene.Camera, newDistance float64) {
	distance := cam.Distance()
	if distance == 0 {
		return
	}
	trans := cam.PhysicalTranslation()
	dop := cam.DirectionOfProjection()

	hmd := cam.Position().Add(trans).Scale(1 / distance)
	pos := hmd.Scale(newDistance).Sub(trans)

	cam.SetFocalPoint(pos.Add(dop.Scale(newDistance)))
	cam.SetPosition(pos)

	c.resetClippingRange(c.current)
}
