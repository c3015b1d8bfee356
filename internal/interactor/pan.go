package interactor

import "spatial-interactor/internal/mathutil"

// OnPan shifts the physical translation by the pan gesture. Translation3D is
// cumulative since the gesture began, so what was applied by the previous
// sample is taken back out first.
func (c *Controller) OnPan() {
	ren := c.poke(c.tracker.PointerIndex())
	if ren == nil {
		return
	}
	cam := ren.ActiveCamera()

	scaled := c.tracker.Translation3D().Scale(cam.Distance())
	cam.SetPhysicalTranslation(cam.PhysicalTranslation().Sub(c.applied).Add(scaled))
	c.applied = scaled

	if c.host.LightFollowCamera() {
		ren.UpdateLightsGeometryToFollowCamera()
	}
	c.gestured(GesturePan)
}

// OnPanEnd forgets the applied pan offset so the next pan starts fresh.
func (c *Controller) OnPanEnd() {
	c.applied = mathutil.Vec3{}
}
