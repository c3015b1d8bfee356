package interactor

import (
	"spatial-interactor/internal/mathutil"
	"spatial-interactor/internal/scene"
)

// dolly flies the viewpoint along the controller's pointing direction at a
// speed set by the touchpad and proportional to the camera distance.
func (c *Controller) dolly(ren scene.Renderer, pointer int) {
	if ren == nil {
		return
	}
	cam := ren.ActiveCamera()

	vdir := c.tracker.WorldPose(pointer).Orientation.Rotate(mathutil.Forward)

	// 2.0 so the touchpad's full range reaches twice the average speed.
	_, ty := c.tracker.TouchPadPosition()
	factor := ty * 2.0 * c.dollyMotionFactor / 90.0

	step := vdir.Scale(factor * cam.Distance())
	cam.SetPhysicalTranslation(cam.PhysicalTranslation().Sub(step))

	c.resetClippingRange(ren)
}
