package interactor

import (
	"spatial-interactor/internal/mathutil"
	"spatial-interactor/internal/scene"
)

// clip replaces every part's clipping planes with the plane carried by the
// primary controller.
func (c *Controller) clip(ren scene.Renderer, pointer int) {
	if ren == nil {
		c.logger.Warn("no current renderer", "state", Clipping)
		return
	}
	if pointer != 0 {
		return
	}

	wp := c.tracker.WorldPose(0)
	plane := scene.Plane{
		Origin: wp.Position,
		Normal: wp.Orientation.Rotate(mathutil.ClipReference),
	}
	for part := range ren.Parts() {
		part.RemoveAllClippingPlanes()
		part.AddClippingPlane(plane)
	}
	c.host.Render()
}

func (c *Controller) clearClipping(ren scene.Renderer) {
	if ren == nil {
		c.logger.Warn("no current renderer", "state", Clipping)
	} else {
		for part := range ren.Parts() {
			part.RemoveAllClippingPlanes()
		}
	}
	c.host.Render()
}
