package interactor

import "math"

// OnPinch zooms the camera of the renderer under the gesture by the ratio of
// the current and previous pinch scales.
func (c *Controller) OnPinch() {
	ren := c.poke(c.tracker.PointerIndex())
	if ren == nil {
		return
	}

	last := c.tracker.LastScale()
	if last == 0 {
		return
	}
	zoom := c.tracker.Scale() / last
	if zoom <= 0 || math.IsNaN(zoom) || math.IsInf(zoom, 0) {
		return
	}

	cam := ren.ActiveCamera()
	c.SetDistance(cam, cam.Distance()/zoom)
	c.gestured(GesturePinch)
}
