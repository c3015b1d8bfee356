package interactor

import (
	"spatial-interactor/internal/mathutil"
	"spatial-interactor/internal/pose"
	"spatial-interactor/internal/prop"
	"spatial-interactor/internal/scene"
)

// rotate moves the grabbed prop with the controller. Translation is applied
// directly to the prop; the incremental rotation goes through the composer
// with the controller's current position as pivot.
func (c *Controller) rotate(ren scene.Renderer, pointer int) {
	p := c.session.Prop
	if ren == nil {
		c.logger.Warn("no current renderer", "state", Rotating)
		return
	}
	if p == nil {
		return
	}

	cur := c.tracker.WorldPose(pointer)
	last := c.tracker.LastWorldPose(pointer)

	p.Translate(pose.TranslationDelta(cur, last))

	delta := pose.RotationDelta(cur, last)
	prop.ApplyTransform(p, cur.Position, []mathutil.AxisAngle{delta}, mathutil.UnitScale)

	c.resetClippingRange(ren)
}
