package memscene

import "spatial-interactor/internal/mathutil"

// Camera is a perspective camera inside a tracked room. The head is fixed
// in room coordinates, so changing the physical translation moves the
// world-space position and focal point by the opposite amount, which is
// what a headset refresh would do.
type Camera struct {
	position  mathutil.Vec3
	focal     mathutil.Vec3
	viewUp    mathutil.Vec3
	viewAngle float64

	physical      mathutil.Vec3
	clippingRange [2]float64
}

// NewCamera returns a camera looking from position at focal. A zero viewUp
// means +Y and a non-positive viewAngle means 30 degrees.
func NewCamera(position, focal, viewUp mathutil.Vec3, viewAngle float64) *Camera {
	if viewUp.IsZero() {
		viewUp = mathutil.Vec3{0, 1, 0}
	}
	if viewAngle <= 0 {
		viewAngle = 30
	}
	return &Camera{
		position:      position,
		focal:         focal,
		viewUp:        viewUp.Normalize(),
		viewAngle:     viewAngle,
		clippingRange: [2]float64{0.1, 1000},
	}
}

func (c *Camera) Position() mathutil.Vec3       { return c.position }
func (c *Camera) SetPosition(p mathutil.Vec3)   { c.position = p }
func (c *Camera) FocalPoint() mathutil.Vec3     { return c.focal }
func (c *Camera) SetFocalPoint(p mathutil.Vec3) { c.focal = p }
func (c *Camera) ViewUp() mathutil.Vec3         { return c.viewUp }

// ViewAngle is the vertical field of view in degrees.
func (c *Camera) ViewAngle() float64 { return c.viewAngle }

func (c *Camera) Distance() float64 {
	return c.focal.Sub(c.position).Len()
}

// DirectionOfProjection is zero when position and focal point coincide.
func (c *Camera) DirectionOfProjection() mathutil.Vec3 {
	return c.focal.Sub(c.position).Normalize()
}

func (c *Camera) PhysicalTranslation() mathutil.Vec3 { return c.physical }

func (c *Camera) SetPhysicalTranslation(t mathutil.Vec3) {
	shift := t.Sub(c.physical)
	c.position = c.position.Sub(shift)
	c.focal = c.focal.Sub(shift)
	c.physical = t
}

// ClippingRange returns the near and far plane distances.
func (c *Camera) ClippingRange() (near, far float64) {
	return c.clippingRange[0], c.clippingRange[1]
}
