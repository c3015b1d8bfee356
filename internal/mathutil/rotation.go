package mathutil

import "math"

// AxisAngle is a rotation of AngleDeg degrees about Axis. The axis does not
// need to be normalized; a zero axis or zero angle means no rotation.
type AxisAngle struct {
	AngleDeg float64 `yaml:"angle"`
	Axis     Vec3    `yaml:"axis"`
}

// IsIdentity reports whether the rotation has no effect.
func (a AxisAngle) IsIdentity() bool {
	return a.AngleDeg == 0 || a.Axis.IsZero()
}

// Quat converts the axis-angle rotation to a unit quaternion.
func (a AxisAngle) Quat() Quat {
	return QuatFromAxisAngle(Deg2Rad(a.AngleDeg), a.Axis)
}

// Rotate rotates v by the axis-angle rotation.
func (a AxisAngle) Rotate(v Vec3) Vec3 {
	return a.Quat().Rotate(v)
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float64) float64 {
	return r * 180 / math.Pi
}
