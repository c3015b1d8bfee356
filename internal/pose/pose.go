// Package pose computes frame-to-frame deltas between tracked device samples.
package pose

import "spatial-interactor/internal/mathutil"

// Sample is one frame of a tracked pointer: world position plus orientation
// as an angle (degrees) about an axis.
type Sample struct {
	Position    mathutil.Vec3
	Orientation mathutil.AxisAngle
}

// Quat returns the sample's orientation as a unit quaternion.
func (s Sample) Quat() mathutil.Quat {
	return s.Orientation.Quat()
}

// TranslationDelta returns current.Position - previous.Position.
func TranslationDelta(current, previous Sample) mathutil.Vec3 {
	return current.Position.Sub(previous.Position)
}

// RotationDelta returns the incremental rotation that takes the previous
// orientation to the current one, expressed in world space:
// q = current · conj(previous). Identical samples give a zero angle.
func RotationDelta(current, previous Sample) mathutil.AxisAngle {
	q := mathutil.QuatMul(current.Quat(), previous.Quat().Conj())
	angle, axis := q.AxisAngle()
	return mathutil.AxisAngle{AngleDeg: mathutil.Rad2Deg(angle), Axis: axis}
}
