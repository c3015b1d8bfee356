package mathutil

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Quat represents a quaternion (x, y, z, w). Arithmetic is delegated to
// gonum's quat.Number.
type Quat [4]float64

// QuatIdentity returns the no-rotation quaternion.
func QuatIdentity() Quat {
	return Quat{0, 0, 0, 1}
}

// QuatFromAxisAngle builds a unit quaternion rotating angle radians about
// axis. A zero axis yields the identity.
func QuatFromAxisAngle(angle float64, axis Vec3) Quat {
	n := axis.Normalize()
	if n.IsZero() {
		return QuatIdentity()
	}
	s, c := math.Sincos(angle * 0.5)
	return Quat{n[0] * s, n[1] * s, n[2] * s, c}
}

func (q Quat) number() quat.Number {
	return quat.Number{Real: q[3], Imag: q[0], Jmag: q[1], Kmag: q[2]}
}

func fromNumber(n quat.Number) Quat {
	return Quat{n.Imag, n.Jmag, n.Kmag, n.Real}
}

// QuatMul returns the Hamilton product a × b (b is applied first).
func QuatMul(a, b Quat) Quat {
	return fromNumber(quat.Mul(a.number(), b.number()))
}

// Conj returns the conjugate, which is the inverse of a unit quaternion.
func (q Quat) Conj() Quat {
	return fromNumber(quat.Conj(q.number()))
}

// Normalize returns q scaled to unit length; a zero quaternion becomes identity.
func (q Quat) Normalize() Quat {
	n := q.number()
	l := quat.Abs(n)
	if l < 1e-12 {
		return QuatIdentity()
	}
	return fromNumber(quat.Scale(1/l, n))
}

// AxisAngle converts a unit quaternion to a rotation angle in radians in
// [0, 2π) and a unit axis. The identity yields a zero angle and zero axis.
func (q Quat) AxisAngle() (float64, Vec3) {
	v := Vec3{q[0], q[1], q[2]}
	s := v.Len()
	if s < 1e-15 {
		return 0, Vec3{}
	}
	return 2 * math.Atan2(s, q[3]), v.Scale(1 / s)
}

// Rotate applies q to v as q·v·q*.
func (q Quat) Rotate(v Vec3) Vec3 {
	n := q.number()
	p := quat.Mul(quat.Mul(n, quat.Number{Imag: v[0], Jmag: v[1], Kmag: v[2]}), quat.Conj(n))
	return Vec3{p.Imag, p.Jmag, p.Kmag}
}

// QuatToMat3 converts a quaternion to a 3×3 rotation matrix.
func QuatToMat3(q Quat) Mat3 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Mat3{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy),
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx),
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy),
	}
}

// Mat3ToQuat converts an orthonormal rotation matrix to a unit quaternion.
func Mat3ToQuat(m Mat3) Quat {
	tr := m[0] + m[4] + m[8]
	var q Quat
	switch {
	case tr > 0:
		s := math.Sqrt(tr+1) * 2
		q = Quat{(m[7] - m[5]) / s, (m[2] - m[6]) / s, (m[3] - m[1]) / s, 0.25 * s}
	case m[0] > m[4] && m[0] > m[8]:
		s := math.Sqrt(1+m[0]-m[4]-m[8]) * 2
		q = Quat{0.25 * s, (m[1] + m[3]) / s, (m[2] + m[6]) / s, (m[7] - m[5]) / s}
	case m[4] > m[8]:
		s := math.Sqrt(1+m[4]-m[0]-m[8]) * 2
		q = Quat{(m[1] + m[3]) / s, 0.25 * s, (m[5] + m[7]) / s, (m[2] - m[6]) / s}
	default:
		s := math.Sqrt(1+m[8]-m[0]-m[4]) * 2
		q = Quat{(m[2] + m[6]) / s, (m[5] + m[7]) / s, 0.25 * s, (m[3] - m[1]) / s}
	}
	return q.Normalize()
}
