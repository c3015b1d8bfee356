package mathutil

import "math"

// Mat4 is a 4×4 affine matrix stored row-major. Translation lives in
// elements 3, 7 and 11.
type Mat4 [16]float64

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Mul returns a × b.
func Mat4Mul(a, b Mat4) Mat4 {
	var m Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r*4+c] = a[r*4+0]*b[0*4+c] + a[r*4+1]*b[1*4+c] +
				a[r*4+2]*b[2*4+c] + a[r*4+3]*b[3*4+c]
		}
	}
	return m
}

// Translation returns a pure translation matrix.
func Translation(t Vec3) Mat4 {
	m := Mat4Identity()
	m[3], m[7], m[11] = t[0], t[1], t[2]
	return m
}

// Scaling returns a pure (possibly non-uniform) scale matrix.
func Scaling(s Vec3) Mat4 {
	m := Mat4Identity()
	m[0], m[5], m[10] = s[0], s[1], s[2]
	return m
}

// MulPoint transforms a 3D point (w=1) by the 4×4 matrix.
func (m Mat4) MulPoint(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11],
	}
}

// MulDir transforms a direction (w=0); translation is ignored.
func (m Mat4) MulDir(v Vec3) Vec3 {
	return m.Linear().MulVec3(v)
}

// FromMat3Translation builds a 4×4 affine matrix from a 3×3 rotation and translation.
func FromMat3Translation(r Mat3, t Vec3) Mat4 {
	return Mat4{
		r[0], r[1], r[2], t[0],
		r[3], r[4], r[5], t[1],
		r[6], r[7], r[8], t[2],
		0, 0, 0, 1,
	}
}

// Position returns the translation component.
func (m Mat4) Position() Vec3 {
	return Vec3{m[3], m[7], m[11]}
}

// Linear returns the upper-left 3×3 block.
func (m Mat4) Linear() Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// Decompose splits an affine matrix into translation, rotation and scale such
// that m = T(pos) · R(rot) · S(scale). A reflection is folded into a negative
// X scale.
func (m Mat4) Decompose() (pos Vec3, rot Quat, scale Vec3) {
	pos = m.Position()
	lin := m.Linear()
	for c := 0; c < 3; c++ {
		scale[c] = lin.Col(c).Len()
	}
	if lin.Det() < 0 {
		scale[0] = -scale[0]
	}

	var r Mat3
	for c := 0; c < 3; c++ {
		if math.Abs(scale[c]) < 1e-12 {
			var axis Vec3
			axis[c] = 1
			r.SetCol(c, axis)
			continue
		}
		r.SetCol(c, lin.Col(c).Scale(1/scale[c]))
	}
	rot = Mat3ToQuat(r)
	return pos, rot, scale
}

// IsIdentity checks if the matrix is approximately identity.
func (m Mat4) IsIdentity() bool {
	return m.ApproxEqual(Mat4Identity(), 1e-8)
}

// ApproxEqual reports whether every element differs by at most tol.
func (m Mat4) ApproxEqual(o Mat4, tol float64) bool {
	for i := 0; i < 16; i++ {
		d := m[i] - o[i]
		if d > tol || d < -tol {
			return false
		}
	}
	return true
}
