package mathutil

// Transform accumulates affine operations onto a base matrix. In post-multiply
// mode (the default) each operation is applied after the current matrix, in
// world space; in pre-multiply mode it is applied before it, in the local
// frame of the current matrix.
//
// Transform is a plain value; callers keep one per operation.
type Transform struct {
	m   Mat4
	pre bool
}

// NewTransform starts a post-multiplying transform from base.
func NewTransform(base Mat4) Transform {
	return Transform{m: base}
}

// PostMultiply makes subsequent operations act in world space.
func (t *Transform) PostMultiply() { t.pre = false }

// PreMultiply makes subsequent operations act in the local frame.
func (t *Transform) PreMultiply() { t.pre = true }

// Concatenate applies op according to the current multiply mode.
func (t *Transform) Concatenate(op Mat4) {
	if t.pre {
		t.m = Mat4Mul(t.m, op)
	} else {
		t.m = Mat4Mul(op, t.m)
	}
}

// Translate concatenates a translation.
func (t *Transform) Translate(v Vec3) {
	if v.IsZero() {
		return
	}
	t.Concatenate(Translation(v))
}

// RotateWXYZ concatenates a rotation of angleDeg degrees about axis.
// A zero angle or zero axis is ignored.
func (t *Transform) RotateWXYZ(angleDeg float64, axis Vec3) {
	rot := AxisAngle{AngleDeg: angleDeg, Axis: axis}
	if rot.IsIdentity() {
		return
	}
	t.Concatenate(FromMat3Translation(QuatToMat3(rot.Quat()), Vec3{}))
}

// Scale concatenates a scale.
func (t *Transform) Scale(s Vec3) {
	t.Concatenate(Scaling(s))
}

// Matrix returns the accumulated matrix.
func (t *Transform) Matrix() Mat4 {
	return t.m
}
