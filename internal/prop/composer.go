package prop

import "spatial-interactor/internal/mathutil"

// ApplyTransform rotates and scales p about pivot (world space). Rotations are
// applied in order; a scale whose component product is not positive is
// ignored.
// The result is written back to p's authoritative representation and
// p.Origin is never modified.
func ApplyTransform(p *Prop, pivot mathutil.Vec3, rotations []mathutil.AxisAngle, scale mathutil.Vec3) {
	user, hasUser := p.UserMatrix()

	base := p.Matrix()
	origin := p.Origin
	if hasUser {
		base = user
		// A user matrix already is the world matrix; the local origin only
		// takes part in the decomposed form.
		origin = mathutil.Vec3{}
	}

	t := mathutil.NewTransform(base)
	t.Translate(pivot.Neg())
	for _, r := range rotations {
		t.RotateWXYZ(r.AngleDeg, r.Axis)
	}
	if scale.Product() > 0 {
		t.Scale(scale)
	}
	t.Translate(pivot)

	t.Translate(origin.Neg())
	t.PreMultiply()
	t.Translate(origin)

	m := t.Matrix()
	if hasUser {
		p.SetUserMatrix(m)
		return
	}
	pos, rot, sc := m.Decompose()
	p.SetDecomposed(Decomposed{Position: pos, Orientation: rot, Scale: sc})
}
